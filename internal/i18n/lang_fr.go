package i18n

var frTable = table{
	CommonNext:               "Suivant",
	CommonBack:               "Retour",
	CommonConfirm:            "Confirmer",
	CommonCancel:             "Annuler",
	CommonLoading:            "Chargement...",
	CommonError:              "Erreur",
	CommonSuccess:            "Succès",
	CommonRequired:           "Obligatoire",
	CommonOptional:           "Optionnel",
	AppTitle:                 "Taxi Marne-la-Vallée",
	AppSubtitle:              "Réservation taxi Disneyland • Transport privé Paris Disney",
	AppDescription:           "Application taxi sans compte pour estimation prix taxi rapide. Réserver un taxi Bussy, trajet CDG ORLY, taxi pas cher Val d'Europe.",
	WelcomeTitle:             "Bienvenue chez Taxi Marne-la-Vallée",
	WelcomeSubtitle:          "Votre chauffeur professionnel pour tous vos trajets en Île-de-France",
	WelcomeDescription:       "Service de taxi légalement autorisé à Marne-la-Vallée. Desserte prioritaire: Torcy, Lognes, Bussy-Saint-Georges, Disneyland Paris, Aéroports CDG & Orly.",
	WelcomeStartButton:       "Simuler un tarif",
	WelcomeServiceAreas:      "Zones desservies en priorité",
	WelcomeMajorDestinations: "Destinations principales",
	QuoteTitle:               "Simulation de tarif",
	QuoteSubtitle:            "Calculez le prix de votre trajet avant de réserver",
	QuoteDeparture:           "Adresse de départ",
	QuoteDestination:         "Adresse d'arrivée",
	QuoteDate:                "Date du trajet",
	QuoteTime:                "Heure du trajet",
	QuoteCalculate:           "Calculer le tarif",
	QuoteResult:              "Votre tarif estimé",
	QuoteDayRate:             "Tarif jour ({period}): {rate} €/km",
	QuoteNightRate:           "Tarif nuit ({period}): {rate} €/km",
	QuoteProceedToBooking:    "Procéder à la réservation",
	QuoteErrorCalculation:    "Erreur lors du calcul du tarif",
	BookingTitle:             "Réservation de taxi",
	BookingSubtitle:          "Complétez vos informations pour finaliser votre réservation",
	BookingPersonalInfo:      "Informations personnelles",
	BookingFirstName:         "Prénom",
	BookingLastName:          "Nom",
	BookingEmail:             "Email",
	BookingPhone:             "Téléphone",
	BookingCountryCode:       "Indicatif pays",
	BookingTripDetails:       "Détails du trajet",
	BookingPassengers:        "Nombre de passagers",
	BookingLuggage:           "Nombre de bagages",
	BookingQuoteSummary:      "Récapitulatif du tarif",
	BookingFinalizeBooking:   "Finaliser la réservation",
	BookingBookingSuccess:    "Réservation envoyée au chauffeur",
	BookingBookingError:      "Erreur lors de l'envoi de la réservation",
	BookingFormInvalid:       "Veuillez corriger les champs indiqués",
	BookingDeliveryFailed:    "Impossible d'envoyer votre réservation. Veuillez contacter directement le {phone}",
	SuccessTitle:             "Réservation confirmée !",
	SuccessSubtitle:          "Votre demande a été envoyée au chauffeur",
	SuccessMessage:           "Le chauffeur a reçu votre réservation par WhatsApp et email. Il vous contactera rapidement pour confirmer votre course.",
	SuccessWhatsappSent:      "Message WhatsApp envoyé",
	SuccessEmailSent:         "Email envoyé",
	SuccessNewBooking:        "Nouvelle réservation",
	PlacesSearchPlaceholder:  "Rechercher une adresse...",
	PlacesNoResults:          "Aucun résultat trouvé",
	PlacesCurrentLocation:    "Position actuelle",
	PlacesSelectLocation:     "Sélectionner cette adresse",
	PlacesUnavailable:        "Recherche d'adresse indisponible",
	ValidationRequired:       "Ce champ est obligatoire",
	ValidationEmail:          "Adresse email invalide",
	ValidationPhone:          "Numéro de téléphone invalide",
	ValidationMinLength:      "Minimum {min} caractères",
	ValidationMaxLength:      "Maximum {max} caractères",
	ValidationPositiveNumber: "Doit être un nombre positif",
	LegalCompanyInfo:         "Taxi légalement autorisé à Marne-la-Vallée",
	LegalServiceNote:         "Trajets dans d'autres communes selon disponibilité",
	LegalDataPrivacy:         "Aucune donnée sauvegardée - Communication directe avec le chauffeur",
	LegalPriceInfo:           "Prix calculé selon la distance et l'heure du trajet",
	ContactWhatsapp:          "WhatsApp: +33 7 50 53 56 58",
	ContactEmail:             "Email: contact@taximarnelavallee.com",
	ContactInstantBooking:    "Réservation instantanée sans inscription",
	TimeNow:                  "Maintenant",
	TimeToday:                "Aujourd'hui",
	TimeTomorrow:             "Demain",
	TimeSelectDate:           "Sélectionner une date",
	TimeSelectTime:           "Sélectionner une heure",
	CitiesPriority:           "Villes prioritaires",
	CitiesDestinations:       "Destinations principales",
	CitiesServiceNote:        "Service taxi professionnel dans toute la région",
}
