package i18n

var deTable = table{
	CommonNext:               "Weiter",
	CommonBack:               "Zurück",
	CommonConfirm:            "Bestätigen",
	CommonCancel:             "Abbrechen",
	CommonLoading:            "Wird geladen...",
	CommonError:              "Fehler",
	CommonSuccess:            "Erfolg",
	CommonRequired:           "Erforderlich",
	CommonOptional:           "Optional",
	AppTitle:                 "Taxi Marne-la-Vallée",
	AppSubtitle:              "Disneyland Taxi Buchung • Privater Transport Paris Disney",
	AppDescription:           "Taxi-App ohne Konto für sofortige Tarifschätzung. Bussy Taxi buchen, CDG ORLY Transfers, günstiges Val d'Europe Taxi.",
	WelcomeTitle:             "Willkommen bei Taxi Marne-la-Vallée",
	WelcomeSubtitle:          "Ihr professioneller Fahrer für alle Ihre Fahrten in Île-de-France",
	WelcomeDescription:       "Lizenzierter Taxiservice in Marne-la-Vallée. Prioritätsservice: Torcy, Lognes, Bussy-Saint-Georges, Disneyland Paris, CDG & Orly Flughäfen.",
	WelcomeStartButton:       "Tarif simulieren",
	WelcomeServiceAreas:      "Prioritäre Servicebereiche",
	WelcomeMajorDestinations: "Hauptziele",
	QuoteTitle:               "Tarifschätzung",
	QuoteSubtitle:            "Berechnen Sie den Preis Ihrer Fahrt vor der Buchung",
	QuoteDeparture:           "Abfahrtsadresse",
	QuoteDestination:         "Zieladresse",
	QuoteDate:                "Fahrtdatum",
	QuoteTime:                "Fahrtzeit",
	QuoteCalculate:           "Tarif berechnen",
	QuoteResult:              "Ihr geschätzter Tarif",
	QuoteDayRate:             "Tagestarif ({period}): €{rate}/km",
	QuoteNightRate:           "Nachttarif ({period}): €{rate}/km",
	QuoteProceedToBooking:    "Zur Buchung",
	QuoteErrorCalculation:    "Fehler bei der Tarifberechnung",
	BookingTitle:             "Taxi-Buchung",
	BookingSubtitle:          "Vervollständigen Sie Ihre Informationen zur Finalisierung Ihrer Buchung",
	BookingPersonalInfo:      "Persönliche Informationen",
	BookingFirstName:         "Vorname",
	BookingLastName:          "Nachname",
	BookingEmail:             "E-Mail",
	BookingPhone:             "Telefon",
	BookingCountryCode:       "Ländercode",
	BookingTripDetails:       "Fahrtdetails",
	BookingPassengers:        "Anzahl Passagiere",
	BookingLuggage:           "Anzahl Gepäckstücke",
	BookingQuoteSummary:      "Tarifzusammenfassung",
	BookingFinalizeBooking:   "Buchung abschließen",
	BookingBookingSuccess:    "Buchung an Fahrer gesendet",
	BookingBookingError:      "Fehler beim Senden der Buchung",
	BookingFormInvalid:       "Bitte korrigieren Sie die markierten Felder",
	BookingDeliveryFailed:    "Ihre Reservierung konnte nicht gesendet werden. Bitte kontaktieren Sie uns direkt unter {phone}",
	SuccessTitle:             "Buchung bestätigt!",
	SuccessSubtitle:          "Ihre Anfrage wurde an den Fahrer gesendet",
	SuccessMessage:           "Der Fahrer hat Ihre Buchung per WhatsApp und E-Mail erhalten. Er wird Sie bald kontaktieren, um Ihre Fahrt zu bestätigen.",
	SuccessWhatsappSent:      "WhatsApp-Nachricht gesendet",
	SuccessEmailSent:         "E-Mail gesendet",
	SuccessNewBooking:        "Neue Buchung",
	PlacesSearchPlaceholder:  "Nach einer Adresse suchen...",
	PlacesNoResults:          "Keine Ergebnisse gefunden",
	PlacesCurrentLocation:    "Aktueller Standort",
	PlacesSelectLocation:     "Diese Adresse auswählen",
	PlacesUnavailable:        "Adresssuche nicht verfügbar",
	ValidationRequired:       "Dieses Feld ist erforderlich",
	ValidationEmail:          "Ungültige E-Mail-Adresse",
	ValidationPhone:          "Ungültige Telefonnummer",
	ValidationMinLength:      "Mindestens {min} Zeichen",
	ValidationMaxLength:      "Maximal {max} Zeichen",
	ValidationPositiveNumber: "Muss eine positive Zahl sein",
	LegalCompanyInfo:         "Lizenzierter Taxiservice in Marne-la-Vallée",
	LegalServiceNote:         "Fahrten zu anderen Gemeinden je nach Verfügbarkeit",
	LegalDataPrivacy:         "Keine Daten gespeichert - Direkte Kommunikation mit dem Fahrer",
	LegalPriceInfo:           "Preis basierend auf Entfernung und Fahrtzeit berechnet",
	ContactWhatsapp:          "WhatsApp: +33 7 50 53 56 58",
	ContactEmail:             "E-Mail: contact@taximarnelavallee.com",
	ContactInstantBooking:    "Sofortbuchung ohne Registrierung",
	TimeNow:                  "Jetzt",
	TimeToday:                "Heute",
	TimeTomorrow:             "Morgen",
	TimeSelectDate:           "Datum auswählen",
	TimeSelectTime:           "Zeit auswählen",
	CitiesPriority:           "Prioritätsstädte",
	CitiesDestinations:       "Hauptziele",
	CitiesServiceNote:        "Professioneller Taxiservice in der gesamten Region",
}
