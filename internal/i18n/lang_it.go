package i18n

var itTable = table{
	CommonNext:               "Avanti",
	CommonBack:               "Indietro",
	CommonConfirm:            "Conferma",
	CommonCancel:             "Annulla",
	CommonLoading:            "Caricamento...",
	CommonError:              "Errore",
	CommonSuccess:            "Successo",
	CommonRequired:           "Obbligatorio",
	CommonOptional:           "Opzionale",
	AppTitle:                 "Taxi Marne-la-Vallée",
	AppSubtitle:              "Prenotazione Taxi Disneyland • Trasporto Privato Parigi Disney",
	AppDescription:           "App taxi senza account per stima tariffe istantanea. Prenota taxi Bussy, trasferimenti CDG ORLY, taxi economico Val d'Europe.",
	WelcomeTitle:             "Benvenuto in Taxi Marne-la-Vallée",
	WelcomeSubtitle:          "Il tuo autista professionale per tutti i tuoi viaggi in Île-de-France",
	WelcomeDescription:       "Servizio taxi autorizzato a Marne-la-Vallée. Servizio prioritario: Torcy, Lognes, Bussy-Saint-Georges, Disneyland Paris, Aeroporti CDG e Orly.",
	WelcomeStartButton:       "Simula Tariffa",
	WelcomeServiceAreas:      "Aree di servizio prioritarie",
	WelcomeMajorDestinations: "Destinazioni principali",
	QuoteTitle:               "Simulazione Tariffa",
	QuoteSubtitle:            "Calcola il prezzo del tuo viaggio prima di prenotare",
	QuoteDeparture:           "Indirizzo di partenza",
	QuoteDestination:         "Indirizzo di destinazione",
	QuoteDate:                "Data del viaggio",
	QuoteTime:                "Ora del viaggio",
	QuoteCalculate:           "Calcola Tariffa",
	QuoteResult:              "La tua tariffa stimata",
	QuoteDayRate:             "Tariffa diurna ({period}): €{rate}/km",
	QuoteNightRate:           "Tariffa notturna ({period}): €{rate}/km",
	QuoteProceedToBooking:    "Procedi alla Prenotazione",
	QuoteErrorCalculation:    "Errore nel calcolo della tariffa",
	BookingTitle:             "Prenotazione Taxi",
	BookingSubtitle:          "Completa le tue informazioni per finalizzare la prenotazione",
	BookingPersonalInfo:      "Informazioni Personali",
	BookingFirstName:         "Nome",
	BookingLastName:          "Cognome",
	BookingEmail:             "Email",
	BookingPhone:             "Telefono",
	BookingCountryCode:       "Codice Paese",
	BookingTripDetails:       "Dettagli del Viaggio",
	BookingPassengers:        "Numero di passeggeri",
	BookingLuggage:           "Numero di bagagli",
	BookingQuoteSummary:      "Riepilogo Tariffa",
	BookingFinalizeBooking:   "Finalizza Prenotazione",
	BookingBookingSuccess:    "Prenotazione inviata all'autista",
	BookingBookingError:      "Errore nell'invio della prenotazione",
	BookingFormInvalid:       "Si prega di correggere i campi indicati",
	BookingDeliveryFailed:    "Impossibile inviare la prenotazione. Si prega di contattare direttamente il {phone}",
	SuccessTitle:             "Prenotazione Confermata!",
	SuccessSubtitle:          "La tua richiesta è stata inviata all'autista",
	SuccessMessage:           "L'autista ha ricevuto la tua prenotazione tramite WhatsApp ed email. Ti contatterà presto per confermare il viaggio.",
	SuccessWhatsappSent:      "Messaggio WhatsApp inviato",
	SuccessEmailSent:         "Email inviata",
	SuccessNewBooking:        "Nuova Prenotazione",
	PlacesSearchPlaceholder:  "Cerca un indirizzo...",
	PlacesNoResults:          "Nessun risultato trovato",
	PlacesCurrentLocation:    "Posizione attuale",
	PlacesSelectLocation:     "Seleziona questo indirizzo",
	PlacesUnavailable:        "Ricerca indirizzi non disponibile",
	ValidationRequired:       "Questo campo è obbligatorio",
	ValidationEmail:          "Indirizzo email non valido",
	ValidationPhone:          "Numero di telefono non valido",
	ValidationMinLength:      "Minimo {min} caratteri",
	ValidationMaxLength:      "Massimo {max} caratteri",
	ValidationPositiveNumber: "Deve essere un numero positivo",
	LegalCompanyInfo:         "Servizio taxi autorizzato a Marne-la-Vallée",
	LegalServiceNote:         "Viaggi verso altri comuni soggetti a disponibilità",
	LegalDataPrivacy:         "Nessun dato salvato - Comunicazione diretta con l'autista",
	LegalPriceInfo:           "Prezzo calcolato in base a distanza e orario del viaggio",
	ContactWhatsapp:          "WhatsApp: +33 7 50 53 56 58",
	ContactEmail:             "Email: contact@taximarnelavallee.com",
	ContactInstantBooking:    "Prenotazione istantanea senza registrazione",
	TimeNow:                  "Ora",
	TimeToday:                "Oggi",
	TimeTomorrow:             "Domani",
	TimeSelectDate:           "Seleziona data",
	TimeSelectTime:           "Seleziona ora",
	CitiesPriority:           "Città prioritarie",
	CitiesDestinations:       "Destinazioni principali",
	CitiesServiceNote:        "Servizio taxi professionale in tutta la regione",
}
