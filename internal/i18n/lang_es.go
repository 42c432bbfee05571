package i18n

var esTable = table{
	CommonNext:               "Siguiente",
	CommonBack:               "Atrás",
	CommonConfirm:            "Confirmar",
	CommonCancel:             "Cancelar",
	CommonLoading:            "Cargando...",
	CommonError:              "Error",
	CommonSuccess:            "Éxito",
	CommonRequired:           "Obligatorio",
	CommonOptional:           "Opcional",
	AppTitle:                 "Taxi Marne-la-Vallée",
	AppSubtitle:              "Reserva Taxi Disneyland • Transporte Privado París Disney",
	AppDescription:           "App de taxi sin cuenta para estimación rápida de tarifas. Reservar taxi Bussy, traslados CDG ORLY, taxi barato Val d'Europe.",
	WelcomeTitle:             "Bienvenido a Taxi Marne-la-Vallée",
	WelcomeSubtitle:          "Su conductor profesional para todos sus viajes en Île-de-France",
	WelcomeDescription:       "Servicio de taxi autorizado en Marne-la-Vallée. Servicio prioritario: Torcy, Lognes, Bussy-Saint-Georges, Disneyland Paris, Aeropuertos CDG y Orly.",
	WelcomeStartButton:       "Simular Tarifa",
	WelcomeServiceAreas:      "Áreas de servicio prioritario",
	WelcomeMajorDestinations: "Destinos principales",
	QuoteTitle:               "Simulación de Tarifa",
	QuoteSubtitle:            "Calcule el precio de su viaje antes de reservar",
	QuoteDeparture:           "Dirección de salida",
	QuoteDestination:         "Dirección de destino",
	QuoteDate:                "Fecha del viaje",
	QuoteTime:                "Hora del viaje",
	QuoteCalculate:           "Calcular Tarifa",
	QuoteResult:              "Su tarifa estimada",
	QuoteDayRate:             "Tarifa día ({period}): €{rate}/km",
	QuoteNightRate:           "Tarifa noche ({period}): €{rate}/km",
	QuoteProceedToBooking:    "Proceder a la Reserva",
	QuoteErrorCalculation:    "Error al calcular la tarifa",
	BookingTitle:             "Reserva de Taxi",
	BookingSubtitle:          "Complete su información para finalizar su reserva",
	BookingPersonalInfo:      "Información Personal",
	BookingFirstName:         "Nombre",
	BookingLastName:          "Apellido",
	BookingEmail:             "Email",
	BookingPhone:             "Teléfono",
	BookingCountryCode:       "Código de País",
	BookingTripDetails:       "Detalles del Viaje",
	BookingPassengers:        "Número de pasajeros",
	BookingLuggage:           "Número de equipajes",
	BookingQuoteSummary:      "Resumen de Tarifa",
	BookingFinalizeBooking:   "Finalizar Reserva",
	BookingBookingSuccess:    "Reserva enviada al conductor",
	BookingBookingError:      "Error al enviar la reserva",
	BookingFormInvalid:       "Por favor corrija los campos indicados",
	BookingDeliveryFailed:    "No se pudo enviar su reserva. Por favor contacte directamente al {phone}",
	SuccessTitle:             "¡Reserva Confirmada!",
	SuccessSubtitle:          "Su solicitud ha sido enviada al conductor",
	SuccessMessage:           "El conductor ha recibido su reserva por WhatsApp y email. Se pondrá en contacto con usted pronto para confirmar su viaje.",
	SuccessWhatsappSent:      "Mensaje WhatsApp enviado",
	SuccessEmailSent:         "Email enviado",
	SuccessNewBooking:        "Nueva Reserva",
	PlacesSearchPlaceholder:  "Buscar una dirección...",
	PlacesNoResults:          "No se encontraron resultados",
	PlacesCurrentLocation:    "Ubicación actual",
	PlacesSelectLocation:     "Seleccionar esta dirección",
	PlacesUnavailable:        "Búsqueda de direcciones no disponible",
	ValidationRequired:       "Este campo es obligatorio",
	ValidationEmail:          "Dirección de email inválida",
	ValidationPhone:          "Número de teléfono inválido",
	ValidationMinLength:      "Mínimo {min} caracteres",
	ValidationMaxLength:      "Máximo {max} caracteres",
	ValidationPositiveNumber: "Debe ser un número positivo",
	LegalCompanyInfo:         "Servicio de taxi autorizado en Marne-la-Vallée",
	LegalServiceNote:         "Viajes a otros municipios sujetos a disponibilidad",
	LegalDataPrivacy:         "No se guardan datos - Comunicación directa con el conductor",
	LegalPriceInfo:           "Precio calculado según distancia y hora del viaje",
	ContactWhatsapp:          "WhatsApp: +33 7 50 53 56 58",
	ContactEmail:             "Email: contact@taximarnelavallee.com",
	ContactInstantBooking:    "Reserva instantánea sin registro",
	TimeNow:                  "Ahora",
	TimeToday:                "Hoy",
	TimeTomorrow:             "Mañana",
	TimeSelectDate:           "Seleccionar fecha",
	TimeSelectTime:           "Seleccionar hora",
	CitiesPriority:           "Ciudades prioritarias",
	CitiesDestinations:       "Destinos principales",
	CitiesServiceNote:        "Servicio de taxi profesional en toda la región",
}
