package i18n

var enTable = table{
	CommonNext:               "Next",
	CommonBack:               "Back",
	CommonConfirm:            "Confirm",
	CommonCancel:             "Cancel",
	CommonLoading:            "Loading...",
	CommonError:              "Error",
	CommonSuccess:            "Success",
	CommonRequired:           "Required",
	CommonOptional:           "Optional",
	AppTitle:                 "Taxi Marne-la-Vallée",
	AppSubtitle:              "Disneyland Taxi Booking • Private Transport Paris Disney",
	AppDescription:           "No-account taxi app for instant fare estimation. Book Bussy taxi, CDG ORLY transfers, cheap Val d'Europe taxi.",
	WelcomeTitle:             "Welcome to Taxi Marne-la-Vallée",
	WelcomeSubtitle:          "Your professional driver for all your trips in Île-de-France",
	WelcomeDescription:       "Licensed taxi service in Marne-la-Vallée. Priority service: Torcy, Lognes, Bussy-Saint-Georges, Disneyland Paris, CDG & Orly Airports.",
	WelcomeStartButton:       "Get Fare Quote",
	WelcomeServiceAreas:      "Priority service areas",
	WelcomeMajorDestinations: "Main destinations",
	QuoteTitle:               "Fare Estimation",
	QuoteSubtitle:            "Calculate your trip price before booking",
	QuoteDeparture:           "Departure address",
	QuoteDestination:         "Destination address",
	QuoteDate:                "Trip date",
	QuoteTime:                "Trip time",
	QuoteCalculate:           "Calculate Fare",
	QuoteResult:              "Your estimated fare",
	QuoteDayRate:             "Day rate ({period}): €{rate}/km",
	QuoteNightRate:           "Night rate ({period}): €{rate}/km",
	QuoteProceedToBooking:    "Proceed to Booking",
	QuoteErrorCalculation:    "Error calculating fare",
	BookingTitle:             "Taxi Booking",
	BookingSubtitle:          "Complete your information to finalize your booking",
	BookingPersonalInfo:      "Personal Information",
	BookingFirstName:         "First Name",
	BookingLastName:          "Last Name",
	BookingEmail:             "Email",
	BookingPhone:             "Phone",
	BookingCountryCode:       "Country Code",
	BookingTripDetails:       "Trip Details",
	BookingPassengers:        "Number of passengers",
	BookingLuggage:           "Number of luggage",
	BookingQuoteSummary:      "Fare Summary",
	BookingFinalizeBooking:   "Finalize Booking",
	BookingBookingSuccess:    "Booking sent to driver",
	BookingBookingError:      "Error sending booking",
	BookingFormInvalid:       "Please correct the highlighted fields",
	BookingDeliveryFailed:    "Unable to send your booking. Please contact us directly at {phone}",
	SuccessTitle:             "Booking Confirmed!",
	SuccessSubtitle:          "Your request has been sent to the driver",
	SuccessMessage:           "The driver has received your booking via WhatsApp and email. They will contact you shortly to confirm your ride.",
	SuccessWhatsappSent:      "WhatsApp message sent",
	SuccessEmailSent:         "Email sent",
	SuccessNewBooking:        "New Booking",
	PlacesSearchPlaceholder:  "Search for an address...",
	PlacesNoResults:          "No results found",
	PlacesCurrentLocation:    "Current location",
	PlacesSelectLocation:     "Select this address",
	PlacesUnavailable:        "Address search unavailable",
	ValidationRequired:       "This field is required",
	ValidationEmail:          "Invalid email address",
	ValidationPhone:          "Invalid phone number",
	ValidationMinLength:      "Minimum {min} characters",
	ValidationMaxLength:      "Maximum {max} characters",
	ValidationPositiveNumber: "Must be a positive number",
	LegalCompanyInfo:         "Licensed taxi service in Marne-la-Vallée",
	LegalServiceNote:         "Trips to other municipalities subject to availability",
	LegalDataPrivacy:         "No data saved - Direct communication with driver",
	LegalPriceInfo:           "Price calculated based on distance and trip time",
	ContactWhatsapp:          "WhatsApp: +33 7 50 53 56 58",
	ContactEmail:             "Email: contact@taximarnelavallee.com",
	ContactInstantBooking:    "Instant booking without registration",
	TimeNow:                  "Now",
	TimeToday:                "Today",
	TimeTomorrow:             "Tomorrow",
	TimeSelectDate:           "Select date",
	TimeSelectTime:           "Select time",
	CitiesPriority:           "Priority cities",
	CitiesDestinations:       "Main destinations",
	CitiesServiceNote:        "Professional taxi service throughout the region",
}
