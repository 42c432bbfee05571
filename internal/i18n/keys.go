// README: Typed message keys; every language table is indexed by these.
package i18n

const (
	CommonNext Key = iota
	CommonBack
	CommonConfirm
	CommonCancel
	CommonLoading
	CommonError
	CommonSuccess
	CommonRequired
	CommonOptional
	AppTitle
	AppSubtitle
	AppDescription
	WelcomeTitle
	WelcomeSubtitle
	WelcomeDescription
	WelcomeStartButton
	WelcomeServiceAreas
	WelcomeMajorDestinations
	QuoteTitle
	QuoteSubtitle
	QuoteDeparture
	QuoteDestination
	QuoteDate
	QuoteTime
	QuoteCalculate
	QuoteResult
	QuoteDayRate
	QuoteNightRate
	QuoteProceedToBooking
	QuoteErrorCalculation
	BookingTitle
	BookingSubtitle
	BookingPersonalInfo
	BookingFirstName
	BookingLastName
	BookingEmail
	BookingPhone
	BookingCountryCode
	BookingTripDetails
	BookingPassengers
	BookingLuggage
	BookingQuoteSummary
	BookingFinalizeBooking
	BookingBookingSuccess
	BookingBookingError
	BookingFormInvalid
	BookingDeliveryFailed
	SuccessTitle
	SuccessSubtitle
	SuccessMessage
	SuccessWhatsappSent
	SuccessEmailSent
	SuccessNewBooking
	PlacesSearchPlaceholder
	PlacesNoResults
	PlacesCurrentLocation
	PlacesSelectLocation
	PlacesUnavailable
	ValidationRequired
	ValidationEmail
	ValidationPhone
	ValidationMinLength
	ValidationMaxLength
	ValidationPositiveNumber
	LegalCompanyInfo
	LegalServiceNote
	LegalDataPrivacy
	LegalPriceInfo
	ContactWhatsapp
	ContactEmail
	ContactInstantBooking
	TimeNow
	TimeToday
	TimeTomorrow
	TimeSelectDate
	TimeSelectTime
	CitiesPriority
	CitiesDestinations
	CitiesServiceNote

	numKeys
)

var keyNames = [numKeys]string{
	CommonNext:               "common.next",
	CommonBack:               "common.back",
	CommonConfirm:            "common.confirm",
	CommonCancel:             "common.cancel",
	CommonLoading:            "common.loading",
	CommonError:              "common.error",
	CommonSuccess:            "common.success",
	CommonRequired:           "common.required",
	CommonOptional:           "common.optional",
	AppTitle:                 "app.title",
	AppSubtitle:              "app.subtitle",
	AppDescription:           "app.description",
	WelcomeTitle:             "welcome.title",
	WelcomeSubtitle:          "welcome.subtitle",
	WelcomeDescription:       "welcome.description",
	WelcomeStartButton:       "welcome.startButton",
	WelcomeServiceAreas:      "welcome.serviceAreas",
	WelcomeMajorDestinations: "welcome.majorDestinations",
	QuoteTitle:               "quote.title",
	QuoteSubtitle:            "quote.subtitle",
	QuoteDeparture:           "quote.departure",
	QuoteDestination:         "quote.destination",
	QuoteDate:                "quote.date",
	QuoteTime:                "quote.time",
	QuoteCalculate:           "quote.calculate",
	QuoteResult:              "quote.result",
	QuoteDayRate:             "quote.dayRate",
	QuoteNightRate:           "quote.nightRate",
	QuoteProceedToBooking:    "quote.proceedToBooking",
	QuoteErrorCalculation:    "quote.errorCalculation",
	BookingTitle:             "booking.title",
	BookingSubtitle:          "booking.subtitle",
	BookingPersonalInfo:      "booking.personalInfo",
	BookingFirstName:         "booking.firstName",
	BookingLastName:          "booking.lastName",
	BookingEmail:             "booking.email",
	BookingPhone:             "booking.phone",
	BookingCountryCode:       "booking.countryCode",
	BookingTripDetails:       "booking.tripDetails",
	BookingPassengers:        "booking.passengers",
	BookingLuggage:           "booking.luggage",
	BookingQuoteSummary:      "booking.quoteSummary",
	BookingFinalizeBooking:   "booking.finalizeBooking",
	BookingBookingSuccess:    "booking.bookingSuccess",
	BookingBookingError:      "booking.bookingError",
	BookingFormInvalid:       "booking.formInvalid",
	BookingDeliveryFailed:    "booking.deliveryFailed",
	SuccessTitle:             "success.title",
	SuccessSubtitle:          "success.subtitle",
	SuccessMessage:           "success.message",
	SuccessWhatsappSent:      "success.whatsappSent",
	SuccessEmailSent:         "success.emailSent",
	SuccessNewBooking:        "success.newBooking",
	PlacesSearchPlaceholder:  "places.searchPlaceholder",
	PlacesNoResults:          "places.noResults",
	PlacesCurrentLocation:    "places.currentLocation",
	PlacesSelectLocation:     "places.selectLocation",
	PlacesUnavailable:        "places.unavailable",
	ValidationRequired:       "validation.required",
	ValidationEmail:          "validation.email",
	ValidationPhone:          "validation.phone",
	ValidationMinLength:      "validation.minLength",
	ValidationMaxLength:      "validation.maxLength",
	ValidationPositiveNumber: "validation.positiveNumber",
	LegalCompanyInfo:         "legal.companyInfo",
	LegalServiceNote:         "legal.serviceNote",
	LegalDataPrivacy:         "legal.dataPrivacy",
	LegalPriceInfo:           "legal.priceInfo",
	ContactWhatsapp:          "contact.whatsapp",
	ContactEmail:             "contact.email",
	ContactInstantBooking:    "contact.instantBooking",
	TimeNow:                  "time.now",
	TimeToday:                "time.today",
	TimeTomorrow:             "time.tomorrow",
	TimeSelectDate:           "time.selectDate",
	TimeSelectTime:           "time.selectTime",
	CitiesPriority:           "cities.priority",
	CitiesDestinations:       "cities.destinations",
	CitiesServiceNote:        "cities.serviceNote",
}
