package i18n

var arTable = table{
	CommonNext:               "التالي",
	CommonBack:               "السابق",
	CommonConfirm:            "تأكيد",
	CommonCancel:             "إلغاء",
	CommonLoading:            "جاري التحميل...",
	CommonError:              "خطأ",
	CommonSuccess:            "نجح",
	CommonRequired:           "مطلوب",
	CommonOptional:           "اختياري",
	AppTitle:                 "تاكسي مارن لا فاليه",
	AppSubtitle:              "حجز تاكسي ديزني لاند • نقل خاص باريس ديزني",
	AppDescription:           "تطبيق تاكسي بدون حساب لتقدير الأسعار الفوري. احجز تاكسي بوسي، نقل مطار شارل ديغول وأورلي، تاكسي رخيص فال دوروب.",
	WelcomeTitle:             "مرحباً بك في تاكسي مارن لا فاليه",
	WelcomeSubtitle:          "سائقك المحترف لجميع رحلاتك في إيل دو فرانس",
	WelcomeDescription:       "خدمة تاكسي مرخصة في مارن لا فاليه. خدمة أولوية: تورسي، لونيس، بوسي سان جورج، ديزني لاند باريس، مطارات شارل ديغول وأورلي.",
	WelcomeStartButton:       "محاكاة التعريفة",
	WelcomeServiceAreas:      "مناطق الخدمة ذات الأولوية",
	WelcomeMajorDestinations: "الوجهات الرئيسية",
	QuoteTitle:               "محاكاة التعريفة",
	QuoteSubtitle:            "احسب سعر رحلتك قبل الحجز",
	QuoteDeparture:           "عنوان المغادرة",
	QuoteDestination:         "عنوان الوصول",
	QuoteDate:                "تاريخ الرحلة",
	QuoteTime:                "وقت الرحلة",
	QuoteCalculate:           "حساب التعريفة",
	QuoteResult:              "التعريفة المقدرة",
	QuoteDayRate:             "تعريفة النهار ({period}): €{rate}/كم",
	QuoteNightRate:           "تعريفة الليل ({period}): €{rate}/كم",
	QuoteProceedToBooking:    "المتابعة للحجز",
	QuoteErrorCalculation:    "خطأ في حساب التعريفة",
	BookingTitle:             "حجز التاكسي",
	BookingSubtitle:          "أكمل معلوماتك لإنهاء حجزك",
	BookingPersonalInfo:      "المعلومات الشخصية",
	BookingFirstName:         "الاسم الأول",
	BookingLastName:          "اسم العائلة",
	BookingEmail:             "البريد الإلكتروني",
	BookingPhone:             "الهاتف",
	BookingCountryCode:       "رمز البلد",
	BookingTripDetails:       "تفاصيل الرحلة",
	BookingPassengers:        "عدد الركاب",
	BookingLuggage:           "عدد الحقائب",
	BookingQuoteSummary:      "ملخص التعريفة",
	BookingFinalizeBooking:   "إنهاء الحجز",
	BookingBookingSuccess:    "تم إرسال الحجز للسائق",
	BookingBookingError:      "خطأ في إرسال الحجز",
	BookingFormInvalid:       "يرجى تصحيح الحقول المشار إليها",
	BookingDeliveryFailed:    "تعذر إرسال حجزك. يرجى الاتصال مباشرة على {phone}",
	SuccessTitle:             "تم تأكيد الحجز!",
	SuccessSubtitle:          "تم إرسال طلبك للسائق",
	SuccessMessage:           "تلقى السائق حجزك عبر واتساب والبريد الإلكتروني. سيتصل بك قريباً لتأكيد رحلتك.",
	SuccessWhatsappSent:      "تم إرسال رسالة واتساب",
	SuccessEmailSent:         "تم إرسال البريد الإلكتروني",
	SuccessNewBooking:        "حجز جديد",
	PlacesSearchPlaceholder:  "البحث عن عنوان...",
	PlacesNoResults:          "لم يتم العثور على نتائج",
	PlacesCurrentLocation:    "الموقع الحالي",
	PlacesSelectLocation:     "اختر هذا العنوان",
	PlacesUnavailable:        "البحث عن العناوين غير متاح",
	ValidationRequired:       "هذا الحقل مطلوب",
	ValidationEmail:          "عنوان بريد إلكتروني غير صالح",
	ValidationPhone:          "رقم هاتف غير صالح",
	ValidationMinLength:      "الحد الأدنى {min} أحرف",
	ValidationMaxLength:      "الحد الأقصى {max} أحرف",
	ValidationPositiveNumber: "يجب أن يكون رقماً موجباً",
	LegalCompanyInfo:         "خدمة تاكسي مرخصة في مارن لا فاليه",
	LegalServiceNote:         "الرحلات إلى بلديات أخرى حسب التوفر",
	LegalDataPrivacy:         "لا يتم حفظ البيانات - تواصل مباشر مع السائق",
	LegalPriceInfo:           "السعر محسوب على أساس المسافة ووقت الرحلة",
	ContactWhatsapp:          "واتساب: +33 7 50 53 56 58",
	ContactEmail:             "البريد الإلكتروني: contact@taximarnelavallee.com",
	ContactInstantBooking:    "حجز فوري بدون تسجيل",
	TimeNow:                  "الآن",
	TimeToday:                "اليوم",
	TimeTomorrow:             "غداً",
	TimeSelectDate:           "اختر التاريخ",
	TimeSelectTime:           "اختر الوقت",
	CitiesPriority:           "المدن ذات الأولوية",
	CitiesDestinations:       "الوجهات الرئيسية",
	CitiesServiceNote:        "خدمة تاكسي احترافية في جميع أنحاء المنطقة",
}
