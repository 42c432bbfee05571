package booking

import (
	"regexp"
	"strings"

	"taxibook/internal/i18n"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail is a loose syntactic check: something@something.something.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone accepts any formatting with 8 to 15 digits.
func ValidPhone(s string) bool {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n >= 8 && n <= 15
}

// Normalize trims the free-text fields, lowercases the email and defaults the country code.
func Normalize(r Request) Request {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.CountryCode = strings.TrimSpace(r.CountryCode)
	if r.CountryCode == "" {
		r.CountryCode = DefaultCountryCode
	}
	return r
}

// Validate returns every problem at once, or nil when the form is acceptable.
func Validate(r Request) FieldErrors {
	errs := FieldErrors{}

	if r.FirstName == "" {
		errs[FieldFirstName] = i18n.ValidationRequired
	}
	if r.LastName == "" {
		errs[FieldLastName] = i18n.ValidationRequired
	}

	switch {
	case r.Email == "":
		errs[FieldEmail] = i18n.ValidationRequired
	case !ValidEmail(r.Email):
		errs[FieldEmail] = i18n.ValidationEmail
	}

	switch {
	case r.Phone == "":
		errs[FieldPhone] = i18n.ValidationRequired
	case !ValidPhone(r.Phone):
		errs[FieldPhone] = i18n.ValidationPhone
	}

	if r.Passengers < 1 {
		errs[FieldPassengers] = i18n.ValidationPositiveNumber
	}
	if r.Luggage < 0 {
		errs[FieldLuggage] = i18n.ValidationPositiveNumber
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
