package delivery

import (
	"net/url"
	"strings"
)

// encodeComponent percent-encodes s for a query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MessagingLink opens the native messaging app on a prefilled chat.
func MessagingLink(phone, text string) string {
	return "whatsapp://send?phone=" + phone + "&text=" + encodeComponent(text)
}

// WebMessagingLink is the browser fallback for MessagingLink.
func WebMessagingLink(phone, text string) string {
	return "https://wa.me/" + strings.TrimPrefix(phone, "+") + "?text=" + encodeComponent(text)
}

// MailLink opens the mail client with subject and body prefilled.
func MailLink(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// PhoneLink dials the number.
func PhoneLink(phone string) string {
	return "tel:" + phone
}

func scheme(uri string) string {
	i := strings.Index(uri, ":")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(uri[:i])
}
