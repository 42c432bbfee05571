// README: Language middleware; resolves the response language once per request.
package middleware

import (
	"github.com/gin-gonic/gin"

	"taxibook/internal/i18n"
)

const (
	// LanguageHeader overrides Accept-Language when the client has an explicit choice.
	LanguageHeader = "X-Language"
	// SchemesHeader lists the URI schemes the client can open, comma separated.
	SchemesHeader = "X-Open-Schemes"
)

// Language picks ?lang=, then X-Language, then Accept-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang i18n.Language
		switch {
		case c.Query("lang") != "":
			lang = i18n.Parse(c.Query("lang"))
		case c.GetHeader(LanguageHeader) != "":
			lang = i18n.Parse(c.GetHeader(LanguageHeader))
		default:
			lang = i18n.Negotiate(c.GetHeader("Accept-Language"))
		}
		c.Request = c.Request.WithContext(i18n.WithLanguage(c.Request.Context(), lang))
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

func Lang(c *gin.Context) i18n.Language {
	return i18n.FromContext(c.Request.Context())
}
