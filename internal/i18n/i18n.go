// README: Message catalogue; language is passed explicitly or carried on the request context.
package i18n

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

type Key int

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// MarshalText renders the key as its dotted name, e.g. "validation.email".
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Language string

const (
	French  Language = "fr"
	English Language = "en"
	Spanish Language = "es"
	German  Language = "de"
	Italian Language = "it"
	Arabic  Language = "ar"

	Default = French
)

type table [numKeys]string

var tables = map[Language]*table{
	French:  &frTable,
	English: &enTable,
	Spanish: &esTable,
	German:  &deTable,
	Italian: &itTable,
	Arabic:  &arTable,
}

type LanguageInfo struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
	Flag string   `json:"flag"`
	RTL  bool     `json:"rtl,omitempty"`
}

var supported = []LanguageInfo{
	{Code: French, Name: "Français", Flag: "🇫🇷"},
	{Code: English, Name: "English", Flag: "🇬🇧"},
	{Code: Spanish, Name: "Español", Flag: "🇪🇸"},
	{Code: German, Name: "Deutsch", Flag: "🇩🇪"},
	{Code: Italian, Name: "Italiano", Flag: "🇮🇹"},
	{Code: Arabic, Name: "العربية", Flag: "🇸🇦", RTL: true},
}

func Supported() []LanguageInfo {
	out := make([]LanguageInfo, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a language code to a supported language, falling back to Default.
func Parse(code string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := tables[l]; ok {
		return l
	}
	return Default
}

var matcher = language.NewMatcher([]language.Tag{
	language.French, // first tag is the fallback
	language.English,
	language.Spanish,
	language.German,
	language.Italian,
	language.Arabic,
})

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	return Parse(base.String())
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// T returns the text for key in lang with {name} placeholders filled from params.
// Placeholders without a non-empty param are left as-is.
func T(lang Language, key Key, params map[string]string) string {
	if key < 0 || key >= numKeys {
		return key.String()
	}
	tbl, ok := tables[lang]
	if !ok {
		tbl = tables[Default]
	}
	text := tbl[key]
	if text == "" {
		text = tables[Default][key]
	}
	if len(params) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v := params[m[1:len(m)-1]]; v != "" {
			return v
		}
		return m
	})
}

// Table returns every message of lang keyed by its dotted name.
func Table(lang Language) map[string]string {
	out := make(map[string]string, numKeys)
	for k := Key(0); k < numKeys; k++ {
		out[k.String()] = T(lang, k, nil)
	}
	return out
}

type ctxKey struct{}

func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

func FromContext(ctx context.Context) Language {
	if l, ok := ctx.Value(ctxKey{}).(Language); ok {
		return l
	}
	return Default
}
