package i18n

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryKeyTranslated(t *testing.T) {
	for lang, tbl := range tables {
		for k := Key(0); k < numKeys; k++ {
			assert.NotEmpty(t, tbl[k], "%s missing %s", lang, k)
		}
	}
	for k := Key(0); k < numKeys; k++ {
		assert.NotEmpty(t, keyNames[k], "key %d has no name", k)
	}
}

func TestPlaceholdersConsistentAcrossLanguages(t *testing.T) {
	for k := Key(0); k < numKeys; k++ {
		want := placeholder.FindAllString(frTable[k], -1)
		for lang, tbl := range tables {
			got := placeholder.FindAllString(tbl[k], -1)
			assert.ElementsMatch(t, want, got, "%s %s", lang, k)
		}
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Adresse email invalide", T(French, ValidationEmail, nil))
	assert.Equal(t, "Invalid email address", T(English, ValidationEmail, nil))
	assert.Equal(t, "Minimum 3 caractères", T(French, ValidationMinLength, map[string]string{"min": "3"}))
	assert.Equal(t, "Minimum {min} caractères", T(French, ValidationMinLength, map[string]string{"other": "3"}))
	assert.Equal(t, "Adresse email invalide", T(Language("xx"), ValidationEmail, nil))
	assert.Equal(t, "unknown", T(French, Key(-1), nil))

	msg := T(French, BookingDeliveryFailed, map[string]string{"phone": "+33 7 50 53 56 58"})
	assert.True(t, strings.HasSuffix(msg, "+33 7 50 53 56 58"))
}

func TestKeyText(t *testing.T) {
	b, err := ValidationPhone.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "validation.phone", string(b))
	assert.Equal(t, "quote.nightRate", QuoteNightRate.String())
}

func TestParseAndNegotiate(t *testing.T) {
	assert.Equal(t, English, Parse("EN"))
	assert.Equal(t, French, Parse("pt"))

	tests := []struct {
		header string
		want   Language
	}{
		{"", French},
		{"en-GB,en;q=0.9", English},
		{"es-ES", Spanish},
		{"de-CH, fr;q=0.5", German},
		{"ar-MA", Arabic},
		{"ja-JP", French},
		{"it;q=0.2, en;q=0.8", English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Negotiate(tt.header), "header %q", tt.header)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default, FromContext(ctx))
	assert.Equal(t, Italian, FromContext(WithLanguage(ctx, Italian)))
}

func TestTable(t *testing.T) {
	tbl := Table(Spanish)
	assert.Len(t, tbl, int(numKeys))
	assert.Equal(t, T(Spanish, QuoteTitle, nil), tbl["quote.title"])
}
