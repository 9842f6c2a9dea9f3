package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/formcheck/formcheck/pkg/i18n"
)

func newTranslator() *i18n.Translator {
	t := i18n.New(language.English)
	t.Register(language.Spanish, map[string]string{
		"validation.required": "Obligatorio",
		"validation.range":    "Debe estar entre {min} y {max}",
	})
	t.Register(language.German, map[string]string{
		"validation.required": "Pflichtfeld",
	})
	return t
}

func TestTranslate(t *testing.T) {
	t.Parallel()
	tr := newTranslator()

	t.Run("matches the preferred language", func(t *testing.T) {
		msg := tr.Translate([]language.Tag{language.Spanish}, "validation.required", nil)
		assert.Equal(t, "Obligatorio", msg)
	})

	t.Run("interpolates values", func(t *testing.T) {
		msg := tr.Translate([]language.Tag{language.Spanish}, "validation.range",
			map[string]any{"min": "66", "max": "440"})
		assert.Equal(t, "Debe estar entre 66 y 440", msg)
	})

	t.Run("regional variants match their base language", func(t *testing.T) {
		mx := language.MustParse("es-MX")
		msg := tr.Translate([]language.Tag{mx}, "validation.required", nil)
		assert.Equal(t, "Obligatorio", msg)
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		ja := language.Japanese
		msg := tr.Translate([]language.Tag{ja}, "validation.required", nil)
		// English catalog has no entries, so the rule's default stays.
		assert.Equal(t, "", msg)
	})

	t.Run("missing key in matched catalog falls back to default language", func(t *testing.T) {
		tr := newTranslator()
		tr.Register(language.English, map[string]string{"validation.range": "Between {min} and {max}"})
		msg := tr.Translate([]language.Tag{language.German}, "validation.range",
			map[string]any{"min": "30", "max": "200"})
		assert.Equal(t, "Between 30 and 200", msg)
	})

	t.Run("no preferences resolves to fallback", func(t *testing.T) {
		tr := newTranslator()
		tr.Register(language.English, map[string]string{"validation.required": "Required"})
		assert.Equal(t, "Required", tr.Translate(nil, "validation.required", nil))
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()
	tr := newTranslator()
	translate := tr.Func(language.Spanish)
	assert.Equal(t, "Obligatorio", translate("validation.required", nil))
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	t.Run("orders by quality", func(t *testing.T) {
		tags := i18n.ParseAcceptLanguage("de;q=0.7, es;q=0.9")
		assert.Equal(t, language.Spanish, tags[0])
	})

	t.Run("empty and malformed headers yield nil", func(t *testing.T) {
		assert.Nil(t, i18n.ParseAcceptLanguage(""))
		assert.Nil(t, i18n.ParseAcceptLanguage(";;;"))
	})
}
