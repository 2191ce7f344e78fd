package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/ticket-logger-api/pkg/i18n"
)

func newBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.New("es", i18n.Catalogs{
		"es": {"msg.saludo": "Hola"},
		"en": {"msg.saludo": "Hello"},
	})
	require.NoError(t, err)
	return b
}

func TestMatch_AcceptLanguage(t *testing.T) {
	b := newBundle(t)

	assert.Equal(t, language.Spanish, b.Match(""))
	assert.Equal(t, language.English, b.Match("en-US,en;q=0.9"))
	assert.Equal(t, language.Spanish, b.Match("es-ES"))
	assert.Equal(t, language.Spanish, b.Match("ja"), "idioma sin catálogo cae al por defecto")
	assert.Equal(t, language.Spanish, b.Match(";;;basura"))
}

func TestTranslate(t *testing.T) {
	b := newBundle(t)

	assert.Equal(t, "Hola", b.Translate(language.Spanish, "msg.saludo"))
	assert.Equal(t, "Hello", b.Translate(language.English, "msg.saludo"))
	assert.Equal(t, "msg.desconocida", b.Translate(language.English, "msg.desconocida"))
}

func TestNew_SinCatalogoPorDefecto(t *testing.T) {
	_, err := i18n.New("fr", i18n.Catalogs{"es": {"k": "v"}})
	assert.Error(t, err)
}
