// Package i18n resuelve mensajes localizados a partir de Accept-Language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalogs mapea locale ("es", "en") → clave → texto.
type Catalogs map[string]map[string]string

// Bundle catálogo de mensajes con matcher de idioma.
type Bundle struct {
	cat       *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
}

// New construye el bundle. defaultLocale debe existir en catalogs y será el fallback.
func New(defaultLocale string, catalogs Catalogs) (*Bundle, error) {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: locale por defecto inválido: %w", err)
	}
	if _, ok := catalogs[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: no hay catálogo para %q", defaultLocale)
	}

	b := catalog.NewBuilder(catalog.Fallback(def))
	supported := []language.Tag{def}
	for locale, msgs := range catalogs {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", locale, err)
		}
		for key, text := range msgs {
			if err := b.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("i18n: %s/%s: %w", locale, key, err)
			}
		}
		if tag != def {
			supported = append(supported, tag)
		}
	}

	return &Bundle{
		cat:       b,
		matcher:   language.NewMatcher(supported),
		supported: supported,
	}, nil
}

// Default devuelve el idioma por defecto.
func (b *Bundle) Default() language.Tag {
	return b.supported[0]
}

// Match elige el idioma soportado que mejor encaja con un header Accept-Language.
func (b *Bundle) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return b.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.Default()
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.Default()
	}
	return b.supported[idx]
}

// Translate devuelve el texto de key en el idioma tag. Si la clave no existe devuelve la clave.
func (b *Bundle) Translate(tag language.Tag, key string, args ...any) string {
	p := message.NewPrinter(tag, message.Catalog(b.cat))
	return p.Sprintf(message.Key(key, key), args...)
}
