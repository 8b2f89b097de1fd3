// Package i18n handles the English/Spanish locale split used across the site.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the supported site languages.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Supported lists the locales the site is published in, in preference order.
var Supported = []Locale{English, Spanish}

// Parse returns the locale for a path segment like "en" or "es".
func Parse(s string) (Locale, bool) {
	switch Locale(strings.ToLower(s)) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
})

// Negotiate picks the best supported locale for an Accept-Language header.
// Falls back to English when the header is empty or unparseable.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return English
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "es" {
		return Spanish
	}
	return English
}

// Label is a bilingual display string.
type Label struct {
	EN string
	ES string
}

// In returns the label text for the given locale.
func (l Label) In(loc Locale) string {
	if loc == Spanish {
		return l.ES
	}
	return l.EN
}
