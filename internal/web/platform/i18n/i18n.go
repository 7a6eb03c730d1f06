// Package i18n provides request language helpers for web handlers.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is served when the request carries no usable preference.
const DefaultLanguage = "en"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// ResolveLanguage returns the best supported language tag for the request,
// as a BCP 47 string suitable for the html lang attribute.
func ResolveLanguage(r *http.Request) string {
	if r == nil {
		return DefaultLanguage
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tags...)
	base, _ := supported[index].Base()
	return base.String()
}
