package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported language code. Locales form a fixed, closed set;
// values are immutable and compared by equality.
type Locale string

// Supported locales.
const (
	// LocaleEN is English, the base locale every translation must cover.
	LocaleEN Locale = "en"
	// LocalePL is Polish.
	LocalePL Locale = "pl"
)

// BaseLocale is the mandatory fallback locale. Every Translation must
// contain an entry for it, and locale resolution falls back to it whenever
// a more specific entry is absent.
const BaseLocale = LocaleEN

var supportedLocales = []Locale{LocaleEN, LocalePL}

// SupportedLocales returns the closed set of locales this package accepts.
func SupportedLocales() []Locale {
	return slices.Clone(supportedLocales)
}

func (l Locale) String() string { return string(l) }

// Supported reports whether l belongs to the supported set.
func (l Locale) Supported() bool {
	return slices.Contains(supportedLocales, l)
}

// ParseLocale canonicalizes a BCP 47 language tag and maps it onto the
// supported set, falling back from a regional variant to its base language
// ("pl-PL" resolves to "pl"). Returns ErrUnsupportedLocale when neither the
// tag nor its base language is supported.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}

	if l := Locale(strings.ToLower(tag.String())); l.Supported() {
		return l, nil
	}

	base, _ := tag.Base()
	if l := Locale(base.String()); l.Supported() {
		return l, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
}
