package i18n

import (
	"context"
)

// localeContextKey is the key for storing the locale in context
type localeContextKey struct{}

// SetLocale returns a context carrying locale as the active locale. The
// change is visible only through the returned context and contexts derived
// from it; flows holding the parent or a sibling context keep their own
// locale. The value is stored uninspected, so SetLocale never fails.
func SetLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale active for the calling flow.
// If no locale is set, will return BaseLocale. Never fails.
func GetLocale(ctx context.Context) Locale {
	locale, _ := ctx.Value(localeContextKey{}).(Locale)
	if locale == "" {
		return BaseLocale
	}
	return locale
}
