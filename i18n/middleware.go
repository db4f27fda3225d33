package i18n

import (
	"net/http"
)

// Middleware returns an HTTP middleware that stores the locale chosen by
// pick in the request context, making it the active locale for everything
// handled downstream of the request.
//
// The locale choice is wholly the caller's: pick receives the request and
// returns the locale to activate; this package never inspects the request
// itself. When pick is nil or returns the zero Locale the context is left
// untouched, so GetLocale falls back to BaseLocale downstream.
func Middleware(pick func(*http.Request) Locale) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pick != nil {
				if locale := pick(r); locale != "" {
					r = r.WithContext(SetLocale(r.Context(), locale))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
