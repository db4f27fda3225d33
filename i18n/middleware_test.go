package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/i18n"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, pick func(*http.Request) i18n.Locale) i18n.Locale {
		t.Helper()
		var got i18n.Locale
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		i18n.Middleware(pick)(handler).ServeHTTP(rec, req)
		return got
	}

	t.Run("activates the picked locale for the request", func(t *testing.T) {
		t.Parallel()
		got := serve(t, func(*http.Request) i18n.Locale { return i18n.LocalePL })
		assert.Equal(t, i18n.LocalePL, got)
	})

	t.Run("nil pick falls back to the base locale", func(t *testing.T) {
		t.Parallel()
		got := serve(t, nil)
		assert.Equal(t, i18n.BaseLocale, got)
	})

	t.Run("empty pick result falls back to the base locale", func(t *testing.T) {
		t.Parallel()
		got := serve(t, func(*http.Request) i18n.Locale { return "" })
		assert.Equal(t, i18n.BaseLocale, got)
	})

	t.Run("pick can use ParseLocale on request data", func(t *testing.T) {
		t.Parallel()
		var got i18n.Locale
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		})

		pick := func(r *http.Request) i18n.Locale {
			locale, err := i18n.ParseLocale(r.URL.Query().Get("lang"))
			if err != nil {
				return ""
			}
			return locale
		}

		req := httptest.NewRequest(http.MethodGet, "/?lang=pl-PL", nil)
		rec := httptest.NewRecorder()
		i18n.Middleware(pick)(handler).ServeHTTP(rec, req)
		assert.Equal(t, i18n.LocalePL, got)
	})
}
