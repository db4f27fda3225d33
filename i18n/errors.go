package i18n

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/rulekit/pipeline"
)

// ErrUnsupportedLocale is returned by ParseLocale for input that cannot be
// mapped onto the supported locale set.
var ErrUnsupportedLocale = errors.New("i18n: unsupported locale")

// MissingBaseLocaleError reports a translations table that omits the base
// locale entry for one of its modes. Registration is all-or-nothing, so no
// templates were installed for any mode of that call.
type MissingBaseLocaleError struct {
	Handler string
	Mode    pipeline.Mode
	Locale  Locale
}

func (e *MissingBaseLocaleError) Error() string {
	return fmt.Sprintf(
		"i18n: handler %q is missing the %q base locale translation for %q mode",
		e.Handler, e.Locale, e.Mode,
	)
}
