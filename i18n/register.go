package i18n

import (
	"context"
	"io"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/rulekit/pipeline"
)

// Translation maps locales to error templates for a single failure mode.
// It must contain an entry for BaseLocale before it can be registered.
type Translation map[Locale]pipeline.ErrorTemplate

// Translations maps failure modes to their per-locale templates.
type Translations map[pipeline.Mode]Translation

// TemplateOwner is the contract a handler must satisfy to receive localized
// templates: a name for diagnostics and the live, mode-keyed table the
// registrar installs resolvers into. *pipeline.Handler satisfies it.
type TemplateOwner interface {
	Name() string
	Templates() pipeline.Templates
}

// RegisterOption configures RegisterHandler.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	logger *slog.Logger
}

// WithLogger provides a logger for registration diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) RegisterOption {
	return func(c *registerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// RegisterHandler installs locale-aware resolvers into the handler's
// error-template table, one per mode in translations. Call it once per
// handler during single-threaded setup, before evaluation begins.
//
// Every mode is validated before anything is installed: if any mode's
// Translation lacks the BaseLocale entry, RegisterHandler returns a
// *MissingBaseLocaleError and leaves the handler's table untouched. This
// keeps registration all-or-nothing, so a bad table can never leave a
// handler half localized.
//
// Each installed resolver snapshots its mode's Translation, reads the
// active locale from the failure's context at render time, and delegates
// to the matching template, or to the BaseLocale template when the active
// locale has no entry. Mutating the caller's translations after
// registration does not affect installed resolvers.
func RegisterHandler(owner TemplateOwner, translations Translations, opts ...RegisterOption) error {
	cfg := &registerConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for mode, translation := range translations {
		if _, ok := translation[BaseLocale]; !ok {
			return &MissingBaseLocaleError{
				Handler: owner.Name(),
				Mode:    mode,
				Locale:  BaseLocale,
			}
		}
	}

	slots := owner.Templates()
	for mode, translation := range translations {
		slots[mode] = newResolver(translation)
		cfg.logger.Debug("localized error template installed",
			"handler", owner.Name(),
			"mode", mode.String(),
			"locales", len(translation),
		)
	}

	return nil
}

// newResolver snapshots translation and returns a template that picks the
// entry for the flow's active locale, falling back to the base locale. The
// base entry is guaranteed present by RegisterHandler's validation.
func newResolver(translation Translation) pipeline.ErrorTemplate {
	captured := maps.Clone(translation)

	return func(ctx context.Context, f *pipeline.Failure) string {
		tmpl, ok := captured[GetLocale(ctx)]
		if !ok {
			tmpl = captured[BaseLocale]
		}
		return tmpl(ctx, f)
	}
}
