// Package i18n localizes the failure messages of pipeline handlers.
//
// It adds two things on top of the pipeline package: a per-flow "current
// locale" carried through context.Context, and a one-shot registrar that
// installs locale-aware error templates onto a handler. Handlers stay
// completely unaware of locales; at failure time their template table
// already contains a resolver that reads the active locale from the
// context and delegates to the right translation.
//
// # Architecture
//
// The locale travels inside context.Context (SetLocale / GetLocale), which
// gives every logical flow its own isolated locale for free: deriving a
// context affects only that flow and its descendants, never siblings or
// the parent. When no locale was ever set, GetLocale returns BaseLocale.
//
// RegisterHandler consumes a Translations table (mode -> locale -> template)
// and wraps each mode's translations in a resolver closure installed into
// the handler's template table. Registration is validated up front: every
// mode must provide a BaseLocale template, and a single missing entry fails
// the whole call before anything is installed. Resolvers snapshot their
// translations at registration time.
//
// # Usage
//
// Register translations once at application start:
//
//	err := i18n.RegisterHandler(ageHandler, i18n.Translations{
//		pipeline.ModeUnmet: i18n.Translation{
//			i18n.LocaleEN: func(ctx context.Context, f *pipeline.Failure) string {
//				return "must be at least 18"
//			},
//			i18n.LocalePL: func(ctx context.Context, f *pipeline.Failure) string {
//				return "musi mieć co najmniej 18 lat"
//			},
//		},
//	})
//	if err != nil {
//		log.Fatal(err) // configuration error, abort startup
//	}
//
// Activate a locale per flow and evaluate as usual:
//
//	ctx := i18n.SetLocale(r.Context(), i18n.LocalePL)
//	err := pipeline.Apply(ctx, rules...) // failures render in Polish
//
// # Error Handling
//
// The only failure this package defines is the setup-time configuration
// error *MissingBaseLocaleError, returned by RegisterHandler when a mode
// lacks its BaseLocale template. There is no runtime failure path: locale
// resolution always falls back to BaseLocale.
package i18n
