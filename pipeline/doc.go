// Package pipeline provides a small, composable rule pipeline for checking
// values and collecting rich failure information.
//
// A Handler is a named, reusable check with a mode-keyed table of error
// templates. Handlers are bound to concrete fields and values through Rule
// and evaluated with Apply, which aggregates any failures into a Failures
// slice that satisfies the error interface.
//
// # Architecture
//
// Core building blocks:
//   - Handler        – a reusable check owning its error-template table
//   - Mode           – names a distinct failure branch of a handler
//   - ErrorTemplate  – renders a failure into a message
//   - Failure        – one failed evaluation, passed to templates
//   - Failures       – aggregate error with field-level helpers
//
// The template table returned by Handler.Templates is live: installing a
// template on it changes how every subsequent failure of that mode renders.
// This is the extension point used by the i18n package to localize failure
// messages without the handler knowing about locales at all. Install
// templates during single-threaded setup; evaluation only reads the table.
//
// # Usage
//
//	adult := pipeline.NewCondition("adult", func(v any) bool {
//		age, ok := v.(int)
//		return ok && age >= 18
//	}, pipeline.Templates{
//		pipeline.ModeUnmet: func(ctx context.Context, f *pipeline.Failure) string {
//			return "must be at least 18"
//		},
//	})
//
//	err := pipeline.Apply(ctx,
//		pipeline.Rule{Handler: adult, Field: "age", Value: form.Age},
//	)
//	if failures := pipeline.ExtractFailures(err); failures != nil {
//		for _, field := range failures.Fields() {
//			log.Println(field, failures.Get(field))
//		}
//	}
//
// # Error Handling
//
// Failures implements Error and works with errors.As, so callers can detect
// pipeline failures while preserving per-field details. Individual failures
// can be inspected with Has, Get and Fields.
package pipeline
