package pipeline

import (
	"context"
	"fmt"
	"reflect"
)

// Mode identifies a distinct failure branch of a handler. Each mode gets its
// own entry in the handler's error-template table, so different ways of
// failing can render different messages.
type Mode string

// Built-in modes used by the bundled handler constructors.
const (
	// ModeMissing reports a nil value where one was required.
	ModeMissing Mode = "missing"
	// ModeUnmet reports a condition check that returned false.
	ModeUnmet Mode = "unmet"
	// ModeMismatch reports a value that differs from the expected one.
	ModeMismatch Mode = "mismatch"
)

func (m Mode) String() string { return string(m) }

// ErrorTemplate renders the message for a failed evaluation. The context is
// the one the evaluation ran under and carries flow-scoped data such as the
// active locale.
type ErrorTemplate func(ctx context.Context, f *Failure) string

// Templates is a handler's error-template slot table, keyed by failure mode.
// The table is live and shared by every evaluation of the owning handler:
// installing a template replaces how all subsequent failures of that mode
// render. Writes are expected during single-threaded setup only; the table
// is read-only at evaluation time.
type Templates map[Mode]ErrorTemplate

// CheckFunc reports whether a value satisfies a condition.
type CheckFunc func(value any) bool

// Handler is a named, reusable check. It owns the template table used to
// render its failures; all evaluations share that table, so behavior
// installed on it (for example by the i18n registrar) applies everywhere
// the handler is used. Create handlers with NewCondition or NewMatch.
type Handler struct {
	name      string
	check     CheckFunc
	mode      Mode
	templates Templates
}

// NewCondition creates a handler that fails in ModeUnmet when check returns
// false. templates may be nil or partial; failures without a template for
// their mode render a plain default message.
func NewCondition(name string, check CheckFunc, templates Templates) *Handler {
	return &Handler{
		name:      name,
		check:     check,
		mode:      ModeUnmet,
		templates: ensureTemplates(templates),
	}
}

// NewMatch creates a handler that fails in ModeMismatch when the value is
// not deeply equal to want.
func NewMatch(name string, want any, templates Templates) *Handler {
	return &Handler{
		name:      name,
		check:     func(value any) bool { return reflect.DeepEqual(value, want) },
		mode:      ModeMismatch,
		templates: ensureTemplates(templates),
	}
}

// ensureTemplates guarantees a non-nil table so later installs never write
// to a nil map.
func ensureTemplates(templates Templates) Templates {
	if templates == nil {
		return make(Templates)
	}
	return templates
}

// Name returns the handler's name as used in diagnostics.
func (h *Handler) Name() string { return h.name }

// Templates returns the handler's live template table. Mutations are
// visible to all subsequent evaluations of this handler.
func (h *Handler) Templates() Templates { return h.templates }

// Exec evaluates a single field. A nil value fails in ModeMissing before
// the check runs. Returns nil on success, otherwise a *Failure with its
// message rendered through the template table.
func (h *Handler) Exec(ctx context.Context, field string, value any) error {
	if value == nil {
		return h.fail(ctx, ModeMissing, field, value)
	}
	if !h.check(value) {
		return h.fail(ctx, h.mode, field, value)
	}
	return nil
}

// fail builds the Failure first and renders its message second, so
// templates receive the full evaluation state (with Message still empty).
func (h *Handler) fail(ctx context.Context, mode Mode, field string, value any) *Failure {
	f := &Failure{
		Handler: h,
		Mode:    mode,
		Field:   field,
		Value:   value,
	}

	if tmpl, ok := h.templates[mode]; ok {
		f.Message = tmpl(ctx, f)
	} else {
		f.Message = fmt.Sprintf("handler %q failed in %s mode", h.name, mode)
	}

	return f
}
