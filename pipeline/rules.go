package pipeline

import (
	"context"
	"errors"
)

// Rule binds a handler to a field and value for one evaluation pass.
type Rule struct {
	Handler *Handler
	Field   string
	Value   any
}

// Apply evaluates rules in order and returns any failures aggregated into a
// Failures error. Returns nil when every rule passed.
func Apply(ctx context.Context, rules ...Rule) error {
	var failures Failures

	for _, rule := range rules {
		if err := rule.Handler.Exec(ctx, rule.Field, rule.Value); err != nil {
			var f *Failure
			if errors.As(err, &f) {
				failures = append(failures, f)
			}
		}
	}

	if failures.IsEmpty() {
		return nil
	}

	return failures
}

// ExtractFailures extracts Failures from an error.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}

	return nil
}

// IsFailure reports whether err carries pipeline failures.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}

	var failures Failures
	return errors.As(err, &failures)
}
