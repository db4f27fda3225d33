package pipeline

import (
	"fmt"
	"strings"
)

// Failure describes one failed evaluation: which handler failed, in which
// mode, on which field and value. It is the value error templates receive,
// so templates can read any of its fields when rendering. Message is
// populated after the template ran; templates observe it empty.
type Failure struct {
	Handler *Handler
	Mode    Mode
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Failures aggregates the failures of one Apply pass.
type Failures []*Failure

// Error implements the error interface with a human-readable summary of all
// failed fields.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "pipeline failed"
	}

	var parts []string
	for _, f := range fs {
		parts = append(parts, f.Error())
	}
	return "pipeline failed: " + strings.Join(parts, "; ")
}

// Has checks if a field has any failures.
func (fs Failures) Has(field string) bool {
	for _, f := range fs {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Get returns all rendered messages for a field.
func (fs Failures) Get(field string) []string {
	var messages []string
	for _, f := range fs {
		if f.Field == field {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Fields returns the distinct failed field names in evaluation order.
func (fs Failures) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if !seen[f.Field] {
			fields = append(fields, f.Field)
			seen[f.Field] = true
		}
	}
	return fields
}

// IsEmpty returns true if there are no failures.
func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}
