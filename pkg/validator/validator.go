package validator

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Digits with optional leading +, separators allowed between groups.
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,18}$`)
)

// Form accumulates field-level validation failures for a submitted form.
// Checks short-circuit per field: once a field has failed, later rules for
// the same field are skipped so the first violation is the one reported.
type Form struct {
	fields []string
	errs   map[string]string
}

func NewForm() *Form {
	return &Form{errs: make(map[string]string)}
}

func (f *Form) fail(field, message string) {
	if _, seen := f.errs[field]; seen {
		return
	}
	f.fields = append(f.fields, field)
	f.errs[field] = message
}

// Require fails the field when the value is empty after trimming.
func (f *Form) Require(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		f.fail(field, "is required")
		return false
	}
	return true
}

// Email fails the field when the value is not a plausible email address.
func (f *Form) Email(field, value string) bool {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		f.fail(field, "must be a valid email address")
		return false
	}
	return true
}

// Phone fails the field when the value is not a plausible phone number.
func (f *Form) Phone(field, value string) bool {
	if !phonePattern.MatchString(strings.TrimSpace(value)) {
		f.fail(field, "must be a valid phone number")
		return false
	}
	return true
}

// Fail records an arbitrary failure for a field.
func (f *Form) Fail(field, message string) {
	f.fail(field, message)
}

// Valid reports whether no rule has failed so far.
func (f *Form) Valid() bool {
	return len(f.errs) == 0
}

// Errors returns field names mapped to the first failure message recorded
// for each, or nil when the form is valid.
func (f *Form) Errors() map[string]string {
	if len(f.errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// First returns the name of the first field that failed.
func (f *Form) First() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[0]
}
