package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	perr "daybook/internal/platform/errors"
)

// Validate checks every writable field and reports all violations at once
// Rules: non-empty after trimming whitespace, at most MaxFieldLen code points
func (in EntryInput) Validate() error {
	var vs []perr.Violation
	for _, f := range []struct {
		name  string
		value string
	}{
		{"work", in.Work},
		{"struggle", in.Struggle},
		{"intention", in.Intention},
	} {
		if strings.TrimSpace(f.value) == "" {
			vs = append(vs, perr.Violation{
				Field:   f.name,
				Rule:    "blank",
				Message: f.name + " must not be blank",
			})
			continue
		}
		if utf8.RuneCountInString(f.value) > MaxFieldLen {
			vs = append(vs, perr.Violation{
				Field:   f.name,
				Rule:    "too_long",
				Message: fmt.Sprintf("%s must be at most %d characters", f.name, MaxFieldLen),
			})
		}
	}
	if len(vs) > 0 {
		return perr.Invalid(vs...)
	}
	return nil
}
