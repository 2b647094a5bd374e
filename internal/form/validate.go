package form

import (
	"net/url"
	"regexp"
	"strings"
)

// Reason distinguishes a field that never resolved from one that resolved
// to a value failing its format check.
type Reason string

const (
	ReasonMissing Reason = "missing"
	ReasonInvalid Reason = "invalid"
)

// FieldError names one canonical field that failed validation.
type FieldError struct {
	Field  string
	Reason Reason
}

var handleRe = regexp.MustCompile(`^@?[A-Za-z0-9._]{2,30}$`)

// Validate checks the resolved application against the spec. Errors come
// back in field declaration order, which keeps the required-field order
// stable for clients and tests. A non-empty result rejects the record as
// a whole; no partial acceptance.
func Validate(app *Application, spec *Spec) []FieldError {
	var errs []FieldError

	for _, field := range spec.Fields {
		value := app.Values[field.Name]

		if field.Required {
			if field.Kind == KindBool {
				if !value.Bool {
					errs = append(errs, FieldError{Field: field.Name, Reason: ReasonMissing})
				}
				continue
			}
			if value.Text == "" {
				errs = append(errs, FieldError{Field: field.Name, Reason: ReasonMissing})
				continue
			}
		}

		if value.Text == "" {
			continue
		}

		// Format checks run only on fields that passed the present check.
		switch {
		case field.Kind == KindURL && !validURL(value.Text):
			errs = append(errs, FieldError{Field: field.Name, Reason: ReasonInvalid})
		case field.Kind == KindHandle && !handleRe.MatchString(value.Text):
			errs = append(errs, FieldError{Field: field.Name, Reason: ReasonInvalid})
		case field.MaxLen > 0 && len(value.Text) > field.MaxLen:
			errs = append(errs, FieldError{Field: field.Name, Reason: ReasonInvalid})
		}
	}

	return errs
}

// MissingFields flattens validation errors to the field-name list the
// submit response carries.
func MissingFields(errs []FieldError) []string {
	if len(errs) == 0 {
		return nil
	}
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

// validURL accepts absolute URLs and the scheme-less links applicants
// paste ("drive.google.com/..."); it rejects values with no plausible
// host.
func validURL(s string) bool {
	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host != "" && strings.Contains(host, ".")
}
