package session

import (
	"regexp"
	"sort"
	"strings"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = v[f]
	}
	return strings.Join(msgs, "; ")
}

// ValidateCredentials checks a login or registration form before any
// request is made. It returns nil or a ValidationErrors.
func ValidateCredentials(name, email, password string, registering bool) error {
	errs := ValidationErrors{}

	if registering && strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email"
	}

	switch {
	case strings.TrimSpace(password) == "":
		errs["password"] = "Password is required"
	case len(password) < MinPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
