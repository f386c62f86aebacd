// Package validation contains the syntactic credential checks performed
// before any network call is made.
package validation

import (
	"regexp"

	"github.com/vmaslov/authgate/internal/client/models"
	"github.com/vmaslov/authgate/internal/errx"
)

// Validator checks a credential pair against syntactic rules. A nil result
// means the credentials are acceptable for submission.
type Validator interface {
	Validate(creds models.Credentials) *errx.Error
}

// emailRegex accepts local@domain.tld shapes: non-whitespace before '@',
// non-whitespace with a literal dot before a non-whitespace suffix.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// CredentialsValidator is the default Validator. Rules are checked in
// order and the first failure wins.
type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(creds models.Credentials) *errx.Error {
	if creds.Email == "" || creds.Password == "" {
		return errx.Validation("Email and password are required")
	}
	if !emailRegex.MatchString(creds.Email) {
		return errx.Validation("Invalid email format")
	}
	if len(creds.Password) < MinPasswordLength {
		return errx.Validation("Password must be at least 6 characters")
	}
	return nil
}
