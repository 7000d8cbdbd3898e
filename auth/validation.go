package auth

import (
	"strings"

	"github.com/jrsteele09/go-shop-client/users"
)

// Validator provides centralized validation of login and register input
// before any network call is made. A validation failure never changes
// session state.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogin validates login credentials
func (v *Validator) ValidateLogin(data users.LoginData) error {
	if err := v.validateEmail(data.Email); err != nil {
		return err
	}
	if data.Password == "" {
		return PasswordRequiredErr
	}
	return nil
}

// ValidateRegistration validates new-account registration data
func (v *Validator) ValidateRegistration(data users.RegisterData) error {
	if err := v.validateEmail(data.Email); err != nil {
		return err
	}
	if data.Password == "" {
		return PasswordRequiredErr
	}
	if len(data.Password) < 8 {
		return PasswordTooShortErr
	}
	if strings.TrimSpace(data.FirstName) == "" {
		return FirstNameRequiredErr
	}
	if strings.TrimSpace(data.LastName) == "" {
		return LastNameRequiredErr
	}
	return nil
}

func (v *Validator) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return EmailRequiredErr
	}
	// Basic email format validation
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return InvalidEmailErr
	}
	return nil
}
