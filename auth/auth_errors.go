package auth

import "errors"

var (
	NoRefreshTokenErr    = errors.New("no refresh token available")
	InvalidEmailErr      = errors.New("invalid email format")
	EmailRequiredErr     = errors.New("email is required")
	PasswordRequiredErr  = errors.New("password is required")
	FirstNameRequiredErr = errors.New("first name is required")
	LastNameRequiredErr  = errors.New("last name is required")
	PasswordTooShortErr  = errors.New("password must be at least 8 characters long")
)
