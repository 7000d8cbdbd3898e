package api

import (
	"errors"
	"fmt"
	"net/http"
)

// genericErrorMessage is surfaced when the backend's error envelope
// carries no usable message.
const genericErrorMessage = "an error has occurred"

// APIError is a non-2xx backend response, carrying the best-effort
// human-readable message extracted from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a status code and a decoded
// envelope, falling back to a generic message when the envelope carries
// none.
func newAPIError(statusCode int, env *Envelope) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: genericErrorMessage}
	if env == nil {
		return apiErr
	}
	if env.Error != nil {
		if env.Error.Message != "" {
			apiErr.Message = env.Error.Message
		}
		apiErr.Code = env.Error.Code
	} else if env.Meta != nil && env.Meta.Message != "" {
		apiErr.Message = env.Meta.Message
	}
	return apiErr
}

// IsUnauthorized reports whether err is a backend 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
