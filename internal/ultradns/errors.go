package ultradns

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Provider error codes that mean the credentials themselves were rejected.
const (
	codeInvalidCredentials = 60001
	codeInvalidToken       = 60004
)

// APIError is a decoded provider error. UltraDNS reports errors as a JSON
// list of {errorCode, errorMessage} objects; the token endpoint uses the
// OAuth error object instead.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("ultradns: %s (error code %d)", e.Message, e.Code)
	}
	if e.Message != "" {
		return fmt.Sprintf("ultradns: %s (http %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("ultradns: http %d", e.Status)
}

// IsAuth reports whether the provider rejected the credentials or token.
func (e *APIError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized ||
		e.Code == codeInvalidCredentials ||
		e.Code == codeInvalidToken
}

// IsAuthError reports whether err carries a credential rejection from the
// provider.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsAuth()
}

// errorList decodes the provider's error-list body shape. Returns nil if
// the body is anything else.
func errorList(body []byte) *APIError {
	var list []struct {
		Code    int    `json:"errorCode"`
		Message string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &list); err != nil || len(list) == 0 {
		return nil
	}
	return &APIError{Code: list[0].Code, Message: list[0].Message}
}

func decodeError(status int, body []byte) error {
	if apiErr := errorList(body); apiErr != nil {
		apiErr.Status = status
		return apiErr
	}
	var oauth struct {
		Err         string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &oauth); err == nil && oauth.Err != "" {
		msg := oauth.Description
		if msg == "" {
			msg = oauth.Err
		}
		return &APIError{Status: status, Message: msg}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
