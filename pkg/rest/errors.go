package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidParameter matches every *InvalidParameterError
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUserNotAuthorized matches every *UserNotAuthorizedError
	ErrUserNotAuthorized = errors.New("user not authorized")

	// ErrPropertyServer matches every *PropertyServerError
	ErrPropertyServer = errors.New("property server error")
)

// OMAGError carries the first-failure data capture reported by the platform,
// or synthesised locally when the failure never reached it.
type OMAGError struct {
	ReportedHTTPCode   int
	ErrorMessageID     string
	ErrorMessage       string
	SystemAction       string
	UserAction         string
	ActionDescription  string
	ExceptionClassName string
	Properties         map[string]any
	cause              error
}

func (e *OMAGError) Error() string {
	msg := e.ErrorMessage
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	if e.ErrorMessageID != "" {
		msg = e.ErrorMessageID + " " + msg
	}
	if e.ActionDescription != "" {
		return fmt.Sprintf("%s: %s", e.ActionDescription, msg)
	}
	return msg
}

func (e *OMAGError) Unwrap() error {
	return e.cause
}

// InvalidParameterError is returned when a parameter is missing or malformed
type InvalidParameterError struct {
	*OMAGError
	ParameterName string
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// UserNotAuthorizedError is returned when the caller may not perform a request
type UserNotAuthorizedError struct {
	*OMAGError
	UserID string
}

func (e *UserNotAuthorizedError) Is(target error) bool {
	return target == ErrUserNotAuthorized
}

// PropertyServerError is returned for any other failure in the metadata server
// or on the way to it
type PropertyServerError struct {
	*OMAGError
}

func (e *PropertyServerError) Is(target error) bool {
	return target == ErrPropertyServer
}

// NewInvalidParameterError reports a parameter the caller's own checks rejected
func NewInvalidParameterError(method, parameterName, reason string) *InvalidParameterError {
	return newInvalidParameter(method, parameterName, reason)
}

// newInvalidParameter builds a locally detected validation failure
func newInvalidParameter(method, parameterName, reason string) *InvalidParameterError {
	return &InvalidParameterError{
		OMAGError: &OMAGError{
			ReportedHTTPCode:  http.StatusBadRequest,
			ErrorMessageID:    "OMAG-COMMON-400-001",
			ErrorMessage:      fmt.Sprintf("the %s parameter passed on the %s operation %s", parameterName, method, reason),
			SystemAction:      "The system is unable to process the request.",
			UserAction:        "Correct the code in the caller to provide a valid value.",
			ActionDescription: method,
		},
		ParameterName: parameterName,
	}
}

// newPropertyServerError wraps a failure that has no platform exception behind it
func newPropertyServerError(method string, httpCode int, cause error) *PropertyServerError {
	return &PropertyServerError{
		OMAGError: &OMAGError{
			ReportedHTTPCode:  httpCode,
			ErrorMessageID:    "OMAG-COMMON-500-001",
			SystemAction:      "The request could not be completed.",
			UserAction:        "Check that the platform is running and reachable, then retry.",
			ActionDescription: method,
			cause:             cause,
		},
	}
}

// exceptionFromResponse maps a non-success envelope onto an error kind.
// Returns nil when the envelope reports success.
func exceptionFromResponse(method, userID string, r *FFDCResponse) error {
	if r == nil || r.RelatedHTTPCode == 0 || r.RelatedHTTPCode == http.StatusOK {
		return nil
	}

	base := &OMAGError{
		ReportedHTTPCode:   r.RelatedHTTPCode,
		ErrorMessageID:     r.ExceptionErrorMessageID,
		ErrorMessage:       r.ExceptionErrorMessage,
		SystemAction:       r.ExceptionSystemAction,
		UserAction:         r.ExceptionUserAction,
		ActionDescription:  r.ActionDescription,
		ExceptionClassName: r.ExceptionClassName,
		Properties:         r.ExceptionProperties,
	}
	if base.ActionDescription == "" {
		base.ActionDescription = method
	}

	switch {
	case strings.HasSuffix(r.ExceptionClassName, "InvalidParameterException"):
		name, _ := r.ExceptionProperties["parameterName"].(string)
		return &InvalidParameterError{OMAGError: base, ParameterName: name}
	case strings.HasSuffix(r.ExceptionClassName, "UserNotAuthorizedException"):
		return &UserNotAuthorizedError{OMAGError: base, UserID: userID}
	default:
		return &PropertyServerError{OMAGError: base}
	}
}

// exceptionFromStatus maps an HTTP status without a usable envelope
func exceptionFromStatus(method, userID string, status int, body []byte) error {
	cause := fmt.Errorf("unexpected status %d: %s", status, truncate(string(body), 256))
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &UserNotAuthorizedError{
			OMAGError: &OMAGError{
				ReportedHTTPCode:  status,
				ErrorMessageID:    "OMAG-COMMON-401-001",
				ActionDescription: method,
				cause:             cause,
			},
			UserID: userID,
		}
	default:
		return newPropertyServerError(method, status, cause)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
