package championship

import (
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

const (
	duplicateRegistrationMessage = "Player Registration Number already exists"
	mutationFailedMessage        = "Operation Failed. Check console for details."
)

var (
	ErrNetworkFailure      = crerr.New("championship api request did not complete")
	ErrHTTPFailure         = crerr.New("championship api returned a non-success status")
	ErrConstraintViolation = crerr.New("championship api rejected a uniqueness rule")
	ErrMalformedResponse   = crerr.New("championship api returned an unreadable payload")
)

type FailureKind string

const (
	FailureNetwork    FailureKind = "network"
	FailureHTTP       FailureKind = "http"
	FailureConstraint FailureKind = "constraint"
	FailureDecode     FailureKind = "decode"
	FailureRequest    FailureKind = "request"
)

// Failure is the uniform outcome of any request that did not succeed. Message
// is what the operator was shown; Payload is the raw server error body.
type Failure struct {
	Kind       FailureKind
	Method     string
	Endpoint   string
	StatusCode int
	Payload    string
	Message    string
	cause      error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailureHTTP, FailureConstraint:
		return fmt.Sprintf("API Error: %d - %s", f.StatusCode, f.Payload)
	case FailureDecode:
		return fmt.Sprintf("%s %s: decode response: %v", f.Method, f.Endpoint, f.cause)
	default:
		return fmt.Sprintf("%s %s: %v", f.Method, f.Endpoint, f.cause)
	}
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func (f *Failure) Is(target error) bool {
	switch target {
	case ErrNetworkFailure:
		return f.Kind == FailureNetwork
	case ErrHTTPFailure:
		return f.Kind == FailureHTTP || f.Kind == FailureConstraint
	case ErrConstraintViolation:
		return f.Kind == FailureConstraint
	case ErrMalformedResponse:
		return f.Kind == FailureDecode
	case usecase.ErrDependencyUnavailable:
		return f.Kind == FailureNetwork || f.StatusCode >= http.StatusInternalServerError
	case usecase.ErrNotFound:
		return f.StatusCode == http.StatusNotFound
	case usecase.ErrInvalidInput:
		return f.StatusCode == http.StatusBadRequest || f.Kind == FailureConstraint || f.Kind == FailureRequest
	}
	return false
}

// IsConstraintPayload reports whether an error body points at a uniqueness rule.
// The backend does not return a structured code, so this is a substring match.
func IsConstraintPayload(payload string) bool {
	lower := strings.ToLower(payload)
	return strings.Contains(lower, "registrationnumber") || strings.Contains(lower, "unique")
}

func networkFailure(method, endpoint, message string, err error) *Failure {
	return &Failure{
		Kind:     FailureNetwork,
		Method:   method,
		Endpoint: endpoint,
		Message:  message,
		cause:    crerr.Wrapf(err, "send %s %s", method, endpoint),
	}
}

func statusFailure(method, endpoint, fallback string, status int, payload []byte) *Failure {
	text := strings.TrimSpace(string(payload))
	f := &Failure{
		Kind:       FailureHTTP,
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: status,
		Payload:    text,
		Message:    fallback,
		cause:      crerr.Newf("status %d", status),
	}
	if method != http.MethodGet && IsConstraintPayload(text) {
		f.Kind = FailureConstraint
		f.Message = duplicateRegistrationMessage
	}
	return f
}

// requestFailure covers requests that were never sent because they could not
// be built.
func requestFailure(method, endpoint string, err error) *Failure {
	return &Failure{
		Kind:     FailureRequest,
		Method:   method,
		Endpoint: endpoint,
		Message:  mutationFailedMessage,
		cause:    crerr.WithStack(err),
	}
}

func decodeFailure(method, endpoint, message string, err error) *Failure {
	return &Failure{
		Kind:     FailureDecode,
		Method:   method,
		Endpoint: endpoint,
		Message:  message,
		cause:    crerr.WithStack(err),
	}
}

func readFailedMessage(endpoint string) string {
	return fmt.Sprintf("Failed to fetch data from %s.", endpoint)
}

// AsFailure extracts the transport failure from err, if there is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if crerr.As(err, &f) {
		return f, true
	}
	return nil, false
}
