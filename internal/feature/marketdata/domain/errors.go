// Package domain defines domain-level errors for the marketdata feature.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every typed error below matches exactly one of these with errors.Is,
// so upper layers can branch on the kind without a type switch.
var (
	// ErrInvalidArgument indicates malformed caller input, whether caught locally
	// or reported back by the upstream.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates the upstream holds no data for the parameters.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates the upstream request quota is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrEntitlement indicates the request needs a higher subscription tier.
	ErrEntitlement = errors.New("not entitled")

	// ErrUpstreamTransport indicates a connection failure or a non-JSON body.
	ErrUpstreamTransport = errors.New("upstream transport failure")

	// ErrUnrecognizedUpstream indicates an upstream failure shape that is not on the recognized list.
	ErrUnrecognizedUpstream = errors.New("unrecognized upstream failure")
)

// ValidationError reports a parameter that violates a constraint.
type ValidationError struct {
	Field  string // offending parameter, e.g. "limit"
	Reason string // violated constraint, e.g. "should be no more than 50000"
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// NotFoundError reports that the upstream returned no data.
type NotFoundError struct {
	Identifier string
	Detail     string
}

func (e *NotFoundError) Error() string {
	if e.Identifier == "" {
		return "data not found: " + e.Detail
	}
	return fmt.Sprintf("data not found for %s: %s", e.Identifier, e.Detail)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// RateLimitError reports upstream quota exhaustion.
type RateLimitError struct {
	Detail string
}

func (e *RateLimitError) Error() string {
	return "maximum requests per minute exceeded: " + e.Detail
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// EntitlementError reports a request beyond the available subscription tier.
type EntitlementError struct {
	Detail string
}

func (e *EntitlementError) Error() string {
	return "request exceeds subscription entitlements: " + e.Detail
}

func (e *EntitlementError) Is(target error) bool { return target == ErrEntitlement }

// Transport phases.
const (
	PhaseConnect = "connect"
	PhaseDecode  = "decode"
)

// UpstreamTransportError reports a failure to reach the upstream or to decode its body.
// Endpoint never includes the query string, so the API key is not exposed.
type UpstreamTransportError struct {
	Phase    string
	Endpoint string
	Err      error
}

func (e *UpstreamTransportError) Error() string {
	if e.Phase == PhaseDecode {
		return fmt.Sprintf("unexpected non-JSON response from endpoint (%s): %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("error connecting to endpoint (%s): %v", e.Endpoint, e.Err)
}

func (e *UpstreamTransportError) Unwrap() error { return e.Err }

func (e *UpstreamTransportError) Is(target error) bool { return target == ErrUpstreamTransport }

// UnrecognizedUpstreamError carries the raw upstream status for diagnosis.
type UnrecognizedUpstreamError struct {
	Endpoint string
	Status   string
	Message  string
	Detail   string // the upstream "error" field
}

func (e *UnrecognizedUpstreamError) Error() string {
	msg := fmt.Sprintf("unknown %s status received from endpoint (%s)", e.Status, e.Endpoint)
	switch {
	case e.Message != "":
		return msg + ", received message: " + e.Message
	case e.Detail != "":
		return msg + ", received error: " + e.Detail
	}
	return msg
}

func (e *UnrecognizedUpstreamError) Is(target error) bool { return target == ErrUnrecognizedUpstream }

// Kind returns the sentinel kind of err, or nil when err is not a marketdata error.
func Kind(err error) error {
	for _, k := range []error{
		ErrInvalidArgument,
		ErrNotFound,
		ErrRateLimited,
		ErrEntitlement,
		ErrUpstreamTransport,
		ErrUnrecognizedUpstream,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
