package user

import (
	"errors"
	"fmt"
)

type GatewayErrorKind string

const (
	GatewayErrorUnavailable GatewayErrorKind = "unavailable"
	GatewayErrorBadPayload  GatewayErrorKind = "bad_payload"
	GatewayErrorNotFound    GatewayErrorKind = "not_found"
)

// GatewayError wraps any upstream fetch failure: network errors, non-2xx
// statuses and malformed payloads. The not-found kind is reported when the
// remote says the record does not exist.
type GatewayError struct {
	Kind GatewayErrorKind
	Err  error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gateway %s", e.Kind)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func NewGatewayError(kind GatewayErrorKind, err error) *GatewayError {
	return &GatewayError{Kind: kind, Err: err}
}

// IsGatewayNotFound reports whether err is a gateway not-found failure.
func IsGatewayNotFound(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Kind == GatewayErrorNotFound
}

// StorageError wraps cache store failures. Reads in the listing path treat
// it as "no cached data" rather than a fatal condition.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
