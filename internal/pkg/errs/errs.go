package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrVersionConflict    = errors.New("version conflict")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrTransitionRejected = errors.New("transition rejected")
	ErrTransportFailure   = errors.New("transport failure")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier, either locally or at the order-management backend.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VersionConflictError indicates an optimistic-concurrency failure: the
// version echoed on a mutating request no longer matches the backend's
// current version, signalling a lost update.
type VersionConflictError struct {
	OrderID string
	Version int
	Cause   error
}

// NewVersionConflictError creates a VersionConflictError without a cause.
func NewVersionConflictError(orderID string, version int) *VersionConflictError {
	return &VersionConflictError{OrderID: orderID, Version: version}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping a cause.
func NewVersionConflictErrorWithCause(orderID string, version int, cause error) *VersionConflictError {
	return &VersionConflictError{OrderID: orderID, Version: version, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s at version %d (cause: %s)", ErrVersionConflict, e.OrderID, e.Version, e.Cause)
	}
	return fmt.Sprintf("%s: order %s at version %d", ErrVersionConflict, e.OrderID, e.Version)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// IllegalTransitionError indicates a status transition was rejected locally,
// before any backend call: either the target is not reachable from the
// current status, or the approval gate is closed.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewIllegalTransitionError creates an IllegalTransitionError without a cause.
func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping a cause.
func NewIllegalTransitionErrorWithCause(from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrIllegalTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// TransitionRejectedError indicates the backend refused a transition that
// passed the local pre-check. The backend is the final authority on
// transitions; this error carries its refusal unchanged.
type TransitionRejectedError struct {
	OrderID string
	Target  string
	Cause   error
}

// NewTransitionRejectedError creates a TransitionRejectedError without a cause.
func NewTransitionRejectedError(orderID, target string) *TransitionRejectedError {
	return &TransitionRejectedError{OrderID: orderID, Target: target}
}

// NewTransitionRejectedErrorWithCause creates a TransitionRejectedError wrapping a cause.
func NewTransitionRejectedErrorWithCause(orderID, target string, cause error) *TransitionRejectedError {
	return &TransitionRejectedError{OrderID: orderID, Target: target, Cause: cause}
}

func (e *TransitionRejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s, target %s (cause: %s)", ErrTransitionRejected, e.OrderID, e.Target, e.Cause)
	}
	return fmt.Sprintf("%s: order %s, target %s", ErrTransitionRejected, e.OrderID, e.Target)
}

func (e *TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}

// TransportFailureError indicates a network or HTTP failure while talking to
// the order-management backend, including auth failures surfaced by the
// transport.
type TransportFailureError struct {
	Op    string
	Cause error
}

// NewTransportFailureError creates a TransportFailureError wrapping a cause.
func NewTransportFailureError(op string, cause error) *TransportFailureError {
	return &TransportFailureError{Op: op, Cause: cause}
}

func (e *TransportFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransportFailure, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransportFailure, e.Op)
}

func (e *TransportFailureError) Unwrap() error {
	return ErrTransportFailure
}
