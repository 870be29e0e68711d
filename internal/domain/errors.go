package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidIDError marks identifiers that are not well-formed ObjectID hex,
// as opposed to well-formed ones that simply do not resolve.
type InvalidIDError struct {
	ID  string
	Err error
}

func (e InvalidIDError) Error() string {
	if e.ID == "" {
		return "invalid id"
	}
	return fmt.Sprintf("invalid id %q", e.ID)
}

func (e InvalidIDError) Unwrap() error { return e.Err }

type AuthError struct {
	Msg string
	Err error
}

func (e AuthError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

func (e AuthError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// StorageError covers blob bucket and document store I/O failures.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Op == "" {
		return "storage error"
	}
	return fmt.Sprintf("storage %s failed", e.Op)
}

func (e StorageError) Unwrap() error { return e.Err }

type MailTransportError struct {
	To  string
	Err error
}

func (e MailTransportError) Error() string {
	if e.To == "" {
		return "mail send failed"
	}
	return fmt.Sprintf("mail send to %s failed", e.To)
}

func (e MailTransportError) Unwrap() error { return e.Err }

// RenderError covers PDF document build failures.
type RenderError struct {
	Doc string
	Err error
}

func (e RenderError) Error() string {
	if e.Doc == "" {
		return "render failed"
	}
	return fmt.Sprintf("render %s failed", e.Doc)
}

func (e RenderError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidID(err error) bool {
	var target InvalidIDError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

func IsMailTransport(err error) bool {
	var target MailTransportError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target RenderError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
