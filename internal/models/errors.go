package models

import "errors"

// Sentinel errors shared by services and handlers. Services wrap them with
// fmt.Errorf("...: %w", ...) and handlers map them to HTTP status codes
// with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
