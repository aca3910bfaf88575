package errors

import (
	"encoding/json"
)

// BusinessErr is raised when request is well-formed but violates business rule
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// Target returns name of the entity or field rule was violated for
func (e *BusinessErr) Target() string {
	return e.target
}

// MarshalJSON implements json.Marshaler
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds new BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when requested entry is missing
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds new EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// ValidationErr is raised when required field is missing or malformed
type ValidationErr struct {
	field   string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// Field returns name of the invalid field
func (e *ValidationErr) Field() string {
	return e.field
}

// NewValidationErr builds new ValidationErr
func NewValidationErr(field string, msg string) *ValidationErr {
	return &ValidationErr{field: field, message: msg}
}

// InvalidReferenceErr is raised when identifier or code points to nothing
type InvalidReferenceErr struct {
	target  string
	message string
}

func (e *InvalidReferenceErr) Error() string {
	return e.message
}

// Target returns name of the reference
func (e *InvalidReferenceErr) Target() string {
	return e.target
}

// NewInvalidReferenceErr builds new InvalidReferenceErr
func NewInvalidReferenceErr(target string, msg string) *InvalidReferenceErr {
	return &InvalidReferenceErr{target: target, message: msg}
}

// DuplicateKeyErr is raised on unique constraint violation
type DuplicateKeyErr struct {
	target  string
	message string
}

func (e *DuplicateKeyErr) Error() string {
	return e.message
}

// Target returns name of the unique key
func (e *DuplicateKeyErr) Target() string {
	return e.target
}

// NewDuplicateKeyErr builds new DuplicateKeyErr
func NewDuplicateKeyErr(target string, msg string) *DuplicateKeyErr {
	return &DuplicateKeyErr{target: target, message: msg}
}
