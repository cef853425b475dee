package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// UnprocessableEntityError is rendered with the http status code 422
	UnprocessableEntityError = errors.New("unprocessable entity")
)

// Checklist lifecycle errors
var (
	ErrChecklistNotDraft = errors.Wrap(BadParameterError,
		"checklist is not a draft and cannot be edited")
	ErrChecklistNotValid = errors.Wrap(UnprocessableEntityError,
		"checklist configuration has structural errors and cannot be published")
	ErrChecklistWarningsBlockPublish = errors.Wrap(UnprocessableEntityError,
		"checklist configuration has warnings and its validation mode is strict")
)

// ErrNoCalculationSchema is returned when a leaf indicator is asked to
// evaluate but no published calculation schema exists for it. Aggregation
// data-integrity faults are not errors: they surface as AggregationAnomaly
// entries with an indeterminate verdict.
var ErrNoCalculationSchema = errors.New("leaf indicator has no calculation schema")
