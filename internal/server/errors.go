// Package server provides the HTTP REST API for the recruiter agent.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/recruiter-agent/internal/docreader"
	"github.com/jonathan/recruiter-agent/internal/scrape"
	"github.com/jonathan/recruiter-agent/internal/session"
)

// ErrSessionNotFound indicates an unknown or destroyed session ID
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrSlotNotSet indicates a slot read before anything populated it
type ErrSlotNotSet struct {
	Slot session.Slot
}

func (e *ErrSlotNotSet) Error() string {
	return fmt.Sprintf("slot %q is not set", e.Slot)
}

// ErrMissingArtifact indicates a generation step whose inputs are absent
type ErrMissingArtifact struct {
	Slot session.Slot
}

func (e *ErrMissingArtifact) Error() string {
	return fmt.Sprintf("required artifact %q is missing; extract or supply it first", e.Slot)
}

// ErrManualPending indicates a generation step blocked on manual input
type ErrManualPending struct {
	Slot session.Slot
}

func (e *ErrManualPending) Error() string {
	return fmt.Sprintf("slot %q is awaiting manual input", e.Slot)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidTarget *scrape.InvalidTargetError
	var unsupported *docreader.UnsupportedFormatError

	switch {
	case errors.As(err, new(*ErrSessionNotFound)), errors.As(err, new(*ErrSlotNotSet)):
		return http.StatusNotFound
	case errors.As(err, new(*ErrMissingArtifact)), errors.As(err, new(*ErrManualPending)):
		return http.StatusConflict
	case errors.As(err, new(*ErrValidation)), errors.As(err, &invalidTarget):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
