// Package server - handlers_sessions.go covers session lifecycle and slot
// inspection.
package server

import (
	"net/http"

	"github.com/jonathan/recruiter-agent/internal/session"
)

// handleCreateSession allocates a fresh empty session.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, map[string]string{"session_id": id})
}

// handleDestroySession clears and removes a session. Destroying an unknown
// session is a no-op; the end state is the same either way.
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Destroy(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// slotResponse is the inspection view of one slot.
type slotResponse struct {
	Slot     session.Slot          `json:"slot"`
	Status   string                `json:"status"` // ready | manual_input_required
	Value    any                   `json:"value,omitempty"`
	Filename string                `json:"filename,omitempty"`
	Manual   *session.ManualPrompt `json:"manual,omitempty"`
}

// artifactFilenames suggests download names for the generated text slots.
var artifactFilenames = map[session.Slot]string{
	session.SlotCoverLetter: "cover_letter.txt",
	session.SlotMessage:     "recruiter_message.txt",
}

// handleGetSlot returns the current value or pending manual prompt for a
// slot.
func (s *Server) handleGetSlot(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}

	slot := session.Slot(r.PathValue("slot"))
	if !session.IsKnown(slot) {
		s.errorStatus(w, &ErrValidation{Field: "slot", Message: "unknown slot name"})
		return
	}

	if prompt, pending := store.ManualRequired(slot); pending {
		s.jsonResponse(w, http.StatusOK, slotResponse{
			Slot:   slot,
			Status: "manual_input_required",
			Manual: prompt,
		})
		return
	}

	value, set := store.Get(slot)
	if !set {
		s.errorStatus(w, &ErrSlotNotSet{Slot: slot})
		return
	}

	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:     slot,
		Status:   "ready",
		Value:    value,
		Filename: artifactFilenames[slot],
	})
}
