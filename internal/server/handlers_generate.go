// Package server - handlers_generate.go covers match analysis and document
// generation.
package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/session"
)

// artifacts pulls the structured resume and job out of the session,
// writing the error response when either is absent or awaiting manual
// input.
func (s *Server) artifacts(w http.ResponseWriter, store *session.Store) (*llm.ResumeProfile, *llm.JobProfile, bool) {
	for _, slot := range []session.Slot{session.SlotResume, session.SlotJob} {
		if _, pending := store.ManualRequired(slot); pending {
			s.errorStatus(w, &ErrManualPending{Slot: slot})
			return nil, nil, false
		}
	}

	resumeVal, ok := store.Get(session.SlotResume)
	if !ok {
		s.errorStatus(w, &ErrMissingArtifact{Slot: session.SlotResume})
		return nil, nil, false
	}
	jobVal, ok := store.Get(session.SlotJob)
	if !ok {
		s.errorStatus(w, &ErrMissingArtifact{Slot: session.SlotJob})
		return nil, nil, false
	}

	resume, okR := resumeVal.(*llm.ResumeProfile)
	job, okJ := jobVal.(*llm.JobProfile)
	if !okR || !okJ {
		s.errorResponse(w, http.StatusInternalServerError, "session holds malformed artifacts")
		return nil, nil, false
	}
	return resume, job, true
}

// stringSlot returns the slot's string value, empty when unset.
func stringSlot(store *session.Store, slot session.Slot) string {
	if v, ok := store.Get(slot); ok {
		if text, isString := v.(string); isString {
			return text
		}
	}
	return ""
}

// handleMatch scores the stored resume against the stored job posting.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}
	resume, job, ok := s.artifacts(w, store)
	if !ok {
		return
	}

	report, err := s.matcher.Match(r.Context(), resume, job)
	if err != nil {
		s.logger.Error("match analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	store.Set(session.SlotMatch, report)
	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:   session.SlotMatch,
		Status: "ready",
		Value:  report,
	})
}

// handleCoverLetter generates a cover letter from the stored artifacts.
// The company briefing and match summary are optional context.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}
	resume, job, ok := s.artifacts(w, store)
	if !ok {
		return
	}

	matchSummary := ""
	if v, set := store.Get(session.SlotMatch); set {
		if report, isReport := v.(*llm.MatchReport); isReport {
			matchSummary = report.Summary
		}
	}

	letter, err := s.generator.CoverLetter(r.Context(), resume, job,
		stringSlot(store, session.SlotCompany), matchSummary)
	if err != nil {
		s.logger.Error("cover letter generation failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	store.Set(session.SlotCoverLetter, letter)
	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:   session.SlotCoverLetter,
		Status: "ready",
		Value:  letter,
	})
}

// handleMessage generates a recruiter outreach message from the stored
// artifacts. The recruiter briefing is optional context.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}
	resume, job, ok := s.artifacts(w, store)
	if !ok {
		return
	}

	message, err := s.generator.RecruiterMessage(r.Context(), resume, job,
		stringSlot(store, session.SlotRecruiter))
	if err != nil {
		s.logger.Error("recruiter message generation failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	store.Set(session.SlotMessage, message)
	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:   session.SlotMessage,
		Status: "ready",
		Value:  message,
	})
}
