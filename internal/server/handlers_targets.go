// Package server - handlers_targets.go covers URL extraction and the
// manual input bridge.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/normalize"
	"github.com/jonathan/recruiter-agent/internal/scrape"
	"github.com/jonathan/recruiter-agent/internal/session"
)

// targetsRequest names the pages to extract. The job URL is the anchor of
// the flow; company and recruiter pages are optional enrichment.
type targetsRequest struct {
	JobURL       string `json:"job_url" validate:"required,url"`
	CompanyURL   string `json:"company_url" validate:"omitempty,url"`
	RecruiterURL string `json:"recruiter_url" validate:"omitempty,url"`
}

// targetOutcome is the per-target result in the resolution response.
type targetOutcome struct {
	Slot     session.Slot          `json:"slot"`
	Status   string                `json:"status"` // extracted | manual_input_required | invalid | error
	MethodID string                `json:"method_id,omitempty"`
	Hints    *normalize.Hints      `json:"hints,omitempty"`
	Manual   *session.ManualPrompt `json:"manual,omitempty"`
	Error    string                `json:"error,omitempty"`
}

var slotKinds = map[session.Slot]scrape.TargetKind{
	session.SlotJob:       scrape.KindJob,
	session.SlotCompany:   scrape.KindCompany,
	session.SlotRecruiter: scrape.KindProfile,
}

// handleResolveTargets runs the extraction pipeline for each requested
// URL in turn. One target exhausting its strategies never aborts the
// others; its slot is flagged for manual input and the flow moves on.
func (s *Server) handleResolveTargets(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}

	var req targetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorStatus(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorStatus(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	requested := []struct {
		slot session.Slot
		url  string
	}{
		{session.SlotJob, req.JobURL},
		{session.SlotCompany, req.CompanyURL},
		{session.SlotRecruiter, req.RecruiterURL},
	}

	outcomes := make([]targetOutcome, 0, len(requested))
	for _, t := range requested {
		if t.url == "" {
			continue
		}
		outcomes = append(outcomes, s.resolveTarget(r.Context(), store, t.slot, t.url))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"targets": outcomes})
}

// resolveTarget runs one URL through the pipeline and stores the result.
func (s *Server) resolveTarget(ctx context.Context, store *session.Store, slot session.Slot, rawURL string) targetOutcome {
	target, err := scrape.NewTarget(rawURL, slotKinds[slot])
	if err != nil {
		return targetOutcome{Slot: slot, Status: "invalid", Error: err.Error()}
	}

	result := s.controller.Resolve(ctx, target)
	if !result.Succeeded() {
		prompt := &session.ManualPrompt{
			Message:           result.Manual.Message,
			Steps:             result.Manual.Steps,
			LastFailureReason: result.Manual.LastFailureReason,
		}
		store.RequireManual(slot, prompt)
		return targetOutcome{Slot: slot, Status: "manual_input_required", Manual: prompt}
	}

	doc := result.Success.Normalized
	if err := s.storeStructured(ctx, store, slot, doc); err != nil {
		s.logger.Error("structuring failed",
			zap.String("slot", string(slot)), zap.Error(err))
		return targetOutcome{Slot: slot, Status: "error", Error: err.Error()}
	}

	return targetOutcome{
		Slot:     slot,
		Status:   "extracted",
		MethodID: result.Success.MethodID,
		Hints:    &doc.Hints,
	}
}

// storeStructured converts canonical text into the slot's artifact shape
// and writes it to the session.
func (s *Server) storeStructured(ctx context.Context, store *session.Store, slot session.Slot, doc *normalize.Document) error {
	switch slot {
	case session.SlotJob:
		profile, err := s.structurer.StructureJob(ctx, doc.CanonicalText)
		if err != nil {
			return err
		}
		store.Set(slot, profile)
	case session.SlotCompany:
		summary, err := s.structurer.SummarizeCompany(ctx, doc.CanonicalText)
		if err != nil {
			return err
		}
		store.Set(slot, summary)
	case session.SlotRecruiter:
		summary, err := s.structurer.SummarizeRecruiter(ctx, doc.CanonicalText)
		if err != nil {
			return err
		}
		store.Set(slot, summary)
	}
	return nil
}

// manualRequest carries operator-pasted text for a slot that exhausted
// automated extraction.
type manualRequest struct {
	Slot    session.Slot `json:"slot" validate:"required,oneof=job company recruiter"`
	Content string       `json:"content" validate:"required"`
}

// handleManualInput accepts pasted text for a slot and routes it through
// the same normalization and structuring as automated extraction.
func (s *Server) handleManualInput(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}

	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorStatus(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorStatus(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	target := scrape.Target{URL: "manual input", Kind: slotKinds[req.Slot]}
	result := s.controller.AcceptManual(target, req.Content)

	if err := s.storeStructured(r.Context(), store, req.Slot, result.Success.Normalized); err != nil {
		s.logger.Error("structuring manual input failed",
			zap.String("slot", string(req.Slot)), zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	value, _ := store.Get(req.Slot)
	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:   req.Slot,
		Status: "ready",
		Value:  value,
	})
}
