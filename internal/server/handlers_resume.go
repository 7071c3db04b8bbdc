// Package server - handlers_resume.go covers resume upload and structuring.
package server

import (
	"io"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/docreader"
	"github.com/jonathan/recruiter-agent/internal/normalize"
	"github.com/jonathan/recruiter-agent/internal/session"
)

// maxResumeBytes bounds the uploaded file size. Real resumes are well
// under a megabyte of text even as PDFs.
const maxResumeBytes = 10 << 20

// handleUploadResume accepts a resume file, extracts its text, structures
// it, and stores the profile in the session.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	store, ok := s.store(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		s.errorStatus(w, &ErrValidation{Field: "file", Message: "expected multipart form upload"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorStatus(w, &ErrValidation{Field: "file", Message: "missing file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	text, err := docreader.Read(data, filepath.Ext(header.Filename))
	if err != nil {
		s.errorStatus(w, err)
		return
	}

	canonical := normalize.CollapseWhitespace(text)
	if canonical == "" {
		s.errorStatus(w, &ErrValidation{Field: "file", Message: "no text could be extracted from the file"})
		return
	}

	profile, err := s.structurer.StructureResume(r.Context(), canonical)
	if err != nil {
		s.logger.Error("resume structuring failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	store.Set(session.SlotResume, profile)
	s.logger.Info("resume stored", zap.String("filename", header.Filename))

	s.jsonResponse(w, http.StatusOK, slotResponse{
		Slot:   session.SlotResume,
		Status: "ready",
		Value:  profile,
	})
}
