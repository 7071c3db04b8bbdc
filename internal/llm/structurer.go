// Package llm - structurer.go turns extracted page text into validated
// structured artifacts.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/recruiter-agent/internal/prompts"
	"github.com/jonathan/recruiter-agent/internal/schemas"
)

// Structurer converts canonical extracted text into typed artifacts. Every
// JSON response is validated against its embedded schema before it is
// unmarshalled, so malformed model output surfaces as an error rather than
// a half-filled struct.
type Structurer struct {
	client Client
}

// NewStructurer creates a Structurer over an LLM client.
func NewStructurer(client Client) *Structurer {
	return &Structurer{client: client}
}

// StructureResume parses raw resume text into a ResumeProfile.
func (s *Structurer) StructureResume(ctx context.Context, text string) (*ResumeProfile, error) {
	prompt := BuildExtractionPrompt(ResumeSchema(), text)

	raw, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume structuring failed: %w", err)
	}
	if err := schemas.Validate(schemas.ArtifactResume, raw); err != nil {
		return nil, fmt.Errorf("resume structuring returned invalid JSON: %w", err)
	}

	var profile ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode resume profile: %w", err)
	}
	return &profile, nil
}

// StructureJob parses canonical job posting text into a JobProfile.
func (s *Structurer) StructureJob(ctx context.Context, text string) (*JobProfile, error) {
	prompt := BuildExtractionPrompt(JobPostingSchema(), text)

	raw, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("job structuring failed: %w", err)
	}
	if err := schemas.Validate(schemas.ArtifactJob, raw); err != nil {
		return nil, fmt.Errorf("job structuring returned invalid JSON: %w", err)
	}

	var profile JobProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode job profile: %w", err)
	}
	return &profile, nil
}

// SummarizeCompany condenses company page text into a short briefing.
func (s *Structurer) SummarizeCompany(ctx context.Context, text string) (string, error) {
	template := prompts.MustGet("analysis.json", "company_summary")
	prompt := prompts.Format(template, map[string]string{"Content": text})

	summary, err := s.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("company summarization failed: %w", err)
	}
	return summary, nil
}

// SummarizeRecruiter condenses a recruiter profile into a short briefing.
func (s *Structurer) SummarizeRecruiter(ctx context.Context, text string) (string, error) {
	template := prompts.MustGet("analysis.json", "recruiter_summary")
	prompt := prompts.Format(template, map[string]string{"Content": text})

	summary, err := s.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("recruiter summarization failed: %w", err)
	}
	return summary, nil
}
