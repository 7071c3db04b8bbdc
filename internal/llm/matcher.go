// Package llm - matcher.go scores a structured resume against a structured
// job posting.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/recruiter-agent/internal/prompts"
	"github.com/jonathan/recruiter-agent/internal/schemas"
)

// Matcher produces a MatchReport from a resume/posting pair.
type Matcher struct {
	client Client
}

// NewMatcher creates a Matcher over an LLM client.
func NewMatcher(client Client) *Matcher {
	return &Matcher{client: client}
}

// Match compares the resume against the posting and returns a validated
// report.
func (m *Matcher) Match(ctx context.Context, resume *ResumeProfile, job *JobProfile) (*MatchReport, error) {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume profile: %w", err)
	}
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode job profile: %w", err)
	}

	template := prompts.MustGet("analysis.json", "match")
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON": string(resumeJSON),
		"JobJSON":    string(jobJSON),
	})

	raw, err := m.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("match analysis failed: %w", err)
	}
	if err := schemas.Validate(schemas.ArtifactMatch, raw); err != nil {
		return nil, fmt.Errorf("match analysis returned invalid JSON: %w", err)
	}

	var report MatchReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("failed to decode match report: %w", err)
	}
	return &report, nil
}
