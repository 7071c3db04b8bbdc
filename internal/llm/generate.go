// Package llm - generate.go produces application documents from the
// structured artifacts.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/recruiter-agent/internal/prompts"
)

// Generator writes cover letters and recruiter outreach messages.
type Generator struct {
	client Client
}

// NewGenerator creates a Generator over an LLM client.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// notSpecified fills optional context slots so prompt templates never see
// an empty block.
func notSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// CoverLetter writes a cover letter grounded in the resume, posting,
// company briefing, and match assessment.
func (g *Generator) CoverLetter(ctx context.Context, resume *ResumeProfile, job *JobProfile, companyInfo, matchSummary string) (string, error) {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume profile: %w", err)
	}
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode job profile: %w", err)
	}

	template := prompts.MustGet("generation.json", "cover_letter")
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON":   string(resumeJSON),
		"JobJSON":      string(jobJSON),
		"CompanyInfo":  notSpecified(companyInfo),
		"MatchSummary": notSpecified(matchSummary),
	})

	letter, err := g.client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return letter, nil
}

// RecruiterMessage writes a short first-contact message to the recruiter.
func (g *Generator) RecruiterMessage(ctx context.Context, resume *ResumeProfile, job *JobProfile, recruiterInfo string) (string, error) {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume profile: %w", err)
	}
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode job profile: %w", err)
	}

	template := prompts.MustGet("generation.json", "recruiter_message")
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON":    string(resumeJSON),
		"JobJSON":       string(jobJSON),
		"RecruiterInfo": notSpecified(recruiterInfo),
	})

	message, err := g.client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("recruiter message generation failed: %w", err)
	}
	return message, nil
}
