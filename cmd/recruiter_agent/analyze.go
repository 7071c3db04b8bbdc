package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/docreader"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/normalize"
	"github.com/jonathan/recruiter-agent/internal/scrape"
	"github.com/jonathan/recruiter-agent/internal/session"
)

var (
	analyzeResume      string
	analyzeJobURL      string
	analyzeCompanyURL  string
	analyzeRecruiter   string
	analyzeCoverLetter bool
	analyzeMessage     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Match a resume against a job posting end to end",
	Long: `Extract the job posting (and optionally the company page and recruiter
profile), structure the resume, and print the match report. When a page
cannot be extracted automatically, paste its content when prompted and
finish with Ctrl-D.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "path to the resume file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job", "", "job posting URL (required)")
	analyzeCmd.Flags().StringVar(&analyzeCompanyURL, "company", "", "company page URL")
	analyzeCmd.Flags().StringVar(&analyzeRecruiter, "recruiter", "", "recruiter profile URL")
	analyzeCmd.Flags().BoolVar(&analyzeCoverLetter, "cover-letter", false, "also generate a cover letter")
	analyzeCmd.Flags().BoolVar(&analyzeMessage, "message", false, "also generate a recruiter outreach message")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required: set GEMINI_API_KEY or 'api-key' in the config file")
	}
	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	controller, err := buildController(cfg, logger)
	if err != nil {
		return err
	}
	structurer := llm.NewStructurer(client)

	resume, err := structureResumeFile(cmd.Context(), structurer, analyzeResume)
	if err != nil {
		return err
	}

	jobText, err := resolveOrPrompt(cmd, controller, analyzeJobURL, scrape.KindJob)
	if err != nil {
		return err
	}
	job, err := structurer.StructureJob(cmd.Context(), jobText)
	if err != nil {
		return err
	}

	companyInfo := resolveOptional(cmd.Context(), controller, structurer.SummarizeCompany,
		logger, session.SlotCompany, analyzeCompanyURL, scrape.KindCompany)
	recruiterInfo := resolveOptional(cmd.Context(), controller, structurer.SummarizeRecruiter,
		logger, session.SlotRecruiter, analyzeRecruiter, scrape.KindProfile)

	report, err := llm.NewMatcher(client).Match(cmd.Context(), resume, job)
	if err != nil {
		return err
	}

	output := map[string]any{
		"job":   job,
		"match": report,
	}
	if companyInfo != "" {
		output["company_info"] = companyInfo
	}
	if recruiterInfo != "" {
		output["recruiter_info"] = recruiterInfo
	}

	generator := llm.NewGenerator(client)
	if analyzeCoverLetter {
		letter, err := generator.CoverLetter(cmd.Context(), resume, job, companyInfo, report.Summary)
		if err != nil {
			return err
		}
		output["cover_letter"] = letter
	}
	if analyzeMessage {
		message, err := generator.RecruiterMessage(cmd.Context(), resume, job, recruiterInfo)
		if err != nil {
			return err
		}
		output["message"] = message
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// structureResumeFile reads and structures a resume from disk.
func structureResumeFile(ctx context.Context, structurer *llm.Structurer, path string) (*llm.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := docreader.Read(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return structurer.StructureResume(ctx, normalize.CollapseWhitespace(text))
}

// resolveOrPrompt extracts a required target, falling back to interactive
// paste when the pipeline is exhausted.
func resolveOrPrompt(cmd *cobra.Command, controller *scrape.Controller, rawURL string, kind scrape.TargetKind) (string, error) {
	target, err := scrape.NewTarget(rawURL, kind)
	if err != nil {
		return "", err
	}

	result := controller.Resolve(cmd.Context(), target)
	if result.Succeeded() {
		return result.Success.Normalized.CanonicalText, nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), result.Manual.Message)
	for _, step := range result.Manual.Steps {
		fmt.Fprintln(cmd.ErrOrStderr(), "  "+step)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Paste the content below and finish with Ctrl-D:")

	pasted, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read manual input: %w", err)
	}
	if len(pasted) == 0 {
		return "", fmt.Errorf("no manual input provided for %s", rawURL)
	}

	manual := controller.AcceptManual(target, string(pasted))
	return manual.Success.Normalized.CanonicalText, nil
}

// resolveOptional extracts and summarizes an optional enrichment target.
// Failures degrade to an empty briefing instead of aborting the run.
func resolveOptional(ctx context.Context, controller *scrape.Controller,
	summarize func(context.Context, string) (string, error),
	logger *zap.Logger, slot session.Slot, rawURL string, kind scrape.TargetKind) string {
	if rawURL == "" {
		return ""
	}

	target, err := scrape.NewTarget(rawURL, kind)
	if err != nil {
		logger.Warn("skipping invalid optional target",
			zap.String("slot", string(slot)), zap.Error(err))
		return ""
	}

	result := controller.Resolve(ctx, target)
	if !result.Succeeded() {
		logger.Warn("optional target could not be extracted, continuing without it",
			zap.String("slot", string(slot)),
			zap.String("reason", result.Manual.LastFailureReason))
		return ""
	}

	summary, err := summarize(ctx, result.Success.Normalized.CanonicalText)
	if err != nil {
		logger.Warn("optional target summarization failed, continuing without it",
			zap.String("slot", string(slot)), zap.Error(err))
		return ""
	}
	return summary
}
