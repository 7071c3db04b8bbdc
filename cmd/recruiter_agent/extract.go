package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/scrape"
)

var extractKind string

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Run the extraction pipeline for one URL",
	Long: `Run the ranked extraction strategies against a job, company, or profile URL
and print the normalized result. When every strategy fails, the manual
remediation instructions are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractKind, "kind", string(scrape.KindJob), "target kind: job, company, or profile")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	controller, err := buildController(cfg, logger)
	if err != nil {
		return err
	}

	target, err := scrape.NewTarget(args[0], scrape.TargetKind(extractKind))
	if err != nil {
		return err
	}

	result := controller.Resolve(cmd.Context(), target)

	var output any
	if result.Succeeded() {
		output = map[string]any{
			"status":    "extracted",
			"method_id": result.Success.MethodID,
			"document":  result.Success.Normalized,
		}
	} else {
		output = map[string]any{
			"status": "manual_input_required",
			"manual": result.Manual,
		}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
