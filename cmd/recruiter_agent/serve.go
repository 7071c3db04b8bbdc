package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing session-scoped endpoints for resume upload, page extraction, manual input, matching, and document generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", config.DefaultPort, "port to listen on")
	if err := viper.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		log.Fatalf("binding port flag: %v", err)
	}
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
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

	srv := server.New(server.Deps{
		Config:     cfg,
		Logger:     logger,
		Controller: controller,
		Client:     client,
	})
	return srv.Start()
}
