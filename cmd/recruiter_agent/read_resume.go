package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/docreader"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

var readResumeCmd = &cobra.Command{
	Use:   "read-resume <file>",
	Short: "Extract plain text from a resume file",
	Long:  `Read a resume in PDF, DOCX, LaTeX, Markdown, or plain text format and print the extracted text.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReadResume,
}

func init() {
	rootCmd.AddCommand(readResumeCmd)
}

func runReadResume(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	text, err := docreader.Read(data, filepath.Ext(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), normalize.CollapseWhitespace(text))
	return nil
}
