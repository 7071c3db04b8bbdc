// Package main provides the entry point for the recruiter agent CLI and
// HTTP API server.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "recruiter-agent"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "recruiter_agent",
		Short: "Recruiter Agent job application assistant",
		Long:  "Recruiter Agent extracts job postings, company pages, and recruiter profiles, scores them against a resume, and drafts cover letters and outreach messages via CLI or REST API.",
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("cookie-file", "", "browser storage state JSON carrying session cookies")
	rootCmd.PersistentFlags().String("marker-file", "", "JSON file overriding the signed-in/wall page markers")

	for _, flag := range []string{"debug", "json", "cookie-file", "marker-file"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			log.Fatalf("binding %s flag: %v", flag, err)
		}
	}
	if err := viper.BindEnv("api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(app)
	}

	// The config file is optional; flags and environment cover everything.
	// A file that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
