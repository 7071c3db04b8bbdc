package main

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/logger"
	"github.com/jonathan/recruiter-agent/internal/scrape"
)

// loadConfig materializes the merged flag/env/file configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLog, cfg.Debug)
}

// buildController assembles the extraction pipeline: auth markers,
// credential bundle, identity pool, and the ranked strategy list.
func buildController(cfg *config.Config, log *zap.Logger) (*scrape.Controller, error) {
	markers, err := scrape.LoadAuthMarkers(cfg.MarkerFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth markers: %w", err)
	}

	bundle, err := identity.LoadBundle(cfg.CookieFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookie bundle: %w", err)
	}
	if bundle == nil {
		log.Info("no cookie bundle configured, authenticated rendering disabled")
	}

	strategies := scrape.DefaultStrategies(cfg, markers, bundle, log)
	controller := scrape.NewController(cfg, strategies, identity.NewPool(), log).
		WithCache(scrape.NewDocumentCache(scrape.DefaultCacheTTL))
	return controller, nil
}
