// Package scrape - controller.go orchestrates strategy escalation.
package scrape

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

// Success is the successful terminal outcome for one target.
type Success struct {
	RawContent string
	MethodID   string
	Normalized *normalize.Document
}

// ManualInputRequired is the exhaustion terminal outcome. It is a first-
// class result, not an error: the operator can still supply text through
// the manual bridge. Message and Steps are rendered verbatim by the UI.
type ManualInputRequired struct {
	Target            Target
	Message           string
	Steps             []string
	LastFailureReason string
}

// PipelineResult is the closed, two-variant terminal outcome of resolving
// one target: exactly one of Success or Manual is set.
type PipelineResult struct {
	Target  Target
	Success *Success
	Manual  *ManualInputRequired
}

// Succeeded reports whether the resolution produced usable content.
func (r PipelineResult) Succeeded() bool { return r.Success != nil }

var kindLabels = map[TargetKind]string{
	KindJob:     "job description",
	KindCompany: "company information",
	KindProfile: "profile information",
}

// ManualInstructions builds the fixed remediation prompt for an exhausted
// target.
func ManualInstructions(target Target, lastReason string) *ManualInputRequired {
	label := kindLabels[target.Kind]
	return &ManualInputRequired{
		Target:            target,
		Message:           fmt.Sprintf("Automatic extraction failed for this %s page. Please copy the content manually to continue.", target.Kind),
		LastFailureReason: lastReason,
		Steps: []string{
			"1. Open " + target.URL + " in your browser",
			"2. Copy the entire " + label + " text",
			"3. Paste it into the manual input field",
			"4. Submit the manual text to continue",
		},
	}
}

// Controller runs the ranked strategy list for a target, applying the
// content-sufficiency check after every attempt and escalating on failure.
// Exhaustion produces a manual-input request, never an error.
type Controller struct {
	cfg        *config.Config
	strategies []Strategy
	pool       *identity.Pool
	cache      *DocumentCache
	logger     *zap.Logger
}

// NewController creates a controller over an explicit strategy list. The
// list is data: rank order is the order given.
func NewController(cfg *config.Config, strategies []Strategy, pool *identity.Pool, logger *zap.Logger) *Controller {
	return &Controller{
		cfg:        cfg,
		strategies: strategies,
		pool:       pool,
		logger:     logger,
	}
}

// WithCache attaches a document cache. Only successful resolutions are
// served from it.
func (c *Controller) WithCache(cache *DocumentCache) *Controller {
	c.cache = cache
	return c
}

// DefaultStrategies returns the production strategy ranking: authenticated
// render, guest render, direct endpoint, mirror.
func DefaultStrategies(cfg *config.Config, markers *AuthMarkers, bundle *identity.Bundle, logger *zap.Logger) []Strategy {
	return []Strategy{
		NewAuthRenderStrategy(cfg, markers, bundle, logger),
		NewGuestRenderStrategy(cfg, logger),
		NewDirectEndpointStrategy(cfg, logger),
		NewMirrorStrategy(),
	}
}

// Resolve runs the escalation for one target. Each strategy is awaited to
// completion before the sufficiency check decides whether to stop or
// advance; a failed strategy always advances the index, never retries.
func (c *Controller) Resolve(ctx context.Context, target Target) PipelineResult {
	if c.cache != nil {
		if cached, ok := c.cache.Get(target.URL); ok {
			c.logger.Debug("serving cached document", zap.String("url", target.URL))
			return cached
		}
	}

	lastReason := "no applicable strategies"
	attempted := false

	for _, strategy := range c.strategies {
		if !strategy.Applies(target) {
			c.logger.Debug("strategy not applicable",
				zap.String("method", strategy.ID()), zap.String("url", target.URL))
			continue
		}

		if attempted {
			if err := c.pause(ctx); err != nil {
				return PipelineResult{Target: target, Manual: ManualInstructions(target, err.Error())}
			}
		}
		attempted = true

		attempt := strategy.Fetch(ctx, target, c.pool.Pick())

		if !attempt.Succeeded {
			lastReason = attempt.FailureReason
			c.logger.Info("strategy failed, escalating",
				zap.String("method", strategy.ID()),
				zap.String("reason", attempt.FailureReason))
			continue
		}

		// Walls often return a "successful" page of boilerplate; length is
		// the gate, not the strategy's own flag.
		if !c.sufficient(attempt.Content) {
			lastReason = ReasonTooShort
			if len(attempt.Content) == 0 {
				lastReason = ReasonEmptyContent
			}
			c.logger.Info("content below sufficiency threshold, escalating",
				zap.String("method", strategy.ID()),
				zap.Int("length", len(attempt.Content)))
			continue
		}

		doc, err := normalize.Normalize(attempt.Content, attempt.ContentKind, normalize.ProvenanceAutomated, attempt.MethodID)
		if err != nil {
			lastReason = ReasonNormalizeFailed
			c.logger.Info("normalization failed, escalating",
				zap.String("method", strategy.ID()), zap.Error(err))
			continue
		}

		c.logger.Info("extraction succeeded",
			zap.String("method", strategy.ID()),
			zap.String("url", target.URL),
			zap.Int("chars", utf8.RuneCountInString(doc.CanonicalText)))

		result := PipelineResult{
			Target: target,
			Success: &Success{
				RawContent: attempt.Content,
				MethodID:   attempt.MethodID,
				Normalized: doc,
			},
		}
		if c.cache != nil {
			c.cache.Put(target.URL, result)
		}
		return result
	}

	c.logger.Info("all strategies exhausted, requesting manual input",
		zap.String("url", target.URL), zap.String("last_reason", lastReason))

	return PipelineResult{Target: target, Manual: ManualInstructions(target, lastReason)}
}

// AcceptManual feeds operator-supplied text through the same normalization
// path as automated results. Manual input bypasses the sufficiency check
// unconditionally and is tagged with manual provenance, so downstream
// consumers never branch on how the text was obtained.
func (c *Controller) AcceptManual(target Target, text string) PipelineResult {
	attempt := AttemptResult{
		Succeeded:   true,
		Content:     text,
		ContentKind: normalize.KindMarkdown,
		MethodID:    MethodManual,
	}

	doc, err := normalize.Normalize(attempt.Content, attempt.ContentKind, normalize.ProvenanceManual, MethodManual)
	if err != nil {
		// Markdown input with manual provenance cannot fail normalization;
		// keep the text verbatim if it ever does.
		doc = &normalize.Document{
			CanonicalText: text,
			Hints:         normalize.ExtractHints(text),
			Provenance:    normalize.ProvenanceManual,
			MethodID:      MethodManual,
		}
	}

	c.logger.Info("accepted manual input",
		zap.String("url", target.URL), zap.Int("chars", utf8.RuneCountInString(text)))

	return PipelineResult{
		Target: target,
		Success: &Success{
			RawContent: attempt.Content,
			MethodID:   MethodManual,
			Normalized: doc,
		},
	}
}

// sufficient applies the minimum-content gate: non-empty after whitespace
// normalization and at least the configured length.
func (c *Controller) sufficient(content string) bool {
	collapsed := normalize.CollapseWhitespace(content)
	return utf8.RuneCountInString(collapsed) >= c.cfg.MinContentLength && collapsed != ""
}

// pause sleeps a randomized interval between strategy attempts to break up
// request-pattern regularity.
func (c *Controller) pause(ctx context.Context) error {
	delay := randomDelay(c.cfg.StrategyDelayMin, c.cfg.StrategyDelayMax)
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
