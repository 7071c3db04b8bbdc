// Package scrape - render.go provides the headless-browser strategies.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

// ScrollStep is one step of the human-mimicry scroll script: scroll to a
// fraction of the page height, then pause for a randomized delay. Timing
// tuning happens here, not in control flow.
type ScrollStep struct {
	Fraction float64
	MinDelay time.Duration
	MaxDelay time.Duration
}

// DefaultScrollScript walks the page in stages to trigger lazy-loaded
// sections, then returns to the top.
func DefaultScrollScript() []ScrollStep {
	return []ScrollStep{
		{Fraction: 0.25, MinDelay: 800 * time.Millisecond, MaxDelay: 1800 * time.Millisecond},
		{Fraction: 0.5, MinDelay: 800 * time.Millisecond, MaxDelay: 1800 * time.Millisecond},
		{Fraction: 0.8, MinDelay: 1 * time.Second, MaxDelay: 2 * time.Second},
		{Fraction: 1.0, MinDelay: 1 * time.Second, MaxDelay: 2500 * time.Millisecond},
		{Fraction: 0, MinDelay: 500 * time.Millisecond, MaxDelay: 1200 * time.Millisecond},
	}
}

// overlaySelectors are known interstitial/consent overlays worth a dismiss
// attempt. Clicks that find nothing are ignored.
var overlaySelectors = []string{
	`button[id*="accept"]`,
	`button[class*="accept"]`,
	`button[aria-label="Dismiss"]`,
	`button[aria-label="Close"]`,
	`button.artdeco-modal__dismiss`,
	`.cookie-banner button`,
}

// renderPage loads the target in a fresh headless-browser context, runs the
// scroll script, and captures the rendered HTML. The browser context is
// scoped to this one call and torn down on return, success or not.
func renderPage(ctx context.Context, target Target, id identity.Identity, bundle *identity.Bundle, timeout time.Duration, script []ScrollStep) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.UserAgent(id.UserAgent),
			chromedp.WindowSize(id.ViewportW, id.ViewportH),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	actions := make([]chromedp.Action, 0, len(script)+6)
	if bundle != nil {
		actions = append(actions, setCookies(bundle, target.Host()))
	}
	actions = append(actions,
		chromedp.Navigate(target.URL),
		chromedp.WaitReady("body"),
		dismissOverlays(),
	)
	for _, step := range script {
		actions = append(actions,
			chromedp.Evaluate(fmt.Sprintf("window.scrollTo(0, document.body.scrollHeight * %f)", step.Fraction), nil),
			chromedp.Sleep(randomDelay(step.MinDelay, step.MaxDelay)),
		)
	}

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return "", err
	}
	return html, nil
}

func setCookies(bundle *identity.Bundle, host string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for _, c := range bundle.CookiesFor(host) {
			path := c.Path
			if path == "" {
				path = "/"
			}
			err := network.SetCookie(c.Name, c.Value).
				WithDomain(c.Domain).
				WithPath(path).
				WithSecure(true).
				Do(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func dismissOverlays() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for _, selector := range overlaySelectors {
			// Not finding the overlay is the normal case.
			_ = chromedp.Click(selector, chromedp.NodeVisible, chromedp.AtLeast(0)).Do(ctx)
		}
		return nil
	})
}

func renderFailure(methodID string, err error) AttemptResult {
	if errors.Is(err, context.DeadlineExceeded) {
		return failure(methodID, ReasonTimeout)
	}
	return failure(methodID, fmt.Sprintf("render failed: %v", err))
}

// AuthRenderStrategy renders the page carrying the pre-captured session. It
// verifies the session actually held after navigation; wall content is
// reported as auth_lost rather than returned.
type AuthRenderStrategy struct {
	markers *AuthMarkers
	bundle  *identity.Bundle
	timeout time.Duration
	script  []ScrollStep
	logger  *zap.Logger
}

// NewAuthRenderStrategy builds the authenticated render strategy.
func NewAuthRenderStrategy(cfg *config.Config, markers *AuthMarkers, bundle *identity.Bundle, logger *zap.Logger) *AuthRenderStrategy {
	return &AuthRenderStrategy{
		markers: markers,
		bundle:  bundle,
		timeout: cfg.RenderTimeout,
		script:  DefaultScrollScript(),
		logger:  logger,
	}
}

// ID implements Strategy.
func (s *AuthRenderStrategy) ID() string { return MethodAuthRender }

// Applies implements Strategy; without a credential bundle there is nothing
// to authenticate with.
func (s *AuthRenderStrategy) Applies(Target) bool { return s.bundle != nil }

// Fetch implements Strategy.
func (s *AuthRenderStrategy) Fetch(ctx context.Context, target Target, id identity.Identity) AttemptResult {
	s.logger.Debug("attempting authenticated render",
		zap.String("url", target.URL), zap.String("user_agent", id.UserAgent))

	html, err := renderPage(ctx, target, id, s.bundle, s.timeout, s.script)
	if err != nil {
		return renderFailure(MethodAuthRender, err)
	}
	if !s.markers.Authenticated(html) {
		s.logger.Debug("session rejected by source", zap.String("url", target.URL))
		return failure(MethodAuthRender, ReasonAuthLost)
	}

	return AttemptResult{
		Succeeded:   true,
		Content:     html,
		ContentKind: normalize.KindHTML,
		MethodID:    MethodAuthRender,
	}
}

// GuestRenderStrategy renders the page with no credentials attached. The
// returned content may be a reduced public view; that is acceptable.
type GuestRenderStrategy struct {
	timeout time.Duration
	script  []ScrollStep
	logger  *zap.Logger
}

// NewGuestRenderStrategy builds the unauthenticated render strategy.
func NewGuestRenderStrategy(cfg *config.Config, logger *zap.Logger) *GuestRenderStrategy {
	return &GuestRenderStrategy{
		timeout: cfg.RenderTimeout,
		script:  DefaultScrollScript(),
		logger:  logger,
	}
}

// ID implements Strategy.
func (s *GuestRenderStrategy) ID() string { return MethodGuestRender }

// Applies implements Strategy.
func (s *GuestRenderStrategy) Applies(Target) bool { return true }

// Fetch implements Strategy.
func (s *GuestRenderStrategy) Fetch(ctx context.Context, target Target, id identity.Identity) AttemptResult {
	s.logger.Debug("attempting guest render",
		zap.String("url", target.URL), zap.String("user_agent", id.UserAgent))

	html, err := renderPage(ctx, target, id, nil, s.timeout, s.script)
	if err != nil {
		return renderFailure(MethodGuestRender, err)
	}

	return AttemptResult{
		Succeeded:   true,
		Content:     html,
		ContentKind: normalize.KindHTML,
		MethodID:    MethodGuestRender,
	}
}
