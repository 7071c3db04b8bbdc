// Package scrape - endpoint.go provides the direct public-endpoint strategy.
package scrape

import (
	"context"
	"errors"
	"fmt"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

// DefaultJobEndpointBase is the public unauthenticated endpoint that serves
// job posting fragments keyed by posting ID.
const DefaultJobEndpointBase = "https://www.linkedin.com/jobs-guest/jobs/api/jobPosting"

// DirectEndpointStrategy fetches job postings from the public guest
// endpoint with a plain HTTP request. No browser involved, which makes it
// far cheaper and less fragile than rendering when it is available.
type DirectEndpointStrategy struct {
	client  *resty.Client
	baseURL string
	logger  *zap.Logger
}

// NewDirectEndpointStrategy builds the endpoint strategy.
func NewDirectEndpointStrategy(cfg *config.Config, logger *zap.Logger) *DirectEndpointStrategy {
	client := resty.New()
	client.SetTimeout(cfg.EndpointTimeout)
	client.SetRetryCount(0)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &DirectEndpointStrategy{
		client:  client,
		baseURL: DefaultJobEndpointBase,
		logger:  logger,
	}
}

// WithBaseURL overrides the endpoint base. Used by tests.
func (s *DirectEndpointStrategy) WithBaseURL(base string) *DirectEndpointStrategy {
	s.baseURL = base
	return s
}

// ID implements Strategy.
func (s *DirectEndpointStrategy) ID() string { return MethodDirectEndpoint }

// Applies implements Strategy; only job targets expose a public endpoint,
// and only when an ID can be parsed out of the URL.
func (s *DirectEndpointStrategy) Applies(target Target) bool {
	return target.Kind == KindJob && JobID(target.URL) != ""
}

// Fetch implements Strategy.
func (s *DirectEndpointStrategy) Fetch(ctx context.Context, target Target, id identity.Identity) AttemptResult {
	jobID := JobID(target.URL)
	endpoint := fmt.Sprintf("%s/%s", s.baseURL, jobID)

	s.logger.Debug("attempting direct endpoint fetch",
		zap.String("endpoint", endpoint), zap.String("job_id", jobID))

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", id.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		Get(endpoint)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return failure(MethodDirectEndpoint, ReasonTimeout)
		}
		return failure(MethodDirectEndpoint, fmt.Sprintf("request failed: %v", err))
	}

	if resp.StatusCode() != 200 {
		return failure(MethodDirectEndpoint, fmt.Sprintf("HTTP status %d", resp.StatusCode()))
	}

	body := resp.String()
	if body == "" {
		return failure(MethodDirectEndpoint, ReasonEmptyContent)
	}

	return AttemptResult{
		Succeeded:   true,
		Content:     body,
		ContentKind: normalize.KindHTML,
		MethodID:    MethodDirectEndpoint,
	}
}
