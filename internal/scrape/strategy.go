package scrape

import (
	"context"

	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

// Method IDs for the ranked strategies, in escalation order.
const (
	MethodAuthRender     = "auth_render"
	MethodGuestRender    = "guest_render"
	MethodDirectEndpoint = "direct_endpoint"
	MethodMirror         = "mirror"
	MethodManual         = "manual"
)

// Well-known failure reasons.
const (
	ReasonAuthLost        = "auth_lost"
	ReasonTimeout         = "timeout"
	ReasonBlocked         = "blocked"
	ReasonEmptyContent    = "empty_content"
	ReasonTooShort        = "content_too_short"
	ReasonNotApplicable   = "not_applicable"
	ReasonNotImplemented  = "not_implemented"
	ReasonNormalizeFailed = "normalize_failed"
)

// AttemptResult is the outcome of one strategy invocation. When Succeeded
// is false, FailureReason is meaningful and Content is empty.
type AttemptResult struct {
	Succeeded     bool
	Content       string
	ContentKind   normalize.ContentKind
	MethodID      string
	FailureReason string
}

func failure(methodID, reason string) AttemptResult {
	return AttemptResult{MethodID: methodID, FailureReason: reason}
}

// Strategy is one independent extraction method. Strategies hold no mutable
// state shared with other strategies; the credential bundle they may carry
// is read-only. This independence is what makes sequential fallback safe.
type Strategy interface {
	// ID returns the strategy's stable method identifier.
	ID() string
	// Applies reports whether the strategy can attempt this target at all.
	Applies(target Target) bool
	// Fetch attempts the extraction. It never returns a Go error; failures
	// are values carried in the result so the controller can escalate.
	Fetch(ctx context.Context, target Target, id identity.Identity) AttemptResult
}
