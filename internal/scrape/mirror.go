package scrape

import (
	"context"

	"github.com/jonathan/recruiter-agent/internal/identity"
)

// MirrorStrategy is the extension point for third-party mirror sources of
// posting content. No mirror is wired up yet, so it always reports failure
// and the controller escalates past it.
type MirrorStrategy struct{}

// NewMirrorStrategy builds the mirror-source placeholder strategy.
func NewMirrorStrategy() *MirrorStrategy { return &MirrorStrategy{} }

// ID implements Strategy.
func (s *MirrorStrategy) ID() string { return MethodMirror }

// Applies implements Strategy.
func (s *MirrorStrategy) Applies(Target) bool { return true }

// Fetch implements Strategy.
func (s *MirrorStrategy) Fetch(context.Context, Target, identity.Identity) AttemptResult {
	return failure(MethodMirror, ReasonNotImplemented)
}
