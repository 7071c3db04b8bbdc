// Package session holds per-session state for the interactive flow. All
// state is in memory; nothing survives a session reset or process exit.
package session

import (
	"fmt"
	"sync"
)

// Slot names the fixed set of values a session can hold. The set is closed;
// operating on anything else is a programming error and panics.
type Slot string

const (
	// Upstream input slots.
	SlotResume    Slot = "resume"
	SlotJob       Slot = "job"
	SlotCompany   Slot = "company"
	SlotRecruiter Slot = "recruiter"

	// Generated artifact slots, derived from the upstream slots.
	SlotMatch       Slot = "match"
	SlotCoverLetter Slot = "cover_letter"
	SlotMessage     Slot = "message"
)

var upstreamSlots = map[Slot]bool{
	SlotResume:    true,
	SlotJob:       true,
	SlotCompany:   true,
	SlotRecruiter: true,
}

var generatedSlots = []Slot{SlotMatch, SlotCoverLetter, SlotMessage}

var knownSlots = map[Slot]bool{
	SlotResume:      true,
	SlotJob:         true,
	SlotCompany:     true,
	SlotRecruiter:   true,
	SlotMatch:       true,
	SlotCoverLetter: true,
	SlotMessage:     true,
}

// ManualPrompt carries the remediation instructions shown when automated
// extraction for a slot has been exhausted. The UI renders it verbatim.
type ManualPrompt struct {
	Message           string   `json:"message"`
	Steps             []string `json:"ordered_steps"`
	LastFailureReason string   `json:"last_failure_reason,omitempty"`
}

// Store is a thread-safe mapping from slot to value for one session.
// Writing an upstream slot invalidates every generated artifact, and a
// slot's manual-input flag is mutually exclusive with it holding a value.
type Store struct {
	mu     sync.RWMutex
	values map[Slot]any
	manual map[Slot]*ManualPrompt
}

// NewStore creates an empty store with every slot unset.
func NewStore() *Store {
	return &Store{
		values: make(map[Slot]any),
		manual: make(map[Slot]*ManualPrompt),
	}
}

func assertKnown(slot Slot) {
	if !knownSlots[slot] {
		panic(fmt.Sprintf("session: unknown slot %q", slot))
	}
}

// Set writes a value. Writing an upstream slot clears all generated
// artifact slots and any manual-input flag for that slot.
func (s *Store) Set(slot Slot, value any) {
	assertKnown(slot)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[slot] = value
	delete(s.manual, slot)

	if upstreamSlots[slot] {
		for _, g := range generatedSlots {
			delete(s.values, g)
		}
	}
}

// Get returns the slot value, or nil and false when unset.
func (s *Store) Get(slot Slot) (any, bool) {
	assertKnown(slot)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[slot]
	return v, ok
}

// RequireManual flags the slot as awaiting operator input and drops any
// stale value it held.
func (s *Store) RequireManual(slot Slot, prompt *ManualPrompt) {
	assertKnown(slot)
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, slot)
	s.manual[slot] = prompt
}

// ManualRequired returns the pending manual prompt for a slot, if any.
func (s *Store) ManualRequired(slot Slot) (*ManualPrompt, bool) {
	assertKnown(slot)
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.manual[slot]
	return p, ok
}

// ResetAll clears every slot and flag back to the initial empty state.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[Slot]any)
	s.manual = make(map[Slot]*ManualPrompt)
}

// IsKnown reports whether the slot names one of the fixed session slots.
func IsKnown(slot Slot) bool {
	return knownSlots[slot]
}

// IsUpstream reports whether the slot is an upstream input slot.
func IsUpstream(slot Slot) bool {
	assertKnown(slot)
	return upstreamSlots[slot]
}
