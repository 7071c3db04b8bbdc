package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(SlotJob)
	assert.False(t, ok)

	s.Set(SlotJob, "job text")
	v, ok := s.Get(SlotJob)
	require.True(t, ok)
	assert.Equal(t, "job text", v)
}

func TestStore_UpstreamWriteClearsGenerated(t *testing.T) {
	upstream := []Slot{SlotResume, SlotJob, SlotCompany, SlotRecruiter}

	for _, u := range upstream {
		s := NewStore()
		s.Set(SlotMatch, "match")
		s.Set(SlotCoverLetter, "letter")
		s.Set(SlotMessage, "message")

		s.Set(u, "new input")

		for _, g := range []Slot{SlotMatch, SlotCoverLetter, SlotMessage} {
			_, ok := s.Get(g)
			assert.False(t, ok, "slot %s should be cleared after writing %s", g, u)
		}
	}
}

func TestStore_GeneratedWriteKeepsOthers(t *testing.T) {
	s := NewStore()
	s.Set(SlotMatch, "match")
	s.Set(SlotCoverLetter, "letter")

	v, ok := s.Get(SlotMatch)
	require.True(t, ok)
	assert.Equal(t, "match", v)
}

func TestStore_ManualFlagExclusiveWithValue(t *testing.T) {
	s := NewStore()

	s.Set(SlotJob, "value")
	s.RequireManual(SlotJob, &ManualPrompt{Message: "paste it"})

	_, ok := s.Get(SlotJob)
	assert.False(t, ok, "value must be cleared when manual flag is set")

	prompt, ok := s.ManualRequired(SlotJob)
	require.True(t, ok)
	assert.Equal(t, "paste it", prompt.Message)

	s.Set(SlotJob, "manual value")
	_, ok = s.ManualRequired(SlotJob)
	assert.False(t, ok, "manual flag must be cleared when value is set")
}

func TestStore_ResetAll(t *testing.T) {
	s := NewStore()
	s.Set(SlotResume, "r")
	s.Set(SlotJob, "j")
	s.RequireManual(SlotCompany, &ManualPrompt{Message: "m"})

	s.ResetAll()

	for _, slot := range []Slot{SlotResume, SlotJob, SlotCompany, SlotRecruiter, SlotMatch, SlotCoverLetter, SlotMessage} {
		_, ok := s.Get(slot)
		assert.False(t, ok)
		_, ok = s.ManualRequired(slot)
		assert.False(t, ok)
	}
}

func TestStore_UnknownSlotPanics(t *testing.T) {
	s := NewStore()
	assert.Panics(t, func() { s.Set(Slot("bogus"), "v") })
	assert.Panics(t, func() { s.Get(Slot("bogus")) })
	assert.Panics(t, func() { s.RequireManual(Slot("bogus"), nil) })
}

func TestIsUpstream(t *testing.T) {
	assert.True(t, IsUpstream(SlotResume))
	assert.True(t, IsUpstream(SlotRecruiter))
	assert.False(t, IsUpstream(SlotMatch))
	assert.False(t, IsUpstream(SlotMessage))
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()

	id := m.Create()
	store, ok := m.Get(id)
	require.True(t, ok)

	store.Set(SlotJob, "v")

	m.Destroy(id)
	_, ok = m.Get(id)
	assert.False(t, ok)
}

func TestManager_UnknownID(t *testing.T) {
	m := NewManager()
	_, ok := m.Get("nope")
	assert.False(t, ok)
}
