package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/phase"
)

func TestScheduleWorkedExample(t *testing.T) {
	s := phase.NewSchedule(2)
	assert.Equal(t, 12, s.EpochLength())

	commitment := []message.LocalSlotIndex{0, 1}
	opening := []message.LocalSlotIndex{4, 5}
	shares := []message.LocalSlotIndex{8, 9}
	idle := []message.LocalSlotIndex{2, 3, 6, 7, 10, 11}

	for _, slot := range commitment {
		assert.True(t, s.IsCommitmentPhase(slot), "slot %d should be commitment", slot)
		assert.False(t, s.IsIdle(slot))
	}
	for _, slot := range opening {
		assert.True(t, s.IsOpeningPhase(slot), "slot %d should be opening", slot)
		assert.False(t, s.IsIdle(slot))
	}
	for _, slot := range shares {
		assert.True(t, s.IsSharesPhase(slot), "slot %d should be shares", slot)
		assert.False(t, s.IsIdle(slot))
	}
	for _, slot := range idle {
		assert.True(t, s.IsIdle(slot), "slot %d should be idle", slot)
	}
}

func TestPhasesAreMutuallyExclusive(t *testing.T) {
	s := phase.NewSchedule(3)
	for i := message.LocalSlotIndex(0); i < message.LocalSlotIndex(s.EpochLength()); i++ {
		count := 0
		if s.IsCommitmentPhase(i) {
			count++
		}
		if s.IsOpeningPhase(i) {
			count++
		}
		if s.IsSharesPhase(i) {
			count++
		}
		if s.IsIdle(i) {
			count++
		}
		assert.Equal(t, 1, count, "slot %d must belong to exactly one window", i)
	}
}

func TestSlotIdWrappers(t *testing.T) {
	s := phase.NewSchedule(2)
	id := message.SlotId{Epoch: 7, Slot: 4}
	assert.True(t, s.OpeningPhase(id))
	assert.False(t, s.CommitmentPhase(id))
	assert.False(t, s.SharesPhase(id))
}
