// Package phase maps epoch-local slot indices onto the three-phase MPC
// protocol's commitment/opening/shares windows (spec §4.6, component C6).
package phase

import "github.com/luxfi/ssc/pkg/message"

// Schedule maps slot indices to phases for a fixed security parameter K: the
// number of slots in each of the three phase windows. K is a runtime value,
// never a compile-time constant, so a node can be reconfigured without a
// rebuild.
type Schedule struct {
	K int
}

// NewSchedule returns a Schedule for the given security parameter. K must
// be positive.
func NewSchedule(k int) Schedule {
	return Schedule{K: k}
}

// EpochLength returns the number of slots in one epoch under this schedule
// (6*K, per spec §4.6).
func (s Schedule) EpochLength() int {
	return 6 * s.K
}

// IsCommitmentPhase reports whether slot s falls in [0, K).
func (s Schedule) IsCommitmentPhase(slot message.LocalSlotIndex) bool {
	return int(slot) < s.K
}

// IsOpeningPhase reports whether slot s falls in [2K, 3K).
func (s Schedule) IsOpeningPhase(slot message.LocalSlotIndex) bool {
	i := int(slot)
	return i >= 2*s.K && i < 3*s.K
}

// IsSharesPhase reports whether slot s falls in [4K, 5K).
func (s Schedule) IsSharesPhase(slot message.LocalSlotIndex) bool {
	i := int(slot)
	return i >= 4*s.K && i < 5*s.K
}

// IsIdle reports whether slot s falls in none of the three phase windows.
func (s Schedule) IsIdle(slot message.LocalSlotIndex) bool {
	return !s.IsCommitmentPhase(slot) && !s.IsOpeningPhase(slot) && !s.IsSharesPhase(slot)
}

// CommitmentPhase reports whether id's slot falls in the commitment phase.
func (s Schedule) CommitmentPhase(id message.SlotId) bool { return s.IsCommitmentPhase(id.Slot) }

// OpeningPhase reports whether id's slot falls in the opening phase.
func (s Schedule) OpeningPhase(id message.SlotId) bool { return s.IsOpeningPhase(id.Slot) }

// SharesPhase reports whether id's slot falls in the shares phase.
func (s Schedule) SharesPhase(id message.SlotId) bool { return s.IsSharesPhase(id.Slot) }
