package toss

import (
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
)

// Txn is a journaling transactional wrapper over a State: it records every
// mutation applied through it so that an outer driver can apply a block's
// operations optimistically and either Commit or Rollback them atomically
// (spec §4.7 "Rollback"). This mirrors the teacher's MultiHandler abort
// path: each mutation appends an undo closure, and the checkpoint is simply
// the point where Begin was called. Position changes made via SetEpochOrSlot
// are journaled the same way as map mutations.
type Txn struct {
	state *State
	undo  []func()
}

// Begin starts a new transaction over s.
func (s *State) Begin() *Txn {
	return &Txn{state: s}
}

// Commit discards the undo journal, making every mutation applied through
// t permanent.
func (t *Txn) Commit() {
	t.undo = nil
}

// Rollback undoes every mutation applied through t, in reverse order, and
// discards the journal.
func (t *Txn) Rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// PutCommitment applies State.PutCommitment, journaling the prior value (or
// its absence) for Rollback.
func (t *Txn) PutCommitment(signer party.Key, sc message.SignedCommitment) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.commitments[signer]
	s.mtx.Unlock()

	s.PutCommitment(signer, sc)
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		if existed {
			s.commitments[signer] = prev
		} else {
			delete(s.commitments, signer)
		}
	})
}

// PutOpening applies State.PutOpening, journaling the prior value for
// Rollback.
func (t *Txn) PutOpening(signer party.Key, o message.Opening) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.openings[signer]
	s.mtx.Unlock()

	s.PutOpening(signer, o)
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		if existed {
			s.openings[signer] = prev
		} else {
			delete(s.openings, signer)
		}
	})
}

// PutShares applies State.PutShares, journaling the prior per-original
// values it overwrites for Rollback.
func (t *Txn) PutShares(decryptor party.Key, shares map[party.Key]message.Share) {
	s := t.state
	s.mtx.Lock()
	prevByOriginal := make(map[party.Key]message.Share, len(shares))
	existed := make(map[party.Key]bool, len(shares))
	byOriginal := s.shares[decryptor]
	for original := range shares {
		if byOriginal != nil {
			if prev, ok := byOriginal[original]; ok {
				prevByOriginal[original] = prev
				existed[original] = true
			}
		}
	}
	s.mtx.Unlock()

	s.PutShares(decryptor, shares)
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		inner := s.shares[decryptor]
		for original := range shares {
			if existed[original] {
				inner[original] = prevByOriginal[original]
			} else {
				delete(inner, original)
			}
		}
	})
}

// PutCertificate applies State.PutCertificate, journaling the prior value
// for Rollback.
func (t *Txn) PutCertificate(signer party.Key, cert message.VssCertificate) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.certificates[signer]
	s.mtx.Unlock()

	s.PutCertificate(signer, cert)
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		if existed {
			s.certificates[signer] = prev
		} else {
			delete(s.certificates, signer)
		}
	})
}

// DelCommitment applies State.DelCommitment, journaling the removed value (if
// any) for Rollback.
func (t *Txn) DelCommitment(signer party.Key) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.commitments[signer]
	s.mtx.Unlock()

	s.DelCommitment(signer)
	if !existed {
		return
	}
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		s.commitments[signer] = prev
	})
}

// DelOpening applies State.DelOpening, journaling the removed value (if any)
// for Rollback.
func (t *Txn) DelOpening(signer party.Key) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.openings[signer]
	s.mtx.Unlock()

	s.DelOpening(signer)
	if !existed {
		return
	}
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		s.openings[signer] = prev
	})
}

// DelShares applies State.DelShares, journaling the removed per-original
// share map (if any) for Rollback.
func (t *Txn) DelShares(decryptor party.Key) {
	s := t.state
	s.mtx.Lock()
	prev, existed := s.shares[decryptor]
	s.mtx.Unlock()

	s.DelShares(decryptor)
	if !existed {
		return
	}
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		s.shares[decryptor] = prev
	})
}

// ResetCOS applies State.ResetCOS, journaling the full prior commitments,
// openings and shares maps for Rollback.
func (t *Txn) ResetCOS() {
	s := t.state
	s.mtx.Lock()
	prevCommitments := make(message.CommitmentsMap, len(s.commitments))
	for k, v := range s.commitments {
		prevCommitments[k] = v
	}
	prevOpenings := make(message.OpeningsMap, len(s.openings))
	for k, v := range s.openings {
		prevOpenings[k] = v
	}
	prevShares := make(message.SharesMap, len(s.shares))
	for decryptor, byOriginal := range s.shares {
		inner := make(map[party.Key]message.Share, len(byOriginal))
		for original, share := range byOriginal {
			inner[original] = share
		}
		prevShares[decryptor] = inner
	}
	s.mtx.Unlock()

	s.ResetCOS()
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		s.commitments = prevCommitments
		s.openings = prevOpenings
		s.shares = prevShares
	})
}

// SetEpochOrSlot applies State.SetEpochOrSlot, journaling the prior position
// for Rollback.
func (t *Txn) SetEpochOrSlot(pos uint64) error {
	s := t.state
	s.mtx.Lock()
	prev := s.pos
	s.mtx.Unlock()

	if err := s.SetEpochOrSlot(pos); err != nil {
		return err
	}
	t.undo = append(t.undo, func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		s.pos = prev
	})
	return nil
}
