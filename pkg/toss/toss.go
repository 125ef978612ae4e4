// Package toss accumulates verified protocol messages for the current epoch
// (spec §4.7, component C7): commitments, openings, shares and VSS
// certificates, plus the monotonic currentEpochOrSlot position. Rollback is
// provided by Txn's undo journal. The mutex-guarded map-of-maps accumulator
// and its store shape (no duplicate check: every put overwrites) are
// modeled on the teacher's
// pkg/protocol/handler.go MultiHandler and protocols/lss/dealer/dealer.go
// BootstrapDealer, repurposed from round-message accumulation to
// epoch-message accumulation.
package toss

import (
	"errors"
	"sync"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
)

// TossRead is the read-only view over an epoch's accumulated state (spec §9
// "pervasive type-class abstraction" redesign: callers that only ever
// inspect state take this narrower interface instead of the full Toss).
type TossRead interface {
	Commitments() message.CommitmentsMap
	Openings() message.OpeningsMap
	Shares() message.SharesMap
	Certificates() message.VssCertificatesMap
	Position() uint64
}

// Toss is the read-write view over an epoch's accumulated state.
type Toss interface {
	TossRead
	PutCommitment(signer party.Key, sc message.SignedCommitment)
	PutOpening(signer party.Key, o message.Opening)
	PutShares(decryptor party.Key, shares map[party.Key]message.Share)
	PutCertificate(signer party.Key, cert message.VssCertificate)
	DelCommitment(signer party.Key)
	DelOpening(signer party.Key)
	DelShares(decryptor party.Key)
	ResetCOS()
	SetEpochOrSlot(pos uint64) error
}

// State is the in-memory reference implementation of Toss.
type State struct {
	mtx sync.Mutex

	commitments  message.CommitmentsMap
	openings     message.OpeningsMap
	shares       message.SharesMap
	certificates message.VssCertificatesMap
	pos          uint64
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{
		commitments:  make(message.CommitmentsMap),
		openings:     make(message.OpeningsMap),
		shares:       make(message.SharesMap),
		certificates: make(message.VssCertificatesMap),
	}
}

// Commitments returns a snapshot copy of the accumulated commitments.
func (s *State) Commitments() message.CommitmentsMap {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make(message.CommitmentsMap, len(s.commitments))
	for k, v := range s.commitments {
		out[k] = v
	}
	return out
}

// Openings returns a snapshot copy of the accumulated openings.
func (s *State) Openings() message.OpeningsMap {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make(message.OpeningsMap, len(s.openings))
	for k, v := range s.openings {
		out[k] = v
	}
	return out
}

// Shares returns a snapshot copy of the accumulated shares.
func (s *State) Shares() message.SharesMap {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make(message.SharesMap, len(s.shares))
	for decryptor, byOriginal := range s.shares {
		inner := make(map[party.Key]message.Share, len(byOriginal))
		for original, share := range byOriginal {
			inner[original] = share
		}
		out[decryptor] = inner
	}
	return out
}

// Certificates returns a snapshot copy of the accumulated certificates.
func (s *State) Certificates() message.VssCertificatesMap {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make(message.VssCertificatesMap, len(s.certificates))
	for k, v := range s.certificates {
		out[k] = v
	}
	return out
}

// Position returns the current logical clock value (currentEpochOrSlot).
func (s *State) Position() uint64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.pos
}

// PutCommitment inserts signer's commitment. Per the §9 Open Question
// decision, this is an unchecked last-writer-wins insert: rejecting a
// duplicate is the verification layer's responsibility (spec §4.7, §7
// Duplicate), not the state's.
func (s *State) PutCommitment(signer party.Key, sc message.SignedCommitment) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.commitments[signer] = sc
}

// PutOpening inserts signer's opening (last-writer-wins, see PutCommitment).
func (s *State) PutOpening(signer party.Key, o message.Opening) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.openings[signer] = o
}

// PutShares records the shares decryptor has decrypted of other
// stakeholders' commitments (last-writer-wins per original key, see
// PutCommitment).
func (s *State) PutShares(decryptor party.Key, shares map[party.Key]message.Share) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	byOriginal, ok := s.shares[decryptor]
	if !ok {
		byOriginal = make(map[party.Key]message.Share, len(shares))
		s.shares[decryptor] = byOriginal
	}
	for original, share := range shares {
		byOriginal[original] = share
	}
}

// PutCertificate inserts signer's current VSS certificate (last-writer-wins,
// see PutCommitment).
func (s *State) PutCertificate(signer party.Key, cert message.VssCertificate) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.certificates[signer] = cert
}

// DelCommitment removes signer's commitment, if any (spec §4.7 mutating
// interface).
func (s *State) DelCommitment(signer party.Key) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.commitments, signer)
}

// DelOpening removes signer's opening, if any (spec §4.7 mutating
// interface).
func (s *State) DelOpening(signer party.Key) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.openings, signer)
}

// DelShares removes every share decryptor has recorded, if any (spec §4.7
// mutating interface).
func (s *State) DelShares(decryptor party.Key) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.shares, decryptor)
}

// ResetCOS clears commitments, openings and shares, leaving certificates
// untouched (spec §4.7 resetCOS(), §8 scenario S6): the three epoch-scoped
// message kinds are dropped together without starting a whole new epoch via
// Rollover.
func (s *State) ResetCOS() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.commitments = make(message.CommitmentsMap)
	s.openings = make(message.OpeningsMap)
	s.shares = make(message.SharesMap)
}

// ErrNonMonotonicPosition is returned by SetEpochOrSlot when pos would move
// the logical clock backwards.
var ErrNonMonotonicPosition = errors.New("toss: position must be non-decreasing")

// SetEpochOrSlot advances the logical clock (spec §4.7 currentEpochOrSlot).
// pos must be >= the current position.
func (s *State) SetEpochOrSlot(pos uint64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if pos < s.pos {
		return ErrNonMonotonicPosition
	}
	s.pos = pos
	return nil
}

// Rollover produces a new accumulator for the next epoch that retains only
// certificates, per spec §3's lifecycle description and the supplemented
// ResetCOS behavior: commitments, openings and shares are epoch-scoped and
// reset, while VSS certificates carry forward.
func (s *State) Rollover(next message.EpochIndex) *State {
	_ = next // the new epoch's identity is tracked externally via epoch.Context
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := NewState()
	for k, v := range s.certificates {
		out.certificates[k] = v
	}
	return out
}
