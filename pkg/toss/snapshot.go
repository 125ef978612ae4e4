package toss

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
)

// SchemaVersion identifies the wire shape of a Snapshot. It is bumped only
// when the serialized shape changes incompatibly.
const SchemaVersion = 0

// ErrUnsupportedSchema is returned when decoding a Snapshot with a
// SchemaVersion this build does not understand (spec §9 Open Question,
// decided fail-closed: an unrecognized version is never best-effort parsed).
var ErrUnsupportedSchema = errors.New("toss: unsupported snapshot schema version")

var snapWireMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("toss: unreachable: " + err.Error())
	}
	return mode
}()

var snapDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic("toss: unreachable: " + err.Error())
	}
	return mode
}()

// Snapshot is the serializable projection of a State an external
// collaborator periodically persists (spec §4.7 "Persistence boundary"):
// the four accumulated maps plus currentEpochOrSlot, tagged with a numeric
// schema version.
type Snapshot struct {
	SchemaVersion uint16
	Position      uint64
	Commitments   message.CommitmentsMap
	Openings      message.OpeningsMap
	Shares        message.SharesMap
	Certificates  message.VssCertificatesMap
}

// TakeSnapshot captures s's current state as a Snapshot.
func (s *State) TakeSnapshot() Snapshot {
	return Snapshot{
		SchemaVersion: SchemaVersion,
		Position:      s.Position(),
		Commitments:   s.Commitments(),
		Openings:      s.Openings(),
		Shares:        s.Shares(),
		Certificates:  s.Certificates(),
	}
}

// Restore replaces s's contents with the snapshot's.
func (s *State) Restore(snap Snapshot) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.pos = snap.Position
	s.commitments = make(message.CommitmentsMap, len(snap.Commitments))
	for k, v := range snap.Commitments {
		s.commitments[k] = v
	}
	s.openings = make(message.OpeningsMap, len(snap.Openings))
	for k, v := range snap.Openings {
		s.openings[k] = v
	}
	s.shares = make(message.SharesMap, len(snap.Shares))
	for decryptor, byOriginal := range snap.Shares {
		inner := make(map[party.Key]message.Share, len(byOriginal))
		for original, share := range byOriginal {
			inner[original] = share
		}
		s.shares[decryptor] = inner
	}
	s.certificates = make(message.VssCertificatesMap, len(snap.Certificates))
	for k, v := range snap.Certificates {
		s.certificates[k] = v
	}
}

type snapshotWire struct {
	_             struct{} `cbor:",toarray"`
	SchemaVersion uint16
	Position      uint64
	Commitments   map[string][]byte
	Openings      map[string][]byte
	Shares        map[string]map[string][]byte
	Certificates  map[string][]byte
}

// MarshalBinary implements the canonical encoding for Snapshot.
func (snap Snapshot) MarshalBinary() ([]byte, error) {
	commitments := make(map[string][]byte, len(snap.Commitments))
	for k, v := range snap.Commitments {
		b, err := v.MarshalBinary()
		if err != nil {
			return nil, err
		}
		commitments[string(k)] = b
	}
	openings := make(map[string][]byte, len(snap.Openings))
	for k, v := range snap.Openings {
		b, err := v.MarshalBinary()
		if err != nil {
			return nil, err
		}
		openings[string(k)] = b
	}
	shares := make(map[string]map[string][]byte, len(snap.Shares))
	for decryptor, byOriginal := range snap.Shares {
		inner := make(map[string][]byte, len(byOriginal))
		for original, share := range byOriginal {
			b, err := share.MarshalBinary()
			if err != nil {
				return nil, err
			}
			inner[string(original)] = b
		}
		shares[string(decryptor)] = inner
	}
	certificates := make(map[string][]byte, len(snap.Certificates))
	for k, v := range snap.Certificates {
		b, err := v.MarshalBinary()
		if err != nil {
			return nil, err
		}
		certificates[string(k)] = b
	}
	return snapWireMode.Marshal(snapshotWire{
		SchemaVersion: snap.SchemaVersion,
		Position:      snap.Position,
		Commitments:   commitments,
		Openings:      openings,
		Shares:        shares,
		Certificates:  certificates,
	})
}

// UnmarshalBinary implements the canonical decoding for Snapshot, rejecting
// any SchemaVersion it does not recognize.
func (snap *Snapshot) UnmarshalBinary(b []byte) error {
	var w snapshotWire
	if err := snapDecMode.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("toss: decode snapshot: %w", err)
	}
	if w.SchemaVersion != SchemaVersion {
		return ErrUnsupportedSchema
	}

	commitments := make(message.CommitmentsMap, len(w.Commitments))
	for k, data := range w.Commitments {
		var sc message.SignedCommitment
		if err := sc.UnmarshalBinary(data); err != nil {
			return err
		}
		commitments[party.Key(k)] = sc
	}
	openings := make(message.OpeningsMap, len(w.Openings))
	for k, data := range w.Openings {
		var o message.Opening
		if err := o.UnmarshalBinary(data); err != nil {
			return err
		}
		openings[party.Key(k)] = o
	}
	shares := make(message.SharesMap, len(w.Shares))
	for decryptor, byOriginal := range w.Shares {
		inner := make(map[party.Key]message.Share, len(byOriginal))
		for original, data := range byOriginal {
			var sh message.Share
			if err := sh.UnmarshalBinary(data); err != nil {
				return err
			}
			inner[party.Key(original)] = sh
		}
		shares[party.Key(decryptor)] = inner
	}
	certificates := make(message.VssCertificatesMap, len(w.Certificates))
	for k, data := range w.Certificates {
		var cert message.VssCertificate
		if err := cert.UnmarshalBinary(data); err != nil {
			return err
		}
		certificates[party.Key(k)] = cert
	}

	snap.SchemaVersion = w.SchemaVersion
	snap.Position = w.Position
	snap.Commitments = commitments
	snap.Openings = openings
	snap.Shares = shares
	snap.Certificates = certificates
	return nil
}
