// Package message defines the immutable value types exchanged by the SSC
// protocol (spec §3, component C2): Commitment, Opening, Share,
// SignedCommitment and VssCertificate, plus their canonical binary encoding.
//
// Every type here is a pure data holder. Constructing a well-formed instance
// (pkg/construct) and checking one (pkg/verify) both live in separate
// packages; this package only knows how to hold and (de)serialize values.
package message

import "github.com/luxfi/ssc/pkg/party"

// EpochIndex identifies an epoch.
type EpochIndex uint64

// LocalSlotIndex identifies a slot within an epoch, in [0, 6k).
type LocalSlotIndex uint64

// SlotId is a fully-qualified slot position.
type SlotId struct {
	Epoch EpochIndex
	Slot  LocalSlotIndex
}

// EncShare is an opaque encrypted share produced by the crypto adapter
// (pkg/pvss). Its internal structure (ciphertext, consistency proof) is a
// trust-boundary detail the data model does not need to know; only pkg/pvss
// decodes its contents.
type EncShare struct {
	Data []byte
}

// Commitment is a PVSS commitment: an opaque auxiliary payload, an opaque
// proof that the payload and shares correspond to a well-defined secret, and
// the mapping from each intended recipient's VSS key to their encrypted
// share (spec §3).
type Commitment struct {
	Extra  []byte
	Proof  []byte
	Shares map[party.Key]EncShare
}

// RecipientKeys returns the sorted VSS keys in the commitment's share
// domain.
func (c Commitment) RecipientKeys() party.IDSlice {
	keys := make(party.IDSlice, 0, len(c.Shares))
	for k := range c.Shares {
		keys = append(keys, k)
	}
	return keys.Sort()
}

// SignedCommitment pairs a Commitment with a signature over (epoch,
// commitment) produced by the committing stakeholder (spec §3, §4.4).
type SignedCommitment struct {
	Commitment Commitment
	Signature  []byte
}

// Opening carries the secret scalar that, combined with a Commitment,
// reconstructs the original seed contribution (spec §3).
type Opening struct {
	Secret []byte
}

// Share is a decrypted share of some other stakeholder's secret (spec §3).
type Share struct {
	Data []byte
}

// SharesMap is the nested PK_decryptor -> PK_original -> Share mapping
// (spec §3): SharesMap[x][y] is the share x has decrypted of y's
// commitment.
type SharesMap map[party.Key]map[party.Key]Share

// CommitmentsMap maps each stakeholder to their (at most one) commitment for
// the current epoch.
type CommitmentsMap map[party.Key]SignedCommitment

// OpeningsMap maps each stakeholder to their opening for the current epoch.
type OpeningsMap map[party.Key]Opening

// VssCertificate is a VSS public key signed by a stakeholder's signing key,
// carrying the epoch at which the certificate expires (spec §3).
type VssCertificate struct {
	Signer    party.PK
	VssKey    party.VPK
	Expiry    EpochIndex
	Signature []byte
}

// VssCertificatesMap maps each stakeholder to their current certificate.
type VssCertificatesMap map[party.Key]VssCertificate
