// Package pvss is the crypto adapter (spec §4.3, §6, component C3): the
// single trust boundary between the SSC core and concrete elliptic-curve
// cryptography. Every protocol operation (sharing, share and secret
// verification, decryption, recovery, signing) goes through this package's
// exported functions; pkg/party, pkg/seed and pkg/verify still import
// pkg/curve directly for Scalar and Point values.
//
// The construction is a Schoenmakers-style Publicly Verifiable Secret
// Sharing scheme: a Feldman-committed Shamir polynomial, exponent-ElGamal
// encrypted shares (share * recipientVPK) each carrying a Chaum-Pedersen
// DLEQ proof of consistency with the public polynomial commitment, and
// Schnorr signatures/proofs of knowledge for the signature and
// secret-proof contracts.
package pvss

import (
	"io"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/party"
)

// SigningKey is a stakeholder's secret signing key (the private half of a
// spec §3 PK).
type SigningKey struct {
	secret curve.Scalar
	public curve.Point
}

// GenerateSigningKey samples a fresh signing keypair.
func GenerateSigningKey(rng io.Reader) (SigningKey, error) {
	sk, pk, err := curve.GenerateKeyPair(rng)
	if err != nil {
		return SigningKey{}, err
	}
	return SigningKey{secret: sk, public: pk}, nil
}

// PublicKey returns the PK corresponding to k.
func (k SigningKey) PublicKey() (party.PK, error) {
	b, err := k.public.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return party.PK(b), nil
}

// VssKeyPair is a stakeholder's VSS keypair (the private half of a spec §3
// VPK).
type VssKeyPair struct {
	secret curve.Scalar
	public curve.Point
}

// GenerateVssKeyPair samples a fresh VSS keypair.
func GenerateVssKeyPair(rng io.Reader) (VssKeyPair, error) {
	sk, pk, err := curve.GenerateKeyPair(rng)
	if err != nil {
		return VssKeyPair{}, err
	}
	return VssKeyPair{secret: sk, public: pk}, nil
}

// PublicKey returns the VPK corresponding to k.
func (k VssKeyPair) PublicKey() (party.VPK, error) {
	b, err := k.public.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return party.VPK(b), nil
}

func parsePoint(b []byte) (curve.Point, error) {
	var p curve.Point
	if err := p.UnmarshalBinary(b); err != nil {
		return curve.Point{}, err
	}
	return p, nil
}
