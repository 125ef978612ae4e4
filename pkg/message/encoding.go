package message

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/luxfi/ssc/internal/transcript"
	"github.com/luxfi/ssc/pkg/party"
)

// wireMode is the canonical encoder: CBOR Core Deterministic Encoding
// (RFC 8949 §4.2.1 — shortest-form integers, sorted map keys, no indefinite
// lengths), so that re-encoding a decoded message always reproduces the
// original bytes (spec §6, §8 property 6). Every exported type in this
// package is encoded through an unexported wire struct carrying the
// `toarray` struct tag, which CBOR encodes as
// a fixed-length array of its fields in declaration order: exactly the
// "length-prefixed, field-ordered" framing spec §6 requires.
var wireMode = func() cbor.EncMode {
	opts := cbor.CoreDetEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic("message: unreachable: " + err.Error())
	}
	return mode
}()

var decMode = func() cbor.DecMode {
	opts := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	mode, err := opts.DecMode()
	if err != nil {
		panic("message: unreachable: " + err.Error())
	}
	return mode
}()

// decodeExact decodes exactly one CBOR item from b. Unmarshal on a DecMode
// already rejects any bytes trailing the first item, satisfying spec §6's
// "decoders must reject trailing bytes".
func decodeExact(b []byte, v interface{}) error {
	if err := decMode.Unmarshal(b, v); err != nil {
		return fmt.Errorf("message: decode: %w", err)
	}
	return nil
}

type encShareWire struct {
	_    struct{} `cbor:",toarray"`
	Data []byte
}

// MarshalBinary implements the canonical encoding for EncShare.
func (e EncShare) MarshalBinary() ([]byte, error) {
	return wireMode.Marshal(encShareWire{Data: e.Data})
}

// UnmarshalBinary implements the canonical decoding for EncShare.
func (e *EncShare) UnmarshalBinary(b []byte) error {
	var w encShareWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	e.Data = w.Data
	return nil
}

type commitmentWire struct {
	_      struct{} `cbor:",toarray"`
	Extra  []byte
	Proof  []byte
	Shares map[string][]byte
}

// MarshalBinary implements the canonical encoding for Commitment.
func (c Commitment) MarshalBinary() ([]byte, error) {
	shares := make(map[string][]byte, len(c.Shares))
	for vpk, es := range c.Shares {
		encoded, err := es.MarshalBinary()
		if err != nil {
			return nil, err
		}
		shares[string(vpk)] = encoded
	}
	return wireMode.Marshal(commitmentWire{Extra: c.Extra, Proof: c.Proof, Shares: shares})
}

// UnmarshalBinary implements the canonical decoding for Commitment.
func (c *Commitment) UnmarshalBinary(b []byte) error {
	var w commitmentWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	shares := make(map[party.Key]EncShare, len(w.Shares))
	for vpk, data := range w.Shares {
		var es EncShare
		if err := es.UnmarshalBinary(data); err != nil {
			return err
		}
		shares[party.Key(vpk)] = es
	}
	c.Extra = w.Extra
	c.Proof = w.Proof
	c.Shares = shares
	return nil
}

// Hash returns the canonical content hash of the commitment, used as its
// identifier for signing and logging.
func (c Commitment) Hash() ([]byte, error) {
	encoded, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return transcript.NewContentTranscript().WriteBytes(encoded).Sum(32), nil
}

type signedCommitmentWire struct {
	_          struct{} `cbor:",toarray"`
	Commitment []byte
	Signature  []byte
}

// MarshalBinary implements the canonical encoding for SignedCommitment.
func (sc SignedCommitment) MarshalBinary() ([]byte, error) {
	encodedCommitment, err := sc.Commitment.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return wireMode.Marshal(signedCommitmentWire{Commitment: encodedCommitment, Signature: sc.Signature})
}

// UnmarshalBinary implements the canonical decoding for SignedCommitment.
func (sc *SignedCommitment) UnmarshalBinary(b []byte) error {
	var w signedCommitmentWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	var c Commitment
	if err := c.UnmarshalBinary(w.Commitment); err != nil {
		return err
	}
	sc.Commitment = c
	sc.Signature = w.Signature
	return nil
}

type openingWire struct {
	_      struct{} `cbor:",toarray"`
	Secret []byte
}

// MarshalBinary implements the canonical encoding for Opening.
func (o Opening) MarshalBinary() ([]byte, error) {
	return wireMode.Marshal(openingWire{Secret: o.Secret})
}

// UnmarshalBinary implements the canonical decoding for Opening.
func (o *Opening) UnmarshalBinary(b []byte) error {
	var w openingWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	o.Secret = w.Secret
	return nil
}

type shareWire struct {
	_    struct{} `cbor:",toarray"`
	Data []byte
}

// MarshalBinary implements the canonical encoding for Share.
func (s Share) MarshalBinary() ([]byte, error) {
	return wireMode.Marshal(shareWire{Data: s.Data})
}

// UnmarshalBinary implements the canonical decoding for Share.
func (s *Share) UnmarshalBinary(b []byte) error {
	var w shareWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	s.Data = w.Data
	return nil
}

type vssCertificateWire struct {
	_         struct{} `cbor:",toarray"`
	Signer    []byte
	VssKey    []byte
	Expiry    uint64
	Signature []byte
}

// MarshalBinary implements the canonical encoding for VssCertificate.
func (v VssCertificate) MarshalBinary() ([]byte, error) {
	return wireMode.Marshal(vssCertificateWire{
		Signer:    v.Signer,
		VssKey:    v.VssKey,
		Expiry:    uint64(v.Expiry),
		Signature: v.Signature,
	})
}

// UnmarshalBinary implements the canonical decoding for VssCertificate.
func (v *VssCertificate) UnmarshalBinary(b []byte) error {
	var w vssCertificateWire
	if err := decodeExact(b, &w); err != nil {
		return err
	}
	v.Signer = party.PK(w.Signer)
	v.VssKey = party.VPK(w.VssKey)
	v.Expiry = EpochIndex(w.Expiry)
	v.Signature = w.Signature
	return nil
}

// EncodeSigningPayload produces the canonical (epoch, commitment) byte
// string signed by mkSignedCommitment and checked by
// verifyCommitmentSignature (spec §3, §4.4, §4.5).
func EncodeSigningPayload(epoch EpochIndex, c Commitment) ([]byte, error) {
	encodedCommitment, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	type payload struct {
		_          struct{} `cbor:",toarray"`
		Epoch      uint64
		Commitment []byte
	}
	return wireMode.Marshal(payload{Epoch: uint64(epoch), Commitment: encodedCommitment})
}

// EncodeCertificatePayload produces the canonical (vssKey, expiry) byte
// string signed when issuing a VssCertificate and checked by
// verifyCertificate (spec §3, §4.7).
func EncodeCertificatePayload(vssKey party.VPK, expiry EpochIndex) ([]byte, error) {
	type payload struct {
		_      struct{} `cbor:",toarray"`
		VssKey []byte
		Expiry uint64
	}
	return wireMode.Marshal(payload{VssKey: vssKey, Expiry: uint64(expiry)})
}
