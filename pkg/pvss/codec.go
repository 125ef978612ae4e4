package pvss

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/luxfi/ssc/pkg/curve"
)

// wireMode mirrors pkg/message's canonical CBOR Core Deterministic Encoding:
// every extra/proof/EncShare payload this package produces must re-encode to
// identical bytes, since Commitment.Hash (pkg/message) is computed over it.
var wireMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("pvss: unreachable: " + err.Error())
	}
	return mode
}()

var decMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic("pvss: unreachable: " + err.Error())
	}
	return mode
}()

func decodeExact(b []byte, v interface{}) error {
	if err := decMode.Unmarshal(b, v); err != nil {
		return fmt.Errorf("pvss: decode: %w", err)
	}
	return nil
}

// extraWire is the structure of Commitment.Extra: the Feldman commitment to
// the dealer's polynomial, one point per coefficient (the constant term,
// commitment[0], is the public g^secret checked by verifySecretProof).
type extraWire struct {
	_          struct{} `cbor:",toarray"`
	Commitment [][]byte
}

func encodeExtra(commitment []curve.Point) ([]byte, error) {
	encoded := make([][]byte, len(commitment))
	for i, p := range commitment {
		b, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		encoded[i] = b
	}
	return wireMode.Marshal(extraWire{Commitment: encoded})
}

func decodeExtra(b []byte) ([]curve.Point, error) {
	var w extraWire
	if err := decodeExact(b, &w); err != nil {
		return nil, err
	}
	if len(w.Commitment) == 0 {
		return nil, ErrMalformed
	}
	points := make([]curve.Point, len(w.Commitment))
	for i, raw := range w.Commitment {
		p, err := parsePoint(raw)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// dleqProofWire is a non-interactive Chaum-Pedersen proof that the same
// exponent relates (basepoint, sH) and (recipientVPK, sX): the encrypted
// share sX is consistent with the publicly-evaluated Feldman commitment sH,
// without revealing the share itself.
type dleqProofWire struct {
	_  struct{} `cbor:",toarray"`
	A1 []byte
	A2 []byte
	E  []byte
	Z  []byte
}

// encShareWire is the decoded structure of a message.EncShare.Data payload.
type encShareWire struct {
	_     struct{} `cbor:",toarray"`
	SX    []byte
	Proof dleqProofWire
}

func encodeEncShare(sx curve.Point, proof dleqProof) ([]byte, error) {
	sxBytes, err := sx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	a1, err := proof.a1.MarshalBinary()
	if err != nil {
		return nil, err
	}
	a2, err := proof.a2.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return wireMode.Marshal(encShareWire{
		SX: sxBytes,
		Proof: dleqProofWire{
			A1: a1,
			A2: a2,
			E:  proof.e.Bytes(),
			Z:  proof.z.Bytes(),
		},
	})
}

func decodeEncShare(b []byte) (curve.Point, dleqProof, error) {
	var w encShareWire
	if err := decodeExact(b, &w); err != nil {
		return curve.Point{}, dleqProof{}, err
	}
	sx, err := parsePoint(w.SX)
	if err != nil {
		return curve.Point{}, dleqProof{}, err
	}
	a1, err := parsePoint(w.Proof.A1)
	if err != nil {
		return curve.Point{}, dleqProof{}, err
	}
	a2, err := parsePoint(w.Proof.A2)
	if err != nil {
		return curve.Point{}, dleqProof{}, err
	}
	proof := dleqProof{
		a1: a1,
		a2: a2,
		e:  curve.Scalar{}.SetBytes(w.Proof.E),
		z:  curve.Scalar{}.SetBytes(w.Proof.Z),
	}
	return sx, proof, nil
}

// schnorrProofWire is a non-interactive Schnorr proof of knowledge of the
// discrete log of a commitment point, used both for Sign/Verify and for
// verifySecretProof.
type schnorrProofWire struct {
	_ struct{} `cbor:",toarray"`
	A []byte
	Z []byte
}

func encodeSchnorrProof(proof schnorrProof) ([]byte, error) {
	a, err := proof.a.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return wireMode.Marshal(schnorrProofWire{A: a, Z: proof.z.Bytes()})
}

func decodeSchnorrProof(b []byte) (schnorrProof, error) {
	var w schnorrProofWire
	if err := decodeExact(b, &w); err != nil {
		return schnorrProof{}, err
	}
	a, err := parsePoint(w.A)
	if err != nil {
		return schnorrProof{}, err
	}
	return schnorrProof{a: a, z: curve.Scalar{}.SetBytes(w.Z)}, nil
}
