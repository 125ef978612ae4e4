package pvss

import (
	"io"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
)

// recipientScalar derives a recipient's Shamir evaluation point deterministically
// from their VSS key, so verifyEncShare(extra, vpk, encShare) needs no
// knowledge of the other recipients or their ordering (spec §6).
func recipientScalar(vpk party.VPK) curve.Scalar {
	return vpk.AsKey().Scalar()
}

// GenSharedSecret samples a fresh degree-(t-1) Shamir polynomial and PVSS-
// shares its secret to every key in vssKeys (spec §4.3, §6). A t outside
// [1, len(vssKeys)] is rejected with ErrBadThreshold. Duplicate keys are not
// checked here; pkg/construct rejects them (as sscerr.BadThreshold) before
// calling this.
func GenSharedSecret(rng io.Reader, t int, vssKeys []party.VPK) (extra []byte, secret curve.Scalar, proof []byte, shares map[party.Key]message.EncShare, err error) {
	if t < 1 || t > len(vssKeys) {
		return nil, curve.Scalar{}, nil, nil, ErrBadThreshold
	}
	secretScalar, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, curve.Scalar{}, nil, nil, err
	}
	poly, err := curve.NewPolynomial(rng, t-1, secretScalar)
	if err != nil {
		return nil, curve.Scalar{}, nil, nil, err
	}
	commitment := poly.Commit()

	shares = make(map[party.Key]message.EncShare, len(vssKeys))
	for _, vpk := range vssKeys {
		recipient, perr := parsePoint(vpk)
		if perr != nil {
			return nil, curve.Scalar{}, nil, nil, perr
		}
		x := recipientScalar(vpk)
		shareScalar := poly.Evaluate(x)
		sH := curve.EvaluateCommitment(commitment, x)
		sX := shareScalar.Act(recipient)

		dProof, derr := dleqProve(rng, recipient, shareScalar, sH, sX)
		if derr != nil {
			return nil, curve.Scalar{}, nil, nil, derr
		}
		data, eerr := encodeEncShare(sX, dProof)
		if eerr != nil {
			return nil, curve.Scalar{}, nil, nil, eerr
		}
		shares[vpk.AsKey()] = message.EncShare{Data: data}
	}

	extra, err = encodeExtra(commitment)
	if err != nil {
		return nil, curve.Scalar{}, nil, nil, err
	}
	secretProof, err := schnorrProve(rng, secretScalar, commitment[0], nil)
	if err != nil {
		return nil, curve.Scalar{}, nil, nil, err
	}
	proof, err = encodeSchnorrProof(secretProof)
	if err != nil {
		return nil, curve.Scalar{}, nil, nil, err
	}
	return extra, secretScalar, proof, shares, nil
}

// VerifyEncShare checks that an EncShare addressed to vpk is consistent with
// the polynomial committed to in extra, without decrypting it (spec §6).
func VerifyEncShare(extra []byte, vpk party.VPK, es message.EncShare) bool {
	commitment, err := decodeExtra(extra)
	if err != nil {
		return false
	}
	recipient, err := parsePoint(vpk)
	if err != nil {
		return false
	}
	sX, proof, err := decodeEncShare(es.Data)
	if err != nil {
		return false
	}
	x := recipientScalar(vpk)
	sH := curve.EvaluateCommitment(commitment, x)
	return dleqVerify(recipient, sH, sX, proof)
}

// VerifySecretProof checks that a revealed Opening secret matches the
// commitment's extra payload (spec §4.5, §6): verifyOpening delegates to
// this after decoding Opening.Secret into a scalar.
func VerifySecretProof(extra []byte, secret curve.Scalar, proof []byte) bool {
	commitment, err := decodeExtra(extra)
	if err != nil {
		return false
	}
	if !secret.ActOnBase().Equal(commitment[0]) {
		return false
	}
	sProof, err := decodeSchnorrProof(proof)
	if err != nil {
		return false
	}
	return schnorrCheck(commitment[0], nil, sProof)
}

// DecryptShare recovers the point-form share g^{p(x_vpk)} addressed to vpk's
// holder, using the holder's VSS secret key. The result is not the raw
// Shamir share scalar (exponent-ElGamal encryption does not allow recovering
// it), but it is exactly the value Recover's Lagrange-in-the-exponent
// combination needs to reconstruct the committed secret's basepoint multiple.
func DecryptShare(k VssKeyPair, extra []byte, es message.EncShare) (message.Share, error) {
	sX, _, err := decodeEncShare(es.Data)
	if err != nil {
		return message.Share{}, err
	}
	point := k.secret.Inverse().Act(sX)
	b, err := point.MarshalBinary()
	if err != nil {
		return message.Share{}, err
	}
	return message.Share{Data: b}, nil
}
