package pvss

import (
	"io"

	"github.com/luxfi/ssc/internal/transcript"
	"github.com/luxfi/ssc/pkg/curve"
)

// schnorrProof is a non-interactive Schnorr proof of knowledge of the
// discrete log of a public point (a signature, or a proof that a revealed
// secret matches a commitment).
type schnorrProof struct {
	a curve.Point
	z curve.Scalar
}

func schnorrChallenge(public, a curve.Point, msg []byte) (curve.Scalar, error) {
	t := transcript.NewChallengeTranscript()
	pubBytes, err := public.MarshalBinary()
	if err != nil {
		return curve.Scalar{}, err
	}
	aBytes, err := a.MarshalBinary()
	if err != nil {
		return curve.Scalar{}, err
	}
	t.WriteBytes(pubBytes).WriteBytes(aBytes).WriteBytes(msg)
	return curve.Scalar{}.SetBytes(t.Sum(32)), nil
}

func schnorrProve(rng io.Reader, secret curve.Scalar, public curve.Point, msg []byte) (schnorrProof, error) {
	k, err := hedgedScalar(rng, secret, msg)
	if err != nil {
		return schnorrProof{}, err
	}
	a := k.ActOnBase()
	e, err := schnorrChallenge(public, a, msg)
	if err != nil {
		return schnorrProof{}, err
	}
	z := k.Add(e.Mul(secret))
	return schnorrProof{a: a, z: z}, nil
}

func schnorrCheck(public curve.Point, msg []byte, proof schnorrProof) bool {
	e, err := schnorrChallenge(public, proof.a, msg)
	if err != nil {
		return false
	}
	lhs := proof.z.ActOnBase()
	rhs := proof.a.Add(e.Act(public))
	return lhs.Equal(rhs)
}

// Sign produces a Schnorr signature over msg under k's secret key. It is the
// mkSignedCommitment/VssCertificate signing primitive (spec §3, §4.4).
func Sign(rng io.Reader, k SigningKey, msg []byte) ([]byte, error) {
	proof, err := schnorrProve(rng, k.secret, k.public, msg)
	if err != nil {
		return nil, err
	}
	return encodeSchnorrProof(proof)
}

// Verify checks a signature produced by Sign against a PK, per spec §3's
// verifyCommitmentSignature / verifyCertificate contracts.
func Verify(pk []byte, msg, sig []byte) bool {
	public, err := parsePoint(pk)
	if err != nil {
		return false
	}
	proof, err := decodeSchnorrProof(sig)
	if err != nil {
		return false
	}
	return schnorrCheck(public, msg, proof)
}
