package pvss

import (
	"io"

	"github.com/luxfi/ssc/internal/transcript"
	"github.com/luxfi/ssc/pkg/curve"
)

// dleqProof is a non-interactive Chaum-Pedersen proof of equality of discrete
// logs: it proves knowledge of a scalar x such that sH = x*G and sX = x*X,
// for public bases G (the curve basepoint) and X (a recipient's VPK point),
// without revealing x.
type dleqProof struct {
	a1 curve.Point
	a2 curve.Point
	e  curve.Scalar
	z  curve.Scalar
}

func dleqChallenge(x, sH, sX, a1, a2 curve.Point) (curve.Scalar, error) {
	t := transcript.NewChallengeTranscript()
	for _, p := range []curve.Point{x, sH, sX, a1, a2} {
		b, err := p.MarshalBinary()
		if err != nil {
			return curve.Scalar{}, err
		}
		t.WriteBytes(b)
	}
	return curve.Scalar{}.SetBytes(t.Sum(32)), nil
}

// dleqProve proves that sH = witness*G and sX = witness*x, where x is the
// recipient's VPK point.
func dleqProve(rng io.Reader, x curve.Point, witness curve.Scalar, sH, sX curve.Point) (dleqProof, error) {
	k, err := hedgedScalar(rng, witness, []byte("ssc-dleq-nonce"))
	if err != nil {
		return dleqProof{}, err
	}
	a1 := k.ActOnBase()
	a2 := k.Act(x)
	e, err := dleqChallenge(x, sH, sX, a1, a2)
	if err != nil {
		return dleqProof{}, err
	}
	z := k.Add(e.Mul(witness))
	return dleqProof{a1: a1, a2: a2, e: e, z: z}, nil
}

// dleqVerify checks a dleqProof against the public values it was produced
// for. It independently recomputes the Fiat-Shamir challenge rather than
// trusting the proof's embedded e, so a forged e cannot shortcut either
// verification equation.
func dleqVerify(x, sH, sX curve.Point, proof dleqProof) bool {
	e, err := dleqChallenge(x, sH, sX, proof.a1, proof.a2)
	if err != nil {
		return false
	}
	if !e.Equal(proof.e) {
		return false
	}
	lhs1 := proof.z.ActOnBase()
	rhs1 := proof.a1.Add(e.Act(sH))
	if !lhs1.Equal(rhs1) {
		return false
	}
	lhs2 := proof.z.Act(x)
	rhs2 := proof.a2.Add(e.Act(sX))
	return lhs2.Equal(rhs2)
}
