package pvss

import (
	"hash"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/hkdf"

	"github.com/luxfi/ssc/pkg/curve"
)

// hedgedScalar derives a proof nonce the way modern Schnorr/EdDSA
// implementations do: instead of trusting rng alone (a broken RNG leaks the
// witness scalar immediately, per the well-known Schnorr nonce-reuse
// failure), it draws fresh entropy from rng and stretches it, together with
// the witness and a domain-separated context, through HKDF. A compromised
// or low-entropy rng alone can no longer force a repeated nonce as long as
// the witness stays secret.
func hedgedScalar(rng io.Reader, witness curve.Scalar, context []byte) (curve.Scalar, error) {
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return curve.Scalar{}, err
	}
	reader := hkdf.New(func() hash.Hash { return blake3.New() }, witness.Bytes(), salt, context)
	out := make([]byte, 32)
	if _, err := io.ReadFull(reader, out); err != nil {
		return curve.Scalar{}, err
	}
	return curve.Scalar{}.SetBytes(out), nil
}
