// Package seed implements the FTS seed algebra (spec §4.1, component C1):
// the fixed-width byte representation of a Follow-the-Satoshi seed, its XOR
// combinator, and the Diffie-Hellman-style reduction of a recovered PVSS
// secret into a seed.
package seed

import (
	"errors"

	"github.com/luxfi/ssc/internal/transcript"
	"github.com/luxfi/ssc/pkg/curve"
)

// Length is the fixed byte width of an FtsSeed (the PVSS secret byte length).
const Length = 32

// ErrLengthMismatch is returned by Xor when its operands have different
// lengths.
var ErrLengthMismatch = errors.New("seed: length mismatch")

// FtsSeed is the random value used to select slot leaders for an epoch. It
// is always exactly Length bytes.
type FtsSeed []byte

// Zero is the identity element of Xor: an all-zeros seed.
func Zero() FtsSeed {
	return make(FtsSeed, Length)
}

// Xor returns the element-wise XOR of a and b. It is commutative,
// associative, and has Zero() as its identity (spec §8 property 4). Both
// operands must have equal length or ErrLengthMismatch is returned.
func Xor(a, b FtsSeed) (FtsSeed, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make(FtsSeed, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// XorAll folds Xor across every seed in seeds, returning Zero() for an empty
// input. Used to combine every participant's contribution into the final
// epoch seed.
func XorAll(seeds ...FtsSeed) (FtsSeed, error) {
	acc := Zero()
	for _, s := range seeds {
		next, err := Xor(acc, s)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// FromSecret implements secretToFtsSeed: a fixed, deterministic
// Diffie-Hellman-style reduction of a recovered PVSS secret scalar to a
// byte-field element. The secret's basepoint multiple is hashed with a
// domain-separated BLAKE3 transcript, so that recovering the same secret
// twice always yields the same seed, and no two distinct secrets are
// expected to collide.
func FromSecret(secret curve.Scalar) FtsSeed {
	return FromPoint(secret.ActOnBase())
}

// FromPoint applies the same reduction as FromSecret directly to an
// already-known Diffie-Hellman secret point. A fallback reconstruction via
// PVSS shares (pkg/pvss.Recover) only ever recovers this point form — never
// the raw secret scalar — so this is the entry point that path uses.
func FromPoint(point curve.Point) FtsSeed {
	encoded, err := point.MarshalBinary()
	if err != nil {
		// MarshalBinary on a curve.Point never fails; a well-formed
		// Point always yields an encodable value.
		panic("seed: unreachable: " + err.Error())
	}
	digest := transcript.NewSeedTranscript().WriteBytes(encoded).Sum(Length)
	return FtsSeed(digest)
}
