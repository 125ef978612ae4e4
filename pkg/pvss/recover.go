package pvss

import (
	"strconv"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
)

// RecoveryShare is one decryptor's contribution toward reconstructing
// another stakeholder's secret: the decryptor's own VSS evaluation point and
// the point-form share they decrypted from that stakeholder's commitment.
type RecoveryShare struct {
	X     curve.Scalar
	Point curve.Point
}

// Recover reconstructs secretToDhSecret(secret) — the committed secret's
// basepoint multiple — from at least threshold decrypted shares, via
// Lagrange interpolation carried out in the exponent (spec §4.6, §6). It
// never recovers the raw secret scalar: exponent-ElGamal decryption only
// ever yields point-form shares, which is exactly what seed.FromPoint's
// Diffie-Hellman-style reduction consumes.
func Recover(threshold int, shares []RecoveryShare) (curve.Point, error) {
	if len(shares) < threshold {
		return curve.Point{}, ErrNotEnoughShares
	}
	used := shares[:threshold]
	xs := make(map[string]curve.Scalar, len(used))
	for i, s := range used {
		xs[strconv.Itoa(i)] = s.X
	}
	lambdas := curve.Lagrange(xs)

	result := curve.IdentityPoint()
	for i, s := range used {
		lambda := lambdas[strconv.Itoa(i)]
		result = result.Add(lambda.Act(s.Point))
	}
	return result, nil
}

// GatherRecoveryShares assembles the RecoveryShare list for a target
// stakeholder from the decryptors' raw message.Share contributions and
// their certified VSS keys, the bookkeeping a driver (such as cmd/ssc-cli's
// simulate) needs for a fallback reconstruction when a stakeholder never
// publishes their Opening. Decryptors with no entry in decryptorVssKeys are
// skipped.
func GatherRecoveryShares(decryptorVssKeys map[party.Key]party.VPK, decrypted map[party.Key]message.Share) ([]RecoveryShare, error) {
	out := make([]RecoveryShare, 0, len(decrypted))
	for decryptor, share := range decrypted {
		vpk, ok := decryptorVssKeys[decryptor]
		if !ok {
			continue
		}
		var point curve.Point
		if err := point.UnmarshalBinary(share.Data); err != nil {
			return nil, err
		}
		out = append(out, RecoveryShare{X: recipientScalar(vpk), Point: point})
	}
	return out, nil
}

// SecretToDhSecret maps a revealed Opening secret to its Diffie-Hellman
// basepoint multiple, the same reduction Recover produces for the
// PVSS-reconstructed fallback path (spec §6).
func SecretToDhSecret(secret curve.Scalar) curve.Point {
	return secret.ActOnBase()
}

// GetDhSecret returns the canonical byte encoding of a DH secret point, the
// form pkg/seed hashes into an FtsSeed.
func GetDhSecret(p curve.Point) ([]byte, error) {
	return p.MarshalBinary()
}
