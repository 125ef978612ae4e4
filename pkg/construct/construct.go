// Package construct builds well-formed protocol messages (spec §4.4,
// component C4): turning a recipient list and a threshold into a Commitment
// and its matching Opening, and signing a Commitment into a
// SignedCommitment. It is the only package that calls pkg/pvss's generation
// entry point; every other package only verifies what this one produces.
package construct

import (
	"io"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/sscerr"
)

// GenCommitmentAndOpening samples a fresh PVSS-shared secret for vssKeys and
// returns the Commitment to publish now and the Opening to publish once the
// opening phase begins (spec §4.4). t must satisfy 1 <= t <= len(vssKeys),
// and vssKeys must contain no duplicate VSS key.
func GenCommitmentAndOpening(rng io.Reader, t int, vssKeys []party.VPK) (message.Commitment, message.Opening, error) {
	if t < 1 || t > len(vssKeys) {
		return message.Commitment{}, message.Opening{}, sscerr.New(sscerr.BadThreshold, "threshold must satisfy 1 <= t <= n")
	}
	seen := make(map[party.Key]struct{}, len(vssKeys))
	for _, vpk := range vssKeys {
		key := vpk.AsKey()
		if _, ok := seen[key]; ok {
			return message.Commitment{}, message.Opening{}, sscerr.New(sscerr.BadThreshold, "duplicate vss key in recipient list")
		}
		seen[key] = struct{}{}
	}

	extra, secret, proof, shares, err := pvss.GenSharedSecret(rng, t, vssKeys)
	if err != nil {
		return message.Commitment{}, message.Opening{}, sscerr.Wrap(sscerr.RngFailure, "pvss share generation failed", err)
	}
	commitment := message.Commitment{Extra: extra, Proof: proof, Shares: shares}
	opening := message.Opening{Secret: secret.Bytes()}
	return commitment, opening, nil
}

// MkSignedCommitment signs commitment for the given epoch under sk,
// producing the SignedCommitment a stakeholder actually broadcasts (spec
// §4.4).
func MkSignedCommitment(rng io.Reader, sk pvss.SigningKey, epoch message.EpochIndex, commitment message.Commitment) (message.SignedCommitment, error) {
	payload, err := message.EncodeSigningPayload(epoch, commitment)
	if err != nil {
		return message.SignedCommitment{}, sscerr.Wrap(sscerr.MalformedMessage, "encoding signing payload", err)
	}
	sig, err := pvss.Sign(rng, sk, payload)
	if err != nil {
		return message.SignedCommitment{}, sscerr.Wrap(sscerr.RngFailure, "signing commitment", err)
	}
	return message.SignedCommitment{Commitment: commitment, Signature: sig}, nil
}
