// Package verify checks protocol messages against the PVSS crypto adapter
// and the signing keys they claim to come from (spec §4.5, component C5).
// Every check returns a Result rather than a bare bool or the first error:
// callers that need to log or score every defect a message has (not just
// the first one found) can inspect Result.Kinds directly.
package verify

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/sscerr"
)

// Result collects every distinct failure kind a check found. A Result with
// no kinds is valid.
type Result struct {
	Kinds []sscerr.Kind
}

// OK reports whether the checked value passed every check.
func (r Result) OK() bool { return len(r.Kinds) == 0 }

// Has reports whether the result recorded a given failure kind.
func (r Result) Has(kind sscerr.Kind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (r *Result) fail(kind sscerr.Kind) {
	if !r.Has(kind) {
		r.Kinds = append(r.Kinds, kind)
	}
}

// Commitment checks that every encrypted share in c is consistent with c's
// Feldman commitment (spec §4.5: verifyCommitment(C) holds iff
// verifyEncShare holds for every (vpk, share) pair in C.shares). It checks
// every recipient rather than stopping at the first bad share, but records
// BadCommitment only once however many shares fail, so the Result does not
// say how many or which shares were bad. An empty Extra or Shares is
// reported as MalformedMessage without checking any share.
func Commitment(c message.Commitment) Result {
	var r Result
	if len(c.Extra) == 0 || len(c.Shares) == 0 {
		r.fail(sscerr.MalformedMessage)
		return r
	}
	// Each recipient's DLEQ check is independent CPU-bound work, so a
	// commitment with many stakeholders verifies faster fanned out across
	// goroutines than checked one share at a time.
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for key, es := range c.Shares {
		key, es := key, es
		g.Go(func() error {
			vpk := party.VPK(key.Bytes())
			if !pvss.VerifyEncShare(c.Extra, vpk, es) {
				mu.Lock()
				r.fail(sscerr.BadCommitment)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return r
}

// CommitmentSignature checks sc.Signature against pk over (epoch,
// sc.Commitment) (spec §4.5).
func CommitmentSignature(epoch message.EpochIndex, sc message.SignedCommitment, pk party.PK) Result {
	var r Result
	payload, err := message.EncodeSigningPayload(epoch, sc.Commitment)
	if err != nil {
		r.fail(sscerr.MalformedMessage)
		return r
	}
	if !pvss.Verify(pk, payload, sc.Signature) {
		r.fail(sscerr.BadSignature)
	}
	return r
}

// SignedCommitment runs both Commitment and CommitmentSignature, aggregating
// their failures into a single Result.
func SignedCommitment(epoch message.EpochIndex, sc message.SignedCommitment, pk party.PK) Result {
	r := Commitment(sc.Commitment)
	sigResult := CommitmentSignature(epoch, sc, pk)
	r.Kinds = append(r.Kinds, sigResult.Kinds...)
	return r
}

// Opening checks that o's revealed secret matches c's commitment proof
// (spec §4.5: verifyOpening(C, O) holds iff verifySecretProof(C.extra,
// O.secret, C.proof) holds).
func Opening(c message.Commitment, o message.Opening) Result {
	var r Result
	if len(o.Secret) == 0 {
		r.fail(sscerr.MalformedMessage)
		return r
	}
	secret := curve.Scalar{}.SetBytes(o.Secret)
	if !pvss.VerifySecretProof(c.Extra, secret, c.Proof) {
		r.fail(sscerr.BadOpening)
	}
	return r
}

// Certificate checks a VssCertificate's signature against its claimed
// signer and that it has not expired as of e (spec §4.5:
// verifyCertificate(cert, E) ≡ signature valid AND cert.Expiry >= E).
func Certificate(cert message.VssCertificate, e message.EpochIndex) Result {
	var r Result
	payload, err := message.EncodeCertificatePayload(cert.VssKey, cert.Expiry)
	if err != nil {
		r.fail(sscerr.MalformedMessage)
		return r
	}
	if !pvss.Verify(cert.Signer, payload, cert.Signature) {
		r.fail(sscerr.BadSignature)
	}
	if cert.Expiry < e {
		r.fail(sscerr.Expired)
	}
	return r
}
