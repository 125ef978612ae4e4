// Package transcript provides the BLAKE3-based Fiat-Shamir transcript and
// content-hashing helper shared by pkg/pvss, pkg/seed and pkg/message.
package transcript

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// domain separates independent uses of the hash function so that a
// challenge computed for one purpose can never collide with another.
type domain string

const (
	domainChallenge domain = "github.com/luxfi/ssc/pvss challenge v1"
	domainSeed      domain = "github.com/luxfi/ssc/seed secretToFtsSeed v1"
	domainContent   domain = "github.com/luxfi/ssc/message content-hash v1"
)

// Transcript accumulates length-prefixed byte strings into a BLAKE3 hasher,
// mirroring the teacher's round.Hash().WritePoint/.WriteBytes().Sum() idiom.
type Transcript struct {
	h *blake3.Hasher
}

func newTranscript(d domain) *Transcript {
	h := blake3.New()
	_, _ = h.Write([]byte(d))
	return &Transcript{h: h}
}

// NewChallengeTranscript starts a transcript used to derive Fiat-Shamir
// challenge scalars for Schnorr/DLEQ proofs.
func NewChallengeTranscript() *Transcript { return newTranscript(domainChallenge) }

// NewSeedTranscript starts a transcript used to derive an FtsSeed from a
// recovered PVSS secret (secretToFtsSeed).
func NewSeedTranscript() *Transcript { return newTranscript(domainSeed) }

// NewContentTranscript starts a transcript used to derive a message's
// canonical content hash.
func NewContentTranscript() *Transcript { return newTranscript(domainContent) }

// WriteBytes feeds a length-prefixed byte string into the transcript so that
// ambiguous concatenations (e.g. "ab"+"c" vs "a"+"bc") cannot collide.
func (t *Transcript) WriteBytes(b []byte) *Transcript {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	_, _ = t.h.Write(lenBuf[:])
	_, _ = t.h.Write(b)
	return t
}

// WriteUint64 feeds a fixed-width integer into the transcript.
func (t *Transcript) WriteUint64(v uint64) *Transcript {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = t.h.Write(buf[:])
	return t
}

// Sum finalizes the transcript and returns n bytes of output. BLAKE3 is an
// extendable-output function, so any n is supported without re-hashing.
func (t *Transcript) Sum(n int) []byte {
	out := make([]byte, n)
	d := t.h.Digest()
	_, _ = d.Read(out)
	return out
}
