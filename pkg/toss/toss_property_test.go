package toss_test

import (
	"fmt"
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/toss"
)

var _ = Describe("Rollback correctness", func() {
	It("always restores the pre-transaction commitment set, for any sequence of puts", func() {
		property := func(seeds []uint8) bool {
			if len(seeds) > 12 {
				seeds = seeds[:12]
			}
			s := toss.NewState()
			before := make(map[party.Key]message.SignedCommitment)
			for i, sd := range seeds {
				key := party.Key(fmt.Sprintf("stakeholder-%d", i%4))
				sc := message.SignedCommitment{Signature: []byte{sd}}
				s.PutCommitment(key, sc)
				before[key] = sc
			}

			txn := s.Begin()
			for i, sd := range seeds {
				key := party.Key(fmt.Sprintf("stakeholder-%d", i%4))
				txn.PutCommitment(key, message.SignedCommitment{Signature: []byte{sd ^ 0xff}})
			}
			txn.Rollback()

			after := s.Commitments()
			if len(after) != len(before) {
				return false
			}
			for k, v := range before {
				if got, ok := after[k]; !ok || string(got.Signature) != string(v.Signature) {
					return false
				}
			}
			return true
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})
})

var _ = Describe("Schema-version fail-closed behavior", func() {
	It("never decodes a snapshot whose schema version does not match, for any non-matching version", func() {
		property := func(delta uint16) bool {
			if delta == 0 {
				return true
			}
			s := toss.NewState()
			s.PutCertificate(party.Key("alice"), message.VssCertificate{Expiry: 1})
			snap := s.TakeSnapshot()
			snap.SchemaVersion = toss.SchemaVersion + delta

			b, err := snap.MarshalBinary()
			if err != nil {
				return false
			}
			var decoded toss.Snapshot
			return decoded.UnmarshalBinary(b) != nil
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})
})

var _ = Describe("Position monotonicity", func() {
	It("never allows the logical clock to move backwards, for any sequence of positions", func() {
		property := func(positions []uint16) bool {
			if len(positions) == 0 {
				return true
			}
			s := toss.NewState()
			var max uint64
			for _, p := range positions {
				pos := uint64(p)
				err := s.SetEpochOrSlot(pos)
				if pos >= max {
					if err != nil {
						return false
					}
					max = pos
				} else if err == nil {
					return false
				}
			}
			return s.Position() == max
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})
})
