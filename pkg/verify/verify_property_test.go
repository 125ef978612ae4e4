package verify_test

import (
	"crypto/rand"
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/ssc/pkg/construct"
	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/verify"
)

func genVPKsForSuite(n int) []party.VPK {
	out := make([]party.VPK, n)
	for i := 0; i < n; i++ {
		k, err := pvss.GenerateVssKeyPair(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		vpk, err := k.PublicKey()
		Expect(err).NotTo(HaveOccurred())
		out[i] = vpk
	}
	return out
}

var _ = Describe("Construction-verification consistency", func() {
	It("always accepts a freshly constructed Commitment/Opening for any valid (n, t)", func() {
		property := func(nRaw, tRaw uint8) bool {
			n := int(nRaw%8) + 1
			t := int(tRaw%uint8(n)) + 1
			if t < 1 || t > n {
				return true
			}

			vpks := genVPKsForSuite(n)
			commitment, opening, err := construct.GenCommitmentAndOpening(rand.Reader, t, vpks)
			if err != nil {
				return false
			}
			return verify.Commitment(commitment).OK() && verify.Opening(commitment, opening).OK()
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})

	It("rejects an Opening whose secret does not match the commitment, for any distinct secrets", func() {
		property := func(seed1, seed2 uint64) bool {
			if seed1 == seed2 {
				return true
			}
			vpks := genVPKsForSuite(3)
			commitment, _, err := construct.GenCommitmentAndOpening(rand.Reader, 2, vpks)
			if err != nil {
				return false
			}
			wrong := curve.ScalarFromUint64(seed2 + 1)
			return !verify.Opening(commitment, message.Opening{Secret: wrong.Bytes()}).OK()
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})
})

var _ = Describe("Wrong-epoch rejection", func() {
	It("never verifies a SignedCommitment's signature against a different epoch", func() {
		property := func(epochRaw uint8) bool {
			epoch := message.EpochIndex(epochRaw)
			vpks := genVPKsForSuite(3)
			commitment, _, err := construct.GenCommitmentAndOpening(rand.Reader, 2, vpks)
			if err != nil {
				return false
			}
			sk, err := pvss.GenerateSigningKey(rand.Reader)
			if err != nil {
				return false
			}
			pk, err := sk.PublicKey()
			if err != nil {
				return false
			}
			signed, err := construct.MkSignedCommitment(rand.Reader, sk, epoch, commitment)
			if err != nil {
				return false
			}
			return !verify.SignedCommitment(epoch+1, signed, pk).OK()
		}
		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})
})
