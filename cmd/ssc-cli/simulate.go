package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/ssc/pkg/construct"
	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/seed"
	"github.com/luxfi/ssc/pkg/toss"
	"github.com/luxfi/ssc/pkg/verify"
)

var (
	simParties   int
	simThreshold int
	simDropper   int

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one epoch's three-phase MPC round in memory",
		RunE:  runSimulate,
	}
)

func init() {
	simulateCmd.Flags().IntVarP(&simParties, "parties", "n", 5, "number of stakeholders")
	simulateCmd.Flags().IntVarP(&simThreshold, "threshold", "t", 3, "PVSS reconstruction threshold")
	simulateCmd.Flags().IntVar(&simDropper, "drop", -1, "index of a stakeholder who never publishes their Opening (-1 to disable)")
}

type stakeholder struct {
	key    party.Key
	signer pvss.SigningKey
	pk     party.PK
	vss    pvss.VssKeyPair
	vpk    party.VPK
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simThreshold < 1 || simThreshold > simParties {
		return fmt.Errorf("threshold must satisfy 1 <= t <= n")
	}

	stakeholders := make([]stakeholder, simParties)
	vssKeys := make([]party.VPK, simParties)
	for i := range stakeholders {
		signer, err := pvss.GenerateSigningKey(rand.Reader)
		if err != nil {
			return err
		}
		pk, err := signer.PublicKey()
		if err != nil {
			return err
		}
		vss, err := pvss.GenerateVssKeyPair(rand.Reader)
		if err != nil {
			return err
		}
		vpk, err := vss.PublicKey()
		if err != nil {
			return err
		}
		stakeholders[i] = stakeholder{key: pk.AsKey(), signer: signer, pk: pk, vss: vss, vpk: vpk}
		vssKeys[i] = vpk
	}

	state := toss.NewState()
	const epoch message.EpochIndex = 0

	for _, sh := range stakeholders {
		payload, err := message.EncodeCertificatePayload(sh.vpk, epoch+1)
		if err != nil {
			return err
		}
		sig, err := pvss.Sign(rand.Reader, sh.signer, payload)
		if err != nil {
			return err
		}
		cert := message.VssCertificate{Signer: sh.pk, VssKey: sh.vpk, Expiry: epoch + 1, Signature: sig}
		if r := verify.Certificate(cert, epoch); !r.OK() {
			return fmt.Errorf("self-signed certificate failed to verify: %v", r.Kinds)
		}
		state.PutCertificate(sh.key, cert)
	}
	logger.Info("certificates issued", "count", len(stakeholders))

	commitments := make(map[party.Key]message.Commitment, simParties)
	openings := make(map[party.Key]message.Opening, simParties)
	for i, sh := range stakeholders {
		commitment, opening, err := construct.GenCommitmentAndOpening(rand.Reader, simThreshold, vssKeys)
		if err != nil {
			return fmt.Errorf("stakeholder %d: generating commitment: %w", i, err)
		}
		signed, err := construct.MkSignedCommitment(rand.Reader, sh.signer, epoch, commitment)
		if err != nil {
			return err
		}
		if r := verify.SignedCommitment(epoch, signed, sh.pk); !r.OK() {
			return fmt.Errorf("stakeholder %d: own commitment failed to verify: %v", i, r.Kinds)
		}
		state.PutCommitment(sh.key, signed)
		commitments[sh.key] = commitment
		openings[sh.key] = opening
	}
	logger.Info("commitments published", "count", len(commitments))

	contributions := make([]seed.FtsSeed, 0, simParties)
	for i, sh := range stakeholders {
		commitment := commitments[sh.key]

		if i == simDropper {
			logger.Info("stakeholder withholding opening, reconstructing via shares", "index", i)
			decrypted := make(map[party.Key]message.Share, len(stakeholders))
			vssKeyByDecryptor := make(map[party.Key]party.VPK, len(stakeholders))
			for _, decryptor := range stakeholders {
				es, ok := commitment.Shares[decryptor.vpk.AsKey()]
				if !ok {
					continue
				}
				share, err := pvss.DecryptShare(decryptor.vss, commitment.Extra, es)
				if err != nil {
					return err
				}
				decrypted[decryptor.key] = share
				vssKeyByDecryptor[decryptor.key] = decryptor.vpk
				state.PutShares(decryptor.key, map[party.Key]message.Share{sh.key: share})
			}
			recoveryShares, err := pvss.GatherRecoveryShares(vssKeyByDecryptor, decrypted)
			if err != nil {
				return err
			}
			point, err := pvss.Recover(simThreshold, recoveryShares)
			if err != nil {
				return err
			}
			contributions = append(contributions, seed.FromPoint(point))
			continue
		}

		opening := openings[sh.key]
		state.PutOpening(sh.key, opening)
		if r := verify.Opening(commitment, opening); !r.OK() {
			return fmt.Errorf("stakeholder %d: own opening failed to verify: %v", i, r.Kinds)
		}
		secret := curve.Scalar{}.SetBytes(opening.Secret)
		contributions = append(contributions, seed.FromSecret(secret))
	}

	finalSeed, err := seed.XorAll(contributions...)
	if err != nil {
		return err
	}
	fmt.Printf("epoch %d FTS seed: %x\n", epoch, []byte(finalSeed))
	return nil
}
