package construct_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssc/pkg/construct"
	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/sscerr"
	"github.com/luxfi/ssc/pkg/verify"
)

func genVPKs(t *testing.T, n int) []party.VPK {
	t.Helper()
	out := make([]party.VPK, n)
	for i := 0; i < n; i++ {
		k, err := pvss.GenerateVssKeyPair(rand.Reader)
		require.NoError(t, err)
		vpk, err := k.PublicKey()
		require.NoError(t, err)
		out[i] = vpk
	}
	return out
}

func TestGenCommitmentAndOpeningProducesVerifiablePair(t *testing.T) {
	vpks := genVPKs(t, 4)
	commitment, opening, err := construct.GenCommitmentAndOpening(rand.Reader, 3, vpks)
	require.NoError(t, err)

	assert.True(t, verify.Commitment(commitment).OK())
	assert.True(t, verify.Opening(commitment, opening).OK())
}

func TestGenCommitmentAndOpeningRejectsBadThreshold(t *testing.T) {
	vpks := genVPKs(t, 3)
	_, _, err := construct.GenCommitmentAndOpening(rand.Reader, 0, vpks)
	require.Error(t, err)
	assert.True(t, sscerr.Is(err, sscerr.BadThreshold))

	_, _, err = construct.GenCommitmentAndOpening(rand.Reader, 4, vpks)
	assert.True(t, sscerr.Is(err, sscerr.BadThreshold))
}

func TestGenCommitmentAndOpeningRejectsDuplicateKeys(t *testing.T) {
	vpks := genVPKs(t, 2)
	dup := append(vpks, vpks[0])
	_, _, err := construct.GenCommitmentAndOpening(rand.Reader, 2, dup)
	require.Error(t, err)
	assert.True(t, sscerr.Is(err, sscerr.BadThreshold))
}

func TestMkSignedCommitmentVerifies(t *testing.T) {
	vpks := genVPKs(t, 3)
	commitment, _, err := construct.GenCommitmentAndOpening(rand.Reader, 2, vpks)
	require.NoError(t, err)

	sk, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	pk, err := sk.PublicKey()
	require.NoError(t, err)

	const epoch message.EpochIndex = 5
	signed, err := construct.MkSignedCommitment(rand.Reader, sk, epoch, commitment)
	require.NoError(t, err)

	assert.True(t, verify.SignedCommitment(epoch, signed, pk).OK())
	assert.False(t, verify.SignedCommitment(epoch+1, signed, pk).OK())
}

func TestMkSignedCommitmentRejectsWrongSigner(t *testing.T) {
	vpks := genVPKs(t, 3)
	commitment, _, err := construct.GenCommitmentAndOpening(rand.Reader, 2, vpks)
	require.NoError(t, err)

	sk, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	other, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	otherPK, err := other.PublicKey()
	require.NoError(t, err)

	const epoch message.EpochIndex = 1
	signed, err := construct.MkSignedCommitment(rand.Reader, sk, epoch, commitment)
	require.NoError(t, err)

	result := verify.SignedCommitment(epoch, signed, otherPK)
	assert.False(t, result.OK())
	assert.True(t, result.Has(sscerr.BadSignature))
}

func TestOpeningRejectedWhenSecretTampered(t *testing.T) {
	vpks := genVPKs(t, 3)
	commitment, opening, err := construct.GenCommitmentAndOpening(rand.Reader, 2, vpks)
	require.NoError(t, err)

	tampered := curve.Scalar{}.SetBytes(opening.Secret).Add(curve.ScalarFromUint64(1))
	opening.Secret = tampered.Bytes()

	assert.False(t, verify.Opening(commitment, opening).OK())
}
