package pvss_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/pvss"
	"github.com/luxfi/ssc/pkg/seed"
)

func genStakeholders(t *testing.T, n int) ([]pvss.VssKeyPair, []party.VPK) {
	t.Helper()
	keys := make([]pvss.VssKeyPair, n)
	vpks := make([]party.VPK, n)
	for i := 0; i < n; i++ {
		k, err := pvss.GenerateVssKeyPair(rand.Reader)
		require.NoError(t, err)
		vpk, err := k.PublicKey()
		require.NoError(t, err)
		keys[i] = k
		vpks[i] = vpk
	}
	return keys, vpks
}

func TestSignVerifyRoundTrip(t *testing.T) {
	sk, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	pk, err := sk.PublicKey()
	require.NoError(t, err)

	msg := []byte("epoch-commitment-payload")
	sig, err := pvss.Sign(rand.Reader, sk, msg)
	require.NoError(t, err)

	assert.True(t, pvss.Verify(pk, msg, sig))
	assert.False(t, pvss.Verify(pk, []byte("different payload"), sig))
}

func TestSignVerifyWrongKeyFails(t *testing.T) {
	sk, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	other, err := pvss.GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	otherPK, err := other.PublicKey()
	require.NoError(t, err)

	msg := []byte("hello")
	sig, err := pvss.Sign(rand.Reader, sk, msg)
	require.NoError(t, err)
	assert.False(t, pvss.Verify(otherPK, msg, sig))
}

func TestGenSharedSecretProducesVerifiableShares(t *testing.T) {
	_, vpks := genStakeholders(t, 5)
	extra, secret, proof, shares, err := pvss.GenSharedSecret(rand.Reader, 3, vpks)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	assert.True(t, pvss.VerifySecretProof(extra, secret, proof))

	for _, vpk := range vpks {
		es, ok := shares[vpk.AsKey()]
		require.True(t, ok)
		assert.True(t, pvss.VerifyEncShare(extra, vpk, es))
	}
}

func TestVerifyEncShareRejectsTamperedShare(t *testing.T) {
	_, vpks := genStakeholders(t, 4)
	extra, _, _, shares, err := pvss.GenSharedSecret(rand.Reader, 2, vpks)
	require.NoError(t, err)

	vpk := vpks[0]
	es := shares[vpk.AsKey()]
	tampered := append([]byte(nil), es.Data...)
	tampered[0] ^= 0xff
	assert.False(t, pvss.VerifyEncShare(extra, vpk, message.EncShare{Data: tampered}))
}

func TestVerifyEncShareRejectsWrongRecipient(t *testing.T) {
	_, vpks := genStakeholders(t, 4)
	extra, _, _, shares, err := pvss.GenSharedSecret(rand.Reader, 2, vpks)
	require.NoError(t, err)

	es := shares[vpks[0].AsKey()]
	assert.False(t, pvss.VerifyEncShare(extra, vpks[1], es))
}

func TestVerifySecretProofRejectsWrongSecret(t *testing.T) {
	_, vpks := genStakeholders(t, 3)
	extra, _, proof, _, err := pvss.GenSharedSecret(rand.Reader, 2, vpks)
	require.NoError(t, err)

	wrong, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	assert.False(t, pvss.VerifySecretProof(extra, wrong, proof))
}

func TestDecryptAndRecoverReconstructsDhSecret(t *testing.T) {
	keys, vpks := genStakeholders(t, 5)
	threshold := 3
	extra, secret, _, shares, err := pvss.GenSharedSecret(rand.Reader, threshold, vpks)
	require.NoError(t, err)

	decrypted := make(map[party.Key]message.Share, len(keys))
	vssKeyByDecryptor := make(map[party.Key]party.VPK, len(keys))
	for i, k := range keys {
		vpk := vpks[i]
		share, err := pvss.DecryptShare(k, extra, shares[vpk.AsKey()])
		require.NoError(t, err)
		decrypted[vpk.AsKey()] = share
		vssKeyByDecryptor[vpk.AsKey()] = vpk
	}

	recoveryShares, err := pvss.GatherRecoveryShares(vssKeyByDecryptor, decrypted)
	require.NoError(t, err)

	point, err := pvss.Recover(threshold, recoveryShares)
	require.NoError(t, err)

	assert.True(t, point.Equal(pvss.SecretToDhSecret(secret)))
	assert.Equal(t, seed.FromSecret(secret), seed.FromPoint(point))
}

func TestRecoverFailsWithTooFewShares(t *testing.T) {
	_, err := pvss.Recover(3, []pvss.RecoveryShare{
		{X: curve.ScalarFromUint64(1), Point: curve.BasePoint()},
	})
	assert.ErrorIs(t, err, pvss.ErrNotEnoughShares)
}

func TestGenSharedSecretRejectsBadThreshold(t *testing.T) {
	_, vpks := genStakeholders(t, 3)
	_, _, _, _, err := pvss.GenSharedSecret(rand.Reader, 0, vpks)
	assert.ErrorIs(t, err, pvss.ErrBadThreshold)

	_, _, _, _, err = pvss.GenSharedSecret(rand.Reader, 4, vpks)
	assert.ErrorIs(t, err, pvss.ErrBadThreshold)
}
