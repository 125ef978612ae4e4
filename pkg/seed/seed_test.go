package seed_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ssc/pkg/curve"
	"github.com/luxfi/ssc/pkg/seed"
)

func randSeed(t *testing.T) seed.FtsSeed {
	t.Helper()
	s, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return seed.FromSecret(s)
}

func TestXorIdentity(t *testing.T) {
	a := randSeed(t)
	out, err := seed.Xor(a, seed.Zero())
	require.NoError(t, err)
	assert.Equal(t, a, out)
}

func TestXorCommutative(t *testing.T) {
	a, b := randSeed(t), randSeed(t)
	ab, err := seed.Xor(a, b)
	require.NoError(t, err)
	ba, err := seed.Xor(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestXorAssociative(t *testing.T) {
	a, b, c := randSeed(t), randSeed(t), randSeed(t)
	abThenC, err := seed.Xor(mustXor(t, a, b), c)
	require.NoError(t, err)
	aThenBC, err := seed.Xor(a, mustXor(t, b, c))
	require.NoError(t, err)
	assert.Equal(t, abThenC, aThenBC)
}

func mustXor(t *testing.T, a, b seed.FtsSeed) seed.FtsSeed {
	t.Helper()
	out, err := seed.Xor(a, b)
	require.NoError(t, err)
	return out
}

func TestXorLengthMismatch(t *testing.T) {
	_, err := seed.Xor(seed.FtsSeed{1, 2, 3}, seed.Zero())
	assert.ErrorIs(t, err, seed.ErrLengthMismatch)
}

func TestXorAllEmptyIsZero(t *testing.T) {
	out, err := seed.XorAll()
	require.NoError(t, err)
	assert.Equal(t, seed.Zero(), out)
}

func TestXorAllMatchesManualFold(t *testing.T) {
	a, b, c := randSeed(t), randSeed(t), randSeed(t)
	got, err := seed.XorAll(a, b, c)
	require.NoError(t, err)

	want, err := seed.Xor(mustXor(t, a, b), c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromSecretDeterministic(t *testing.T) {
	s, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, seed.FromSecret(s), seed.FromSecret(s))
}

func TestFromSecretAndFromPointAgree(t *testing.T) {
	s, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, seed.FromSecret(s), seed.FromPoint(s.ActOnBase()))
}

func TestFromSecretDistinctInputsDiffer(t *testing.T) {
	a, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	assert.NotEqual(t, seed.FromSecret(a), seed.FromSecret(b))
}
