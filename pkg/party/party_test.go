package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/ssc/pkg/party"
)

func TestIdentityEquality(t *testing.T) {
	a := party.PK([]byte("alice"))
	b := party.PK([]byte("alice"))
	c := party.PK([]byte("bob"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestAsKeyRoundTrip(t *testing.T) {
	vpk := party.VPK([]byte("some-vss-key"))
	key := vpk.AsKey()
	assert.Equal(t, []byte(vpk), key.Bytes())
}

func TestScalarDeterministicAndNonZero(t *testing.T) {
	k := party.Key("stakeholder-1")
	s1 := k.Scalar()
	s2 := k.Scalar()
	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.IsZero())
}

func TestScalarVariesAcrossIdentities(t *testing.T) {
	s1 := party.Key("alice").Scalar()
	s2 := party.Key("bob").Scalar()
	assert.False(t, s1.Equal(s2))
}

func TestIDSliceSortAndUnique(t *testing.T) {
	s := party.IDSlice{party.Key("c"), party.Key("a"), party.Key("b")}
	sorted := s.Sort()
	assert.Equal(t, party.IDSlice{party.Key("a"), party.Key("b"), party.Key("c")}, sorted)
	assert.True(t, sorted.Unique())
	assert.True(t, sorted.Contains(party.Key("b")))
	assert.False(t, sorted.Contains(party.Key("z")))

	dup := party.IDSlice{party.Key("a"), party.Key("a")}
	assert.False(t, dup.Unique())
}
