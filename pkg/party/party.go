// Package party defines the opaque stakeholder identities shared across the
// SSC core: signing-key identities (PK) and VSS public keys (VPK). Both are
// plain byte strings compared and hashed bitwise, per spec §3.
package party

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/luxfi/ssc/pkg/curve"
)

// PK is a stakeholder's public signing key.
type PK []byte

// VPK is a stakeholder's VSS public key.
type VPK []byte

// String renders the identity as hex, for logs and error messages.
func (pk PK) String() string { return hex.EncodeToString(pk) }

// String renders the identity as hex, for logs and error messages.
func (vpk VPK) String() string { return hex.EncodeToString(vpk) }

// Equal reports whether two identities are bitwise identical.
func (pk PK) Equal(other PK) bool { return bytes.Equal(pk, other) }

// Equal reports whether two identities are bitwise identical.
func (vpk VPK) Equal(other VPK) bool { return bytes.Equal(vpk, other) }

// Key is the comparable map-key form of PK, since []byte cannot itself be a
// map key; every map in this module keyed by stakeholder uses this.
type Key string

// AsKey returns the map-key form of pk.
func (pk PK) AsKey() Key { return Key(pk) }

// AsKey returns the map-key form of vpk.
func (vpk VPK) AsKey() Key { return Key(vpk) }

// Bytes returns the identity's underlying byte string.
func (k Key) Bytes() []byte { return []byte(k) }

// Scalar derives a deterministic, non-zero scalar for an identity's
// evaluation point in a Shamir polynomial (mirrors id.Scalar(group), used
// throughout the teacher's protocols/lss to turn a party.ID into a curve
// evaluation point).
func (k Key) Scalar() curve.Scalar {
	s := curve.Scalar{}.SetBytes([]byte(k))
	if s.IsZero() {
		// The identity scalar is reserved for the secret itself (x=0);
		// an identity whose bytes reduce to zero is vanishingly
		// unlikely but must never collide with it.
		s = curve.ScalarFromUint64(1)
	}
	return s
}

// IDSlice is a sortable, searchable collection of identity keys.
type IDSlice []Key

func (s IDSlice) Len() int           { return len(s) }
func (s IDSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s IDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort returns a sorted copy of s, for deterministic iteration order.
func (s IDSlice) Sort() IDSlice {
	out := append(IDSlice(nil), s...)
	sort.Sort(out)
	return out
}

// Contains reports whether id appears in s.
func (s IDSlice) Contains(id Key) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}
	return false
}

// Unique reports whether every element of s is distinct.
func (s IDSlice) Unique() bool {
	seen := make(map[Key]struct{}, len(s))
	for _, id := range s {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}
