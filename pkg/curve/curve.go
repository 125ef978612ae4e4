// Package curve wraps the secp256k1 group used by pkg/pvss behind a small
// Scalar/Point algebra, the same seam the teacher library isolates its
// concrete elliptic-curve implementation behind (pkg/math/curve, referenced
// throughout protocols/lss but not itself part of this retrieval). Scalar
// arithmetic is carried out modulo the group order using math/big so that
// correctness does not depend on any single vendor's scalar type; point
// arithmetic is delegated to decred's secp256k1 implementation, through its
// variable-time NonConst routines.
package curve

import (
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidEncoding is returned when a Scalar or Point cannot be decoded
// from its binary form.
var ErrInvalidEncoding = errors.New("curve: invalid encoding")

// order is the secp256k1 group order n, a standard public constant.
var order, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16,
)

// Scalar is an element of Z/nZ, the secp256k1 scalar field.
type Scalar struct {
	v *big.Int
}

// NewScalar returns the zero scalar.
func NewScalar() Scalar {
	return Scalar{v: new(big.Int)}
}

// ScalarFromUint64 returns the scalar representing the given small integer.
func ScalarFromUint64(x uint64) Scalar {
	return Scalar{v: new(big.Int).SetUint64(x)}
}

// RandomScalar draws a uniformly random non-zero scalar from rng.
func RandomScalar(rng io.Reader) (Scalar, error) {
	for {
		b := make([]byte, 32)
		if _, err := io.ReadFull(rng, b); err != nil {
			return Scalar{}, err
		}
		v := new(big.Int).SetBytes(b)
		v.Mod(v, order)
		if v.Sign() != 0 {
			return Scalar{v: v}, nil
		}
	}
}

// SetBytes interprets a 32-byte big-endian encoding as a scalar, reducing
// modulo the group order.
func (Scalar) SetBytes(b []byte) Scalar {
	v := new(big.Int).SetBytes(b)
	v.Mod(v, order)
	return Scalar{v: v}
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s Scalar) Bytes() []byte {
	out := make([]byte, 32)
	b := s.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// Add returns s + o mod n.
func (s Scalar) Add(o Scalar) Scalar {
	v := new(big.Int).Add(s.v, o.v)
	v.Mod(v, order)
	return Scalar{v: v}
}

// Mul returns s * o mod n.
func (s Scalar) Mul(o Scalar) Scalar {
	v := new(big.Int).Mul(s.v, o.v)
	v.Mod(v, order)
	return Scalar{v: v}
}

// Sub returns s - o mod n.
func (s Scalar) Sub(o Scalar) Scalar {
	v := new(big.Int).Sub(s.v, o.v)
	v.Mod(v, order)
	return Scalar{v: v}
}

// Negate returns -s mod n.
func (s Scalar) Negate() Scalar {
	v := new(big.Int).Neg(s.v)
	v.Mod(v, order)
	return Scalar{v: v}
}

// Inverse returns the multiplicative inverse of s mod n. Panics if s is zero.
func (s Scalar) Inverse() Scalar {
	if s.v.Sign() == 0 {
		panic("curve: inverse of zero scalar")
	}
	v := new(big.Int).ModInverse(s.v, order)
	return Scalar{v: v}
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Equal reports whether s and o represent the same field element.
func (s Scalar) Equal(o Scalar) bool { return s.v.Cmp(o.v) == 0 }

// Nat exports s as a saferith.Nat, the constant-time-arithmetic-oriented
// integer type other threshold-crypto code in this family exchanges
// key-share material through. The conversion goes through the already
// group-order-reduced byte encoding, so it never needs to trust Nat's own
// modular-reduction routines.
func (s Scalar) Nat() *saferith.Nat {
	return new(saferith.Nat).SetBytes(s.Bytes())
}

// modScalar converts s into decred's constant-time scalar representation
// for use in point-multiplication.
func (s Scalar) modScalar() secp256k1.ModNScalar {
	var m secp256k1.ModNScalar
	m.SetByteSlice(s.Bytes())
	return m
}

// Point is an element of the secp256k1 group (including the identity).
type Point struct {
	j secp256k1.JacobianPoint
}

// IdentityPoint returns the group identity (point at infinity).
func IdentityPoint() Point {
	var p Point
	p.j.Z.SetInt(0)
	return p
}

// BasePoint returns the standard generator G.
func BasePoint() Point {
	one := ScalarFromUint64(1)
	return one.ActOnBase()
}

// ActOnBase returns s * G.
func (s Scalar) ActOnBase() Point {
	k := s.modScalar()
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &result)
	return Point{j: result}
}

// Act returns s * p.
func (s Scalar) Act(p Point) Point {
	k := s.modScalar()
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k, &p.j, &result)
	return Point{j: result}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.j, &o.j, &result)
	return Point{j: result}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	var a secp256k1.JacobianPoint
	a.Set(&p.j)
	a.ToAffine()
	return a.X.IsZero() && a.Y.IsZero() && p.j.Z.IsZero()
}

// Equal reports whether p and o are the same group element.
func (p Point) Equal(o Point) bool {
	var a, b secp256k1.JacobianPoint
	a.Set(&p.j)
	b.Set(&o.j)
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y) && a.Z.Equals(&b.Z)
}

// MarshalBinary returns the 33-byte SEC1-compressed encoding of p.
func (p Point) MarshalBinary() ([]byte, error) {
	var a secp256k1.JacobianPoint
	a.Set(&p.j)
	a.ToAffine()
	pub := secp256k1.NewPublicKey(&a.X, &a.Y)
	return pub.SerializeCompressed(), nil
}

// UnmarshalBinary decodes a 33-byte SEC1-compressed point into p.
func (p *Point) UnmarshalBinary(b []byte) error {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return ErrInvalidEncoding
	}
	pub.AsJacobian(&p.j)
	return nil
}

// GenerateKeyPair samples a fresh (scalar, point) pair with point = scalar*G,
// the shape of every PK/VPK keypair in this package's callers.
func GenerateKeyPair(rng io.Reader) (Scalar, Point, error) {
	sk, err := RandomScalar(rng)
	if err != nil {
		return Scalar{}, Point{}, err
	}
	return sk, sk.ActOnBase(), nil
}
