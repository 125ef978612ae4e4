package curve

import "io"

// Polynomial is a degree-d polynomial over the scalar field, used for Shamir
// secret sharing: coefficients[0] is the secret, coefficients[i>0] are
// random blinding coefficients.
type Polynomial struct {
	coefficients []Scalar
}

// NewPolynomial samples a random degree-d polynomial with the given constant
// term (the secret being shared). The constant term is used as given; only
// the higher coefficients are drawn from rng.
func NewPolynomial(rng io.Reader, degree int, secret Scalar) (*Polynomial, error) {
	coeffs := make([]Scalar, degree+1)
	coeffs[0] = secret
	for i := 1; i <= degree; i++ {
		c, err := RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{coefficients: coeffs}, nil
}

// Evaluate computes the polynomial's value at x using Horner's method.
func (p *Polynomial) Evaluate(x Scalar) Scalar {
	acc := NewScalar()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

// Constant returns the polynomial's constant term (the shared secret).
func (p *Polynomial) Constant() Scalar {
	return p.coefficients[0]
}

// Commit returns the Feldman commitment to p: g^{c_0}, g^{c_1}, ..., one
// point per coefficient, public evidence that every evaluation is
// consistent with the same polynomial.
func (p *Polynomial) Commit() []Point {
	commitment := make([]Point, len(p.coefficients))
	for i, c := range p.coefficients {
		commitment[i] = c.ActOnBase()
	}
	return commitment
}

// EvaluateCommitment evaluates a Feldman commitment at x, returning
// g^{p(x)} without knowledge of the polynomial's coefficients. Used to
// verify that a claimed share is consistent with the public commitment.
func EvaluateCommitment(commitment []Point, x Scalar) Point {
	result := IdentityPoint()
	xPower := ScalarFromUint64(1)
	for _, c := range commitment {
		result = result.Add(xPower.Act(c))
		xPower = xPower.Mul(x)
	}
	return result
}

// Lagrange returns, for each id in ids, the Lagrange basis coefficient
// lambda_id such that sum_id lambda_id * f(id) = f(0) for any degree
// len(ids)-1 polynomial f. xs maps each id to its evaluation point.
func Lagrange(xs map[string]Scalar) map[string]Scalar {
	coeffs := make(map[string]Scalar, len(xs))
	for id, xi := range xs {
		num := ScalarFromUint64(1)
		den := ScalarFromUint64(1)
		for otherID, xj := range xs {
			if otherID == id {
				continue
			}
			// num *= (0 - xj), den *= (xi - xj)
			num = num.Mul(xj.Negate())
			den = den.Mul(xi.Sub(xj))
		}
		coeffs[id] = num.Mul(den.Inverse())
	}
	return coeffs
}
