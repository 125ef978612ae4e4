package pvss

import "errors"

var (
	// ErrMalformed is returned when extra, proof or an EncShare cannot be
	// decoded into the structure this package expects.
	ErrMalformed = errors.New("pvss: malformed payload")
	// ErrBadThreshold is returned by GenSharedSecret when t is not in [1, n].
	ErrBadThreshold = errors.New("pvss: threshold out of range")
	// ErrNotEnoughShares is returned by Recover when fewer than threshold
	// shares are supplied.
	ErrNotEnoughShares = errors.New("pvss: not enough shares to recover")
)
