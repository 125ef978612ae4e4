package sscerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/ssc/pkg/sscerr"
)

func TestIsMatchesDirectKind(t *testing.T) {
	err := sscerr.New(sscerr.BadThreshold, "t out of range")
	assert.True(t, sscerr.Is(err, sscerr.BadThreshold))
	assert.False(t, sscerr.Is(err, sscerr.BadSignature))
}

func TestIsUnwrapsWrappedCause(t *testing.T) {
	cause := errors.New("rng read failed")
	err := sscerr.Wrap(sscerr.RngFailure, "sampling secret", cause)
	assert.True(t, sscerr.Is(err, sscerr.RngFailure))
	assert.ErrorIs(t, err, cause)
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("underlying")
	err := sscerr.Wrap(sscerr.MalformedMessage, "decoding", cause)
	assert.Contains(t, err.Error(), "underlying")
	assert.Contains(t, err.Error(), "decoding")
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, sscerr.Is(errors.New("plain"), sscerr.BadSignature))
}
