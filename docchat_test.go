package docchat_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docchat.Errorf(docchat.ENOTREADY, "no documentation loaded for session %q", "test")

	assert.Equal(t, docchat.ENOTREADY, docchat.ErrorCode(err))
	assert.Equal(t, "no documentation loaded for session \"test\"", docchat.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docchat.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docchat.EINTERNAL, docchat.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docchat.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", docchat.ErrorMessage(errors.New("boom")))
}
