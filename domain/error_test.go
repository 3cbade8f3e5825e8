package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"lintang/gridcalc/domain"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("low level")
	err := domain.WrapErrorf(orig, domain.ErrInvalidFormat, "Characters %d-%d must be digits", 3, 4)

	assert.EqualError(t, err, "Characters 3-4 must be digits")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.ErrorIs(t, err, orig)
	assert.NotErrorIs(t, err, domain.ErrBadParamInput)

	var derr *domain.Error
	assert.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.ErrInvalidFormat, derr.Code())
}

func TestNewErrorfSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("decode %q: %w", "12AB", domain.NewErrorf(domain.ErrInvalidFormat, "First two characters must be letters"))

	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.EqualError(t, err, `decode "12AB": First two characters must be letters`)
}
