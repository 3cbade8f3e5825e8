package util_test

import (
	"testing"

	"lintang/gridcalc/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 5325.2, util.RoundFloat(5325.1716, 1))
	assert.Equal(t, 52.94, util.RoundFloat(52.94458, 2))
	assert.Equal(t, -71.0, util.RoundFloat(-70.99999, 3))
	assert.Equal(t, 3.0, util.RoundFloat(2.5, 0))
}
