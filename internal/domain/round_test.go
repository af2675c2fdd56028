package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -1.24, Round2(-1.236))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestWeightDifference(t *testing.T) {
	assert.Equal(t, 21.5, WeightDifference(510, 488.5))
	assert.Equal(t, 100.12, WeightDifference(500.123, 400.001))

	// Operands are rounded before subtraction, so sub-cent noise on the
	// inputs cannot leak into the difference.
	assert.Equal(t, 0.0, WeightDifference(10.0001, 10.0002))
}
