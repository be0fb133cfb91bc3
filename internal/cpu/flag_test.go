package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSetClear(t *testing.T) {
	c := newTestCPU()

	flags := []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}
	for _, f := range flags {
		c.clearFlag(f)
		assert.False(t, c.isFlagSet(f), "flag %d should be unset after clearFlag", f)
		c.setFlag(f)
		assert.True(t, c.isFlagSet(f), "flag %d should be set after setFlag", f)
	}
}

func TestIsFlagsSet(t *testing.T) {
	c := newTestCPU()
	c.F = 0
	c.setFlag(FlagZero)
	c.setFlag(FlagCarry)

	assert.True(t, c.isFlagsSet(FlagZero, FlagCarry))
	assert.False(t, c.isFlagsSet(FlagZero, FlagSubtract))
	assert.True(t, c.isFlagNotSet(FlagSubtract))
}

func TestSetFlags(t *testing.T) {
	c := newTestCPU()
	c.setFlags(true, false, true, false)

	assert.True(t, c.isFlagSet(FlagZero))
	assert.False(t, c.isFlagSet(FlagSubtract))
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.False(t, c.isFlagSet(FlagCarry))
}
