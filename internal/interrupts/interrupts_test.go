package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestAndHasInterrupts(t *testing.T) {
	s := NewService()
	assert.False(t, s.HasInterrupts())

	s.Request(VBlankFlag)
	assert.False(t, s.HasInterrupts(), "requesting without enabling shouldn't signal a pending interrupt")

	s.WriteIE(VBlankFlag)
	assert.True(t, s.HasInterrupts())
}

func TestReadIFSetsUnusedBits(t *testing.T) {
	s := NewService()
	s.WriteIF(0x01)
	assert.Equal(t, uint8(0xE1), s.ReadIF())
}

func TestVectorPriorityOrder(t *testing.T) {
	s := NewService()
	s.WriteIE(0x1F)
	s.Request(TimerFlag)
	s.Request(VBlankFlag)

	assert.Equal(t, uint16(0x0040), s.Vector(), "VBlank (bit 0) should win over Timer (bit 2)")
	assert.Equal(t, uint16(0x0050), s.Vector(), "Timer should be next once VBlank is cleared")
	assert.False(t, s.HasInterrupts())
}

func TestVectorNoPendingReturnsZero(t *testing.T) {
	s := NewService()
	assert.Equal(t, uint16(0), s.Vector())
}
