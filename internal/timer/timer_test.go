package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langurmonkey/playkid/internal/interrupts"
)

func newTestController() *Controller {
	return NewController(interrupts.NewService())
}

func TestReadTACUnusedBitsAreSet(t *testing.T) {
	c := newTestController()
	assert.Equal(t, uint8(0xF8), c.ReadTAC())
}

func TestTIMAIncrementsOnSelectedBitFallingEdge(t *testing.T) {
	c := newTestController()
	c.WriteTAC(0b101) // enabled, selector bit 3 (1<<3, every 16 t-cycles)

	c.Tick(15)
	assert.Equal(t, uint8(0), c.ReadTIMA())

	c.Tick(1) // the 16th tick crosses the falling edge
	assert.Equal(t, uint8(1), c.ReadTIMA())
}

func TestTIMAOverflowReloadsFromTMAAfterDelay(t *testing.T) {
	c := newTestController()
	c.WriteTMA(0x10)
	c.WriteTAC(0b101)
	c.tima = 0xFF

	// drive one more falling edge to overflow TIMA to 0
	c.Tick(16)
	assert.Equal(t, uint8(0), c.ReadTIMA())

	// the reload to TMA happens several t-cycles after the overflow, not instantly
	c.Tick(4)
	assert.Equal(t, uint8(0x10), c.ReadTIMA())
}

func TestWriteDIVResetsCounter(t *testing.T) {
	c := newTestController()
	c.Tick(1000)
	assert.NotEqual(t, uint8(0), c.ReadDIV())

	c.WriteDIV()
	assert.Equal(t, uint8(0), c.ReadDIV())
}

func TestWriteDIVGlitchSpuriouslyIncrementsTIMA(t *testing.T) {
	c := newTestController()
	c.WriteTAC(0b101) // selector bit 3
	c.Tick(8)          // div&(1<<3) is now set, selected bit is high

	c.WriteDIV()

	assert.Equal(t, uint8(1), c.ReadTIMA(), "resetting DIV while the selected bit was high should glitch-increment TIMA")
}
