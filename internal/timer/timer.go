// Package timer implements the DIV/TIMA/TMA/TAC timer: a free-running
// 16-bit divider (DIV is its high byte) and a TIMA counter that increments
// on a falling edge of a TAC-selected divider bit, with the documented
// one-m-cycle overflow-to-reload delay and the DIV/TAC write glitches.
package timer

import (
	"github.com/langurmonkey/playkid/internal/interrupts"
)

// selectorBit maps TAC's 2-bit clock-select field to the internal divider
// bit whose falling edge increments TIMA.
var selectorBit = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is the DIV/TIMA/TMA/TAC timer.
type Controller struct {
	div uint16 // internal 16-bit counter; DIV is (div >> 8)

	tima uint8
	tma  uint8
	tac  uint8

	enabled bool
	lastBit bool

	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a fresh timer wired to the given interrupt controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq: irq,
		tac: 0xF8,
	}
}

// Tick advances the timer by the given number of t-cycles, one at a time,
// so falling-edge detection on the selected divider bit stays exact even
// though the caller ticks in whole-instruction bundles.
func (c *Controller) Tick(tCycles int) {
	for i := 0; i < tCycles; i++ {
		c.tickOne()
	}
}

func (c *Controller) tickOne() {
	c.div++

	newBit := c.enabled && c.div&selectorBit[c.tac&0b11] != 0
	if !newBit && c.lastBit {
		c.tima++
		if c.tima == 0 {
			c.overflow = true
			c.ticksSinceOverflow = 0
		}
	}
	c.lastBit = newBit

	if c.overflow {
		c.ticksSinceOverflow++
		switch c.ticksSinceOverflow {
		case 4:
			c.irq.Request(interrupts.TimerFlag)
		case 5:
			c.tima = c.tma
		case 6:
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	}
}

// Div16 returns the full 16-bit internal divider, for components (the APU
// frame sequencer) that must derive timing from the same counter DIV reads from.
func (c *Controller) Div16() uint16 {
	return c.div
}

// ReadDIV returns the upper byte of the internal counter.
func (c *Controller) ReadDIV() uint8 {
	return uint8(c.div >> 8)
}

// WriteDIV resets the entire internal counter to zero. If the bit TAC
// currently selects was high, this looks like a falling edge to TIMA and
// can spuriously increment it.
func (c *Controller) WriteDIV() {
	oldBit := c.enabled && c.div&selectorBit[c.tac&0b11] != 0
	c.div = 0
	if oldBit {
		c.spuriousIncrement()
	}
	c.lastBit = false
}

// ReadTIMA returns TIMA.
func (c *Controller) ReadTIMA() uint8 { return c.tima }

// WriteTIMA writes TIMA, unless the write lands on the same tick the
// overflow reload is committing, in which case it is ignored.
func (c *Controller) WriteTIMA(v uint8) {
	if c.ticksSinceOverflow == 5 && c.overflow {
		return
	}
	c.tima = v
	c.overflow = false
	c.ticksSinceOverflow = 0
}

// ReadTMA returns TMA.
func (c *Controller) ReadTMA() uint8 { return c.tma }

// WriteTMA writes TMA. If the write lands on the tick TIMA is reloading
// from TMA, the new value is also reflected immediately into TIMA.
func (c *Controller) WriteTMA(v uint8) {
	c.tma = v
	if c.ticksSinceOverflow == 5 && c.overflow {
		c.tima = v
	}
}

// ReadTAC returns TAC with the unused upper bits read as 1.
func (c *Controller) ReadTAC() uint8 {
	return c.tac | 0b1111_1000
}

// WriteTAC writes TAC's clock-select and enable bits, applying the
// documented glitch where disabling the timer (or changing the selected
// bit) can itself cause a spurious TIMA increment.
func (c *Controller) WriteTAC(v uint8) {
	wasEnabled := c.enabled
	oldBit := selectorBit[c.tac&0b11]

	c.tac = v
	c.enabled = v&0x4 != 0

	if wasEnabled && c.div&oldBit != 0 {
		newBit := c.enabled && c.div&selectorBit[c.tac&0b11] != 0
		if !newBit {
			c.spuriousIncrement()
		}
	}
}

func (c *Controller) spuriousIncrement() {
	c.tima++
	if c.tima == 0 {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}
}
