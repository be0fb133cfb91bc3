// Package joypad implements the P1 register: button/direction row
// selection and edge-triggered Joypad interrupt generation.
package joypad

import (
	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/types"
)

// Controller owns P1 and the held-button state. Buttons are tracked as two
// active-low nibbles, matching the hardware's own polarity: a 0 bit means
// "held".
type Controller struct {
	action    uint8 // bit0=A, bit1=B, bit2=Select, bit3=Start
	direction uint8 // bit0=Right, bit1=Left, bit2=Up, bit3=Down

	selectBits uint8 // raw P1 bits 4-5, as last written (0 = row selected)

	irq *interrupts.Service
}

// NewController returns a controller with no buttons held.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		action:     0x0F,
		direction:  0x0F,
		selectBits: 0x30,
		irq:        irq,
	}
}

// ReadP1 returns the current P1 byte: bits 6-7 always 1, bits 4-5 the last
// written row selection, bits 0-3 the selected row(s) ANDed together
// (active low; a bit reads 0 only if every selected row reports it pressed).
func (c *Controller) ReadP1() uint8 {
	nibble := uint8(0x0F)
	if c.selectBits&types.Bit4 == 0 {
		nibble &= c.direction
	}
	if c.selectBits&types.Bit5 == 0 {
		nibble &= c.action
	}
	return 0xC0 | c.selectBits | nibble
}

// WriteP1 updates the row-select bits. Selecting a row that has a button
// already held can itself surface a 1->0 transition on the selected bits,
// which raises the Joypad interrupt exactly as a fresh button press would.
func (c *Controller) WriteP1(v uint8) {
	old := c.selectBits
	c.selectBits = v & 0x30

	if old&types.Bit5 != 0 && c.selectBits&types.Bit5 == 0 && c.action != 0x0F {
		c.irq.Request(interrupts.JoypadFlag)
	}
	if old&types.Bit4 != 0 && c.selectBits&types.Bit4 == 0 && c.direction != 0x0F {
		c.irq.Request(interrupts.JoypadFlag)
	}
}

// SetButtons applies the external button mask (b7..b0 = Down, Up, Left,
// Right, Start, Select, B, A; active-high) and raises the Joypad interrupt
// for any bit of a currently-selected row that transitions from released
// to held.
func (c *Controller) SetButtons(mask uint8) {
	newAction := ^mask & 0x0F
	newDirection := ^(mask >> 4) & 0x0F

	if c.selectBits&types.Bit5 == 0 && fallingEdge(c.action, newAction) {
		c.irq.Request(interrupts.JoypadFlag)
	}
	if c.selectBits&types.Bit4 == 0 && fallingEdge(c.direction, newDirection) {
		c.irq.Request(interrupts.JoypadFlag)
	}

	c.action = newAction
	c.direction = newDirection
}

// fallingEdge reports whether any bit went from held-released(1) to held-pressed(0).
func fallingEdge(old, new uint8) bool {
	return old&^new&0x0F != 0
}
