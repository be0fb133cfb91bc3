package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langurmonkey/playkid/internal/interrupts"
)

// Row selection is active-low: bit5=0 selects the action row, bit4=0
// selects the direction row (see types.Bit4/Bit5).

func newTestController() (*Controller, *interrupts.Service) {
	irq := interrupts.NewService()
	irq.WriteIE(interrupts.JoypadFlag)
	return NewController(irq), irq
}

func TestReadP1DefaultsToNoButtonsHeld(t *testing.T) {
	c, _ := newTestController()
	assert.Equal(t, uint8(0xFF), c.ReadP1())
}

func TestReadP1SelectsActionRow(t *testing.T) {
	c, _ := newTestController()
	c.SetButtons(0x01) // A held (bit0)
	c.WriteP1(0x10)    // bit4=0 unused here, bit5=0 selects action: 0x10 has bit5=0
	assert.Equal(t, uint8(0xC0|0x10|0x0E), c.ReadP1())
}

func TestReadP1SelectsDirectionRow(t *testing.T) {
	c, _ := newTestController()
	c.SetButtons(0x10) // Right held (bit4 of mask)
	c.WriteP1(0x20)    // bit4=0 selects direction: 0x20 has bit4=0
	assert.Equal(t, uint8(0xC0|0x20|0x0E), c.ReadP1())
}

func TestSetButtonsRaisesInterruptOnFallingEdgeForSelectedRow(t *testing.T) {
	c, irq := newTestController()
	c.WriteP1(0x10) // select action row
	assert.False(t, irq.HasInterrupts())

	c.SetButtons(0x01) // A pressed
	assert.True(t, irq.HasInterrupts())
}

func TestSetButtonsDoesNotRaiseInterruptForUnselectedRow(t *testing.T) {
	c, irq := newTestController()
	c.WriteP1(0x20) // select direction row only

	c.SetButtons(0x01) // A pressed, but action row isn't selected
	assert.False(t, irq.HasInterrupts())
}

func TestWriteP1SelectingRowWithHeldButtonRaisesInterrupt(t *testing.T) {
	c, irq := newTestController()
	c.SetButtons(0x01) // A held, but no row selected yet
	assert.False(t, irq.HasInterrupts())

	c.WriteP1(0x10) // selecting the action row surfaces the already-held button
	assert.True(t, irq.HasInterrupts())
}

func TestSetButtonsReleaseDoesNotRaiseInterrupt(t *testing.T) {
	c, irq := newTestController()
	c.WriteP1(0x10)
	c.SetButtons(0x01)
	irq.WriteIF(0) // clear

	c.SetButtons(0x00) // A released: 0->1 transition, not a falling edge
	assert.False(t, irq.HasInterrupts())
}
