package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langurmonkey/playkid/internal/apu"
	"github.com/langurmonkey/playkid/internal/cartridge"
	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/joypad"
	"github.com/langurmonkey/playkid/internal/ppu"
	"github.com/langurmonkey/playkid/internal/serial"
	"github.com/langurmonkey/playkid/internal/timer"
)

func newTestMMU() *MMU {
	irq := interrupts.NewService()
	return New(
		cartridge.NewEmptyCartridge(),
		ppu.New(irq),
		apu.New(),
		timer.NewController(irq),
		joypad.NewController(irq),
		serial.NewController(),
		irq,
	)
}

func TestWRAMReadWrite(t *testing.T) {
	m := newTestMMU()
	m.Write(0xC010, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xC010))
}

func TestWRAMEchoRegionMirrorsWRAM(t *testing.T) {
	m := newTestMMU()
	m.Write(0xC010, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0xE010), "0xE000-0xFDFF should echo WRAM")
}

func TestHRAMReadWrite(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF90, 0x7B)
	assert.Equal(t, uint8(0x7B), m.Read(0xFF90))
}

func TestUnusableRegionReadsFFAndDiscardsWrites(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFEA0, 0x55) // discarded
	assert.Equal(t, uint8(0xFF), m.Read(0xFEA0))
}

func TestIERegisterAtTopOfAddressSpace(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFFFF, 0x1F)
	assert.Equal(t, uint8(0x1F), m.Read(0xFFFF))
}

func TestIORegisterDispatchRoutesToJoypad(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF00, 0x10) // select action row (bit5=0)
	assert.Equal(t, uint8(0xC0|0x10|0x0F), m.Read(0xFF00))
}

func TestIORegisterDispatchRoutesToTimer(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF06, 0x55) // TMA
	assert.Equal(t, uint8(0x55), m.Read(0xFF06))
}

func TestIFRegisterUnusedBitsAreSet(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF0F, 0x01)
	assert.Equal(t, uint8(0xE1), m.Read(0xFF0F))
}

func TestLYIsReadOnly(t *testing.T) {
	m := newTestMMU()
	before := m.Read(0xFF44)
	m.Write(0xFF44, 0xAB)
	assert.Equal(t, before, m.Read(0xFF44), "writes to LY should be discarded")
}

func TestDMATriggersThroughWriteToAddressFF46(t *testing.T) {
	m := newTestMMU()
	m.Write(0xFF46, 0xC0)
	assert.True(t, m.DMA().Active())
}

func TestUnmappedIOReadsFF(t *testing.T) {
	m := newTestMMU()
	assert.Equal(t, uint8(0xFF), m.Read(0xFF4F)) // no peripheral owns this address
}
