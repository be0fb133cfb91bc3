package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRegisterToRegister(t *testing.T) {
	c := newTestCPU()
	c.B = 0x42
	c.C = 0x00

	c.loadRegisterToRegister(&c.C, &c.B)

	assert.Equal(t, Register(0x42), c.C)
}

func TestLoadRegister8(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x99)

	c.loadRegister8(&c.A)

	assert.Equal(t, Register(0x99), c.A)
	assert.Equal(t, uint16(0xC001), c.PC)
}

func TestLoadMemoryToRegisterAndBack(t *testing.T) {
	c := newTestCPU()
	c.mmu.Write(0xC000, 0x77)

	c.loadMemoryToRegister(&c.A, 0xC000)
	assert.Equal(t, Register(0x77), c.A)

	c.A = 0x11
	c.loadRegisterToMemory(c.A, 0xC001)
	assert.Equal(t, uint8(0x11), c.mmu.Read(0xC001))
}

func TestLoadRegisterToHardware(t *testing.T) {
	c := newTestCPU()
	c.A = 0xAB

	c.loadRegisterToHardware(c.A, 0x80) // writes to HRAM at 0xFF80

	assert.Equal(t, uint8(0xAB), c.mmu.Read(0xFF80))
}

func TestLoadRegister16(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0xEF)
	c.mmu.Write(0xC001, 0xBE)

	c.loadRegister16(c.HL)

	assert.Equal(t, uint16(0xBEEF), c.HL.Uint16())
	assert.Equal(t, uint16(0xC002), c.PC)
}
