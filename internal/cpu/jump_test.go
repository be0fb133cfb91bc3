package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallPushesReturnAddressWhenTaken(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.SP = 0xFFFE
	c.mmu.Write(0xC000, 0x34)
	c.mmu.Write(0xC001, 0x12)

	c.call(true)

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint8(0xC0), c.mmu.Read(0xFFFD))
	assert.Equal(t, uint8(0x02), c.mmu.Read(0xFFFC))
}

func TestCallNotTakenOnlyAdvancesPC(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.SP = 0xFFFE
	c.mmu.Write(0xC000, 0x34)
	c.mmu.Write(0xC001, 0x12)

	c.call(false)

	assert.Equal(t, uint16(0xC002), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestJumpRelativeForwardAndBackward(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x05)
	c.jumpRelative(true)
	assert.Equal(t, uint16(0xC006), c.PC)

	c.PC = 0xC100
	c.mmu.Write(0xC100, 0xFE) // -2
	c.jumpRelative(true)
	assert.Equal(t, uint16(0xC0FF), c.PC)
}

func TestJumpAbsolute(t *testing.T) {
	c := newTestCPU()
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x00)
	c.mmu.Write(0xC001, 0x42)

	c.jumpAbsolute(true)

	assert.Equal(t, uint16(0x4200), c.PC)
}

func TestPushPopStack(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFFE

	c.pushStack(0xBEEF)
	assert.Equal(t, uint16(0xFFFC), c.SP)

	value := c.popStack()
	assert.Equal(t, uint16(0xBEEF), value)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestRet(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFFC
	c.mmu.Write(0xFFFC, 0x34)
	c.mmu.Write(0xFFFD, 0x12)

	c.ret(true)

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestRst(t *testing.T) {
	c := newTestCPU()
	c.PC = 0x1234
	c.SP = 0xFFFE

	c.rst(0x0028)

	assert.Equal(t, uint16(0x0028), c.PC)
	pushed := uint16(c.mmu.Read(0xFFFD))<<8 | uint16(c.mmu.Read(0xFFFC))
	assert.Equal(t, uint16(0x1234), pushed)
}
