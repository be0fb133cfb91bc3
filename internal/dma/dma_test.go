package dma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() (*Controller, *[65536]uint8, *[160]uint8) {
	var mem [65536]uint8
	var oam [160]uint8
	c := New(
		func(addr uint16) uint8 { return mem[addr] },
		func(offset uint16, v uint8) { oam[offset] = v },
	)
	return c, &mem, &oam
}

func TestWriteDMAStartsTransfer(t *testing.T) {
	c, _, _ := newTestController()
	assert.False(t, c.Active())

	c.WriteDMA(0xC0)
	assert.True(t, c.Active())
	assert.Equal(t, uint8(0xC0), c.ReadDMA())
}

func TestTransferCopies160BytesOverFullDuration(t *testing.T) {
	c, mem, oam := newTestController()
	for i := 0; i < 160; i++ {
		mem[0xC000+i] = uint8(i + 1)
	}

	c.WriteDMA(0xC0)
	c.Tick(640)

	require.False(t, c.Active())
	for i := 0; i < 160; i++ {
		assert.Equal(t, uint8(i+1), oam[i], "byte %d", i)
	}
}

func TestTransferCopiesOneByteEveryFourTCycles(t *testing.T) {
	c, mem, oam := newTestController()
	mem[0xC000] = 0xAB
	mem[0xC001] = 0xCD

	c.WriteDMA(0xC0)
	c.Tick(3)
	assert.Equal(t, uint8(0), oam[0], "no byte should be copied before 4 t-cycles elapse")

	c.Tick(1)
	assert.Equal(t, uint8(0xAB), oam[0])
	assert.Equal(t, uint8(0), oam[1])

	c.Tick(4)
	assert.Equal(t, uint8(0xCD), oam[1])
}

func TestWriteDMARestartsInProgressTransfer(t *testing.T) {
	c, mem, oam := newTestController()
	for i := 0; i < 160; i++ {
		mem[0xC000+i] = 0x11
		mem[0xD000+i] = 0x22
	}

	c.WriteDMA(0xC0)
	c.Tick(40) // partway through, 10 bytes copied

	c.WriteDMA(0xD0) // restart from a new source before completion
	c.Tick(640)

	require.False(t, c.Active())
	for i := 0; i < 160; i++ {
		assert.Equal(t, uint8(0x22), oam[i], "byte %d", i)
	}
}

func TestTickIsNoOpWhenInactive(t *testing.T) {
	c, _, oam := newTestController()
	c.Tick(100)
	assert.False(t, c.Active())
	assert.Equal(t, [160]uint8{}, *oam)
}
