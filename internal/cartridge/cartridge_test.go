package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadLogoUnlessSkipped(t *testing.T) {
	rom := buildROM(t, ROM, "BADLOGO")
	rom[0x104] = 0x00

	_, _, err := New(rom, false)
	require.Error(t, err)
	le, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, BadLogo, le.Kind)

	c, _, err := New(rom, true)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewRejectsUnsupportedMBC(t *testing.T) {
	rom := buildROM(t, MBC5, "MBC5ROM")
	_, _, err := New(rom, true)
	require.Error(t, err)
	le, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, UnsupportedMBC, le.Kind)
	assert.Equal(t, uint8(MBC5), le.Value)
}

func TestNewDispatchesEachKnownMBCType(t *testing.T) {
	cases := []Type{ROM, MBC1, MBC1RAMBATT, MBC2, MBC2BATT, MBC3, MBC3RAMBATT}
	for _, ct := range cases {
		rom := buildROM(t, ct, "DISPATCH")
		c, h, err := New(rom, true)
		require.NoError(t, err, "type %v", ct)
		assert.Equal(t, ct, h.CartridgeType)
		assert.NotNil(t, c)
	}
}

func TestBaseCartridgeReadOutOfBoundsReturnsFF(t *testing.T) {
	rom := buildROM(t, ROM, "SMALL")
	c, _, err := New(rom, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), c.Read(0xFFFF))
}

func TestNewEmptyCartridge(t *testing.T) {
	c := NewEmptyCartridge()
	assert.Equal(t, uint8(0xFF), c.Read(0))
	assert.Nil(t, c.RAMBytes())
}

func TestMBC1AdapterRoundTripsRAM(t *testing.T) {
	rom := buildROM(t, MBC1RAMBATT, "BATTERY")
	rom[0x149] = 0x02 // 8KiB RAM
	rom[0x14D] = computeHeaderChecksum(rom)
	checksum := computeGlobalChecksum(rom)
	rom[0x14E] = uint8(checksum >> 8)
	rom[0x14F] = uint8(checksum)

	c, _, err := New(rom, true)
	require.NoError(t, err)

	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x42)

	saved := c.RAMBytes()
	require.NotNil(t, saved)
	assert.Equal(t, uint8(0x42), saved[0])

	c2, _, err := New(rom, true)
	require.NoError(t, err)
	c2.LoadRAM(saved)
	c2.Write(0x0000, 0x0A)
	assert.Equal(t, uint8(0x42), c2.Read(0xA000))
}
