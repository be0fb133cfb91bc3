package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildROM returns a minimal 32KiB ROM with a valid logo and correct header
// and global checksums, with the given cartridge type and title.
func buildROM(t *testing.T, cartType Type, title string) []byte {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x104:0x134], nintendoLogo[:])
	copy(rom[0x134:0x144], title)
	rom[0x147] = uint8(cartType)
	rom[0x148] = 0x00 // 32KiB
	rom[0x149] = 0x00 // no RAM

	rom[0x14D] = computeHeaderChecksum(rom)
	checksum := computeGlobalChecksum(rom)
	rom[0x14E] = uint8(checksum >> 8)
	rom[0x14F] = uint8(checksum)
	return rom
}

func TestParseHeaderValidROM(t *testing.T) {
	rom := buildROM(t, MBC1, "TESTGAME")
	h, err := parseHeader(rom)
	require.NoError(t, err)

	assert.Equal(t, "TESTGAME", h.Title)
	assert.Equal(t, MBC1, h.CartridgeType)
	assert.Equal(t, uint(32*1024), h.ROMSize)
	assert.Equal(t, uint(0), h.RAMSize)
	assert.True(t, h.logoOK)
	assert.True(t, h.headerOK)
	assert.True(t, h.globalOK)
}

func TestParseHeaderTooShortIsTruncated(t *testing.T) {
	_, err := parseHeader(make([]byte, 0x100))
	require.Error(t, err)
	le, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, TruncatedRom, le.Kind)
}

func TestParseHeaderDetectsBadLogo(t *testing.T) {
	rom := buildROM(t, ROM, "BADLOGO")
	rom[0x104] = 0x00 // corrupt the logo
	h, err := parseHeader(rom)
	require.NoError(t, err)
	assert.False(t, h.logoOK)
}

func TestParseHeaderDetectsBadHeaderChecksum(t *testing.T) {
	rom := buildROM(t, ROM, "BADCKSUM")
	rom[0x14D] ^= 0xFF
	h, err := parseHeader(rom)
	require.NoError(t, err)
	assert.False(t, h.headerOK)
	assert.True(t, h.logoOK)
}

func TestParseHeaderRAMSizeTable(t *testing.T) {
	rom := buildROM(t, MBC1RAMBATT, "RAMTEST")
	rom[0x149] = 0x03 // 32KiB
	rom[0x14D] = computeHeaderChecksum(rom)
	checksum := computeGlobalChecksum(rom)
	rom[0x14E] = uint8(checksum >> 8)
	rom[0x14F] = uint8(checksum)

	h, err := parseHeader(rom)
	require.NoError(t, err)
	assert.Equal(t, uint(32*1024), h.RAMSize)
}

func TestHeaderHasBattery(t *testing.T) {
	assert.True(t, MBC1RAMBATT.HasBattery())
	assert.False(t, MBC1RAM.HasBattery())
	assert.False(t, ROM.HasBattery())
}

func TestHeaderHardwareAndGameboyColor(t *testing.T) {
	rom := buildROM(t, ROM, "DMGONLY")
	h, err := parseHeader(rom)
	require.NoError(t, err)
	assert.Equal(t, "DMG", h.Hardware())
	assert.False(t, h.GameboyColor())
}
