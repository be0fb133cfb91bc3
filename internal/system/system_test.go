package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalROM returns a ROM-only cartridge image large enough to parse a
// header from, with SkipHeaderChecks relied upon so the logo/checksum
// bytes can be left zeroed.
func minimalROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only, no RAM, no battery
	rom[0x148] = 0x00 // 32 KiB
	return rom
}

// batteryROM returns a MBC1+RAM+BATTERY cartridge image with 8 KiB of RAM.
func batteryROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x148] = 0x00 // 32 KiB
	rom[0x149] = 0x02 // 8 KiB RAM
	return rom
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	s, err := New(minimalROM(), nil, Options{SkipHeaderChecks: true})
	require.NoError(t, err)
	return s
}

func TestNewRejectsBadHeaderUnlessSkipped(t *testing.T) {
	_, err := New(minimalROM(), nil, Options{})
	assert.Error(t, err, "expected a header error for a ROM with a zeroed logo/checksum")

	_, err = New(minimalROM(), nil, Options{SkipHeaderChecks: true})
	assert.NoError(t, err)
}

func TestNewStartsAtEntryPoint(t *testing.T) {
	s := newTestSystem(t)
	assert.Equal(t, uint16(0x0100), s.CPU.PC)
}

func TestStepFrameProducesOneFrame(t *testing.T) {
	s := newTestSystem(t)
	result := s.StepFrame()

	assert.False(t, s.ppu.HasFrame(), "expected StepFrame to acknowledge the frame it returns")
	_ = result.Framebuffer
}

func TestSetButtonsNoBatteryRAM(t *testing.T) {
	s := newTestSystem(t)
	s.SetButtons(0x01) // A held

	assert.Nil(t, s.SnapshotSRAM(), "expected a ROM-only cartridge to have no battery RAM to snapshot")
}

func TestSnapshotSRAMRoundTrip(t *testing.T) {
	s, err := New(batteryROM(), nil, Options{SkipHeaderChecks: true})
	require.NoError(t, err)

	s.mmu.Write(0x0000, 0x0A) // enable cartridge RAM
	s.mmu.Write(0xA000, 0x42)
	snapshot := s.SnapshotSRAM()
	require.NotNil(t, snapshot)
	assert.Equal(t, uint8(0x42), snapshot[0])

	reloaded, err := New(batteryROM(), snapshot, Options{SkipHeaderChecks: true})
	require.NoError(t, err)
	assert.Equal(t, snapshot, reloaded.SnapshotSRAM())
}

func TestResetReturnsToEntryPoint(t *testing.T) {
	s := newTestSystem(t)
	s.StepFrame()
	s.Reset()

	assert.Equal(t, uint16(0x0100), s.CPU.PC)
	assert.False(t, s.frozen, "expected Reset to clear the frozen flag")
}

func TestDisallowedOpcodeFreezes(t *testing.T) {
	rom := minimalROM()
	rom[0x0100] = 0xD3 // a disallowed opcode at the entry point
	s, err := New(rom, nil, Options{SkipHeaderChecks: true})
	require.NoError(t, err)

	before := s.StepFrame()
	after := s.StepFrame()

	assert.True(t, s.frozen, "expected the core to freeze on a disallowed opcode")
	assert.Equal(t, before.Framebuffer, after.Framebuffer, "expected a frozen core to return an unchanged framebuffer")
}
