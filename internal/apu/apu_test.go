package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langurmonkey/playkid/internal/types"
)

func poweredOnAPU() *APU {
	a := New()
	a.Write(types.NR52, 0x80)
	return a
}

func TestWritesIgnoredWhilePoweredOff(t *testing.T) {
	a := New()
	a.Write(types.NR50, 0x77)
	assert.Equal(t, uint8(0x00), a.readNR50())
}

func TestLengthRegistersWritableWhilePoweredOff(t *testing.T) {
	a := New()
	a.Write(types.NR11, 0xC0) // duty=3, length data is writable even when powered off
	assert.Equal(t, uint8(0xFF), a.Read(types.NR11), "duty bits persist; length bits always read back as 1")
}

func TestNR52ReflectsMasterPower(t *testing.T) {
	a := New()
	assert.Equal(t, uint8(0x70), a.readNR52())

	a.Write(types.NR52, 0x80)
	assert.Equal(t, uint8(0xF0), a.readNR52())
}

func TestNR50RoundTrip(t *testing.T) {
	a := poweredOnAPU()
	a.Write(types.NR50, 0x77) // max volume both channels, no VIN
	assert.Equal(t, uint8(0x77), a.readNR50())
}

func TestNR51RoundTrip(t *testing.T) {
	a := poweredOnAPU()
	a.Write(types.NR51, 0xFF)
	assert.Equal(t, uint8(0xFF), a.readNR51())
}

func TestPowerOffResetsChannelsAndMixer(t *testing.T) {
	a := poweredOnAPU()
	a.Write(types.NR50, 0x77)
	a.Write(types.NR51, 0xFF)

	a.Write(types.NR52, 0x00) // power off
	assert.Equal(t, uint8(0x00), a.readNR50())
	assert.Equal(t, uint8(0x00), a.readNR51())
}

func TestWaveRAMReadWriteAlwaysAllowed(t *testing.T) {
	a := New() // powered off
	a.Write(types.WaveRAMStart, 0xAB)
	assert.Equal(t, uint8(0xAB), a.Read(types.WaveRAMStart))
}

func TestDrainSamplesEmptiesRing(t *testing.T) {
	a := poweredOnAPU()
	a.Tick(255) // several sample periods' worth of t-cycles, so the ring is non-empty
	a.Tick(255)
	a.Tick(255)
	_ = a.DrainSamples()
	second := a.DrainSamples()
	assert.Empty(t, second)
}

func TestTickWhilePoweredOffDoesNotPanic(t *testing.T) {
	a := New()
	assert.NotPanics(t, func() { a.Tick(100) })
}
