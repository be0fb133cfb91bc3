package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMBC1(romBanks int, ramSize uint, cartType Type) *MemoryBankedCartridge1 {
	rom := make([]byte, romBanks*0x4000)
	for bank := 0; bank < romBanks; bank++ {
		rom[bank*0x4000] = uint8(bank) // tag each bank's first byte with its index
	}
	header := &Header{CartridgeType: cartType, RAMSize: ramSize}
	return NewMemoryBankedCartridge1(rom, header)
}

func TestMBC1BankZeroCoercesToOne(t *testing.T) {
	m := newMBC1(4, 0, MBC1)
	m.Write(0x2000, 0x00)
	assert.Equal(t, uint8(0x01), m.Read(0x4000), "writing bank 0 should coerce to bank 1")
}

func TestMBC1SelectsROMBank(t *testing.T) {
	m := newMBC1(4, 0, MBC1)
	m.Write(0x2000, 0x02)
	assert.Equal(t, uint8(0x02), m.Read(0x4000))
}

func TestMBC1RAMEnableRequiresLowNibble0xA(t *testing.T) {
	m := newMBC1(2, 0x2000, MBC1RAMBATT)
	m.Write(0x0000, 0x05) // wrong nibble
	m.Write(0xA000, 0x99)
	assert.Equal(t, uint8(0xFF), m.Read(0xA000), "RAM should read 0xFF while disabled")

	m.Write(0x0000, 0x1A) // low nibble 0xA enables
	m.Write(0xA000, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0xA000))
}

func TestMBC1RAMDisabledOnNonBatteryTypeIgnoresEnable(t *testing.T) {
	m := newMBC1(2, 0x2000, MBC1) // plain MBC1, no RAM wiring
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x55)
	assert.Equal(t, uint8(0xFF), m.Read(0xA000), "RAM enable write should be ignored for a RAM-less cartridge type")
}

func TestMBC1AdvancedModeSwitchesRAMBank(t *testing.T) {
	m := newMBC1(2, 4*0x2000, MBC1RAMBATT)
	m.Write(0x0000, 0x0A)
	m.Write(0x6000, 0x01) // advanced mode

	m.Write(0x4000, 0x01) // RAM bank 1
	m.Write(0xA000, 0x11)

	m.Write(0x4000, 0x02) // RAM bank 2
	m.Write(0xA000, 0x22)

	m.Write(0x4000, 0x01)
	assert.Equal(t, uint8(0x11), m.Read(0xA000))

	m.Write(0x4000, 0x02)
	assert.Equal(t, uint8(0x22), m.Read(0xA000))
}

func TestMBC1SimpleModeAlwaysUsesRAMBankZero(t *testing.T) {
	m := newMBC1(2, 4*0x2000, MBC1RAMBATT)
	m.Write(0x0000, 0x0A)
	m.Write(0x4000, 0x03) // would select RAM bank 3 in advanced mode, but simple mode is active

	m.Write(0xA000, 0x77)
	assert.Equal(t, uint8(0x77), m.Read(0xA000))

	m.Write(0x6000, 0x01) // switch to advanced mode; bank 3 becomes visible
	assert.Equal(t, uint8(0x00), m.Read(0xA000), "bank 3 was never written in simple mode, so it still holds its zeroed contents")
}

func TestMBC1SaveLoadRoundTrip(t *testing.T) {
	m := newMBC1(2, 0x2000, MBC1RAMBATT)
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0xAB)

	saved := m.Save()

	m2 := newMBC1(2, 0x2000, MBC1RAMBATT)
	m2.Load(saved)
	m2.Write(0x0000, 0x0A)
	assert.Equal(t, uint8(0xAB), m2.Read(0xA000))
}
