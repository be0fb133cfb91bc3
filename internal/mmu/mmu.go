// Package mmu implements the memory bus: a single Read/Write address-range
// dispatcher that routes every CPU memory access to the cartridge, WRAM,
// the PPU's VRAM/OAM, HRAM, or one of the I/O register peripherals.
package mmu

import (
	"github.com/langurmonkey/playkid/internal/apu"
	"github.com/langurmonkey/playkid/internal/cartridge"
	"github.com/langurmonkey/playkid/internal/dma"
	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/joypad"
	"github.com/langurmonkey/playkid/internal/ppu"
	"github.com/langurmonkey/playkid/internal/serial"
	"github.com/langurmonkey/playkid/internal/timer"
	"github.com/langurmonkey/playkid/internal/types"
)

// MMU is the DMG address bus: 0x0000-0x7FFF and 0xA000-0xBFFF go to the
// cartridge, 0x8000-0x9FFF and 0xFE00-0xFE9F to the PPU, 0xC000-0xDFFF (and
// its 0xE000-0xFDFF echo) to flat WRAM, 0xFF00-0xFF7F/0xFFFF to the I/O
// peripherals, and 0xFF80-0xFFFE to HRAM.
type MMU struct {
	cart cartridge.Cartridge

	wram [0x2000]byte
	hram [0x7F]byte

	ppu    *ppu.PPU
	apu    *apu.APU
	timer  *timer.Controller
	joypad *joypad.Controller
	serial *serial.Controller
	irq    *interrupts.Service
	dma    *dma.Controller
}

// New wires an MMU over the given cartridge and peripherals, and
// constructs the OAM DMA controller internally so it can read the full
// address space through the MMU's own Read.
func New(cart cartridge.Cartridge, p *ppu.PPU, a *apu.APU, t *timer.Controller, j *joypad.Controller, s *serial.Controller, irq *interrupts.Service) *MMU {
	m := &MMU{
		cart:   cart,
		ppu:    p,
		apu:    a,
		timer:  t,
		joypad: j,
		serial: s,
		irq:    irq,
	}
	m.dma = dma.New(m.readForDMA, p.WriteOAMRaw)
	return m
}

// DMA returns the OAM DMA controller, so the system clock can tick it
// alongside the other peripherals.
func (m *MMU) DMA() *dma.Controller { return m.dma }

// readForDMA is the DMA source-read callback: DMA sources can come from
// ROM, WRAM or (atypically) HRAM, so it reads through the ordinary bus
// rather than being restricted to a single region.
func (m *MMU) readForDMA(address uint16) uint8 {
	return m.Read(address)
}

// Read dispatches a CPU (or DMA) memory read by address range.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.cart.Read(address)
	case address < 0xA000:
		return m.ppu.ReadVRAM(address - 0x8000)
	case address < 0xC000:
		return m.cart.Read(address)
	case address < 0xE000:
		return m.wram[address-0xC000]
	case address < 0xFE00:
		return m.wram[address-0xE000]
	case address < 0xFEA0:
		return m.ppu.ReadOAM(address - 0xFE00)
	case address < 0xFF00:
		return 0xFF
	case address < 0xFF80:
		return m.readIO(address)
	case address < 0xFFFF:
		return m.hram[address-0xFF80]
	default:
		return m.irq.ReadIE()
	}
}

// Write dispatches a CPU memory write by address range.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.cart.Write(address, value)
	case address < 0xA000:
		m.ppu.WriteVRAM(address-0x8000, value)
	case address < 0xC000:
		m.cart.Write(address, value)
	case address < 0xE000:
		m.wram[address-0xC000] = value
	case address < 0xFE00:
		m.wram[address-0xE000] = value
	case address < 0xFEA0:
		m.ppu.WriteOAM(address-0xFE00, value)
	case address < 0xFF00:
		// Unusable region; writes are discarded.
	case address < 0xFF80:
		m.writeIO(address, value)
	case address < 0xFFFF:
		m.hram[address-0xFF80] = value
	default:
		m.irq.WriteIE(value)
	}
}

// readIO dispatches a read within 0xFF00-0xFF7F to the owning peripheral.
func (m *MMU) readIO(address uint16) uint8 {
	if address >= types.NR10 && address <= types.NR52 {
		return m.apu.Read(address)
	}
	if address >= types.WaveRAMStart && address <= types.WaveRAMEnd {
		return m.apu.Read(address)
	}
	switch address {
	case types.P1:
		return m.joypad.ReadP1()
	case types.SB:
		return m.serial.ReadSB()
	case types.SC:
		return m.serial.ReadSC()
	case types.DIV:
		return m.timer.ReadDIV()
	case types.TIMA:
		return m.timer.ReadTIMA()
	case types.TMA:
		return m.timer.ReadTMA()
	case types.TAC:
		return m.timer.ReadTAC()
	case types.IF:
		return m.irq.ReadIF()
	case types.LCDC:
		return m.ppu.ReadLCDC()
	case types.STAT:
		return m.ppu.ReadSTAT()
	case types.SCY:
		return m.ppu.ReadSCY()
	case types.SCX:
		return m.ppu.ReadSCX()
	case types.LY:
		return m.ppu.ReadLY()
	case types.LYC:
		return m.ppu.ReadLYC()
	case types.DMA:
		return m.dma.ReadDMA()
	case types.BGP:
		return m.ppu.ReadBGP()
	case types.OBP0:
		return m.ppu.ReadOBP0()
	case types.OBP1:
		return m.ppu.ReadOBP1()
	case types.WY:
		return m.ppu.ReadWY()
	case types.WX:
		return m.ppu.ReadWX()
	default:
		return 0xFF
	}
}

// writeIO dispatches a write within 0xFF00-0xFF7F to the owning peripheral.
func (m *MMU) writeIO(address uint16, value uint8) {
	if address >= types.NR10 && address <= types.NR52 {
		m.apu.Write(address, value)
		return
	}
	if address >= types.WaveRAMStart && address <= types.WaveRAMEnd {
		m.apu.Write(address, value)
		return
	}
	switch address {
	case types.P1:
		m.joypad.WriteP1(value)
	case types.SB:
		m.serial.WriteSB(value)
	case types.SC:
		m.serial.WriteSC(value)
	case types.DIV:
		m.timer.WriteDIV()
	case types.TIMA:
		m.timer.WriteTIMA(value)
	case types.TMA:
		m.timer.WriteTMA(value)
	case types.TAC:
		m.timer.WriteTAC(value)
	case types.IF:
		m.irq.WriteIF(value)
	case types.LCDC:
		m.ppu.WriteLCDC(value)
	case types.STAT:
		m.ppu.WriteSTAT(value)
	case types.SCY:
		m.ppu.WriteSCY(value)
	case types.SCX:
		m.ppu.WriteSCX(value)
	case types.LY:
		// Read-only; writes discarded.
	case types.LYC:
		m.ppu.WriteLYC(value)
	case types.DMA:
		m.dma.WriteDMA(value)
	case types.BGP:
		m.ppu.WriteBGP(value)
	case types.OBP0:
		m.ppu.WriteOBP0(value)
	case types.OBP1:
		m.ppu.WriteOBP1(value)
	case types.WY:
		m.ppu.WriteWY(value)
	case types.WX:
		m.ppu.WriteWX(value)
	}
}
