package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/ppu/lcd"
)

func newTestPPU() (*PPU, *interrupts.Service) {
	irq := interrupts.NewService()
	irq.WriteIE(0xFF)
	return New(irq), irq
}

func TestModeProgressesOAMVRAMHBlankWithinVisibleLine(t *testing.T) {
	p, _ := newTestPPU()

	p.Tick(1)
	assert.Equal(t, lcd.OAM, p.STAT.Mode)

	p.Tick(oamDots - 1)
	assert.Equal(t, lcd.OAM, p.STAT.Mode)
	p.Tick(1)
	assert.Equal(t, lcd.VRAM, p.STAT.Mode)

	p.Tick(vramDots - 1)
	assert.Equal(t, lcd.VRAM, p.STAT.Mode)
	p.Tick(1)
	assert.Equal(t, lcd.HBlank, p.STAT.Mode)
}

func TestVBlankEntryRequestsVBlankInterruptAndSetsFrameReady(t *testing.T) {
	p, irq := newTestPPU()
	assert.False(t, p.HasFrame())

	p.Tick(dotsPerLine * ScreenHeight) // run through all 144 visible lines
	p.Tick(1)                          // cross into line 144, dot 1

	assert.Equal(t, lcd.VBlank, p.STAT.Mode)
	assert.True(t, p.HasFrame())
	assert.True(t, irq.HasInterrupts())
}

func TestClearFrameResetsFrameReady(t *testing.T) {
	p, _ := newTestPPU()
	p.Tick(dotsPerLine*ScreenHeight + 1)
	assert.True(t, p.HasFrame())

	p.ClearFrame()
	assert.False(t, p.HasFrame())
}

func TestLYWrapsAfter154Lines(t *testing.T) {
	p, _ := newTestPPU()
	p.Tick(dotsPerLine * linesPerFrame)
	assert.Equal(t, uint8(0), p.ReadLY())
}

func TestLYCCoincidenceSetsStatFlagAndRequestsLCDInterrupt(t *testing.T) {
	p, irq := newTestPPU()
	p.STAT.CoincidenceInterrupt = true
	p.WriteLYC(5)

	p.Tick(dotsPerLine * 5) // advance through lines 0-4, landing on line 5
	assert.Equal(t, uint8(5), p.ReadLY())
	assert.True(t, p.STAT.Coincidence)
	assert.True(t, irq.HasInterrupts())
}

func TestWriteLCDCDisablingResetsLYAndDot(t *testing.T) {
	p, _ := newTestPPU()
	p.Tick(dotsPerLine * 3) // advance a few lines
	assert.NotEqual(t, uint8(0), p.ReadLY())

	p.WriteLCDC(0x00) // disable the LCD
	assert.Equal(t, uint8(0), p.ReadLY())
	assert.Equal(t, lcd.HBlank, p.STAT.Mode)

	p.Tick(1000) // ticking a disabled PPU should not advance anything
	assert.Equal(t, uint8(0), p.ReadLY())
}

func TestVRAMAndOAMReadWrite(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteVRAM(0x0010, 0xAB)
	assert.Equal(t, uint8(0xAB), p.ReadVRAM(0x0010))

	p.WriteOAM(0x04, 0x99)
	assert.Equal(t, uint8(0x99), p.ReadOAM(0x04))
}

func TestVRAMLockedDuringMode3(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteVRAM(0x0010, 0xAB) // seed while unlocked (HBlank)

	p.STAT.SetMode(lcd.VRAM)
	p.WriteVRAM(0x0010, 0xCD) // should be dropped
	assert.Equal(t, uint8(0xFF), p.ReadVRAM(0x0010), "VRAM reads 0xFF while Mode 3 owns the bus")

	p.STAT.SetMode(lcd.HBlank)
	assert.Equal(t, uint8(0xAB), p.ReadVRAM(0x0010), "the Mode-3 write should not have landed")
}

func TestVRAMNotLockedInHBlankOrVBlankOrOAM(t *testing.T) {
	p, _ := newTestPPU()
	for _, m := range []lcd.Mode{lcd.HBlank, lcd.VBlank, lcd.OAM} {
		p.STAT.SetMode(m)
		p.WriteVRAM(0x0020, 0x11)
		assert.Equal(t, uint8(0x11), p.ReadVRAM(0x0020), "mode %v should not lock VRAM", m)
	}
}

func TestOAMLockedDuringMode2AndMode3(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteOAM(0x08, 0x42) // seed while unlocked (HBlank)

	for _, m := range []lcd.Mode{lcd.OAM, lcd.VRAM} {
		p.STAT.SetMode(m)
		p.WriteOAM(0x08, 0x77) // should be dropped
		assert.Equal(t, uint8(0xFF), p.ReadOAM(0x08), "OAM reads 0xFF during mode %v", m)
	}

	p.STAT.SetMode(lcd.HBlank)
	assert.Equal(t, uint8(0x42), p.ReadOAM(0x08), "locked writes should not have landed")
}

func TestOAMNotLockedInHBlankOrVBlank(t *testing.T) {
	p, _ := newTestPPU()
	for _, m := range []lcd.Mode{lcd.HBlank, lcd.VBlank} {
		p.STAT.SetMode(m)
		p.WriteOAM(0x0C, 0x33)
		assert.Equal(t, uint8(0x33), p.ReadOAM(0x0C), "mode %v should not lock OAM", m)
	}
}

func TestVRAMAndOAMLocksDoNotApplyWhileLCDIsOff(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteLCDC(0x00) // disable the LCD
	p.STAT.SetMode(lcd.VRAM)

	p.WriteVRAM(0x0030, 0x55)
	assert.Equal(t, uint8(0x55), p.ReadVRAM(0x0030), "VRAM should be unlocked while the LCD is off")

	p.WriteOAM(0x10, 0x66)
	assert.Equal(t, uint8(0x66), p.ReadOAM(0x10), "OAM should be unlocked while the LCD is off")
}

func TestWriteOAMRawBypassesModeLock(t *testing.T) {
	p, _ := newTestPPU()
	p.STAT.SetMode(lcd.VRAM) // OAM and VRAM both locked to the CPU here

	p.WriteOAMRaw(0x14, 0x88)
	assert.Equal(t, uint8(0x88), p.oam[0x14], "OAM DMA writes must bypass the CPU-bus mode lock")
}

func TestBGPRoundTripsThroughPaletteByte(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteBGP(0xE4) // the canonical identity DMG palette byte
	assert.Equal(t, uint8(0xE4), p.ReadBGP())
}

func TestRenderScanlineProducesBackgroundPixels(t *testing.T) {
	p, _ := newTestPPU()
	// Tile 1 at (0,0) of the background map, with a non-zero pattern.
	p.WriteVRAM(0x1800, 0x01) // map entry at 9800: tile index 1
	p.WriteVRAM(0x1010, 0xFF) // tile 1 (signed addressing), row 0, low byte: all bits set
	p.WriteBGP(0xE4)

	p.renderScanline(0)
	frame := p.Frame()
	assert.NotEqual(t, [3]uint8{}, frame[0][0])
}

func TestRenderSpritesRespectsTenPerLineLimit(t *testing.T) {
	p, _ := newTestPPU()
	p.LCDC.SpriteEnabled = true
	for i := 0; i < 20; i++ {
		p.WriteOAM(uint16(i*4+0), 16)          // y, on-screen at ly=0
		p.WriteOAM(uint16(i*4+1), uint8(8+i))  // x, staggered
		p.WriteOAM(uint16(i*4+2), 0)           // tile
		p.WriteOAM(uint16(i*4+3), 0)           // attr
	}
	p.WriteVRAM(0x0000, 0xFF) // tile 0 row 0 opaque

	var out [ScreenWidth][3]uint8
	var bg [ScreenWidth]uint8
	assert.NotPanics(t, func() { p.renderSprites(0, &out, &bg) })
}
