// Package ppu implements the Game Boy's pixel processing unit: the LCDC/STAT
// mode state machine, scanline background/window/sprite compositing, and the
// VRAM/OAM memory it owns.
package ppu

import (
	"sort"

	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/ppu/lcd"
	"github.com/langurmonkey/playkid/internal/ppu/palette"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	dotsPerLine  = 456
	oamDots      = 80
	vramDots     = 172
	linesPerFrame = 154
)

// PPU renders one scanline at a time, synchronously with the mode state
// machine; there is no pixel FIFO and no concurrent rendering pipeline.
type PPU struct {
	LCDC *lcd.Controller
	STAT *lcd.Status

	scy, scx uint8
	ly       uint8
	lyc      uint8
	wy, wx   uint8

	bgp, obp0, obp1 palette.Palette

	vram [0x2000]byte
	oam  [0xA0]byte

	dot uint

	statLine bool // last computed STAT interrupt line, for edge detection

	windowTriggered bool // window has been activated for the remainder of the frame
	wlyCounter      uint8

	frame        [ScreenHeight][ScreenWidth][3]uint8
	frameReady   bool

	irq *interrupts.Service
}

// New returns a PPU with the LCD enabled and default DMG register values.
func New(irq *interrupts.Service) *PPU {
	p := &PPU{
		LCDC: lcd.NewController(),
		STAT: lcd.NewStatus(),
		bgp:  palette.Palettes[palette.Current],
		obp0: palette.Palettes[palette.Current],
		obp1: palette.Palettes[palette.Current],
		irq:  irq,
	}
	return p
}

// Tick advances the PPU by the given number of t-cycles (dots).
func (p *PPU) Tick(tCycles int) {
	if !p.LCDC.Enabled {
		return
	}
	for i := 0; i < tCycles; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	p.dot++

	switch {
	case p.ly < ScreenHeight:
		switch {
		case p.dot == 1:
			p.setMode(lcd.OAM)
		case p.dot == oamDots+1:
			p.setMode(lcd.VRAM)
		case p.dot == oamDots+vramDots+1:
			p.renderScanline(p.ly)
			p.setMode(lcd.HBlank)
		}
	case p.ly == ScreenHeight && p.dot == 1:
		p.setMode(lcd.VBlank)
		p.irq.Request(interrupts.VBlankFlag)
		p.frameReady = true
	}

	if p.dot >= dotsPerLine {
		p.dot = 0
		p.ly++
		if p.ly >= linesPerFrame {
			p.ly = 0
			p.windowTriggered = false
			p.wlyCounter = 0
		}
		p.checkLYC()
	}

	p.updateStatLine()
}

func (p *PPU) setMode(m lcd.Mode) {
	p.STAT.SetMode(m)
}

func (p *PPU) checkLYC() {
	p.STAT.Coincidence = p.ly == p.lyc
}

// updateStatLine recomputes the OR of all enabled STAT interrupt sources and
// requests the LCD interrupt on a 0->1 transition (edge-triggered latch).
func (p *PPU) updateStatLine() {
	line := (p.STAT.Coincidence && p.STAT.CoincidenceInterrupt) ||
		(p.STAT.Mode == lcd.HBlank && p.STAT.HBlankInterrupt) ||
		(p.STAT.Mode == lcd.VBlank && p.STAT.VBlankInterrupt) ||
		(p.STAT.Mode == lcd.OAM && p.STAT.OAMInterrupt)

	if line && !p.statLine {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.statLine = line
}

// HasFrame reports whether a new frame has completed rendering since the
// last call to ClearFrame.
func (p *PPU) HasFrame() bool { return p.frameReady }

// ClearFrame acknowledges the most recently produced frame.
func (p *PPU) ClearFrame() { p.frameReady = false }

// Frame returns the most recently completed frame buffer.
func (p *PPU) Frame() [ScreenHeight][ScreenWidth][3]uint8 { return p.frame }

// ReadVRAM returns the byte at the given VRAM offset as seen by the CPU
// bus: while the LCD is on and the PPU is in Mode 3 (pixel transfer), VRAM
// is locked for its own rendering and the bus reads 0xFF instead.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if p.vramLocked() {
		return 0xFF
	}
	return p.vram[address&0x1FFF]
}

// WriteVRAM is WriteOAM's VRAM counterpart: writes during Mode 3 are
// dropped rather than corrupting the buffer the PPU is currently reading.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if p.vramLocked() {
		return
	}
	p.vram[address&0x1FFF] = value
}

// ReadOAM returns the byte at the given OAM offset as seen by the CPU bus:
// while the LCD is on and the PPU is in Mode 2 (OAM scan) or Mode 3 (pixel
// transfer), OAM is locked for its own sprite search and the bus reads
// 0xFF instead.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.oamLocked() {
		return 0xFF
	}
	return p.oam[address&0xFF]
}

// WriteOAM writes through the CPU bus; locked the same way ReadOAM is.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.oamLocked() {
		return
	}
	p.oam[address&0xFF] = value
}

// WriteOAMRaw writes into OAM unconditionally, bypassing the CPU-bus mode
// lock. OAM DMA is driven by dedicated hardware rather than the CPU, so it
// is never blocked by the PPU's current mode.
func (p *PPU) WriteOAMRaw(offset uint16, value uint8) {
	p.oam[offset&0xFF] = value
}

func (p *PPU) vramLocked() bool {
	return p.LCDC.Enabled && p.STAT.Mode == lcd.VRAM
}

func (p *PPU) oamLocked() bool {
	return p.LCDC.Enabled && (p.STAT.Mode == lcd.OAM || p.STAT.Mode == lcd.VRAM)
}

func (p *PPU) ReadLCDC() uint8 { return p.LCDC.Read(lcd.ControlRegister) }
func (p *PPU) WriteLCDC(v uint8) {
	wasEnabled := p.LCDC.Enabled
	p.LCDC.Write(lcd.ControlRegister, v)
	if wasEnabled && !p.LCDC.Enabled {
		p.ly, p.dot = 0, 0
		p.STAT.SetMode(lcd.HBlank)
	}
}

func (p *PPU) ReadSTAT() uint8 { return p.STAT.Read(lcd.StatusRegister) }
func (p *PPU) WriteSTAT(v uint8) { p.STAT.Write(lcd.StatusRegister, v) }

func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }
func (p *PPU) ReadLY() uint8     { return p.ly }
func (p *PPU) WriteLY(v uint8)   {} // LY is read-only; writes are discarded
func (p *PPU) ReadLYC() uint8    { return p.lyc }
func (p *PPU) WriteLYC(v uint8)  { p.lyc = v; p.checkLYC(); p.updateStatLine() }
func (p *PPU) ReadBGP() uint8    { return p.bgp.ToByte() }
func (p *PPU) WriteBGP(v uint8)  { p.bgp = palette.ByteToPalette(v) }
func (p *PPU) ReadOBP0() uint8   { return p.obp0.ToByte() }
func (p *PPU) WriteOBP0(v uint8) { p.obp0 = palette.ByteToPalette(v) }
func (p *PPU) ReadOBP1() uint8   { return p.obp1.ToByte() }
func (p *PPU) WriteOBP1(v uint8) { p.obp1 = palette.ByteToPalette(v) }
func (p *PPU) ReadWY() uint8     { return p.wy }
func (p *PPU) WriteWY(v uint8)   { p.wy = v }
func (p *PPU) ReadWX() uint8     { return p.wx }
func (p *PPU) WriteWX(v uint8)   { p.wx = v }

type oamEntry struct {
	y, x, tile, attr uint8
	index            uint8
}

// renderScanline composites background, window and up to 10 sprites for a
// single visible line directly into the frame buffer.
func (p *PPU) renderScanline(ly uint8) {
	var bgLine [ScreenWidth]uint8 // colour index 0-3, pre-palette

	if p.LCDC.Enabled && p.LCDC.BackgroundEnabled {
		y := ly + p.scy
		tileRow := uint16(y/8) % 32
		for x := 0; x < ScreenWidth; x++ {
			sx := uint8(x) + p.scx
			tileCol := uint16(sx/8) % 32
			tileNo := p.bgTileNumber(p.LCDC.BackgroundTileMapAddress, tileRow, tileCol)
			low, high := p.tileRowBytes(tileNo, y%8)
			bit := 7 - (sx % 8)
			colour := (low>>bit)&1 | ((high>>bit)&1)<<1
			bgLine[x] = colour
		}
	}

	if p.LCDC.Enabled && p.LCDC.WindowEnabled && p.wy <= ly {
		p.windowTriggered = true
	}
	if p.windowTriggered && p.LCDC.WindowEnabled && p.wx <= 166 {
		wx := int(p.wx) - 7
		tileRow := uint16(p.wlyCounter / 8)
		drew := false
		for x := 0; x < ScreenWidth; x++ {
			wxPos := x - wx
			if wxPos < 0 {
				continue
			}
			drew = true
			tileCol := uint16(wxPos/8) % 32
			tileNo := p.bgTileNumber(p.LCDC.WindowTileMapAddress, tileRow, tileCol)
			low, high := p.tileRowBytes(tileNo, uint8(p.wlyCounter%8))
			bit := 7 - (uint8(wxPos) % 8)
			colour := (low>>bit)&1 | ((high>>bit)&1)<<1
			bgLine[x] = colour
		}
		if drew {
			p.wlyCounter++
		}
	}

	var out [ScreenWidth][3]uint8
	for x := 0; x < ScreenWidth; x++ {
		out[x] = p.bgp.GetColour(bgLine[x])
	}

	if p.LCDC.Enabled && p.LCDC.SpriteEnabled {
		p.renderSprites(ly, &out, &bgLine)
	}

	p.frame[ly] = out
}

// bgTileNumber reads the tile index for a BG/window tile map entry. The
// signed-tile-data addressing rule for LCDC.4 selecting 0x8800-0x97FF is
// applied afterwards, by tileRowBytes.
func (p *PPU) bgTileNumber(mapBase uint16, row, col uint16) uint8 {
	addr := (mapBase - 0x8000) + row*32 + col
	return p.vram[addr]
}

func (p *PPU) tileRowBytes(tileNo uint8, rowInTile uint8) (uint8, uint8) {
	var base uint16
	if p.LCDC.UsingSignedTileData() {
		base = uint16(0x1000 + int16(int8(tileNo))*16)
	} else {
		base = uint16(tileNo) * 16
	}
	addr := base + uint16(rowInTile)*2
	return p.vram[addr&0x1FFF], p.vram[(addr+1)&0x1FFF]
}

// spriteTileRowBytes reads a sprite's tile row. Sprites always use the
// unsigned 0x8000-0x8FFF addressing mode, regardless of LCDC.4.
func (p *PPU) spriteTileRowBytes(tileNo uint8, rowInTile uint8) (uint8, uint8) {
	addr := uint16(tileNo)*16 + uint16(rowInTile)*2
	return p.vram[addr&0x1FFF], p.vram[(addr+1)&0x1FFF]
}

func (p *PPU) renderSprites(ly uint8, out *[ScreenWidth][3]uint8, bgLine *[ScreenWidth]uint8) {
	height := uint8(8)
	if p.LCDC.SpriteSize == 16 {
		height = 16
	}

	var visible []oamEntry
	for i := 0; i < 40 && len(visible) < 10; i++ {
		y := p.oam[i*4]
		x := p.oam[i*4+1]
		tile := p.oam[i*4+2]
		attr := p.oam[i*4+3]

		spriteTop := int(y) - 16
		if int(ly) >= spriteTop && int(ly) < spriteTop+int(height) {
			visible = append(visible, oamEntry{y: y, x: x, tile: tile, attr: attr, index: uint8(i)})
		}
	}

	sort.SliceStable(visible, func(i, j int) bool { return visible[i].x < visible[j].x })

	drawnAt := [ScreenWidth]bool{}
	for _, s := range visible {
		if s.x == 0 || s.x >= ScreenWidth+8 {
			continue
		}
		spriteTop := int(s.y) - 16
		row := int(ly) - spriteTop
		if s.attr&0x40 != 0 { // Y flip
			row = int(height) - 1 - row
		}
		tile := s.tile
		if height == 16 {
			tile &^= 1
			if row >= 8 {
				tile |= 1
				row -= 8
			}
		}
		low, high := p.spriteTileRowBytes(tile, uint8(row))
		behindBG := s.attr&0x80 != 0
		pal := p.obp0
		if s.attr&0x10 != 0 {
			pal = p.obp1
		}

		for px := 0; px < 8; px++ {
			screenX := int(s.x) - 8 + px
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			if drawnAt[screenX] {
				continue
			}
			bit := uint8(px)
			if s.attr&0x20 == 0 { // no X flip: bit7 is leftmost
				bit = 7 - uint8(px)
			}
			colour := (low>>bit)&1 | ((high>>bit)&1)<<1
			if colour == 0 {
				continue
			}
			if behindBG && bgLine[screenX] != 0 {
				continue
			}
			out[screenX] = pal.GetColour(colour)
			drawnAt[screenX] = true
		}
	}
}
