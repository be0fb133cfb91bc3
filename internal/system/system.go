// Package system wires a cartridge and the full peripheral set into a
// single owning aggregate, and drives the CPU/timer/PPU/APU/DMA/serial
// loop one instruction at a time so the whole machine advances from a
// single call to StepFrame.
package system

import (
	"github.com/langurmonkey/playkid/internal/apu"
	"github.com/langurmonkey/playkid/internal/cartridge"
	"github.com/langurmonkey/playkid/internal/cpu"
	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/joypad"
	"github.com/langurmonkey/playkid/internal/mmu"
	"github.com/langurmonkey/playkid/internal/ppu"
	"github.com/langurmonkey/playkid/internal/ppu/palette"
	"github.com/langurmonkey/playkid/internal/serial"
	"github.com/langurmonkey/playkid/internal/timer"
	"github.com/langurmonkey/playkid/pkg/log"
)

// ClockSpeed is the DMG CPU clock speed in Hz.
const ClockSpeed = 4194304

// CyclesPerFrame is the number of t-cycles in one 59.7 Hz video frame.
const CyclesPerFrame = 70224

// Palette selects one of the built-in 4-colour DMG palettes, or a
// caller-supplied one.
type Palette int

const (
	GreenDMG Palette = iota
	Grey
)

// Options configures System construction.
type Options struct {
	// SkipHeaderChecks suppresses BadLogo/HeaderChecksumMismatch/
	// GlobalChecksumMismatch at load time.
	SkipHeaderChecks bool
	// Palette selects a built-in palette. Ignored if Custom is set.
	Palette Palette
	// Custom, if non-nil, is a caller-supplied 4-colour palette
	// ([background, light, dark, black] RGB triples).
	Custom *[4][3]uint8
}

// System owns the cartridge and every peripheral, and is the sole entry
// point external callers use to run the machine. It is not safe for
// concurrent use: callers drive it from a single goroutine, matching the
// core's single-logical-thread design.
type System struct {
	CPU *cpu.CPU

	cart   cartridge.Cartridge
	mmu    *mmu.MMU
	ppu    *ppu.PPU
	apu    *apu.APU
	timer  *timer.Controller
	joypad *joypad.Controller
	serial *serial.Controller
	irq    *interrupts.Service

	frozen bool

	log.Logger
}

// FrameResult is returned by StepFrame: the completed frame's pixel
// buffer and the audio samples produced while rendering it.
type FrameResult struct {
	Framebuffer  [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8
	AudioSamples []apu.Sample
}

// New constructs a System from ROM bytes and, optionally, previously
// saved battery RAM. Returns a *cartridge.LoadError on any header
// problem; no partial System is ever returned alongside a non-nil error.
func New(rom []byte, sram []byte, opts Options) (*System, error) {
	cart, _, err := cartridge.New(rom, opts.SkipHeaderChecks)
	if err != nil {
		return nil, err
	}
	if sram != nil {
		cart.LoadRAM(sram)
	}

	applyPalette(opts)

	s := &System{cart: cart, Logger: log.NewNullLogger()}
	s.wire()
	return s, nil
}

func applyPalette(opts Options) {
	if opts.Custom != nil {
		palette.SetCustom(*opts.Custom)
		return
	}
	switch opts.Palette {
	case Grey:
		palette.Current = palette.Greyscale
	default:
		palette.Current = palette.Green
	}
}

// wire constructs every peripheral and the CPU over them, the one place
// the cyclic CPU<->MMU ownership is resolved: both sides get references
// handed out of this single aggregate.
func (s *System) wire() {
	s.irq = interrupts.NewService()
	s.ppu = ppu.New(s.irq)
	s.apu = apu.New()
	s.timer = timer.NewController(s.irq)
	s.joypad = joypad.NewController(s.irq)
	s.serial = serial.NewController()
	s.mmu = mmu.New(s.cart, s.ppu, s.apu, s.timer, s.joypad, s.serial, s.irq)
	s.CPU = cpu.NewCPU(s.mmu, s.irq, s.mmu.DMA(), s.timer, s.ppu, s.apu, s.serial)
	s.CPU.PC = 0x0100
	s.CPU.SP = 0xFFFE
}

// StepFrame runs the CPU until the PPU completes exactly one frame
// (LY=143 HBlank -> LY=144 VBlank) and returns its framebuffer along
// with the audio samples produced while rendering it. A frozen core
// (an opcode from the disallowed set was executed) returns the last
// framebuffer unchanged and no samples.
func (s *System) StepFrame() FrameResult {
	if s.frozen {
		return FrameResult{Framebuffer: s.ppu.Frame()}
	}

	s.ppu.ClearFrame()
	for !s.ppu.HasFrame() {
		if disallowedOpcode(s) {
			s.frozen = true
			break
		}
		s.CPU.Step()
	}
	s.ppu.ClearFrame()

	return FrameResult{
		Framebuffer:  s.ppu.Frame(),
		AudioSamples: s.apu.DrainSamples(),
	}
}

// disallowedOpcode reports whether the CPU is parked on one of the
// eleven opcodes hardware freezes on, right before it would be fetched.
func disallowedOpcode(s *System) bool {
	switch s.mmu.Read(s.CPU.PC) {
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return true
	default:
		return false
	}
}

// SetButtons applies the external button mask: b7..b0 = Down, Up, Left,
// Right, Start, Select, B, A, active-high.
func (s *System) SetButtons(mask uint8) {
	s.joypad.SetButtons(mask)
}

// SnapshotSRAM returns the cartridge's battery RAM, or nil if its
// cartridge type declares none.
func (s *System) SnapshotSRAM() []byte {
	ram := s.cart.RAMBytes()
	if len(ram) == 0 {
		return nil
	}
	out := make([]byte, len(ram))
	copy(out, ram)
	return out
}

// Reset performs a cold reset, preserving cartridge RAM (the cartridge
// itself is not reconstructed, only the peripherals and CPU).
func (s *System) Reset() {
	s.wire()
	s.frozen = false
}
