// Package cpu implements the Sharp LR35902 instruction set: fetch/decode/
// execute, flag semantics, interrupt service, and the HALT/HALT-bug/STOP
// mode state machine. Every t-cycle retired here also ticks the DMA,
// timer, PPU, APU and serial peripherals, so the whole system advances
// from a single call to Step.
package cpu

import (
	"fmt"

	"github.com/langurmonkey/playkid/internal/apu"
	"github.com/langurmonkey/playkid/internal/dma"
	"github.com/langurmonkey/playkid/internal/interrupts"
	"github.com/langurmonkey/playkid/internal/mmu"
	"github.com/langurmonkey/playkid/internal/ppu"
	"github.com/langurmonkey/playkid/internal/serial"
	"github.com/langurmonkey/playkid/internal/timer"
	"github.com/langurmonkey/playkid/internal/types"
)

// ClockSpeed is the DMG CPU clock speed in Hz.
const ClockSpeed = 4194304

// Register, RegisterPair, and Registers are aliases of the shared types
// package so the CPU package can refer to them unqualified.
type Register = types.Register
type RegisterPair = types.RegisterPair
type Registers = types.Registers

type mode = uint8

const (
	ModeNormal mode = iota
	ModeHalt
	ModeStop
	ModeHaltBug
	ModeHaltDI
	ModeEnableIME
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	PC uint16
	SP uint16
	Registers

	mmu *mmu.MMU
	IRQ *interrupts.Service

	Debug           bool
	DebugBreakpoint bool

	dma    *dma.Controller
	timer  *timer.Controller
	ppu    *ppu.PPU
	sound  *apu.APU
	serial *serial.Controller

	currentTick uint8
	mode        mode
}

// NewCPU creates a new CPU instance with the given MMU and peripherals,
// all of which are ticked once per t-cycle from Step.
func NewCPU(m *mmu.MMU, irq *interrupts.Service, d *dma.Controller, t *timer.Controller, p *ppu.PPU, sound *apu.APU, ser *serial.Controller) *CPU {
	c := &CPU{
		Registers: Registers{},
		mmu:       m,
		IRQ:       irq,
		dma:       d,
		timer:     t,
		ppu:       p,
		sound:     sound,
		serial:    ser,
	}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	return c
}

// registerIndex returns a Register pointer for the given index.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// registerName returns the name of a Register.
func (c *CPU) registerName(reg *Register) string {
	switch reg {
	case &c.A:
		return "A"
	case &c.B:
		return "B"
	case &c.C:
		return "C"
	case &c.D:
		return "D"
	case &c.E:
		return "E"
	case &c.H:
		return "H"
	case &c.L:
		return "L"
	}
	return ""
}

// Step executes exactly one instruction (or one mode-dependent tick while
// halted/stopped), services at most one interrupt, and returns the number
// of t-cycles retired.
func (c *CPU) Step() uint8 {
	c.currentTick = 0

	reqInt := false
	if c.mode == ModeNormal {
		c.runInstruction(c.readInstruction())
		reqInt = c.IRQ.IME && c.hasInterrupts()
	} else {
		switch c.mode {
		case ModeHalt, ModeStop:
			// in stop/halt mode, the CPU ticks 4 times but executes nothing
			c.tickCycle()
			reqInt = c.hasInterrupts()
		case ModeHaltDI:
			c.tickCycle()
			if c.hasInterrupts() {
				c.mode = ModeNormal
			}
		case ModeEnableIME:
			c.IRQ.IME = true
			c.mode = ModeNormal
			c.runInstruction(c.readInstruction())
			reqInt = c.IRQ.IME && c.hasInterrupts()
		case ModeHaltBug:
			// the halted-with-IME-disabled bug: the next opcode is fetched
			// but PC fails to advance, so it is executed a second time
			instr := c.readInstruction()
			c.PC--
			c.runInstruction(instr)
			c.mode = ModeNormal
			reqInt = c.IRQ.IME && c.hasInterrupts()
		}
	}

	if reqInt {
		c.executeInterrupt()
	}

	return c.currentTick
}

func (c *CPU) hasInterrupts() bool {
	return c.IRQ.Enable&c.IRQ.Flag&0x1F != 0
}

// readInstruction reads the next instruction byte from memory.
func (c *CPU) readInstruction() uint8 {
	c.tickCycle()
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte from memory.
func (c *CPU) readOperand() uint8 {
	c.tickCycle()
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

func (c *CPU) skipOperand() {
	c.tickCycle()
	c.PC++
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.mmu.Write(addr, val)
}

func (c *CPU) runInstruction(opcode uint8) {
	var instruction Instruction
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	} else {
		instruction = InstructionSet[opcode]
	}

	instruction.fn(c)

	if c.Debug {
		if instruction.name == "LD B, B" {
			c.DebugBreakpoint = true
		}
	}
}

func (c *CPU) executeInterrupt() {
	if c.IRQ.IME {
		c.SP--
		c.writeByte(c.SP, uint8(c.PC>>8))

		vector := c.IRQ.Vector()

		c.SP--
		c.writeByte(c.SP, uint8(c.PC&0xFF))

		c.PC = vector
		c.IRQ.IME = false

		c.tickCycle()
		c.tickCycle()
		c.tickCycle()
	}

	c.mode = ModeNormal
}

// tick advances every ticked peripheral by one t-cycle.
func (c *CPU) tick() {
	c.dma.Tick(1)
	c.timer.Tick(1)
	c.serial.Tick(1)
	c.ppu.Tick(1)
	c.sound.Tick(1)
	c.currentTick++
}

// tickCycle advances one m-cycle (4 t-cycles).
func (c *CPU) tickCycle() {
	c.tick()
	c.tick()
	c.tick()
	c.tick()
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
