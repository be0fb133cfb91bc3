package apu

import "github.com/langurmonkey/playkid/internal/types"

var divisorTable = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// noiseChannel implements channel 4: a 15-bit (or, in narrow-width mode, a
// 7-bit wrapped into the same register) LFSR clocked at a divisor/shift
// derived rate, with a length counter and volume envelope.
type noiseChannel struct {
	enabled bool

	lengthLoad uint8
	length     uint

	lengthEnabled bool

	envelope envelope

	clockShift  uint8
	widthMode   bool
	divisorCode uint8

	freqTimer int
	lfsr      uint16
}

func newNoiseChannel() *noiseChannel {
	return &noiseChannel{lfsr: 0x7FFF, freqTimer: 8}
}

// reset clears the channel's state on power-off, except the length
// counter, which survives a power cycle on real hardware.
func (c *noiseChannel) reset() {
	lengthLoad, length, lengthEnabled := c.lengthLoad, c.length, c.lengthEnabled
	*c = *newNoiseChannel()
	c.lengthLoad, c.length, c.lengthEnabled = lengthLoad, length, lengthEnabled
}

func (c *noiseChannel) step() {
	c.freqTimer--
	if c.freqTimer <= 0 {
		c.freqTimer = divisorTable[c.divisorCode] << c.clockShift

		newBit := (c.lfsr & 1) ^ ((c.lfsr >> 1) & 1)
		c.lfsr >>= 1
		c.lfsr |= newBit << 14
		if c.widthMode {
			c.lfsr &^= 1 << 6
			c.lfsr |= newBit << 6
		}
	}
}

func (c *noiseChannel) lengthStep() {
	if c.lengthEnabled && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
}

func (c *noiseChannel) amplitude() uint8 {
	if !c.enabled || !c.envelope.dacEnabled() {
		return 0
	}
	if c.lfsr&1 != 0 {
		return 0
	}
	return c.envelope.current
}

func (c *noiseChannel) writeNR41(v uint8) {
	c.lengthLoad = v & 0x3F
	c.length = 0x40 - uint(c.lengthLoad)
}

func (c *noiseChannel) readNR43() uint8 {
	b := c.clockShift << 4
	if c.widthMode {
		b |= types.Bit3
	}
	return b | c.divisorCode
}

func (c *noiseChannel) writeNR43(v uint8) {
	c.clockShift = v >> 4
	c.widthMode = v&types.Bit3 != 0
	c.divisorCode = v & 0x7
}

func (c *noiseChannel) readControl() uint8 {
	b := uint8(0)
	if c.lengthEnabled {
		b |= types.Bit6
	}
	return b | 0xBF
}

func (c *noiseChannel) writeControl(v uint8, firstHalf bool) {
	newLengthEnabled := v&types.Bit6 != 0
	if firstHalf && !c.lengthEnabled && newLengthEnabled && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
	c.lengthEnabled = newLengthEnabled

	if v&types.Bit7 != 0 {
		c.enabled = c.envelope.dacEnabled()
		if c.length == 0 {
			c.length = 0x40
			if c.lengthEnabled && firstHalf {
				c.length--
			}
		}
		c.envelope.trigger()
		c.lfsr = 0x7FFF
	}
}
