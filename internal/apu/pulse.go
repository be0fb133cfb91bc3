package apu

import "github.com/langurmonkey/playkid/internal/types"

var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// pulseChannel implements channels 1 and 2: a duty-cycle square wave with
// a length counter and volume envelope. Channel 1 additionally carries a
// frequency sweep unit (hasSweep); channel 2 never does.
type pulseChannel struct {
	hasSweep bool

	enabled bool

	duty       uint8
	lengthLoad uint8
	length     uint

	lengthEnabled bool

	frequency uint16
	freqTimer int
	dutyPos   uint8

	envelope envelope

	sweepPeriod     uint8
	sweepNegate     bool
	sweepShift      uint8
	sweepTimer      uint8
	sweepEnabled    bool
	sweepShadow     uint16
	sweepNegateUsed bool
}

func newPulseChannel(hasSweep bool) *pulseChannel {
	return &pulseChannel{hasSweep: hasSweep}
}

// reset clears the channel's state on power-off, except the length
// counter, which survives a power cycle on real hardware.
func (c *pulseChannel) reset() {
	lengthLoad, length, lengthEnabled := c.lengthLoad, c.length, c.lengthEnabled
	hasSweep := c.hasSweep
	*c = pulseChannel{}
	c.hasSweep = hasSweep
	c.lengthLoad, c.length, c.lengthEnabled = lengthLoad, length, lengthEnabled
}

func (c *pulseChannel) step() {
	c.freqTimer--
	if c.freqTimer <= 0 {
		c.freqTimer = (2048 - int(c.frequency)) * 4
		c.dutyPos = (c.dutyPos + 1) & 7
	}
}

func (c *pulseChannel) lengthStep() {
	if c.lengthEnabled && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
}

func (c *pulseChannel) amplitude() uint8 {
	if !c.enabled || !c.envelope.dacEnabled() {
		return 0
	}
	return dutyTable[c.duty][c.dutyPos] * c.envelope.current
}

func (c *pulseChannel) readSweep() uint8 {
	b := c.sweepPeriod<<4 | c.sweepShift
	if c.sweepNegate {
		b |= types.Bit3
	}
	return b | 0x80
}

func (c *pulseChannel) writeSweep(v uint8) {
	c.sweepPeriod = (v >> 4) & 0x7
	c.sweepNegate = v&types.Bit3 != 0
	c.sweepShift = v & 0x7
	if !c.sweepNegate && c.sweepNegateUsed {
		c.enabled = false
	}
}

func (c *pulseChannel) readDutyLength() uint8 {
	return c.duty<<6 | 0x3F
}

func (c *pulseChannel) writeDutyLength(v uint8) {
	c.duty = v >> 6
	c.lengthLoad = v & 0x3F
	c.length = 0x40 - uint(c.lengthLoad)
}

func (c *pulseChannel) writeFreqLow(v uint8) {
	c.frequency = c.frequency&0x700 | uint16(v)
}

func (c *pulseChannel) readControl() uint8 {
	b := uint8(0)
	if c.lengthEnabled {
		b |= types.Bit6
	}
	return b | 0xBF
}

func (c *pulseChannel) writeControl(v uint8, firstHalf bool) {
	c.frequency = c.frequency&0x00FF | uint16(v&0x7)<<8
	newLengthEnabled := v&types.Bit6 != 0
	if firstHalf && !c.lengthEnabled && newLengthEnabled && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
	c.lengthEnabled = newLengthEnabled

	if v&types.Bit7 != 0 {
		c.trigger(firstHalf)
	}
}

func (c *pulseChannel) trigger(firstHalf bool) {
	c.enabled = c.envelope.dacEnabled()
	if c.length == 0 {
		c.length = 0x40
		if c.lengthEnabled && firstHalf {
			c.length--
		}
	}
	c.freqTimer = (2048 - int(c.frequency)) * 4
	c.envelope.trigger()

	if !c.hasSweep {
		return
	}
	c.sweepShadow = c.frequency
	if c.sweepPeriod > 0 {
		c.sweepTimer = c.sweepPeriod
	} else {
		c.sweepTimer = 8
	}
	c.sweepEnabled = c.sweepPeriod > 0 || c.sweepShift > 0
	c.sweepNegateUsed = false
	if c.sweepShift > 0 {
		c.sweepCalculate()
	}
}

// sweepStep is only meaningful for channel 1; callers may invoke it
// unconditionally since hasSweep guards all effect.
func (c *pulseChannel) sweepStep() {
	if !c.hasSweep || c.sweepTimer == 0 {
		return
	}
	c.sweepTimer--
	if c.sweepTimer != 0 {
		return
	}
	if c.sweepPeriod > 0 {
		c.sweepTimer = c.sweepPeriod
	} else {
		c.sweepTimer = 8
	}
	if c.sweepEnabled && c.sweepPeriod > 0 {
		newFreq := c.sweepCalculate()
		if newFreq <= 0x7FF && c.sweepShift > 0 {
			c.sweepShadow = newFreq
			c.frequency = newFreq
			c.sweepCalculate()
		}
	}
}

func (c *pulseChannel) sweepCalculate() uint16 {
	delta := c.sweepShadow >> c.sweepShift
	var calculated uint16
	if c.sweepNegate {
		calculated = c.sweepShadow - delta
	} else {
		calculated = c.sweepShadow + delta
	}
	c.sweepNegateUsed = c.sweepNegate
	if calculated > 0x7FF {
		c.enabled = false
	}
	return calculated
}
