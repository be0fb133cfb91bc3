package apu

import "github.com/langurmonkey/playkid/internal/types"

// waveChannel implements channel 3: a user-defined 32-sample waveform
// stored 2 samples per byte across 16 bytes of wave RAM, played back at a
// rate derived from its 11-bit frequency and attenuated by a volume shift
// (100%/50%/25%/mute, selected by NR32).
type waveChannel struct {
	enabled    bool
	dacEnabled bool

	lengthLoad uint16
	length     uint

	volumeCode  uint8
	volumeShift uint8

	frequency uint16
	freqTimer int

	waveRAM    [16]uint8
	position   uint8
	lenEnabled bool
}

func newWaveChannel() *waveChannel {
	return &waveChannel{}
}

// reset clears channel 3's state on power-off, except wave RAM and the
// length counter, which survive a power cycle on real hardware.
func (c *waveChannel) reset() {
	waveRAM := c.waveRAM
	lengthLoad, length, lenEnabled := c.lengthLoad, c.length, c.lenEnabled
	*c = waveChannel{}
	c.waveRAM = waveRAM
	c.lengthLoad, c.length, c.lenEnabled = lengthLoad, length, lenEnabled
}

func (c *waveChannel) step() {
	c.freqTimer--
	if c.freqTimer <= 0 {
		c.freqTimer = (2048 - int(c.frequency)) * 2
		c.position = (c.position + 1) & 31
	}
}

func (c *waveChannel) lengthStep() {
	if c.lengthEnabled() && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
}

// lengthEnabled mirrors NR34 bit 6, tracked inline via writeControl.
func (c *waveChannel) lengthEnabled() bool { return c.lenEnabled }

func (c *waveChannel) amplitude() uint8 {
	if !c.enabled || !c.dacEnabled || c.volumeShift == 4 {
		return 0
	}
	sampleByte := c.waveRAM[c.position/2]
	var nibble uint8
	if c.position%2 == 0 {
		nibble = sampleByte >> 4
	} else {
		nibble = sampleByte & 0x0F
	}
	return nibble >> c.volumeShift
}

func (c *waveChannel) readNR30() uint8 {
	b := uint8(0)
	if c.dacEnabled {
		b |= types.Bit7
	}
	return b | 0x7F
}

func (c *waveChannel) writeNR30(v uint8) {
	c.dacEnabled = v&types.Bit7 != 0
	if !c.dacEnabled {
		c.enabled = false
	}
}

func (c *waveChannel) writeNR31(v uint8) {
	c.lengthLoad = uint16(v)
	c.length = 0x100 - uint(c.lengthLoad)
}

func (c *waveChannel) readNR32() uint8 {
	return c.volumeCode<<5 | 0x9F
}

func (c *waveChannel) writeNR32(v uint8) {
	c.volumeCode = (v >> 5) & 0x3
	switch c.volumeCode {
	case 0b00:
		c.volumeShift = 4 // mute
	case 0b01:
		c.volumeShift = 0 // 100%
	case 0b10:
		c.volumeShift = 1 // 50%
	case 0b11:
		c.volumeShift = 2 // 25%
	}
}

func (c *waveChannel) writeFreqLow(v uint8) {
	c.frequency = c.frequency&0x700 | uint16(v)
}

func (c *waveChannel) readControl() uint8 {
	b := uint8(0)
	if c.lenEnabled {
		b |= types.Bit6
	}
	return b | 0xBF
}

func (c *waveChannel) writeControl(v uint8, firstHalf bool) {
	c.frequency = c.frequency&0x00FF | uint16(v&0x7)<<8
	newLengthEnabled := v&types.Bit6 != 0
	if firstHalf && !c.lenEnabled && newLengthEnabled && c.length > 0 {
		c.length--
		if c.length == 0 {
			c.enabled = false
		}
	}
	c.lenEnabled = newLengthEnabled

	if v&types.Bit7 != 0 {
		c.enabled = c.dacEnabled
		if c.length == 0 {
			c.length = 0x100
			if c.lenEnabled && firstHalf {
				c.length--
			}
		}
		c.position = 0
		c.freqTimer = (2048-int(c.frequency))*2 + 6
	}
}

func (c *waveChannel) readWaveRAM(address uint16) uint8 {
	if c.enabled {
		return c.waveRAM[c.position/2]
	}
	return c.waveRAM[address-types.WaveRAMStart]
}

func (c *waveChannel) writeWaveRAM(address uint16, value uint8) {
	if c.enabled {
		c.waveRAM[c.position/2] = value
		return
	}
	c.waveRAM[address-types.WaveRAMStart] = value
}
