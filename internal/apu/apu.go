// Package apu implements the 4-channel audio processing unit: two pulse
// channels (one with a frequency sweep), a wave channel backed by 16 bytes
// of sample RAM, a noise channel driven by a 15-bit LFSR, the shared
// 512Hz frame sequencer that clocks their length/envelope/sweep units, and
// the stereo mixer that accumulates samples into a ring the caller drains
// once per frame.
package apu

import "github.com/langurmonkey/playkid/internal/types"

const (
	sampleRate           = 44100
	cpuFrequency         = 4194304
	samplePeriod         = cpuFrequency / sampleRate
	frameSequencerPeriod = cpuFrequency / 512
	ringCapacity         = sampleRate // 1 second of headroom; drained every frame
)

// Sample is one stereo output pair.
type Sample struct {
	Left, Right int16
}

// APU owns all four channels and the shared mixer/frame-sequencer state.
type APU struct {
	enabled bool

	ch1 *pulseChannel
	ch2 *pulseChannel
	ch3 *waveChannel
	ch4 *noiseChannel

	frameSeqCounter int
	frameSeqStep    uint8
	sampleCounter   int

	vinLeft, vinRight       bool
	volumeLeft, volumeRight uint8
	leftEnable, rightEnable [4]bool

	ring []Sample
}

// New returns a powered-off APU with all four channels silent.
func New() *APU {
	a := &APU{
		ch1:  newPulseChannel(true),
		ch2:  newPulseChannel(false),
		ch3:  newWaveChannel(),
		ch4:  newNoiseChannel(),
		ring: make([]Sample, 0, ringCapacity),
	}
	return a
}

// Tick advances the APU by tCycles t-cycles, stepping the frame sequencer
// and each channel's frequency timer, and accumulating stereo samples at
// the output sample rate.
func (a *APU) Tick(tCycles uint8) {
	for i := uint8(0); i < tCycles; i++ {
		a.tickOne()
	}
}

func (a *APU) tickOne() {
	if !a.enabled {
		return
	}

	a.ch1.step()
	a.ch2.step()
	a.ch3.step()
	a.ch4.step()

	a.frameSeqCounter++
	if a.frameSeqCounter >= frameSequencerPeriod {
		a.frameSeqCounter = 0
		a.stepFrameSequencer()
	}

	a.sampleCounter++
	if a.sampleCounter >= samplePeriod {
		a.sampleCounter = 0
		a.mixSample()
	}
}

func (a *APU) stepFrameSequencer() {
	switch a.frameSeqStep {
	case 0, 2, 4, 6:
		a.ch1.lengthStep()
		a.ch2.lengthStep()
		a.ch3.lengthStep()
		a.ch4.lengthStep()
		if a.frameSeqStep == 2 || a.frameSeqStep == 6 {
			a.ch1.sweepStep()
		}
	case 7:
		a.ch1.envelope.step()
		a.ch2.envelope.step()
		a.ch4.envelope.step()
	}
	a.frameSeqStep = (a.frameSeqStep + 1) & 7
}

func (a *APU) mixSample() {
	outputs := [4]uint8{a.ch1.amplitude(), a.ch2.amplitude(), a.ch3.amplitude(), a.ch4.amplitude()}

	var left, right int32
	for i, out := range outputs {
		if a.leftEnable[i] {
			left += int32(out)
		}
		if a.rightEnable[i] {
			right += int32(out)
		}
	}

	// Scale each channel's 0-15 DAC output by the master volume (0-7) and
	// center around zero so silence is mid-scale, not rail-low.
	left = (left - 4*15) * int32(a.volumeLeft+1) * 32
	right = (right - 4*15) * int32(a.volumeRight+1) * 32

	if len(a.ring) >= ringCapacity {
		a.ring = a.ring[1:]
	}
	a.ring = append(a.ring, Sample{Left: int16(clamp16(left)), Right: int16(clamp16(right))})
}

func clamp16(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

// DrainSamples returns every sample accumulated since the last drain and
// empties the ring. Called by the caller once per step_frame.
func (a *APU) DrainSamples() []Sample {
	out := a.ring
	a.ring = make([]Sample, 0, ringCapacity)
	return out
}

// Read dispatches an NRxx or wave-RAM register read.
func (a *APU) Read(address uint16) uint8 {
	switch address {
	case types.NR10:
		return a.ch1.readSweep()
	case types.NR11:
		return a.ch1.readDutyLength()
	case types.NR12:
		return a.ch1.envelope.read()
	case types.NR13:
		return 0xFF
	case types.NR14:
		return a.ch1.readControl()
	case types.NR21:
		return a.ch2.readDutyLength()
	case types.NR22:
		return a.ch2.envelope.read()
	case types.NR23:
		return 0xFF
	case types.NR24:
		return a.ch2.readControl()
	case types.NR30:
		return a.ch3.readNR30()
	case types.NR31:
		return 0xFF
	case types.NR32:
		return a.ch3.readNR32()
	case types.NR33:
		return 0xFF
	case types.NR34:
		return a.ch3.readControl()
	case types.NR41:
		return 0xFF
	case types.NR42:
		return a.ch4.envelope.read()
	case types.NR43:
		return a.ch4.readNR43()
	case types.NR44:
		return a.ch4.readControl()
	case types.NR50:
		return a.readNR50()
	case types.NR51:
		return a.readNR51()
	case types.NR52:
		return a.readNR52()
	default:
		if address >= types.WaveRAMStart && address <= types.WaveRAMEnd {
			return a.ch3.readWaveRAM(address)
		}
		return 0xFF
	}
}

// Write dispatches an NRxx or wave-RAM register write.
func (a *APU) Write(address uint16, value uint8) {
	if !a.enabled && address != types.NR52 && !(address >= types.WaveRAMStart && address <= types.WaveRAMEnd) &&
		address != types.NR11 && address != types.NR21 && address != types.NR31 && address != types.NR41 {
		return
	}

	switch address {
	case types.NR10:
		a.ch1.writeSweep(value)
	case types.NR11:
		a.ch1.writeDutyLength(value)
	case types.NR12:
		a.ch1.envelope.write(value)
		if !a.ch1.envelope.dacEnabled() {
			a.ch1.enabled = false
		}
	case types.NR13:
		a.ch1.writeFreqLow(value)
	case types.NR14:
		a.ch1.writeControl(value, a.firstHalfOfLengthPeriod())
	case types.NR21:
		a.ch2.writeDutyLength(value)
	case types.NR22:
		a.ch2.envelope.write(value)
		if !a.ch2.envelope.dacEnabled() {
			a.ch2.enabled = false
		}
	case types.NR23:
		a.ch2.writeFreqLow(value)
	case types.NR24:
		a.ch2.writeControl(value, a.firstHalfOfLengthPeriod())
	case types.NR30:
		a.ch3.writeNR30(value)
	case types.NR31:
		a.ch3.writeNR31(value)
	case types.NR32:
		a.ch3.writeNR32(value)
	case types.NR33:
		a.ch3.writeFreqLow(value)
	case types.NR34:
		a.ch3.writeControl(value, a.firstHalfOfLengthPeriod())
	case types.NR41:
		a.ch4.writeNR41(value)
	case types.NR42:
		a.ch4.envelope.write(value)
		if !a.ch4.envelope.dacEnabled() {
			a.ch4.enabled = false
		}
	case types.NR43:
		a.ch4.writeNR43(value)
	case types.NR44:
		a.ch4.writeControl(value, a.firstHalfOfLengthPeriod())
	case types.NR50:
		a.writeNR50(value)
	case types.NR51:
		a.writeNR51(value)
	case types.NR52:
		a.writeNR52(value)
	default:
		if address >= types.WaveRAMStart && address <= types.WaveRAMEnd {
			a.ch3.writeWaveRAM(address, value)
		}
	}
}

// firstHalfOfLengthPeriod is a stand-in for the frame sequencer's
// half-period parity used by the extra-clock length quirk; derived from
// the current step rather than tracked separately.
func (a *APU) firstHalfOfLengthPeriod() bool {
	return a.frameSeqStep&1 == 0
}

func (a *APU) readNR50() uint8 {
	b := a.volumeRight | a.volumeLeft<<4
	if a.vinRight {
		b |= types.Bit3
	}
	if a.vinLeft {
		b |= types.Bit7
	}
	return b
}

func (a *APU) writeNR50(v uint8) {
	a.volumeRight = v & 0x7
	a.volumeLeft = (v >> 4) & 0x7
	a.vinRight = v&types.Bit3 != 0
	a.vinLeft = v&types.Bit7 != 0
}

func (a *APU) readNR51() uint8 {
	b := uint8(0)
	for i := 0; i < 4; i++ {
		if a.rightEnable[i] {
			b |= 1 << i
		}
		if a.leftEnable[i] {
			b |= 1 << (i + 4)
		}
	}
	return b
}

func (a *APU) writeNR51(v uint8) {
	for i := 0; i < 4; i++ {
		a.rightEnable[i] = v&(1<<i) != 0
		a.leftEnable[i] = v&(1<<(i+4)) != 0
	}
}

func (a *APU) readNR52() uint8 {
	b := uint8(0x70)
	if a.enabled {
		b |= types.Bit7
	}
	if a.ch1.enabled {
		b |= types.Bit0
	}
	if a.ch2.enabled {
		b |= types.Bit1
	}
	if a.ch3.enabled {
		b |= types.Bit2
	}
	if a.ch4.enabled {
		b |= types.Bit3
	}
	return b
}

func (a *APU) writeNR52(v uint8) {
	wasEnabled := a.enabled
	a.enabled = v&types.Bit7 != 0
	if wasEnabled && !a.enabled {
		// Length counters and wave RAM survive a power cycle; each
		// channel's reset() preserves them itself.
		a.ch1.reset()
		a.ch2.reset()
		a.ch3.reset()
		a.ch4.reset()
		a.volumeLeft, a.volumeRight = 0, 0
		a.vinLeft, a.vinRight = false, false
		a.leftEnable = [4]bool{}
		a.rightEnable = [4]bool{}
	} else if !wasEnabled && a.enabled {
		a.frameSeqStep = 0
	}
}
