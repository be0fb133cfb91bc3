// Package serial implements the SB/SC stub registers. No link cable
// partner ever exists, so a write to SC never produces a transfer or a
// Serial interrupt; the byte written to SB is simply retained, and each SC
// write with the start bit set appends it to an in-memory buffer so test
// harnesses can read back whatever a ROM "prints" through the serial port,
// the way Blargg's test suite does.
package serial

// ringSize is the mirror buffer's initial capacity; Blargg-style ROMs print
// at most a few hundred bytes of pass/fail text. The buffer grows past it
// rather than wrapping.
const ringSize = 4096

// Controller owns SB and SC. It never raises the Serial interrupt: the
// hardware line exists only for completeness, per the stub-register contract.
type Controller struct {
	sb uint8
	sc uint8

	mirror []byte
}

// NewController returns a controller with SB clear and SC holding only its
// unused bits (0x7E).
func NewController() *Controller {
	return &Controller{
		sc:     0x7E,
		mirror: make([]byte, 0, ringSize),
	}
}

// Tick is a no-op: the stub never completes a transfer, so there is no
// per-cycle state to advance. It exists only so Controller satisfies the
// types.Peripheral interface, as the APU does.
func (c *Controller) Tick(tCycles uint8) {}

// ReadSB returns the last byte written to SB.
func (c *Controller) ReadSB() uint8 { return c.sb }

// WriteSB latches a byte for a future (never-occurring) transfer.
func (c *Controller) WriteSB(v uint8) { c.sb = v }

// ReadSC returns SC with the unused bits read as 1.
func (c *Controller) ReadSC() uint8 { return c.sc | 0x7E }

// WriteSC writes SC's transfer-start/clock-select bits. A transfer never
// completes, so the start bit is accepted but no interrupt ever follows;
// the currently-latched SB byte is mirrored for test harnesses to observe.
func (c *Controller) WriteSC(v uint8) {
	c.sc = v
	if v&0x80 != 0 {
		c.mirror = append(c.mirror, c.sb)
	}
}

// Mirror returns every byte ever written to SB while SC's start bit was
// set, in write order. Used by test harnesses to read a ROM's serial
// "console" output (e.g. Blargg's "Passed"/"Failed" banners).
func (c *Controller) Mirror() []byte {
	out := make([]byte, len(c.mirror))
	copy(out, c.mirror)
	return out
}
