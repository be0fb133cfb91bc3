// Package dma implements OAM DMA: writing DMA (0xFF46) copies 160 bytes
// from source*0x100 into OAM over 160 m-cycles (640 t-cycles), 4 t-cycles
// per byte, matching the real transfer's timing rather than an instant copy.
package dma

// Controller drives an OAM DMA transfer. The CPU ticks it every t-cycle
// alongside the rest of the system; while active it does not otherwise
// restrict CPU bus access (the stricter "CPU can only touch HRAM during
// DMA" behavior is not modeled).
type Controller struct {
	active bool
	source uint16 // high byte of the source address, i.e. DMA register value
	offset uint16 // next byte index to copy, 0-159
	ticks  uint8  // t-cycles accumulated toward the next byte copy

	read      func(address uint16) uint8
	writeOAM  func(offset uint16, value uint8)
}

// New returns a DMA controller that reads the full address space via read
// and writes transferred bytes into OAM via writeOAM.
func New(read func(uint16) uint8, writeOAM func(uint16, uint8)) *Controller {
	return &Controller{read: read, writeOAM: writeOAM}
}

// ReadDMA returns the last value written to the DMA register.
func (c *Controller) ReadDMA() uint8 { return uint8(c.source) }

// WriteDMA starts a new transfer from source*0x100, restarting it from byte
// 0 even if a previous transfer was still in progress.
func (c *Controller) WriteDMA(v uint8) {
	c.source = uint16(v)
	c.active = true
	c.offset = 0
	c.ticks = 0
}

// Active reports whether a transfer is in progress.
func (c *Controller) Active() bool { return c.active }

// Tick advances the transfer by the given number of t-cycles, copying one
// byte every 4 t-cycles until all 160 bytes have moved.
func (c *Controller) Tick(tCycles int) {
	if !c.active {
		return
	}
	for i := 0; i < tCycles && c.active; i++ {
		c.ticks++
		if c.ticks == 4 {
			c.ticks = 0
			b := c.read(c.source<<8 | c.offset)
			c.writeOAM(c.offset, b)
			c.offset++
			if c.offset == 0xA0 {
				c.active = false
			}
		}
	}
}
