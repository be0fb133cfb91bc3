package types

// Peripheral is a component ticked by the system clock in lockstep with
// CPU-retired t-cycles. The APU and the serial controller satisfy it; the
// timer, PPU and OAM DMA controllers take an int t-cycle count and do not.
type Peripheral interface {
	// Tick advances the peripheral by the given number of t-cycles.
	Tick(tCycles uint8)
}
