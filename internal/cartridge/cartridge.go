// Package cartridge parses a DMG ROM header and constructs the Cartridge
// (ROM + MBC) that backs addresses 0x0000-0x7FFF and 0xA000-0xBFFF.
package cartridge

import "fmt"

// ErrorKind enumerates the fatal, load-time cartridge error categories.
type ErrorKind int

const (
	BadLogo ErrorKind = iota
	HeaderChecksumMismatch
	GlobalChecksumMismatch
	UnsupportedMBC
	TruncatedRom
)

func (k ErrorKind) String() string {
	switch k {
	case BadLogo:
		return "BadLogo"
	case HeaderChecksumMismatch:
		return "HeaderChecksumMismatch"
	case GlobalChecksumMismatch:
		return "GlobalChecksumMismatch"
	case UnsupportedMBC:
		return "UnsupportedMBC"
	case TruncatedRom:
		return "TruncatedRom"
	default:
		return "Unknown"
	}
}

// LoadError is a fatal, load-time cartridge error. No partial Cartridge is
// ever returned alongside a non-nil LoadError.
type LoadError struct {
	Kind  ErrorKind
	Value uint8 // the offending cartridge-type byte, for UnsupportedMBC
}

func (e *LoadError) Error() string {
	if e.Kind == UnsupportedMBC {
		return fmt.Sprintf("%s(0x%02X)", e.Kind, e.Value)
	}
	return e.Kind.String()
}

// Cartridge represents a basic game cartridge: ROM plus whatever banking
// and battery RAM its MBC provides.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
	Title() string

	// RAMBytes returns the cartridge's external RAM, for battery persistence.
	// Returns nil for cartridges without RAM.
	RAMBytes() []byte
	// LoadRAM restores external RAM from previously saved bytes.
	LoadRAM(data []byte)
}

type baseCartridge struct {
	rom    []byte
	header Header
}

func (c *baseCartridge) Header() Header      { return c.header }
func (c *baseCartridge) Title() string       { return c.header.Title }
func (c *baseCartridge) RAMBytes() []byte    { return nil }
func (c *baseCartridge) LoadRAM(data []byte) {}
func (c *baseCartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}
func (c *baseCartridge) Write(address uint16, value uint8) {}

// New parses rom's header and constructs the Cartridge matching its
// declared MBC type. skipHeaderChecks suppresses BadLogo/HeaderChecksumMismatch/
// GlobalChecksumMismatch (per the Options.skip_header_checks contract).
func New(rom []byte, skipHeaderChecks bool) (Cartridge, Header, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, Header{}, err
	}

	if !skipHeaderChecks {
		if !header.logoOK {
			return nil, header, &LoadError{Kind: BadLogo}
		}
		if !header.headerOK {
			return nil, header, &LoadError{Kind: HeaderChecksumMismatch}
		}
		if !header.globalOK {
			return nil, header, &LoadError{Kind: GlobalChecksumMismatch}
		}
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return &baseCartridge{rom: rom, header: header}, header, nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return &mbc1Adapter{NewMemoryBankedCartridge1(rom, &header), header}, header, nil
	case MBC2, MBC2BATT:
		return &mbc2Adapter{NewMemoryBankedCartridge2(rom, &header), header}, header, nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return &mbc3Adapter{NewMemoryBankedCartridge3(rom, &header), header}, header, nil
	default:
		return nil, header, &LoadError{Kind: UnsupportedMBC, Value: uint8(header.CartridgeType)}
	}
}

// NewEmptyCartridge returns an empty cartridge, useful as a zero value for tests.
func NewEmptyCartridge() Cartridge {
	return &baseCartridge{rom: []byte{}, header: Header{}}
}

// mbc1Adapter/mbc2Adapter/mbc3Adapter adapt each MBC's Read/Write/Save/Load
// surface to the Cartridge interface without duplicating bank logic.
type mbc1Adapter struct {
	*MemoryBankedCartridge1
	header Header
}

func (a *mbc1Adapter) Header() Header      { return a.header }
func (a *mbc1Adapter) Title() string       { return a.header.Title }
func (a *mbc1Adapter) RAMBytes() []byte    { return a.Save() }
func (a *mbc1Adapter) LoadRAM(data []byte) { a.Load(data) }

type mbc2Adapter struct {
	*MemoryBankedCartridge2
	header Header
}

func (a *mbc2Adapter) Header() Header      { return a.header }
func (a *mbc2Adapter) Title() string       { return a.header.Title }
func (a *mbc2Adapter) RAMBytes() []byte    { return a.ram }
func (a *mbc2Adapter) LoadRAM(data []byte) { copy(a.ram, data) }

type mbc3Adapter struct {
	*MemoryBankedCartridge3
	header Header
}

func (a *mbc3Adapter) Header() Header      { return a.header }
func (a *mbc3Adapter) Title() string       { return a.header.Title }
func (a *mbc3Adapter) RAMBytes() []byte    { return a.SaveRAM() }
func (a *mbc3Adapter) LoadRAM(data []byte) { a.MemoryBankedCartridge3.LoadRAM(data) }
