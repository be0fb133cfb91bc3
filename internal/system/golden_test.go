package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdataROM loads a ROM from testdata/roms, skipping the test entirely
// if the asset isn't present. These golden tests exercise real test ROMs
// (Blargg's cpu_instrs, dmg-acid2) that aren't vendored into the repo.
func testdataROM(t *testing.T, name string) []byte {
	t.Helper()
	path := filepath.Join("testdata", "roms", name)
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skipf("skipping: %s not present", path)
	}
	require.NoError(t, err)
	return b
}

// TestBlarggCPUInstrs runs Blargg's cpu_instrs ROM, which prints "Passed"
// or "Failed" followed by details over the serial port. We accumulate
// every byte mirrored off SB and watch for the banner directly, rather
// than vendoring a reference image.
func TestBlarggCPUInstrs(t *testing.T) {
	rom := testdataROM(t, "cpu_instrs.gb")
	s, err := New(rom, nil, Options{})
	require.NoError(t, err)

	var output string
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		s.StepFrame()
		output = string(s.serial.Mirror())
		if strings.Contains(output, "Passed") || strings.Contains(output, "Failed") {
			break
		}
	}

	assert.Contains(t, output, "Passed", "cpu_instrs serial output: %q", output)
}

// TestDMGAcid2 runs dmg-acid2 to its stable frame and hashes the
// framebuffer with xxhash against a precomputed reference digest, rather
// than vendoring the full 160x144 reference image into the repository.
func TestDMGAcid2(t *testing.T) {
	const referenceHash = uint64(0) // TODO: fill in once captured from a verified-correct run

	rom := testdataROM(t, "dmg-acid2.gb")
	s, err := New(rom, nil, Options{})
	require.NoError(t, err)

	var result FrameResult
	for i := 0; i < 120; i++ {
		result = s.StepFrame()
	}

	got := hashFramebuffer(result.Framebuffer)
	if referenceHash == 0 {
		t.Skip("no reference hash captured yet for dmg-acid2's stable frame")
	}
	assert.Equal(t, referenceHash, got, "dmg-acid2 stable frame hash mismatch")
}

func hashFramebuffer(fb [144][160][3]uint8) uint64 {
	flat := make([]byte, 0, 144*160*3)
	for y := range fb {
		for x := range fb[y] {
			flat = append(flat, fb[y][x][0], fb[y][x][1], fb[y][x][2])
		}
	}
	return xxhash.Sum64(flat)
}

// TestSRAMRoundTripHash exercises the §8 snapshot round-trip property: a
// save followed by a reload reproduces byte-identical battery RAM, checked
// cheaply by hash rather than a full byte-by-byte comparison.
func TestSRAMRoundTripHash(t *testing.T) {
	s, err := New(batteryROM(), nil, Options{SkipHeaderChecks: true})
	require.NoError(t, err)

	s.mmu.Write(0x0000, 0x0A)
	for i := uint16(0); i < 0x100; i++ {
		s.mmu.Write(0xA000+i, uint8(i))
	}

	saved := s.SnapshotSRAM()
	wantHash := xxhash.Sum64(saved)

	reloaded, err := New(batteryROM(), saved, Options{SkipHeaderChecks: true})
	require.NoError(t, err)

	gotHash := xxhash.Sum64(reloaded.SnapshotSRAM())
	assert.Equal(t, wantHash, gotHash)
}
