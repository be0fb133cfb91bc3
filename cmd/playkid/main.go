// Command playkid drives the playkid core headlessly: load a ROM (optionally
// archived), run it for a fixed number of frames or until interrupted, and
// persist battery RAM on exit. There is no display or input backend here —
// per SPEC_FULL.md §1/§6 those are external collaborators outside the core's
// scope; this binary exists to exercise the core, not to be a game console.
package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/langurmonkey/playkid/internal/romload"
	"github.com/langurmonkey/playkid/internal/system"
	"github.com/langurmonkey/playkid/pkg/log"
)

func main() {
	romFlag := flag.String("rom", "", "path to the ROM file (.gb/.gbc, optionally .zip/.gz/.7z/.xz)")
	configFlag := flag.String("config", "", "path to a YAML config file (see config.go)")
	paletteFlag := flag.String("palette", "", "built-in palette: green or grey")
	skipChecksFlag := flag.Bool("skip-header-checks", false, "suppress cartridge header validation")
	framesFlag := flag.Int("frames", 0, "stop after this many frames (0 = run until interrupted)")
	saveFlag := flag.String("save", "", "path to read/write battery RAM (defaults to <rom>.sav)")
	flag.Parse()

	logger := log.New("cmd")

	cfg := config{ROM: *romFlag, Palette: *paletteFlag, SkipHeaderChecks: *skipChecksFlag, FrameLimit: *framesFlag}
	if *configFlag != "" {
		fileCfg, err := loadConfig(*configFlag)
		if err != nil {
			logger.Errorf("failed to load config %s: %v", *configFlag, err)
			os.Exit(1)
		}
		cfg = mergeConfig(fileCfg, cfg)
	}

	if cfg.ROM == "" {
		logger.Errorf("no ROM specified: pass -rom or set rom: in -config")
		os.Exit(1)
	}

	rom, err := romload.Load(cfg.ROM)
	if err != nil {
		logger.Errorf("failed to load ROM: %v", err)
		os.Exit(1)
	}

	savePath := *saveFlag
	if savePath == "" {
		savePath = strings.TrimSuffix(cfg.ROM, filepath.Ext(cfg.ROM)) + ".sav"
	}
	sram, err := os.ReadFile(savePath)
	if err != nil {
		sram = nil
	}

	opts := system.Options{SkipHeaderChecks: cfg.SkipHeaderChecks, Palette: parsePalette(cfg.Palette)}
	s, err := system.New(rom, sram, opts)
	if err != nil {
		logger.Errorf("failed to construct system: %v", err)
		os.Exit(1)
	}
	logger.Infof("loaded %s", cfg.ROM)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)

	frames := 0
	for {
		select {
		case <-interrupted:
			logger.Infof("interrupted after %d frames", frames)
			persistSRAM(s, savePath, logger)
			return
		default:
		}

		s.StepFrame()
		frames++

		if cfg.FrameLimit > 0 && frames >= cfg.FrameLimit {
			logger.Infof("reached frame limit (%d)", cfg.FrameLimit)
			persistSRAM(s, savePath, logger)
			return
		}
	}
}

func persistSRAM(s *system.System, path string, logger log.Logger) {
	sram := s.SnapshotSRAM()
	if sram == nil {
		return
	}
	if err := os.WriteFile(path, sram, 0o644); err != nil {
		logger.Errorf("failed to persist battery RAM to %s: %v", path, err)
	}
}

func mergeConfig(file, flags config) config {
	merged := file
	if flags.ROM != "" {
		merged.ROM = flags.ROM
	}
	if flags.Palette != "" {
		merged.Palette = flags.Palette
	}
	if flags.SkipHeaderChecks {
		merged.SkipHeaderChecks = true
	}
	if flags.FrameLimit != 0 {
		merged.FrameLimit = flags.FrameLimit
	}
	return merged
}

func parsePalette(name string) system.Palette {
	switch strings.ToLower(name) {
	case "grey", "gray", "greyscale", "grayscale":
		return system.Grey
	default:
		return system.GreenDMG
	}
}
