// Package romload turns a path on disk into the raw ROM bytes
// system.New expects, transparently unwrapping the archive formats DMG
// ROM images are routinely distributed in. It is an external collaborator
// to the core: one file in, one []byte out, and the core itself never
// touches the filesystem or an archive format.
package romload

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// Load reads path and, if its extension names a supported archive format
// (.zip, .gz, .7z, .xz), returns the bytes of the first regular file found
// inside it. Any other extension (.gb, .gbc, or none) is returned as-is.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("romload: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return loadFromZip(f)
	case ".gz":
		return loadFromGzip(f)
	case ".7z":
		return loadFromSevenZip(f)
	case ".xz":
		return loadFromXZ(f)
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("romload: read %s: %w", path, err)
		}
		return data, nil
	}
}

func loadFromGzip(f *os.File) ([]byte, error) {
	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("romload: gzip: %w", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("romload: gzip: %w", err)
	}
	return data, nil
}

func loadFromXZ(f *os.File) ([]byte, error) {
	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("romload: xz: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("romload: xz: %w", err)
	}
	return data, nil
}

func loadFromZip(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	entry, err := firstRegularZipFile(zr.File)
	if err != nil {
		return nil, err
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("romload: zip: %w", err)
	}
	return data, nil
}

func firstRegularZipFile(files []*zip.File) (*zip.File, error) {
	for _, zf := range files {
		if !zf.FileInfo().IsDir() {
			return zf, nil
		}
	}
	return nil, fmt.Errorf("romload: zip archive contains no regular files")
}

func loadFromSevenZip(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	var entry *sevenzip.File
	for _, sf := range r.File {
		if !sf.FileInfo().IsDir() {
			entry = sf
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("romload: 7z archive contains no regular files")
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("romload: 7z: %w", err)
	}
	return data, nil
}
