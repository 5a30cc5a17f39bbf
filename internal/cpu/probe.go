package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultCPUInfoPath is the Linux processor descriptor.
	DefaultCPUInfoPath = "/proc/cpuinfo"

	// maxLineBytes bounds a single descriptor line. Longer lines fail the
	// probe.
	maxLineBytes = 1 << 20
)

// ErrNoDescriptor is returned by Prober.Probe when the prober has no file
// system to read from.
var ErrNoDescriptor = errors.New("cpu: no processor descriptor configured")

// Prober scans a text processor descriptor for a feature token. Any line
// containing Token as a substring counts as a match, the same loose test the
// kernel's "ASEs implemented" line needs.
type Prober struct {
	FS    fs.FS
	Path  string // slash-separated, relative to FS
	Token string
}

// NewProber returns a prober that reads the file at the OS path path.
func NewProber(path, token string) Prober {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return Prober{FS: os.DirFS(dir), Path: file, Token: token}
}

// DefaultProber scans /proc/cpuinfo for "msa".
func DefaultProber() Prober {
	return NewProber(DefaultCPUInfoPath, "msa")
}

// Probe reports whether any line of the descriptor contains Token. A
// missing file, a read error or an overlong line returns false with the
// error.
func (p Prober) Probe() (bool, error) {
	if p.FS == nil {
		return false, ErrNoDescriptor
	}

	f, err := p.FS.Open(p.Path)
	if err != nil {
		return false, fmt.Errorf("cpu: open descriptor: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		if strings.Contains(sc.Text(), p.Token) {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("cpu: scan descriptor: %w", err)
	}
	return false, nil
}
