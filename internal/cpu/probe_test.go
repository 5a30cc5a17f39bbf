package cpu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fs.FS
		want    bool
		wantErr bool
	}{
		{"token present", fstest.MapFS{"cpuinfo": {Data: []byte(cpuinfoMSA)}}, true, false},
		{"token absent", fstest.MapFS{"cpuinfo": {Data: []byte(cpuinfoPlain)}}, false, false},
		{"token in last line without newline", fstest.MapFS{"cpuinfo": {Data: []byte("a\nb msa")}}, true, false},
		{"empty", fstest.MapFS{"cpuinfo": {Data: nil}}, false, false},
		{"missing", fstest.MapFS{}, false, true},
		{"overlong line", fstest.MapFS{"cpuinfo": {Data: []byte(strings.Repeat("x", maxLineBytes+1) + " msa\n")}}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Prober{FS: tc.fsys, Path: "cpuinfo", Token: "msa"}
			got, err := p.Probe()
			if got != tc.want {
				t.Errorf("Probe = %v, want %v", got, tc.want)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestProbeMissingFileWrapsNotExist(t *testing.T) {
	_, err := Prober{FS: fstest.MapFS{}, Path: "cpuinfo", Token: "msa"}.Probe()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestProbeWithoutFS(t *testing.T) {
	_, err := Prober{Path: "cpuinfo", Token: "msa"}.Probe()
	if !errors.Is(err, ErrNoDescriptor) {
		t.Fatalf("err = %v, want ErrNoDescriptor", err)
	}
}

func TestNewProberReadsOSPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo")
	if err := os.WriteFile(path, []byte(cpuinfoMSA), 0o600); err != nil {
		t.Fatal(err)
	}

	ok, err := NewProber(path, "msa").Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if !ok {
		t.Fatal("Probe = false, want true")
	}
}
