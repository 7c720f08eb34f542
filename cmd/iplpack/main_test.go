package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/moffa90/go-iplpack/dol"
	"github.com/moffa90/go-iplpack/scramble"
	"github.com/moffa90/go-iplpack/uf2"
)

func buildDOL(entry, addr uint32, data []byte) []byte {
	var h dol.Header
	h.Entry = entry
	h.Offsets[0] = dol.HeaderSize
	h.Addresses[0] = addr
	h.Sizes[0] = uint32(len(data))

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, &h)
	buf.Write(data)
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cmd := newRootCmd(log)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "gekkoboot.dol", buildDOL(0x81300000, 0x81300000, make([]byte, 1000)))
	rom := writeFile(t, dir, "ipl.bin", make([]byte, 2048))

	tests := []struct {
		name     string
		args     []string
		output   string
		wantSize int
		wantOut  []string
	}{
		{
			name:     "vgc",
			output:   "out.vgc",
			wantSize: 32 + 1000,
			wantOut:  []string{"Entry point:   0x81300000", "Load address:  0x01300000", "Image size:    1000 bytes"},
		},
		{
			name:     "uf2 family positional",
			args:     []string{"rp2040"},
			output:   "out.uf2",
			wantSize: 5 * uf2.BlockSize,
			wantOut:  []string{"UF2 blocks:    5"},
		},
		{
			name:     "uf2 family flag",
			args:     []string{"--family", "data"},
			output:   "flag.uf2",
			wantSize: 5 * uf2.BlockSize,
			wantOut:  []string{"UF2 blocks:    5"},
		},
		{
			name:     "gcb rom positional",
			args:     []string{rom},
			output:   "out.gcb",
			wantSize: 0x10000,
			wantOut:  []string{"Qoob blocks:   1"},
		},
		{
			name:     "img",
			output:   "out.img",
			wantSize: 32 + 1000,
			wantOut:  []string{"Digest:        bafkrei"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, tt.output)
			args := append([]string{output, input}, tt.args...)
			stdout, err := run(t, args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if len(data) != tt.wantSize {
				t.Errorf("output size = %d, want %d", len(data), tt.wantSize)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestPackErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "gekkoboot.dol", buildDOL(0x81300000, 0x81300000, make([]byte, 64)))
	moved := writeFile(t, dir, "moved.dol", buildDOL(0x81200000, 0x81200000, make([]byte, 64)))

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"too few args", []string{filepath.Join(dir, "x.vgc")}, "accepts between 2 and 3 arg(s)"},
		{"unknown format", []string{filepath.Join(dir, "x.zip"), input}, "unknown output format"},
		{"missing input", []string{filepath.Join(dir, "x.vgc"), filepath.Join(dir, "nope.dol")}, "could not read input"},
		{"gcb without rom", []string{filepath.Join(dir, "x.gcb"), input}, "IPL ROM"},
		{"uf2 without family", []string{filepath.Join(dir, "x.uf2"), input}, "family"},
		{"uf2 bad family", []string{filepath.Join(dir, "x.uf2"), input, "esp32"}, "unknown UF2 family"},
		{"vgc wrong address", []string{filepath.Join(dir, "x.vgc"), moved}, "0x81300000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestScrambleCommand(t *testing.T) {
	dir := t.TempDir()
	plain := []byte("gekkoboot")
	input := writeFile(t, dir, "plain.bin", plain)
	scrambled := filepath.Join(dir, "scrambled.bin")
	restored := filepath.Join(dir, "restored.bin")

	if _, err := run(t, "scramble", input, scrambled); err != nil {
		t.Fatalf("scramble: %v", err)
	}
	got, _ := os.ReadFile(scrambled)
	if want := scramble.Bytes(plain, scramble.Standard); !bytes.Equal(got, want) {
		t.Errorf("scrambled = %x, want %x", got, want)
	}

	if _, err := run(t, "scramble", scrambled, restored); err != nil {
		t.Fatalf("descramble: %v", err)
	}
	got, _ = os.ReadFile(restored)
	if !bytes.Equal(got, plain) {
		t.Errorf("restored = %q, want %q", got, plain)
	}

	sx := filepath.Join(dir, "sx.bin")
	if _, err := run(t, "scramble", "--sx", "--offset", "16", input, sx); err != nil {
		t.Fatalf("scramble --sx: %v", err)
	}
	got, _ = os.ReadFile(sx)
	want := append([]byte(nil), plain...)
	scramble.ApplyAt(want, scramble.QoobSX, 16)
	if !bytes.Equal(got, want) {
		t.Errorf("sx scrambled = %x, want %x", got, want)
	}

	if _, err := run(t, "scramble", "--offset", "-1", input, sx); err == nil {
		t.Error("expected error for negative offset")
	}
}

func TestInjectCommand(t *testing.T) {
	dir := t.TempDir()
	bios := writeFile(t, dir, "gekkoboot.gcb", bytes.Repeat([]byte{0xAB}, 0x900))
	updater := writeFile(t, dir, "updater.dol", make([]byte, 0x4000))
	output := filepath.Join(dir, "injected.dol")

	stdout, err := run(t, "inject", bios, updater, output)
	if err != nil {
		t.Fatalf("inject: %v", err)
	}
	if !strings.Contains(stdout, "Injected") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data[0x1A68:], []byte("QOOB Pro iplboot install\x00")) {
		t.Error("label not written")
	}
	if data[0x1AE0] != 0xAB || data[0x1AE0+0x8FF] != 0xAB {
		t.Error("image not written")
	}

	if _, err := run(t, "inject", filepath.Join(dir, "x.vgc"), updater, output); err == nil {
		t.Error("expected error for a format without an updater")
	}
}

func TestFields(t *testing.T) {
	f := fields([]interface{}{"format", "vgc", "size", 42, "dangling"})
	if f["format"] != "vgc" || f["size"] != 42 || f["extra"] != "dangling" {
		t.Errorf("fields = %v", f)
	}
}
