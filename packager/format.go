package packager

import (
	"path/filepath"
	"strings"

	"github.com/moffa90/go-iplpack/uf2"
)

// Format is one of the five container formats: GCB, VGC, UF2, QBSX or IMG.
// The set is closed; each variant carries only the inputs it needs.
type Format interface {
	// Name returns the short format name ("gcb", "vgc", ...)
	Name() string

	// Extension returns the output file extension including the dot
	Extension() string

	build(p *Packager, src *Source) (*Result, error)
}

// GCB is a Qoob Pro BIOS: a patched copy of the IPL ROM's boot-stage-1
// followed by the image, scrambled and padded to whole flash pages.
type GCB struct {
	// ROM is the console IPL ROM dump
	ROM []byte
}

// VGC is a ViperGC BIOS.
type VGC struct{}

// UF2 is a PicoBoot flash image.
type UF2 struct {
	// Family is the UF2 family ID written into every block
	Family uf2.Family
}

// QBSX is a Qoob SX BIOS built from the raw input file.
type QBSX struct{}

// IMG is an unscrambled IPL image with a CRC-32.
type IMG struct{}

func (GCB) Name() string  { return "gcb" }
func (VGC) Name() string  { return "vgc" }
func (UF2) Name() string  { return "uf2" }
func (QBSX) Name() string { return "qbsx" }
func (IMG) Name() string  { return "img" }

func (GCB) Extension() string  { return ".gcb" }
func (VGC) Extension() string  { return ".vgc" }
func (UF2) Extension() string  { return ".uf2" }
func (QBSX) Extension() string { return ".qbsx" }
func (IMG) Extension() string  { return ".img" }

// FormatFor selects the format for an output path by its extension.
// rom is only used by GCB and family only by UF2; either may be empty.
//
// Example:
//
//	f, err := packager.FormatFor("gekkoboot.uf2", nil, uf2.FamilyRP2040)
func FormatFor(path string, rom []byte, family uf2.Family) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gcb":
		return GCB{ROM: rom}, nil
	case ".vgc":
		return VGC{}, nil
	case ".uf2":
		return UF2{Family: family}, nil
	case ".qbsx":
		return QBSX{}, nil
	case ".img":
		return IMG{}, nil
	default:
		return nil, &UnknownFormatError{Kind: "output", Extension: ext}
	}
}
