package packager

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/moffa90/go-iplpack/dol"
)

// Source is an input executable ready for packaging.
type Source struct {
	// Name is the input file name, used for logging and format detection
	Name string

	// Raw is the input file as read
	Raw []byte

	// Image is the flattened executable with masked addresses, or nil when
	// the input is a raw binary
	Image *dol.Image
}

// LoadSource prepares data read from name for packaging. The input kind is
// taken from the extension: .dol and .elf files are flattened, .bin files are
// kept raw (usable for QBSX only). Other files are sniffed; ELF content is
// flattened, anything else is an *UnknownFormatError.
func LoadSource(name string, data []byte) (*Source, error) {
	src := &Source{Name: name, Raw: data}

	var (
		img *dol.Image
		err error
	)

	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == ".dol":
		img, err = dol.Flatten(data)
	case ext == ".elf":
		img, err = dol.FromELF(data)
	case ext == ".bin":
		return src, nil
	case isELF(data):
		img, err = dol.FromELF(data)
	default:
		return nil, &UnknownFormatError{Kind: "input", Extension: ext}
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	src.Image = MaskImage(img)
	return src, nil
}

// isELF reports whether data is detected as any kind of ELF file.
func isELF(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("application/x-elf") {
			return true
		}
	}
	return false
}

// MaskImage returns img with its addresses reduced to the console scheme: the
// entry point in the cached mapping and the load address as a physical
// address. The image data is shared.
func MaskImage(img *dol.Image) *dol.Image {
	return &dol.Image{
		Entry: img.Entry&AddressMask | CachedBase,
		Load:  img.Load & AddressMask,
		Data:  img.Data,
	}
}

// image returns the flattened image or a *MissingDependencyError for format.
func (s *Source) image(format string) (*dol.Image, error) {
	if s.Image == nil {
		return nil, &MissingDependencyError{Format: format, Dependency: "flattened executable"}
	}
	return s.Image, nil
}
