package packager

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bodgit/plumbing"

	"github.com/moffa90/go-iplpack/dol"
	"github.com/moffa90/go-iplpack/scramble"
)

// Packager builds bootable container images from executables.
//
// Packager holds only configuration and is safe for concurrent use. Every
// Build runs its own cipher streams.
type Packager struct {
	config Config
}

// Result is a packaged image with a summary of what went into it.
type Result struct {
	// Data is the complete output file
	Data []byte

	// Report summarises the build
	Report Report
}

// Report contains human-readable summary values of a build.
type Report struct {
	// Format is the short format name
	Format string

	// Entry and Load are the masked executable addresses (zero for raw input)
	Entry uint32
	Load  uint32

	// ImageSize is the size of the flattened (or raw) image in bytes
	ImageSize int

	// Pages is the number of Qoob flash pages (GCB and QBSX only)
	Pages int

	// Blocks is the number of UF2 blocks (UF2 only)
	Blocks int

	// Size is the size of the output in bytes
	Size int

	// Digest is the CIDv1 of the output
	Digest string
}

// New creates a new Packager with the given options.
//
// Example:
//
//	p := packager.New(
//	    packager.WithLogger(myLogger),
//	    packager.WithDateTag("2002/01/01"),
//	)
func New(opts ...Option) *Packager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Packager{
		config: cfg,
	}
}

// Build packages src into format f. All errors are terminal; no partial
// output is returned.
//
// Example:
//
//	src, _ := packager.LoadSource("gekkoboot.dol", data)
//	res, err := p.Build(packager.VGC{}, src)
func (p *Packager) Build(f Format, src *Source) (*Result, error) {
	if f == nil {
		return nil, &UnknownFormatError{Kind: "output"}
	}
	if src == nil {
		return nil, &MissingDependencyError{Format: f.Name(), Dependency: "executable"}
	}

	p.logDebug("building image",
		"format", f.Name(),
		"input", src.Name,
		"input_size", len(src.Raw),
	)

	res, err := f.build(p, src)
	if err != nil {
		p.logError("build failed", "format", f.Name(), "error", err)
		return nil, err
	}

	res.Report.Format = f.Name()
	res.Report.Size = len(res.Data)
	if src.Image != nil {
		res.Report.Entry = src.Image.Entry
		res.Report.Load = src.Image.Load
	}

	res.Report.Digest, err = digest(res.Data)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	p.logInfo("built image",
		"format", res.Report.Format,
		"entry", fmt.Sprintf("0x%08X", res.Report.Entry),
		"load", fmt.Sprintf("0x%08X", res.Report.Load),
		"image_size", res.Report.ImageSize,
		"size", res.Report.Size,
	)

	return res, nil
}

// qoobHeader returns the 256-byte Qoob BIOS header for the given page count.
func (p *Packager) qoobHeader(pages int) []byte {
	header := make([]byte, QoobHeaderSize)
	copy(header[:QoobPagesOffset], p.config.Banner)
	header[QoobPagesOffset] = byte(pages)
	return header
}

// checkFixedAddress verifies that img was built for the fixed loader address.
func checkFixedAddress(format string, img *dol.Image) error {
	if img.Entry != FixedEntry || img.Load != FixedLoad {
		return &FixedAddressError{
			Format:    format,
			Entry:     img.Entry,
			Load:      img.Load,
			WantEntry: FixedEntry,
			WantLoad:  FixedLoad,
		}
	}
	return nil
}

// padTo extends b with zero bytes up to n bytes. Longer inputs are returned
// unchanged.
func padTo(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}

	out, err := io.ReadAll(plumbing.PaddedReader(bytes.NewReader(b), int64(n), 0))
	if err != nil {
		// Reading from memory cannot fail.
		panic(err)
	}
	return out
}

// alignUp rounds n up to a multiple of align.
func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// bootScramble returns a copy of data scrambled from the keystream position
// the boot ROM has reached when it starts on the payload.
func bootScramble(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	scramble.ApplyAt(out, scramble.Standard, BootEntryOffset)
	return out
}
