package packager

import "github.com/moffa90/go-iplpack/scramble"

// build scrambles the raw input file; SX BIOS images are never flattened.
func (f QBSX) build(p *Packager, src *Source) (*Result, error) {
	if len(src.Raw) == 0 {
		return nil, &MissingDependencyError{Format: f.Name(), Dependency: "executable"}
	}

	out := append(p.qoobHeader(1), scramble.Bytes(src.Raw, scramble.QoobSX)...)
	if len(out) > MaxQBSXSize {
		return nil, &CapacityExceededError{Format: f.Name(), Size: len(out), Max: MaxQBSXSize}
	}

	return &Result{
		Data:   out,
		Report: Report{ImageSize: len(src.Raw), Pages: 1},
	}, nil
}
