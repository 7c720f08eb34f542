package packager

import (
	"encoding/binary"
	"fmt"

	"github.com/moffa90/go-iplpack/scramble"
)

func (f GCB) build(p *Packager, src *Source) (*Result, error) {
	if len(f.ROM) == 0 {
		return nil, &MissingDependencyError{Format: f.Name(), Dependency: "IPL ROM"}
	}
	if len(f.ROM) < BS1End {
		return nil, &MissingDependencyError{
			Format:     f.Name(),
			Dependency: fmt.Sprintf("IPL ROM of at least %d bytes (got %d)", BS1End, len(f.ROM)),
		}
	}

	img, err := src.image(f.Name())
	if err != nil {
		return nil, err
	}

	// The ROM stores boot-stage-1 scrambled.
	bs1 := scramble.Bytes(f.ROM[BS1Start:BS1End], scramble.Standard)

	size := uint32(img.Size())
	patches := [...]struct {
		offset int
		value  uint16
	}{
		{bs1LoadHi, uint16(img.Load >> 16)},
		{bs1LoadLo, uint16(img.Load)},
		{bs1EntryHi, uint16(img.Entry >> 16)},
		{bs1EntryLo, uint16(img.Entry)},
		{bs1SizeHi, uint16(size >> 16)},
		{bs1SizeLo, uint16(size)},
	}
	for _, pt := range patches {
		binary.BigEndian.PutUint16(bs1[pt.offset:], pt.value)
	}

	pages := (QoobHeaderSize + len(bs1) + img.Size() + QoobPageSize - 1) / QoobPageSize
	if pages > MaxQoobPages {
		return nil, &RegisterOverflowError{Field: "qoob page count", Value: pages, Max: MaxQoobPages}
	}

	p.logDebug("patched boot-stage-1",
		"load", fmt.Sprintf("0x%08X", img.Load),
		"entry", fmt.Sprintf("0x%08X", img.Entry),
		"size", size,
		"pages", pages,
	)

	body := make([]byte, 0, len(bs1)+img.Size())
	body = append(body, bs1...)
	body = append(body, img.Data...)
	scramble.Apply(body, scramble.Standard)

	out := append(p.qoobHeader(pages), body...)
	out = padTo(out, pages*QoobPageSize)

	return &Result{
		Data:   out,
		Report: Report{ImageSize: img.Size(), Pages: pages},
	}, nil
}
