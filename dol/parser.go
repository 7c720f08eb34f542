package dol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Open reads and flattens the DOL file at path.
//
// Example:
//
//	img, err := dol.Open("gekkoboot.dol")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Flatten(data)
}

// ParseHeader decodes the DOL header at the start of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, invalidf("file too short: got %d bytes, header needs %d", len(data), HeaderSize)
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}

	return &h, nil
}

// Flatten parses a DOL file and lays all of its segments out in one buffer.
// The returned entry and load addresses are the raw header values.
func Flatten(data []byte) (*Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return h.Flatten(data)
}

// Segments returns the populated slots of the header in slot order.
// A slot is populated when it has a non-zero size.
func (h *Header) Segments() []Segment {
	segs := make([]Segment, 0, NumSegments)
	for i := 0; i < NumSegments; i++ {
		if h.Sizes[i] == 0 {
			continue
		}
		segs = append(segs, Segment{
			Index:   i,
			Offset:  h.Offsets[i],
			Address: h.Addresses[i],
			Size:    h.Sizes[i],
		})
	}
	return segs
}

// Bounds returns the lowest non-zero segment address and the highest segment
// end address. ok is false when no segment has a non-zero address.
func (h *Header) Bounds() (low uint32, high uint64, ok bool) {
	for i := 0; i < NumSegments; i++ {
		addr := h.Addresses[i]
		if addr != 0 && (!ok || addr < low) {
			low = addr
			ok = true
		}
		if end := uint64(addr) + uint64(h.Sizes[i]); end > high {
			high = end
		}
	}
	return low, high, ok
}

// Flatten copies the segments described by h out of data (the whole DOL file)
// into a zero-filled memory image.
func (h *Header) Flatten(data []byte) (*Image, error) {
	low, high, ok := h.Bounds()
	if !ok {
		return nil, invalidf("no segment has a load address")
	}

	span := high - uint64(low)
	if span > MaxImageSize {
		return nil, invalidf("segments span %d bytes, maximum is %d", span, MaxImageSize)
	}

	img := make([]byte, span)
	for _, seg := range h.Segments() {
		if seg.Address < low {
			return nil, invalidf("segment %d at 0x%08X lies below load address 0x%08X",
				seg.Index, seg.Address, low)
		}

		end := uint64(seg.Offset) + uint64(seg.Size)
		if end > uint64(len(data)) {
			return nil, invalidf("segment %d data 0x%X-0x%X is outside the %d byte file",
				seg.Index, seg.Offset, end, len(data))
		}

		copy(img[seg.Address-low:], data[seg.Offset:end])
	}

	return &Image{
		Entry: h.Entry,
		Load:  low,
		Data:  img,
	}, nil
}
