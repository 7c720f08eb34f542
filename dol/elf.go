package dol

import (
	"bytes"
	"debug/elf"
	"io"
)

// FromELF flattens the loadable segments of a 32-bit ELF executable the same
// way Flatten handles DOL segments. Segments without file contents (BSS) are
// left out, as they would be when converting the ELF to a DOL.
func FromELF(data []byte) (*Image, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, invalidf("not an ELF file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS32 {
		return nil, invalidf("unsupported ELF class %v", f.Class)
	}

	var (
		progs []*elf.Prog
		low   uint64
		high  uint64
		found bool
	)
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Filesz == 0 {
			continue
		}
		progs = append(progs, p)

		if p.Vaddr != 0 && (!found || p.Vaddr < low) {
			low = p.Vaddr
			found = true
		}
		if end := p.Vaddr + p.Filesz; end > high {
			high = end
		}
	}

	if !found {
		return nil, invalidf("no loadable segment has a load address")
	}
	if high-low > MaxImageSize {
		return nil, invalidf("segments span %d bytes, maximum is %d", high-low, MaxImageSize)
	}

	img := make([]byte, high-low)
	for i, p := range progs {
		if p.Vaddr < low {
			return nil, invalidf("loadable segment %d at 0x%08X lies below load address 0x%08X",
				i, p.Vaddr, low)
		}

		dst := img[p.Vaddr-low : p.Vaddr-low+p.Filesz]
		if _, err := io.ReadFull(p.Open(), dst); err != nil {
			return nil, invalidf("loadable segment %d: %v", i, err)
		}
	}

	return &Image{
		Entry: uint32(f.Entry),
		Load:  uint32(low),
		Data:  img,
	}, nil
}
