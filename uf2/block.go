package uf2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidBlock is wrapped by every decoding error.
var ErrInvalidBlock = errors.New("invalid UF2 block")

// Block is one decoded UF2 block without its magic words.
type Block struct {
	// Flags holds the block flags (FlagFamilyIDPresent for blocks written here)
	Flags uint32

	// TargetAddr is the flash address of the payload
	TargetAddr uint32

	// PayloadSize is the declared number of payload bytes in Data
	PayloadSize uint32

	// BlockNo is the sequence number of the block, starting at 0
	BlockNo uint32

	// NumBlocks is the total number of blocks in the file
	NumBlocks uint32

	// FamilyID is the target family
	FamilyID Family

	// Data holds the payload followed by zero padding
	Data [DataFieldSize]byte
}

// wireBlock is the on-disk layout of a block.
type wireBlock struct {
	Magic0 uint32
	Magic1 uint32
	Block
	MagicEnd uint32
}

// MarshalBinary encodes the block into its 512-byte form.
func (b *Block) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, BlockSize))
	w := wireBlock{Magic0: Magic0, Magic1: Magic1, Block: *b, MagicEnd: MagicEnd}
	if err := binary.Write(buf, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a 512-byte block and checks its magic words.
func (b *Block) UnmarshalBinary(data []byte) error {
	if len(data) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, expected %d", ErrInvalidBlock, len(data), BlockSize)
	}

	var w wireBlock
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}

	if w.Magic0 != Magic0 || w.Magic1 != Magic1 || w.MagicEnd != MagicEnd {
		return fmt.Errorf("%w: bad magic 0x%08X/0x%08X/0x%08X", ErrInvalidBlock, w.Magic0, w.Magic1, w.MagicEnd)
	}
	if w.PayloadSize > DataFieldSize {
		return fmt.Errorf("%w: payload size %d exceeds data field", ErrInvalidBlock, w.PayloadSize)
	}

	*b = w.Block
	return nil
}

// NumBlocks returns the number of blocks needed for n payload bytes.
func NumBlocks(n int) int {
	return (n + PayloadSize - 1) / PayloadSize
}

// Encode splits payload into 256-byte chunks and returns the concatenated
// blocks, the first one targeting base. The final chunk may be short; its
// block still declares 256 bytes and carries zero padding.
func Encode(payload []byte, base uint32, family Family) []byte {
	total := NumBlocks(len(payload))
	out := bytes.NewBuffer(make([]byte, 0, total*BlockSize))

	for seq := 0; seq < total; seq++ {
		start := seq * PayloadSize
		end := min(start+PayloadSize, len(payload))

		b := Block{
			Flags:       FlagFamilyIDPresent,
			TargetAddr:  base + uint32(start),
			PayloadSize: PayloadSize,
			BlockNo:     uint32(seq),
			NumBlocks:   uint32(total),
			FamilyID:    family,
		}
		copy(b.Data[:], payload[start:end])

		// Writes to a bytes.Buffer cannot fail.
		_ = binary.Write(out, binary.LittleEndian, &wireBlock{
			Magic0:   Magic0,
			Magic1:   Magic1,
			Block:    b,
			MagicEnd: MagicEnd,
		})
	}

	return out.Bytes()
}

// Decode splits data into blocks and validates each of them.
func Decode(data []byte) ([]Block, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: file size %d is not a multiple of %d", ErrInvalidBlock, len(data), BlockSize)
	}

	blocks := make([]Block, len(data)/BlockSize)
	for i := range blocks {
		if err := blocks[i].UnmarshalBinary(data[i*BlockSize : (i+1)*BlockSize]); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return blocks, nil
}

// Payload rebuilds the contiguous address space described by blocks. Blocks
// are ordered by BlockNo; each must follow the previous one directly. It
// returns the base address and the payload, including the padding of the
// final block.
func Payload(blocks []Block) (uint32, []byte, error) {
	if len(blocks) == 0 {
		return 0, nil, nil
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BlockNo < sorted[j].BlockNo })

	base := sorted[0].TargetAddr
	out := make([]byte, 0, len(sorted)*PayloadSize)
	for i, b := range sorted {
		if b.BlockNo != uint32(i) || b.NumBlocks != uint32(len(sorted)) {
			return 0, nil, fmt.Errorf("%w: block %d of %d, expected %d of %d",
				ErrInvalidBlock, b.BlockNo, b.NumBlocks, i, len(sorted))
		}

		want := base + uint32(i)*PayloadSize
		if b.TargetAddr != want {
			return 0, nil, fmt.Errorf("%w: block %d targets 0x%08X, expected 0x%08X",
				ErrInvalidBlock, i, b.TargetAddr, want)
		}

		out = append(out, b.Data[:b.PayloadSize]...)
	}
	return base, out, nil
}
