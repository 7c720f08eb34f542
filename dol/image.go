package dol

// Segment counts in the DOL header.
const (
	// NumTextSegments is the number of text segment slots
	NumTextSegments = 7

	// NumDataSegments is the number of data segment slots
	NumDataSegments = 11

	// NumSegments is the total number of segment slots
	NumSegments = NumTextSegments + NumDataSegments

	// HeaderSize is the size of the DOL header in bytes
	HeaderSize = 256

	// MaxImageSize bounds the flattened image to the console's 24 MiB of main memory
	MaxImageSize = 24 << 20
)

// Header is the decoded 256-byte DOL header.
type Header struct {
	// Offsets holds the file offset of each segment
	Offsets [NumSegments]uint32

	// Addresses holds the load address of each segment (0 = unused slot)
	Addresses [NumSegments]uint32

	// Sizes holds the size of each segment in bytes
	Sizes [NumSegments]uint32

	// BSSAddress is the start of the zero-initialised area (not flattened)
	BSSAddress uint32

	// BSSSize is the size of the zero-initialised area (not flattened)
	BSSSize uint32

	// Entry is the entry point address as stored in the file
	Entry uint32

	// Reserved is unused padding up to 256 bytes
	Reserved [7]uint32
}

// Segment describes one populated header slot.
type Segment struct {
	// Index is the header slot (0-6 text, 7-17 data)
	Index int

	// Offset is the file offset of the segment contents
	Offset uint32

	// Address is the load address
	Address uint32

	// Size is the segment size in bytes
	Size uint32
}

// IsText reports whether the segment occupies a text slot.
func (s Segment) IsText() bool {
	return s.Index < NumTextSegments
}

// Image is a flattened executable: one contiguous memory image plus the
// addresses needed to load and start it.
type Image struct {
	// Entry is the entry point address
	Entry uint32

	// Load is the address of Data[0]
	Load uint32

	// Data is the memory image between the lowest and highest segment bounds
	Data []byte
}

// Size returns the image size in bytes.
func (img *Image) Size() int {
	return len(img.Data)
}
