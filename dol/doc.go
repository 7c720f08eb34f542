// Package dol flattens console executables into a single memory image.
//
// # DOL File Format
//
// A DOL file starts with a fixed 256-byte header of big-endian 32-bit words,
// followed by the raw contents of up to 18 segments (7 text, 11 data):
//
//	0x00  Offsets[18]    file offset of each segment
//	0x48  Addresses[18]  load address of each segment
//	0x90  Sizes[18]      size of each segment in bytes
//	0xD8  BSSAddress     start of the zero-initialised area
//	0xDC  BSSSize        size of the zero-initialised area
//	0xE0  Entry          entry point address
//	0xE4  Reserved[7]
//
// Text and data segments are treated the same way when flattening.
//
// # Flattening
//
// Flatten copies every populated segment into one zero-filled buffer that
// starts at the lowest non-zero segment address:
//
//	img, err := dol.Flatten(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Entry: 0x%08X Load: 0x%08X Size: %d\n", img.Entry, img.Load, len(img.Data))
//
// Gaps between segments stay zero. The BSS area is not part of the image.
//
// FromELF does the same for the PT_LOAD segments of a 32-bit ELF file, which
// is what doltool-style converters produce a DOL from.
//
// # Error Handling
//
// Malformed inputs return *InvalidExecutableError, which matches
// ErrInvalidExecutable with errors.Is.
package dol
