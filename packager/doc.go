// Package packager builds bootable IPL replacement images for console
// modchips and flash carts.
//
// # Overview
//
// A build takes an executable, flattens it into one memory image and wraps it
// in one of five containers:
//   - GCB  - Qoob Pro BIOS (needs the console IPL ROM)
//   - VGC  - ViperGC BIOS
//   - UF2  - PicoBoot flash image (needs a UF2 family)
//   - QBSX - Qoob SX BIOS (raw input, at most 64 KiB)
//   - IMG  - plain IPL image with CRC-32
//
// VGC, UF2 and IMG loaders jump to a fixed address, so their executables must
// have entry point 0x81300000 and load address 0x01300000.
//
// # Basic Usage
//
//	data, err := os.ReadFile("gekkoboot.dol")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, err := packager.LoadSource("gekkoboot.dol", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := packager.FormatFor("gekkoboot.vgc", nil, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := packager.New().Build(f, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Image size: %d bytes\n", res.Report.ImageSize)
//
// # Configuration Options
//
// Header strings and the UF2 base address can be changed with functional
// options:
//
//	p := packager.New(
//	    packager.WithLogger(myLogger),
//	    packager.WithBanner("(C) my loader"),
//	    packager.WithProductTag("my loader"),
//	    packager.WithDateTag("2002/05/01"),
//	)
//
// # Error Handling
//
// The packager returns typed errors carrying the offending values:
//   - *UnknownFormatError - unrecognized input or output extension
//   - *MissingDependencyError - IPL ROM, UF2 family or flattened image absent
//   - *FixedAddressError - entry/load mismatch for VGC, UF2 and IMG
//   - *CapacityExceededError - image larger than the format allows
//   - *RegisterOverflowError - page count does not fit the header byte
//
// Malformed executables fail in LoadSource with an error matching
// dol.ErrInvalidExecutable.
//
// Use errors.As to get at the details:
//
//	var fixed *packager.FixedAddressError
//	if errors.As(err, &fixed) {
//	    fmt.Printf("relink at 0x%08X\n", fixed.WantEntry)
//	}
package packager
