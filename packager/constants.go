package packager

// Address scheme of the console.
const (
	// AddressMask keeps the physical part of an address
	AddressMask = 0x017FFFFF

	// CachedBase is the cached virtual mapping of main memory
	CachedBase = 0x80000000

	// FixedEntry is the entry point required by VGC, UF2 and IMG loaders
	FixedEntry = 0x81300000

	// FixedLoad is the load address required by VGC, UF2 and IMG loaders
	FixedLoad = 0x01300000

	// BootEntryOffset is the keystream position at which the boot ROM starts
	// descrambling the payload of fixed-address formats
	BootEntryOffset = 0x720
)

// Qoob header and flash layout.
const (
	// QoobHeaderSize is the size of the Qoob BIOS header
	QoobHeaderSize = 256

	// QoobPagesOffset is the header byte holding the page count
	QoobPagesOffset = 0xFD

	// QoobPageSize is the size of one Qoob flash page
	QoobPageSize = 0x10000

	// MaxQoobPages is the largest page count the header byte can hold
	MaxQoobPages = 0xFF

	// MaxQBSXSize is the size of a Qoob SX BIOS (always one page)
	MaxQBSXSize = QoobPageSize
)

// Boot-stage-1 location in the IPL ROM and its patch points. Each patch is
// the low halfword of a 4-byte instruction slot starting two bytes earlier.
const (
	// BS1Start is the ROM offset of boot-stage-1
	BS1Start = 0x100

	// BS1End is the ROM offset just past boot-stage-1
	BS1End = 0x800

	bs1LoadHi  = 0x51C + 2
	bs1LoadLo  = 0x520 + 2
	bs1EntryHi = 0x5D4 + 2
	bs1EntryLo = 0x5D8 + 2
	bs1SizeHi  = 0x524 + 2
	bs1SizeLo  = 0x528 + 2
)

// Header fields of the fixed-address formats.
const (
	vgcFieldSize = 16
	vgcMagic     = "VIPR\x00\x02"

	uf2HeaderSize = 32
	uf2Magic      = "IPLBOOT "
	uf2Trailer    = "PICO"
	uf2Align      = 4

	imgHeaderSize = 32
	imgDateSize   = 16
)

// Defaults for the configurable header strings.
const (
	// DefaultBanner is the Qoob header text
	DefaultBanner = "(C) gekkoboot"

	// DefaultProductTag is the VGC product name
	DefaultProductTag = "gekkoboot"

	// DefaultDateTag is the IMG date field
	DefaultDateTag = "*gekkoboot"

	// DateRollover is the first date the boot ROM no longer accepts in IMG headers
	DateRollover = "2004/02/01"

	// DefaultUF2Base is the flash address PicoBoot loads the image from
	DefaultUF2Base = 0x10080000
)
