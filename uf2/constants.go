package uf2

// Block framing constants.
const (
	// Magic0 is the first block magic ("UF2\n")
	Magic0 = 0x0A324655

	// Magic1 is the second block magic
	Magic1 = 0x9E5D5157

	// MagicEnd is the trailing block magic
	MagicEnd = 0x0AB16F30

	// FlagFamilyIDPresent marks the FamilyID field as valid
	FlagFamilyIDPresent = 0x00002000

	// BlockSize is the size of one encoded block in bytes
	BlockSize = 512

	// PayloadSize is the number of payload bytes carried per block
	PayloadSize = 256

	// DataFieldSize is the size of the data field in each block
	DataFieldSize = 476
)

// Family identifies the target hardware class of a UF2 file.
type Family uint32

// Known family IDs.
const (
	// FamilyRP2040 targets the RP2040
	FamilyRP2040 Family = 0xE48BFF56

	// FamilyRP2350 targets the RP2350 in ARM secure mode
	FamilyRP2350 Family = 0xE48BFF59

	// FamilyData is the data family accepted by the RP2350 boot ROM
	FamilyData Family = 0xE48BFF58
)
