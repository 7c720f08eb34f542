// Package uf2 encodes payloads as UF2 blocks for USB mass-storage flashing.
//
// # Block Format
//
// Every block is exactly 512 bytes, little-endian:
//
//	[Magic0(4)][Magic1(4)][Flags(4)][TargetAddr(4)][PayloadSize(4)]
//	[BlockNo(4)][NumBlocks(4)][FamilyID(4)][Data(476)][MagicEnd(4)]
//
// Where:
//   - Magic0 = 0x0A324655 ("UF2\n"), Magic1 = 0x9E5D5157, MagicEnd = 0x0AB16F30
//   - Flags has FlagFamilyIDPresent set
//   - PayloadSize is always 256; the rest of Data is zero
//   - BlockNo counts from 0, NumBlocks is the same in every block
//
// Blocks are written in ascending BlockNo order and TargetAddr grows by 256
// per block, so a consumer can replay them to rebuild the address space.
//
// # Usage
//
//	family, err := uf2.ParseFamily("rp2040")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := uf2.Encode(payload, 0x10080000, family)
//
// Decode and Payload reverse the process.
package uf2
