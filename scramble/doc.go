// Package scramble implements the bit-serial stream cipher the console boot
// ROM uses to obscure its first-stage loader and the IPL images it boots.
//
// # Cipher Overview
//
// Three 16-bit LFSRs (t, u, v) drive a one-bit output x. Each step:
//
//	x ^= t1 ^ v0
//	x ^= u0 | u1
//	x ^= (t0 ^ u1 ^ v0) & (t0 ^ u0)
//	if t0 == u0: v = v>>1, xor 0xB3D0 if v0 was set
//	if t0 == 0:  u = u>>1, xor 0xFB10 if u0 was set
//	             t = t>>1, xor 0xA740 if t0 was set
//	acc = acc<<1 | x
//
// Every eighth step the accumulator is XORed into the next data byte. The
// accumulator itself is never cleared, so its older bits simply shift out.
//
// The keystream does not depend on the data, which makes scrambling and
// descrambling the same operation:
//
//	scramble.Apply(bs1, scramble.Standard) // descramble
//	scramble.Apply(bs1, scramble.Standard) // scramble again
//
// # Seeds
//
// Standard is the boot ROM's reset state. QoobSX is the state the Qoob SX
// flash reaches at its BIOS offset, used so SX images can start at byte zero.
//
// # Keystream Position
//
// The keystream position is the number of bytes already processed. Stream
// implements crypto/cipher.Stream and can be advanced with Discard; ApplyAt is
// the shortcut for transforming data that begins partway into the keystream.
package scramble
