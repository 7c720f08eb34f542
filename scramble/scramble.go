package scramble

import "crypto/cipher"

// LFSR feedback taps, applied when a set bit is shifted out of a register.
const (
	// TapT is XORed into t when t0 is shifted out
	TapT = 0xA740

	// TapU is XORed into u when u0 is shifted out
	TapU = 0xFB10

	// TapV is XORed into v when v0 is shifted out
	TapV = 0xB3D0

	// BitsPerByte is the number of cipher steps per keystream byte
	BitsPerByte = 8
)

// Seed is an initial cipher state.
type Seed struct {
	T, U, V uint16
	Acc     uint8
	X       uint8
}

var (
	// Standard is the boot ROM reset state.
	Standard = Seed{T: 0x2953, U: 0xD9C2, V: 0x3FF1, Acc: 0x00, X: 1}

	// QoobSX is the state at the start of a Qoob SX BIOS (flash offset 0x210000).
	QoobSX = Seed{T: 0x9E57, U: 0xC7C5, V: 0x2EED, Acc: 0xCB, X: 1}
)

// Stream generates the keystream for one run. It is not safe for concurrent
// use and must not be shared between images.
type Stream struct {
	t, u, v uint16
	x       uint8
	acc     uint8
	nacc    int
}

var _ cipher.Stream = (*Stream)(nil)

// NewStream returns a Stream positioned at the start of the keystream for seed.
func NewStream(seed Seed) *Stream {
	return &Stream{
		t:   seed.T,
		u:   seed.U,
		v:   seed.V,
		x:   seed.X & 1,
		acc: seed.Acc,
	}
}

// step advances the registers by one bit and reports whether a full
// keystream byte is ready in s.acc.
func (s *Stream) step() bool {
	t0 := uint8(s.t & 1)
	t1 := uint8(s.t>>1) & 1
	u0 := uint8(s.u & 1)
	u1 := uint8(s.u>>1) & 1
	v0 := uint8(s.v & 1)

	s.x ^= t1 ^ v0
	s.x ^= u0 | u1
	s.x ^= (t0 ^ u1 ^ v0) & (t0 ^ u0)

	// Registers are uint16, so shifts and XORs never leave 16 bits.
	if t0 == u0 {
		s.v >>= 1
		if v0 != 0 {
			s.v ^= TapV
		}
	}

	if t0 == 0 {
		s.u >>= 1
		if u0 != 0 {
			s.u ^= TapU
		}
	}

	s.t >>= 1
	if t0 != 0 {
		s.t ^= TapT
	}

	s.nacc++
	s.acc = s.acc<<1 | s.x
	if s.nacc == BitsPerByte {
		s.nacc = 0
		return true
	}
	return false
}

// next returns the next keystream byte.
func (s *Stream) next() byte {
	for !s.step() {
	}
	return s.acc
}

// XORKeyStream XORs each byte of src with the next keystream byte and writes
// the result to dst. dst and src may overlap entirely.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("scramble: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ s.next()
	}
}

// Discard advances the keystream by n bytes.
func (s *Stream) Discard(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

// Apply scrambles or descrambles data in place.
func Apply(data []byte, seed Seed) {
	NewStream(seed).XORKeyStream(data, data)
}

// ApplyAt transforms data in place as if it started offset bytes into the
// keystream. It gives the same result as prepending offset zero bytes,
// applying the cipher and dropping them again.
func ApplyAt(data []byte, seed Seed, offset int) {
	s := NewStream(seed)
	s.Discard(offset)
	s.XORKeyStream(data, data)
}

// Bytes returns a transformed copy of data.
func Bytes(data []byte, seed Seed) []byte {
	out := make([]byte, len(data))
	NewStream(seed).XORKeyStream(out, data)
	return out
}

// Keystream returns the first n keystream bytes for seed.
func Keystream(seed Seed, n int) []byte {
	return Bytes(make([]byte, n), seed)
}
