// Package golay implements the extended binary Golay code, a [24,12]
// linear block code with minimum distance 8.  It corrects any error
// pattern of weight <=3 and detects (without correcting) any error
// pattern of weight 4.
//
// All operations are pure functions over fixed width integers; the only
// shared state is the syndrome table, built exactly once and immutable
// afterward, so every function is safe for concurrent use.
package golay

import "math/bits"

// Encode converts a 12 bit message into a 24 bit codeword.  Only the
// low 12 bits of message are used; anything above them is ignored.  The
// message bits land unmodified in the high 12 bits of the codeword and
// the 12 parity bits in the low 12.
func Encode(message uint16) uint32 {
	m := uint32(message) & MessageMask

	c := m << MessageBits
	for i, row := range b {
		c |= uint32(bits.OnesCount32(m&row)&1) << uint(MessageBits-1-i)
	}
	return c
}

// ECC detects and corrects errors in a received word.  Only the low 24
// bits of received are used.
//
// When the syndrome is zero, or resolves to a unique error pattern of
// weight <=3, ECC returns the corrected codeword and true.  When the
// syndrome falls in a coset with no weight <=3 representative (every
// weight 4 error does) the error is detected but not correctable, and
// ECC returns the received word unchanged and false; the first return
// value carries no meaning in that case.
//
// Errors of weight >=5 exceed the code's distance and may be silently
// miscorrected to a different codeword.
func ECC(received uint32) (corrected uint32, ok bool) {
	r := received & CodewordMask

	s := Syndrome(r)
	if s == 0 {
		return r, true
	}

	e := syndromeTable()[s]
	if e == uncorrectable {
		return r, false
	}
	return r ^ e, true
}

// Decode extracts the 12 bit message from the systematic positions of a
// codeword.  The argument must already be a valid codeword (typically
// the first return value of a successful ECC call); Decode performs no
// validation and simply returns the high 12 of the low 24 bits.
func Decode(codeword uint32) uint16 {
	return uint16(codeword >> MessageBits & MessageMask)
}

// Syndrome multiplies a received word by the transpose of the parity
// check matrix H=[B|I].  The result is zero iff the low 24 bits of
// received form a valid codeword.
func Syndrome(received uint32) uint32 {
	r := received & CodewordMask

	var s uint32
	for _, row := range h {
		s = s<<1 | uint32(bits.OnesCount32(r&row)&1)
	}
	return s
}
