package golay

const (
	// MessageBits is the number of data bits in a message.
	MessageBits = 12
	// CodewordBits is the number of bits in a codeword.
	CodewordBits = 24

	// MessageMask keeps the low MessageBits of a wider container.
	MessageMask = 1<<MessageBits - 1
	// CodewordMask keeps the low CodewordBits of a wider container.
	CodewordMask = 1<<CodewordBits - 1
)

// b holds the rows of the 12x12 defining submatrix B as 12 bit masks,
// bit 11 of each mask being column 0.  B is symmetric, so the same masks
// serve as its columns, and since the code is self-dual both the
// generator G=[I|B] and the parity check H=[B|I] come from it.
var b = [MessageBits]uint32{
	0b100111110001,
	0b010011111010,
	0b001001111101,
	0b100100111110,
	0b110010011101,
	0b111001001110,
	0b111100100101,
	0b111110010010,
	0b011111001001,
	0b001111100110,
	0b010101010111,
	0b101010101011,
}

// g and h hold the rows of G=[I|B] and H=[B|I] as 24 bit masks, bit 23
// being column 0.  Message bits occupy the high half of a codeword and
// parity bits the low half.
var g, h [MessageBits]uint32

func init() {
	for i, row := range b {
		g[i] = 1<<uint(CodewordBits-1-i) | row
		h[i] = row<<MessageBits | 1<<uint(MessageBits-1-i)
	}
}
