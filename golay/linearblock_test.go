package golay

import (
	"strconv"
	"testing"
)

func TestNewLinearBlock(t *testing.T) {
	lb := NewLinearBlock()

	if !lb.Validate() {
		t.Fatalf("expected G*H.T == 0")
	}
	if lb.MessageLength() != MessageBits || lb.CodewordLength() != CodewordBits {
		t.Fatalf("expected a [%v,%v] code but found [%v,%v]",
			CodewordBits, MessageBits, lb.CodewordLength(), lb.MessageLength())
	}
}

// the sparse matrix view and the bit packed path must agree bit for bit
func TestLinearBlockMatchesBitPacked(t *testing.T) {
	lb := NewLinearBlock()

	tests := []uint16{0x000, 0x001, 0x273, 0x98d, 0xaaa, 0xfff}
	for i, message := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			expected := Encode(message)

			codeword := lb.Encode(MessageVec(message))
			if actual := VecWord(codeword); actual != expected {
				t.Fatalf("expected %06x but found %06x", expected, actual)
			}

			if !lb.Syndrome(codeword).IsZero() {
				t.Fatalf("expected a zero syndrome for codeword %06x", expected)
			}

			if actual := VecWord(lb.Decode(codeword)); actual != uint32(message) {
				t.Fatalf("expected %03x but found %03x", message, actual)
			}
		})
	}
}

func TestLinearBlockSyndromeMatchesBitPacked(t *testing.T) {
	lb := NewLinearBlock()

	received := Encode(0x5a5) ^ 0b0000_0001_0000_0000_1000_0100
	expected := Syndrome(received)

	if actual := VecWord(lb.Syndrome(CodewordVec(received))); actual != expected {
		t.Fatalf("expected %03x but found %03x", expected, actual)
	}
}
