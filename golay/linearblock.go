package golay

import (
	"github.com/nathanhack/golay24/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// NewLinearBlock builds the sparse matrix view of the Golay code from
// the same defining submatrix the bit packed path uses.  Codeword bit
// 23 maps to vector index 0 (see MessageVec/CodewordVec).
func NewLinearBlock() *linearblock.Code {
	logrus.Debugf("building sparse G and H from the defining submatrix")

	G := mat.DOKMat(MessageBits, CodewordBits)
	G.SetMatrix(mat.CSRIdentity(MessageBits), 0, 0)

	H := mat.DOKMat(MessageBits, CodewordBits)
	H.SetMatrix(mat.CSRIdentity(MessageBits), 0, MessageBits)

	// B is symmetric so its rows double as its columns
	for j, row := range b {
		col := mat.CSRVec(MessageBits)
		for i := 0; i < MessageBits; i++ {
			col.Set(i, int(row>>uint(MessageBits-1-i)&1))
		}
		G.SetColumn(MessageBits+j, col)
		H.SetColumn(j, col)
	}

	return &linearblock.Code{H: H, G: G}
}

// MessageVec converts the low 12 bits of a message into a sparse
// vector, message bit 11 at vector index 0.
func MessageVec(message uint16) mat.SparseVector {
	m := uint32(message) & MessageMask
	vec := mat.CSRVec(MessageBits)
	for i := 0; i < MessageBits; i++ {
		vec.Set(i, int(m>>uint(MessageBits-1-i)&1))
	}
	return vec
}

// CodewordVec converts the low 24 bits of a codeword into a sparse
// vector, codeword bit 23 at vector index 0.
func CodewordVec(codeword uint32) mat.SparseVector {
	c := codeword & CodewordMask
	vec := mat.CSRVec(CodewordBits)
	for i := 0; i < CodewordBits; i++ {
		vec.Set(i, int(c>>uint(CodewordBits-1-i)&1))
	}
	return vec
}

// VecWord packs a sparse bit vector back into an integer, vector index
// 0 at the most significant of len(vec) bits.
func VecWord(vec mat.SparseVector) uint32 {
	var w uint32
	for i := 0; i < vec.Len(); i++ {
		w = w<<1 | uint32(vec.At(i)&1)
	}
	return w
}
