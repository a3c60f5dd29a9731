// Package linearblock provides a matrix level view of a systematic
// linear block code for validation and interop with matrix tooling.
// The bit packed fast path of a concrete code lives with the code
// itself; this view trades speed for inspectability.
package linearblock

import (
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

// Code contains the parity check matrix H and the systematic generator
// matrix G of a linear block code.  Column c of both matrices
// corresponds to codeword bit c, message bits in the leading columns.
type Code struct {
	H mat.SparseMat
	G mat.SparseMat
}

// Encode takes in a message and returns the codeword, message bits in
// the leading positions followed by the parity bits.
func (c *Code) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := c.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, c.G)
	return codeword
}

// Decode takes in a codeword and returns the message contained in it.
// The codeword is assumed valid; no error correction happens here.
func (c *Code) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != c.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", c.CodewordLength(), codeword.Len()))
	}

	return codeword.Slice(0, c.MessageLength())
}

// Syndrome multiplies the received word by the transpose of H.  A zero
// result means received is a valid codeword.
func (c *Code) Syndrome(received mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(c.ParitySymbols())
	syndrome.MatMul(c.H, received)
	return
}

func (c *Code) MessageLength() int {
	k, _ := c.G.Dims()
	return k
}

func (c *Code) ParitySymbols() int {
	m, _ := c.H.Dims()
	return m
}

func (c *Code) CodewordLength() int {
	_, n := c.H.Dims()
	return n
}

func (c *Code) CodeRate() float64 {
	return float64(c.MessageLength()) / float64(c.CodewordLength())
}

// Validate tests if this code satisfies G*H.T == 0, where H.T is the
// transpose of H.
func (c *Code) Validate() bool {
	rows, _ := c.G.Dims()
	cols, _ := c.H.Dims()

	//we cache the H rows, if H is in CSR form this is way faster than
	// taking the actual H.T() and multiplying
	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = c.H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := c.G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(c.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(c.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
