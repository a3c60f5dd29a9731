package linearblock

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

// a [6,3] code with A = A^T so H=[A|I] and G=[I|A] validate
func testCode() *Code {
	a := [][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	H := mat.DOKMat(3, 6)
	H.SetMatrix(mat.CSRIdentity(3), 0, 3)
	G := mat.DOKMat(3, 6)
	G.SetMatrix(mat.CSRIdentity(3), 0, 0)
	for j := 0; j < 3; j++ {
		col := mat.CSRVec(3)
		for i := 0; i < 3; i++ {
			col.Set(i, a[i][j])
		}
		H.SetColumn(j, col)
		G.SetColumn(3+j, col)
	}

	return &Code{H: H, G: G}
}

func TestValidate(t *testing.T) {
	c := testCode()
	if !c.Validate() {
		t.Fatalf("expected G*H.T == 0")
	}

	if c.MessageLength() != 3 || c.ParitySymbols() != 3 || c.CodewordLength() != 6 {
		t.Fatalf("expected a [6,3] code but found [%v,%v] with %v parity symbols",
			c.CodewordLength(), c.MessageLength(), c.ParitySymbols())
	}
	if c.CodeRate() != 0.5 {
		t.Fatalf("expected code rate 0.5 but found %v", c.CodeRate())
	}
}

func TestEncodeDecodeSyndrome(t *testing.T) {
	c := testCode()

	tests := []struct {
		message []int
	}{
		{[]int{0, 0, 0}},
		{[]int{1, 0, 0}},
		{[]int{0, 1, 1}},
		{[]int{1, 1, 1}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			message := mat.CSRVec(3)
			for j, v := range test.message {
				message.Set(j, v)
			}

			codeword := c.Encode(message)

			syndrome := c.Syndrome(codeword)
			if !syndrome.IsZero() {
				t.Fatalf("expected zero syndrome for codeword %v but found %v", codeword, syndrome)
			}

			actual := c.Decode(codeword)
			if actual.HammingDistance(message) != 0 {
				t.Fatalf("expected %v but found %v", message, actual)
			}
		})
	}
}

func TestSyndromeFlagsErrors(t *testing.T) {
	c := testCode()

	message := mat.CSRVec(3)
	message.Set(0, 1)
	codeword := c.Encode(message)

	for i := 0; i < c.CodewordLength(); i++ {
		received := mat.CSRVecCopy(codeword)
		received.Set(i, received.At(i)+1)

		if c.Syndrome(received).IsZero() {
			t.Fatalf("expected nonzero syndrome after flipping bit %v", i)
		}
	}
}
