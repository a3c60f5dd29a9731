package benchmarking

import (
	"math"
	"math/bits"
	"math/rand"

	mat2 "gonum.org/v1/gonum/mat"
)

func popcount(x uint32) int {
	return bits.OnesCount32(x)
}

// RandomMessage creates a random message of bitLen bits.
func RandomMessage(bitLen int) uint16 {
	return uint16(rand.Intn(1 << uint(bitLen)))
}

// RandomErrorPattern creates an error pattern of exactly weight bits
// set among the low bitLen bits.
func RandomErrorPattern(bitLen, weight int) uint32 {
	var pattern uint32
	for popcount(pattern) < weight {
		pattern |= 1 << uint(rand.Intn(bitLen))
	}
	return pattern
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip, bitLen)
// bits among the low bitLen bits of word.
func RandomFlipBitCount(word uint32, bitLen, numberOfBitsToFlip int) uint32 {
	if numberOfBitsToFlip > bitLen {
		numberOfBitsToFlip = bitLen
	}
	return word ^ RandomErrorPattern(bitLen, numberOfBitsToFlip)
}

// RandomFlip flips each of the low bitLen bits of word independently
// with the given crossover probability.
func RandomFlip(word uint32, bitLen int, crossoverProbability float64) uint32 {
	for i := 0; i < bitLen; i++ {
		if rand.Float64() < crossoverProbability {
			word ^= 1 << uint(i)
		}
	}
	return word
}

// RandomNoiseBPSK creates a randomized version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
