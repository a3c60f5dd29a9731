package golay

import (
	"sync"

	"gonum.org/v1/gonum/stat/combin"
)

// uncorrectable marks syndromes whose coset contains no error pattern
// of weight <=3.  It is outside the 24 bit range so it can never
// collide with a real pattern.
const uncorrectable = ^uint32(0)

var (
	tableOnce sync.Once
	table     [1 << MessageBits]uint32
)

// syndromeTable returns the coset leader table: for every possible 12
// bit syndrome either the unique minimum weight error pattern
// (weight <=3) producing it, or uncorrectable.  Built on first use and
// never mutated afterward.
func syndromeTable() *[1 << MessageBits]uint32 {
	tableOnce.Do(buildTable)
	return &table
}

func buildTable() {
	for i := range table {
		table[i] = uncorrectable
	}

	// Enumerate error patterns in ascending weight order: 1+24+276+2024
	// patterns in total.  Minimum distance 8 keeps the weight <=3 cosets
	// disjoint, so each of the 2325 slots filled here is filled exactly
	// once and holds a provably minimal leader; the remaining 1771
	// syndromes stay uncorrectable.
	table[0] = 0
	for w := 1; w <= 3; w++ {
		pattern := make([]int, w)
		gen := combin.NewCombinationGenerator(CodewordBits, w)
		for gen.Next() {
			gen.Combination(pattern)
			var e uint32
			for _, bit := range pattern {
				e |= 1 << uint(bit)
			}
			table[Syndrome(e)] = e
		}
	}
}
