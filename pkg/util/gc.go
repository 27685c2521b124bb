package util

import (
	"math"
	"strings"
)

// GCContent return GC percentage of seq, case insensitive
func GCContent(seq string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	return float64(GCCount(strings.ToUpper(seq))*100) / float64(len(seq)), nil
}

// GCCount count G and C, uppercase only
func GCCount(seq string) int {
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C':
			gc++
		}
	}
	return gc
}

const (
	A = 69.3 // 64.9
	B = 41.0
	C = 650.0 // 41*16.4=672.4
	// D = 16.6
	// Na = 0.05
)

// CalculateTm Tm = A + B*gc/100 - C/length, gc in percent
func CalculateTm(length int, gc float64) float64 {
	return A + B*gc/100 - C/float64(length)
}

// Round2 round x to 2 decimal
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
