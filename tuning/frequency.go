package tuning

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Frequencies returns the absolute frequency in Hz of each semitone
// position for the given root frequency.
func Frequencies(root float64, t RatioTable) []float64 {
	out := make([]float64, len(t))
	vecmath.ScaleBlock(out, t[:], root)

	return out
}

// Cents converts a frequency ratio to cents, 1200 per octave. Useful for
// comparing a system's intervals against their equal-tempered positions.
func Cents(ratio float64) float64 {
	return 1200 * math.Log2(ratio)
}
