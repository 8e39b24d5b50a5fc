package tuning

import (
	"math"
	"testing"
)

func TestFrequencies(t *testing.T) {
	freqs := Frequencies(55, JustIntonation.Ratios())

	if len(freqs) != 12 {
		t.Fatalf("len = %d, want 12", len(freqs))
	}

	if freqs[0] != 55 {
		t.Errorf("root = %v, want 55", freqs[0])
	}

	if got, want := freqs[7], 55*1.5; got != want {
		t.Errorf("fifth = %v, want %v", got, want)
	}

	if got, want := freqs[4], 55*1.25; got != want {
		t.Errorf("third = %v, want %v", got, want)
	}
}

func TestCents(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"Unison", 1.0, 0},
		{"Octave", 2.0, 1200},
		{"PureFifth", 1.5, 701.955},
		{"PureMajorThird", 1.25, 386.314},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cents(tt.ratio); math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("Cents(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestCentsAgainstEqual(t *testing.T) {
	// Equal temperament lands within rounding error of n*100 cents.
	r := EqualTemperament.Ratios()
	for pos, val := range r {
		want := float64(pos) * 100
		if got := Cents(val); math.Abs(got-want) > 1 {
			t.Errorf("position %d: %v cents, want %v +/- 1", pos, got, want)
		}
	}
}
