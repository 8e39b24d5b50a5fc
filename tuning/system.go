package tuning

import "fmt"

// System identifies a tuning system: a rule set defining the twelve
// interval ratios above a root note.
type System int

const (
	EqualTemperament System = iota
	JustIntonation
	Pythagorean
	QuarterCommaMeantone
	Custom1 // user-supplied ratios, managed by the host
	Custom2
	Custom3

	systemCount // sentinel
)

var systemNames = [systemCount]string{
	"Equal Temperament", "Just Intonation", "Pythagorean",
	"Quarter-comma Meantone", "Custom 1", "Custom 2", "Custom 3",
}

// String returns the name of the tuning system.
func (s System) String() string {
	if s >= 0 && s < systemCount {
		return systemNames[s]
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Valid reports whether s is a known tuning system.
func (s System) Valid() bool {
	return s >= 0 && s < systemCount
}

// RatioTable holds the frequency ratio of each semitone position above the
// root. Index 0 is the root itself (always 1.0); all entries lie within a
// single octave.
type RatioTable [12]float64

// Ratios returns the ratio table for the system. The lookup is total: the
// three custom systems carry no ratios of their own and yield the equal
// temperament table until the host substitutes one, and out-of-range values
// do the same. Returned by value, so callers cannot reach the catalog.
func (s System) Ratios() RatioTable {
	if s >= 0 && s < systemCount {
		return systemRatios[s]
	}
	return ratiosEqual
}

var systemRatios = [systemCount]RatioTable{
	EqualTemperament:     ratiosEqual,
	JustIntonation:       ratiosJust,
	Pythagorean:          ratiosPythagorean,
	QuarterCommaMeantone: ratiosMeantone,
	Custom1:              ratiosEqual,
	Custom2:              ratiosEqual,
	Custom3:              ratiosEqual,
}

// Ratio tables are stored pre-rounded to three decimals. The rounding is
// part of the contract: recomputing from 2^(n/12) or the underlying
// rationals would shift outputs at the third decimal place.

var ratiosEqual = RatioTable{
	1.0, 1.059, 1.122, 1.189, 1.260, 1.335,
	1.414, 1.498, 1.587, 1.682, 1.782, 1.888,
}

// 5-limit just intonation. The seconds and sevenths have enharmonic
// alternatives, see Variants.
var ratiosJust = RatioTable{
	1.0,   // 1/1
	1.067, // 16/15
	1.125, // 9/8
	1.2,   // 6/5
	1.25,  // 5/4
	1.333, // 4/3
	1.406, // 45/32
	1.5,   // 3/2
	1.6,   // 8/5
	1.667, // 5/3
	1.8,   // 9/5
	1.875, // 15/8
}

// Stacked pure fifths. The tritone is spelled as the augmented fourth
// 729/512; the diminished fifth is offered through Variants.
var ratiosPythagorean = RatioTable{
	1.0,   // 1/1
	1.053, // 256/243
	1.125, // 9/8
	1.185, // 32/27
	1.266, // 81/64
	1.333, // 4/3
	1.424, // 729/512
	1.5,   // 3/2
	1.580, // 128/81
	1.688, // 27/16
	1.778, // 16/9
	1.898, // 243/128
}

// Quarter-comma meantone with the conventional Eb/G# twelve-note spelling.
var ratiosMeantone = RatioTable{
	1.0, 1.045, 1.118, 1.196, 1.25, 1.337,
	1.398, 1.495, 1.563, 1.672, 1.789, 1.869,
}
