// Package scale provides static membership masks describing which semitone
// positions belong to a scale. Lookups are total: unknown or custom scale
// types fall back to the chromatic (all-member) mask.
package scale

import "fmt"

// Type identifies a scale: the subset of the twelve semitone positions
// considered in key.
type Type int

const (
	Chromatic Type = iota
	Major
	NaturalMinor
	HarmonicMinor
	MelodicMinor
	MajorPentatonic
	MinorPentatonic
	Blues
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	WholeTone
	Custom // user-defined membership, managed by the host

	typeCount // sentinel
)

var typeNames = [typeCount]string{
	"Chromatic", "Major", "Natural Minor", "Harmonic Minor", "Melodic Minor",
	"Major Pentatonic", "Minor Pentatonic", "Blues", "Dorian", "Phrygian",
	"Lydian", "Mixolydian", "Aeolian", "Locrian", "Whole Tone", "Custom",
}

// String returns the name of the scale type.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a known scale type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// Mask flags which semitone positions belong to a scale. Index 0 is the
// root, which is a member of every scale.
type Mask [12]bool

// Mask returns the membership mask for the scale. The lookup is total:
// Custom carries no membership of its own and yields the chromatic mask
// until the host substitutes one, and out-of-range values do the same.
func (t Type) Mask() Mask {
	if t >= 0 && t < typeCount {
		return typeMasks[t]
	}
	return maskChromatic
}

var typeMasks = [typeCount]Mask{
	Chromatic:       maskChromatic,
	Major:           maskMajor,
	NaturalMinor:    maskNaturalMinor,
	HarmonicMinor:   maskHarmonicMinor,
	MelodicMinor:    maskMelodicMinor,
	MajorPentatonic: maskMajorPentatonic,
	MinorPentatonic: maskMinorPentatonic,
	Blues:           maskBlues,
	Dorian:          maskDorian,
	Phrygian:        maskPhrygian,
	Lydian:          maskLydian,
	Mixolydian:      maskMixolydian,
	Aeolian:         maskNaturalMinor, // same pitch set, shared constant
	Locrian:         maskLocrian,
	WholeTone:       maskWholeTone,
	Custom:          maskChromatic,
}

var maskChromatic = Mask{
	true, true, true, true, true, true,
	true, true, true, true, true, true,
}

var maskMajor = Mask{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}

// maskNaturalMinor also backs Aeolian; edit in one place only.
var maskNaturalMinor = Mask{0: true, 2: true, 3: true, 5: true, 7: true, 8: true, 10: true}

var maskHarmonicMinor = Mask{0: true, 2: true, 3: true, 5: true, 7: true, 8: true, 11: true}

// Ascending form.
var maskMelodicMinor = Mask{0: true, 2: true, 3: true, 5: true, 7: true, 9: true, 11: true}

var maskMajorPentatonic = Mask{0: true, 2: true, 4: true, 7: true, 9: true}

var maskMinorPentatonic = Mask{0: true, 3: true, 5: true, 7: true, 10: true}

var maskBlues = Mask{0: true, 3: true, 5: true, 6: true, 7: true, 10: true}

var maskDorian = Mask{0: true, 2: true, 3: true, 5: true, 7: true, 9: true, 10: true}

var maskPhrygian = Mask{0: true, 1: true, 3: true, 5: true, 7: true, 8: true, 10: true}

var maskLydian = Mask{0: true, 2: true, 4: true, 6: true, 7: true, 9: true, 11: true}

var maskMixolydian = Mask{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 10: true}

var maskLocrian = Mask{0: true, 1: true, 3: true, 5: true, 6: true, 8: true, 10: true}

var maskWholeTone = Mask{0: true, 2: true, 4: true, 6: true, 8: true, 10: true}
