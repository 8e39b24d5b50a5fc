package tuning

// Variant is a named alternative ratio at one semitone position where a
// tuning system offers historically distinct spellings of the same interval.
type Variant struct {
	Label  string  // display name, e.g. "Augmented 4th"
	Ratio  float64 // supersedes the RatioTable entry when selected
	Origin string  // rational source, e.g. "729/512"
}

// Variants returns, per semitone position, the alternative ratios the
// system defines. An empty list means the canonical RatioTable entry is the
// only choice. Only two systems carry variant data: Pythagorean tuning
// splits the tritone, and just intonation splits the major second and the
// minor seventh. Every other system, custom kinds included, returns empty
// lists throughout.
//
// The nested structure is freshly allocated on every call; callers may keep
// or modify it freely.
func (s System) Variants() [12][]Variant {
	var out [12][]Variant

	switch s {
	case Pythagorean:
		out[6] = []Variant{
			{Label: "Augmented 4th", Ratio: 1.424, Origin: "729/512"},
			{Label: "Diminished 5th", Ratio: 1.405, Origin: "1024/729"},
		}
	case JustIntonation:
		out[2] = []Variant{
			{Label: "Major whole tone", Ratio: 1.125, Origin: "9/8"},
			{Label: "Minor whole tone", Ratio: 1.111, Origin: "10/9"},
		}
		out[10] = []Variant{
			{Label: "Greater minor 7th", Ratio: 1.8, Origin: "9/5"},
			{Label: "Lesser minor 7th", Ratio: 1.778, Origin: "16/9"},
		}
	}

	return out
}
