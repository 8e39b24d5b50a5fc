// Package note maps root-note selections to names and absolute frequencies.
//
// A Base is either a fixed pitch class or Sync, which defers the rate to the
// host tempo instead of a fixed frequency. Root placement is always
// equal-tempered around a 55 Hz A reference, independent of the tuning
// system in use; the interval ratios from the tuning catalog apply above the
// root, never to the root itself.
package note

import (
	"fmt"
	"math"
)

// Base selects the root of the interval ladder: the tempo-synchronized
// sentinel followed by the twelve chromatic pitch classes.
type Base int

const (
	Sync Base = iota // tempo-synchronized, no fixed frequency
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B

	baseCount // sentinel
)

// Sharp-spelled pitch class names, index = semitone position.
var names = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// String returns the display name of the base.
func (b Base) String() string {
	switch {
	case b == Sync:
		return "Sync"
	case b > Sync && b < baseCount:
		return names[b-1]
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// Valid reports whether b is a known base.
func (b Base) Valid() bool {
	return b >= 0 && b < baseCount
}

// Name returns the sharp-spelled name of a semitone position in [0, 11],
// or "?" outside that range.
func Name(pos int) string {
	if pos < 0 || pos > 11 {
		return "?"
	}
	return names[pos]
}

// The pitch class A is pinned to exactly 55 Hz.
const referenceFrequency = 55.0

// Frequency returns the absolute frequency of the base in Hz, spaced in
// equal temperament around the 55 Hz A reference. Sync returns 0: there is
// no fixed frequency and the caller must derive one from the host tempo.
// Values outside the enumeration behave like Sync.
func Frequency(b Base) float64 {
	if b <= Sync || b >= baseCount {
		return 0
	}

	class := int(b) - 1 // 0 = C .. 11 = B
	return referenceFrequency * math.Pow(2, float64(class-9)/12)
}
