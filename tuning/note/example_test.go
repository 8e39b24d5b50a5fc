package note_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuning/tuning/note"
)

func ExampleFrequency() {
	fmt.Printf("%v %.2f Hz\n", note.A, note.Frequency(note.A))
	fmt.Printf("%v %.2f Hz\n", note.C, note.Frequency(note.C))
	fmt.Printf("%v %.2f Hz\n", note.Sync, note.Frequency(note.Sync))
	// Output:
	// A 55.00 Hz
	// C 32.70 Hz
	// Sync 0.00 Hz
}
