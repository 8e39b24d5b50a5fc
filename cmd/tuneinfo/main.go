// Command tuneinfo prints the tuning system, scale, and interval variant
// catalogs.
//
// Usage:
//
//	tuneinfo [flags] [system-name ...]
//
// Without arguments it prints the table for every tuning system.
//
// Examples:
//
//	tuneinfo just
//	tuneinfo --root c --scale minor just pythagorean
//	tuneinfo --scale blues --all
//	tuneinfo --list
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/cwbudde/algo-tuning/tuning"
	"github.com/cwbudde/algo-tuning/tuning/note"
	"github.com/cwbudde/algo-tuning/tuning/scale"
)

type systemEntry struct {
	name   string
	system tuning.System
}

var systems = []systemEntry{
	{"equal", tuning.EqualTemperament},
	{"just", tuning.JustIntonation},
	{"pythagorean", tuning.Pythagorean},
	{"meantone", tuning.QuarterCommaMeantone},
	{"custom1", tuning.Custom1},
	{"custom2", tuning.Custom2},
	{"custom3", tuning.Custom3},
}

var scales = []struct {
	name string
	typ  scale.Type
}{
	{"chromatic", scale.Chromatic},
	{"major", scale.Major},
	{"minor", scale.NaturalMinor},
	{"harmonic-minor", scale.HarmonicMinor},
	{"melodic-minor", scale.MelodicMinor},
	{"major-pentatonic", scale.MajorPentatonic},
	{"minor-pentatonic", scale.MinorPentatonic},
	{"blues", scale.Blues},
	{"dorian", scale.Dorian},
	{"phrygian", scale.Phrygian},
	{"lydian", scale.Lydian},
	{"mixolydian", scale.Mixolydian},
	{"aeolian", scale.Aeolian},
	{"locrian", scale.Locrian},
	{"whole-tone", scale.WholeTone},
}

func main() {
	scaleName := flag.StringP("scale", "s", "chromatic", "scale used to mark in-key positions")
	rootName := flag.StringP("root", "r", "a", "root note (c, c#, d, ... b)")
	all := flag.Bool("all", false, "show all tuning systems")
	list := flag.Bool("list", false, "list known system and scale names")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tuneinfo [flags] [system-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints interval ratio tables of musical tuning systems.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with --all, prints every system.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range systems {
			names = append(names, e.name)
		}
	}

	entries := resolveSystems(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching tuning systems\n")
		os.Exit(1)
	}

	mask := resolveScale(*scaleName)

	root, ok := resolveRoot(*rootName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown root note %q\n", *rootName)
		os.Exit(1)
	}

	for _, e := range entries {
		printSystem(e.system, mask, root)
	}
}

func printList() {
	fmt.Println("systems:")
	for _, e := range systems {
		fmt.Printf("  %-12s %s\n", e.name, e.system)
	}

	fmt.Println("scales:")
	for _, e := range scales {
		fmt.Printf("  %-18s %s\n", e.name, e.typ)
	}
}

func resolveSystems(names []string) []systemEntry {
	byName := make(map[string]systemEntry, len(systems))
	for _, e := range systems {
		byName[e.name] = e
	}

	var result []systemEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown system %q (use --list to see available)\n", name)
			continue
		}

		result = append(result, e)
	}
	return result
}

func resolveScale(name string) scale.Mask {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range scales {
		if e.name == name {
			return e.typ.Mask()
		}
	}

	fmt.Fprintf(os.Stderr, "warning: unknown scale %q, using chromatic\n", name)

	return scale.Chromatic.Mask()
}

func resolveRoot(name string) (note.Base, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for pos := 0; pos < 12; pos++ {
		if strings.ToLower(note.Name(pos)) == name {
			return note.Base(pos + 1), true
		}
	}
	return note.Sync, false
}

func printSystem(s tuning.System, mask scale.Mask, root note.Base) {
	header := color.New(color.FgCyan, color.Bold)
	inKey := color.New(color.FgGreen)
	variant := color.New(color.FgYellow)

	rootHz := note.Frequency(root)
	header.Printf("%s (root %s = %.2f Hz)\n", s, root, rootHz)

	ratios := s.Ratios()
	freqs := tuning.Frequencies(rootHz, ratios)
	variants := s.Variants()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pos\tNote\tRatio\tCents\tDev\tFreq [Hz]\t\n")

	for pos := 0; pos < 12; pos++ {
		cents := tuning.Cents(ratios[pos])
		dev := cents - float64(pos)*100

		marker := ""
		if mask[pos] {
			marker = inKey.Sprint("in")
		}

		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.1f\t%+.1f\t%.2f\t%s\n",
			pos, note.Name(pos), ratios[pos], cents, dev, freqs[pos], marker)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	for pos, list := range variants {
		for _, v := range list {
			variant.Printf("  position %d alternative: %s (%s) = %.3f\n",
				pos, v.Label, v.Origin, v.Ratio)
		}
	}

	absDev := 0.0
	for pos := 1; pos < 12; pos++ {
		absDev += math.Abs(tuning.Cents(ratios[pos]) - float64(pos)*100)
	}

	fmt.Printf("  mean deviation from equal: %.1f cents\n\n", absDev/11)
}
