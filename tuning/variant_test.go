package tuning

import "testing"

func TestVariantsPythagorean(t *testing.T) {
	v := Pythagorean.Variants()

	for pos, list := range v {
		if pos == 6 {
			continue
		}

		if len(list) != 0 {
			t.Errorf("position %d: %d variants, want 0", pos, len(list))
		}
	}

	tritone := v[6]
	if len(tritone) != 2 {
		t.Fatalf("tritone variants = %d, want 2", len(tritone))
	}

	if tritone[0].Ratio != 1.424 || tritone[0].Origin != "729/512" {
		t.Errorf("augmented 4th = %+v", tritone[0])
	}

	if tritone[1].Ratio != 1.405 || tritone[1].Origin != "1024/729" {
		t.Errorf("diminished 5th = %+v", tritone[1])
	}
}

func TestVariantsJustIntonation(t *testing.T) {
	v := JustIntonation.Variants()

	for pos, list := range v {
		want := 0
		if pos == 2 || pos == 10 {
			want = 2
		}

		if len(list) != want {
			t.Errorf("position %d: %d variants, want %d", pos, len(list), want)
		}
	}

	if v[2][0].Ratio != 1.125 || v[2][1].Ratio != 1.111 {
		t.Errorf("second variants = %v / %v", v[2][0], v[2][1])
	}

	if v[10][0].Ratio != 1.8 || v[10][1].Ratio != 1.778 {
		t.Errorf("seventh variants = %v / %v", v[10][0], v[10][1])
	}
}

func TestVariantsEmptyElsewhere(t *testing.T) {
	systems := []System{
		EqualTemperament, QuarterCommaMeantone,
		Custom1, Custom2, Custom3, System(42),
	}
	for _, s := range systems {
		for pos, list := range s.Variants() {
			if len(list) != 0 {
				t.Errorf("%v position %d: %d variants, want 0", s, pos, len(list))
			}
		}
	}
}

func TestVariantsFreshPerCall(t *testing.T) {
	first := Pythagorean.Variants()
	first[6][0].Ratio = 999

	if got := Pythagorean.Variants(); got[6][0].Ratio != 1.424 {
		t.Error("mutating a returned variant changed a later lookup")
	}
}

func TestVariantCanonicalAgreement(t *testing.T) {
	// The first variant at each ambiguous position matches the canonical
	// table entry, so selecting it is a no-op.
	if r := Pythagorean.Ratios(); Pythagorean.Variants()[6][0].Ratio != r[6] {
		t.Error("Pythagorean tritone variant 0 differs from table")
	}

	r := JustIntonation.Ratios()

	v := JustIntonation.Variants()
	if v[2][0].Ratio != r[2] || v[10][0].Ratio != r[10] {
		t.Error("just intonation variant 0 differs from table")
	}
}
