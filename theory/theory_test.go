package theory

import (
	"reflect"
	"sync"
	"testing"
)

func TestParseNoteName(t *testing.T) {
	tests := []struct {
		in      string
		root    string
		acc     string
		hasAcc  bool
		wantErr bool
	}{
		{"c", "c", "", false, false},
		{"C#", "c", "#", true, false},
		{"Ebb", "e", "bb", true, false},
		{"gn", "g", "n", true, false},
		{"b", "b", "", false, false},
		{"bb", "b", "b", true, false},
		{"F##", "f", "##", true, false},
		{"", "", "", false, true},
		{"h#", "", "", false, true},
		{"c###", "", "", false, true},
		{"cx", "", "", false, true},
		{"c#b", "", "", false, true},
		{"cnn", "", "", false, true},
		{"#c", "", "", false, true},
	}

	for _, tt := range tests {
		got, err := ParseNoteName(tt.in)
		if tt.wantErr {
			if !IsKind(err, InvalidNoteName) {
				t.Errorf("ParseNoteName(%q) err = %v, want InvalidNoteName", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNoteName(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got.Root != tt.root || got.Accidental != tt.acc || got.HasAccidental != tt.hasAcc {
			t.Errorf("ParseNoteName(%q) = %+v, want root %q accidental %q (%v)", tt.in, got, tt.root, tt.acc, tt.hasAcc)
		}
	}
}

func TestPitchClassValue(t *testing.T) {
	tests := map[string]int{
		"c#":  1,
		"C#":  1,
		"cbb": -2,
		"cb":  -1,
		"en":  4,
		"b#":  12,
		"b##": 13,
		"dbb": 0,
		"bb":  10,
	}
	for in, want := range tests {
		got, err := PitchClassValue(in)
		if err != nil {
			t.Errorf("PitchClassValue(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("PitchClassValue(%q) = %d, want %d", in, got, want)
		}
	}

	for _, in := range []string{"h", "", "c###", "cbbb", "x#"} {
		if _, err := PitchClassValue(in); !IsKind(err, UnknownNoteValue) {
			t.Errorf("PitchClassValue(%q) err = %v, want UnknownNoteValue", in, err)
		}
	}
}

func TestNoteTableConsistentWithParser(t *testing.T) {
	if len(noteValues) != len(roots)*(len(accidentals)+1) {
		t.Fatalf("note table has %d entries", len(noteValues))
	}
	for key, v := range noteValues {
		parts, err := ParseNoteName(key)
		if err != nil {
			t.Errorf("table key %q does not parse: %v", key, err)
			continue
		}
		if roots[v.RootIndex] != parts.Root {
			t.Errorf("%q: root index %d is %q, parsed root %q", key, v.RootIndex, roots[v.RootIndex], parts.Root)
		}
		natural := noteValues[parts.Root].IntVal
		offset := map[string]int{"": 0, "n": 0, "#": 1, "##": 2, "b": -1, "bb": -2}[parts.Accidental]
		if v.IntVal != natural+offset {
			t.Errorf("%q: int value %d, want %d", key, v.IntVal, natural+offset)
		}
	}
}

func TestLookupNoteValue(t *testing.T) {
	v, err := LookupNoteValue("Gb")
	if err != nil {
		t.Fatal(err)
	}
	if v != (NoteValue{RootIndex: 4, IntVal: 6}) {
		t.Errorf("LookupNoteValue(Gb) = %+v", v)
	}
	if _, err := LookupNoteValue("q"); !IsKind(err, UnknownNoteValue) {
		t.Errorf("LookupNoteValue(q) err = %v", err)
	}
}

func TestIntervalSemitones(t *testing.T) {
	tests := map[string]int{
		"u": 0, "unison": 0,
		"m3": 3, "b3": 3, "min3": 3,
		"M3": 4, "3": 4,
		"H": 1, "W": 2, "T": 2, "S": 1,
		"#4": 6, "dim5": 6,
		"dom7": 10,
		"8":    12, "octave": 12,
	}
	for in, want := range tests {
		got, err := IntervalSemitones(in)
		if err != nil {
			t.Errorf("IntervalSemitones(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("IntervalSemitones(%q) = %d, want %d", in, got, want)
		}
	}

	for _, in := range []string{"", "P9", "w", "maj9"} {
		if _, err := IntervalSemitones(in); !IsKind(err, UnknownInterval) {
			t.Errorf("IntervalSemitones(%q) err = %v, want UnknownInterval", in, err)
		}
	}
}

func TestIntervalAliasesInRange(t *testing.T) {
	for name, v := range intervals {
		if v < 0 || v > NumTones {
			t.Errorf("alias %q maps to %d", name, v)
		}
	}
}

func TestPitchClassName(t *testing.T) {
	seen := make(map[string]bool)
	for v := 0; v < NumTones; v++ {
		name, err := PitchClassName(v)
		if err != nil {
			t.Fatalf("PitchClassName(%d): %v", v, err)
		}
		if name == "" || seen[name] {
			t.Errorf("PitchClassName(%d) = %q, empty or duplicate", v, name)
		}
		seen[name] = true

		// Every canonical name round-trips through the note table.
		back, err := PitchClassValue(name)
		if err != nil || back != v {
			t.Errorf("PitchClassValue(%q) = %d, %v; want %d", name, back, err, v)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	for _, v := range []int{-1, 12, 13, -100} {
		if _, err := PitchClassName(v); !IsKind(err, OutOfRange) {
			t.Errorf("PitchClassName(%d) err = %v, want OutOfRange", v, err)
		}
		if _, err := DiatonicIntervalName(v); !IsKind(err, OutOfRange) {
			t.Errorf("DiatonicIntervalName(%d) err = %v, want OutOfRange", v, err)
		}
	}
}

func TestDiatonicIntervalName(t *testing.T) {
	tests := map[int]string{0: "unison", 4: "M3", 6: "dim5", 7: "p5", 11: "M7"}
	for v, want := range tests {
		got, err := DiatonicIntervalName(v)
		if err != nil || got != want {
			t.Errorf("DiatonicIntervalName(%d) = %q, %v; want %q", v, got, err, want)
		}
	}
	if len(DiatonicIntervals()) != 13 || DiatonicIntervals()[12] != "octave" {
		t.Errorf("interval table = %v", DiatonicIntervals())
	}
}

func TestTransposePitchClass(t *testing.T) {
	tests := []struct {
		pc, n, dir, want int
	}{
		{0, 7, Up, 7},
		{0, 7, Down, 5},
		{11, 1, Up, 0},
		{0, 1, Down, 11},
		{-1, 0, Up, 11},
		{25, 0, Up, 1},
		{3, 24, Down, 3},
		{0, -3, Up, 9},
	}
	for _, tt := range tests {
		got, err := TransposePitchClass(tt.pc, tt.n, tt.dir)
		if err != nil {
			t.Errorf("TransposePitchClass(%d, %d, %d) unexpected error: %v", tt.pc, tt.n, tt.dir, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TransposePitchClass(%d, %d, %d) = %d, want %d", tt.pc, tt.n, tt.dir, got, tt.want)
		}
	}

	for _, dir := range []int{0, 2, -2} {
		if _, err := TransposePitchClass(0, 1, dir); !IsKind(err, InvalidDirection) {
			t.Errorf("direction %d: err = %v, want InvalidDirection", dir, err)
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	for x := -15; x <= 30; x++ {
		for n := 0; n <= 24; n++ {
			up, err := TransposePitchClass(x, n, Up)
			if err != nil {
				t.Fatal(err)
			}
			back, err := TransposePitchClass(up, n, Down)
			if err != nil {
				t.Fatal(err)
			}
			if back != mod12(x) {
				t.Fatalf("round trip of %d by %d = %d, want %d", x, n, back, mod12(x))
			}
			if Transpose(x, n) != up {
				t.Fatalf("Transpose(%d, %d) = %d, want %d", x, n, Transpose(x, n), up)
			}
		}
	}
}

func TestScaleTones(t *testing.T) {
	major, err := Scale("major")
	if err != nil {
		t.Fatal(err)
	}
	got := ScaleTones(0, major)
	want := []int{0, 2, 4, 5, 7, 9, 11, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("c major = %v, want %v", got, want)
	}

	dorian, err := Scale("Dorian")
	if err != nil {
		t.Fatal(err)
	}
	got = ScaleTones(2, dorian)
	want = []int{2, 4, 5, 7, 9, 11, 0, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("d dorian = %v, want %v", got, want)
	}

	// The start value is kept as given; later tones are wrapped.
	got = ScaleTones(14, []int{1, 1})
	want = []int{14, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScaleTones(14) = %v, want %v", got, want)
	}

	if got := ScaleTones(5, nil); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("empty pattern = %v", got)
	}

	if _, err := Scale("lydian"); !IsKind(err, UnknownScale) {
		t.Errorf("Scale(lydian) err = %v", err)
	}
}

func TestScaleCopiesAreIndependent(t *testing.T) {
	a, _ := Scale("major")
	a[0] = 99
	b, _ := Scale("major")
	if b[0] != 2 {
		t.Errorf("scale table was mutated through a returned slice")
	}
	r := Roots()
	r[0] = "x"
	if Roots()[0] != "c" {
		t.Errorf("root table was mutated through a returned slice")
	}
}

func TestSemitoneDistance(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 4, 4},
		{4, 0, 8},
		{7, 7, 0},
		{11, 0, 1},
		// No range check: out-of-range inputs follow the arithmetic.
		{0, 20, 20},
		{30, 0, -18},
	}
	for _, tt := range tests {
		if got := SemitoneDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("SemitoneDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIntervalName(t *testing.T) {
	name, err := IntervalName(0, 4)
	if err != nil || name != "M3" {
		t.Errorf("IntervalName(c, e) = %q, %v", name, err)
	}
	name, err = IntervalName(7, 0)
	if err != nil || name != "p4" {
		t.Errorf("IntervalName(g, c) = %q, %v", name, err)
	}
}

func TestErrorMessageCarriesInput(t *testing.T) {
	_, err := PitchClassName(42)
	if err == nil {
		t.Fatal("expected error")
	}
	te, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if te.Input != "42" || te.Op != "PitchClassName" {
		t.Errorf("error = %+v", te)
	}
	if msg := err.Error(); msg != `theory: PitchClassName: out of range: "42"` {
		t.Errorf("message = %s", msg)
	}
	if KindOf(nil) != 0 || IsKind(nil, OutOfRange) {
		t.Errorf("nil error has a kind")
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := PitchClassValue("c#"); err != nil {
					t.Error(err)
					return
				}
				if _, err := IntervalSemitones("p5"); err != nil {
					t.Error(err)
					return
				}
				ScaleTones(i, []int{2, 2, 1, 2, 2, 2, 1})
			}
		}(i)
	}
	wg.Wait()
}
