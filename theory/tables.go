package theory

// NumTones is the number of pitch classes in the chromatic octave.
const NumTones = 12

var roots = [...]string{"c", "d", "e", "f", "g", "a", "b"}

// Sharp spellings only; index is the semitone offset from c.
var canonicalNotes = [NumTones]string{
	"c", "c#", "d", "d#",
	"e", "f", "f#", "g",
	"g#", "a", "a#", "b",
}

// Index 12 ("octave") exists but DiatonicIntervalName only accepts 0..11.
var diatonicIntervals = [NumTones + 1]string{
	"unison", "m2", "M2", "m3", "M3",
	"p4", "dim5", "p5", "aug5", "M6",
	"b7", "M7", "octave",
}

var intervals = map[string]int{
	"u": 0, "unison": 0,
	"m2": 1, "b2": 1, "min2": 1, "S": 1, "H": 1,
	"2": 2, "M2": 2, "maj2": 2, "T": 2, "W": 2,
	"m3": 3, "b3": 3, "min3": 3,
	"M3": 4, "3": 4, "maj3": 4,
	"4": 5, "p4": 5,
	"#4": 6, "b5": 6, "aug4": 6, "dim5": 6,
	"5": 7, "p5": 7,
	"#5": 8, "b6": 8, "aug5": 8,
	"6": 9, "M6": 9, "maj6": 9,
	"b7": 10, "m7": 10, "min7": 10, "dom7": 10,
	"M7": 11, "maj7": 11,
	"8": 12, "octave": 12,
}

var scales = map[string][]int{
	"major":  {2, 2, 1, 2, 2, 2, 1},
	"dorian": {2, 1, 2, 2, 2, 1, 2},
}

// Display order.
var accidentals = [...]string{"bb", "b", "n", "#", "##"}

// NoteValue is an entry of the note spelling table.
type NoteValue struct {
	RootIndex int // position of the root letter in c, d, e, f, g, a, b
	IntVal    int // semitones above c, not wrapped (cbb is -2, b## is 13)
}

var noteValues = map[string]NoteValue{
	"c":   {0, 0},
	"cn":  {0, 0},
	"c#":  {0, 1},
	"c##": {0, 2},
	"cb":  {0, -1},
	"cbb": {0, -2},
	"d":   {1, 2},
	"dn":  {1, 2},
	"d#":  {1, 3},
	"d##": {1, 4},
	"db":  {1, 1},
	"dbb": {1, 0},
	"e":   {2, 4},
	"en":  {2, 4},
	"e#":  {2, 5},
	"e##": {2, 6},
	"eb":  {2, 3},
	"ebb": {2, 2},
	"f":   {3, 5},
	"fn":  {3, 5},
	"f#":  {3, 6},
	"f##": {3, 7},
	"fb":  {3, 4},
	"fbb": {3, 3},
	"g":   {4, 7},
	"gn":  {4, 7},
	"g#":  {4, 8},
	"g##": {4, 9},
	"gb":  {4, 6},
	"gbb": {4, 5},
	"a":   {5, 9},
	"an":  {5, 9},
	"a#":  {5, 10},
	"a##": {5, 11},
	"ab":  {5, 8},
	"abb": {5, 7},
	"b":   {6, 11},
	"bn":  {6, 11},
	"b#":  {6, 12},
	"b##": {6, 13},
	"bb":  {6, 10},
	"bbb": {6, 9},
}

// Roots returns the seven diatonic root letters, c first.
func Roots() []string {
	out := make([]string, len(roots))
	copy(out, roots[:])
	return out
}

// Accidentals returns the accidental tokens in display order.
func Accidentals() []string {
	out := make([]string, len(accidentals))
	copy(out, accidentals[:])
	return out
}

// CanonicalNotes returns the sharp-spelled name of every pitch class.
func CanonicalNotes() []string {
	out := make([]string, NumTones)
	copy(out, canonicalNotes[:])
	return out
}

// DiatonicIntervals returns the canonical interval labels, unison through octave.
func DiatonicIntervals() []string {
	out := make([]string, len(diatonicIntervals))
	copy(out, diatonicIntervals[:])
	return out
}
