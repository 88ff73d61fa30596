// Package theory converts between note names, pitch classes and interval
// names in 12-tone equal temperament, and derives scale tones from a key
// and a step pattern.
//
// Every function is a pure query over package-level tables that are never
// modified after initialization, so the package is safe for concurrent use.
package theory

import (
	"sort"
	"strings"
)

// Transposition directions.
const (
	Up   = 1
	Down = -1
)

// NoteParts is a note name split into its root letter and accidental.
type NoteParts struct {
	Root       string
	Accidental string // "", "n", "#", "##", "b" or "bb"
	// HasAccidental distinguishes an explicit natural ("cn") from a bare root ("c").
	HasAccidental bool
}

// String reassembles the lower-case spelling.
func (p NoteParts) String() string {
	return p.Root + p.Accidental
}

// ParseNoteName splits a 1-3 character note name such as "C#" or "ebb".
// Matching is case-insensitive.
func ParseNoteName(s string) (NoteParts, error) {
	const op = "ParseNoteName"
	if len(s) < 1 || len(s) > 3 {
		return NoteParts{}, newError(InvalidNoteName, op, s)
	}

	note := strings.ToLower(s)
	root := note[:1]
	if !isRoot(root) {
		return NoteParts{}, newError(InvalidNoteName, op, s)
	}

	acc := note[1:]
	if acc == "" {
		return NoteParts{Root: root}, nil
	}
	if !isAccidental(acc) {
		return NoteParts{}, newError(InvalidNoteName, op, s)
	}
	return NoteParts{Root: root, Accidental: acc, HasAccidental: true}, nil
}

func isRoot(s string) bool {
	for _, r := range roots {
		if s == r {
			return true
		}
	}
	return false
}

func isAccidental(s string) bool {
	for _, a := range accidentals {
		if s == a {
			return true
		}
	}
	return false
}

// LookupNoteValue returns the table entry for a note spelling.
func LookupNoteValue(s string) (NoteValue, error) {
	v, ok := noteValues[strings.ToLower(s)]
	if !ok {
		return NoteValue{}, newError(UnknownNoteValue, "LookupNoteValue", s)
	}
	return v, nil
}

// PitchClassValue returns the signed semitone value of a note spelling
// relative to c. The result is not wrapped: "cb" is -1 and "b#" is 12.
func PitchClassValue(s string) (int, error) {
	v, ok := noteValues[strings.ToLower(s)]
	if !ok {
		return 0, newError(UnknownNoteValue, "PitchClassValue", s)
	}
	return v.IntVal, nil
}

// IntervalSemitones returns the size of a named interval. Names are case
// sensitive: "M3" is a major third and "m3" a minor third.
func IntervalSemitones(name string) (int, error) {
	v, ok := intervals[name]
	if !ok {
		return 0, newError(UnknownInterval, "IntervalSemitones", name)
	}
	return v, nil
}

// PitchClassName returns the sharp spelling of a pitch class in [0, 11].
func PitchClassName(v int) (string, error) {
	if v < 0 || v > NumTones-1 {
		return "", newError(OutOfRange, "PitchClassName", v)
	}
	return canonicalNotes[v], nil
}

// DiatonicIntervalName returns the canonical label for a semitone distance
// in [0, 11]. Twelve is rejected even though the table ends with "octave".
func DiatonicIntervalName(v int) (string, error) {
	if v < 0 || v > NumTones-1 {
		return "", newError(OutOfRange, "DiatonicIntervalName", v)
	}
	return diatonicIntervals[v], nil
}

// TransposePitchClass moves pc by semitones in direction (Up or Down) and
// wraps the result into [0, 11].
func TransposePitchClass(pc, semitones, direction int) (int, error) {
	if direction != Up && direction != Down {
		return 0, newError(InvalidDirection, "TransposePitchClass", direction)
	}
	return mod12(pc + direction*semitones), nil
}

// Transpose is TransposePitchClass with direction Up.
func Transpose(pc, semitones int) int {
	return mod12(pc + semitones)
}

func mod12(v int) int {
	v %= NumTones
	if v < 0 {
		v += NumTones
	}
	return v
}

// ScaleTones walks steps upward from start. The result holds the start
// value followed by one wrapped tone per step. The steps are not required
// to sum to an octave.
func ScaleTones(start int, steps []int) []int {
	tones := make([]int, 0, len(steps)+1)
	tones = append(tones, start)

	next := start
	for _, step := range steps {
		next = Transpose(next, step)
		tones = append(tones, next)
	}
	return tones
}

// SemitoneDistance returns the upward distance from a to b. Inputs are not
// range checked; for pitch classes in [0, 11] the result is in [0, 11].
func SemitoneDistance(a, b int) int {
	d := b - a
	if d < 0 {
		d += NumTones
	}
	return d
}

// IntervalName labels the upward interval from a to b, e.g. c to e is "M3".
func IntervalName(a, b int) (string, error) {
	return DiatonicIntervalName(SemitoneDistance(a, b))
}

// Scale returns a copy of the named step pattern.
func Scale(name string) ([]int, error) {
	steps, ok := scales[strings.ToLower(name)]
	if !ok {
		return nil, newError(UnknownScale, "Scale", name)
	}
	out := make([]int, len(steps))
	copy(out, steps)
	return out, nil
}

// ScaleNames lists the known step patterns in alphabetical order.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
