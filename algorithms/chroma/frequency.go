package chroma

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-theory/theory"
)

const (
	// DefaultTuning is the A4 reference frequency in Hz.
	DefaultTuning = 440.0

	pitchClassA = 9
	midiA4      = 69
)

// FrequencyToMIDI converts a frequency to a fractional MIDI note number
// with A4 at tuning Hz.
func FrequencyToMIDI(frequency, tuning float64) float64 {
	if frequency <= 0 || tuning <= 0 {
		return 0
	}
	return midiA4 + 12.0*math.Log2(frequency/tuning)
}

// FrequencyToPitchClass returns the nearest equal-tempered pitch class for
// frequency, counting from A at tuning Hz.
func FrequencyToPitchClass(frequency, tuning float64) (int, error) {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return 0, &theory.Error{Kind: theory.OutOfRange, Op: "FrequencyToPitchClass", Input: fmt.Sprint(frequency)}
	}
	if tuning <= 0 || math.IsNaN(tuning) || math.IsInf(tuning, 0) {
		return 0, &theory.Error{Kind: theory.OutOfRange, Op: "FrequencyToPitchClass", Input: fmt.Sprint(tuning)}
	}

	semitones := int(math.Round(FrequencyToMIDI(frequency, tuning))) - midiA4
	return theory.Transpose(pitchClassA, semitones), nil
}
