package chroma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-theory/theory"
)

// Match is the best-fitting transposition of a scale for a profile
type Match struct {
	Root     int     `json:"root"`
	RootName string  `json:"root_name"`
	Scale    string  `json:"scale"`
	Tones    []int   `json:"tones"`
	Score    float64 `json:"score"` // Pearson correlation with the scale template
}

// Normalize scales profile in place to unit sum. All-zero profiles are left alone.
func Normalize(profile []float64) {
	sum := floats.Sum(profile)
	if sum > 1e-10 {
		floats.Scale(1/sum, profile)
	}
}

// Average sums a chromagram over time into a unit-sum profile
func Average(chromagram [][]float64) []float64 {
	profile := make([]float64, theory.NumTones)
	for _, frame := range chromagram {
		if len(frame) == theory.NumTones {
			floats.Add(profile, frame)
		}
	}
	Normalize(profile)
	return profile
}

// ScaleTemplate marks with 1 every pitch class reached by walking steps
// up from root.
func ScaleTemplate(root int, steps []int) []float64 {
	template := make([]float64, theory.NumTones)
	for _, tone := range theory.ScaleTones(root, steps) {
		template[theory.Transpose(tone, 0)] = 1
	}
	return template
}

// Transpose rotates a 12-bin profile up by semitones
func Transpose(profile []float64, semitones int) []float64 {
	out := make([]float64, len(profile))
	if len(profile) != theory.NumTones {
		copy(out, profile)
		return out
	}
	for pc, v := range profile {
		out[theory.Transpose(pc, semitones)] = v
	}
	return out
}

// MatchScale finds the root whose transposition of the named scale
// correlates best with profile. Ties go to the lower root.
func MatchScale(profile []float64, scaleName string) (Match, error) {
	if len(profile) != theory.NumTones {
		return Match{}, fmt.Errorf("profile has %d bins, want %d", len(profile), theory.NumTones)
	}
	if floats.Max(profile) == floats.Min(profile) {
		return Match{}, fmt.Errorf("profile is flat, no scale can be matched")
	}

	steps, err := theory.Scale(scaleName)
	if err != nil {
		return Match{}, err
	}

	best := Match{Root: -1, Score: math.Inf(-1)}
	for root := range theory.NumTones {
		score := stat.Correlation(profile, ScaleTemplate(root, steps), nil)
		if math.IsNaN(score) {
			continue
		}
		if score > best.Score {
			best.Root = root
			best.Score = score
		}
	}
	if best.Root < 0 {
		return Match{}, fmt.Errorf("scale %q has no usable template", scaleName)
	}

	best.RootName, err = theory.PitchClassName(best.Root)
	if err != nil {
		return Match{}, err
	}
	best.Scale = scaleName
	best.Tones = theory.ScaleTones(best.Root, steps)
	return best, nil
}
