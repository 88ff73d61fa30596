package chroma

import (
	"fmt"

	"github.com/RyanBlaney/sonido-theory/algorithms/spectral"
	"github.com/RyanBlaney/sonido-theory/algorithms/windowing"
	"github.com/RyanBlaney/sonido-theory/logging"
	"github.com/RyanBlaney/sonido-theory/theory"
)

// Config holds the analysis parameters for an Analyzer
type Config struct {
	SampleRate int     `json:"sample_rate"`
	WindowSize int     `json:"window_size"`
	HopSize    int     `json:"hop_size"`
	Tuning     float64 `json:"tuning"`   // A4 in Hz
	MinFreq    float64 `json:"min_freq"` // bins below are ignored
	MaxFreq    float64 `json:"max_freq"` // bins above are ignored
}

// DefaultConfig returns settings suitable for 44.1 kHz music
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		WindowSize: 4096,
		HopSize:    2048,
		Tuning:     DefaultTuning,
		MinFreq:    80.0,   // Approximate E2
		MaxFreq:    5000.0, // High enough for harmonics
	}
}

// Analyzer folds the spectrum of audio frames into 12 pitch-class bins
type Analyzer struct {
	cfg     Config
	fft     *spectral.FFT
	window  *windowing.Hann
	mapping []int // FFT bin -> pitch class, -1 when outside [MinFreq, MaxFreq]
	logger  logging.Logger
}

// NewAnalyzer creates an analyzer for the given configuration
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.SampleRate <= 0 || cfg.WindowSize <= 0 || cfg.HopSize <= 0 {
		return nil, fmt.Errorf("invalid analysis config: sample rate %d, window %d, hop %d",
			cfg.SampleRate, cfg.WindowSize, cfg.HopSize)
	}
	if cfg.Tuning <= 0 || cfg.MinFreq >= cfg.MaxFreq {
		return nil, fmt.Errorf("invalid analysis config: tuning %.2f, range [%.2f, %.2f]",
			cfg.Tuning, cfg.MinFreq, cfg.MaxFreq)
	}

	a := &Analyzer{
		cfg:    cfg,
		fft:    spectral.NewFFT(),
		window: windowing.NewHann(cfg.WindowSize, false),
		logger: logging.WithFields(logging.Fields{
			"component": "chroma_analyzer",
		}),
	}
	a.mapping = a.binMapping()
	return a, nil
}

// binMapping precomputes the pitch class of every non-negative FFT bin
func (a *Analyzer) binMapping() []int {
	bins := a.cfg.WindowSize/2 + 1
	mapping := make([]int, bins)

	for k := range bins {
		frequency := spectral.BinFrequency(k, a.cfg.WindowSize, a.cfg.SampleRate)
		if frequency < a.cfg.MinFreq || frequency > a.cfg.MaxFreq {
			mapping[k] = -1
			continue
		}
		pc, err := FrequencyToPitchClass(frequency, a.cfg.Tuning)
		if err != nil {
			mapping[k] = -1
			continue
		}
		mapping[k] = pc
	}
	return mapping
}

// Chroma computes the unit-sum pitch-class energy of one frame. The frame
// must be exactly WindowSize samples long.
func (a *Analyzer) Chroma(frame []float64) ([]float64, error) {
	windowed, err := a.window.Apply(frame)
	if err != nil {
		return nil, err
	}

	chroma := make([]float64, theory.NumTones)
	for k, magnitude := range a.fft.MagnitudeSpectrum(windowed) {
		if pc := a.mapping[k]; pc >= 0 {
			chroma[pc] += magnitude * magnitude
		}
	}

	Normalize(chroma)
	return chroma, nil
}

// Chromagram computes one chroma vector per hop. Signals shorter than one
// window produce no frames.
func (a *Analyzer) Chromagram(signal []float64) ([][]float64, error) {
	var chromagram [][]float64
	for start := 0; start+a.cfg.WindowSize <= len(signal); start += a.cfg.HopSize {
		frame, err := a.Chroma(signal[start : start+a.cfg.WindowSize])
		if err != nil {
			return nil, err
		}
		chromagram = append(chromagram, frame)
	}

	a.logger.Debug("Chromagram computed", logging.Fields{
		"samples": len(signal),
		"frames":  len(chromagram),
		"window":  a.cfg.WindowSize,
		"hop":     a.cfg.HopSize,
	})
	return chromagram, nil
}

// Dominant returns the pitch class with the most energy in a chroma vector.
// Ties go to the lower pitch class.
func Dominant(chroma []float64) int {
	best := 0
	for pc := range chroma {
		if chroma[pc] > chroma[best] {
			best = pc
		}
	}
	return best
}

// Labels returns the canonical name of each chroma bin
func Labels() []string {
	return theory.CanonicalNotes()
}
