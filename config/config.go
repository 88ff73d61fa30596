package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/sonido-theory/algorithms/chroma"
	"github.com/RyanBlaney/sonido-theory/logging"
	"github.com/RyanBlaney/sonido-theory/theory"
)

// EnvPrefix prefixes environment overrides, e.g. SONIDO_ANALYSIS_TUNING.
const EnvPrefix = "SONIDO"

type Config struct {
	Log      LogConfig
	Analysis AnalysisConfig
	Scale    ScaleConfig
}

type LogConfig struct {
	Level string `validate:"loglevel"`
}

type AnalysisConfig struct {
	SampleRate int     `validate:"gt=0"`
	WindowSize int     `validate:"gt=0"`
	HopSize    int     `validate:"gt=0,ltefield=WindowSize"`
	Tuning     float64 `validate:"gt=0"`
	MinFreq    float64 `validate:"gte=0"`
	MaxFreq    float64 `validate:"gtfield=MinFreq"`
}

type ScaleConfig struct {
	Default string `validate:"required,scale"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	a := chroma.DefaultConfig()
	return &Config{
		Log: LogConfig{Level: "info"},
		Analysis: AnalysisConfig{
			SampleRate: a.SampleRate,
			WindowSize: a.WindowSize,
			HopSize:    a.HopSize,
			Tuning:     a.Tuning,
			MinFreq:    a.MinFreq,
			MaxFreq:    a.MaxFreq,
		},
		Scale: ScaleConfig{Default: "major"},
	}
}

// Load reads configuration from path, or from ./sonido.yaml or
// ./config/sonido.yaml when path is empty. A missing default file is not an
// error. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	} else {
		v.SetConfigName("sonido")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "reading config")
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Analysis: AnalysisConfig{
			SampleRate: v.GetInt("analysis.sample_rate"),
			WindowSize: v.GetInt("analysis.window_size"),
			HopSize:    v.GetInt("analysis.hop_size"),
			Tuning:     v.GetFloat64("analysis.tuning"),
			MinFreq:    v.GetFloat64("analysis.min_freq"),
			MaxFreq:    v.GetFloat64("analysis.max_freq"),
		},
		Scale: ScaleConfig{
			Default: strings.ToLower(v.GetString("scale.default")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("analysis.sample_rate", d.Analysis.SampleRate)
	v.SetDefault("analysis.window_size", d.Analysis.WindowSize)
	v.SetDefault("analysis.hop_size", d.Analysis.HopSize)
	v.SetDefault("analysis.tuning", d.Analysis.Tuning)
	v.SetDefault("analysis.min_freq", d.Analysis.MinFreq)
	v.SetDefault("analysis.max_freq", d.Analysis.MaxFreq)
	v.SetDefault("scale.default", d.Scale.Default)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("scale", func(fl validator.FieldLevel) bool {
		_, err := theory.Scale(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logging.ParseLevel(fl.Field().String())
		return err == nil
	})
	return validate
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	return errors.Wrap(newValidator().Struct(c), "invalid config")
}

// Chroma converts the analysis section for chroma.NewAnalyzer
func (a AnalysisConfig) Chroma() chroma.Config {
	return chroma.Config{
		SampleRate: a.SampleRate,
		WindowSize: a.WindowSize,
		HopSize:    a.HopSize,
		Tuning:     a.Tuning,
		MinFreq:    a.MinFreq,
		MaxFreq:    a.MaxFreq,
	}
}

// LogLevel parses Log.Level
func (c *Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}
