package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/RyanBlaney/sonido-theory/algorithms/chroma"
	"github.com/RyanBlaney/sonido-theory/config"
	"github.com/RyanBlaney/sonido-theory/logging"
	"github.com/RyanBlaney/sonido-theory/theory"
)

func loadedConfig(ctx *cli.Context) *config.Config {
	if cfg, ok := ctx.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func requireArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() < n {
		_ = cli.ShowCommandHelp(ctx, ctx.Command.Name)
		return cli.NewExitError(fmt.Sprintf("%s: expected %d argument(s), got %d", ctx.Command.Name, n, ctx.NArg()), 2)
	}
	return nil
}

// pitchClassOf resolves a note spelling to a pitch class in [0, 11]
func pitchClassOf(note string) (int, error) {
	if _, err := theory.ParseNoteName(note); err != nil {
		return 0, err
	}
	v, err := theory.PitchClassValue(note)
	if err != nil {
		return 0, err
	}
	return theory.Transpose(v, 0), nil
}

func exitError(err error, format string, args ...any) error {
	return cli.NewExitError(errors.Wrapf(err, format, args...), 1)
}

func names(tones []int) ([]string, error) {
	out := make([]string, len(tones))
	for i, pc := range tones {
		name, err := theory.PitchClassName(theory.Transpose(pc, 0))
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}

var noteCmd = cli.Command{
	Name:      "note",
	Aliases:   []string{"n"},
	Usage:     "Parses note names and shows their pitch values",
	ArgsUsage: "<note>...",
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 1); err != nil {
			return err
		}
		for _, arg := range ctx.Args() {
			parts, err := theory.ParseNoteName(arg)
			if err != nil {
				return exitError(err, "note %s", arg)
			}
			v, err := theory.LookupNoteValue(arg)
			if err != nil {
				return exitError(err, "note %s", arg)
			}
			name, err := theory.PitchClassName(theory.Transpose(v.IntVal, 0))
			if err != nil {
				return exitError(err, "note %s", arg)
			}
			acc := parts.Accidental
			if !parts.HasAccidental {
				acc = "-"
			}
			fmt.Fprintf(ctx.App.Writer, "%s root=%s accidental=%s root-index=%d value=%d pitch-class=%s\n",
				arg, parts.Root, acc, v.RootIndex, v.IntVal, name)
		}
		return nil
	},
}

var intervalCmd = cli.Command{
	Name:      "interval",
	Aliases:   []string{"i"},
	Usage:     "Shows the size of named intervals",
	ArgsUsage: "<interval>...",
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 1); err != nil {
			return err
		}
		for _, arg := range ctx.Args() {
			semitones, err := theory.IntervalSemitones(arg)
			if err != nil {
				return exitError(err, "interval %s", arg)
			}
			// 12 has no canonical label through DiatonicIntervalName
			label := "-"
			if name, err := theory.DiatonicIntervalName(semitones); err == nil {
				label = name
			}
			fmt.Fprintf(ctx.App.Writer, "%s semitones=%d canonical=%s\n", arg, semitones, label)
		}
		return nil
	},
}

var nameCmd = cli.Command{
	Name:      "name",
	Usage:     "Shows the canonical name of a pitch class (0..11)",
	ArgsUsage: "<value>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "interval, i",
			Usage: `Name an interval size instead of a pitch class`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 1); err != nil {
			return err
		}
		arg := ctx.Args().First()
		v, err := strconv.Atoi(arg)
		if err != nil {
			return exitError(err, "value %s", arg)
		}
		var name string
		if ctx.Bool("interval") {
			name, err = theory.DiatonicIntervalName(v)
		} else {
			name, err = theory.PitchClassName(v)
		}
		if err != nil {
			return exitError(err, "value %s", arg)
		}
		fmt.Fprintln(ctx.App.Writer, name)
		return nil
	},
}

var transposeCmd = cli.Command{
	Name:      "transpose",
	Aliases:   []string{"t"},
	Usage:     "Transposes a note by an interval",
	ArgsUsage: "<note> <interval>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "down, D",
			Usage: `Transpose downwards`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 2); err != nil {
			return err
		}
		note, interval := ctx.Args().Get(0), ctx.Args().Get(1)
		pc, err := pitchClassOf(note)
		if err != nil {
			return exitError(err, "transpose %s", note)
		}
		semitones, err := theory.IntervalSemitones(interval)
		if err != nil {
			return exitError(err, "transpose by %s", interval)
		}
		direction := theory.Up
		if ctx.Bool("down") {
			direction = theory.Down
		}
		result, err := theory.TransposePitchClass(pc, semitones, direction)
		if err != nil {
			return exitError(err, "transpose %s", note)
		}
		name, err := theory.PitchClassName(result)
		if err != nil {
			return exitError(err, "transpose %s", note)
		}
		logging.Debug("Transposed", logging.Fields{
			"from": pc, "semitones": semitones, "direction": direction, "to": result,
		})
		fmt.Fprintf(ctx.App.Writer, "%s %d\n", name, result)
		return nil
	},
}

var scaleCmd = cli.Command{
	Name:      "scale",
	Aliases:   []string{"s"},
	Usage:     "Lists the tones of a scale",
	ArgsUsage: "<key>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "scale, s",
			Usage: `Scale name (` + strings.Join(theory.ScaleNames(), "|") + `); defaults to scale.default from config`,
		},
		cli.StringFlag{
			Name:  "steps",
			Usage: `Comma separated semitone steps, overrides --scale`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 1); err != nil {
			return err
		}
		key := ctx.Args().First()
		root, err := pitchClassOf(key)
		if err != nil {
			return exitError(err, "scale key %s", key)
		}

		var steps []int
		if raw := ctx.String("steps"); raw != "" {
			for _, f := range strings.Split(raw, ",") {
				step, err := strconv.Atoi(strings.TrimSpace(f))
				if err != nil {
					return exitError(err, "step %q", f)
				}
				steps = append(steps, step)
			}
		} else {
			scale := ctx.String("scale")
			if scale == "" {
				scale = loadedConfig(ctx).Scale.Default
			}
			steps, err = theory.Scale(scale)
			if err != nil {
				return exitError(err, "scale %s", scale)
			}
		}

		tones := theory.ScaleTones(root, steps)
		toneNames, err := names(tones)
		if err != nil {
			return exitError(err, "scale %s", key)
		}
		fmt.Fprintln(ctx.App.Writer, strings.Join(toneNames, " "))
		return nil
	},
}

var distanceCmd = cli.Command{
	Name:      "distance",
	Usage:     "Shows the upward interval between two notes",
	ArgsUsage: "<from> <to>",
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 2); err != nil {
			return err
		}
		from, to := ctx.Args().Get(0), ctx.Args().Get(1)
		a, err := pitchClassOf(from)
		if err != nil {
			return exitError(err, "distance from %s", from)
		}
		b, err := pitchClassOf(to)
		if err != nil {
			return exitError(err, "distance to %s", to)
		}
		name, err := theory.IntervalName(a, b)
		if err != nil {
			return exitError(err, "distance %s %s", from, to)
		}
		fmt.Fprintf(ctx.App.Writer, "%d %s\n", theory.SemitoneDistance(a, b), name)
		return nil
	},
}

var frequencyCmd = cli.Command{
	Name:      "frequency",
	Aliases:   []string{"f"},
	Usage:     "Shows the nearest pitch class of a frequency in Hz",
	ArgsUsage: "<hz>",
	Flags: []cli.Flag{
		cli.Float64Flag{
			Name:  "tuning",
			Usage: `A4 reference in Hz; defaults to analysis.tuning from config`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, 1); err != nil {
			return err
		}
		arg := ctx.Args().First()
		hz, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return exitError(err, "frequency %s", arg)
		}
		tuning := ctx.Float64("tuning")
		if tuning == 0 {
			tuning = loadedConfig(ctx).Analysis.Tuning
		}
		pc, err := chroma.FrequencyToPitchClass(hz, tuning)
		if err != nil {
			return exitError(err, "frequency %s", arg)
		}
		name, err := theory.PitchClassName(pc)
		if err != nil {
			return exitError(err, "frequency %s", arg)
		}
		fmt.Fprintf(ctx.App.Writer, "%s %d\n", name, pc)
		return nil
	},
}

var matchCmd = cli.Command{
	Name:      "match",
	Aliases:   []string{"m"},
	Usage:     "Finds the key whose scale best fits a 12-bin pitch-class profile",
	ArgsUsage: "<c> <c#> <d> ... <b>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "scale, s",
			Usage: `Scale name; defaults to scale.default from config`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if err := requireArgs(ctx, theory.NumTones); err != nil {
			return err
		}
		profile := make([]float64, 0, theory.NumTones)
		for _, arg := range ctx.Args()[:theory.NumTones] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return exitError(err, "profile value %s", arg)
			}
			profile = append(profile, v)
		}
		chroma.Normalize(profile)

		scale := ctx.String("scale")
		if scale == "" {
			scale = loadedConfig(ctx).Scale.Default
		}
		m, err := chroma.MatchScale(profile, scale)
		if err != nil {
			return exitError(err, "match %s", scale)
		}
		fmt.Fprintf(ctx.App.Writer, "%s %s %.3f\n", m.RootName, m.Scale, m.Score)
		return nil
	},
}
