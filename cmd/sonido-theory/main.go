package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/RyanBlaney/sonido-theory/config"
	"github.com/RyanBlaney/sonido-theory/logging"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

const configKey = "config"

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "sonido-theory"
	app.HelpName = "sonido-theory"
	app.Version = version
	app.Usage = "Note, interval and scale calculations in 12-tone equal temperament"
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: `Config file (default ./sonido.yaml if present)`,
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Only show warnings and errors`,
		},
	}

	app.Before = func(ctx *cli.Context) error {
		cfg, err := config.Load(ctx.String("config"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		level := cfg.LogLevel()
		if ctx.Bool("debug") {
			level = logging.DebugLevel
		} else if ctx.Bool("quiet") {
			level = logging.WarnLevel
		}
		logging.SetLevel(level)
		ctx.App.Metadata[configKey] = cfg
		logging.Debug("Config loaded", logging.Fields{
			"scale":  cfg.Scale.Default,
			"tuning": cfg.Analysis.Tuning,
		})
		return nil
	}

	app.Commands = []cli.Command{
		noteCmd,
		intervalCmd,
		nameCmd,
		transposeCmd,
		scaleCmd,
		distanceCmd,
		frequencyCmd,
		matchCmd,
	}

	app.Action = func(ctx *cli.Context) error {
		return cli.ShowAppHelp(ctx)
	}
	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logging.Error(err, "sonido-theory failed")
		os.Exit(1)
	}
}
