// Package cli contains the navframe command line tool.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	flagConfig  = "config"
	flagDebug   = "debug"
	flagDegrees = "degrees"
	flagRoll    = "roll"
	flagPitch   = "pitch"
	flagYaw     = "yaw"
	flagMin     = "min"
	flagMax     = "max"
)

const appDescription = `Positional values come after any flags. Put -- before them when one is negative,
otherwise it is read as a flag:

   navframe --degrees body-from-ned --yaw 90 -- -3 1.5 0`

func attitudeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  flagRoll,
			Usage: "vehicle roll, rotation about the forward axis",
		},
		&cli.Float64Flag{
			Name:  flagPitch,
			Usage: "vehicle pitch, rotation about the right axis",
		},
		&cli.Float64Flag{
			Name:  flagYaw,
			Usage: "vehicle yaw (heading), rotation about the down axis",
		},
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  flagMin,
			Usage: "lower bound, defaults to the config clamp min or -1",
		},
		&cli.Float64Flag{
			Name:  flagMax,
			Usage: "upper bound, defaults to the config clamp max or 1",
		},
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	state := &appState{}
	app := &cli.App{
		Name:            "navframe",
		Usage:           "convert vehicle velocities between the NED and body frames",
		Description:     appDescription,
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load conversion defaults from `FILE`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  flagDegrees,
				Usage: "read and print angles in degrees instead of radians",
			},
		},
		Before: state.before,
		Commands: []*cli.Command{
			{
				Name:      "body-from-ned",
				Usage:     "express a north/east/down velocity in the body frame",
				UsageText: "navframe body-from-ned [--roll R] [--pitch P] [--yaw Y] [--] <north> <east> <down>",
				Flags:     attitudeFlags(),
				Action:    state.BodyFromNEDAction,
			},
			{
				Name:      "ned-from-body",
				Usage:     "express a forward/right/down velocity in the NED frame",
				UsageText: "navframe ned-from-body [--roll R] [--pitch P] [--yaw Y] [--] <forward> <right> <down>",
				Flags:     attitudeFlags(),
				Action:    state.NEDFromBodyAction,
			},
			{
				Name:      "matrix",
				Usage:     "print the body to NED rotation matrix for an attitude",
				UsageText: "navframe matrix [--roll R] [--pitch P] [--yaw Y]",
				Flags:     attitudeFlags(),
				Action:    state.MatrixAction,
			},
			{
				Name:      "angle-diff",
				Usage:     "print the shortest signed angle from a2 to a1",
				UsageText: "navframe angle-diff [--] <a1> <a2>",
				Action:    state.AngleDiffAction,
			},
			{
				Name:      "clamp",
				Usage:     "bound a value to [min, max]",
				UsageText: "navframe clamp [--min MIN] [--max MAX] [--] <value>",
				Flags:     rangeFlags(),
				Action:    state.ClampAction,
			},
			{
				Name:      "normalize",
				Usage:     "clamp a value to [min, max] and scale it onto [-1, 1]",
				UsageText: "navframe normalize [--min MIN] [--max MAX] [--] <value>",
				Flags:     rangeFlags(),
				Action:    state.NormalizeAction,
			},
		},
	}
	for _, cmd := range app.Commands {
		cmd.OnUsageError = usageError(cmd.UsageText)
	}
	return app
}

// usageError explains a flag parse failure with the command's usage. A negative positional value
// fails as an undefined flag, for that case the error says to put -- first.
func usageError(usageText string) cli.OnUsageErrorFunc {
	return func(_ *cli.Context, err error, _ bool) error {
		const notDefined = "flag provided but not defined: "
		if i := strings.Index(err.Error(), notDefined); i >= 0 {
			if _, parseErr := strconv.ParseFloat(err.Error()[i+len(notDefined):], 64); parseErr == nil {
				return errors.Wrapf(err, "negative values must follow --, usage: %s", usageText)
			}
		}
		return errors.Wrapf(err, "usage: %s", usageText)
	}
}

func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
