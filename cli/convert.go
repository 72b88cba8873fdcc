package cli

import (
	"math"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/navframe/config"
	"go.viam.com/navframe/logging"
	"go.viam.com/navframe/utils"
	"go.viam.com/navframe/vehicleframe"
)

// appState holds what the global flags resolve to. It is filled in by before.
type appState struct {
	logger  logging.Logger
	conf    *config.Config
	degrees bool
}

func (s *appState) before(c *cli.Context) error {
	s.logger = logging.NewBlankLogger("navframe")
	s.logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	s.logger.SetLevel(logging.WARN)
	if c.Bool(flagDebug) {
		s.logger.SetLevel(logging.DEBUG)
	}

	s.conf = &config.Config{}
	if path := c.String(flagConfig); path != "" {
		conf, err := config.Read(path, s.logger)
		if err != nil {
			return err
		}
		s.conf = conf
		if conf.Debug {
			s.logger.SetLevel(logging.DEBUG)
		}
	}
	s.degrees = c.Bool(flagDegrees) || s.conf.Units() == config.Degrees
	return nil
}

// attitude starts from the configured attitude and overrides each angle given as a flag.
func (s *appState) attitude(c *cli.Context) vehicleframe.Attitude {
	att := s.conf.VehicleAttitude()
	for name, angle := range map[string]*float64{flagRoll: &att.Roll, flagPitch: &att.Pitch, flagYaw: &att.Yaw} {
		if c.IsSet(name) {
			*angle = s.toRadians(c.Float64(name))
		}
	}
	return att
}

func (s *appState) toRadians(angle float64) float64 {
	if s.degrees {
		return utils.DegToRad(angle)
	}
	return angle
}

func (s *appState) fromRadians(angle float64) float64 {
	if s.degrees {
		return utils.RadToDeg(angle)
	}
	return angle
}

// bounds returns the clamp interval from the flags, falling back to the config.
func (s *appState) bounds(c *cli.Context) (float64, float64, error) {
	lo, hi := s.conf.ClampBounds()
	if c.IsSet(flagMin) {
		lo = c.Float64(flagMin)
	}
	if c.IsSet(flagMax) {
		hi = c.Float64(flagMax)
	}
	r := config.RangeConfig{Min: lo, Max: hi}
	if err := r.Validate("range"); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// BodyFromNEDAction is the corresponding action for 'body-from-ned'.
func (s *appState) BodyFromNEDAction(c *cli.Context) error {
	v, err := vectorArg(c)
	if err != nil {
		return err
	}
	att := s.attitude(c)
	body := vehicleframe.BodyFromNED(vehicleframe.NEDVelocityFromVector(v), att)
	s.logger.Debugw("converted to body frame", "attitude", att.EulerAngles().String(), "ned", v, "body", body)
	printf(c.App.Writer, "forward=%.6f right=%.6f down=%.6f",
		tidy(body.ForwardMPS), tidy(body.RightMPS), tidy(body.DownMPS))
	return nil
}

// NEDFromBodyAction is the corresponding action for 'ned-from-body'.
func (s *appState) NEDFromBodyAction(c *cli.Context) error {
	v, err := vectorArg(c)
	if err != nil {
		return err
	}
	att := s.attitude(c)
	ned := vehicleframe.NEDFromBody(vehicleframe.BodyVelocityFromVector(v), att)
	s.logger.Debugw("converted to NED frame", "attitude", att.EulerAngles().String(), "body", v, "ned", ned)
	printf(c.App.Writer, "north=%.6f east=%.6f down=%.6f",
		tidy(ned.NorthMPS), tidy(ned.EastMPS), tidy(ned.DownMPS))
	return nil
}

// AngleDiffAction is the corresponding action for 'angle-diff'.
func (s *appState) AngleDiffAction(c *cli.Context) error {
	args, err := floatArgs(c, 2)
	if err != nil {
		return err
	}
	diff := utils.AngleDifference(s.toRadians(args[0]), s.toRadians(args[1]))
	printf(c.App.Writer, "%.6f", tidy(s.fromRadians(diff)))
	return nil
}

// ClampAction is the corresponding action for 'clamp'.
func (s *appState) ClampAction(c *cli.Context) error {
	args, err := floatArgs(c, 1)
	if err != nil {
		return err
	}
	lo, hi, err := s.bounds(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%g", utils.ClampToRange(args[0], lo, hi))
	return nil
}

// NormalizeAction is the corresponding action for 'normalize'.
func (s *appState) NormalizeAction(c *cli.Context) error {
	args, err := floatArgs(c, 1)
	if err != nil {
		return err
	}
	lo, hi, err := s.bounds(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%g", utils.Normalize(args[0], lo, hi))
	return nil
}

func vectorArg(c *cli.Context) (r3.Vector, error) {
	args, err := floatArgs(c, 3)
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: args[0], Y: args[1], Z: args[2]}, nil
}

func floatArgs(c *cli.Context, n int) ([]float64, error) {
	if c.NArg() != n {
		return nil, errors.Errorf("expected %d arguments but got %d, usage: %s", n, c.NArg(), c.Command.UsageText)
	}
	out := make([]float64, n)
	for i := range out {
		v, err := strconv.ParseFloat(c.Args().Get(i), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// tidy rounds values that would print as -0.000000 to zero.
func tidy(v float64) float64 {
	if math.Abs(v) < 5e-7 {
		return 0
	}
	return v
}
