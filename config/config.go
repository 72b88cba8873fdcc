// Package config defines the conversion profile read by navframe tools: the default attitude,
// the units its angles are written in and the bounds used for clamping.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/navframe/vehicleframe"
)

// AngleUnits names the unit that angles in a config are written in.
type AngleUnits string

// The supported angle units.
const (
	Radians AngleUnits = "radians"
	Degrees AngleUnits = "degrees"
)

// Default clamp bounds used when a config has none.
const (
	DefaultClampMin = -1.
	DefaultClampMax = 1.
)

// Config describes the defaults for frame conversions.
type Config struct {
	AngleUnits AngleUnits     `json:"angle_units,omitempty"`
	Attitude   AttitudeConfig `json:"attitude"`
	Clamp      *RangeConfig   `json:"clamp,omitempty"`
	Debug      bool           `json:"debug,omitempty"`

	ConfigFilePath string `json:"-"`
}

// AttitudeConfig is an attitude in the config's angle units.
type AttitudeConfig struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// RangeConfig is a closed interval.
type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate ensures all parts of the config are valid. path is the location of the config in its
// parent and is prefixed onto every error.
func (c *Config) Validate(path string) error {
	var errs error
	switch c.AngleUnits {
	case "", Radians, Degrees:
	default:
		errs = multierr.Append(errs, newValidationError(
			fieldPath(path, "angle_units"),
			errors.Errorf("unknown angle units %q, must be %q or %q", c.AngleUnits, Radians, Degrees)))
	}
	if c.Clamp != nil {
		if err := c.Clamp.Validate(fieldPath(path, "clamp")); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Validate ensures the interval is not inverted.
func (r *RangeConfig) Validate(path string) error {
	if r.Min > r.Max {
		return newValidationError(path, errors.Errorf("min %v is greater than max %v", r.Min, r.Max))
	}
	return nil
}

// Units returns the configured angle units, defaulting to radians.
func (c *Config) Units() AngleUnits {
	if c.AngleUnits == "" {
		return Radians
	}
	return c.AngleUnits
}

// VehicleAttitude returns the configured attitude converted to radians.
func (c *Config) VehicleAttitude() vehicleframe.Attitude {
	if c.Units() == Degrees {
		return vehicleframe.NewAttitudeFromDegrees(c.Attitude.Roll, c.Attitude.Pitch, c.Attitude.Yaw)
	}
	return vehicleframe.Attitude{Roll: c.Attitude.Roll, Pitch: c.Attitude.Pitch, Yaw: c.Attitude.Yaw}
}

// ClampBounds returns the configured clamp interval or the default [-1, 1].
func (c *Config) ClampBounds() (float64, float64) {
	if c.Clamp == nil {
		return DefaultClampMin, DefaultClampMax
	}
	return c.Clamp.Min, c.Clamp.Max
}

func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return fmt.Sprintf("%s.%s", path, field)
}

func newValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}
