package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/navframe/logging"
)

func TestFromReaderValidate(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := FromReader("somepath", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "EOF")

	_, err = FromReader("somepath", strings.NewReader(`{"attitude": 1}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unmarshal")

	_, err = FromReader("somepath", strings.NewReader(`{"heading": 1}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown field")

	conf, err := FromReader("somepath", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		ConfigFilePath: "somepath",
	})

	_, err = FromReader("somepath", strings.NewReader(`{"angle_units": "grads"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "angle_units"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `unknown angle units "grads"`)

	_, err = FromReader("somepath", strings.NewReader(`{"clamp": {"min": 2, "max": 1}}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "clamp"`)

	conf, err = FromReader("somepath", strings.NewReader(`{
		"angle_units": "degrees",
		"attitude": {"roll": 0, "pitch": 10, "yaw": 90},
		"clamp": {"min": 0, "max": 100},
		"debug": true
	}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		AngleUnits:     Degrees,
		Attitude:       AttitudeConfig{Roll: 0, Pitch: 10, Yaw: 90},
		Clamp:          &RangeConfig{Min: 0, Max: 100},
		Debug:          true,
		ConfigFilePath: "somepath",
	})
}

func TestRead(t *testing.T) {
	logger := logging.NewTestLogger(t)
	t.Setenv("NAVFRAME_TEST_YAW", "1.25")

	path := filepath.Join(t.TempDir(), "navframe.json")
	err := os.WriteFile(path, []byte(`{"attitude": {"roll": 0.1, "pitch": 0, "yaw": ${NAVFRAME_TEST_YAW}}}`), 0o600)
	test.That(t, err, test.ShouldBeNil)

	conf, err := Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, conf.Units(), test.ShouldEqual, Radians)
	test.That(t, conf.Attitude.Yaw, test.ShouldEqual, 1.25)

	_, err = Read(filepath.Join(t.TempDir(), "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read config")
}

func TestVehicleAttitude(t *testing.T) {
	conf := &Config{Attitude: AttitudeConfig{Roll: 0.5, Pitch: -0.25, Yaw: 3}}
	att := conf.VehicleAttitude()
	test.That(t, att.Roll, test.ShouldEqual, 0.5)
	test.That(t, att.Pitch, test.ShouldEqual, -0.25)
	test.That(t, att.Yaw, test.ShouldEqual, 3.)

	conf = &Config{AngleUnits: Degrees, Attitude: AttitudeConfig{Roll: 180, Pitch: 45, Yaw: -90}}
	att = conf.VehicleAttitude()
	test.That(t, att.Roll, test.ShouldAlmostEqual, math.Pi)
	test.That(t, att.Pitch, test.ShouldAlmostEqual, math.Pi/4)
	test.That(t, att.Yaw, test.ShouldAlmostEqual, -math.Pi/2)
}

func TestClampBounds(t *testing.T) {
	lo, hi := (&Config{}).ClampBounds()
	test.That(t, lo, test.ShouldEqual, DefaultClampMin)
	test.That(t, hi, test.ShouldEqual, DefaultClampMax)

	lo, hi = (&Config{Clamp: &RangeConfig{Min: 3, Max: 4}}).ClampBounds()
	test.That(t, lo, test.ShouldEqual, 3.)
	test.That(t, hi, test.ShouldEqual, 4.)
}

func TestValidateCombinesErrors(t *testing.T) {
	conf := &Config{AngleUnits: "turns", Clamp: &RangeConfig{Min: 1, Max: 0}}
	err := conf.Validate("profile")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"profile.angle_units"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"profile.clamp"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, "min 1 is greater than max 0")

	test.That(t, (&Config{AngleUnits: Degrees}).Validate("profile"), test.ShouldBeNil)
}
