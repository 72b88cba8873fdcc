package utils

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.)
	test.That(t, RadToDeg(DegToRad(-37.5)), test.ShouldAlmostEqual, -37.5)
}

func TestAngleDifference(t *testing.T) {
	test.That(t, AngleDifference(0, 0), test.ShouldEqual, 0.)
	test.That(t, AngleDifference(math.Pi/2, 0), test.ShouldEqual, math.Pi/2)
	test.That(t, AngleDifference(0, math.Pi/2), test.ShouldEqual, -math.Pi/2)

	// wraps through +/-pi instead of going the long way round
	test.That(t, AngleDifference(-3*math.Pi/4, 3*math.Pi/4), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, AngleDifference(3*math.Pi/4, -3*math.Pi/4), test.ShouldAlmostEqual, -math.Pi/2)

	t.Run("half turn", func(t *testing.T) {
		test.That(t, AngleDifference(math.Pi, 0), test.ShouldEqual, math.Pi)
		test.That(t, AngleDifference(0, math.Pi), test.ShouldEqual, math.Pi)
		test.That(t, AngleDifference(-math.Pi/2, math.Pi/2), test.ShouldEqual, math.Pi)
	})

	t.Run("unnormalized", func(t *testing.T) {
		test.That(t, AngleDifference(7*math.Pi+0.5, 0), test.ShouldAlmostEqual, -math.Pi+0.5, 1e-9)
		test.That(t, AngleDifference(10*math.Pi+0.25, -4*math.Pi), test.ShouldAlmostEqual, 0.25, 1e-9)
		test.That(t, AngleDifference(-0.1, 20*math.Pi+0.1), test.ShouldAlmostEqual, -0.2, 1e-9)
	})

	t.Run("nan", func(t *testing.T) {
		test.That(t, math.IsNaN(AngleDifference(math.NaN(), 0)), test.ShouldBeTrue)
	})
}

func TestAngleDifferenceProperties(t *testing.T) {
	//nolint:gosec
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		a1 := (r.Float64() - 0.5) * 40 * math.Pi
		a2 := (r.Float64() - 0.5) * 40 * math.Pi
		d := AngleDifference(a1, a2)
		test.That(t, d, test.ShouldBeGreaterThan, -math.Pi)
		test.That(t, d, test.ShouldBeLessThanOrEqualTo, math.Pi)

		if math.Abs(d) < math.Pi-1e-6 {
			test.That(t, AngleDifference(a2, a1), test.ShouldAlmostEqual, -d, 1e-9)
		}

		// the result is the raw difference shifted by whole turns
		turns := (a1 - a2 - d) / (2 * math.Pi)
		test.That(t, turns, test.ShouldAlmostEqual, math.Round(turns), 1e-9)
	}
}

func TestAngleDifferenceAdvancesSmallerAngle(t *testing.T) {
	// reference: step the smaller angle up a whole turn until the gap is at most half a turn
	advance := func(a1, a2 float64) float64 {
		for a1-a2 > math.Pi {
			a2 += 2 * math.Pi
		}
		for a1-a2 <= -math.Pi {
			a1 += 2 * math.Pi
		}
		return a1 - a2
	}

	//nolint:gosec
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		a1 := (r.Float64() - 0.5) * 12 * math.Pi
		a2 := (r.Float64() - 0.5) * 12 * math.Pi
		want := advance(a1, a2)
		if math.Pi-math.Abs(want) < 1e-9 {
			continue
		}
		test.That(t, AngleDifference(a1, a2), test.ShouldAlmostEqual, want, 1e-9)
	}
	test.That(t, AngleDifference(-math.Pi/2, math.Pi/2), test.ShouldAlmostEqual, advance(-math.Pi/2, math.Pi/2), 1e-12)
}

func TestAngleDifferenceDeg(t *testing.T) {
	test.That(t, AngleDifferenceDeg(350, 10), test.ShouldAlmostEqual, -20)
	test.That(t, AngleDifferenceDeg(10, 350), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDifferenceDeg(-135, 135), test.ShouldAlmostEqual, 90)
}

func TestClampToRange(t *testing.T) {
	test.That(t, ClampToRange(5, 0, 10), test.ShouldEqual, 5.)
	test.That(t, ClampToRange(-1, 0, 10), test.ShouldEqual, 0.)
	test.That(t, ClampToRange(20, 0, 10), test.ShouldEqual, 10.)
	test.That(t, ClampToRange(0, 0, 10), test.ShouldEqual, 0.)
	test.That(t, ClampToRange(10, 0, 10), test.ShouldEqual, 10.)
	test.That(t, ClampToRange(math.Inf(-1), -1, 1), test.ShouldEqual, -1.)
	test.That(t, math.IsNaN(ClampToRange(math.NaN(), -1, 1)), test.ShouldBeTrue)

	t.Run("inverted range", func(t *testing.T) {
		test.That(t, ClampToRange(-5, 10, 0), test.ShouldEqual, 0.)
		test.That(t, ClampToRange(5, 10, 0), test.ShouldEqual, 0.)
		test.That(t, ClampToRange(50, 10, 0), test.ShouldEqual, 0.)
	})
}

func TestNormalize(t *testing.T) {
	test.That(t, Normalize(0, -1, 1), test.ShouldEqual, 0.)
	test.That(t, Normalize(1000, 1000, 2000), test.ShouldEqual, -1.)
	test.That(t, Normalize(1500, 1000, 2000), test.ShouldEqual, 0.)
	test.That(t, Normalize(1750, 1000, 2000), test.ShouldEqual, 0.5)
	test.That(t, Normalize(2000, 1000, 2000), test.ShouldEqual, 1.)
	test.That(t, Normalize(9000, 1000, 2000), test.ShouldEqual, 1.)
	test.That(t, Normalize(-9000, 1000, 2000), test.ShouldEqual, -1.)
	test.That(t, Normalize(3, 3, 3), test.ShouldEqual, 0.)
}
