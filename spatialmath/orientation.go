package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return NewEulerAngles()
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations are approximately the same.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	return o2.RotationMatrix().Mul(o1.RotationMatrix().Transpose())
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. q and -q
// describe the same rotation, so both signs are accepted.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	near := func(x, y quat.Number) bool {
		return math.Abs(x.Real-y.Real) < tol &&
			math.Abs(x.Imag-y.Imag) < tol &&
			math.Abs(x.Jmag-y.Jmag) < tol &&
			math.Abs(x.Kmag-y.Kmag) < tol
	}
	return near(a, b) || near(a, quat.Scale(-1, b))
}
