package spatialmath

import "github.com/golang/geo/r3"

// Rotate expresses v, given in a frame rotated by ea, in the outer frame: R(ea) * v.
// NaN and Inf inputs propagate through the arithmetic.
func Rotate(v r3.Vector, ea EulerAngles) r3.Vector {
	return ea.RotationMatrix().MulVec(v)
}

// InverseRotate undoes Rotate for the same angles: R(ea)^T * v.
// When only one of the three angles is non-zero this equals Rotate(v, ea.Negate()).
func InverseRotate(v r3.Vector, ea EulerAngles) r3.Vector {
	return ea.RotationMatrix().Transpose().MulVec(v)
}
