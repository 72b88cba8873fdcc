package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 matrix in row major order.
// m[3*r + c] is the element in the r'th row and c'th column.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates the rotation matrix from a slice of 9 float64s in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	var mat [9]float64
	copy(mat[:], m)
	return &RotationMatrix{mat}, nil
}

// NewIdentityRotationMatrix returns the matrix that leaves every vector unchanged.
func NewIdentityRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// EulerAngles returns the orientation in Euler angle representation.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(rm.Quaternion())
}

// Quaternion returns the orientation as a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	r11, r12, r13 := m[0], m[1], m[2]
	r21, r22, r23 := m[3], m[4], m[5]
	r31, r32, r33 := m[6], m[7], m[8]

	var q quat.Number
	switch tr := r11 + r22 + r33; {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = quat.Number{Real: s / 4, Imag: (r32 - r23) / s, Jmag: (r13 - r31) / s, Kmag: (r21 - r12) / s}
	case r11 > r22 && r11 > r33:
		s := math.Sqrt(1+r11-r22-r33) * 2
		q = quat.Number{Real: (r32 - r23) / s, Imag: s / 4, Jmag: (r12 + r21) / s, Kmag: (r13 + r31) / s}
	case r22 > r33:
		s := math.Sqrt(1+r22-r11-r33) * 2
		q = quat.Number{Real: (r13 - r31) / s, Imag: (r12 + r21) / s, Jmag: s / 4, Kmag: (r23 + r32) / s}
	default:
		s := math.Sqrt(1+r33-r11-r22) * 2
		q = quat.Number{Real: (r21 - r12) / s, Imag: (r13 + r31) / s, Jmag: (r23 + r32) / s, Kmag: s / 4}
	}
	return q
}

// At returns the float corresponding to the element at the specified location.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the specified row of the matrix as an r3.Vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the specified column of the matrix as an r3.Vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[col+3], Z: rm.mat[col+6]}
}

// Transpose returns a new matrix with rows and columns swapped. For a rotation this is also the inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Mul returns the product rm * other. Applied to a vector, other acts first.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	var out [9]float64
	for r := 0; r < 3; r++ {
		row := rm.Row(r)
		for c := 0; c < 3; c++ {
			out[3*r+c] = row.Dot(other.Col(c))
		}
	}
	return &RotationMatrix{out}
}

// MulVec returns the matrix-vector product rm * v.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// Determinant returns the determinant of the matrix, 1 for a proper rotation.
func (rm *RotationMatrix) Determinant() float64 {
	return rm.Row(0).Dot(rm.Row(1).Cross(rm.Row(2)))
}
