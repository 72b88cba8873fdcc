package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/navframe/utils"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D Euclidean space.
// The rotations are applied intrinsically: roll about x, then pitch about y, then yaw about z, so the combined
// rotation is Rz(yaw)*Ry(pitch)*Rx(roll). Angles are not range checked; any real value is accepted.
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// NewEulerAnglesFromDegrees creates EulerAngles from angles given in degrees.
func NewEulerAnglesFromDegrees(roll, pitch, yaw float64) *EulerAngles {
	return &EulerAngles{
		Roll:  utils.DegToRad(roll),
		Pitch: utils.DegToRad(pitch),
		Yaw:   utils.DegToRad(yaw),
	}
}

// Negate returns the angles with every component sign-flipped.
func (ea EulerAngles) Negate() EulerAngles {
	return EulerAngles{Roll: -ea.Roll, Pitch: -ea.Pitch, Yaw: -ea.Yaw}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// RotationMatrix returns the combined rotation matrix for the angles. Each trig function is evaluated once.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	sr, cr := math.Sincos(ea.Roll)
	sp, cp := math.Sincos(ea.Pitch)
	sy, cy := math.Sincos(ea.Yaw)

	return &RotationMatrix{[9]float64{
		cp * cy, -cr*sy + sr*sp*cy, sr*sy + cr*sp*cy,
		cp * sy, cr*cy + sr*sp*sy, -sr*cy + cr*sp*sy,
		-sp, sr * cp, cr * cp,
	}}
}

// Quaternion returns the same rotation as a unit quaternion.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func (ea *EulerAngles) Quaternion() quat.Number {
	sr, cr := math.Sincos(ea.Roll / 2)
	sp, cp := math.Sincos(ea.Pitch / 2)
	sy, cy := math.Sincos(ea.Yaw / 2)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// String returns the angles in degrees, which is easier to read when logging.
func (ea EulerAngles) String() string {
	return fmt.Sprintf("{roll=%+.2f° pitch=%+.2f° yaw=%+.2f°}",
		utils.RadToDeg(ea.Roll), utils.RadToDeg(ea.Pitch), utils.RadToDeg(ea.Yaw))
}

// QuatToEulerAngles converts a unit quaternion to roll, pitch, yaw angles.
// Pitch is limited to [-pi/2, pi/2]; at exactly +/-pi/2 the split between roll and yaw is arbitrary.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	// numeric drift can push the sine slightly past 1
	sinPitch := utils.ClampToRange(2*(w*y-z*x), -1, 1)

	return &EulerAngles{
		Roll:  math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(sinPitch),
		Yaw:   math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)),
	}
}
