// Package vehicleframe converts vehicle velocities and offsets between the North-East-Down
// navigation frame and the vehicle's body frame (forward, right, down).
//
// NEDFromBody rotates by the attitude matrix R = Rz(yaw)*Ry(pitch)*Rx(roll) and BodyFromNED by its
// transpose, so the two are exact inverses for any attitude. Angles are radians and velocities
// meters per second; nothing here checks that the inputs are physically meaningful.
package vehicleframe

import (
	"github.com/golang/geo/r3"

	"go.viam.com/navframe/spatialmath"
)

// Attitude is the orientation of the body frame relative to NED, in radians.
type Attitude struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewAttitudeFromDegrees returns an Attitude from angles given in degrees.
func NewAttitudeFromDegrees(roll, pitch, yaw float64) Attitude {
	return AttitudeFromEulerAngles(*spatialmath.NewEulerAnglesFromDegrees(roll, pitch, yaw))
}

// AttitudeFromEulerAngles returns the Attitude for the given Euler angles.
func AttitudeFromEulerAngles(ea spatialmath.EulerAngles) Attitude {
	return Attitude{Roll: ea.Roll, Pitch: ea.Pitch, Yaw: ea.Yaw}
}

// EulerAngles returns the attitude as spatialmath Euler angles.
func (a Attitude) EulerAngles() spatialmath.EulerAngles {
	return spatialmath.EulerAngles{Roll: a.Roll, Pitch: a.Pitch, Yaw: a.Yaw}
}

// NEDVelocity is a velocity in the navigation frame.
type NEDVelocity struct {
	NorthMPS float64 `json:"north_m_s"`
	EastMPS  float64 `json:"east_m_s"`
	DownMPS  float64 `json:"down_m_s"`
}

// NEDVelocityFromVector orders v as (north, east, down).
func NEDVelocityFromVector(v r3.Vector) NEDVelocity {
	return NEDVelocity{NorthMPS: v.X, EastMPS: v.Y, DownMPS: v.Z}
}

// Vector returns the velocity as (north, east, down).
func (v NEDVelocity) Vector() r3.Vector {
	return r3.Vector{X: v.NorthMPS, Y: v.EastMPS, Z: v.DownMPS}
}

// BodyVelocity is a velocity in the body frame.
type BodyVelocity struct {
	ForwardMPS float64 `json:"forward_m_s"`
	RightMPS   float64 `json:"right_m_s"`
	DownMPS    float64 `json:"down_m_s"`
}

// BodyVelocityFromVector orders v as (forward, right, down).
func BodyVelocityFromVector(v r3.Vector) BodyVelocity {
	return BodyVelocity{ForwardMPS: v.X, RightMPS: v.Y, DownMPS: v.Z}
}

// Vector returns the velocity as (forward, right, down).
func (v BodyVelocity) Vector() r3.Vector {
	return r3.Vector{X: v.ForwardMPS, Y: v.RightMPS, Z: v.DownMPS}
}

// BodyFromNED expresses a NED velocity in the body frame of a vehicle with the given attitude.
func BodyFromNED(ned NEDVelocity, att Attitude) BodyVelocity {
	return BodyVelocityFromVector(BodyOffsetFromNED(ned.Vector(), att))
}

// NEDFromBody expresses a body frame velocity in the NED frame.
func NEDFromBody(body BodyVelocity, att Attitude) NEDVelocity {
	return NEDVelocityFromVector(NEDOffsetFromBody(body.Vector(), att))
}

// BodyOffsetFromNED expresses a (north, east, down) offset as (forward, right, down).
func BodyOffsetFromNED(offset r3.Vector, att Attitude) r3.Vector {
	return spatialmath.InverseRotate(offset, att.EulerAngles())
}

// NEDOffsetFromBody expresses a (forward, right, down) offset as (north, east, down).
func NEDOffsetFromBody(offset r3.Vector, att Attitude) r3.Vector {
	return spatialmath.Rotate(offset, att.EulerAngles())
}
