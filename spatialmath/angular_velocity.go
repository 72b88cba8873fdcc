package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains body angular rates in rad/s about the x/y/z (forward/right/down) axes.
type AngularVelocity r3.Vector

// ErrGimbalLock is returned when Euler angle rates are requested at a pitch of +/-90 degrees.
var ErrGimbalLock = errors.New("euler angle rates are undefined at +/-90 degrees pitch")

// below this |cos(pitch)| the yaw and roll rates are not separable.
const gimbalLockCos = 1e-9

// EulerRatesToAngularVel returns the body rates of a vehicle at attitude ea whose angles are changing
// at the given rates (rad/s).
func EulerRatesToAngularVel(ea, rates EulerAngles) AngularVelocity {
	sr, cr := math.Sincos(ea.Roll)
	sp, cp := math.Sincos(ea.Pitch)
	return AngularVelocity{
		X: rates.Roll - sp*rates.Yaw,
		Y: cr*rates.Pitch + sr*cp*rates.Yaw,
		Z: -sr*rates.Pitch + cr*cp*rates.Yaw,
	}
}

// AngularVelToEulerRates is the inverse of EulerRatesToAngularVel.
func AngularVelToEulerRates(ea EulerAngles, av AngularVelocity) (EulerAngles, error) {
	sr, cr := math.Sincos(ea.Roll)
	sp, cp := math.Sincos(ea.Pitch)
	if math.Abs(cp) < gimbalLockCos {
		return EulerAngles{}, ErrGimbalLock
	}
	yawRate := (sr*av.Y + cr*av.Z) / cp
	return EulerAngles{
		Roll:  av.X + sp*yawRate,
		Pitch: cr*av.Y - sr*av.Z,
		Yaw:   yawRate,
	}, nil
}

// AngularVelBetween calculates the constant body rate that turns from into to over dt seconds.
// Callers must ensure dt > 0; a zero dt gives Inf or NaN components.
func AngularVelBetween(from, to Orientation, dt float64) AngularVelocity {
	dq := quat.Mul(quat.Conj(from.Quaternion()), to.Quaternion())
	// q and -q are the same rotation, take the short way around
	if dq.Real < 0 {
		dq = quat.Scale(-1, dq)
	}

	axis := r3.Vector{X: dq.Imag, Y: dq.Jmag, Z: dq.Kmag}
	sinHalf := axis.Norm()
	if sinHalf < 1e-12 {
		return AngularVelocity(axis.Mul(2 / dt))
	}
	theta := 2 * math.Atan2(sinHalf, dq.Real)
	return AngularVelocity(axis.Mul(theta / (sinHalf * dt)))
}
