package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxPitch keeps the look direction off the poles to avoid yaw flipping
const MaxPitch = math.Pi/2 - 0.01

// YawRotation returns the body rotation for a yaw angle about world Y
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, AxisY)
}

// LookRotation composes world-Y yaw with local-X pitch
func LookRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, AxisY).Mul(mgl64.QuatRotate(pitch, AxisX))
}

// ForwardOf returns the -Z axis rotated by q
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the +X axis rotated by q
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}
