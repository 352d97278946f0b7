// Package d3 implements mass and inertia-tensor bookkeeping for spatial
// rigid bodies, mirroring package d2 with 3x3 tensors and quaternion
// rotations.
//
// All operations degrade silently: massless, degenerate, or singular inputs
// produce inert records and zero inverses, never errors.
package d3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon is the float64 machine epsilon. Aggregation compares against it
// exactly when deciding whether a remainder is effectively massless.
const epsilon = 0x1p-52

// ShiftTensor translates an inertia tensor from a body's center of mass to a
// point offset away from it (parallel-axis theorem):
// I + m*(dot(d,d)*E - outer(d,d)). A non-positive or non-finite mass leaves
// the tensor unchanged.
func ShiftTensor(tensor mgl64.Mat3, mass float64, offset mgl64.Vec3) mgl64.Mat3 {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return tensor
	}
	shift := mgl64.Ident3().Mul(offset.Dot(offset)).Sub(offset.OuterProd3(offset)).Mul(mass)
	return tensor.Add(shift)
}

// InvertTensor returns the inverse tensor. Singular or non-finite tensors
// invert to the zero matrix.
func InvertTensor(tensor mgl64.Mat3) mgl64.Mat3 {
	det := tensor.Det()
	if det == 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return mgl64.Mat3{}
	}
	return tensor.Inv()
}

// RotateTensor expresses a body-local tensor in world axes: R * I * R^T.
func RotateTensor(tensor mgl64.Mat3, rotation mgl64.Quat) mgl64.Mat3 {
	r := rotation.Mat4().Mat3()
	return r.Mul3(tensor).Mul3(r.Transpose())
}

func recip(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return 1 / v
}
