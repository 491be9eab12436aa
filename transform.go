package lumen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformRequest is the per-draw transform: scale, Euler rotation in
// degrees, translation. One per draw call; never shared.
type TransformRequest struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
}

// ComposeTransform builds the model matrix as
//
//	translate * rotateZ * rotateY * rotateX * scale
//
// applied to column vectors: scale first, then X/Y/Z rotation, translation
// last. This order is the object orientation contract; do not reorder.
// Non-positive or non-finite scale components are replaced with 1 so a bad
// request degrades to a no-op on that axis instead of inverting geometry.
func ComposeTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, translation mgl32.Vec3) mgl32.Mat4 {
	scale = sanitizeScale(scale)

	scaleM := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	translate := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())

	return translate.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scaleM)
}

// Matrix composes the request into a model matrix.
func (t TransformRequest) Matrix() mgl32.Mat4 {
	return ComposeTransform(t.Scale, t.RotationDeg.X(), t.RotationDeg.Y(), t.RotationDeg.Z(), t.Position)
}

func sanitizeScale(scale mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		s := scale[i]
		if !(s > 0) || math.IsInf(float64(s), 1) {
			scale[i] = 1
		}
	}
	return scale
}
