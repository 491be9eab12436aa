package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// overviewFront is the fixed downward-angled viewing direction used while
// the orthographic overview is active.
var overviewFront = mgl32.Vec3{0, -1, -1}

// ProjectionSelector switches between perspective and orthographic
// projection. Both states are explicitly selectable and reselecting the
// current state is a no-op.
//
// Entering Orthographic deliberately reframes the view: the camera's
// free-look orientation is saved and replaced with a fixed overview
// direction. Returning to Perspective restores the saved orientation, so
// the coupling is reversible rather than a sticky side effect.
type ProjectionSelector struct {
	mode       ProjectionMode
	savedYaw   float32
	savedPitch float32
}

func NewProjectionSelector() *ProjectionSelector {
	return &ProjectionSelector{mode: Perspective}
}

func (s *ProjectionSelector) Mode() ProjectionMode { return s.mode }

func (s *ProjectionSelector) UsePerspective(cam *Camera) {
	if s.mode == Perspective {
		return
	}
	s.mode = Perspective
	cam.SetFacing(s.savedYaw, s.savedPitch)
}

func (s *ProjectionSelector) UseOrthographic(cam *Camera) {
	if s.mode == Orthographic {
		return
	}
	s.mode = Orthographic
	s.savedYaw = cam.Yaw
	s.savedPitch = cam.Pitch
	cam.SetFront(overviewFront)
}

// Matrix computes the projection matrix for the active mode. Perspective
// uses the camera zoom as vertical FOV; orthographic uses a symmetric
// volume with the vertical extent scaled by the viewport ratio so shapes
// keep their proportions.
func (s *ProjectionSelector) Matrix(cam *Camera, vp *ViewportConfig) mgl32.Mat4 {
	if s.mode == Orthographic {
		scale := vp.OrthoHalfExtent
		vertical := scale * float32(vp.Height) / float32(vp.Width)
		return mgl32.Ortho(-scale, scale, -vertical, vertical, vp.Near, vp.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(cam.Zoom), vp.Aspect(), vp.Near, vp.Far)
}
