package lumen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement names the six translation directions the controller
// understands.
type CameraMovement int

const (
	MoveForward CameraMovement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

const (
	pitchLimit       = 89.0
	minMovementSpeed = 1.0
)

// Camera holds the view state: position, the orthonormal front/up/right
// basis, the yaw/pitch angles the basis is derived from, and the tuning
// values for zoom, movement and mouse look. front/up/right stay mutually
// orthonormal after every orientation update; mutate orientation only
// through SetFacing/SetFront or the CameraController.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	Zoom             float32
	MovementSpeed    float32
	MouseSensitivity float32
}

// NewCamera returns a camera framing the scene from (0, 5, 12), looking
// slightly downward into it.
func NewCamera() *Camera {
	cam := &Camera{
		Position:         mgl32.Vec3{0, 5, 12},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Zoom:             80,
		MovementSpeed:    20,
		MouseSensitivity: 0.1,
	}
	cam.SetFront(mgl32.Vec3{0, -0.5, -2})
	return cam
}

// SetFacing sets yaw and pitch in degrees and rebuilds the basis. Pitch is
// clamped to avoid gimbal flip.
func (cam *Camera) SetFacing(yaw, pitch float32) {
	cam.Yaw = yaw
	cam.Pitch = clampPitch(pitch)
	cam.updateVectors()
}

// SetFront points the camera along the given direction, deriving the
// equivalent yaw/pitch so later mouse input continues from there.
func (cam *Camera) SetFront(front mgl32.Vec3) {
	dir := front.Normalize()
	pitch := mgl32.RadToDeg(float32(math.Asin(float64(dir.Y()))))
	yaw := mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	cam.SetFacing(yaw, pitch)
}

// ViewMatrix returns the look-at matrix for the current state. Pure; no
// side effects.
func (cam *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Front), cam.Up)
}

func (cam *Camera) updateVectors() {
	yawRad := mgl32.DegToRad(cam.Yaw)
	pitchRad := mgl32.DegToRad(cam.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}
	cam.Front = front.Normalize()
	cam.Right = cam.Front.Cross(cam.WorldUp).Normalize()
	cam.Up = cam.Right.Cross(cam.Front).Normalize()
}

func clampPitch(pitch float32) float32 {
	if pitch > pitchLimit {
		return pitchLimit
	}
	if pitch < -pitchLimit {
		return -pitchLimit
	}
	return pitch
}

// CameraController turns raw input samples into camera state changes. It
// owns the cursor baseline: the first sample after (re)activation defines
// the origin rather than producing a jump-sized delta.
type CameraController struct {
	cam         *Camera
	hasBaseline bool
	lastX       float32
	lastY       float32
}

func NewCameraController(cam *Camera) *CameraController {
	return &CameraController{cam: cam}
}

func (ctl *CameraController) Camera() *Camera { return ctl.cam }

// ResetBaseline re-arms baseline capture. Call whenever cursor capture is
// (re)activated so the next sample yields a zero delta.
func (ctl *CameraController) ResetBaseline() {
	ctl.hasBaseline = false
}

// HandleCursor feeds an absolute cursor position. The first sample after a
// baseline reset only records the origin; subsequent samples rotate the
// camera by the sensitivity-scaled offset, with Y inverted so moving the
// pointer up pitches the view up.
func (ctl *CameraController) HandleCursor(x, y float32) {
	if !ctl.hasBaseline {
		ctl.lastX = x
		ctl.lastY = y
		ctl.hasBaseline = true
		return
	}

	offsetX := x - ctl.lastX
	offsetY := ctl.lastY - y
	ctl.lastX = x
	ctl.lastY = y

	cam := ctl.cam
	cam.Yaw += offsetX * cam.MouseSensitivity
	cam.Pitch = clampPitch(cam.Pitch + offsetY*cam.MouseSensitivity)
	cam.updateVectors()
}

// HandleScroll adjusts movement speed by the scroll delta, never letting
// it drop below 1 (a zero or negative speed would freeze or invert
// movement).
func (ctl *CameraController) HandleScroll(delta float32) {
	cam := ctl.cam
	cam.MovementSpeed += delta
	if cam.MovementSpeed < minMovementSpeed {
		cam.MovementSpeed = minMovementSpeed
	}
}

// HandleMove translates the camera along its basis, scaled by speed and
// the frame delta so movement is frame-rate independent. Negative or
// non-finite dt is treated as zero.
func (ctl *CameraController) HandleMove(direction CameraMovement, dt float32) {
	if !(dt > 0) || math.IsInf(float64(dt), 1) {
		return
	}

	cam := ctl.cam
	velocity := cam.MovementSpeed * dt
	switch direction {
	case MoveForward:
		cam.Position = cam.Position.Add(cam.Front.Mul(velocity))
	case MoveBackward:
		cam.Position = cam.Position.Sub(cam.Front.Mul(velocity))
	case MoveLeft:
		cam.Position = cam.Position.Sub(cam.Right.Mul(velocity))
	case MoveRight:
		cam.Position = cam.Position.Add(cam.Right.Mul(velocity))
	case MoveUp:
		cam.Position = cam.Position.Add(cam.Up.Mul(velocity))
	case MoveDown:
		cam.Position = cam.Position.Sub(cam.Up.Mul(velocity))
	}
}
