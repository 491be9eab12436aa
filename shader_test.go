package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBinder keeps the last value written per uniform name plus the
// write order, so tests can assert both content and presence.
type recordingBinder struct {
	values map[string]any
	order  []string
}

func newRecordingBinder() *recordingBinder {
	return &recordingBinder{values: make(map[string]any)}
}

func (r *recordingBinder) set(name string, value any) {
	r.values[name] = value
	r.order = append(r.order, name)
}

func (r *recordingBinder) SetMat4(name string, value mgl32.Mat4) { r.set(name, value) }
func (r *recordingBinder) SetVec2(name string, value mgl32.Vec2) { r.set(name, value) }
func (r *recordingBinder) SetVec3(name string, value mgl32.Vec3) { r.set(name, value) }
func (r *recordingBinder) SetVec4(name string, value mgl32.Vec4) { r.set(name, value) }
func (r *recordingBinder) SetFloat(name string, value float32)   { r.set(name, value) }
func (r *recordingBinder) SetInt(name string, value int32)       { r.set(name, value) }
func (r *recordingBinder) SetBool(name string, value bool)       { r.set(name, value) }
func (r *recordingBinder) SetSampler(name string, slot int32)    { r.set(name, slot) }

func TestBindColor(t *testing.T) {
	binder := newRecordingBinder()

	BindColor(binder, mgl32.Vec4{0.2, 0.4, 0.6, 1})

	assert.Equal(t, false, binder.values[UniformUseTexture])
	assert.Equal(t, mgl32.Vec4{0.2, 0.4, 0.6, 1}, binder.values[UniformObjectColor])
}

func TestBindTexture_ResolvesSlot(t *testing.T) {
	dir := t.TempDir()
	registry := NewTextureRegistry(newFakeTextureBackend(), nil)
	require.NoError(t, registry.Load(writeJPEG(t, dir, "a.jpg"), "a"))
	require.NoError(t, registry.Load(writeJPEG(t, dir, "b.jpg"), "b"))

	binder := newRecordingBinder()
	BindTexture(binder, registry, "b")

	assert.Equal(t, true, binder.values[UniformUseTexture])
	assert.Equal(t, int32(1), binder.values[UniformObjectTexture])
}

func TestBindTexture_MissFallsBackToColor(t *testing.T) {
	registry := NewTextureRegistry(newFakeTextureBackend(), nil)

	binder := newRecordingBinder()
	BindTexture(binder, registry, "missing")

	assert.Equal(t, false, binder.values[UniformUseTexture])
	assert.NotContains(t, binder.values, UniformObjectTexture)
}

func TestBindMaterial(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define("glass", mgl32.Vec3{0.3, 0.4, 0.4}, mgl32.Vec3{0.6, 0.6, 0.6}, 85)

	binder := newRecordingBinder()
	BindMaterial(binder, registry, "glass")

	assert.Equal(t, mgl32.Vec3{0.3, 0.4, 0.4}, binder.values[UniformMaterialDiffuse])
	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.6}, binder.values[UniformMaterialSpecular])
	assert.Equal(t, float32(85), binder.values[UniformMaterialShininess])
}

func TestBindMaterial_MissWritesNothing(t *testing.T) {
	registry := NewMaterialRegistry()

	binder := newRecordingBinder()
	BindMaterial(binder, registry, "missing")

	assert.Empty(t, binder.order, "a material miss must leave previous uniforms alone")
}

func TestBindUVScale(t *testing.T) {
	binder := newRecordingBinder()

	BindUVScale(binder, 4, 2)

	assert.Equal(t, mgl32.Vec2{4, 2}, binder.values[UniformUVScale])
}

func TestPointLightUniform(t *testing.T) {
	assert.Equal(t, "pointLights[0].position", pointLightUniform(0, "position"))
	assert.Equal(t, "pointLights[3].bActive", pointLightUniform(3, "bActive"))
}
