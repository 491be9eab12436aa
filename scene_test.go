package lumen

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeshProvider struct {
	loaded   []ShapeKind
	drawn    []ShapeKind
	released bool
	failKind ShapeKind
	failing  bool
}

func (p *fakeMeshProvider) Load(kind ShapeKind) error {
	if p.failing && kind == p.failKind {
		return fmt.Errorf("no geometry for %v", kind)
	}
	p.loaded = append(p.loaded, kind)
	return nil
}

func (p *fakeMeshProvider) Draw(kind ShapeKind) { p.drawn = append(p.drawn, kind) }
func (p *fakeMeshProvider) Release()            { p.released = true }

func TestLoadSceneResources(t *testing.T) {
	dir := t.TempDir()
	scene := &SceneDef{
		Textures: []TextureDef{{Path: writeJPEG(t, dir, "grass.jpg"), Tag: "grass"}},
		Materials: []MaterialDef{
			{Tag: "default", Diffuse: mgl32.Vec3{0.5, 0.5, 0.5}, Specular: mgl32.Vec3{0.2, 0.2, 0.2}, Shininess: 16},
		},
		Shapes: []ShapeDef{
			{Kind: ShapePlane},
			{Kind: ShapeBox},
			{Kind: ShapeBox},
		},
	}

	textures := NewTextureRegistry(newFakeTextureBackend(), nil)
	materials := NewMaterialRegistry()
	meshes := &fakeMeshProvider{}

	require.NoError(t, LoadSceneResources(scene, textures, materials, meshes, nil))

	assert.Equal(t, 1, textures.Count())
	assert.Equal(t, 1, materials.Count())
	// Repeated kinds load once.
	assert.Equal(t, []ShapeKind{ShapePlane, ShapeBox}, meshes.loaded)
}

func TestLoadSceneResources_SkipsFailedTexture(t *testing.T) {
	scene := &SceneDef{
		Textures: []TextureDef{{Path: "/nonexistent/missing.png", Tag: "missing"}},
		Shapes:   []ShapeDef{{Kind: ShapePlane}},
	}

	textures := NewTextureRegistry(newFakeTextureBackend(), nil)
	meshes := &fakeMeshProvider{}

	require.NoError(t, LoadSceneResources(scene, textures, NewMaterialRegistry(), meshes, nil))

	assert.Equal(t, 0, textures.Count())
	assert.Equal(t, []ShapeKind{ShapePlane}, meshes.loaded, "scene loading continues past a bad texture")
}

func TestLoadSceneResources_MeshFailureIsFatal(t *testing.T) {
	scene := &SceneDef{Shapes: []ShapeDef{{Kind: ShapeTorus}}}
	meshes := &fakeMeshProvider{failing: true, failKind: ShapeTorus}

	err := LoadSceneResources(scene, NewTextureRegistry(newFakeTextureBackend(), nil), NewMaterialRegistry(), meshes, nil)
	require.Error(t, err)
}

func TestBindLights_Disabled(t *testing.T) {
	binder := newRecordingBinder()

	BindLights(binder, LightingDef{Enabled: false})

	assert.Equal(t, false, binder.values[UniformUseLighting])
	assert.Len(t, binder.order, 1, "disabled lighting writes only the master switch")
}

func TestBindLights_DeactivatesUnusedSlots(t *testing.T) {
	binder := newRecordingBinder()
	lighting := LightingDef{
		Enabled: true,
		PointLights: []PointLightDef{
			{Position: mgl32.Vec3{1, 2, 3}, Diffuse: mgl32.Vec3{1, 1, 1}},
		},
	}

	BindLights(binder, lighting)

	assert.Equal(t, true, binder.values[UniformUseLighting])
	assert.Equal(t, false, binder.values[UniformDirLightActive])

	assert.Equal(t, true, binder.values[pointLightUniform(0, "bActive")])
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, binder.values[pointLightUniform(0, "position")])
	for i := 1; i < maxPointLights; i++ {
		assert.Equal(t, false, binder.values[pointLightUniform(i, "bActive")], "slot %d", i)
		assert.NotContains(t, binder.values, pointLightUniform(i, "position"))
	}
}

func TestBindLights_Directional(t *testing.T) {
	binder := newRecordingBinder()
	lighting := LightingDef{
		Enabled: true,
		Directional: &DirectionalLightDef{
			Direction: mgl32.Vec3{0, -1, 0},
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.8, 0.7, 0.6},
			Specular:  mgl32.Vec3{1, 1, 1},
		},
	}

	BindLights(binder, lighting)

	assert.Equal(t, true, binder.values[UniformDirLightActive])
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, binder.values[UniformDirLightDirection])
	assert.Equal(t, mgl32.Vec3{0.8, 0.7, 0.6}, binder.values[UniformDirLightDiffuse])
}

func TestDrawShape(t *testing.T) {
	binder := newRecordingBinder()
	meshes := &fakeMeshProvider{}
	shape := ShapeDef{
		Kind:        ShapeBox,
		Scale:       mgl32.Vec3{2, 1, 3},
		RotationDeg: mgl32.Vec3{0, 45, 0},
		Position:    mgl32.Vec3{1, 0, -2},
		Color:       mgl32.Vec4{1, 0, 0, 1},
		UVScale:     mgl32.Vec2{3, 3},
	}

	DrawShape(binder, NewTextureRegistry(newFakeTextureBackend(), nil), NewMaterialRegistry(), meshes, shape)

	want := ComposeTransform(shape.Scale, 0, 45, 0, shape.Position)
	assert.Equal(t, want, binder.values[UniformModel])
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, binder.values[UniformObjectColor])
	assert.Equal(t, false, binder.values[UniformUseTexture])
	assert.Equal(t, mgl32.Vec2{3, 3}, binder.values[UniformUVScale])
	assert.Equal(t, []ShapeKind{ShapeBox}, meshes.drawn)
}

func TestDrawShape_DefaultUVScale(t *testing.T) {
	binder := newRecordingBinder()

	DrawShape(binder, NewTextureRegistry(newFakeTextureBackend(), nil), NewMaterialRegistry(), &fakeMeshProvider{}, ShapeDef{Kind: ShapePlane})

	assert.Equal(t, mgl32.Vec2{1, 1}, binder.values[UniformUVScale])
}

func TestDrawShape_TextureOverridesColor(t *testing.T) {
	dir := t.TempDir()
	textures := NewTextureRegistry(newFakeTextureBackend(), nil)
	require.NoError(t, textures.Load(writeJPEG(t, dir, "wood.jpg"), "wood"))

	binder := newRecordingBinder()
	shape := ShapeDef{Kind: ShapeBox, Color: mgl32.Vec4{0, 1, 0, 1}, TextureTag: "wood"}

	DrawShape(binder, textures, NewMaterialRegistry(), &fakeMeshProvider{}, shape)

	assert.Equal(t, true, binder.values[UniformUseTexture])
	assert.Equal(t, int32(0), binder.values[UniformObjectTexture])
}

func TestDrawShape_UnresolvableTextureFallsBack(t *testing.T) {
	binder := newRecordingBinder()
	shape := ShapeDef{Kind: ShapeBox, Color: mgl32.Vec4{0, 1, 0, 1}, TextureTag: "gone"}

	DrawShape(binder, NewTextureRegistry(newFakeTextureBackend(), nil), NewMaterialRegistry(), &fakeMeshProvider{}, shape)

	assert.Equal(t, false, binder.values[UniformUseTexture])
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, binder.values[UniformObjectColor])
}
