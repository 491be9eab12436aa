package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef declares the content of a scene: the textures and materials to
// register, the shapes to draw each frame, and the lighting rig. The
// arrangement itself is application data; the engine only binds and draws
// it.
type SceneDef struct {
	Textures  []TextureDef
	Materials []MaterialDef
	Shapes    []ShapeDef
	Lighting  LightingDef
}

type TextureDef struct {
	Path string
	Tag  string
}

type MaterialDef struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// ShapeDef is one drawn primitive. Color is always bound; a resolvable
// TextureTag overrides it, an unresolvable one falls back to the color. A
// zero UVScale means no tiling (1,1).
type ShapeDef struct {
	Kind        ShapeKind
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
	Color       mgl32.Vec4
	TextureTag  string
	MaterialTag string
	UVScale     mgl32.Vec2
}

type DirectionalLightDef struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLightDef struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// LightingDef configures the shader's fixed light rig: one optional
// directional light and up to four point lights.
type LightingDef struct {
	Enabled     bool
	Directional *DirectionalLightDef
	PointLights []PointLightDef
}

// LoadSceneResources registers the scene's textures, materials and meshes.
// A texture that fails to load is skipped (its tag stays unresolved and
// affected shapes fall back to their base color); the scene still loads.
func LoadSceneResources(scene *SceneDef, textures *TextureRegistry, materials *MaterialRegistry, meshes MeshProvider, log Logger) error {
	if log == nil {
		log = NewNopLogger()
	}

	for _, def := range scene.Textures {
		if err := textures.Load(def.Path, def.Tag); err != nil {
			log.Warnf("Scene texture %q skipped: %v", def.Tag, err)
		}
	}

	for _, def := range scene.Materials {
		materials.Define(def.Tag, def.Diffuse, def.Specular, def.Shininess)
	}

	loaded := make(map[ShapeKind]bool)
	for _, shape := range scene.Shapes {
		if loaded[shape.Kind] {
			continue
		}
		if err := meshes.Load(shape.Kind); err != nil {
			return err
		}
		loaded[shape.Kind] = true
	}
	return nil
}

// BindLights uploads the lighting rig. Unused point light slots are
// explicitly deactivated so stale uniforms from a previous scene cannot
// leak through.
func BindLights(sh ShaderBinder, lighting LightingDef) {
	sh.SetBool(UniformUseLighting, lighting.Enabled)
	if !lighting.Enabled {
		return
	}

	if dir := lighting.Directional; dir != nil {
		sh.SetVec3(UniformDirLightDirection, dir.Direction)
		sh.SetVec3(UniformDirLightAmbient, dir.Ambient)
		sh.SetVec3(UniformDirLightDiffuse, dir.Diffuse)
		sh.SetVec3(UniformDirLightSpecular, dir.Specular)
		sh.SetBool(UniformDirLightActive, true)
	} else {
		sh.SetBool(UniformDirLightActive, false)
	}

	for i := 0; i < maxPointLights; i++ {
		if i >= len(lighting.PointLights) {
			sh.SetBool(pointLightUniform(i, "bActive"), false)
			continue
		}
		light := lighting.PointLights[i]
		sh.SetVec3(pointLightUniform(i, "position"), light.Position)
		sh.SetVec3(pointLightUniform(i, "ambient"), light.Ambient)
		sh.SetVec3(pointLightUniform(i, "diffuse"), light.Diffuse)
		sh.SetVec3(pointLightUniform(i, "specular"), light.Specular)
		sh.SetBool(pointLightUniform(i, "bActive"), true)
	}
}

// DrawShape binds one shape's transform and surface state and emits its
// geometry.
func DrawShape(sh ShaderBinder, textures *TextureRegistry, materials *MaterialRegistry, meshes MeshProvider, shape ShapeDef) {
	model := ComposeTransform(shape.Scale,
		shape.RotationDeg.X(), shape.RotationDeg.Y(), shape.RotationDeg.Z(),
		shape.Position)
	sh.SetMat4(UniformModel, model)

	BindColor(sh, shape.Color)
	if shape.TextureTag != "" {
		BindTexture(sh, textures, shape.TextureTag)
	}
	if shape.MaterialTag != "" {
		BindMaterial(sh, materials, shape.MaterialTag)
	}

	uv := shape.UVScale
	if uv.X() == 0 && uv.Y() == 0 {
		uv = mgl32.Vec2{1, 1}
	}
	BindUVScale(sh, uv.X(), uv.Y())

	meshes.Draw(shape.Kind)
}
