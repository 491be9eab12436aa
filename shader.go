package lumen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names are a contract with the shader program and must remain
// stable; renaming one here silently breaks any shader built against the
// old name.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"

	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"

	UniformMaterialDiffuse   = "material.diffuseColor"
	UniformMaterialSpecular  = "material.specularColor"
	UniformMaterialShininess = "material.shininess"

	UniformDirLightDirection = "directionalLight.direction"
	UniformDirLightAmbient   = "directionalLight.ambient"
	UniformDirLightDiffuse   = "directionalLight.diffuse"
	UniformDirLightSpecular  = "directionalLight.specular"
	UniformDirLightActive    = "directionalLight.bActive"
)

// maxPointLights matches the shader's pointLights array size.
const maxPointLights = 4

func pointLightUniform(index int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", index, field)
}

// ShaderBinder accepts named uniform assignments. The renderer implements
// it over a GL program; tests implement it as a recorder.
type ShaderBinder interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	SetSampler(name string, slot int32)
}

// BindColor sets a flat base color for the next draw and disables
// texturing.
func BindColor(sh ShaderBinder, color mgl32.Vec4) {
	sh.SetBool(UniformUseTexture, false)
	sh.SetVec4(UniformObjectColor, color)
}

// BindTexture resolves the tag to a slot and points the object sampler at
// it. An unknown tag is non-fatal: texturing is switched off and the draw
// proceeds with the base color.
func BindTexture(sh ShaderBinder, textures *TextureRegistry, tag string) {
	slot, ok := textures.ResolveSlot(tag)
	if !ok {
		sh.SetBool(UniformUseTexture, false)
		return
	}
	sh.SetBool(UniformUseTexture, true)
	sh.SetSampler(UniformObjectTexture, int32(slot))
}

// BindMaterial resolves the tag and uploads the material properties. A
// miss leaves the previously bound values in place.
func BindMaterial(sh ShaderBinder, materials *MaterialRegistry, tag string) {
	material, ok := materials.Resolve(tag)
	if !ok {
		return
	}
	sh.SetVec3(UniformMaterialDiffuse, material.DiffuseColor)
	sh.SetVec3(UniformMaterialSpecular, material.SpecularColor)
	sh.SetFloat(UniformMaterialShininess, material.Shininess)
}

// BindUVScale sets the texture coordinate scale for the next draw.
func BindUVScale(sh ShaderBinder, u, v float32) {
	sh.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}
