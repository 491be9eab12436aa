package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named set of surface properties bound into the shader
// per draw. Immutable after definition.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialRegistry stores materials in definition order. Tags are not
// deduplicated: defining the same tag again just appends another entry,
// and Resolve keeps returning the earliest match.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material. Negative shininess is floored at zero.
func (r *MaterialRegistry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
	if shininess < 0 {
		shininess = 0
	}
	r.materials = append(r.materials, Material{
		Tag:           tag,
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	})
}

// Resolve finds the first material with the given tag. A miss (including
// an empty registry) returns false; the caller leaves previously bound
// material values untouched.
func (r *MaterialRegistry) Resolve(tag string) (Material, bool) {
	for _, material := range r.materials {
		if material.Tag == tag {
			return material, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}
