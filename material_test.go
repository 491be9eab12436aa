package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRegistry_DefineAndResolve(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define("wood", mgl32.Vec3{0.4, 0.3, 0.1}, mgl32.Vec3{0.1, 0.1, 0.1}, 22)
	registry.Define("glass", mgl32.Vec3{0.3, 0.4, 0.4}, mgl32.Vec3{0.6, 0.6, 0.6}, 85)

	assert.Equal(t, 2, registry.Count())

	material, ok := registry.Resolve("glass")
	require.True(t, ok)
	assert.Equal(t, "glass", material.Tag)
	assert.Equal(t, mgl32.Vec3{0.3, 0.4, 0.4}, material.DiffuseColor)
	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.6}, material.SpecularColor)
	assert.Equal(t, float32(85), material.Shininess)
}

func TestMaterialRegistry_ResolveMiss(t *testing.T) {
	registry := NewMaterialRegistry()

	material, ok := registry.Resolve("nope")
	assert.False(t, ok)
	assert.Equal(t, Material{}, material)

	registry.Define("wood", mgl32.Vec3{}, mgl32.Vec3{}, 1)
	_, ok = registry.Resolve("nope")
	assert.False(t, ok)
}

func TestMaterialRegistry_DuplicateTagFirstMatch(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define("wood", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 10)
	registry.Define("wood", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, 20)

	assert.Equal(t, 2, registry.Count())

	material, ok := registry.Resolve("wood")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, material.DiffuseColor)
	assert.Equal(t, float32(10), material.Shininess)
}

func TestMaterialRegistry_NegativeShininessFloored(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define("odd", mgl32.Vec3{}, mgl32.Vec3{}, -5)

	material, ok := registry.Resolve("odd")
	require.True(t, ok)
	assert.Equal(t, float32(0), material.Shininess)
}
