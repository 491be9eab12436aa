package lumen

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// RendererTag marks that a renderer has been installed into the App.
// Only one renderer can be installed at a time.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer enforces the single-renderer invariant, panicking
// at install time if a different renderer is already present.
func ensureSingleRenderer(app *App, name string) {
	if tag := GetResource[RendererTag](app); tag != nil {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic("Multiple renderers installed: " + tag.Name + " and " + name)
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

// RendererModule draws a SceneDef through OpenGL every frame: view and
// projection upload, then per shape transform/texture/material binding
// and an indexed draw. P and O select perspective and orthographic
// projection respectively.
type RendererModule struct {
	Scene *SceneDef

	// Shader sources; empty fields fall back to the default pair.
	VertexShader   string
	FragmentShader string

	shader    *GLShader
	textures  *TextureRegistry
	materials *MaterialRegistry
	meshes    *GLMeshProvider
}

func (m *RendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, "gl")

	if GetResource[WindowState](app) == nil {
		panic("RendererModule requires a WindowState resource; install PlatformWindowModule first")
	}
	if m.Scene == nil {
		m.Scene = &SceneDef{}
	}
	log := app.Logger()

	vertexSource := m.VertexShader
	if vertexSource == "" {
		vertexSource = DefaultVertexShader
	}
	fragmentSource := m.FragmentShader
	if fragmentSource == "" {
		fragmentSource = DefaultFragmentShader
	}
	shader, err := NewGLShader(vertexSource, fragmentSource)
	if err != nil {
		panic("failed to build scene shader: " + err.Error())
	}
	m.shader = shader

	m.textures = NewTextureRegistry(NewGLTextureBackend(), log)
	m.materials = NewMaterialRegistry()
	m.meshes = NewGLMeshProvider(NewMeshStore(), log)

	if err := LoadSceneResources(m.Scene, m.textures, m.materials, m.meshes, log); err != nil {
		panic("failed to load scene resources: " + err.Error())
	}
	m.textures.BindAll()

	m.shader.Use()
	BindLights(m.shader, m.Scene.Lighting)
	log.Infof("Renderer ready: %d shapes, %d textures, %d materials",
		len(m.Scene.Shapes), m.textures.Count(), m.materials.Count())

	cmd.AddResources(NewProjectionSelector())
	app.UseSystem(
		System(projectionSelectSystem).InStage(Update),
	)
	app.UseSystem(
		System(m.renderSystem).InStage(Render),
	)
	app.OnShutdown(func() {
		m.textures.ReleaseAll()
		m.meshes.Release()
		m.shader.Release()
	})
}

// projectionSelectSystem maps the projection hotkeys: P for perspective,
// O for the orthographic overview. Holding a key reselects the active
// state, which is a no-op.
func projectionSelectSystem(input *Input, selector *ProjectionSelector, cam *Camera) {
	if input.Pressed[KeyP] {
		selector.UsePerspective(cam)
	}
	if input.Pressed[KeyO] {
		selector.UseOrthographic(cam)
	}
}

func (m *RendererModule) renderSystem(cam *Camera, selector *ProjectionSelector, vp *ViewportConfig) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	m.shader.Use()
	m.shader.SetMat4(UniformView, cam.ViewMatrix())
	m.shader.SetMat4(UniformProjection, selector.Matrix(cam, vp))
	m.shader.SetVec3(UniformViewPosition, cam.Position)

	for _, shape := range m.Scene.Shapes {
		DrawShape(m.shader, m.textures, m.materials, m.meshes, shape)
	}
}
