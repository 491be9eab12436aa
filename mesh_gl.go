package lumen

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// GLMeshProvider uploads primitive geometry from a MeshStore into vertex
// arrays and issues indexed draws. Requires a current GL context.
type GLMeshProvider struct {
	store  *MeshStore
	log    Logger
	meshes map[ShapeKind]glMesh
}

func NewGLMeshProvider(store *MeshStore, log Logger) *GLMeshProvider {
	if log == nil {
		log = NewNopLogger()
	}
	return &GLMeshProvider{
		store:  store,
		log:    log,
		meshes: make(map[ShapeKind]glMesh),
	}
}

// Load generates the geometry for a kind (once) and uploads it.
func (p *GLMeshProvider) Load(kind ShapeKind) error {
	if _, ok := p.meshes[kind]; ok {
		return nil
	}

	asset, err := p.store.Load(kind)
	if err != nil {
		return err
	}

	var mesh glMesh
	mesh.indexCount = int32(len(asset.Indices))

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(asset.Vertices)*4, gl.Ptr(asset.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(asset.Indices)*2, gl.Ptr(asset.Indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)

	p.meshes[kind] = mesh
	p.log.Debugf("Uploaded %v mesh: %d vertices, %d indices", kind, asset.VertexCount(), mesh.indexCount)
	return nil
}

// Draw renders a previously loaded kind under the currently bound shader
// state. Drawing an unloaded kind is a logged no-op.
func (p *GLMeshProvider) Draw(kind ShapeKind) {
	mesh, ok := p.meshes[kind]
	if !ok {
		p.log.Warnf("Draw of unloaded mesh %v skipped", kind)
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Release frees all uploaded buffers. Idempotent.
func (p *GLMeshProvider) Release() {
	for kind, mesh := range p.meshes {
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
		gl.DeleteVertexArrays(1, &mesh.vao)
		delete(p.meshes, kind)
	}
}
