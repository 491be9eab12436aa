package lumen

import (
	"math"
	"testing"
)

var allShapeKinds = []ShapeKind{
	ShapePlane, ShapeBox, ShapeCylinder, ShapeSphere, ShapeCone, ShapeTorus,
}

func TestMeshStore_GeneratesValidGeometry(t *testing.T) {
	store := NewMeshStore()

	for _, kind := range allShapeKinds {
		mesh, err := store.Load(kind)
		if err != nil {
			t.Fatalf("Load(%v) failed: %v", kind, err)
		}
		if mesh.Id == "" {
			t.Errorf("%v: expected a non-empty asset id", kind)
		}
		if len(mesh.Vertices)%vertexStride != 0 {
			t.Errorf("%v: vertex data length %d is not a multiple of the stride", kind, len(mesh.Vertices))
		}
		if len(mesh.Indices) == 0 || len(mesh.Indices)%3 != 0 {
			t.Errorf("%v: expected a non-empty triangle list, got %d indices", kind, len(mesh.Indices))
		}
		count := mesh.VertexCount()
		for _, idx := range mesh.Indices {
			if int(idx) >= count {
				t.Fatalf("%v: index %d out of range for %d vertices", kind, idx, count)
			}
		}
	}
}

func TestMeshStore_NormalsAreUnitLength(t *testing.T) {
	store := NewMeshStore()

	for _, kind := range allShapeKinds {
		mesh, err := store.Load(kind)
		if err != nil {
			t.Fatalf("Load(%v) failed: %v", kind, err)
		}
		for i := 0; i < mesh.VertexCount(); i++ {
			nx := float64(mesh.Vertices[i*vertexStride+3])
			ny := float64(mesh.Vertices[i*vertexStride+4])
			nz := float64(mesh.Vertices[i*vertexStride+5])
			length := math.Sqrt(nx*nx + ny*ny + nz*nz)
			if math.Abs(length-1) > 1e-4 {
				t.Fatalf("%v: vertex %d normal has length %v", kind, i, length)
			}
		}
	}
}

func TestMeshStore_LoadOncePerKind(t *testing.T) {
	store := NewMeshStore()

	first, err := store.Load(ShapeBox)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := store.Load(ShapeBox)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first.Id != second.Id {
		t.Errorf("Expected the cached mesh back, got a new asset id")
	}
}

func TestMeshStore_UnknownKind(t *testing.T) {
	store := NewMeshStore()

	if _, err := store.Load(ShapeKind(99)); err == nil {
		t.Errorf("Expected an error for an unknown shape kind")
	}
}

func TestBuildBox_FaceLayout(t *testing.T) {
	verts, indices := buildBox()

	if got := len(verts) / vertexStride; got != 24 {
		t.Errorf("Expected 24 vertices (4 per face), got %d", got)
	}
	if len(indices) != 36 {
		t.Errorf("Expected 36 indices (2 triangles per face), got %d", len(indices))
	}

	// All corners sit on the unit cube.
	for i := 0; i < len(verts)/vertexStride; i++ {
		for axis := 0; axis < 3; axis++ {
			v := verts[i*vertexStride+axis]
			if v != 0.5 && v != -0.5 {
				t.Fatalf("vertex %d axis %d: %v is not a cube corner coordinate", i, axis, v)
			}
		}
	}
}

func TestBuildPlane_FacesUp(t *testing.T) {
	verts, indices := buildPlane()

	if got := len(verts) / vertexStride; got != 4 {
		t.Errorf("Expected 4 vertices, got %d", got)
	}
	if len(indices) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(indices))
	}
	for i := 0; i < 4; i++ {
		if verts[i*vertexStride+4] != 1 {
			t.Errorf("vertex %d: expected +Y normal", i)
		}
	}
}
