package lumen

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ShapeKind enumerates the fixed catalog of primitives the mesh provider
// knows how to draw.
type ShapeKind int

const (
	ShapePlane ShapeKind = iota
	ShapeBox
	ShapeCylinder
	ShapeSphere
	ShapeCone
	ShapeTorus
	shapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	case ShapeCone:
		return "cone"
	case ShapeTorus:
		return "torus"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// vertexStride is floats per vertex: position (3), normal (3), uv (2).
const vertexStride = 8

// MeshAsset is the CPU-side geometry of one primitive: interleaved
// position/normal/uv vertices and a triangle index list.
type MeshAsset struct {
	Id       AssetId
	Vertices []float32
	Indices  []uint16
}

func (m MeshAsset) VertexCount() int { return len(m.Vertices) / vertexStride }

// MeshProvider exposes load-once/draw-many operations over the primitive
// catalog. Drawing a kind that was never loaded is a no-op.
type MeshProvider interface {
	Load(kind ShapeKind) error
	Draw(kind ShapeKind)
	Release()
}

// MeshStore generates and caches primitive geometry. Each kind is built at
// most once per store regardless of how many times it is drawn.
type MeshStore struct {
	meshes map[ShapeKind]MeshAsset
}

func NewMeshStore() *MeshStore {
	return &MeshStore{meshes: make(map[ShapeKind]MeshAsset)}
}

func (s *MeshStore) Load(kind ShapeKind) (MeshAsset, error) {
	if mesh, ok := s.meshes[kind]; ok {
		return mesh, nil
	}

	var vertices []float32
	var indices []uint16
	switch kind {
	case ShapePlane:
		vertices, indices = buildPlane()
	case ShapeBox:
		vertices, indices = buildBox()
	case ShapeCylinder:
		vertices, indices = buildCylinder(36)
	case ShapeSphere:
		vertices, indices = buildSphere(24, 36)
	case ShapeCone:
		vertices, indices = buildCone(36)
	case ShapeTorus:
		vertices, indices = buildTorus(36, 18, 1.0, 0.25)
	default:
		return MeshAsset{}, fmt.Errorf("unknown shape kind %v", kind)
	}

	mesh := MeshAsset{
		Id:       makeAssetId(),
		Vertices: vertices,
		Indices:  indices,
	}
	s.meshes[kind] = mesh
	return mesh, nil
}

func pushVertex(verts []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(verts, px, py, pz, nx, ny, nz, u, v)
}

// buildPlane is a unit plane on XZ spanning [-1,1], facing +Y.
func buildPlane() ([]float32, []uint16) {
	var verts []float32
	verts = pushVertex(verts, -1, 0, -1, 0, 1, 0, 0, 0)
	verts = pushVertex(verts, -1, 0, 1, 0, 1, 0, 0, 1)
	verts = pushVertex(verts, 1, 0, 1, 0, 1, 0, 1, 1)
	verts = pushVertex(verts, 1, 0, -1, 0, 1, 0, 1, 0)
	return verts, []uint16{0, 1, 2, 0, 2, 3}
}

// buildBox is a unit cube centered at the origin, one quad per face so
// normals and UVs stay per-face.
func buildBox() ([]float32, []uint16) {
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	h := float32(0.5)
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []float32
	var indices []uint16
	for _, f := range faces {
		base := uint16(len(verts) / vertexStride)
		for i, c := range f.corners {
			verts = pushVertex(verts, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// buildCylinder: radius 1, height 1, base on the XZ plane, with caps.
func buildCylinder(segments int) ([]float32, []uint16) {
	var verts []float32
	var indices []uint16

	// Side.
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(segments)
		verts = pushVertex(verts, c, 0, s, c, 0, s, u, 0)
		verts = pushVertex(verts, c, 1, s, c, 0, s, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint16(i * 2)
		indices = append(indices, base, base+1, base+2, base+2, base+1, base+3)
	}

	// Caps.
	for _, cap := range []struct {
		y, ny float32
	}{{0, -1}, {1, 1}} {
		center := uint16(len(verts) / vertexStride)
		verts = pushVertex(verts, 0, cap.y, 0, 0, cap.ny, 0, 0.5, 0.5)
		for i := 0; i <= segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			c := float32(math.Cos(angle))
			s := float32(math.Sin(angle))
			verts = pushVertex(verts, c, cap.y, s, 0, cap.ny, 0, 0.5+c/2, 0.5+s/2)
		}
		for i := 0; i < segments; i++ {
			ring := center + 1 + uint16(i)
			if cap.ny > 0 {
				indices = append(indices, center, ring, ring+1)
			} else {
				indices = append(indices, center, ring+1, ring)
			}
		}
	}

	return verts, indices
}

// buildSphere: radius 1, centered at the origin.
func buildSphere(stacks, sectors int) ([]float32, []uint16) {
	var verts []float32
	var indices []uint16

	for i := 0; i <= stacks; i++ {
		phi := math.Pi/2 - math.Pi*float64(i)/float64(stacks)
		y := float32(math.Sin(phi))
		r := float32(math.Cos(phi))
		for j := 0; j <= sectors; j++ {
			theta := 2 * math.Pi * float64(j) / float64(sectors)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			u := float32(j) / float32(sectors)
			v := float32(i) / float32(stacks)
			verts = pushVertex(verts, x, y, z, x, y, z, u, v)
		}
	}
	cols := uint16(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := uint16(i)*cols + uint16(j)
			b := a + cols
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return verts, indices
}

// buildCone: base radius 1 on the XZ plane, apex at (0,1,0), with a base
// cap.
func buildCone(segments int) ([]float32, []uint16) {
	var verts []float32
	var indices []uint16

	// Slanted side; normal tilts outward by the slope of the cone.
	slope := float32(1 / math.Sqrt2)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(segments)
		verts = pushVertex(verts, c, 0, s, c*slope, slope, s*slope, u, 0)
		verts = pushVertex(verts, 0, 1, 0, c*slope, slope, s*slope, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint16(i * 2)
		indices = append(indices, base, base+1, base+2)
	}

	// Base cap.
	center := uint16(len(verts) / vertexStride)
	verts = pushVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = pushVertex(verts, c, 0, s, 0, -1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < segments; i++ {
		ring := center + 1 + uint16(i)
		indices = append(indices, center, ring+1, ring)
	}

	return verts, indices
}

// buildTorus: ring radius ringR in the XZ plane, tube radius tubeR.
func buildTorus(ringSegments, tubeSegments int, ringR, tubeR float32) ([]float32, []uint16) {
	var verts []float32
	var indices []uint16

	for i := 0; i <= ringSegments; i++ {
		ringAngle := 2 * math.Pi * float64(i) / float64(ringSegments)
		rc := float32(math.Cos(ringAngle))
		rs := float32(math.Sin(ringAngle))
		for j := 0; j <= tubeSegments; j++ {
			tubeAngle := 2 * math.Pi * float64(j) / float64(tubeSegments)
			tc := float32(math.Cos(tubeAngle))
			ts := float32(math.Sin(tubeAngle))

			x := (ringR + tubeR*tc) * rc
			y := tubeR * ts
			z := (ringR + tubeR*tc) * rs
			nx := tc * rc
			ny := ts
			nz := tc * rs
			u := float32(i) / float32(ringSegments)
			v := float32(j) / float32(tubeSegments)
			verts = pushVertex(verts, x, y, z, nx, ny, nz, u, v)
		}
	}
	cols := uint16(tubeSegments + 1)
	for i := 0; i < ringSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			a := uint16(i)*cols + uint16(j)
			b := a + cols
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return verts, indices
}
