package scene

import "github.com/wking83/CS330-Graphic-and-Visualization/engine"

// MeshSet builds and caches one GPU mesh per primitive kind. A kind is
// uploaded at most once no matter how often it is loaded or drawn, so
// preparation may run repeatedly without duplicating geometry.
type MeshSet struct {
	torusTube float32
	meshes    map[Kind]*engine.Mesh
}

// NewMeshSet creates an empty set; torusTube is the tube radius used
// for the torus and half-torus meshes.
func NewMeshSet(torusTube float32) *MeshSet {
	return &MeshSet{
		torusTube: torusTube,
		meshes:    make(map[Kind]*engine.Mesh),
	}
}

// Load uploads the given kinds if they are not resident yet.
func (s *MeshSet) Load(kinds ...Kind) {
	for _, k := range kinds {
		s.ensure(k)
	}
}

func (s *MeshSet) ensure(k Kind) *engine.Mesh {
	if m, found := s.meshes[k]; found {
		return m
	}

	var data *engine.MeshData
	switch k {
	case Plane:
		data = engine.PlaneData()
	case Box:
		data = engine.BoxData()
	case Cylinder:
		data = engine.CylinderData()
	case Cone:
		data = engine.ConeData()
	case Sphere:
		data = engine.SphereData()
	case HalfSphere:
		data = engine.HalfSphereData()
	case Torus:
		data = engine.TorusData(s.torusTube)
	case HalfTorus:
		data = engine.HalfTorusData(s.torusTube)
	case Prism:
		data = engine.PrismData()
	default:
		return nil
	}

	m := engine.NewMesh(data)
	s.meshes[k] = m
	return m
}

// Draw renders the shape, honoring box side selection and cylinder part
// suppression.
func (s *MeshSet) Draw(shape Shape) {
	m := s.ensure(shape.Kind)
	if m == nil {
		return
	}

	switch {
	case shape.Kind == Box && shape.Side != "":
		m.DrawGroup(shape.Side)

	case shape.Kind == Cylinder && shape.Parts != nil:
		if shape.Parts.Top {
			m.DrawGroup("top")
		}
		if shape.Parts.Bottom {
			m.DrawGroup("bottom")
		}
		if shape.Parts.Side {
			m.DrawGroup("side")
		}

	default:
		m.Draw()
	}
}

// Release frees every resident mesh.
func (s *MeshSet) Release() {
	for k, m := range s.meshes {
		m.Release()
		delete(s.meshes, k)
	}
}
