package engine

import "github.com/go-gl/mathgl/mgl32"

// Material is a reflectance description pushed to the shading stage
// before a draw call.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry keeps materials in definition order. Lookups scan
// linearly and the first match wins, so redefining a tag has no effect
// on lookups.
type MaterialRegistry struct {
	entries []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material. Duplicate tags are not rejected.
func (r *MaterialRegistry) Define(m Material) {
	r.entries = append(r.entries, m)
}

// Find returns the first material defined under tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.entries {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int {
	return len(r.entries)
}

// Apply pushes the material's reflectance values to the shading stage.
func (m Material) Apply(stage UniformSetter) error {
	return pushAll(stage, []uniformWrite{
		{"material.ambientColor", m.AmbientColor},
		{"material.ambientStrength", m.AmbientStrength},
		{"material.diffuseColor", m.DiffuseColor},
		{"material.specularColor", m.SpecularColor},
		{"material.shininess", m.Shininess},
	})
}
