package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Light describes one fixed light source. Directional lights use
// Direction; positional (spot) lights use Position, SpotDirection and
// FocalStrength. The shader distinguishes them by a non-zero direction.
type Light struct {
	Index       int
	Directional bool

	Position      mgl32.Vec3
	Direction     mgl32.Vec3
	SpotDirection mgl32.Vec3

	AmbientColor  mgl32.Vec3
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3

	FocalStrength     float32
	SpecularIntensity float32
}

// LightSet is the static light configuration for the whole process.
// Apply pushes it once at startup; there is no runtime reconfiguration.
type LightSet struct {
	Lights []Light
}

func (s LightSet) Apply(stage UniformSetter) error {
	for _, l := range s.Lights {
		if l.Index < 0 || l.Index >= MaxLights {
			return fmt.Errorf("light index %d out of range [0,%d)", l.Index, MaxLights)
		}

		prefix := fmt.Sprintf("lightSources[%d].", l.Index)

		writes := []uniformWrite{
			{prefix + "ambientColor", l.AmbientColor},
			{prefix + "diffuseColor", l.DiffuseColor},
			{prefix + "specularColor", l.SpecularColor},
			{prefix + "specularIntensity", l.SpecularIntensity},
		}
		if l.Directional {
			writes = append(writes, uniformWrite{prefix + "direction", l.Direction})
		} else {
			writes = append(writes,
				uniformWrite{prefix + "position", l.Position},
				uniformWrite{prefix + "spotDirection", l.SpotDirection},
				uniformWrite{prefix + "focalStrength", l.FocalStrength},
			)
		}

		if err := pushAll(stage, writes); err != nil {
			return err
		}
	}

	return stage.SetUniform("bUseLighting", true)
}
