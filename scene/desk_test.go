package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func deskForTest() *Scene {
	return Desk(&fakeStage{}, &fakeBackend{}, &fakeDrawer{}, "textures")
}

func TestDesk_Inventory(t *testing.T) {
	s := deskForTest()

	if len(s.textureFiles) != 8 {
		t.Errorf("desk scene lists %d textures, expected 8", len(s.textureFiles))
	}
	if len(s.materialDefs) != 7 {
		t.Errorf("desk scene lists %d materials, expected 7", len(s.materialDefs))
	}
	if len(s.lights.Lights) != 2 {
		t.Errorf("desk scene lists %d lights, expected 2", len(s.lights.Lights))
	}
	if len(s.objects) != 17 {
		t.Errorf("desk scene lists %d objects, expected 17", len(s.objects))
	}
}

func TestDesk_ObjectDetails(t *testing.T) {
	s := deskForTest()

	byName := make(map[string]*Object)
	for i := range s.objects {
		byName[s.objects[i].Name] = &s.objects[i]
	}

	lip, found := byName["mug lip"]
	if !found {
		t.Fatalf("desk scene has no mug lip")
	}
	if lip.Shape.Kind != Torus {
		t.Errorf("mug lip kind = %v, expected the torus", lip.Shape.Kind)
	}
	if lip.Transform.RotationDeg != (mgl32.Vec3{90, 0, 0}) {
		t.Errorf("mug lip rotation = %v, expected a 90 degree X tilt", lip.Transform.RotationDeg)
	}
	if lip.Transform.Translation != (mgl32.Vec3{-5.5, 2.29, 4}) {
		t.Errorf("mug lip translation = %v, expected {-5.5 2.29 4}", lip.Transform.Translation)
	}

	face, found := byName["keyboard face"]
	if !found {
		t.Fatalf("desk scene has no keyboard face")
	}
	if face.Shape.Kind != Box || face.Shape.Side != "top" {
		t.Errorf("keyboard face shape = %+v, expected the box top", face.Shape)
	}
	if face.Texture != "keyboard" || face.Material != "plastic" {
		t.Errorf("keyboard face uses texture %q, material %q; expected keyboard, plastic",
			face.Texture, face.Material)
	}

	coffee, found := byName["coffee surface"]
	if !found {
		t.Fatalf("desk scene has no coffee surface")
	}
	if coffee.Shape.Parts == nil || !coffee.Shape.Parts.Top ||
		coffee.Shape.Parts.Bottom || coffee.Shape.Parts.Side {
		t.Errorf("coffee surface parts = %+v, expected the top cap only", coffee.Shape.Parts)
	}

	hinge, found := byName["screen hinge"]
	if !found {
		t.Fatalf("desk scene has no screen hinge")
	}
	if hinge.Texture != "" || hinge.Material != "" {
		t.Errorf("screen hinge has texture %q, material %q; expected neither", hinge.Texture, hinge.Material)
	}
	if hinge.Color != (mgl32.Vec4{0.1, 0.1, 0.1, 1}) {
		t.Errorf("screen hinge color = %v, expected dark gray", hinge.Color)
	}
}

func TestDesk_MaterialsAndLights(t *testing.T) {
	s := deskForTest()

	var screen *Object
	for i := range s.objects {
		if s.objects[i].Name == "screen face" {
			screen = &s.objects[i]
		}
	}
	if screen == nil {
		t.Fatalf("desk scene has no screen face")
	}

	found := false
	for _, m := range s.materialDefs {
		if m.Tag == screen.Material {
			found = true
			if m.Shininess != 128 {
				t.Errorf("screen material shininess = %v, expected 128", m.Shininess)
			}
		}
	}
	if !found {
		t.Errorf("screen face references undefined material %q", screen.Material)
	}

	overhead := s.lights.Lights[0]
	if !overhead.Directional || overhead.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("first light = %+v, expected a straight-down directional light", overhead)
	}

	glow := s.lights.Lights[1]
	if glow.Directional {
		t.Errorf("second light is directional, expected the positional monitor glow")
	}
	if glow.FocalStrength != 3 || glow.SpecularIntensity != 0.05 {
		t.Errorf("monitor glow focus = %v/%v, expected 3 and 0.05",
			glow.FocalStrength, glow.SpecularIntensity)
	}
}

func TestDesk_PrepareTwiceDuplicates(t *testing.T) {
	s := deskForTest()

	// texture files are absent in the test environment; loads are
	// logged and skipped, everything else proceeds
	if err := s.Prepare(); err != nil {
		t.Fatalf("first Prepare: %v", err)
	}
	if s.Materials().Len() != 7 {
		t.Fatalf("material registry has %d entries, expected 7", s.Materials().Len())
	}

	if err := s.Prepare(); err != nil {
		t.Fatalf("second Prepare: %v", err)
	}
	if s.Materials().Len() != 14 {
		t.Errorf("material registry has %d entries after two prepares, expected 14", s.Materials().Len())
	}
}

func TestDesk_ReferencesResolve(t *testing.T) {
	s := deskForTest()

	textures := make(map[string]bool)
	for _, tf := range s.textureFiles {
		textures[tf.Tag] = true
	}
	materials := make(map[string]bool)
	for _, m := range s.materialDefs {
		materials[m.Tag] = true
	}

	for _, o := range s.objects {
		if o.Texture != "" && !textures[o.Texture] {
			t.Errorf("object %q references unknown texture %q", o.Name, o.Texture)
		}
		if o.Material != "" && !materials[o.Material] {
			t.Errorf("object %q references unknown material %q", o.Name, o.Material)
		}
	}
}
