package scene

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/wking83/CS330-Graphic-and-Visualization/engine"
)

type write struct {
	name  string
	value any
}

type fakeStage struct {
	writes []write
}

func (s *fakeStage) Use() {}

func (s *fakeStage) SetUniform(name string, value any) error {
	s.writes = append(s.writes, write{name, value})
	return nil
}

func (s *fakeStage) last(name string) (any, bool) {
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].name == name {
			return s.writes[i].value, true
		}
	}
	return nil, false
}

func (s *fakeStage) count(name string) int {
	n := 0
	for _, w := range s.writes {
		if w.name == name {
			n++
		}
	}
	return n
}

type fakeBackend struct {
	created int
	deleted []uint32
}

func (b *fakeBackend) Create(*image.NRGBA) uint32 {
	b.created++
	return uint32(b.created)
}

func (b *fakeBackend) Bind(int, uint32) {}

func (b *fakeBackend) Delete(handle uint32) {
	b.deleted = append(b.deleted, handle)
}

type fakeDrawer struct {
	loaded   []Kind
	drawn    []Shape
	released bool
}

func (d *fakeDrawer) Load(kinds ...Kind) { d.loaded = append(d.loaded, kinds...) }
func (d *fakeDrawer) Draw(shape Shape)   { d.drawn = append(d.drawn, shape) }
func (d *fakeDrawer) Release()           { d.released = true }

func texturePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func testScene(t *testing.T) (*Scene, *fakeStage, *fakeBackend, *fakeDrawer) {
	t.Helper()
	dir := t.TempDir()
	texturePNG(t, dir, "wood.png")
	texturePNG(t, dir, "metal.png")

	stage := &fakeStage{}
	backend := &fakeBackend{}
	drawer := &fakeDrawer{}

	s := New(Config{
		Stage:      stage,
		Backend:    backend,
		Drawer:     drawer,
		TextureDir: dir,
		Textures: []TextureFile{
			{File: "wood.png", Tag: "wood"},
			{File: "metal.png", Tag: "metal"},
			{File: "absent.png", Tag: "absent"}, // load fails, scene degrades
		},
		Materials: []engine.Material{
			{Tag: "shiny", Shininess: 64},
		},
		Lights: engine.LightSet{Lights: []engine.Light{
			{Index: 0, Directional: true, Direction: mgl32.Vec3{0, -1, 0}},
		}},
		Preload: []Kind{Sphere, Box},
		Objects: []Object{
			{
				Name:      "slab",
				Shape:     Shape{Kind: Box, Side: "top"},
				Transform: Transform{Scale: mgl32.Vec3{2, 1, 1}, Translation: mgl32.Vec3{1, 0, 0}},
				Texture:   "wood",
				UVScale:   mgl32.Vec2{4, 2},
				Material:  "shiny",
			},
			{
				Name:      "ball",
				Shape:     Shape{Kind: Sphere},
				Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
				Color:     mgl32.Vec4{0.5, 0.5, 0.5, 1},
				Material:  "missing",
			},
			{
				Name:    "ghost",
				Shape:   Shape{Kind: Plane},
				Texture: "absent",
			},
		},
	})
	return s, stage, backend, drawer
}

func TestScene_Prepare(t *testing.T) {
	s, stage, backend, drawer := testScene(t)

	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if s.Textures().Len() != 2 {
		t.Errorf("texture registry has %d entries, expected 2 (one file is absent)", s.Textures().Len())
	}
	if backend.created != 2 {
		t.Errorf("backend created %d textures, expected 2", backend.created)
	}
	if s.Materials().Len() != 1 {
		t.Errorf("material registry has %d entries, expected 1", s.Materials().Len())
	}
	if v, found := stage.last("bUseLighting"); !found || v != true {
		t.Errorf("bUseLighting = %v, %v; expected true, true", v, found)
	}

	// preload plus object kinds, deduplicated
	expected := []Kind{Sphere, Box, Plane}
	if len(drawer.loaded) != len(expected) {
		t.Fatalf("Load received %v, expected %v", drawer.loaded, expected)
	}
	for i, k := range expected {
		if drawer.loaded[i] != k {
			t.Fatalf("Load received %v, expected %v", drawer.loaded, expected)
		}
	}
}

func TestScene_PrepareTwiceDuplicates(t *testing.T) {
	s, _, backend, _ := testScene(t)

	if err := s.Prepare(); err != nil {
		t.Fatalf("first Prepare: %v", err)
	}
	if err := s.Prepare(); err != nil {
		t.Fatalf("second Prepare: %v", err)
	}

	if s.Textures().Len() != 4 {
		t.Errorf("texture registry has %d entries after two prepares, expected 4", s.Textures().Len())
	}
	if backend.created != 4 {
		t.Errorf("backend created %d textures, expected 4", backend.created)
	}
	if s.Materials().Len() != 2 {
		t.Errorf("material registry has %d entries after two prepares, expected 2", s.Materials().Len())
	}
}

func TestScene_Render(t *testing.T) {
	s, stage, _, drawer := testScene(t)
	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	stage.writes = nil

	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(drawer.drawn) != 3 {
		t.Fatalf("Draw called %d times, expected 3", len(drawer.drawn))
	}
	if drawer.drawn[0] != (Shape{Kind: Box, Side: "top"}) {
		t.Errorf("first draw = %+v, expected the box top", drawer.drawn[0])
	}
	if drawer.drawn[1].Kind != Sphere {
		t.Errorf("second draw = %+v, expected the sphere", drawer.drawn[1])
	}

	if n := stage.count("model"); n != 3 {
		t.Errorf("model written %d times, expected 3", n)
	}
	if v, found := stage.last("UVscale"); !found || v != (mgl32.Vec2{1, 1}) {
		t.Errorf("last UVscale = %v, expected the {1 1} default", v)
	}
	if n := stage.count("material.shininess"); n != 1 {
		t.Errorf("material pushed %d times, expected 1 (missing tag keeps current)", n)
	}
	if v, found := stage.last("objectColor"); !found || v != (mgl32.Vec4{0.5, 0.5, 0.5, 1}) {
		t.Errorf("objectColor = %v, expected the ball's flat color", v)
	}
}

func TestScene_RenderDegradedTexture(t *testing.T) {
	s, stage, _, _ := testScene(t)
	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	stage.writes = nil

	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// the "ghost" object references the texture that failed to load;
	// it still draws, with the -1 sentinel as sampler value
	if v, found := stage.last("objectTexture"); !found || v != -1 {
		t.Errorf("last objectTexture = %v, %v; expected -1, true", v, found)
	}
	if v, found := stage.last("bUseTexture"); !found || v != true {
		t.Errorf("last bUseTexture = %v, %v; expected true, true", v, found)
	}
}

func TestScene_Release(t *testing.T) {
	s, _, backend, drawer := testScene(t)
	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	s.Release()

	if len(backend.deleted) != 2 {
		t.Errorf("Release deleted %d textures, expected 2", len(backend.deleted))
	}
	if !drawer.released {
		t.Errorf("Release did not release the drawer")
	}
	if s.Textures().Len() != 0 {
		t.Errorf("texture registry has %d entries after Release, expected 0", s.Textures().Len())
	}
}
