// Package scene renders a fixed, declaratively described 3D scene: an
// ordered list of objects, each pairing a transform with a texture or
// flat color, a material and a mesh shape. Registries are populated
// once by Prepare; Render replays the list every frame.
package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/wking83/CS330-Graphic-and-Visualization/engine"
)

// Kind selects a mesh primitive.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Cone
	Sphere
	HalfSphere
	Torus
	HalfTorus
	Prism
)

// CylinderParts selects which parts of a cylinder to draw.
type CylinderParts struct {
	Top, Bottom, Side bool
}

// Shape is a primitive plus partial-draw options: a single box side, or
// a cylinder with caps suppressed. The zero options draw the whole mesh.
type Shape struct {
	Kind  Kind
	Side  string         // box side name; empty draws all sides
	Parts *CylinderParts // cylinder part selection; nil draws everything
}

// Drawer provides mesh geometry: one load and one draw operation per
// primitive shape.
type Drawer interface {
	Load(kinds ...Kind)
	Draw(shape Shape)
	Release()
}

// Transform holds the per-object placement values. Rotation is in
// degrees per axis and composed in the fixed X, Y, Z order.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Translation mgl32.Vec3
}

// Object is one step of the scene script.
type Object struct {
	Name      string
	Shape     Shape
	Transform Transform

	Texture string     // texture tag; empty renders with Color instead
	Color   mgl32.Vec4 // flat color when untextured
	UVScale mgl32.Vec2 // zero value means no tiling (1,1)

	Material string // material tag; empty keeps the current material
}

// TextureFile names an image to load at preparation time.
type TextureFile struct {
	File string
	Tag  string
}

// Config wires a scene to its collaborators and carries the scene data.
type Config struct {
	Stage   engine.UniformSetter
	Backend engine.TextureBackend
	Drawer  Drawer

	TextureDir string
	Textures   []TextureFile
	Materials  []engine.Material
	Lights     engine.LightSet
	Preload    []Kind // meshes to load even when no object uses them
	Objects    []Object
}

// Scene is the context object owning the resource registries and a
// handle to the shading stage. There are no package-level singletons;
// everything a draw needs flows through here.
type Scene struct {
	stage     engine.UniformSetter
	textures  *engine.TextureRegistry
	materials *engine.MaterialRegistry
	drawer    Drawer

	textureDir   string
	textureFiles []TextureFile
	materialDefs []engine.Material
	lights       engine.LightSet
	preload      []Kind
	objects      []Object
}

func New(cfg Config) *Scene {
	return &Scene{
		stage:     cfg.Stage,
		textures:  engine.NewTextureRegistry(cfg.Backend),
		materials: engine.NewMaterialRegistry(),
		drawer:    cfg.Drawer,

		textureDir:   cfg.TextureDir,
		textureFiles: cfg.Textures,
		materialDefs: cfg.Materials,
		lights:       cfg.Lights,
		preload:      cfg.Preload,
		objects:      cfg.Objects,
	}
}

// Textures exposes the texture registry (for release and inspection).
func (s *Scene) Textures() *engine.TextureRegistry { return s.textures }

// Materials exposes the material registry.
func (s *Scene) Materials() *engine.MaterialRegistry { return s.materials }

// Prepare loads textures, defines materials, applies the light set and
// loads mesh geometry. A texture that fails to load is logged and
// skipped; the scene keeps rendering without it. Calling Prepare twice
// loads and defines everything twice.
func (s *Scene) Prepare() error {
	for _, tf := range s.textureFiles {
		if err := s.textures.Load(filepath.Join(s.textureDir, tf.File), tf.Tag); err != nil {
			log.Printf("scene: %v (rendering without %q)", err, tf.Tag)
		}
	}
	s.textures.BindAll()

	for _, m := range s.materialDefs {
		s.materials.Define(m)
	}

	if err := s.lights.Apply(s.stage); err != nil {
		return err
	}

	s.drawer.Load(s.usedKinds()...)
	return nil
}

func (s *Scene) usedKinds() []Kind {
	seen := make(map[Kind]bool)
	var kinds []Kind
	add := func(k Kind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for _, k := range s.preload {
		add(k)
	}
	for _, o := range s.objects {
		add(o.Shape.Kind)
	}
	return kinds
}

// Render executes the scene script in order. No lookups are cached;
// each object re-resolves its texture and material tags.
func (s *Scene) Render() error {
	for i := range s.objects {
		if err := s.renderObject(&s.objects[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) renderObject(o *Object) error {
	t := o.Transform
	model := engine.Compose(t.Scale,
		t.RotationDeg.X(), t.RotationDeg.Y(), t.RotationDeg.Z(),
		t.Translation)
	if err := s.stage.SetUniform("model", model); err != nil {
		return err
	}

	if o.Texture != "" {
		if err := s.stage.SetUniform("bUseTexture", true); err != nil {
			return err
		}
		// a -1 slot (failed or missing load) is a valid "no texture"
		// sampler value; the object still draws
		if err := s.stage.SetUniform("objectTexture", s.textures.Slot(o.Texture)); err != nil {
			return err
		}
	} else {
		if err := s.stage.SetUniform("bUseTexture", false); err != nil {
			return err
		}
		if err := s.stage.SetUniform("objectColor", o.Color); err != nil {
			return err
		}
	}

	uv := o.UVScale
	if uv == (mgl32.Vec2{}) {
		uv = mgl32.Vec2{1, 1}
	}
	if err := s.stage.SetUniform("UVscale", uv); err != nil {
		return err
	}

	if o.Material != "" {
		if m, found := s.materials.Find(o.Material); found {
			if err := m.Apply(s.stage); err != nil {
				return err
			}
		}
		// a missing material keeps the previously pushed one
	}

	s.drawer.Draw(o.Shape)
	return nil
}

// Release frees the GPU resources the scene owns.
func (s *Scene) Release() {
	s.textures.ReleaseAll()
	s.drawer.Release()
}
