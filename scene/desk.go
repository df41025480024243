package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wking83/CS330-Graphic-and-Visualization/engine"
)

// DeskTorusTube is the tube radius the desk scene's torus meshes are
// authored against (the mug lip and handle thickness).
const DeskTorusTube = 0.1

// Desk builds the desk scene: a textured floor and table carrying a
// coffee mug, keyboard, monitor, mouse and book. The object list keeps
// the exact transform values the scene was modeled with.
func Desk(stage engine.UniformSetter, backend engine.TextureBackend, drawer Drawer, textureDir string) *Scene {
	return New(Config{
		Stage:      stage,
		Backend:    backend,
		Drawer:     drawer,
		TextureDir: textureDir,

		Textures: []TextureFile{
			{File: "desk.jpg", Tag: "desk"},
			{File: "coffee.jpg", Tag: "coffee"},
			{File: "mug.jpg", Tag: "mug"},
			{File: "wood_light_seamless.jpg", Tag: "floor"},
			{File: "keyboard.jpg", Tag: "keyboard"},
			{File: "screen.jpg", Tag: "screen"},
			{File: "mug_handle.jpg", Tag: "handle"},
			{File: "paper_book.jpg", Tag: "paper_book"},
		},

		Materials: []engine.Material{
			{
				Tag:             "mug",
				AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
				AmbientStrength: 0.2,
				DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
				SpecularColor:   mgl32.Vec3{0.02, 0.02, 0.02},
				Shininess:       4.0,
			},
			{
				Tag:             "wood",
				AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
				AmbientStrength: 0.2,
				DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
				SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
				Shininess:       0.3,
			},
			{
				Tag:             "plastic",
				AmbientColor:    mgl32.Vec3{0.25, 0.25, 0.25},
				AmbientStrength: 0.25,
				DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
				SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
				Shininess:       30.0,
			},
			{
				Tag:             "mugHandle",
				AmbientColor:    mgl32.Vec3{0.4, 0.2, 0.05},
				AmbientStrength: 0.3,
				DiffuseColor:    mgl32.Vec3{0.96, 0.45, 0.18},
				SpecularColor:   mgl32.Vec3{0.03, 0.015, 0.01},
				Shininess:       6.0,
			},
			{
				Tag:             "screen",
				AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
				AmbientStrength: 0.2,
				DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
				SpecularColor:   mgl32.Vec3{1.0, 1.0, 1.0},
				Shininess:       128.0,
			},
			{
				Tag:             "book_cover",
				AmbientColor:    mgl32.Vec3{0.2, 0.25, 0.3},
				AmbientStrength: 0.3,
				DiffuseColor:    mgl32.Vec3{0.5, 0.7, 1.0},
				SpecularColor:   mgl32.Vec3{0.05, 0.05, 0.05},
				Shininess:       8.0,
			},
			{
				Tag:             "book_side",
				AmbientColor:    mgl32.Vec3{0.85, 0.85, 0.8},
				AmbientStrength: 0.2,
				DiffuseColor:    mgl32.Vec3{0.75, 0.75, 0.7},
				SpecularColor:   mgl32.Vec3{0.02, 0.02, 0.02},
				Shininess:       4.0,
			},
		},

		Lights: engine.LightSet{
			Lights: []engine.Light{
				{
					// overhead fill
					Index:             0,
					Directional:       true,
					Direction:         mgl32.Vec3{0.0, -1.0, 0.0},
					AmbientColor:      mgl32.Vec3{0.55, 0.55, 0.5},
					DiffuseColor:      mgl32.Vec3{0.65, 0.65, 0.6},
					SpecularColor:     mgl32.Vec3{0.0, 0.0, 0.0},
					SpecularIntensity: 0.0,
				},
				{
					// monitor glow
					Index:             1,
					Position:          mgl32.Vec3{0.0, 2.77, -0.4},
					SpotDirection:     mgl32.Vec3{0.0, -0.1, 0.8},
					AmbientColor:      mgl32.Vec3{0.04, 0.05, 0.1},
					DiffuseColor:      mgl32.Vec3{0.1, 0.15, 0.4},
					SpecularColor:     mgl32.Vec3{0.1, 0.1, 0.2},
					FocalStrength:     3.0,
					SpecularIntensity: 0.05,
				},
			},
		},

		// the cone, sphere and prism are kept resident for the scene
		// even though no current object draws them
		Preload: []Kind{Plane, Box, Cylinder, Cone, Sphere, Torus, Prism},

		Objects: deskObjects(),
	})
}

func deskObjects() []Object {
	return []Object{
		{
			Name:  "floor",
			Shape: Shape{Kind: Plane},
			Transform: Transform{
				Scale:       mgl32.Vec3{20.0, 1.0, 15.0},
				Translation: mgl32.Vec3{0.0, 0.0, 0.0},
			},
			Texture:  "floor",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "wood",
		},
		{
			// top of the cylinder only, drawn as the coffee surface
			Name:  "coffee surface",
			Shape: Shape{Kind: Cylinder, Parts: &CylinderParts{Top: true}},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.8, 1.8, 0.8},
				Translation: mgl32.Vec3{-5.5, 0.5, 4.0},
			},
			Texture: "coffee",
			UVScale: mgl32.Vec2{1.0, 1.0},
		},
		{
			Name:  "mug body",
			Shape: Shape{Kind: Cylinder},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.8, 1.8, 0.8},
				Translation: mgl32.Vec3{-5.5, 0.5, 4.0},
			},
			Texture:  "mug",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "mug",
		},
		{
			Name:  "mug lip",
			Shape: Shape{Kind: Torus},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.745, 0.745, 0.27},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				Translation: mgl32.Vec3{-5.5, 2.29, 4.0},
			},
			Texture:  "mug",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "mug",
		},
		{
			Name:  "mug handle",
			Shape: Shape{Kind: HalfTorus},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.6, 0.6, 0.75},
				RotationDeg: mgl32.Vec3{0.0, 0.0, 270.0},
				Translation: mgl32.Vec3{-4.8, 1.5, 4.0},
			},
			Texture:  "handle",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "mugHandle",
		},
		{
			Name:  "table",
			Shape: Shape{Kind: Cylinder},
			Transform: Transform{
				Scale:       mgl32.Vec3{11.0, 0.5, 11.0},
				Translation: mgl32.Vec3{0.0, 0.0, 0.0},
			},
			Texture:  "desk",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "wood",
		},
		{
			Name:  "keyboard face",
			Shape: Shape{Kind: Box, Side: "top"},
			Transform: Transform{
				Scale:       mgl32.Vec3{6.0, 0.2, 4.0},
				Translation: mgl32.Vec3{0.0, 0.6, 2.0},
			},
			Texture:  "keyboard",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "plastic",
		},
		{
			Name:  "keyboard body",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{6.0, 0.2, 4.0},
				Translation: mgl32.Vec3{0.0, 0.6, 2.0},
			},
			Color:    mgl32.Vec4{0.1, 0.1, 0.1, 1.0},
			Material: "plastic",
		},
		{
			Name:  "screen face",
			Shape: Shape{Kind: Box, Side: "top"},
			Transform: Transform{
				Scale:       mgl32.Vec3{6.0, 0.2, 4.0},
				RotationDeg: mgl32.Vec3{80.0, 0.0, 0.0},
				Translation: mgl32.Vec3{0.0, 2.77, -0.40},
			},
			Texture:  "screen",
			UVScale:  mgl32.Vec2{1.0, 1.0},
			Material: "screen",
		},
		{
			Name:  "screen body",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{6.0, 0.2, 4.0},
				RotationDeg: mgl32.Vec3{80.0, 0.0, 0.0},
				Translation: mgl32.Vec3{0.0, 2.77, -0.40},
			},
			Color:    mgl32.Vec4{0.1, 0.1, 0.1, 1.0},
			Material: "plastic",
		},
		{
			Name:  "screen hinge",
			Shape: Shape{Kind: Cylinder},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.15, 6.0, 0.15},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 90.0},
				Translation: mgl32.Vec3{3.0, 0.75, -0.02},
			},
			Color: mgl32.Vec4{0.1, 0.1, 0.1, 1.0},
		},
		{
			Name:  "mouse",
			Shape: Shape{Kind: HalfSphere},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.6, 0.25, 1.1},
				Translation: mgl32.Vec3{4.5, 0.5, 1.5},
			},
			Color:    mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
			Material: "plastic",
		},
		{
			Name:  "mouse scroll wheel",
			Shape: Shape{Kind: Cylinder},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.05, 0.05, 0.15},
				RotationDeg: mgl32.Vec3{0.0, 0.0, 90.0},
				Translation: mgl32.Vec3{4.5, 0.75, 1.0},
			},
			Color:    mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
			Material: "plastic",
		},
		{
			Name:  "book pages",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{2.0, 0.5, 3.0},
				Translation: mgl32.Vec3{7.5, 0.8, 2.5},
			},
			Texture: "paper_book",
			UVScale: mgl32.Vec2{1.0, 1.0},
		},
		{
			Name:  "book top cover",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{2.01, 0.05, 3.01},
				Translation: mgl32.Vec3{7.5, 1.05, 2.5},
			},
			Color:    mgl32.Vec4{0.3, 0.5, 0.9, 1.0},
			Material: "book_cover",
		},
		{
			Name:  "book bottom cover",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{2.01, 0.05, 3.01},
				Translation: mgl32.Vec3{7.5, 0.55, 2.5},
			},
			Color:    mgl32.Vec4{0.3, 0.5, 0.9, 1.0},
			Material: "book_cover",
		},
		{
			Name:  "book spine",
			Shape: Shape{Kind: Box},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.05, 0.55, 3.01},
				Translation: mgl32.Vec3{6.49, 0.8, 2.5},
			},
			Color:    mgl32.Vec4{0.65, 0.65, 0.6, 1.0},
			Material: "book_side",
		},
	}
}
