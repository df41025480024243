package engine

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextures is the number of texture units the registry may occupy.
const MaxTextures = 16

var (
	// ErrUnsupportedFormat marks decoded images that are neither 3- nor
	// 4-channel (e.g. grayscale).
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrRegistryFull is returned before any GPU allocation when all
	// texture units are taken.
	ErrRegistryFull = errors.New("texture registry full")
)

// TextureBackend is the GPU side of the registry: allocation, unit
// binding and release of texture objects.
type TextureBackend interface {
	Create(img *image.NRGBA) uint32
	Bind(unit int, handle uint32)
	Delete(handle uint32)
}

// TextureEntry associates a lookup tag with a GPU texture object. The
// position within the registry decides the texture unit.
type TextureEntry struct {
	Tag    string
	Handle uint32
}

// TextureRegistry loads image files into GPU textures and assigns
// texture units by registration order. There is one mutator (scene
// preparation) and one reader (the render loop), so no locking.
type TextureRegistry struct {
	backend TextureBackend
	entries []TextureEntry
}

func NewTextureRegistry(backend TextureBackend) *TextureRegistry {
	return &TextureRegistry{backend: backend}
}

// Load decodes the image file and registers the uploaded texture under
// tag. On any failure the registry is left unchanged; callers are free
// to keep rendering without the texture.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("%w: cannot load %q", ErrRegistryFull, tag)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("decode texture %q: %w", tag, err)
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return fmt.Errorf("texture %q: %w: grayscale", tag, ErrUnsupportedFormat)
	}

	handle := r.backend.Create(flipToNRGBA(img))
	r.entries = append(r.entries, TextureEntry{Tag: tag, Handle: handle})
	return nil
}

// flipToNRGBA converts any decoded image to NRGBA, flipping rows so the
// image origin (top-left) ends up at the GL texture origin (bottom-left).
func flipToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	stride := rgba.Stride
	tmp := make([]uint8, stride)
	for top, bottom := 0, bounds.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := rgba.Pix[top*stride : (top+1)*stride]
		b := rgba.Pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
	return rgba
}

// BindAll binds every registered texture to the unit equal to its
// registration index. The shader's sampler values must agree with this
// assignment.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.backend.Bind(i, e.Handle)
	}
}

// Slot returns the texture unit assigned to tag, or -1. A -1 sampler is
// a valid "no texture" value for the shading stage, not an error.
func (r *TextureRegistry) Slot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// Handle returns the raw GPU handle for tag, or -1.
func (r *TextureRegistry) Handle(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return int(e.Handle)
		}
	}
	return -1
}

func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// ReleaseAll frees every registered texture object and empties the
// registry, making all units available again.
func (r *TextureRegistry) ReleaseAll() {
	for _, e := range r.entries {
		r.backend.Delete(e.Handle)
	}
	r.entries = r.entries[:0]
}

// GLTextureBackend uploads to OpenGL with repeat wrapping, linear
// filtering and generated mipmaps. Upload leaves texture unit state
// unbound; call BindAll before drawing.
type GLTextureBackend struct{}

func (GLTextureBackend) Create(img *image.NRGBA) uint32 {
	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	bounds := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(bounds.Dx()), int32(bounds.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle
}

func (GLTextureBackend) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (GLTextureBackend) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
