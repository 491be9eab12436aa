package lumen

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Decodable texture formats. png/jpeg from the standard library,
	// bmp/tiff/webp via x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureEntry associates a tag with a GPU texture handle and the slot
// (texture unit) index it binds to. Entries are immutable after load.
type TextureEntry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// TextureBackend is the GPU side of the registry: upload, unit binding and
// release. The GL implementation lives in texture_gl.go; tests use a fake.
type TextureBackend interface {
	// Create uploads tightly packed 8-bit pixels (RGB when alpha is
	// false, RGBA when true) with repeat wrapping, linear filtering and
	// generated mipmaps, and returns the texture handle.
	Create(pixels []uint8, width, height int, alpha bool) (uint32, error)
	// Bind binds the handle to the given texture unit.
	Bind(unit int, handle uint32)
	// Delete releases the given handles.
	Delete(handles []uint32)
	// MaxUnits is the number of texture units available for BindAll.
	MaxUnits() int
}

// TextureRegistry loads image files into GPU textures and resolves
// symbolic tags to handles and slots. Insertion order defines the slot
// number. Tags are not checked for uniqueness: duplicate tags resolve to
// the earliest match.
type TextureRegistry struct {
	backend TextureBackend
	log     Logger
	entries []TextureEntry
}

func NewTextureRegistry(backend TextureBackend, log Logger) *TextureRegistry {
	if log == nil {
		log = NewNopLogger()
	}
	return &TextureRegistry{
		backend: backend,
		log:     log,
	}
}

// Load decodes an image file and registers it under tag, assigning the
// next slot index. Only 3- and 4-channel images are supported; anything
// else is a load failure. Failures are logged and returned, leaving the
// registry unchanged, and are not fatal: the tag simply stays unresolved.
func (r *TextureRegistry) Load(path, tag string) error {
	file, err := os.Open(path)
	if err != nil {
		r.log.Errorf("Could not open image %s: %v", path, err)
		return fmt.Errorf("open texture %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		r.log.Errorf("Could not decode image %s: %v", path, err)
		return fmt.Errorf("decode texture %s: %w", path, err)
	}

	pixels, width, height, alpha, err := flattenImage(img)
	if err != nil {
		r.log.Errorf("Unsupported image %s: %v", path, err)
		return fmt.Errorf("texture %s: %w", path, err)
	}

	handle, err := r.backend.Create(pixels, width, height, alpha)
	if err != nil {
		r.log.Errorf("Could not upload texture %s: %v", path, err)
		return fmt.Errorf("upload texture %s: %w", path, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, TextureEntry{
		Tag:    tag,
		Handle: handle,
		Slot:   slot,
	})

	r.log.Infof("Loaded image %s (%s, %dx%d, alpha=%v) as %q in slot %d",
		path, format, width, height, alpha, tag, slot)
	return nil
}

// Count reports how many textures are currently registered.
func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// BindAll binds every registered texture to the unit matching its slot,
// up to the backend's unit limit.
func (r *TextureRegistry) BindAll() {
	limit := r.backend.MaxUnits()
	for _, entry := range r.entries {
		if entry.Slot >= limit {
			r.log.Warnf("Texture %q in slot %d exceeds the %d-unit limit; not bound", entry.Tag, entry.Slot, limit)
			continue
		}
		r.backend.Bind(entry.Slot, entry.Handle)
	}
}

// ResolveSlot returns the slot index for tag, first match wins. The false
// return is a normal outcome the caller handles by skipping texturing.
func (r *TextureRegistry) ResolveSlot(tag string) (int, bool) {
	for _, entry := range r.entries {
		if entry.Tag == tag {
			return entry.Slot, true
		}
	}
	return 0, false
}

// ResolveHandle returns the GPU handle for tag, first match wins.
func (r *TextureRegistry) ResolveHandle(tag string) (uint32, bool) {
	for _, entry := range r.entries {
		if entry.Tag == tag {
			return entry.Handle, true
		}
	}
	return 0, false
}

// ReleaseAll frees every GPU texture. Idempotent and safe during shutdown
// even if nothing was loaded.
func (r *TextureRegistry) ReleaseAll() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, 0, len(r.entries))
	for _, entry := range r.entries {
		handles = append(handles, entry.Handle)
	}
	r.backend.Delete(handles)
	r.entries = r.entries[:0]
	r.log.Infof("Released %d textures", len(handles))
}

// flattenImage converts a decoded image to tightly packed bytes for
// upload. Three-channel sources (e.g. JPEG) become RGB, four-channel
// sources become non-premultiplied RGBA. Single-channel images are not
// supported; that is a format failure, not a crash.
func flattenImage(img image.Image) (pixels []uint8, width, height int, alpha bool, err error) {
	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()

	switch src := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return nil, 0, 0, false, fmt.Errorf("single-channel images are not supported")

	case *image.YCbCr, *image.CMYK:
		// Opaque color spaces: pack as RGB.
		pixels = make([]uint8, 0, width*height*3)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r16, g16, b16, _ := img.At(x, y).RGBA()
				pixels = append(pixels, uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
			}
		}
		return pixels, width, height, false, nil

	case *image.NRGBA:
		if src.Stride == width*4 && bounds.Min == (image.Point{}) {
			return src.Pix, width, height, true, nil
		}
	}

	// Everything else (RGBA, 16-bit variants, paletted) goes through a
	// non-premultiplied RGBA copy.
	rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, width, height, true, nil
}
