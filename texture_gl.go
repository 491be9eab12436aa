package lumen

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The original shader contract exposes 16 sampler slots; stay within that
// regardless of what the driver reports.
const maxTextureUnits = 16

// GLTextureBackend uploads textures through OpenGL. Requires a current GL
// context on the calling thread.
type GLTextureBackend struct{}

func NewGLTextureBackend() *GLTextureBackend {
	return &GLTextureBackend{}
}

func (b *GLTextureBackend) Create(pixels []uint8, width, height int, alpha bool) (uint32, error) {
	if len(pixels) == 0 || width <= 0 || height <= 0 {
		return 0, fmt.Errorf("empty texture image (%dx%d)", width, height)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if alpha {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	} else {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

func (b *GLTextureBackend) Bind(unit int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (b *GLTextureBackend) Delete(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}

func (b *GLTextureBackend) MaxUnits() int {
	return maxTextureUnits
}
