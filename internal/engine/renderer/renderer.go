// Package renderer draws textured quads with OpenGL. SpriteBatch is the GL
// implementation of render.Batch.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/internal/engine/shader"
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/internal/logger"
	"github.com/Faultbox/tilewalk/pkg/math"
)

const spriteVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uProjection;

out vec2 vTexCoord;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

const spriteFragmentShader = `
#version 410 core

in vec2 vTexCoord;
out vec4 FragColor;

uniform sampler2D uTexture;

void main() {
	vec4 c = texture(uTexture, vTexCoord);
	if (c.a < 0.01) {
		discard;
	}
	FragColor = c;
}
`

// Vertex format: pos(2) + texcoord(2).
const (
	floatsPerVertex = 4
	floatsPerQuad   = 6 * floatsPerVertex
	maxQuads        = 4096
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// ClearColor is RGBA in [0,1].
	ClearColor [4]float32
}

// SpriteBatch queues quads that share a texture and flushes them in one draw
// call. A texture change or a full buffer flushes early.
type SpriteBatch struct {
	log           *zap.Logger
	width, height int

	program *shader.Program
	vao     uint32
	vbo     uint32

	vertices   []float32
	current    texture.Texture
	projection math.Mat4
	drawing    bool

	drawCalls int
}

var _ render.Batch = (*SpriteBatch)(nil)

// New creates a sprite batch.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*SpriteBatch, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log := logger.Named("renderer")
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.New(spriteVertexShader, spriteFragmentShader, "uProjection", "uTexture")
	if err != nil {
		return nil, fmt.Errorf("sprite shader: %w", err)
	}

	b := &SpriteBatch{
		log:      log,
		program:  program,
		vertices: make([]float32, 0, maxQuads*floatsPerQuad),
	}
	b.createBuffers()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])

	b.Resize(cfg.Width, cfg.Height)
	return b, nil
}

func (b *SpriteBatch) createBuffers() {
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*floatsPerQuad*4, nil, gl.DYNAMIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Resize updates the viewport and the screen-space projection.
func (b *SpriteBatch) Resize(width, height int) {
	b.width, b.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	b.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear clears the back buffer.
func (b *SpriteBatch) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawCalls returns the number of GL draw calls issued since the last Begin.
func (b *SpriteBatch) DrawCalls() int {
	return b.drawCalls
}

// Begin starts a batch. transform maps world pixels to screen pixels; the
// batch prepends the y-down screen projection.
func (b *SpriteBatch) Begin(transform math.Mat4) {
	if b.drawing {
		b.log.Warn("sprite batch Begin called twice without End")
	}
	proj := math.Ortho(0, float32(b.width), float32(b.height), 0, -1, 1)
	b.projection = proj.Mul(transform)
	b.vertices = b.vertices[:0]
	b.current = texture.Texture{}
	b.drawCalls = 0
	b.drawing = true
}

// Draw queues one quad.
func (b *SpriteBatch) Draw(tex texture.Texture, src, dst math.Rect) {
	if !tex.Valid() {
		return
	}
	if tex.ID != b.current.ID || len(b.vertices)+floatsPerQuad > cap(b.vertices) {
		b.flush()
		b.current = tex
	}

	tw, th := float32(tex.Width), float32(tex.Height)
	u0, v0 := src.X/tw, src.Y/th
	u1, v1 := (src.X+src.W)/tw, (src.Y+src.H)/th
	x0, y0 := dst.X, dst.Y
	x1, y1 := dst.X+dst.W, dst.Y+dst.H

	b.vertices = append(b.vertices,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x1, y1, u1, v1,

		x0, y0, u0, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	)
}

// End flushes queued quads.
func (b *SpriteBatch) End() {
	b.flush()
	b.drawing = false
}

func (b *SpriteBatch) flush() {
	if len(b.vertices) == 0 || !b.current.Valid() {
		b.vertices = b.vertices[:0]
		return
	}

	b.program.Use()
	gl.UniformMatrix4fv(b.program.Uniform("uProjection"), 1, false, b.projection.Ptr())
	gl.Uniform1i(b.program.Uniform("uTexture"), 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.current.ID)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.vertices)*4, gl.Ptr(b.vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.vertices)/floatsPerVertex))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	b.drawCalls++
	b.vertices = b.vertices[:0]
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (b *SpriteBatch) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, b.width*b.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(b.width), int32(b.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, b.width, b.height
}

// Upload creates a texture from RGBA pixels. Sampling is nearest-neighbour
// so pixel art stays crisp.
func (b *SpriteBatch) Upload(img *image.RGBA) (texture.Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return texture.Texture{}, fmt.Errorf("empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	b.log.Debug("texture uploaded",
		zap.Uint32("id", id),
		zap.Int("width", w),
		zap.Int("height", h),
	)
	return texture.Texture{ID: id, Width: w, Height: h}, nil
}

// DeleteTexture releases an uploaded texture.
func (b *SpriteBatch) DeleteTexture(tex texture.Texture) {
	if tex.ID != 0 {
		gl.DeleteTextures(1, &tex.ID)
	}
}

// Close releases GL resources.
func (b *SpriteBatch) Close() {
	b.log.Info("closing renderer")
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.program != nil {
		b.program.Delete()
	}
}
