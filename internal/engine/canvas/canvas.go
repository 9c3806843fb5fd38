// Package canvas provides a batched 2D drawing surface on OpenGL.
//
// Primitives queued between Begin and End are tessellated into two vertex
// streams (solid triangles and textured glyph quads) and flushed in two
// draw calls. The point cloud submits ~19k filled circles per frame, so
// batching is what keeps the draw-call count flat.
package canvas

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sunspiral/internal/sim/palette"
)

// Canvas renders 2D primitives with OpenGL. It implements render.Canvas.
type Canvas struct {
	width  int
	height int

	solidShader uint32
	textShader  uint32

	solidVAO uint32
	solidVBO uint32
	textVAO  uint32
	textVBO  uint32

	// Vertex batches, reset each frame.
	solidVertices []float32 // x, y, z, r, g, b, a
	textVertices  []float32 // x, y, z, u, v, r, g, b, a

	font *Font
}

// New creates a canvas. Must be called after the OpenGL context exists.
func New(width, height int) (*Canvas, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	c := &Canvas{
		width:         width,
		height:        height,
		solidVertices: make([]float32, 0, 1<<20),
		textVertices:  make([]float32, 0, 4096),
	}

	var err error
	c.solidShader, err = linkShaderProgram(solidVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}
	c.textShader, err = linkShaderProgram(textVertexSrc, textFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}

	c.createSolidBuffers()
	c.createTextBuffers()

	c.font, err = NewFont()
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return c, nil
}

// Begin starts a new frame.
func (c *Canvas) Begin() {
	c.solidVertices = c.solidVertices[:0]
	c.textVertices = c.textVertices[:0]
}

// End flushes all queued primitives.
func (c *Canvas) End() {
	proj := orthoMatrix(0, float32(c.width), float32(c.height), 0, -1, 1)

	if len(c.solidVertices) > 0 {
		gl.UseProgram(c.solidShader)
		projLoc := gl.GetUniformLocation(c.solidShader, gl.Str("uProjection\x00"))
		gl.UniformMatrix4fv(projLoc, 1, false, &proj[0])

		gl.BindVertexArray(c.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, c.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(c.solidVertices)*4, unsafe.Pointer(&c.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(c.solidVertices)/7))
	}

	if len(c.textVertices) > 0 {
		gl.UseProgram(c.textShader)
		projLoc := gl.GetUniformLocation(c.textShader, gl.Str("uProjection\x00"))
		gl.UniformMatrix4fv(projLoc, 1, false, &proj[0])

		texLoc := gl.GetUniformLocation(c.textShader, gl.Str("uTexture\x00"))
		gl.Uniform1i(texLoc, 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, c.font.TextureID())

		gl.BindVertexArray(c.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, c.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(c.textVertices)*4, unsafe.Pointer(&c.textVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(c.textVertices)/9))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Close releases GL resources.
func (c *Canvas) Close() {
	if c.font != nil {
		c.font.Close()
	}
	if c.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &c.solidVAO)
	}
	if c.solidVBO != 0 {
		gl.DeleteBuffers(1, &c.solidVBO)
	}
	if c.textVAO != 0 {
		gl.DeleteVertexArrays(1, &c.textVAO)
	}
	if c.textVBO != 0 {
		gl.DeleteBuffers(1, &c.textVBO)
	}
	if c.solidShader != 0 {
		gl.DeleteProgram(c.solidShader)
	}
	if c.textShader != 0 {
		gl.DeleteProgram(c.textShader)
	}
}

// Clear fills the surface with a color. Runs immediately rather than
// through the batch, since it must happen before any queued primitive.
func (c *Canvas) Clear(col palette.RGB) {
	gl.ClearColor(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// FillCircle queues a filled circle as a triangle fan.
func (c *Canvas) FillCircle(x, y, radius int, col palette.RGB) {
	if radius <= 0 {
		return
	}
	cx, cy := float32(x), float32(y)
	r := float32(radius)
	segs := circleSegments(radius)

	cr, cg, cb := channels(col)
	prevX, prevY := cx+r, cy
	for i := 1; i <= segs; i++ {
		angle := 2 * gomath.Pi * float64(i) / float64(segs)
		nx := cx + r*float32(gomath.Cos(angle))
		ny := cy + r*float32(gomath.Sin(angle))
		c.solidVertices = append(c.solidVertices,
			cx, cy, 0, cr, cg, cb, 1,
			prevX, prevY, 0, cr, cg, cb, 1,
			nx, ny, 0, cr, cg, cb, 1,
		)
		prevX, prevY = nx, ny
	}
}

// StrokeCircle queues a circle outline as an annulus of quads.
func (c *Canvas) StrokeCircle(x, y, radius, lineWidth int, col palette.RGB) {
	if radius <= 0 || lineWidth <= 0 {
		return
	}
	cx, cy := float32(x), float32(y)
	outer := float32(radius)
	inner := outer - float32(lineWidth)
	if inner < 0 {
		inner = 0
	}
	segs := circleSegments(radius)

	cr, cg, cb := channels(col)
	prevCos, prevSin := float32(1), float32(0)
	for i := 1; i <= segs; i++ {
		angle := 2 * gomath.Pi * float64(i) / float64(segs)
		cos := float32(gomath.Cos(angle))
		sin := float32(gomath.Sin(angle))

		// Quad between the inner and outer rims of this segment.
		c.solidVertices = append(c.solidVertices,
			cx+outer*prevCos, cy+outer*prevSin, 0, cr, cg, cb, 1,
			cx+outer*cos, cy+outer*sin, 0, cr, cg, cb, 1,
			cx+inner*cos, cy+inner*sin, 0, cr, cg, cb, 1,

			cx+outer*prevCos, cy+outer*prevSin, 0, cr, cg, cb, 1,
			cx+inner*cos, cy+inner*sin, 0, cr, cg, cb, 1,
			cx+inner*prevCos, cy+inner*prevSin, 0, cr, cg, cb, 1,
		)
		prevCos, prevSin = cos, sin
	}
}

// FillRect queues a filled rectangle with the given opacity.
func (c *Canvas) FillRect(x, y, w, h int, col palette.RGB, alpha uint8) {
	fx, fy := float32(x), float32(y)
	fw, fh := float32(w), float32(h)
	cr, cg, cb := channels(col)
	ca := float32(alpha) / 255

	c.solidVertices = append(c.solidVertices,
		fx, fy, 0, cr, cg, cb, ca,
		fx+fw, fy, 0, cr, cg, cb, ca,
		fx+fw, fy+fh, 0, cr, cg, cb, ca,

		fx, fy, 0, cr, cg, cb, ca,
		fx+fw, fy+fh, 0, cr, cg, cb, ca,
		fx, fy+fh, 0, cr, cg, cb, ca,
	)
}

// Text queues a line of text at the given top-left position.
func (c *Canvas) Text(x, y int, s string, col palette.RGB) {
	gw, gh := c.font.GlyphSize()
	charW := float32(gw) * textScale
	charH := float32(gh) * textScale

	cr, cg, cb := channels(col)
	curX := float32(x)
	fy := float32(y)
	for _, ch := range s {
		u0, v0, u1, v1 := c.font.GlyphUV(ch)
		c.addGlyphQuad(curX, fy, charW, charH, u0, v0, u1, v1, cr, cg, cb)
		curX += charW + textScale // one glyph-pixel of spacing
	}
}

// textScale blows the 5x7 glyphs up to a readable on-screen size.
const textScale = 2

func (c *Canvas) addGlyphQuad(x, y, w, h, u0, v0, u1, v1, cr, cg, cb float32) {
	c.textVertices = append(c.textVertices,
		x, y, 0, u0, v0, cr, cg, cb, 1,
		x+w, y, 0, u1, v0, cr, cg, cb, 1,
		x+w, y+h, 0, u1, v1, cr, cg, cb, 1,

		x, y, 0, u0, v0, cr, cg, cb, 1,
		x+w, y+h, 0, u1, v1, cr, cg, cb, 1,
		x, y+h, 0, u0, v1, cr, cg, cb, 1,
	)
}

// circleSegments picks a tessellation level by radius: the tiny point-cloud
// circles stay cheap, the large cursor ring stays round.
func circleSegments(radius int) int {
	switch {
	case radius <= 4:
		return 10
	case radius <= 24:
		return 20
	default:
		return 64
	}
}

func channels(col palette.RGB) (float32, float32, float32) {
	return float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255
}

func (c *Canvas) createSolidBuffers() {
	gl.GenVertexArrays(1, &c.solidVAO)
	gl.BindVertexArray(c.solidVAO)

	gl.GenBuffers(1, &c.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.solidVBO)

	// pos(3) + color(4) = 7 floats, 28 bytes
	stride := int32(7 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *Canvas) createTextBuffers() {
	gl.GenVertexArrays(1, &c.textVAO)
	gl.BindVertexArray(c.textVAO)

	gl.GenBuffers(1, &c.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.textVBO)

	// pos(3) + texcoord(2) + color(4) = 9 floats, 36 bytes
	stride := int32(9 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
