package canvas

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Glyph metrics: 5x7 pixel glyphs packed into 8x8 atlas cells.
const (
	glyphWidth  = 5
	glyphHeight = 7
	cellSize    = 8
	atlasCols   = 16
)

// Font is a built-in 5x7 bitmap font baked into a GL texture atlas.
// Each glyph row is a byte whose low five bits are pixels, MSB leftmost.
type Font struct {
	textureID uint32
	index     map[rune]int
	rows      int
}

// NewFont builds the atlas texture. Requires a current GL context.
func NewFont() (*Font, error) {
	f := &Font{
		index: make(map[rune]int, len(glyphOrder)),
	}
	for i, r := range glyphOrder {
		f.index[r] = i
	}
	f.rows = (len(glyphOrder) + atlasCols - 1) / atlasCols

	w := atlasCols * cellSize
	h := f.rows * cellSize
	pixels := make([]byte, w*h*4)

	for i, r := range glyphOrder {
		bitmap := glyphs[r]
		cellX := (i % atlasCols) * cellSize
		cellY := (i / atlasCols) * cellSize
		for row := 0; row < glyphHeight; row++ {
			bits := bitmap[row]
			for col := 0; col < glyphWidth; col++ {
				if bits&(1<<(glyphWidth-1-col)) == 0 {
					continue
				}
				off := ((cellY+row)*w + cellX + col) * 4
				pixels[off] = 255
				pixels[off+1] = 255
				pixels[off+2] = 255
				pixels[off+3] = 255
			}
		}
	}

	gl.GenTextures(1, &f.textureID)
	gl.BindTexture(gl.TEXTURE_2D, f.textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f, nil
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.textureID
}

// GlyphSize returns the unscaled glyph dimensions in pixels.
func (f *Font) GlyphSize() (int, int) {
	return glyphWidth, glyphHeight
}

// GlyphUV returns the atlas UV rectangle for a rune. Unknown runes render
// as '?'.
func (f *Font) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	i, ok := f.index[r]
	if !ok {
		i = f.index['?']
	}
	w := float32(atlasCols * cellSize)
	h := float32(f.rows * cellSize)
	x := float32((i % atlasCols) * cellSize)
	y := float32((i / atlasCols) * cellSize)
	return x / w, y / h, (x + glyphWidth) / w, (y + glyphHeight) / h
}

// MeasureText returns the scaled pixel size of a line of text.
func (f *Font) MeasureText(s string, scale float32) (float32, float32) {
	n := float32(len([]rune(s)))
	return n * (glyphWidth + 1) * scale, glyphHeight * scale
}

// Close releases the atlas texture.
func (f *Font) Close() {
	if f.textureID != 0 {
		gl.DeleteTextures(1, &f.textureID)
		f.textureID = 0
	}
}

// glyphOrder fixes the atlas layout.
var glyphOrder = []rune(" !%()+,-./0123456789:=?" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"°")

var glyphs = map[rune][7]byte{
	' ':      {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'!':      {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	'%':      {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03},
	'(':      {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02},
	')':      {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08},
	'+':      {0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00},
	',':      {0x00, 0x00, 0x00, 0x00, 0x0C, 0x04, 0x08},
	'-':      {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'.':      {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	'/':      {0x01, 0x01, 0x02, 0x04, 0x08, 0x10, 0x10},
	'0':      {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1':      {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2':      {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3':      {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4':      {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5':      {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6':      {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7':      {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8':      {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9':      {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	':':      {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
	'=':      {0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00},
	'?':      {0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04},
	'A':      {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B':      {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C':      {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D':      {0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C},
	'E':      {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F':      {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G':      {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	'H':      {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I':      {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J':      {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K':      {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L':      {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M':      {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N':      {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O':      {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P':      {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q':      {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R':      {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S':      {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T':      {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U':      {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V':      {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W':      {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A},
	'X':      {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y':      {0x11, 0x11, 0x11, 0x0A, 0x04, 0x04, 0x04},
	'Z':      {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	'a':      {0x00, 0x00, 0x0E, 0x01, 0x0F, 0x11, 0x0F},
	'b':      {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1E},
	'c':      {0x00, 0x00, 0x0E, 0x10, 0x10, 0x11, 0x0E},
	'd':      {0x01, 0x01, 0x0D, 0x13, 0x11, 0x11, 0x0F},
	'e':      {0x00, 0x00, 0x0E, 0x11, 0x1F, 0x10, 0x0E},
	'f':      {0x06, 0x09, 0x08, 0x1C, 0x08, 0x08, 0x08},
	'g':      {0x00, 0x0F, 0x11, 0x11, 0x0F, 0x01, 0x0E},
	'h':      {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11},
	'i':      {0x04, 0x00, 0x0C, 0x04, 0x04, 0x04, 0x0E},
	'j':      {0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0C},
	'k':      {0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12},
	'l':      {0x0C, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'm':      {0x00, 0x00, 0x1A, 0x15, 0x15, 0x11, 0x11},
	'n':      {0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11},
	'o':      {0x00, 0x00, 0x0E, 0x11, 0x11, 0x11, 0x0E},
	'p':      {0x00, 0x00, 0x1E, 0x11, 0x1E, 0x10, 0x10},
	'q':      {0x00, 0x00, 0x0D, 0x13, 0x0F, 0x01, 0x01},
	'r':      {0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10},
	's':      {0x00, 0x00, 0x0E, 0x10, 0x0E, 0x01, 0x1E},
	't':      {0x08, 0x08, 0x1C, 0x08, 0x08, 0x09, 0x06},
	'u':      {0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0D},
	'v':      {0x00, 0x00, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'w':      {0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0A},
	'x':      {0x00, 0x00, 0x11, 0x0A, 0x04, 0x0A, 0x11},
	'y':      {0x00, 0x00, 0x11, 0x11, 0x0F, 0x01, 0x0E},
	'z':      {0x00, 0x00, 0x1F, 0x02, 0x04, 0x08, 0x1F},
	'°': {0x0C, 0x12, 0x12, 0x0C, 0x00, 0x00, 0x00},
}
