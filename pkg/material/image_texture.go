package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BytesPerPixel is the stride of the packed RGB buffer used by ImageTexture
const BytesPerPixel = 3

// missingTextureColor marks surfaces whose image failed to load
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from an 8-bit RGB image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte // Row-major RGB, top row first: Pixels[(y*Width+x)*3]
}

// NewImageTexture creates a new image texture from packed RGB bytes
func NewImageTexture(width, height int, pixels []byte) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewMissingImageTexture creates a texture with no data that renders cyan
func NewMissingImageTexture() *ImageTexture {
	return &ImageTexture{}
}

// Value samples the texture at UV using nearest-neighbor filtering.
// UV is clamped to [0,1] and V is flipped so v=1 is the top row.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height*BytesPerPixel {
		return missingTextureColor
	}

	u := clampUnit(uv.X)
	v := 1.0 - clampUnit(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	const colorScale = 1.0 / 255.0
	offset := (y*t.Width + x) * BytesPerPixel
	return core.NewVec3(
		float64(t.Pixels[offset])*colorScale,
		float64(t.Pixels[offset+1])*colorScale,
		float64(t.Pixels[offset+2])*colorScale,
	)
}

// clampUnit maps NaN to 0 so degenerate UVs still index a texel
func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
