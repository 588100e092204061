package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame holds the averaged linear RGB radiance of every pixel.
// Row 0 is the top of the image.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major, Width*Height entries
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// newFrameFromStats averages the accumulated samples of every pixel
func newFrameFromStats(pixelStats [][]PixelStats) *Frame {
	height := len(pixelStats)
	width := 0
	if height > 0 {
		width = len(pixelStats[0])
	}

	frame := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.Set(x, y, pixelStats[y][x].GetColor())
		}
	}
	return frame
}

// Pixel returns the linear color at (x, y)
func (f *Frame) Pixel(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the linear color at (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// Average returns the mean linear color over the whole frame
func (f *Frame) Average() core.Vec3 {
	if len(f.Pixels) == 0 {
		return core.Vec3{}
	}
	sum := core.Vec3{}
	for _, p := range f.Pixels {
		sum = sum.Add(p)
	}
	return sum.Multiply(1.0 / float64(len(f.Pixels)))
}

// ToImage converts the frame to 8-bit sRGB-ish pixels:
// square-root gamma, clamp to [0, 0.999], scale by 256
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.Pixel(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a linear color to RGBA with gamma 2 and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

func quantize(linear float64) uint8 {
	if !(linear > 0) {
		return 0
	}
	gamma := math.Sqrt(linear)
	return uint8(256 * max(0.0, min(0.999, gamma)))
}
