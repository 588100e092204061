package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageData contains loaded image data as packed 8-bit RGB
type ImageData struct {
	Width  int
	Height int
	Pixels []byte // Row-major RGB, top row first
}

// LoadImage loads a PNG or JPEG image and converts it to packed RGB bytes.
// Alpha is dropped.
func LoadImage(filename string) (*ImageData, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, 0, width*height*material.BytesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]; keep the high byte
			pixels = append(pixels, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// LoadImageTexture loads an image texture. A load failure is logged and
// yields a texture that renders the missing-texture cyan.
func LoadImageTexture(filename string, logger core.Logger) *material.ImageTexture {
	imageData, err := LoadImage(filename)
	if err != nil {
		if logger != nil {
			logger.Printf("Warning: could not load texture image file '%s': %v\n", filename, err)
		}
		return material.NewMissingImageTexture()
	}
	return material.NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels)
}
