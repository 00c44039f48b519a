package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Framebuffer accumulates linear-radiance colors per pixel. Row 0 is the
// top of the image.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFramebuffer creates an empty framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the linear color for pixel (x, y)
func (f *Framebuffer) Set(x, y int, color core.Vec3) {
	f.pixels[y*f.Width+x] = color
}

// At returns the linear color of pixel (x, y)
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.pixels[y*f.Width+x]
}

// WritePPM serializes the framebuffer as a plain-text P3 pixel map,
// gamma-corrected (sqrt) and clamped, rows top to bottom
func (f *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := displayColor(f.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// SavePNG writes the framebuffer to a PNG file
func (f *Framebuffer) SavePNG(path string) error {
	dc := gg.NewContext(f.Width, f.Height)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := gammaColor(f.At(x, y))
			dc.SetRGB(c.X, c.Y, c.Z)
			dc.SetPixel(x, y)
		}
	}

	return dc.SavePNG(path)
}

// gammaColor converts a linear color to gamma-corrected components in [0, 1].
// Overbright radiance clamps to 1 so direct views of a light come out white.
func gammaColor(color core.Vec3) core.Vec3 {
	return core.NewVec3(
		math.Sqrt(math.Max(0, color.X)),
		math.Sqrt(math.Max(0, color.Y)),
		math.Sqrt(math.Max(0, color.Z)),
	).Clamp(0, 1)
}

// displayColor converts a linear color to gamma-corrected 8-bit channels
func displayColor(color core.Vec3) (int, int, int) {
	c := gammaColor(color)
	return int(255.99 * c.X), int(255.99 * c.Y), int(255.99 * c.Z)
}
