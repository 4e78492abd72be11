// Package pixel holds the LED strip frame model and the pattern
// generators. Generators are pure: a new Frame is built for every packet
// and nothing is cached between calls.
package pixel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is one RGB LED value. No alpha, no color-space metadata.
type Pixel struct {
	R, G, B uint8
}

// Off is an unlit pixel.
var Off = Pixel{}

// Frame is the full strip state at one instant. Index is the 0-based LED
// position.
type Frame []Pixel

// Bytes packs the frame as it travels on the wire: R,G,B per pixel in
// LED-index order.
func (f Frame) Bytes() []byte {
	buf := make([]byte, 0, len(f)*3)
	for _, p := range f {
		buf = append(buf, p.R, p.G, p.B)
	}
	return buf
}

// Solid fills all n pixels with c.
func Solid(n int, c Pixel) Frame {
	f := make(Frame, n)
	for i := range f {
		f[i] = c
	}
	return f
}

// Gradient interpolates linearly between start and end across n pixels.
// Pixel 0 is exactly start and pixel n-1 exactly end; a single-pixel
// gradient is just start.
func Gradient(n int, start, end Pixel) Frame {
	f := make(Frame, n)
	for i := range f {
		ratio := 0.0
		if n > 1 {
			ratio = float64(i) / float64(n-1)
		}
		f[i] = Pixel{
			R: lerp(start.R, end.R, ratio),
			G: lerp(start.G, end.G, ratio),
			B: lerp(start.B, end.B, ratio),
		}
	}
	return f
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Rainbow spreads the full hue circle across n pixels at full saturation
// and value. Pixel i gets hue i*360/n, so pixel 0 is always pure red.
func Rainbow(n int) Frame {
	f := make(Frame, n)
	for i := range f {
		hue := i * 360 / n
		r, g, b := colorful.Hsv(float64(hue), 1, 1).RGB255()
		f[i] = Pixel{R: r, G: g, B: b}
	}
	return f
}

// ChaseFrame lights only pixel k with c, leaving the rest of the strip
// dark. A k outside [0,n) yields an all-off frame.
func ChaseFrame(n, k int, c Pixel) Frame {
	f := make(Frame, n)
	if k >= 0 && k < n {
		f[k] = c
	}
	return f
}
