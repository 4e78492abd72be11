package pixel

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolid(t *testing.T) {
	c := Pixel{R: 12, G: 34, B: 56}

	for _, n := range []int{0, 1, 20, 480} {
		f := Solid(n, c)
		require.Len(t, f, n)
		for _, p := range f {
			assert.Equal(t, c, p)
		}
	}
}

func TestFrameBytes(t *testing.T) {
	f := Frame{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, f.Bytes())

	assert.Empty(t, Frame{}.Bytes())
}

func TestGradientEndpoints(t *testing.T) {
	start := Pixel{R: 255}
	end := Pixel{B: 255}

	f := Gradient(10, start, end)
	require.Len(t, f, 10)
	assert.Equal(t, start, f[0])
	assert.Equal(t, end, f[9])
}

func TestGradientMonotonic(t *testing.T) {
	f := Gradient(31, Pixel{R: 200, G: 10, B: 0}, Pixel{R: 0, G: 250, B: 128})

	for i := 1; i < len(f); i++ {
		assert.LessOrEqual(t, f[i].R, f[i-1].R, "red must not increase, index %d", i)
		assert.GreaterOrEqual(t, f[i].G, f[i-1].G, "green must not decrease, index %d", i)
		assert.GreaterOrEqual(t, f[i].B, f[i-1].B, "blue must not decrease, index %d", i)
	}
}

func TestGradientSinglePixel(t *testing.T) {
	start := Pixel{R: 255}

	f := Gradient(1, start, Pixel{B: 255})

	require.Len(t, f, 1)
	assert.Equal(t, start, f[0])
}

func TestRainbowStartsRed(t *testing.T) {
	f := Rainbow(20)

	require.Len(t, f, 20)
	assert.Equal(t, Pixel{R: 255}, f[0])
}

func TestRainbowHuesNonDecreasing(t *testing.T) {
	f := Rainbow(30)

	prev := -1.0
	for i, p := range f {
		h, s, v := colorful.Color{
			R: float64(p.R) / 255,
			G: float64(p.G) / 255,
			B: float64(p.B) / 255,
		}.Hsv()

		// Full saturation and value, allowing for 8-bit quantization.
		assert.InDelta(t, 1.0, s, 0.01, "saturation at index %d", i)
		assert.InDelta(t, 1.0, v, 0.01, "value at index %d", i)

		assert.GreaterOrEqual(t, h, prev-0.5, "hue regressed at index %d", i)
		prev = h
	}
}

func TestRainbowFullBrightness(t *testing.T) {
	for _, p := range Rainbow(12) {
		max := p.R
		if p.G > max {
			max = p.G
		}
		if p.B > max {
			max = p.B
		}
		assert.EqualValues(t, 255, max)
	}
}

func TestRainbowEmpty(t *testing.T) {
	assert.Empty(t, Rainbow(0))
}

func TestChaseFrame(t *testing.T) {
	f := ChaseFrame(5, 2, ChaseColor)

	require.Len(t, f, 5)
	for i, p := range f {
		if i == 2 {
			assert.Equal(t, ChaseColor, p)
		} else {
			assert.Equal(t, Off, p)
		}
	}
}

func TestChaseFrameOutOfRange(t *testing.T) {
	for _, k := range []int{-1, 5} {
		for _, p := range ChaseFrame(5, k, ChaseColor) {
			assert.Equal(t, Off, p)
		}
	}
}

func TestPaletteOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"red", "green", "blue", "white", "yellow", "cyan", "magenta", "orange"},
		Names())
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("orange")
	require.True(t, ok)
	assert.Equal(t, Pixel{R: 255, G: 165}, c)

	_, ok = Lookup("mauve")
	assert.False(t, ok)
}
