// Package posterize reduces each channel of an RGBA image to a fixed number
// of evenly spaced levels.
package posterize

import (
	"errors"
	"image"
	"image/draw"
)

var ErrMinimumLevel = errors.New("expected level higher than or equal to 2")

// Quantize snaps value to the nearest bucket boundary in [0, max].
// Buckets are visited in ascending order with the upper boundary checked
// before the lower one, and only a strictly closer boundary replaces the
// current pick. buckets must be non-zero.
func Quantize(value, buckets, max uint8) uint8 {
	m := max / buckets
	minDelta := max
	target := uint8(0)
	for i := uint8(0); i < buckets; i++ {
		ceil := (i + 1) * m
		floor := i * m
		if dc := absDiff(value, ceil); dc < minDelta {
			minDelta = dc
			target = ceil
		}
		if df := absDiff(value, floor); df < minDelta {
			minDelta = df
			target = floor
		}
	}
	return target
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// RGBA returns a posterized copy of m with level distinct values per channel.
// Alpha is quantized like the color channels.
func RGBA(m *image.RGBA, level uint8) (*image.RGBA, error) {
	if level < 2 {
		return nil, ErrMinimumLevel
	}
	buckets := level - 1

	rect := m.Bounds()
	out := image.NewRGBA(rect)
	rowLen := 4 * rect.Dx()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		src := m.Pix[m.PixOffset(rect.Min.X, y):][:rowLen]
		dst := out.Pix[out.PixOffset(rect.Min.X, y):][:rowLen]
		for i, v := range src {
			dst[i] = Quantize(v, buckets, 255)
		}
	}
	return out, nil
}

// Image posterizes any image by first converting it to RGBA with the same bounds.
func Image(m image.Image, level uint8) (*image.RGBA, error) {
	if level < 2 {
		return nil, ErrMinimumLevel
	}
	rgba, ok := m.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(m.Bounds())
		draw.Draw(rgba, rgba.Bounds(), m, m.Bounds().Min, draw.Src)
	}
	return RGBA(rgba, level)
}
