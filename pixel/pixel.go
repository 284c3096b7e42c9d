// Package pixel holds the flat sample buffer the codec embeds into.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Buffer is a row-major, channel-interleaved sequence of 8-bit samples.
// Buffers built from images use 3 channels in B, G, R order.
type Buffer struct {
	Pix      []uint8
	Height   int
	Width    int
	Channels int
}

// New allocates a zeroed buffer of height*width*channels samples.
func New(height, width, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]uint8, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// FromImage samples src into a 3 channel BGR buffer. Alpha is discarded.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	b := New(bounds.Dy(), bounds.Dx(), 3)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			b.Pix[idx], b.Pix[idx+1], b.Pix[idx+2] = c.B, c.G, c.R
			idx += 3
		}
	}
	return b
}

// Image rebuilds an opaque image from the buffer.
// Supported channel counts are 1 (gray), 3 (BGR) and 4 (BGRA).
func (b *Buffer) Image() (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, b.Width, b.Height)
	switch b.Channels {
	case 1:
		dst := image.NewGray(rect)
		for y := range b.Height {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Width], b.Pix[y*b.Width:(y+1)*b.Width])
		}
		return dst, nil
	case 3, 4:
		dst := image.NewNRGBA(rect)
		idx := 0
		for y := range b.Height {
			for x := range b.Width {
				c := color.NRGBA{B: b.Pix[idx], G: b.Pix[idx+1], R: b.Pix[idx+2], A: 0xff}
				if b.Channels == 4 {
					c.A = b.Pix[idx+3]
				}
				dst.SetNRGBA(x, y, c)
				idx += b.Channels
			}
		}
		return dst, nil
	}
	return nil, fmt.Errorf("%w: unsupported channel count %d", ErrInvalidBuffer, b.Channels)
}

// Len returns the total sample count.
func (b *Buffer) Len() int {
	return len(b.Pix)
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = make([]uint8, len(b.Pix))
	copy(c.Pix, b.Pix)
	return &c
}

// Validate checks that the stored dimensions describe Pix exactly.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.Height < 0 || b.Width < 0 || b.Channels < 1 {
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidBuffer, b.Height, b.Width, b.Channels)
	}
	if b.Width != 0 && b.Height > math.MaxInt/b.Width ||
		b.Height*b.Width != 0 && b.Channels > math.MaxInt/(b.Height*b.Width) {
		return fmt.Errorf("%w: dimensions %dx%dx%d overflow", ErrInvalidBuffer, b.Height, b.Width, b.Channels)
	}
	if want := b.Height * b.Width * b.Channels; want != len(b.Pix) {
		return fmt.Errorf("%w: %dx%dx%d needs %d samples, has %d",
			ErrInvalidBuffer, b.Height, b.Width, b.Channels, want, len(b.Pix))
	}
	return nil
}
