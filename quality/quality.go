// Package quality measures how far a stego buffer drifted from its source.
package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/yyyoichi/stegoshield/pixel"
	"gonum.org/v1/gonum/stat"
)

var ErrShapeMismatch = errors.New("buffer shapes differ")

// Report summarizes the distortion between two buffers of the same shape.
type Report struct {
	// MSE is the mean squared error over all samples.
	MSE float64
	// PSNR in dB for a peak of 255. +Inf for identical buffers.
	PSNR float64
	// Changed is the number of samples whose value differs.
	Changed int
	Samples int
}

func Measure(original, embedded *pixel.Buffer) (Report, error) {
	if err := original.Validate(); err != nil {
		return Report{}, err
	}
	if err := embedded.Validate(); err != nil {
		return Report{}, err
	}
	if original.Height != embedded.Height || original.Width != embedded.Width || original.Channels != embedded.Channels {
		return Report{}, fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrShapeMismatch,
			original.Height, original.Width, original.Channels,
			embedded.Height, embedded.Width, embedded.Channels)
	}

	r := Report{Samples: original.Len()}
	if r.Samples == 0 {
		r.PSNR = math.Inf(1)
		return r, nil
	}
	sq := make([]float64, r.Samples)
	for i := range sq {
		d := float64(original.Pix[i]) - float64(embedded.Pix[i])
		if d != 0 {
			r.Changed++
		}
		sq[i] = d * d
	}
	r.MSE = stat.Mean(sq, nil)
	r.PSNR = PSNR(r.MSE)
	return r, nil
}

// PSNR converts a mean squared error of 8-bit samples to decibels.
func PSNR(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}
