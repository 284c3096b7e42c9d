package lsb

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/stegoshield/internal/bitconv"
)

var ErrCapacityExceeded = errors.New("capacity exceeded")

// Enable reports whether bits payload bits fit into samples samples.
func Enable(samples, bits int) error {
	if bits > samples {
		return fmt.Errorf("%w: %d bits > %d samples", ErrCapacityExceeded, bits, samples)
	}
	return nil
}

// Embed returns a copy of pix whose first len(bits) samples carry bits in
// their least significant bit. pix itself is not modified.
func Embed(pix []uint8, bits []bool) ([]uint8, error) {
	if err := Enable(len(pix), len(bits)); err != nil {
		return nil, err
	}
	out := make([]uint8, len(pix))
	copy(out, pix)
	EmbedAt(out, 0, bits)
	return out, nil
}

// EmbedAt overwrites the low bit of pix[offset:offset+len(bits)] in place.
// The caller guarantees the range is in bounds.
func EmbedAt(pix []uint8, offset int, bits []bool) {
	for i, bit := range bits {
		v := pix[offset+i] &^ 1
		if bit {
			v |= 1
		}
		pix[offset+i] = v
	}
}

// ExtractBits reads the low bit of count samples starting at offset.
func ExtractBits(pix []uint8, offset, count int) ([]bool, error) {
	if offset < 0 || count < 0 {
		return nil, fmt.Errorf("%w: negative range %d+%d", ErrCapacityExceeded, offset, count)
	}
	if err := Enable(len(pix), offset+count); err != nil {
		return nil, err
	}
	bits := make([]bool, count)
	for i := range bits {
		bits[i] = pix[offset+i]&1 == 1
	}
	return bits, nil
}

// Extract reads byteCount bytes, MSB-first, from the low bits of the first
// byteCount*8 samples.
func Extract(pix []uint8, byteCount int) ([]byte, error) {
	bits, err := ExtractBits(pix, 0, byteCount*8)
	if err != nil {
		return nil, err
	}
	return bitconv.BitsToBytes(bits), nil
}
