package stegoshield

import "github.com/yyyoichi/stegoshield/internal/ecc"

// Option configures a Stego created by New.
type Option func(*Stego) error

// WithoutECC writes the payload bits as they are. This is the default and
// the format read by every other implementation of the scheme.
func WithoutECC() Option {
	return func(s *Stego) error {
		s.codec = ecc.None{}
		return nil
	}
}

// WithGolay protects the length prefix and the message separately with the
// Golay(24,12) code, each permuted by seed. Up to 3 flipped bits per 24 bit
// codeword are corrected.
//
// Images written with this option can only be read back with the same seed.
// The payload takes roughly twice as many samples.
func WithGolay(seed int64) Option {
	return func(s *Stego) error {
		s.codec = ecc.Golay(seed)
		return nil
	}
}
