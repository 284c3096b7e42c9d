package stegoshield

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/yyyoichi/stegoshield/internal/bitconv"
	"github.com/yyyoichi/stegoshield/internal/ecc"
	"github.com/yyyoichi/stegoshield/internal/lsb"
	"github.com/yyyoichi/stegoshield/keystream"
	"github.com/yyyoichi/stegoshield/pixel"
)

// MaxMessageLen is the longest message the one byte length prefix can frame.
const MaxMessageLen = 255

const headerBits = 8

var (
	ErrEmptyKey             = keystream.ErrEmptyKey
	ErrUnsupportedCharacter = keystream.ErrUnsupportedCharacter
	ErrCapacityExceeded     = lsb.ErrCapacityExceeded
	ErrInvalidBuffer        = pixel.ErrInvalidBuffer
	ErrMessageTooLong       = errors.New("message too long")
)

var defaultStego = &Stego{codec: ecc.None{}}

// Encode hides message, locked with key, in a copy of buf.
// This is a convenience function that uses the default Stego settings.
func Encode(buf *pixel.Buffer, message, key string) (*pixel.Buffer, error) {
	return defaultStego.Encode(buf, message, key)
}

// Decode recovers a message hidden by Encode.
// This is a convenience function that uses the default Stego settings.
func Decode(buf *pixel.Buffer, key string) (string, error) {
	return defaultStego.Decode(buf, key)
}

// Capacity returns the advisory number of characters buf can hold: one
// character per 8 samples. The length prefix is not subtracted.
func Capacity(buf *pixel.Buffer) int {
	if buf == nil {
		return 0
	}
	return buf.Len() / 8
}

// Stego hides and recovers key-locked messages in pixel buffers.
type Stego struct {
	codec ecc.Codec
}

// New initializes a codec. Without options the payload is written in the
// plain format: length byte, then the locked message, one bit per sample.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.codec == nil {
		s.codec = ecc.None{}
	}
	return nil
}

// Encode hides message in a copy of buf; buf itself is never modified.
//
// Process:
//  1. Checks the key, the message length and the advisory capacity.
//  2. Locks the message with the key.
//  3. Frames it as [length byte] ++ locked bytes and expands it MSB-first into bits.
//  4. Writes the bits into the low bit of the leading samples.
func (s *Stego) Encode(buf *pixel.Buffer, message, key string) (*pixel.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	n := utf8.RuneCountInString(message)
	if n > MaxMessageLen {
		return nil, fmt.Errorf("%w: %d characters > %d", ErrMessageTooLong, n, MaxMessageLen)
	}
	if capacity := Capacity(buf); n > capacity {
		return nil, fmt.Errorf("%w: image can hold only about %d characters", ErrCapacityExceeded, capacity)
	}
	locked, err := keystream.Lock(message, key)
	if err != nil {
		return nil, err
	}

	header, err := s.codec.Encode(bitconv.BytesToBits([]byte{byte(n)}))
	if err != nil {
		return nil, err
	}
	body, err := s.codec.Encode(bitconv.BytesToBits(locked))
	if err != nil {
		return nil, err
	}
	bits := append(header, body...)

	pix, err := lsb.Embed(buf.Pix, bits)
	if err != nil {
		return nil, err
	}
	out := *buf
	out.Pix = pix
	return &out, nil
}

// Decode reads the length byte, then that many locked bytes, and unlocks
// them with key. A wrong key is not detected; it yields a different string.
// With WithGolay, damage beyond what the code corrects is not detected either.
func (s *Stego) Decode(buf *pixel.Buffer, key string) (string, error) {
	if err := buf.Validate(); err != nil {
		return "", err
	}
	if key == "" {
		return "", ErrEmptyKey
	}
	if _, ok := s.codec.(ecc.None); ok {
		return decodePlain(buf.Pix, key)
	}

	headerLen := s.codec.EncodedLen(headerBits)
	raw, err := lsb.ExtractBits(buf.Pix, 0, headerLen)
	if err != nil {
		return "", err
	}
	header, err := s.codec.Decode(raw, headerBits)
	if err != nil {
		return "", err
	}
	n := int(bitconv.BitsToBytes(header)[0])

	bodyBits := n * 8
	raw, err = lsb.ExtractBits(buf.Pix, headerLen, s.codec.EncodedLen(bodyBits))
	if err != nil {
		return "", err
	}
	body, err := s.codec.Decode(raw, bodyBits)
	if err != nil {
		return "", err
	}
	return keystream.Unlock(bitconv.BitsToBytes(body), key)
}

// decodePlain reads one byte for the length, then reads length+1 bytes and
// drops the leading length byte.
func decodePlain(pix []uint8, key string) (string, error) {
	header, err := lsb.Extract(pix, 1)
	if err != nil {
		return "", err
	}
	data, err := lsb.Extract(pix, int(header[0])+1)
	if err != nil {
		return "", err
	}
	return keystream.Unlock(data[1:], key)
}
