// Package keystream implements the repeating-key XOR transform used to
// obfuscate a message before it is hidden in an image.
//
// This is obfuscation, not encryption. Anyone holding the stego image can
// recover the key from a known plaintext.
package keystream

import (
	"errors"
	"fmt"
)

// MaxCode is the largest character code accepted in a message or key.
// The XOR output may still reach 255.
const MaxCode = 254

var (
	ErrEmptyKey             = errors.New("empty key")
	ErrUnsupportedCharacter = errors.New("unsupported character")
)

// Lock XORs each character code of message with the key character at the
// same position, cycling the key.
func Lock(message, key string) ([]byte, error) {
	k, err := keyCodes(key)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(message))
	i := 0
	for _, r := range message {
		if r < 0 || r > MaxCode {
			return nil, fmt.Errorf("%w: message character %q (code %d) at position %d is outside 0-%d",
				ErrUnsupportedCharacter, r, r, i, MaxCode)
		}
		data = append(data, byte(r)^k[i%len(k)])
		i++
	}
	return data, nil
}

// Unlock reverses Lock. A wrong key is not detected and yields an
// unrelated string.
func Unlock(data []byte, key string) (string, error) {
	k, err := keyCodes(key)
	if err != nil {
		return "", err
	}
	out := make([]rune, len(data))
	for i, v := range data {
		out[i] = rune(v ^ k[i%len(k)])
	}
	return string(out), nil
}

func keyCodes(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	k := make([]byte, 0, len(key))
	for _, r := range key {
		if r < 0 || r > MaxCode {
			return nil, fmt.Errorf("%w: key character %q (code %d) is outside 0-%d",
				ErrUnsupportedCharacter, r, r, MaxCode)
		}
		k = append(k, byte(r))
	}
	return k, nil
}
