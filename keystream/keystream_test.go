package keystream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock(t *testing.T) {
	test := []struct {
		name    string
		message string
		key     string
		exp     []byte
	}{
		{"HI", "HI", "K", []byte{3, 2}},
		{"empty_message", "", "K", []byte{}},
		{"key_cycles", "aaaa", "ab", []byte{0, 3, 0, 3}},
		{"same_as_key", "key", "key", []byte{0, 0, 0}},
		{"latin1", "é", "\x01", []byte{0xe8}},
		{"max_code", "þ", "\x01", []byte{0xff}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Lock(tt.message, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.exp, data)
		})
	}
}

func TestLockUnlockRoundTrip(t *testing.T) {
	var all strings.Builder
	for r := rune(0); r <= MaxCode; r++ {
		all.WriteRune(r)
	}
	messages := []string{
		"",
		"HI",
		"Hello, World!",
		"0123456789",
		"café üß",
		all.String(),
	}
	keys := []string{"K", "secret", "0123456789", "\x00", "þý"}
	for _, m := range messages {
		for _, k := range keys {
			data, err := Lock(m, k)
			require.NoError(t, err)
			assert.Len(t, data, len([]rune(m)))

			got, err := Unlock(data, k)
			require.NoError(t, err)
			assert.Equal(t, m, got, "key %q", k)
		}
	}
}

func TestEmptyKey(t *testing.T) {
	_, err := Lock("HI", "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Lock("", "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Unlock([]byte{3, 2}, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestUnsupportedCharacter(t *testing.T) {
	for _, m := range []string{"ÿ", "okあ", "\U0001f363", "ok\xfe", "\x80"} {
		_, err := Lock(m, "K")
		assert.ErrorIs(t, err, ErrUnsupportedCharacter, "message %q", m)
	}
	_, err := Lock("HI", "ÿ")
	assert.ErrorIs(t, err, ErrUnsupportedCharacter)
	_, err = Unlock([]byte{1}, "あ")
	assert.ErrorIs(t, err, ErrUnsupportedCharacter)
}

func TestUnlockWrongKey(t *testing.T) {
	data, err := Lock("attack at dawn", "right")
	require.NoError(t, err)
	got, err := Unlock(data, "wrong")
	require.NoError(t, err)
	assert.NotEqual(t, "attack at dawn", got)
	assert.Len(t, []rune(got), len(data))
}

func TestUnlockReachesCode255(t *testing.T) {
	got, err := Unlock([]byte{0xff}, "\x00")
	require.NoError(t, err)
	assert.Equal(t, "ÿ", got)
}
