package ecc

import (
	"fmt"
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

// Codec protects a bit stream before it is embedded and recovers it after
// extraction.
type Codec interface {
	Encode(bits []bool) ([]bool, error)
	Decode(bits []bool, size int) ([]bool, error)
	// EncodedLen returns how many bits Encode produces for size input bits.
	EncodedLen(size int) int
}

var _ Codec = None{}
var _ Codec = Golay(0)

// None passes bits through unchanged.
type None struct{}

func (None) Encode(bits []bool) ([]bool, error) { return bits, nil }

func (None) Decode(bits []bool, size int) ([]bool, error) {
	if len(bits) < size {
		return nil, fmt.Errorf("need %d bits, got %d", size, len(bits))
	}
	return bits[:size], nil
}

func (None) EncodedLen(size int) int { return size }

// Golay encodes with the Golay(24,12) code and then applies a permutation
// derived from the seed, spreading a burst of damaged samples over several
// codewords.
type Golay int64

func (g Golay) Encode(bits []bool) ([]bool, error) {
	if len(bits) == 0 {
		return nil, nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	if err := enc.Encode(w.Data(), len(bits)); err != nil {
		return nil, fmt.Errorf("golay encode: %w", err)
	}
	n := enc.Bits()
	index := g.permutation(n)

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, n)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out, nil
}

func (g Golay) Decode(bits []bool, size int) ([]bool, error) {
	if size == 0 {
		return []bool{}, nil
	}
	if want := g.EncodedLen(size); len(bits) != want {
		return nil, fmt.Errorf("need %d encoded bits, got %d", want, len(bits))
	}
	// undo the permutation
	index := g.permutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("golay decode: %w", err)
	}
	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(size)
	out := make([]bool, size)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out, nil
}

func (g Golay) EncodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

func (g Golay) permutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(g)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
