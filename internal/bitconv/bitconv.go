package bitconv

// BytesToBits expands every byte MSB-first into 8 bits, in input order.
func BytesToBits(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (bb>>uint(i))&1 == 1)
		}
	}
	return bits
}

// BitsToBytes groups bits MSB-first into bytes.
// A trailing partial group is padded with zero bits.
func BitsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
