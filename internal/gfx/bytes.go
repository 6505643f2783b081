package gfx

import (
	"encoding/binary"
	"math"
)

// F32Bytes encodes vals little-endian into dst, growing it as needed.
func F32Bytes(dst []byte, vals []float32) []byte {
	n := len(vals) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range vals {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	return dst
}
