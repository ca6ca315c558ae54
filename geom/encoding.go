package geom

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodePoint encodes a point as a little-endian sequence of IEEE 754 float32
// values, the same BLOB layout used for embedding columns. Coordinates are
// narrowed to float32.
func EncodePoint(p Point) ([]byte, error) {
	if len(p) == 0 {
		return nil, nil
	}
	b := make([]byte, len(p)*4)
	for i, v := range p {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(float32(v)))
	}
	return b, nil
}

// DecodeEmbedding decodes a float32 BLOB without widening.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("geom: invalid point blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	vec := make([]float32, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}

// DecodePoint decodes a BLOB produced by EncodePoint.
func DecodePoint(b []byte) (Point, error) {
	vec, err := DecodeEmbedding(b)
	if err != nil {
		return nil, err
	}
	return FromFloat32s(vec), nil
}

// FromFloat32s widens a float32 vector into a point.
func FromFloat32s(vec []float32) Point {
	if vec == nil {
		return nil
	}
	p := make(Point, len(vec))
	for i, v := range vec {
		p[i] = float64(v)
	}
	return p
}
