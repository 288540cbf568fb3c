package floatcmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMasksSpanAllBits(t *testing.T) {
	s32, e32, f32 := signMask[uint32](), exponentMask[uint32](), fractionMask[uint32]()
	assert.Zero(t, s32&e32)
	assert.Zero(t, s32&f32)
	assert.Zero(t, e32&f32)
	assert.Equal(t, ^uint32(0), s32|e32|f32)

	s64, e64, f64 := signMask[uint64](), exponentMask[uint64](), fractionMask[uint64]()
	assert.Zero(t, s64&e64)
	assert.Zero(t, s64&f64)
	assert.Zero(t, e64&f64)
	assert.Equal(t, ^uint64(0), s64|e64|f64)
}

func TestFieldWidths(t *testing.T) {
	assert.Equal(t, uint(23), fractionBitCount[uint32]())
	assert.Equal(t, uint(8), exponentBitCount[uint32]())
	assert.Equal(t, uint(52), fractionBitCount[uint64]())
	assert.Equal(t, uint(11), exponentBitCount[uint64]())
}

func TestDecomposition(t *testing.T) {
	fp := FromFloat64(1.0)
	assert.False(t, fp.SignBit())
	assert.Equal(t, uint64(0x3FF0000000000000), fp.ExponentBits())
	assert.Equal(t, uint64(0), fp.FractionBits())

	fp = FromFloat64(-1.5)
	assert.True(t, fp.SignBit())
	assert.Equal(t, uint64(0x3FF0000000000000), fp.ExponentBits())
	assert.Equal(t, uint64(1)<<51, fp.FractionBits())

	fp32 := FromFloat32(1.5)
	assert.False(t, fp32.SignBit())
	assert.Equal(t, uint32(0x3F800000), fp32.ExponentBits())
	assert.Equal(t, uint32(1)<<22, fp32.FractionBits())
}

func TestBitsRoundTrip(t *testing.T) {
	assert.Equal(t, math.Float64bits(math.Pi), FromFloat64(math.Pi).Bits())
	assert.Equal(t, math.Float32bits(0.1), FromFloat32(0.1).Bits())
	assert.Equal(t, uint64(42), FromBits64(42).Bits())
	assert.Equal(t, uint32(42), FromBits32(42).Bits())
}

func TestSignAndMagnitudeToBiased(t *testing.T) {
	n := signMask[uint64]()
	// both encodings of zero map to the midpoint N
	assert.Equal(t, n, signAndMagnitudeToBiased(uint64(0)))
	assert.Equal(t, n, signAndMagnitudeToBiased(n))
	// the most negative pattern maps to 1
	assert.Equal(t, uint64(1), signAndMagnitudeToBiased(^uint64(0)))
	// the largest positive pattern maps to 2N-1
	assert.Equal(t, ^uint64(0), signAndMagnitudeToBiased(n-1))
}

func TestBiasedOrderingIsMonotonic(t *testing.T) {
	// ascending values must produce ascending biased magnitudes
	values := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-1.0,
		-math.SmallestNonzeroFloat64,
		0.0,
		math.SmallestNonzeroFloat64,
		1.0,
		math.MaxFloat64,
		math.Inf(1),
	}
	prev := signAndMagnitudeToBiased(math.Float64bits(values[0]))
	for _, v := range values[1:] {
		cur := signAndMagnitudeToBiased(math.Float64bits(v))
		assert.Greater(t, cur, prev, "v=%v", v)
		prev = cur
	}
}

func TestDistanceAcrossSignBoundary(t *testing.T) {
	zero := FromBits64(0)
	negZero := FromBits64(signMask[uint64]())
	assert.Equal(t, uint64(0), Distance(zero, negZero))

	smallestPos := FromBits64(1)
	smallestNeg := FromBits64(signMask[uint64]() | 1)
	assert.Equal(t, uint64(1), Distance(smallestPos, zero))
	assert.Equal(t, uint64(1), Distance(smallestNeg, negZero))
	assert.Equal(t, uint64(2), Distance(smallestPos, smallestNeg))
}
