package floatcmp

import (
	"math"
	"math/bits"

	"github.com/euclid-sgs/go-floatcmp/util"
)

// Float is the set of recognized floating point precisions.
type Float interface {
	float32 | float64
}

// UInt is the set of unsigned integer types matching the bit width of a
// recognized floating point precision. Instantiating any of the generic
// functions below at an unlisted width is a compile error.
type UInt interface {
	uint32 | uint64
}

// Mantissa digit counts of the supported precisions, counting the
// implicit leading bit. All field widths and masks below are derived
// from these and the total bit width, never written out per type.
const (
	float32Digits = 24
	float64Digits = 53
)

// FloatingPoint holds the raw bit pattern of an IEEE-754 value whose
// width matches B. The layout, most significant bit first, is
//
//	sign_bit exponent_bits fraction_bits
//
// with 8 exponent and 23 fraction bits for float32, 11 and 52 for
// float64.
//
// Note that moving a non-canonical NaN between registers may rewrite
// its fraction bits on some platforms, so the pattern held here is not
// guaranteed to match the bits the caller's NaN originally had.
type FloatingPoint[B UInt] struct {
	bits B
}

// FromFloat32 captures the bit pattern of a single precision value.
func FromFloat32(x float32) FloatingPoint[uint32] {
	return FloatingPoint[uint32]{bits: math.Float32bits(x)}
}

// FromFloat64 captures the bit pattern of a double precision value.
func FromFloat64(x float64) FloatingPoint[uint64] {
	return FloatingPoint[uint64]{bits: math.Float64bits(x)}
}

// FromBits32 wraps a raw single precision bit pattern.
func FromBits32(b uint32) FloatingPoint[uint32] {
	return FloatingPoint[uint32]{bits: b}
}

// FromBits64 wraps a raw double precision bit pattern.
func FromBits64(b uint64) FloatingPoint[uint64] {
	return FloatingPoint[uint64]{bits: b}
}

// Bits returns the raw bit pattern.
func (fp FloatingPoint[B]) Bits() B {
	return fp.bits
}

// SignBit reports whether the sign bit is set.
func (fp FloatingPoint[B]) SignBit() bool {
	return fp.bits&signMask[B]() != 0
}

// ExponentBits returns the exponent bits, in place.
func (fp FloatingPoint[B]) ExponentBits() B {
	return fp.bits & exponentMask[B]()
}

// FractionBits returns the fraction bits.
func (fp FloatingPoint[B]) FractionBits() B {
	return fp.bits & fractionMask[B]()
}

// Distance returns the number of representable values lying between a
// and b, as an unsigned integer of the same width. Both patterns are
// taken through the biased ordering first, and the smaller biased
// magnitude is subtracted from the larger so the result cannot wrap.
func Distance[B UInt](a FloatingPoint[B], b FloatingPoint[B]) B {
	biased1 := signAndMagnitudeToBiased(a.bits)
	biased2 := signAndMagnitudeToBiased(b.bits)
	return util.Max(biased1, biased2) - util.Min(biased1, biased2)
}

// signAndMagnitudeToBiased converts a bit pattern from IEEE-754's
// sign-and-magnitude ordering to a biased one. Let N be 2 to the power
// of (bit width - 1); the signed number x is represented by the
// unsigned number x + N:
//
//	-N + 1 (the most negative representable pattern) maps to 1,
//	0 maps to N, and
//	N - 1 (the largest representable pattern) maps to 2N - 1.
//
// The mapping is monotonic in the value the pattern encodes, so
// adjacent representable floats map to adjacent integers regardless of
// sign, and both encodings of zero collapse to N.
func signAndMagnitudeToBiased[B UInt](sam B) B {
	if sam&signMask[B]() != 0 {
		// sam encodes a negative number
		return ^sam + 1
	}
	return signMask[B]() | sam
}

// signMask returns the mask for the sign bit: only the most significant
// bit set.
func signMask[B UInt]() B {
	return (^B(0) >> 1) + 1
}

// fractionMask returns the mask for the fraction bits.
func fractionMask[B UInt]() B {
	return ^B(0) >> (exponentBitCount[B]() + 1)
}

// exponentMask returns the mask for the exponent bits: everything the
// sign and fraction masks leave uncovered.
func exponentMask[B UInt]() B {
	return ^(signMask[B]() | fractionMask[B]())
}

// bitCount returns the total bit width of B.
func bitCount[B UInt]() uint {
	return uint(bits.Len64(uint64(^B(0))))
}

// fractionBitCount returns the number of fraction bits of the precision
// whose width matches B: the mantissa digits minus the implicit bit.
func fractionBitCount[B UInt]() uint {
	switch any(B(0)).(type) {
	case uint32:
		return float32Digits - 1
	case uint64:
		return float64Digits - 1
	}
	panic("unreachable width")
}

// exponentBitCount returns the number of exponent bits: the total width
// minus the sign bit and the fraction bits.
func exponentBitCount[B UInt]() uint {
	return bitCount[B]() - 1 - fractionBitCount[B]()
}
