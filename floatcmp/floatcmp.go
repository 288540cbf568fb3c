// Package floatcmp decides whether two IEEE-754 values should be
// treated as equal despite bit-level differences accumulated through
// rounding. Because real numbers are stored with finite precision, two
// computations of the same quantity rarely produce identical bits, and
// a naive == comparison often fails where the values agree to within
// rounding error.
//
// The comparison works in units in the last place (ULPs): the raw bit
// pattern of each operand is converted to a biased ordering in which
// adjacent representable floats are adjacent integers, and the two
// values are considered equal when the unsigned distance between their
// biased patterns is at most the given tolerance. A tolerance of 0
// demands identical bit patterns, except that +0.0 and -0.0 collapse
// to the same biased pattern and always compare equal.
package floatcmp

const (
	// DefaultMaxUlps is the tolerance applied when the caller does not
	// supply one. A single floating point operation is off by at most
	// half a ULP, so 10 covers a short chain of operations.
	DefaultMaxUlps = 10

	// DefaultTestTolerance is a loose relative tolerance for
	// approximate comparisons in test assertions, read as
	// |x-y| <= tol*|x+y|. For real-life comparison rather use IsEqual.
	DefaultTestTolerance float64 = 1e-10
)

// IsEqual reports whether left and right are within DefaultMaxUlps
// units in the last place of each other.
func IsEqual[T Float](left T, right T) bool {
	return IsEqualWithUlps(left, right, DefaultMaxUlps)
}

// IsNotEqual reports whether left and right are more than
// DefaultMaxUlps units in the last place apart.
func IsNotEqual[T Float](left T, right T) bool {
	return !IsEqual(left, right)
}

// IsEqualWithUlps reports whether left and right are within maxUlps
// units in the last place of each other.
//
// NaN and Infinity get no special handling: the verdict follows from
// the operand bit patterns alone. Two NaNs usually compare unequal
// because their patterns are far apart, but NaN encodings are not
// canonical, so callers needing strict NaN != NaN semantics must check
// for NaN themselves.
func IsEqualWithUlps[T Float](left T, right T, maxUlps uint64) bool {
	return UlpDistance(left, right) <= maxUlps
}

// UlpDistance returns the number of representable values of T lying
// between left and right.
func UlpDistance[T Float](left T, right T) uint64 {
	switch l := any(left).(type) {
	case float32:
		return uint64(Distance(FromFloat32(l), FromFloat32(any(right).(float32))))
	case float64:
		return Distance(FromFloat64(l), FromFloat64(any(right).(float64)))
	}
	panic("unreachable width")
}
