package floatcmp

import (
	"math"

	"golang.org/x/xerrors"
)

// Bit widths accepted by the dynamic entry points.
const (
	Width32 = 32
	Width64 = 64
)

// DistanceAtWidth returns the ULP distance between two raw IEEE-754 bit
// patterns of the given width. It exists for callers holding
// deserialized patterns whose width is known only at runtime; when the
// precision is known at compile time, use UlpDistance instead.
// A 32-bit pattern must arrive zero-extended in its uint64 argument.
func DistanceAtWidth(width int, left uint64, right uint64) (uint64, error) {
	switch width {
	case Width32:
		if left > math.MaxUint32 || right > math.MaxUint32 {
			return 0, xerrors.Errorf("bit pattern exceeds %d bits", Width32)
		}
		return uint64(Distance(FromBits32(uint32(left)), FromBits32(uint32(right)))), nil
	case Width64:
		return Distance(FromBits64(left), FromBits64(right)), nil
	default:
		return 0, xerrors.Errorf("unsupported floating point width: %d", width)
	}
}

// IsEqualAtWidth compares two raw IEEE-754 bit patterns of the given
// width with an explicit ULP tolerance. See DistanceAtWidth for the
// width contract.
func IsEqualAtWidth(width int, left uint64, right uint64, maxUlps uint64) (bool, error) {
	d, err := DistanceAtWidth(width, left, right)
	if err != nil {
		return false, xerrors.Errorf("comparing bit patterns: %w", err)
	}
	return d <= maxUlps, nil
}
