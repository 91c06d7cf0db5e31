package difficulty

import (
	"math/bits"
	"sort"
)

// NextDifficultyV1 is the classic CryptoNote retarget: truncate to
// Window entries, trim Cut outliers from each tail of the
// timestamp-sorted window, and divide cumulative work by the trimmed
// time span.
//
// Returns Zero() ("difficulty overhead") if work*targetSeconds does not
// fit in 64 bits, if adding span-1 to round the division up carries out
// of 64 bits, or if the trimmed window holds no work — the caller must
// treat that as a rejected block, never as a literal difficulty of zero.
func NextDifficultyV1(timestamps []uint64, cumulativeDifficulty []uint64, targetSeconds uint64) Difficulty {
	if len(timestamps) > Window {
		timestamps = timestamps[:Window]
		cumulativeDifficulty = cumulativeDifficulty[:Window]
	}

	length := len(timestamps)
	if length <= 1 {
		return FromUint64(1)
	}

	sorted := make([]uint64, length)
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var cutBegin, cutEnd int
	trimmed := Window - 2*Cut
	if length <= trimmed {
		cutBegin, cutEnd = 0, length
	} else {
		cutBegin = (length - trimmed + 1) / 2
		cutEnd = cutBegin + trimmed
	}

	span := sorted[cutEnd-1] - sorted[cutBegin]
	if span == 0 {
		span = 1
	}

	work := cumulativeDifficulty[cutEnd-1] - cumulativeDifficulty[cutBegin]
	if work == 0 {
		// The reference asserts total_work > 0; a caller feeding a
		// degenerate window gets the overflow signal instead of a panic.
		return Zero()
	}

	hi, lo := bits.Mul64(work, targetSeconds)
	sum, carry := bits.Add64(lo, span-1, 0)
	if hi != 0 || carry != 0 {
		return Zero()
	}
	quotient, _ := bits.Div64(hi, sum, span)
	return FromUint64(quotient)
}
