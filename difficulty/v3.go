package difficulty

// NextDifficultyV3 is LWMA-2: an integer-arithmetic refinement of V2 that
// clamps solvetimes asymmetrically (-4T..6T), weights the linear solvetime
// sum instead of averaging it per block, and adds a "sum of the last three
// solvetimes" floor that pushes difficulty up 8% when recent blocks have
// been solving suspiciously fast.
//
// timestamps and cumulativeDifficulty must each have exactly WindowV2+1
// entries; callers windowing a live chain are responsible for that sizing.
func NextDifficultyV3(timestamps []uint64, cumulativeDifficulty []uint64) Difficulty {
	const t = int64(TargetV2)
	const n = int64(WindowV2)

	var l, sum3ST int64
	for i := int64(1); i <= n; i++ {
		st := int64(timestamps[i]) - int64(timestamps[i-1])
		if st > 6*t {
			st = 6 * t
		}
		if st < -4*t {
			st = -4 * t
		}
		l += st * i
		if i > n-3 {
			sum3ST += st
		}
	}

	totalWork := int64(cumulativeDifficulty[n] - cumulativeDifficulty[0])
	nextD := (totalWork * t * (n + 1) * 99) / (100 * 2 * l)

	prevD := int64(cumulativeDifficulty[n] - cumulativeDifficulty[n-1])
	lo, hi := (prevD*67)/100, (prevD*150)/100
	if nextD < lo {
		nextD = lo
	}
	if nextD > hi {
		nextD = hi
	}

	if sum3ST < (8*t)/10 {
		floor := (prevD * 108) / 100
		if nextD < floor {
			nextD = floor
		}
	}

	if nextD < Minimum {
		return FromUint64(Minimum)
	}
	return FromUint64(uint64(nextD))
}
