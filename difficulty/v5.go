package difficulty

// NextDifficultyV5 is LWMA-1, the parameterized successor to V4: target
// seconds and window size are caller-supplied instead of fixed constants,
// the solvetime clamp drops the "tempering" special cases and uses a
// simple running-previous-timestamp clip, and the weighted-sum/avg/round
// shape otherwise mirrors V4.
//
// At height == activationHeight or activationHeight+1 the hard-coded
// SeedDifficulty is returned unconditionally, matching V4's one-time
// reseed behavior parameterized onto an arbitrary activation height.
func NextDifficultyV5(timestamps []uint64, cumulativeDifficulty []uint64, targetSeconds, window, activationHeight, height uint64) Difficulty {
	if height == activationHeight || height == activationHeight+1 {
		return FromUint64(SeedDifficulty)
	}

	t := targetSeconds
	n := window

	ts := make([]uint64, n+1)
	ts[0] = timestamps[0]
	for i := uint64(1); i <= n; i++ {
		if timestamps[i] > ts[i-1] {
			ts[i] = timestamps[i]
		} else {
			ts[i] = ts[i-1]
		}
	}

	var l uint64
	for i := uint64(1); i <= n; i++ {
		st := ts[i] - ts[i-1]
		if st > 6*t {
			st = 6 * t
		}
		l += st * i
	}
	if floor := n * n * t / 20; l < floor {
		l = floor
	}

	avgD := (cumulativeDifficulty[n] - cumulativeDifficulty[0]) / n

	var nextD uint64
	if avgD > 2000000*n*n*t {
		nextD = (avgD / (200 * l)) * (n * (n + 1) * t * 99)
	} else {
		nextD = (avgD * n * (n + 1) * t * 99) / (200 * l)
	}

	for i := uint64(1000000000); i > 1; i /= 10 {
		if nextD > i*100 {
			nextD = ((nextD + i/2) / i) * i
			break
		}
	}

	if nextD > 100000 && n >= 10 {
		tail := (ts[n] - ts[n-10]) / 10
		if tail > 999 {
			tail = 999
		}
		nextD = ((nextD+500)/1000)*1000 + tail
	}

	if nextD < Minimum {
		return FromUint64(Minimum)
	}
	return FromUint64(nextD)
}
