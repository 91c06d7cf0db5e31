package difficulty

// NextDifficultyV4 is LWMA-4: V3 reworked to temper sudden solvetime drops
// (a miner finding several blocks fast right before one very slow block no
// longer drags the average down as hard), apply a 10% jump rule on the
// freshest few solvetimes, and round the result to a small number of
// significant digits so the published difficulty looks "clean".
//
// At ActivationHeight and the block immediately after it, the hard-coded
// SeedDifficulty is returned unconditionally rather than computed, matching
// the one-time reseed the chain performed when this algorithm activated.
//
// timestamps and cumulativeDifficulty must each have exactly WindowV2+1
// entries.
func NextDifficultyV4(timestamps []uint64, cumulativeDifficulty []uint64, height uint64) Difficulty {
	if height >= ActivationHeight && height <= ActivationHeight+1 {
		return FromUint64(SeedDifficulty)
	}

	const t = uint64(TargetV2)
	const n = uint64(WindowV2)

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
		var st uint64
		switch {
		case i > 4 && ts[i]-ts[i-1] > 5*t && ts[i-1]-ts[i-4] < (14*t)/10:
			st = 2 * t
		case i > 7 && ts[i]-ts[i-1] > 5*t && ts[i-1]-ts[i-7] < 4*t:
			st = 2 * t
		default:
			st = ts[i] - ts[i-1]
			if st > 5*t {
				st = 5 * t
			}
		}
		l += st * i
	}
	if floor := n * n * t / 20; l < floor {
		l = floor
	}

	avgD := (cumulativeDifficulty[n] - cumulativeDifficulty[0]) / n

	var nextD uint64
	if avgD > 2000000*n*n*t {
		nextD = (avgD / (200 * l)) * (n * (n + 1) * t * 97)
	} else {
		nextD = (avgD * n * (n + 1) * t * 97) / (200 * l)
	}

	prevD := cumulativeDifficulty[n] - cumulativeDifficulty[n-1]

	if ts[n]-ts[n-1] < (2*t)/10 || ts[n]-ts[n-2] < (5*t)/10 || ts[n]-ts[n-3] < (8*t)/10 {
		capped := (prevD * 110) / 100
		relaxed := (105 * avgD) / 100
		if capped < relaxed {
			relaxed = capped
		}
		if nextD < relaxed {
			nextD = relaxed
		}
	}

	for i := uint64(1000000000); i > 1; i /= 10 {
		if nextD > i*100 {
			nextD = ((nextD + i/2) / i) * i
			break
		}
	}

	if nextD > 100000 {
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
