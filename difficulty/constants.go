// Package difficulty implements the next-target retargeting algorithms
// (V1 classic through V5 LWMA-1) and the proof-of-work hash predicate
// that consumes their output. The algorithms are pure functions of
// recent timestamp/cumulative-difficulty windows; none of them touch
// the network or a database.
package difficulty

// Constants fixed by the consensus rules. Changing any of these values
// changes which blocks validate — they are not tuning knobs.
const (
	// Window is the number of most-recent blocks V1 looks at.
	Window = 720
	// Cut is the number of outlier timestamps trimmed from each end of
	// the V1 window before the span/work ratio is taken.
	Cut = 60
	// WindowV2 is N for the LWMA variants V2 through V4; V5 takes its
	// window from the caller.
	WindowV2 = 60
	// TargetV2 is the target block time, in seconds, used by LWMA
	// variants that do not receive an explicit target.
	TargetV2 = 120
	// Minimum is the floor difficulty can never fall below for V3/V4/V5.
	Minimum = 100000
	// ActivationHeight is where the LWMA-4 seed value applies.
	ActivationHeight = 9400
	// SeedDifficulty is the hard-coded difficulty at ActivationHeight
	// and the block immediately after it.
	SeedDifficulty = 100000069
)
