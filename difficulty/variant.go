package difficulty

import (
	"fmt"
	"math/big"
	"time"

	"gitlab.com/jaxnet/cryptonote-consensus/cnerrors"
)

// Variant identifies which retargeting algorithm a hardfork version has
// activated. The active Variant is a function of chain height via the
// hardfork schedule; this package never makes that selection itself.
type Variant int

const (
	V1 Variant = iota + 1
	V2
	V3
	V4
	V5
)

func (v Variant) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V3:
		return "v3"
	case V4:
		return "v4"
	case V5:
		return "v5"
	default:
		return "unknown"
	}
}

// Params bundles the window/target/height parameters V5's parameterized
// form needs; the fixed variants ignore the fields they don't use.
type Params struct {
	TargetSeconds    uint64
	Window           uint64
	ActivationHeight uint64
	Height           uint64
}

// Compute dispatches to the retarget algorithm named by v. timestamps and
// cumulativeDifficulty are the caller's windowed history, oldest first.
func Compute(v Variant, timestamps []uint64, cumulativeDifficulty []uint64, p Params) Difficulty {
	var result Difficulty
	switch v {
	case V1:
		result = NextDifficultyV1(timestamps, cumulativeDifficulty, p.TargetSeconds)
	case V2:
		result = NextDifficultyV2(timestamps, cumulativeDifficulty, p.TargetSeconds)
	case V3:
		result = NextDifficultyV3(timestamps, cumulativeDifficulty)
	case V4:
		result = NextDifficultyV4(timestamps, cumulativeDifficulty, p.Height)
	case V5:
		result = NextDifficultyV5(timestamps, cumulativeDifficulty, p.TargetSeconds, p.Window, p.ActivationHeight, p.Height)
	default:
		overflowErr := cnerrors.NewRuleError(cnerrors.CodeOverflow, fmt.Sprintf("unknown difficulty variant %s", v))
		log.Warn().Err(overflowErr).Msg("difficulty: rejecting compute request")
		return Zero()
	}

	if IsZero(result) {
		overflowErr := cnerrors.NewRuleError(cnerrors.CodeOverflow, fmt.Sprintf("variant %s produced an overflow/invalid result", v))
		log.Warn().Err(overflowErr).Msg("difficulty: retarget overflowed")
	}
	return result
}

// EasiestDifficulty returns the lowest difficulty a legitimate retarget
// could plausibly have reached, used as a bound when validating an
// alternative-chain block against a buried checkpoint: the longer the
// claimed elapsed time since priorDifficulty's block, the easier the
// target could have become, so the bound is priorDifficulty divided by
// the number of whole target intervals elapsed, and never drops below 1.
func EasiestDifficulty(priorDifficulty Difficulty, elapsed time.Duration, target uint64) Difficulty {
	if target == 0 || IsZero(priorDifficulty) {
		return FromUint64(1)
	}

	seconds := uint64(elapsed / time.Second)
	multiples := seconds / target
	if multiples == 0 {
		return priorDifficulty
	}

	eased := new(big.Int).Div(priorDifficulty, new(big.Int).SetUint64(multiples))
	if eased.Sign() <= 0 {
		return FromUint64(1)
	}
	return eased
}
