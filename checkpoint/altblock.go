package checkpoint

import (
	"time"

	"gitlab.com/jaxnet/cryptonote-consensus/difficulty"
)

// IsAlternativeBlockAllowedWithDifficulty extends IsAlternativeBlockAllowed
// with a defence against a forged-timestamp alt-chain: even a block height
// the checkpoint gate alone would allow is rejected if its claimed
// difficulty falls below the easiest value a legitimate retarget could have
// produced over elapsed wall-clock time since priorDifficulty's block.
func (r *Registry) IsAlternativeBlockAllowedWithDifficulty(
	blockchainHeight, blockHeight uint64,
	priorDifficulty, claimedDifficulty difficulty.Difficulty,
	elapsed time.Duration, targetSeconds uint64,
) bool {
	if !r.IsAlternativeBlockAllowed(blockchainHeight, blockHeight) {
		return false
	}
	ceiling := difficulty.EasiestDifficulty(priorDifficulty, elapsed, targetSeconds)
	return claimedDifficulty.Cmp(ceiling) >= 0
}
