package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDifficultyV3FloorsAtMinimum(t *testing.T) {
	n := WindowV2
	ts := make([]uint64, n+1)
	cd := make([]uint64, n+1)
	for i := 0; i <= n; i++ {
		ts[i] = uint64(i) * TargetV2
		cd[i] = uint64(i) * (Minimum / 2)
	}
	d := NextDifficultyV3(ts, cd)
	assert.True(t, d.Uint64() >= Minimum)
}

func TestNextDifficultyV3StableChain(t *testing.T) {
	n := WindowV2
	ts := make([]uint64, n+1)
	cd := make([]uint64, n+1)
	for i := 0; i <= n; i++ {
		ts[i] = uint64(i) * TargetV2
		cd[i] = uint64(i) * 200000
	}
	d := NextDifficultyV3(ts, cd)
	assert.False(t, IsZero(d))
	assert.True(t, d.Uint64() >= Minimum)
}
