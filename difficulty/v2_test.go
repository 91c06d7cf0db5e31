package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDifficultyV2FewerThanFourReturnsOne(t *testing.T) {
	d := NextDifficultyV2([]uint64{0, 10, 20}, []uint64{0, 100, 200}, 120)
	assert.Equal(t, FromUint64(1), d)
}

func TestNextDifficultyV2StableChainHoldsDifficultySteady(t *testing.T) {
	n := WindowV2
	ts := make([]uint64, n+1)
	cd := make([]uint64, n+1)
	for i := 0; i <= n; i++ {
		ts[i] = uint64(i) * 120
		cd[i] = uint64(i) * 1000
	}
	d := NextDifficultyV2(ts, cd, 120)
	assert.False(t, IsZero(d))
	// Solve times are exactly the target, so LWMA ~= T and the harmonic
	// mean of per-block difficulty is exactly 1000: expect next difficulty
	// close to the steady-state value, allowing for the 0.998 adjustment.
	got := d.Uint64()
	assert.True(t, got > 950 && got < 1000, "got %d", got)
}
