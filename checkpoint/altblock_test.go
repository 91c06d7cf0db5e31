package checkpoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/jaxnet/cryptonote-consensus/difficulty"
	"gitlab.com/jaxnet/cryptonote-consensus/hardfork"
)

func TestIsAlternativeBlockAllowedWithDifficultyRejectsBelowCheckpoint(t *testing.T) {
	r := New()
	require.NoError(t, r.InitDefaults(hardfork.Mainnet))

	allowed := r.IsAlternativeBlockAllowedWithDifficulty(
		100000, 63469, difficulty.FromUint64(1000), difficulty.FromUint64(1000), time.Hour, 120)
	assert.False(t, allowed)
}

func TestIsAlternativeBlockAllowedWithDifficultyRejectsForgedLowDifficulty(t *testing.T) {
	r := New()

	allowed := r.IsAlternativeBlockAllowedWithDifficulty(
		100000, 300000, difficulty.FromUint64(1000), difficulty.FromUint64(1), time.Minute, 120)
	assert.False(t, allowed)
}

func TestIsAlternativeBlockAllowedWithDifficultyAllowsPlausibleClaim(t *testing.T) {
	r := New()

	allowed := r.IsAlternativeBlockAllowedWithDifficulty(
		100000, 300000, difficulty.FromUint64(1000), difficulty.FromUint64(1000), time.Minute, 120)
	assert.True(t, allowed)
}
