package difficulty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDispatchesToV1(t *testing.T) {
	d := Compute(V1, []uint64{0, 120}, []uint64{0, 100}, Params{TargetSeconds: 120})
	assert.Equal(t, FromUint64(100), d)
}

func TestComputeUnknownVariantReturnsZero(t *testing.T) {
	d := Compute(Variant(99), nil, nil, Params{})
	assert.True(t, IsZero(d))
}

func TestEasiestDifficultyUnchangedWithinOneTarget(t *testing.T) {
	prior := FromUint64(1000)
	d := EasiestDifficulty(prior, 100*time.Second, 120)
	assert.Equal(t, prior, d)
}

func TestEasiestDifficultyRelaxesWithElapsedTime(t *testing.T) {
	prior := FromUint64(1000)
	d := EasiestDifficulty(prior, 1000*time.Second, 120)
	assert.Equal(t, FromUint64(125), d)
}

func TestEasiestDifficultyFloorsAtOne(t *testing.T) {
	prior := FromUint64(2)
	d := EasiestDifficulty(prior, 100000*time.Second, 120)
	assert.Equal(t, FromUint64(1), d)
}

func TestEasiestDifficultyDegenerateInputsReturnOne(t *testing.T) {
	assert.Equal(t, FromUint64(1), EasiestDifficulty(FromUint64(1000), time.Second, 0))
	assert.Equal(t, FromUint64(1), EasiestDifficulty(Zero(), time.Second, 120))
}
