package difficulty

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Hash is an opaque 32-byte block-hash-like value, compared bytewise and,
// for the PoW predicate, interpreted as four little-endian 64-bit words.
type Hash [32]byte

// Difficulty is an arbitrary-precision unsigned target weight. The zero
// value (big.NewInt(0)) is the distinguished "invalid / overflow
// encountered" signal used throughout this package.
type Difficulty = *big.Int

// Zero is the distinguished overflow/invalid sentinel.
func Zero() Difficulty { return big.NewInt(0) }

// IsZero reports whether d is the overflow/invalid sentinel.
func IsZero(d Difficulty) bool { return d == nil || d.Sign() == 0 }

// FromUint64 builds a Difficulty from a plain uint64, the common case for
// V1 and small test fixtures.
func FromUint64(v uint64) Difficulty { return new(big.Int).SetUint64(v) }

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

func (h Hash) words() (w0, w1, w2, w3 uint64) {
	w0 = binary.LittleEndian.Uint64(h[0:8])
	w1 = binary.LittleEndian.Uint64(h[8:16])
	w2 = binary.LittleEndian.Uint64(h[16:24])
	w3 = binary.LittleEndian.Uint64(h[24:32])
	return
}

// CheckPow reports whether hash, interpreted as a 256-bit little-endian
// integer H = w3*2^192 + w2*2^128 + w1*2^64 + w0, satisfies
// H*difficulty < 2^256, i.e. H is below the target implied by difficulty.
// difficulty must be > 0; the zero difficulty is rejected by the caller
// before reaching this predicate (see spec §4.1 "tie-breaking").
//
// PoW monotonicity and the difficulty==1 boundary (spec §8) both follow
// directly from this definition.
func CheckPow(hash Hash, d Difficulty) bool {
	if d.Sign() <= 0 {
		return false
	}
	if d.Cmp(maxUint64) <= 0 {
		return checkPowFast(hash, d.Uint64())
	}
	return checkPowWide(hash, d)
}

// checkPowFast is the difficulty<=2^64-1 path: a 64x64->128 multiply per
// word with a four-limb carry chain, mirroring the accumulator shape of
// the reference mul()/cadd()/cadc() helpers but expressed with
// math/bits' carry-aware primitives instead of a hand-rolled 32-bit
// split multiply.
func checkPowFast(hash Hash, d uint64) bool {
	w0, w1, w2, w3 := hash.words()

	hi3, top := bits.Mul64(w3, d)
	if hi3 != 0 {
		return false
	}

	cur, _ := bits.Mul64(w0, d)

	hi1, lo1 := bits.Mul64(w1, d)
	_, carry := bits.Add64(cur, lo1, 0)

	hi2, lo2 := bits.Mul64(w2, d)
	_, carry = bits.Add64(hi1, lo2, carry)

	_, carry = bits.Add64(hi2, top, carry)
	return carry == 0
}

// checkPowWide is the difficulty>2^64-1 path: a full 256-bit accumulator
// via math/big, used only when the fast path's uint64 difficulty can't
// represent d.
func checkPowWide(hash Hash, d Difficulty) bool {
	w0, w1, w2, w3 := hash.words()
	h := new(big.Int)
	h.SetUint64(w3)
	h.Lsh(h, 64)
	h.Or(h, new(big.Int).SetUint64(w2))
	h.Lsh(h, 64)
	h.Or(h, new(big.Int).SetUint64(w1))
	h.Lsh(h, 64)
	h.Or(h, new(big.Int).SetUint64(w0))

	product := new(big.Int).Mul(h, d)
	return product.BitLen() <= 256
}
