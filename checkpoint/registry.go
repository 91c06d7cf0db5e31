// Package checkpoint implements the ordered height->hash registry used to
// forbid reorganisation below a buried checkpoint, plus the loaders that
// populate it from hard-coded defaults, an operator-supplied JSON file, and
// DNS TXT records.
package checkpoint

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"gitlab.com/jaxnet/cryptonote-consensus/cnerrors"
)

// Hash is a 32-byte block hash, compared bytewise.
type Hash [32]byte

// ParseHash decodes a 64-character hex string into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, cnerrors.NewRuleError(cnerrors.CodeParse, fmt.Sprintf("malformed hash string: %v", err))
	}
	if len(b) != len(h) {
		return h, cnerrors.NewRuleError(cnerrors.CodeParse, fmt.Sprintf("hash string has %d bytes, want %d", len(b), len(h)))
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Registry is an ordered height->Hash map. The zero value is an empty,
// ready-to-use registry.
type Registry struct {
	mu     sync.RWMutex
	points map[uint64]Hash
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{points: make(map[uint64]Hash)}
}

// Add inserts (height, hash). If height is already present with a
// different hash, Add fails and leaves the registry unchanged; inserting
// the same hash again at an existing height is a no-op success.
func (r *Registry) Add(height uint64, h Hash) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(height, h)
}

func (r *Registry) addLocked(height uint64, h Hash) error {
	if existing, ok := r.points[height]; ok && existing != h {
		return cnerrors.NewRuleError(cnerrors.CodeConflict,
			fmt.Sprintf("height %d already has hash %s, refusing %s", height, existing, h))
	}
	if r.points == nil {
		r.points = make(map[uint64]Hash)
	}
	r.points[height] = h
	return nil
}

// AddHex is Add for callers holding a hex-encoded hash string.
func (r *Registry) AddHex(height uint64, hexHash string) error {
	h, err := ParseHash(hexHash)
	if err != nil {
		return err
	}
	return r.Add(height, h)
}

// ContainsHeight reports whether a checkpoint exists at height.
func (r *Registry) ContainsHeight(height uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.points[height]
	return ok
}

// InCheckpointZone reports whether height is at or below the highest known
// checkpoint. An empty registry is never "in zone".
func (r *Registry) InCheckpointZone(height uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.points) == 0 {
		return false
	}
	return height <= r.maxHeightLocked()
}

// CheckBlock reports whether hash matches the checkpoint at height, if one
// exists. ok is true when there is no checkpoint at height, or when the
// stored hash matches. isCheckpoint reports whether height has a
// checkpoint at all.
func (r *Registry) CheckBlock(height uint64, h Hash) (ok, isCheckpoint bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, present := r.points[height]
	if !present {
		return true, false
	}
	return stored == h, true
}

// IsAlternativeBlockAllowed reports whether an alternative block at
// block_height may be considered, given the chain has reached
// blockchainHeight. A block_height of 0 is never allowed. If no checkpoint
// is at or below blockchainHeight, every block_height is allowed.
func (r *Registry) IsAlternativeBlockAllowed(blockchainHeight, blockHeight uint64) bool {
	if blockHeight == 0 {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp, ok := r.greatestAtOrBelowLocked(blockchainHeight)
	if !ok {
		return true
	}
	return cp < blockHeight
}

func (r *Registry) greatestAtOrBelowLocked(height uint64) (uint64, bool) {
	var best uint64
	found := false
	for h := range r.points {
		if h <= height && (!found || h > best) {
			best, found = h, true
		}
	}
	return best, found
}

// MaxHeight returns the highest checkpointed height, or 0 if the registry
// is empty.
func (r *Registry) MaxHeight() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxHeightLocked()
}

func (r *Registry) maxHeightLocked() uint64 {
	var max uint64
	for h := range r.points {
		if h > max {
			max = h
		}
	}
	return max
}

// CheckForConflicts reports whether other shares no disagreeing height
// with r: every height present in both must map to the same hash.
func (r *Registry) CheckForConflicts(other *Registry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	for h, hash := range other.points {
		if existing, ok := r.points[h]; ok && existing != hash {
			return false
		}
	}
	return true
}

// Merge folds other's entries into r, failing on the first disagreeing
// height and leaving r unchanged if it fails.
func (r *Registry) Merge(other *Registry) error {
	if !r.CheckForConflicts(other) {
		return cnerrors.NewRuleError(cnerrors.CodeConflict, "merge source conflicts with existing registry")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	other.mu.RLock()
	defer other.mu.RUnlock()
	for h, hash := range other.points {
		if err := r.addLocked(h, hash); err != nil {
			return err
		}
	}
	return nil
}

// hashAt returns the hash stored at height, if any.
func (r *Registry) hashAt(height uint64) (Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.points[height]
	return h, ok
}

// heights returns the registry's keys in ascending order, used by
// WriteJSON to emit entries in a stable order.
func (r *Registry) heights() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hs := make([]uint64, 0, len(r.points))
	for h := range r.points {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
