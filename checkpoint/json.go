package checkpoint

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type hashLine struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

type hashFile struct {
	Hashlines []hashLine `json:"hashlines"`
}

// LoadFromJSON reads path and adds every entry whose height exceeds the
// registry's current max height; entries at or below it are skipped to
// avoid demoting an already-buried checkpoint. A missing file is not an
// error.
func (r *Registry) LoadFromJSON(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info().Str("path", path).Msg("checkpoint file not found, skipping")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "checkpoint: reading json file")
	}

	var hf hashFile
	if err := json.Unmarshal(data, &hf); err != nil {
		return errors.Wrap(err, "checkpoint: parsing json file")
	}

	prevMax := r.MaxHeight()
	for _, line := range hf.Hashlines {
		if line.Height <= prevMax {
			log.Info().Uint64("height", line.Height).Msg("ignoring checkpoint at or below current max")
			continue
		}
		if err := r.AddHex(line.Height, line.Hash); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes every entry in the registry to path in the same
// hashlines format LoadFromJSON reads, ordered by height.
func (r *Registry) WriteJSON(path string) error {
	heights := r.heights()
	hf := hashFile{Hashlines: make([]hashLine, 0, len(heights))}
	for _, height := range heights {
		hash, known := r.hashAt(height)
		if !known {
			continue
		}
		hf.Hashlines = append(hf.Hashlines, hashLine{Height: height, Hash: hash.String()})
	}

	data, err := json.MarshalIndent(hf, "", "  ")
	if err != nil {
		return errors.Wrap(err, "checkpoint: marshalling json file")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "checkpoint: writing json file")
	}
	return nil
}
