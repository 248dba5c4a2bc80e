package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"glassboard/internal/model"
)

//go:embed seed.json
var seedJSON []byte

// Seed serves the starter board compiled into the binary. It is the last
// tier before a board gets synthesized from scratch.
type Seed struct{}

// NewSeed creates the embedded seed store.
func NewSeed() *Seed {
	return &Seed{}
}

// LoadBoard decodes a fresh copy of the embedded board document.
func (s *Seed) LoadBoard() (*model.Board, error) {
	var board model.Board
	if err := json.Unmarshal(seedJSON, &board); err != nil {
		return nil, fmt.Errorf("decoding seed board: %w", err)
	}
	return &board, nil
}
