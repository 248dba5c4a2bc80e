package store

import (
	"context"
	"errors"
	"fmt"

	"glassboard/internal/logger"
	"glassboard/internal/metrics"
	"glassboard/internal/model"
)

// Fallback layers the persistence tiers so that loading always produces a
// usable board and saving always lands somewhere durable. Load order is
// remote, cache, seed, synthesized default; every successful load refreshes
// the cache so the next offline start has data.
type Fallback struct {
	remote RemoteStore
	local  LocalStore
	seed   SeedStore
}

// NewFallback assembles the chain from its three tiers.
func NewFallback(remote RemoteStore, local LocalStore, seed SeedStore) *Fallback {
	return &Fallback{remote: remote, local: local, seed: seed}
}

// LoadBoard returns the best available copy of the board. It never fails:
// when every tier is empty or broken it synthesizes a default board.
func (f *Fallback) LoadBoard(ctx context.Context, id string) *model.Board {
	board, err := f.remote.FetchBoard(ctx, id)
	if err == nil {
		board.Normalize()
		f.cache(board)
		metrics.BoardLoads.WithLabelValues(metrics.SourceRemote).Inc()
		return board
	}
	logger.Log.Warn("⚠️  Remote board unavailable, falling back to cache", "board", id, "error", err)

	board, err = f.local.LoadBoard(id)
	if err == nil {
		board.Normalize()
		metrics.BoardLoads.WithLabelValues(metrics.SourceCache).Inc()
		return board
	}
	if errors.Is(err, ErrBoardNotFound) {
		logger.Log.Debug("No cached copy of board", "board", id)
	} else {
		logger.Log.Warn("⚠️  Cache read failed, falling back to seed", "board", id, "error", err)
	}

	board, err = f.seed.LoadBoard()
	if err == nil {
		if id != "" {
			board.ID = id
		}
		board.Normalize()
		f.cache(board)
		metrics.BoardLoads.WithLabelValues(metrics.SourceSeed).Inc()
		return board
	}
	logger.Log.Error("❌ Seed board unavailable", "error", err)

	board = model.DefaultBoard(id)
	f.cache(board)
	metrics.BoardLoads.WithLabelValues(metrics.SourceDefault).Inc()
	return board
}

// SaveBoard pushes the board to the backend and mirrors the canonical result
// into the cache. When the backend is unreachable the board is kept in the
// cache only and a non-fatal error reports the degraded save.
func (f *Fallback) SaveBoard(ctx context.Context, board *model.Board) (*model.Board, error) {
	canonical, err := f.remote.PushBoard(ctx, board)
	if err == nil {
		canonical.Normalize()
		f.cache(canonical)
		metrics.BoardSaves.WithLabelValues(metrics.OutcomeRemote).Inc()
		return canonical, nil
	}
	logger.Log.Warn("⚠️  Remote save failed, keeping changes locally", "board", board.ID, "error", err)

	if cacheErr := f.local.SaveBoard(board); cacheErr != nil {
		logger.Log.Error("❌ Local cache save failed", "board", board.ID, "error", cacheErr)
		metrics.BoardSaves.WithLabelValues(metrics.OutcomeFailed).Inc()
		return board, fmt.Errorf("board not synced: %w", errors.Join(err, cacheErr))
	}
	metrics.BoardSaves.WithLabelValues(metrics.OutcomeLocalOnly).Inc()
	return board, fmt.Errorf("board not synced: %w", err)
}

func (f *Fallback) cache(board *model.Board) {
	if err := f.local.SaveBoard(board); err != nil {
		logger.Log.Warn("⚠️  Failed to cache board", "board", board.ID, "error", err)
	}
}
