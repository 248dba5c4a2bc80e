// Package service owns the authoritative in-memory board snapshot. Every
// operation validates its input, applies the mutation to the snapshot first,
// then persists through the fallback chain; a failed persist is reported but
// never rolls the local change back.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"glassboard/internal/logger"
	"glassboard/internal/model"
	"glassboard/internal/ordering"
)

// Persistence is what the service requires from the storage fallback chain.
type Persistence interface {
	LoadBoard(ctx context.Context, id string) *model.Board
	SaveBoard(ctx context.Context, board *model.Board) (*model.Board, error)
}

// BoardService is the single writer of the board snapshot. Reads hand out
// deep copies, so callers can never reach the shared state. Concurrent
// mutations are last-write-wins, matching single-editor usage.
type BoardService struct {
	store    Persistence
	validate *validator.Validate
	boardID  string

	mu         sync.RWMutex
	board      *model.Board
	generation uint64
	lastError  error
}

// NewBoardService binds a service to one board id. Nothing is loaded until
// LoadBoard or the first mutation.
func NewBoardService(boardID string, persistence Persistence) *BoardService {
	if boardID == "" {
		boardID = "default"
	}
	return &BoardService{
		store:    persistence,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		boardID:  boardID,
	}
}

// LoadBoard refreshes the snapshot through the fallback chain and returns a
// copy of it. It never fails: the chain degrades through cache, seed and a
// synthesized default before giving up on the network.
func (s *BoardService) LoadBoard(ctx context.Context) *model.Board {
	board := s.store.LoadBoard(ctx, s.boardID)

	s.mu.Lock()
	s.board = board
	s.generation++
	s.mu.Unlock()

	logger.Log.Info("✅ Board loaded", "board", board.ID, "title", board.Title, "columns", len(board.Columns))
	return board.Clone()
}

// Board returns a deep copy of the current snapshot, or nil before the
// first load.
func (s *BoardService) Board() *model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// LastError reports the most recent degraded save. A fully successful save
// clears it.
func (s *BoardService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearLastError dismisses the reported save failure.
func (s *BoardService) ClearLastError() {
	s.mu.Lock()
	s.lastError = nil
	s.mu.Unlock()
}

// StartAutoRefresh reloads the board on a fixed interval until ctx is
// cancelled. A refresh replaces the snapshot wholesale, so unsynced local
// edits lose to the incoming copy.
func (s *BoardService) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		logger.Log.Warn("⚠️  Auto-refresh disabled, interval must be positive", "interval", interval)
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Log.Info("🛑 Auto-refresh stopped", "board", s.boardID)
				return
			case <-ticker.C:
				s.LoadBoard(ctx)
			}
		}
	}()

	logger.Log.Info("🚀 Auto-refresh started", "board", s.boardID, "interval", interval)
}

// UpdateBoard renames the board.
func (s *BoardService) UpdateBoard(ctx context.Context, title string) (*model.Board, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("board title is required")
	}
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		board.Title = title
		return true, nil
	})
}

// UpdateTheme switches the board between light and dark.
func (s *BoardService) UpdateTheme(ctx context.Context, theme model.Theme) (*model.Board, error) {
	if !theme.Valid() {
		return nil, ErrInvalidTheme
	}
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		board.Theme = theme
		return true, nil
	})
}

// apply runs one mutation against a working copy of the snapshot, commits
// it locally on success and persists outside the lock. fn reports whether it
// changed anything; unchanged boards skip the persistence write entirely.
func (s *BoardService) apply(ctx context.Context, fn func(*model.Board) (bool, error)) (*model.Board, error) {
	s.ensureLoaded(ctx)

	s.mu.Lock()
	working := s.board.Clone()
	changed, err := fn(working)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !changed {
		snapshot := s.board.Clone()
		s.mu.Unlock()
		return snapshot, nil
	}

	working.Normalize()
	s.board = working
	s.generation++
	gen := s.generation
	snapshot := working.Clone()
	s.mu.Unlock()

	return s.persist(ctx, snapshot, gen), nil
}

// persist pushes the committed snapshot through the chain. On a clean save
// the server's canonical board replaces the snapshot, unless a newer local
// mutation has landed in the meantime.
func (s *BoardService) persist(ctx context.Context, snapshot *model.Board, gen uint64) *model.Board {
	canonical, err := s.store.SaveBoard(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastError = err
		return snapshot
	}

	s.lastError = nil
	if s.generation == gen {
		s.board = canonical
		return canonical.Clone()
	}
	return snapshot
}

func (s *BoardService) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.board != nil
	s.mu.RUnlock()

	if !loaded {
		s.LoadBoard(ctx)
	}
}

func clampIndex(index, max int) int {
	if index < 0 {
		return 0
	}
	if index > max {
		return max
	}
	return index
}

// checkOrderDrift flags sibling order values whose gaps have collapsed below
// epsilon. Renumbering is deliberately not performed here; repeated midpoint
// insertion in the same gap loses precision after roughly fifty repositions
// and the warning is the signal to watch for.
func checkOrderDrift(entity, id string, orders []float64) {
	if gap := ordering.MinGap(orders); gap < ordering.Epsilon {
		logger.Log.Warn("⚠️  Sibling order gap below epsilon, precision loss imminent", entity, id, "minGap", gap)
	}
}
