package store_test

import (
	"context"
	"errors"
	"testing"

	"glassboard/internal/metrics"
	"glassboard/internal/model"
	"glassboard/internal/store"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeRemote struct {
	board     *model.Board
	canonical *model.Board
	err       error
	fetches   int
	pushes    int
}

func (f *fakeRemote) FetchBoard(ctx context.Context, id string) (*model.Board, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.board.Clone(), nil
}

func (f *fakeRemote) PushBoard(ctx context.Context, board *model.Board) (*model.Board, error) {
	f.pushes++
	if f.err != nil {
		return nil, f.err
	}
	if f.canonical != nil {
		return f.canonical.Clone(), nil
	}
	return board.Clone(), nil
}

type fakeLocal struct {
	boards  map[string]*model.Board
	loadErr error
	saveErr error
	saves   int
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{boards: map[string]*model.Board{}}
}

func (f *fakeLocal) LoadBoard(id string) (*model.Board, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	board, ok := f.boards[id]
	if !ok {
		return nil, store.ErrBoardNotFound
	}
	return board.Clone(), nil
}

func (f *fakeLocal) SaveBoard(board *model.Board) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.boards[board.ID] = board.Clone()
	return nil
}

type fakeSeed struct {
	board *model.Board
	err   error
}

func (f *fakeSeed) LoadBoard() (*model.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.board.Clone(), nil
}

func TestFallback_LoadBoard_PrefersRemote(t *testing.T) {
	remoteBoard := model.DefaultBoard("b1")
	remoteBoard.Title = "From Remote"
	remote := &fakeRemote{board: remoteBoard}
	local := newFakeLocal()

	chain := store.NewFallback(remote, local, &fakeSeed{board: model.DefaultBoard("seed")})
	board := chain.LoadBoard(context.Background(), "b1")

	assert.Equal(t, "From Remote", board.Title)

	cached, err := local.LoadBoard("b1")
	assert.NoError(t, err)
	assert.Equal(t, "From Remote", cached.Title)
}

func TestFallback_LoadBoard_FallsBackToCache(t *testing.T) {
	cachedBoard := model.DefaultBoard("b1")
	cachedBoard.Title = "From Cache"
	local := newFakeLocal()
	local.boards["b1"] = cachedBoard

	remote := &fakeRemote{err: errors.New("connection refused")}
	chain := store.NewFallback(remote, local, &fakeSeed{board: model.DefaultBoard("seed")})

	board := chain.LoadBoard(context.Background(), "b1")

	assert.Equal(t, "From Cache", board.Title)
	assert.Equal(t, 1, remote.fetches)
}

func TestFallback_LoadBoard_FallsBackToSeed(t *testing.T) {
	seedBoard := model.DefaultBoard("seed")
	seedBoard.Title = "Welcome Board"

	remote := &fakeRemote{err: errors.New("connection refused")}
	local := newFakeLocal()
	chain := store.NewFallback(remote, local, &fakeSeed{board: seedBoard})

	before := testutil.ToFloat64(metrics.BoardLoads.WithLabelValues(metrics.SourceSeed))
	board := chain.LoadBoard(context.Background(), "b1")

	assert.Equal(t, "Welcome Board", board.Title)
	assert.Equal(t, "b1", board.ID)
	assert.Contains(t, local.boards, "b1")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.BoardLoads.WithLabelValues(metrics.SourceSeed)))
}

func TestFallback_LoadBoard_SynthesizesDefault(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	local := newFakeLocal()
	local.loadErr = errors.New("disk failure")
	local.saveErr = errors.New("disk failure")
	seed := &fakeSeed{err: errors.New("corrupt seed")}

	chain := store.NewFallback(remote, local, seed)
	board := chain.LoadBoard(context.Background(), "b9")

	assert.NotNil(t, board)
	assert.Equal(t, "b9", board.ID)
	assert.Equal(t, "Default Board", board.Title)
	assert.Len(t, board.Columns, 3)
}

func TestFallback_SaveBoard_AdoptsCanonical(t *testing.T) {
	canonical := model.DefaultBoard("b1")
	canonical.Title = "Server Truth"
	remote := &fakeRemote{canonical: canonical}
	local := newFakeLocal()

	chain := store.NewFallback(remote, local, &fakeSeed{board: model.DefaultBoard("seed")})
	saved, err := chain.SaveBoard(context.Background(), model.DefaultBoard("b1"))

	assert.NoError(t, err)
	assert.Equal(t, "Server Truth", saved.Title)
	assert.Equal(t, "Server Truth", local.boards["b1"].Title)
}

func TestFallback_SaveBoard_LocalOnlyWhenRemoteFails(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	local := newFakeLocal()
	chain := store.NewFallback(remote, local, &fakeSeed{board: model.DefaultBoard("seed")})

	board := model.DefaultBoard("b1")
	board.Title = "Offline Edit"
	saved, err := chain.SaveBoard(context.Background(), board)

	assert.ErrorContains(t, err, "board not synced")
	assert.Equal(t, "Offline Edit", saved.Title)
	assert.Equal(t, "Offline Edit", local.boards["b1"].Title)
}

func TestFallback_SaveBoard_ReportsBothFailures(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	local := newFakeLocal()
	local.saveErr = errors.New("database is locked")
	chain := store.NewFallback(remote, local, &fakeSeed{board: model.DefaultBoard("seed")})

	saved, err := chain.SaveBoard(context.Background(), model.DefaultBoard("b1"))

	assert.NotNil(t, saved)
	assert.ErrorContains(t, err, "connection refused")
	assert.ErrorContains(t, err, "database is locked")
}
