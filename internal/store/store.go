// Package store implements the persistence boundary behind the board
// service: the remote REST API, the local sqlite cache, the embedded seed
// document, and the fallback chain that layers them.
package store

import (
	"context"

	"glassboard/internal/model"
)

// RemoteStore is the network tier. Both calls round-trip to the backend API
// and return the server's canonical board.
type RemoteStore interface {
	FetchBoard(ctx context.Context, id string) (*model.Board, error)
	PushBoard(ctx context.Context, board *model.Board) (*model.Board, error)
}

// LocalStore is the durable cache tier: one serialized board blob per key.
type LocalStore interface {
	LoadBoard(id string) (*model.Board, error)
	SaveBoard(board *model.Board) error
}

// SeedStore produces the static starter board shipped with the binary.
type SeedStore interface {
	LoadBoard() (*model.Board, error)
}
