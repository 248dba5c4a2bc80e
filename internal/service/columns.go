package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"glassboard/internal/logger"
	"glassboard/internal/model"
	"glassboard/internal/ordering"
)

// defaultColumnWidth matches the three-way split of the synthesized board.
const defaultColumnWidth = 33.33

// UpdateColumnInput is a partial column patch; nil fields stay unchanged.
type UpdateColumnInput struct {
	Title *string
	Width *float64
}

// CreateColumn appends a column at the end of the board.
func (s *BoardService) CreateColumn(ctx context.Context, title string, width float64) (*model.Board, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("column title is required")
	}
	if width <= 0 {
		width = defaultColumnWidth
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		orders := columnOrders(board, "")
		column := model.Column{
			ID:    uuid.NewString(),
			Title: title,
			Width: width,
			Order: ordering.Between(orders, len(orders)),
			Cards: []model.Card{},
		}
		board.Columns = append(board.Columns, column)
		return true, nil
	})
}

// UpdateColumn merges the patch into the column. A vanished column is a
// silent no-op.
func (s *BoardService) UpdateColumn(ctx context.Context, id string, input UpdateColumnInput) (*model.Board, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, errors.New("column title cannot be empty")
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		column := board.Column(id)
		if column == nil {
			logger.Log.Debug("Column vanished before update", "column", id)
			return false, nil
		}

		changed := false
		if input.Title != nil {
			column.Title = *input.Title
			changed = true
		}
		if input.Width != nil && *input.Width > 0 {
			column.Width = *input.Width
			changed = true
		}
		return changed, nil
	})
}

// DeleteColumn removes the column and every card in it.
func (s *BoardService) DeleteColumn(ctx context.Context, id string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		for i := range board.Columns {
			if board.Columns[i].ID == id {
				board.Columns = append(board.Columns[:i], board.Columns[i+1:]...)
				return true, nil
			}
		}
		logger.Log.Debug("Column vanished before delete", "column", id)
		return false, nil
	})
}

// MoveColumn repositions the column among its siblings. Moving it to its
// current index changes nothing and skips the persistence write.
func (s *BoardService) MoveColumn(ctx context.Context, id string, targetIndex int) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		currentIndex := -1
		for i := range board.Columns {
			if board.Columns[i].ID == id {
				currentIndex = i
				break
			}
		}
		if currentIndex < 0 {
			logger.Log.Debug("Column vanished before move", "column", id)
			return false, nil
		}

		orders := columnOrders(board, id)
		index := clampIndex(targetIndex, len(orders))
		if index == currentIndex {
			return false, nil
		}

		order := ordering.Between(orders, index)
		board.Columns[currentIndex].Order = order
		checkOrderDrift("column", id, spliceOrders(orders, index, order))
		return true, nil
	})
}

// columnOrders returns the ascending order values of the board's columns,
// optionally excluding one. Columns are kept sorted at rest.
func columnOrders(board *model.Board, excludeID string) []float64 {
	orders := make([]float64, 0, len(board.Columns))
	for i := range board.Columns {
		if board.Columns[i].ID == excludeID {
			continue
		}
		orders = append(orders, board.Columns[i].Order)
	}
	return orders
}

// spliceOrders rebuilds the sorted sibling list with the new value placed at
// its insertion index, for gap inspection.
func spliceOrders(orders []float64, index int, value float64) []float64 {
	placed := make([]float64, 0, len(orders)+1)
	placed = append(placed, orders[:index]...)
	placed = append(placed, value)
	placed = append(placed, orders[index:]...)
	return placed
}
