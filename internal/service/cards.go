package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"glassboard/internal/logger"
	"glassboard/internal/model"
	"glassboard/internal/ordering"
)

// CreateCardInput carries the fields of a new card. Title is the only
// required field; Priority defaults to medium.
type CreateCardInput struct {
	Title       string         `validate:"required"`
	Description string
	Priority    model.Priority `validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time
	Weight      *float64
	Labels      []model.Label
	Assignees   []model.User
}

// UpdateCardInput is a partial card patch; nil fields stay unchanged. The
// Clear flags reset their optional counterparts, which a nil pointer alone
// cannot express.
type UpdateCardInput struct {
	Title        *string
	Description  *string
	Priority     *model.Priority
	DueDate      *time.Time
	ClearDueDate bool
	Weight       *float64
	ClearWeight  bool
}

// CardFilter selects cards for Cards. Zero-valued fields match everything.
type CardFilter struct {
	ColumnID  string
	Priority  model.Priority
	Label     string
	Assignee  string
	DueBefore *time.Time
	Query     string
}

// CreateCard appends a card at the end of the column. Unlike the other
// card mutations, a missing column is a hard error here: there is nothing
// sane to attach the new card to.
func (s *BoardService) CreateCard(ctx context.Context, columnID string, input CreateCardInput) (*model.Board, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid card: %w", err)
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		column := board.Column(columnID)
		if column == nil {
			return false, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
		}

		orders := column.CardOrders("")
		card := model.Card{
			ID:          uuid.NewString(),
			ColumnID:    column.ID,
			Order:       ordering.Between(orders, len(orders)),
			Title:       input.Title,
			Description: input.Description,
			Priority:    input.Priority,
			Labels:      []model.Label{},
			Assignees:   []model.User{},
			Attachments: []model.Attachment{},
			Comments:    []model.Comment{},
		}
		if input.DueDate != nil {
			due := *input.DueDate
			card.DueDate = &due
		}
		if input.Weight != nil {
			weight := *input.Weight
			card.Weight = &weight
		}
		for _, label := range input.Labels {
			if label.Name == "" {
				continue
			}
			def, _ := ensurePaletteLabel(board, label.Name, label.Color)
			if card.LabelIndex(def.ID) >= 0 {
				continue
			}
			card.Labels = append(card.Labels, def)
		}
		for _, user := range input.Assignees {
			if user.ID == "" || card.AssigneeIndex(user.ID) >= 0 {
				continue
			}
			card.Assignees = append(card.Assignees, user)
		}

		column.Cards = append(column.Cards, card)
		return true, nil
	})
}

// UpdateCard merges the patch into the card. A vanished card is a silent
// no-op.
func (s *BoardService) UpdateCard(ctx context.Context, id string, input UpdateCardInput) (*model.Board, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, errors.New("card title cannot be empty")
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, *input.Priority)
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(id)
		if card == nil {
			logger.Log.Debug("Card vanished before update", "card", id)
			return false, nil
		}

		changed := false
		if input.Title != nil {
			card.Title = *input.Title
			changed = true
		}
		if input.Description != nil {
			card.Description = *input.Description
			changed = true
		}
		if input.Priority != nil {
			card.Priority = *input.Priority
			changed = true
		}
		if input.ClearDueDate {
			card.DueDate = nil
			changed = true
		} else if input.DueDate != nil {
			due := *input.DueDate
			card.DueDate = &due
			changed = true
		}
		if input.ClearWeight {
			card.Weight = nil
			changed = true
		} else if input.Weight != nil {
			weight := *input.Weight
			card.Weight = &weight
			changed = true
		}
		return changed, nil
	})
}

// MoveCard places the card at targetIndex in the target column, computing a
// fresh fractional order against the destination's current siblings. The
// transition commits as one snapshot: no intermediate state with the card in
// zero or two columns can ever be observed or persisted. Moving a card onto
// its own position skips the persistence write.
func (s *BoardService) MoveCard(ctx context.Context, cardID, targetColumnID string, targetIndex int) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		source, sourceIndex := board.CardLocation(cardID)
		if source == nil {
			logger.Log.Debug("Card vanished before move", "card", cardID)
			return false, nil
		}
		target := board.Column(targetColumnID)
		if target == nil {
			logger.Log.Debug("Target column vanished before move", "card", cardID, "column", targetColumnID)
			return false, nil
		}

		orders := target.CardOrders(cardID)
		index := clampIndex(targetIndex, len(orders))
		if source.ID == target.ID && index == sourceIndex {
			return false, nil
		}

		order := ordering.Between(orders, index)

		card := source.Cards[sourceIndex]
		source.Cards = append(source.Cards[:sourceIndex], source.Cards[sourceIndex+1:]...)
		card.ColumnID = target.ID
		card.Order = order
		target.Cards = append(target.Cards, card)

		checkOrderDrift("card", cardID, spliceOrders(orders, index, order))
		return true, nil
	})
}

// DeleteCard removes the card from its column.
func (s *BoardService) DeleteCard(ctx context.Context, id string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		column, index := board.CardLocation(id)
		if column == nil {
			logger.Log.Debug("Card vanished before delete", "card", id)
			return false, nil
		}
		column.Cards = append(column.Cards[:index], column.Cards[index+1:]...)
		return true, nil
	})
}

// DuplicateCard clones the card under a fresh id, with fresh ids for every
// nested label, attachment and comment, and a "(Copy) " title prefix. The
// copy lands right after the original, or at the end of targetColumnID when
// a different column is given. The receiving column's cards are then
// renumbered to the integers 1..n, which also compacts any accumulated
// fractional drift there. The renumber must not start at zero: a head card
// resting at order 0 would make the next head insertion halve to 0 again.
func (s *BoardService) DuplicateCard(ctx context.Context, id, targetColumnID string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		source, sourceIndex := board.CardLocation(id)
		if source == nil {
			logger.Log.Debug("Card vanished before duplicate", "card", id)
			return false, nil
		}

		target := source
		insertAt := sourceIndex + 1
		if targetColumnID != "" && targetColumnID != source.ID {
			target = board.Column(targetColumnID)
			if target == nil {
				logger.Log.Debug("Target column vanished before duplicate", "card", id, "column", targetColumnID)
				return false, nil
			}
			insertAt = len(target.Cards)
		}

		duplicate := source.Cards[sourceIndex].Clone()
		duplicate.ID = uuid.NewString()
		duplicate.ColumnID = target.ID
		duplicate.Title = "(Copy) " + duplicate.Title
		for i := range duplicate.Labels {
			duplicate.Labels[i].ID = uuid.NewString()
		}
		for i := range duplicate.Attachments {
			duplicate.Attachments[i].ID = uuid.NewString()
		}
		for i := range duplicate.Comments {
			duplicate.Comments[i].ID = uuid.NewString()
		}

		target.Cards = append(target.Cards[:insertAt], append([]model.Card{duplicate}, target.Cards[insertAt:]...)...)
		for i := range target.Cards {
			target.Cards[i].Order = float64(i) + 1
		}
		return true, nil
	})
}

// Cards returns copies of the cards matching the filter, in board order.
func (s *BoardService) Cards(filter CardFilter) []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.board == nil {
		return nil
	}

	var cards []model.Card
	for i := range s.board.Columns {
		column := &s.board.Columns[i]
		if filter.ColumnID != "" && column.ID != filter.ColumnID {
			continue
		}
		for j := range column.Cards {
			if matchesFilter(&column.Cards[j], filter) {
				cards = append(cards, column.Cards[j].Clone())
			}
		}
	}
	return cards
}

func matchesFilter(card *model.Card, filter CardFilter) bool {
	if filter.Priority != "" && card.Priority != filter.Priority {
		return false
	}
	if filter.Assignee != "" && card.AssigneeIndex(filter.Assignee) < 0 {
		return false
	}
	if filter.Label != "" {
		found := false
		for _, label := range card.Labels {
			if label.Name == filter.Label {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.DueBefore != nil {
		if card.DueDate == nil || !card.DueDate.Before(*filter.DueBefore) {
			return false
		}
	}
	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(card.Title), query) &&
			!strings.Contains(strings.ToLower(card.Description), query) {
			return false
		}
	}
	return true
}
