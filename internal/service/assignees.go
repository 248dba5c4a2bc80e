package service

import (
	"context"
	"errors"

	"glassboard/internal/logger"
	"glassboard/internal/model"
)

// AssignUser puts the user on the card. Assigning someone already present
// changes nothing and skips the persistence write.
func (s *BoardService) AssignUser(ctx context.Context, cardID string, user model.User) (*model.Board, error) {
	if user.ID == "" {
		return nil, errors.New("user id is required")
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before assign", "card", cardID)
			return false, nil
		}

		if card.AssigneeIndex(user.ID) >= 0 {
			return false, nil
		}
		card.Assignees = append(card.Assignees, user)
		return true, nil
	})
}

// UnassignUser takes the user off the card.
func (s *BoardService) UnassignUser(ctx context.Context, cardID, userID string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before unassign", "card", cardID)
			return false, nil
		}

		index := card.AssigneeIndex(userID)
		if index < 0 {
			return false, nil
		}
		card.Assignees = append(card.Assignees[:index], card.Assignees[index+1:]...)
		return true, nil
	})
}
