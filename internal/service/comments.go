package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"glassboard/internal/logger"
	"glassboard/internal/model"
)

// AddComment appends a comment to the card. Comments are append-only and
// ordered oldest to newest.
func (s *BoardService) AddComment(ctx context.Context, cardID, author, content string) (*model.Board, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("comment content is required")
	}
	if author == "" {
		author = "Anonymous"
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before comment add", "card", cardID)
			return false, nil
		}

		card.Comments = append(card.Comments, model.Comment{
			ID:        uuid.NewString(),
			Author:    author,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		})
		return true, nil
	})
}

// DeleteComment removes the comment from the card.
func (s *BoardService) DeleteComment(ctx context.Context, cardID, commentID string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before comment delete", "card", cardID)
			return false, nil
		}

		for i := range card.Comments {
			if card.Comments[i].ID == commentID {
				card.Comments = append(card.Comments[:i], card.Comments[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	})
}
