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

// AddAttachment appends an attachment reference to the card. The file
// itself lives wherever the URL points; the board only tracks metadata.
func (s *BoardService) AddAttachment(ctx context.Context, cardID, name, url, attachmentType string) (*model.Board, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("attachment url is required")
	}
	if name == "" {
		name = url
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before attachment add", "card", cardID)
			return false, nil
		}

		card.Attachments = append(card.Attachments, model.Attachment{
			ID:        uuid.NewString(),
			Name:      name,
			URL:       url,
			Type:      attachmentType,
			CreatedAt: time.Now().UTC(),
		})
		return true, nil
	})
}

// DeleteAttachment removes the attachment reference from the card.
func (s *BoardService) DeleteAttachment(ctx context.Context, cardID, attachmentID string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before attachment delete", "card", cardID)
			return false, nil
		}

		for i := range card.Attachments {
			if card.Attachments[i].ID == attachmentID {
				card.Attachments = append(card.Attachments[:i], card.Attachments[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	})
}
