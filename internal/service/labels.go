package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"glassboard/internal/logger"
	"glassboard/internal/model"
)

// AddLabel applies a label to the card. The definition is upserted into the
// board palette by name, so two cards labelled "bug" share one definition;
// the card itself carries a copy.
func (s *BoardService) AddLabel(ctx context.Context, cardID, name, color string) (*model.Board, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("label name is required")
	}

	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before label add", "card", cardID)
			return false, nil
		}

		label, changed := ensurePaletteLabel(board, name, color)
		if card.LabelIndex(label.ID) < 0 {
			card.Labels = append(card.Labels, label)
			changed = true
		}
		return changed, nil
	})
}

// RemoveLabel takes the label off the card. The palette definition stays.
func (s *BoardService) RemoveLabel(ctx context.Context, cardID, labelID string) (*model.Board, error) {
	return s.apply(ctx, func(board *model.Board) (bool, error) {
		card := board.Card(cardID)
		if card == nil {
			logger.Log.Debug("Card vanished before label remove", "card", cardID)
			return false, nil
		}

		index := card.LabelIndex(labelID)
		if index < 0 {
			return false, nil
		}
		card.Labels = append(card.Labels[:index], card.Labels[index+1:]...)
		return true, nil
	})
}

// ensurePaletteLabel finds or creates the board-palette definition for the
// name, refreshing its color when a different one is supplied. It returns
// the definition to copy onto a card and whether the palette was touched.
func ensurePaletteLabel(board *model.Board, name, color string) (model.Label, bool) {
	if def := board.PaletteLabel(name); def != nil {
		if color != "" && def.Color != color {
			def.Color = color
			return *def, true
		}
		return *def, false
	}

	def := model.Label{ID: uuid.NewString(), Name: name, Color: color}
	board.Labels = append(board.Labels, def)
	return def, true
}
