package service_test

import (
	"context"
	"testing"

	"glassboard/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCreateColumn_AppendsAtEnd(t *testing.T) {
	svc, chain := newTestService(t)

	board, err := svc.CreateColumn(context.Background(), "Review", 25)
	assert.NoError(t, err)
	assert.Len(t, board.Columns, 3)

	created := board.Columns[2]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Review", created.Title)
	assert.Equal(t, 25.0, created.Width)
	assert.Equal(t, 3.0, created.Order)
	assert.Equal(t, 1, chain.saveCount())
}

func TestCreateColumn_DefaultsWidth(t *testing.T) {
	svc, _ := newTestService(t)

	board, err := svc.CreateColumn(context.Background(), "Review", 0)
	assert.NoError(t, err)
	assert.Equal(t, 33.33, board.Columns[2].Width)
}

func TestCreateColumn_RequiresTitle(t *testing.T) {
	svc, chain := newTestService(t)

	_, err := svc.CreateColumn(context.Background(), "  ", 25)
	assert.ErrorContains(t, err, "title is required")
	assert.Equal(t, 0, chain.saveCount())
}

func TestUpdateColumn_MergesPatch(t *testing.T) {
	svc, _ := newTestService(t)

	title := "In Review"
	width := 40.0
	board, err := svc.UpdateColumn(context.Background(), "colA", service.UpdateColumnInput{
		Title: &title,
		Width: &width,
	})
	assert.NoError(t, err)

	colA := board.Column("colA")
	assert.Equal(t, "In Review", colA.Title)
	assert.Equal(t, 40.0, colA.Width)
	assert.Len(t, colA.Cards, 3, "cards survive a column patch")
}

func TestUpdateColumn_EmptyPatchSkipsPersist(t *testing.T) {
	svc, chain := newTestService(t)

	_, err := svc.UpdateColumn(context.Background(), "colA", service.UpdateColumnInput{})
	assert.NoError(t, err)
	assert.Equal(t, 0, chain.saveCount())
}

func TestUpdateColumn_RejectsEmptyTitle(t *testing.T) {
	svc, _ := newTestService(t)

	empty := ""
	_, err := svc.UpdateColumn(context.Background(), "colA", service.UpdateColumnInput{Title: &empty})
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestUpdateColumn_MissingColumnIsNoOp(t *testing.T) {
	svc, chain := newTestService(t)

	title := "Anything"
	_, err := svc.UpdateColumn(context.Background(), "ghost", service.UpdateColumnInput{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, 0, chain.saveCount())
}

func TestDeleteColumn_CascadesCards(t *testing.T) {
	svc, chain := newTestService(t)

	board, err := svc.DeleteColumn(context.Background(), "colA")
	assert.NoError(t, err)

	assert.Len(t, board.Columns, 1)
	assert.Equal(t, "colB", board.Columns[0].ID)
	assert.Nil(t, board.Card("c1"))
	assert.Nil(t, board.Card("c2"))
	assert.Nil(t, board.Card("c3"))
	assert.Equal(t, 1, chain.saveCount())
}

func TestDeleteColumn_MissingColumnIsNoOp(t *testing.T) {
	svc, chain := newTestService(t)

	board, err := svc.DeleteColumn(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Len(t, board.Columns, 2)
	assert.Equal(t, 0, chain.saveCount())
}

func TestMoveColumn_ToHead(t *testing.T) {
	svc, chain := newTestService(t)

	board, err := svc.MoveColumn(context.Background(), "colB", 0)
	assert.NoError(t, err)

	assert.Equal(t, "colB", board.Columns[0].ID)
	assert.Equal(t, 0.5, board.Columns[0].Order)
	assert.Equal(t, "colA", board.Columns[1].ID)
	assert.Equal(t, 1, chain.saveCount())
}

func TestMoveColumn_CurrentIndexSkipsPersist(t *testing.T) {
	svc, chain := newTestService(t)

	board, err := svc.MoveColumn(context.Background(), "colA", 0)
	assert.NoError(t, err)
	assert.Equal(t, "colA", board.Columns[0].ID)
	assert.Equal(t, 0, chain.saveCount())
}

func TestMoveColumn_MissingColumnIsNoOp(t *testing.T) {
	svc, chain := newTestService(t)

	_, err := svc.MoveColumn(context.Background(), "ghost", 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, chain.saveCount())
}
