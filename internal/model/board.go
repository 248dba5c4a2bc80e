package model

import (
	"sort"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Board is the root aggregate. Labels is the board-scoped palette of label
// definitions; cards carry their own copies of the entries applied to them.
type Board struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Theme   Theme    `json:"theme"`
	Columns []Column `json:"columns"`
	Labels  []Label  `json:"labels"`
}

// DefaultBoard synthesizes the terminal-fallback board: three empty columns,
// no cards. It cannot fail.
func DefaultBoard(id string) *Board {
	if id == "" {
		id = uuid.NewString()
	}
	return &Board{
		ID:    id,
		Title: "Default Board",
		Theme: ThemeDark,
		Columns: []Column{
			{ID: uuid.NewString(), Title: "Todo", Width: 33.33, Order: 1, Cards: []Card{}},
			{ID: uuid.NewString(), Title: "Doing", Width: 33.33, Order: 2, Cards: []Card{}},
			{ID: uuid.NewString(), Title: "Done", Width: 33.33, Order: 3, Cards: []Card{}},
		},
		Labels: []Label{},
	}
}

// Column returns a pointer into the board's column slice, or nil.
// The pointer is invalidated by any append to b.Columns.
func (b *Board) Column(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// CardLocation finds the column holding the card and the card's index in it.
func (b *Board) CardLocation(cardID string) (*Column, int) {
	for i := range b.Columns {
		if index := b.Columns[i].CardIndex(cardID); index >= 0 {
			return &b.Columns[i], index
		}
	}
	return nil, -1
}

// Card returns a pointer to the card wherever it lives, or nil.
func (b *Board) Card(cardID string) *Card {
	col, idx := b.CardLocation(cardID)
	if col == nil {
		return nil
	}
	return &col.Cards[idx]
}

// PaletteLabel returns the palette entry with the given name, or nil.
func (b *Board) PaletteLabel(name string) *Label {
	for i := range b.Labels {
		if b.Labels[i].Name == name {
			return &b.Labels[i]
		}
	}
	return nil
}

// Normalize sorts columns and every column's cards ascending by order and
// repairs columnId back-references so membership and ownership agree.
func (b *Board) Normalize() {
	sort.SliceStable(b.Columns, func(i, j int) bool {
		return b.Columns[i].Order < b.Columns[j].Order
	})
	for i := range b.Columns {
		col := &b.Columns[i]
		sort.SliceStable(col.Cards, func(x, y int) bool {
			return col.Cards[x].Order < col.Cards[y].Order
		})
		for j := range col.Cards {
			col.Cards[j].ColumnID = col.ID
		}
	}
}

// Clone returns a deep copy sharing no slices with the original.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := *b
	out.Columns = make([]Column, len(b.Columns))
	for i := range b.Columns {
		out.Columns[i] = b.Columns[i].Clone()
	}
	out.Labels = append([]Label(nil), b.Labels...)
	return &out
}
