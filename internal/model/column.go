package model

// Column holds an ordered run of cards. Width is a percentage weight used by
// the board layout; Order is the fractional sort key among sibling columns.
type Column struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Width float64 `json:"width"`
	Order float64 `json:"order"`
	Cards []Card  `json:"cards"`
}

// CardIndex returns the index of the card in this column, or -1.
func (c *Column) CardIndex(cardID string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == cardID {
			return i
		}
	}
	return -1
}

// CardOrders returns the order values of the column's cards, optionally
// excluding one card. Cards are kept sorted at rest, so the result is the
// ascending sibling list the ordering engine expects.
func (c *Column) CardOrders(excludeID string) []float64 {
	orders := make([]float64, 0, len(c.Cards))
	for i := range c.Cards {
		if c.Cards[i].ID == excludeID {
			continue
		}
		orders = append(orders, c.Cards[i].Order)
	}
	return orders
}

func (c *Column) Clone() Column {
	out := *c
	out.Cards = make([]Card, len(c.Cards))
	for i := range c.Cards {
		out.Cards[i] = c.Cards[i].Clone()
	}
	return out
}
