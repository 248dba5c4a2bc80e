// Package ordering computes fractional sort keys for cards and columns.
// Inserting between two siblings takes their midpoint, so no other item is
// ever renumbered on a move.
package ordering

// Epsilon is the adjacent-gap size below which repeated midpoint insertion
// is close to exhausting float64 precision. Callers use it to flag columns
// that need compaction; nothing renumbers automatically.
const Epsilon = 1e-9

// Between returns the order value for inserting an item at index among the
// ascending sibling orders. siblings must exclude the item being placed and
// index must be within [0, len(siblings)]; callers validate both.
//
// Head insertion halves the first order (or 1 when the list is empty, giving
// 0.5), tail insertion adds 1 to the last, and anything in between takes the
// midpoint of its neighbors.
func Between(siblings []float64, index int) float64 {
	if index == 0 {
		if len(siblings) == 0 {
			return 0.5
		}
		return siblings[0] / 2
	}
	prev := siblings[index-1]
	if index >= len(siblings) {
		return prev + 1
	}
	return (prev + siblings[index]) / 2
}

// MinGap returns the smallest gap between adjacent orders, or +1 when there
// are fewer than two. A result below Epsilon means the column has absorbed
// enough moves in one spot that midpoints are about to stop resolving.
func MinGap(orders []float64) float64 {
	if len(orders) < 2 {
		return 1
	}
	min := orders[1] - orders[0]
	for i := 2; i < len(orders); i++ {
		if gap := orders[i] - orders[i-1]; gap < min {
			min = gap
		}
	}
	return min
}
