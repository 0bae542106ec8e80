package engine

// Pure Klondike legality rules. Nothing in this file mutates piles; the
// board consults these before applying a transfer.

// CanMoveToTableau reports whether held (the anchor of the moving run)
// may be placed on the given tableau column. An empty column accepts
// only a King; otherwise the column's top card must be one rank above
// held and of the opposite color.
func CanMoveToTableau(held Card, column []Card) bool {
	if len(column) == 0 {
		return held.Rank == RankKing
	}
	top := column[len(column)-1]
	return top.Rank == held.Rank+1 && top.Color() != held.Color()
}

// CanMoveToFoundation reports whether a held selection of runLen cards
// may be placed on the foundation. Only single cards move to a
// foundation; the card's suit must match the pile's suit, and its rank
// must be an Ace on an empty pile or exactly one above the pile's top.
func CanMoveToFoundation(f Foundation, held Card, runLen int) bool {
	if runLen != 1 {
		return false
	}
	if held.Suit != f.Suit {
		return false
	}
	if len(f.Cards) == 0 {
		return held.Rank == RankAce
	}
	top := f.Cards[len(f.Cards)-1]
	return held.Rank == top.Rank+1
}
