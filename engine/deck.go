package engine

const (
	// DeckSize is the number of cards in a standard deck.
	DeckSize = 52

	// TableauColumns is the number of main playing columns.
	TableauColumns = 7

	// TableauCards is the number of cards dealt into the tableau
	// (1 + 2 + ... + TableauColumns).
	TableauCards = TableauColumns * (TableauColumns + 1) / 2

	// FoundationCount is the number of foundation piles, one per suit.
	FoundationCount = 4

	// FoundationTarget is the number of cards a foundation needs to be
	// complete.
	FoundationTarget = 13
)

// Deal is the initial pile layout a Board is constructed from.
type Deal struct {
	Tableau [TableauColumns][]Card
	Stock   []Card
}

// StandardDeck returns the 52 rank/suit combinations in suit-major,
// rank-minor order, all face-up.
func StandardDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := SuitClubs; suit <= SuitDiamonds; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit, FaceUp: true})
		}
	}
	return deck
}

// Shuffle permutes cards in place with a Fisher-Yates pass. The result
// is a uniform permutation given a uniform rng.
func Shuffle(cards []Card, rng RNG) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// DealHard is the classic Klondike deal: column i (1-based) takes the
// next i cards from the shuffled deck, face-down except the last; the
// rest become the face-down stock in their post-shuffle order.
func DealHard(deck []Card) Deal {
	var d Deal
	idx := 0
	for col := 0; col < TableauColumns; col++ {
		n := col + 1
		pile := make([]Card, n)
		for slot := 0; slot < n; slot++ {
			c := deck[idx]
			idx++
			c.FaceUp = slot == n-1
			pile[slot] = c
		}
		d.Tableau[col] = pile
	}
	d.Stock = make([]Card, 0, DeckSize-TableauCards)
	for ; idx < len(deck); idx++ {
		c := deck[idx]
		c.FaceUp = false
		d.Stock = append(d.Stock, c)
	}
	return d
}

// Difficulty tiers for the easy deal, split by rank alone.
func dealTier(r Rank) int {
	switch {
	case r <= RankFive:
		return 0 // easy: Ace-Five
	case r <= RankNine:
		return 1 // medium: Six-Nine
	default:
		return 2 // hard: Ten-King
	}
}

// DealEasy builds its own deck rather than consuming a shuffled one. The
// 52 cards are split into three rank tiers, each tier shuffled on its
// own, and every tableau slot is filled from a tier-preference order
// that depends on its position in the column: the exposed slot prefers
// easy cards, the slot above it prefers medium, everything else prefers
// hard. A preference falls through to the next tier only when the
// preferred tier runs out. Leftovers from all tiers are shuffled once
// more to form the stock.
//
// The net effect is a full, legal 52-card layout biased so low ranks
// surface at the playable end of the columns.
func DealEasy(rng RNG) Deal {
	var tiers [3][]Card
	for _, c := range StandardDeck() {
		t := dealTier(c.Rank)
		tiers[t] = append(tiers[t], c)
	}
	for t := range tiers {
		Shuffle(tiers[t], rng)
	}

	// pop takes the next card from the first non-empty tier in order.
	pop := func(order ...int) Card {
		for _, t := range order {
			if n := len(tiers[t]); n > 0 {
				c := tiers[t][n-1]
				tiers[t] = tiers[t][:n-1]
				return c
			}
		}
		// All 52 cards cannot be exhausted by 28 tableau slots.
		panic("engine: deal tiers exhausted")
	}

	var d Deal
	for col := 0; col < TableauColumns; col++ {
		n := col + 1
		pile := make([]Card, n)
		// Fill bottom-up: the exposed slot first, then upward.
		for slot := n - 1; slot >= 0; slot-- {
			var c Card
			switch slot {
			case n - 1:
				c = pop(0, 1, 2)
			case n - 2:
				c = pop(1, 0, 2)
			default:
				c = pop(2, 1, 0)
			}
			c.FaceUp = slot == n-1
			pile[slot] = c
		}
		d.Tableau[col] = pile
	}

	d.Stock = make([]Card, 0, DeckSize-TableauCards)
	for t := range tiers {
		for _, c := range tiers[t] {
			c.FaceUp = false
			d.Stock = append(d.Stock, c)
		}
	}
	Shuffle(d.Stock, rng)
	return d
}
