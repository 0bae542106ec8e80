package engine

// Suit of a standard playing card. The enumeration order matches the
// fixed left-to-right foundation order, so int(suit) doubles as the
// foundation index.
type Suit uint8

const (
	SuitClubs Suit = iota
	SuitSpades
	SuitHearts
	SuitDiamonds
)

// Color groups suits into red and black for tableau stacking.
type Color uint8

const (
	Black Color = iota
	Red
)

// Rank of a card, Ace low (1) through King (13).
type Rank uint8

const (
	RankAce Rank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
)

// Card is a single playing card. Rank and Suit never change after
// construction; FaceUp is flipped only by pile transfers.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// Same reports whether two cards are the same physical card.
// Face-up state is not part of identity.
func (c Card) Same(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

// Color returns Red for Hearts/Diamonds and Black for Spades/Clubs.
func (c Card) Color() Color {
	if c.Suit == SuitHearts || c.Suit == SuitDiamonds {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch {
	case r == RankAce:
		return "A"
	case r >= RankTwo && r <= RankNine:
		return string(rune('0' + r))
	case r == RankTen:
		return "T"
	case r == RankJack:
		return "J"
	case r == RankQueen:
		return "Q"
	case r == RankKing:
		return "K"
	default:
		return "?"
	}
}

// String renders a card as rank then suit, e.g. "AS" or "TD".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
