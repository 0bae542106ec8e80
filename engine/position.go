package engine

import (
	"errors"
	"fmt"
)

// Position is a complete pile layout: everything a board owns except
// cursor, selection and counters. It is a value copy, safe to hold
// across mutations of the board it came from.
type Position struct {
	Tableau     [TableauColumns][]Card
	Foundations [FoundationCount][]Card // cards only; foundation suits are fixed
	Stock       []Card
	Waste       []Card
}

var (
	// ErrCardSet is returned when a position's piles do not cover the
	// 52-card deck exactly once.
	ErrCardSet = errors.New("piles must cover the 52-card deck exactly once")

	// ErrFoundationOrder is returned when a foundation holds anything
	// but the leading ranks of its own suit in ascending order.
	ErrFoundationOrder = errors.New("foundation must hold ascending ranks of its own suit")
)

// Position returns a deep copy of the board's piles.
func (b *Board) Position() Position {
	var p Position
	for col := range b.tableau {
		p.Tableau[col] = append([]Card(nil), b.tableau[col]...)
	}
	for i, f := range b.foundations {
		p.Foundations[i] = append([]Card(nil), f.Cards...)
	}
	p.Stock = append([]Card(nil), b.stock...)
	p.Waste = append([]Card(nil), b.waste...)
	return p
}

// NewBoardFromPosition restores a board from an arbitrary position. It
// enforces the global invariant instead of the deal shape: the union of
// all piles must be exactly the 52-card deck, and each foundation must
// hold the leading ranks of its own suit.
func NewBoardFromPosition(p Position, difficulty Difficulty, rng RNG) (*Board, error) {
	var seen [4][14]int
	count := 0
	countPile := func(pile []Card) {
		for _, c := range pile {
			if c.Rank >= RankAce && c.Rank <= RankKing && c.Suit <= SuitDiamonds {
				seen[c.Suit][c.Rank]++
			}
			count++
		}
	}
	for col := range p.Tableau {
		countPile(p.Tableau[col])
	}
	for i := range p.Foundations {
		countPile(p.Foundations[i])
	}
	countPile(p.Stock)
	countPile(p.Waste)

	if count != DeckSize {
		return nil, fmt.Errorf("%d cards in position: %w", count, ErrCardSet)
	}
	for suit := range seen {
		for rank := RankAce; rank <= RankKing; rank++ {
			if seen[suit][rank] != 1 {
				return nil, fmt.Errorf("card %s%s appears %d times: %w",
					rank, Suit(suit), seen[suit][rank], ErrCardSet)
			}
		}
	}

	suits := [FoundationCount]Suit{SuitClubs, SuitSpades, SuitHearts, SuitDiamonds}
	b := &Board{difficulty: difficulty, rng: rng}
	for i, suit := range suits {
		for j, c := range p.Foundations[i] {
			if c.Suit != suit || c.Rank != Rank(j+1) {
				return nil, fmt.Errorf("foundation %s card %d is %s: %w", suit, j, c, ErrFoundationOrder)
			}
		}
		b.foundations[i] = Foundation{Suit: suit, Cards: append([]Card(nil), p.Foundations[i]...)}
	}
	for col := range p.Tableau {
		b.tableau[col] = append([]Card(nil), p.Tableau[col]...)
	}
	b.stock = append([]Card(nil), p.Stock...)
	b.waste = append([]Card(nil), p.Waste...)
	return b, nil
}
