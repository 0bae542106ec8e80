package game

import (
	"github.com/google/uuid"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

// CardView is a card's state for client consumption. Rank and Suit are
// omitted for face-down cards; clients only learn what a player at the
// table could see.
type CardView struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	FaceUp bool   `json:"faceUp"`
}

// FoundationView is one suit pile: its marker suit and any cards played
// onto it.
type FoundationView struct {
	Suit  string     `json:"suit"`
	Cards []CardView `json:"cards"`
}

// CursorView mirrors engine.Cursor for the wire.
type CursorView struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Snapshot is a full, self-contained view of a session's board.
type Snapshot struct {
	GameID      uuid.UUID        `json:"gameId"`
	Difficulty  string           `json:"difficulty"`
	Tableau     [][]CardView     `json:"tableau"`
	Foundations []FoundationView `json:"foundations"`
	StockSize   int              `json:"stockSize"`
	Waste       []CardView       `json:"waste"`
	Cursor      CursorView       `json:"cursor"`
	Selected    *CardView        `json:"selected,omitempty"`
	Held        []CardView       `json:"held,omitempty"`
	Moves       int              `json:"moves"`
	Won         bool             `json:"won"`
}

func viewCard(c engine.Card) CardView {
	v := CardView{FaceUp: c.FaceUp}
	if c.FaceUp {
		v.Rank = c.Rank.String()
		v.Suit = c.Suit.String()
	}
	return v
}

func viewPile(pile []engine.Card) []CardView {
	out := make([]CardView, len(pile))
	for i, c := range pile {
		out[i] = viewCard(c)
	}
	return out
}

// snapshotLocked builds a Snapshot from the board. Lock must be held.
func (s *Session) snapshotLocked() Snapshot {
	b := s.board
	snap := Snapshot{
		GameID:     s.ID,
		Difficulty: b.Difficulty().String(),
		Tableau:    make([][]CardView, engine.TableauColumns),
		StockSize:  len(b.Stock()),
		Waste:      viewPile(b.Waste()),
		Cursor:     CursorView{Row: b.Cursor().Row, Col: b.Cursor().Col},
		Moves:      b.Moves(),
		Won:        s.won,
	}
	for col := 0; col < engine.TableauColumns; col++ {
		snap.Tableau[col] = viewPile(b.Column(col))
	}
	for _, f := range b.Foundations() {
		snap.Foundations = append(snap.Foundations, FoundationView{
			Suit:  f.Suit.String(),
			Cards: viewPile(f.Cards),
		})
	}
	if sel, ok := b.Selected(); ok {
		v := viewCard(sel)
		snap.Selected = &v
		snap.Held = viewPile(b.SelectedRun())
	}
	return snap
}
