// Package engine implements the Klondike board state machine.
//
// The package is pure and self-contained: it owns the piles, cursor and
// selection, validates every transfer, and never performs I/O. The
// surrounding presentation layers (TUI, WebSocket service) only read it
// and call the four public operations.
package engine

import "fmt"

// Difficulty selects the deal strategy and the stock draw batch size.
// It is chosen once per game and never changes.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// DrawSize is the number of cards a stock draw moves onto the waste.
func (d Difficulty) DrawSize() int {
	if d == Hard {
		return 3
	}
	return 1
}

// Direction is a cursor movement intent.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor addresses a board position. Row 0 is the top row (stock,
// waste, foundations); row N > 0 is index N-1 in a tableau column.
type Cursor struct {
	Row int
	Col int
}

// Hard outer bounds for the cursor; context-sensitive clamping inside
// MovePointer tightens these further.
const (
	maxCursorRow = 10
	maxCursorCol = 10
)

// Top-row column meanings.
const (
	topColStock      = 0
	topColWaste      = 1
	topColFoundation = 2 // first of four foundation slots
)

// Foundation is a suit-sorted ascending pile. The Suit field is the
// pile's permanent marker: it identifies the pile even while no cards
// have been played onto it.
type Foundation struct {
	Suit  Suit
	Cards []Card
}

// Top returns the highest card played onto the foundation.
func (f Foundation) Top() (Card, bool) {
	if len(f.Cards) == 0 {
		return Card{}, false
	}
	return f.Cards[len(f.Cards)-1], true
}

// Complete reports whether the foundation holds all thirteen ranks.
func (f Foundation) Complete() bool {
	return len(f.Cards) == FoundationTarget
}

// Board owns all piles, the cursor and the in-progress selection for a
// single game. It is not safe for concurrent mutation; callers that
// share a board across goroutines must serialize access (see
// internal/game.Session).
type Board struct {
	tableau     [TableauColumns][]Card
	foundations [FoundationCount]Foundation
	stock       []Card
	waste       []Card

	cursor     Cursor
	selected   *Card
	moves      int
	difficulty Difficulty
	rng        RNG
}

// NewBoard validates the deal and constructs a board from it. Column i
// (1-based) must hold exactly i cards and the stock must be non-empty;
// anything else fails fast.
func NewBoard(d Deal, difficulty Difficulty, rng RNG) (*Board, error) {
	for col := 0; col < TableauColumns; col++ {
		if len(d.Tableau[col]) != col+1 {
			return nil, fmt.Errorf("column %d has %d cards: %w", col+1, len(d.Tableau[col]), ErrTableauShape)
		}
	}
	if len(d.Stock) == 0 {
		return nil, ErrEmptyStock
	}

	b := &Board{
		difficulty: difficulty,
		rng:        rng,
	}
	for col := range d.Tableau {
		b.tableau[col] = append([]Card(nil), d.Tableau[col]...)
	}
	b.stock = append([]Card(nil), d.Stock...)
	b.foundations = [FoundationCount]Foundation{
		{Suit: SuitClubs},
		{Suit: SuitSpades},
		{Suit: SuitHearts},
		{Suit: SuitDiamonds},
	}
	return b, nil
}

// NewGame deals a fresh board using the difficulty's deal strategy:
// the tier-biased deal on Easy, the classic shuffled deal on Hard.
func NewGame(difficulty Difficulty, rng RNG) (*Board, error) {
	var d Deal
	if difficulty == Hard {
		deck := StandardDeck()
		Shuffle(deck, rng)
		d = DealHard(deck)
	} else {
		d = DealEasy(rng)
	}
	return NewBoard(d, difficulty, rng)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Column returns the tableau column at index col (0-based).
func (b *Board) Column(col int) []Card { return b.tableau[col] }

// Foundations returns the four foundation piles in fixed suit order.
func (b *Board) Foundations() [FoundationCount]Foundation { return b.foundations }

// Stock returns the face-down draw pile. Cards leave from index 0.
func (b *Board) Stock() []Card { return b.stock }

// Waste returns the face-up pile fed by stock draws. Only the last card
// is playable.
func (b *Board) Waste() []Card { return b.waste }

// Cursor returns the current cursor position.
func (b *Board) Cursor() Cursor { return b.cursor }

// Moves returns the number of transfer attempts confirmed so far.
func (b *Board) Moves() int { return b.moves }

// Difficulty returns the difficulty the board was dealt with.
func (b *Board) Difficulty() Difficulty { return b.difficulty }

// Selected returns the anchor of the active selection, if any.
func (b *Board) Selected() (Card, bool) {
	if b.selected == nil {
		return Card{}, false
	}
	return *b.selected, true
}

// HasSelection reports whether a card is currently held.
func (b *Board) HasSelection() bool { return b.selected != nil }

// SelectedRun returns the cards that would move with the current
// selection: the anchor plus everything below it when the anchor sits
// in a tableau column, or the anchor alone when it is the waste top.
func (b *Board) SelectedRun() []Card {
	src, ok := b.locateSelection()
	if !ok {
		return nil
	}
	if src.fromWaste {
		return []Card{b.waste[len(b.waste)-1]}
	}
	return append([]Card(nil), b.tableau[src.col][src.idx:]...)
}

// Pointed returns the card under the cursor, if the cursor's slot holds
// one. For the stock it is the next card to be drawn; for foundations,
// the pile's top card.
func (b *Board) Pointed() (Card, bool) {
	if b.cursor.Row > 0 {
		col := b.tableau[b.cursor.Col]
		idx := b.cursor.Row - 1
		if idx >= len(col) {
			return Card{}, false
		}
		return col[idx], true
	}
	switch b.cursor.Col {
	case topColStock:
		if len(b.stock) == 0 {
			return Card{}, false
		}
		return b.stock[0], true
	case topColWaste:
		if len(b.waste) == 0 {
			return Card{}, false
		}
		return b.waste[len(b.waste)-1], true
	default:
		return b.foundations[b.cursor.Col-topColFoundation].Top()
	}
}

// ---------------------------------------------------------------------------
// Cursor movement
// ---------------------------------------------------------------------------

// minRow is the lowest tableau row the cursor may rest on in a column:
// one past the column's leading face-down cards. An empty column still
// has a valid row 1 slot.
func (b *Board) minRow(col int) int {
	n := 0
	for _, c := range b.tableau[col] {
		if c.FaceUp {
			break
		}
		n++
	}
	return n + 1
}

// rowBounds returns the clamp range for tableau rows in a column. While
// a selection is held the cursor may only rest at the bottom of the
// column, since that is the only legal target slot.
func (b *Board) rowBounds(col int) (lo, hi int) {
	hi = len(b.tableau[col])
	if hi < 1 {
		hi = 1
	}
	lo = b.minRow(col)
	if b.selected != nil || lo > hi {
		lo = hi
	}
	return lo, hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MovePointer advances the cursor one step in dir and re-clamps it to
// the context-sensitive bounds. It never fails: out-of-range intents
// are absorbed.
func (b *Board) MovePointer(dir Direction) {
	row, col := b.cursor.Row, b.cursor.Col

	// Leaving the first tableau column to the left starts from the
	// stock slot instead.
	if dir == DirLeft && row > 0 && col == 0 {
		row, col = 0, topColStock
	}

	// Moving up past the last face-up card exits to the top row rather
	// than resting on a face-down card.
	exitUp := false
	if dir == DirUp && row > 0 {
		lo, _ := b.rowBounds(col)
		exitUp = row-1 < lo
	}

	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	}
	if exitUp {
		row = 0
	}

	row = clamp(row, 0, maxCursorRow)
	col = clamp(col, 0, maxCursorCol)

	if row == 0 {
		col = clamp(col, topColStock, topColFoundation+FoundationCount-1)
		// An empty waste slot cannot be rested on: bounce past it in
		// the direction of travel.
		if col == topColWaste && len(b.waste) == 0 {
			if dir == DirRight {
				col = topColFoundation
			} else {
				col = topColStock
			}
		}
	} else {
		col = clamp(col, 0, TableauColumns-1)
		lo, hi := b.rowBounds(col)
		row = clamp(row, lo, hi)
	}

	b.cursor = Cursor{Row: row, Col: col}
}

// ---------------------------------------------------------------------------
// Select / confirm
// ---------------------------------------------------------------------------

// ResetSelection unconditionally clears the active selection.
func (b *Board) ResetSelection() { b.selected = nil }

// PointerAction is the context-dependent select/confirm operation. With
// no selection it captures the pointed card (or draws from the stock);
// with a selection held it attempts the transfer to the pointed pile.
// Either way the selection is cleared afterwards.
func (b *Board) PointerAction() {
	if b.cursor.Row > 0 {
		b.actOnTableau()
		return
	}
	switch b.cursor.Col {
	case topColStock:
		b.actOnStock()
	case topColWaste:
		b.actOnWaste()
	default:
		b.actOnFoundation(b.cursor.Col - topColFoundation)
	}
}

func (b *Board) actOnTableau() {
	if b.selected == nil {
		col := b.tableau[b.cursor.Col]
		idx := b.cursor.Row - 1
		if idx < len(col) && col[idx].FaceUp {
			c := col[idx]
			b.selected = &c
		}
		return
	}

	// A confirm on a tableau target counts as a move whether or not the
	// transfer is accepted.
	b.moves++
	b.transferToTableau(b.cursor.Col)
	b.selected = nil
}

func (b *Board) actOnStock() {
	if b.selected != nil {
		b.selected = nil // cancel
		return
	}
	if len(b.stock) == 0 {
		b.recycleWaste()
		return
	}
	n := b.difficulty.DrawSize()
	if n > len(b.stock) {
		n = len(b.stock)
	}
	for i := 0; i < n; i++ {
		c := b.stock[i]
		c.FaceUp = true
		b.waste = append(b.waste, c)
	}
	b.stock = b.stock[n:]
}

func (b *Board) actOnWaste() {
	if b.selected != nil {
		b.selected = nil // the waste is never a transfer target
		return
	}
	if len(b.waste) == 0 {
		return
	}
	c := b.waste[len(b.waste)-1]
	b.selected = &c
}

func (b *Board) actOnFoundation(f int) {
	if b.selected == nil {
		// A foundation cannot originate a move.
		return
	}
	b.moves++
	b.transferToFoundation(f)
	b.selected = nil
}

// recycleWaste turns the entire waste face-down, reshuffles it and makes
// it the new stock.
func (b *Board) recycleWaste() {
	if len(b.waste) == 0 {
		return
	}
	b.stock = b.waste
	b.waste = nil
	for i := range b.stock {
		b.stock[i].FaceUp = false
	}
	Shuffle(b.stock, b.rng)
}

// ---------------------------------------------------------------------------
// Transfers
// ---------------------------------------------------------------------------

// selectionSource locates the held card inside its owning pile.
type selectionSource struct {
	fromWaste bool
	col       int // tableau column, when !fromWaste
	idx       int // index of the anchor inside the column
}

// locateSelection re-finds the selected card by identity. Cards are
// unique across the deck, so a match is unambiguous.
func (b *Board) locateSelection() (selectionSource, bool) {
	if b.selected == nil {
		return selectionSource{}, false
	}
	for col := range b.tableau {
		for idx, c := range b.tableau[col] {
			if c.Same(*b.selected) {
				return selectionSource{col: col, idx: idx}, true
			}
		}
	}
	if n := len(b.waste); n > 0 && b.waste[n-1].Same(*b.selected) {
		return selectionSource{fromWaste: true}, true
	}
	return selectionSource{}, false
}

// transferToTableau moves the held run onto the target column when the
// rules allow it. A rejected transfer leaves every pile untouched.
func (b *Board) transferToTableau(target int) {
	src, ok := b.locateSelection()
	if !ok {
		return
	}
	if !CanMoveToTableau(*b.selected, b.tableau[target]) {
		return
	}
	if !src.fromWaste && src.col == target {
		return
	}

	if src.fromWaste {
		c := b.waste[len(b.waste)-1]
		b.waste = b.waste[:len(b.waste)-1]
		b.tableau[target] = append(b.tableau[target], c)
		return
	}

	run := b.tableau[src.col][src.idx:]
	b.tableau[target] = append(b.tableau[target], run...)
	b.tableau[src.col] = b.tableau[src.col][:src.idx]
	b.exposeTop(src.col)
}

// transferToFoundation moves the held card onto foundation f when the
// rules allow it.
func (b *Board) transferToFoundation(f int) {
	src, ok := b.locateSelection()
	if !ok {
		return
	}
	runLen := 1
	if !src.fromWaste {
		runLen = len(b.tableau[src.col]) - src.idx
	}
	if !CanMoveToFoundation(b.foundations[f], *b.selected, runLen) {
		return
	}

	var c Card
	if src.fromWaste {
		c = b.waste[len(b.waste)-1]
		b.waste = b.waste[:len(b.waste)-1]
	} else {
		c = b.tableau[src.col][src.idx]
		b.tableau[src.col] = b.tableau[src.col][:src.idx]
		b.exposeTop(src.col)
	}
	c.FaceUp = true
	b.foundations[f].Cards = append(b.foundations[f].Cards, c)
}

// exposeTop flips the new top of a tableau column face-up after cards
// were removed from it.
func (b *Board) exposeTop(col int) {
	n := len(b.tableau[col])
	if n > 0 && !b.tableau[col][n-1].FaceUp {
		b.tableau[col][n-1].FaceUp = true
	}
}

// ---------------------------------------------------------------------------
// Victory
// ---------------------------------------------------------------------------

// CheckVictory reports whether every foundation is complete.
func (b *Board) CheckVictory() bool {
	for _, f := range b.foundations {
		if !f.Complete() {
			return false
		}
	}
	return true
}
