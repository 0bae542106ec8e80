package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
)

var suitGlyphs = map[string]string{
	"C": "♣",
	"S": "♠",
	"H": "♥",
	"D": "♦",
}

func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateWon:
		return m.viewWon()
	default:
		return m.viewBoard()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Klondike"))
	b.WriteString("\n\n  Difficulty:\n\n")

	for _, d := range []engine.Difficulty{engine.Easy, engine.Hard} {
		if d == m.difficulty {
			b.WriteString(styleMenuActive.Render("  > "+d.String()) + "\n")
		} else {
			b.WriteString(styleMenuChoice.Render("    "+d.String()) + "\n")
		}
	}

	b.WriteString(styleStatus.Render("arrows: choose · enter: deal · q: quit"))
	return b.String()
}

func (m Model) viewWon() string {
	var b strings.Builder
	b.WriteString(m.viewBoard())
	b.WriteString("\n")
	b.WriteString(styleWin.Render(fmt.Sprintf(
		"You won!  score %d · %d moves · %s",
		m.score, m.snap.Moves, formatElapsed(m.elapsed),
	)))
	b.WriteString(styleStatus.Render("n: new game · q: quit"))
	return b.String()
}

func (m Model) viewBoard() string {
	var b strings.Builder
	b.WriteString(m.viewTopRow())
	b.WriteString("\n\n")
	b.WriteString(m.viewTableau())
	b.WriteString(m.viewStatus())
	return b.String()
}

// viewTopRow renders stock, waste and the four foundations on one line.
func (m Model) viewTopRow() string {
	cells := make([]string, 0, 6)

	stockLabel := "[##]"
	if m.snap.StockSize == 0 {
		stockLabel = "[↻ ]"
	}
	cells = append(cells, m.styleTopCell(stockLabel, styleFaceDown, 0))

	cells = append(cells, m.wasteCell())

	for i, f := range m.snap.Foundations {
		label := "[" + suitGlyphs[f.Suit] + " ]"
		style := styleEmpty
		if n := len(f.Cards); n > 0 {
			label = cardLabel(f.Cards[n-1])
			style = cardStyle(f.Cards[n-1])
		}
		cells = append(cells, m.styleTopCell(label, style, topFoundationCol+i))
	}

	return " " + strings.Join(cells, " ")
}

const topFoundationCol = 2

// wasteCell renders a fan of the most recent draws. Only the last card
// is playable; the up-to-two cards under it stay visible but inert.
func (m Model) wasteCell() string {
	n := len(m.snap.Waste)
	if n == 0 {
		return m.styleTopCell("[  ]", styleEmpty, 1)
	}

	lo := n - 3
	if lo < 0 {
		lo = 0
	}
	parts := make([]string, 0, 3)
	for _, c := range m.snap.Waste[lo : n-1] {
		parts = append(parts, styleEmpty.Render(c.Rank+suitGlyphs[c.Suit]))
	}

	top := m.snap.Waste[n-1]
	style := cardStyle(top)
	if m.isSelected(top) {
		style = styleSelected
	}
	parts = append(parts, m.styleTopCell(cardLabel(top), style, 1))
	return strings.Join(parts, " ")
}

// styleTopCell applies the cursor over a top-row cell when it sits on col.
func (m Model) styleTopCell(label string, style lipgloss.Style, col int) string {
	if m.snap.Cursor.Row == 0 && m.snap.Cursor.Col == col {
		return styleCursor.Render(label)
	}
	return style.Render(label)
}

func (m Model) viewTableau() string {
	depth := 1
	for _, col := range m.snap.Tableau {
		if len(col) > depth {
			depth = len(col)
		}
	}

	var b strings.Builder
	for row := 0; row < depth; row++ {
		b.WriteString(" ")
		for col := 0; col < engine.TableauColumns; col++ {
			pile := m.snap.Tableau[col]
			cell := "    "
			switch {
			case row < len(pile):
				cell = m.tableauCell(pile[row], row, col)
			case row == 0:
				if m.snap.Cursor.Row == 1 && m.snap.Cursor.Col == col {
					cell = styleCursor.Render("[  ]")
				} else {
					cell = styleEmpty.Render("[  ]")
				}
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) tableauCell(c game.CardView, row, col int) string {
	label := cardLabel(c)
	if m.snap.Cursor.Row == row+1 && m.snap.Cursor.Col == col {
		return styleCursor.Render(label)
	}
	if m.isHeld(c) {
		return styleSelected.Render(label)
	}
	return cardStyle(c).Render(label)
}

func (m Model) viewStatus() string {
	parts := []string{
		m.snap.Difficulty,
		fmt.Sprintf("moves %d", m.snap.Moves),
		formatElapsed(m.elapsed),
	}
	if m.snap.Selected != nil {
		parts = append(parts, "holding "+cardLabel(*m.snap.Selected))
	}
	hints := "arrows: move · enter: select/drop · esc: cancel · n: new · q: quit"
	return styleStatus.Render(strings.Join(parts, " · ") + "\n" + hints)
}

// isSelected reports whether c is the anchor of the active selection.
func (m Model) isSelected(c game.CardView) bool {
	sel := m.snap.Selected
	return sel != nil && c.FaceUp && c.Rank == sel.Rank && c.Suit == sel.Suit
}

// isHeld reports whether c is part of the held run.
func (m Model) isHeld(c game.CardView) bool {
	if !c.FaceUp {
		return false
	}
	for _, h := range m.snap.Held {
		if c.Rank == h.Rank && c.Suit == h.Suit {
			return true
		}
	}
	return false
}

func cardLabel(c game.CardView) string {
	if !c.FaceUp {
		return "[##]"
	}
	return "[" + c.Rank + suitGlyphs[c.Suit] + "]"
}

func cardStyle(c game.CardView) lipgloss.Style {
	if !c.FaceUp {
		return styleFaceDown
	}
	if c.Suit == "H" || c.Suit == "D" {
		return styleRedCard
	}
	return styleBlackCard
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
