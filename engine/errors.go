package engine

import "errors"

var (
	// ErrTableauShape is returned when a tableau column does not hold
	// exactly as many cards as its 1-based index.
	ErrTableauShape = errors.New("tableau column must hold exactly its 1-based index in cards")

	// ErrEmptyStock is returned when a board is constructed with no
	// stock cards to draw from.
	ErrEmptyStock = errors.New("stock must not be empty")
)
