package server

import (
	"fmt"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

// Intent is a client-to-server message on the game socket.
type Intent struct {
	Type       string `json:"type"`
	Dir        string `json:"dir,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

const (
	intentMove   = "move"
	intentAct    = "act"
	intentCancel = "cancel"
	intentNew    = "new"
)

func parseDirection(s string) (engine.Direction, error) {
	switch s {
	case "up":
		return engine.DirUp, nil
	case "down":
		return engine.DirDown, nil
	case "left":
		return engine.DirLeft, nil
	case "right":
		return engine.DirRight, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// statsResponse is the /stats payload.
type statsResponse struct {
	Played     int `json:"played"`
	Won        int `json:"won"`
	BestScore  int `json:"bestScore"`
	TotalMoves int `json:"totalMoves"`
}
