package game

import "time"

// Score is the end-of-game formula: a fixed base reduced by 15 points
// per move and 1 per elapsed second, floored at zero.
func Score(moves int, elapsed time.Duration) int {
	s := 10000 - 15*moves - int(elapsed.Seconds())
	if s < 0 {
		s = 0
	}
	return s
}
