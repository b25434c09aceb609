package dodger

import "fmt"

// HUD holds the in-game text lines, refreshed once per frame.
type HUD struct {
	Score string
	Speed string
	Lives string
}

func (h *HUD) refresh(score int, speed float64, lives int) {
	h.Score = fmt.Sprintf("Score: %d", score)
	h.Speed = fmt.Sprintf("Speed: %d", int(speed))
	h.Lives = fmt.Sprintf("Lives: %d", lives)
}
