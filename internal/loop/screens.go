package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/spacedodger/internal/object"
)

// drawUI draws the text overlay in canvas cell coordinates.
func (s *session) drawUI() {
	cols, rows := s.canvas.Size()
	if cols == 0 || rows == 0 {
		return
	}

	s.drawHUD(cols)
	if s.frame.GameOver {
		s.drawGameOver(cols, rows)
	}
	if s.idle {
		s.writeCentered(cols, rows-1, "Still there? Press any key")
	}
}

// drawHUD draws score, best score, active effects and the boss health.
func (s *session) drawHUD(cols int) {
	f := &s.frame

	s.cw.WriteAt(2, 1, fmt.Sprintf("Score: %d  Time: %ds", f.Score, int(f.Elapsed)))
	best := fmt.Sprintf("Best: %d", f.HighScore)
	s.cw.WriteAt(max(cols-len(best), 1), 1, best)

	var effects []string
	if f.Effects.Rapid > 0 {
		effects = append(effects, fmt.Sprintf("%s %.0fs", object.PowerUpRapid, f.Effects.Rapid))
	}
	if f.Effects.Shield > 0 {
		effects = append(effects, fmt.Sprintf("%s %.0fs", object.PowerUpShield, f.Effects.Shield))
	}
	if f.Effects.Spread > 0 {
		effects = append(effects, fmt.Sprintf("%s %.0fs", object.PowerUpSpread, f.Effects.Spread))
	}
	if len(effects) > 0 {
		s.cw.WriteAt(2, 2, strings.Join(effects, "  "))
	}

	if f.Boss != nil {
		s.writeCentered(cols, 2, fmt.Sprintf("BOSS %d/%d", f.Boss.HP, object.BossHP))
	}
}

// drawGameOver draws the final score and the restart prompt.
func (s *session) drawGameOver(cols, rows int) {
	centerY := rows / 2
	s.writeCentered(cols, centerY-2, "GAME OVER")
	s.writeCentered(cols, centerY, fmt.Sprintf("Score: %d", s.frame.Score))
	if s.frame.Score > 0 && s.frame.Score >= s.frame.HighScore {
		s.writeCentered(cols, centerY+1, "New best!")
	}
	s.writeCentered(cols, centerY+3, "Press R to restart, Q to quit")
}

func (s *session) writeCentered(cols, row int, text string) {
	s.cw.WriteAt(max(cols/2-len(text)/2, 1), row, text)
}
