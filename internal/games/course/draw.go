package course

import (
	"fmt"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
	"github.com/vovakirdan/chicken-arcade/internal/core"
)

// Field is the screen area the course is drawn into.
// Position 0 sits on the bottom row, the finish on the top row.
type Field struct {
	Top, Bottom int
	Width       int
	Finish      int
}

// FieldFor lays out the playfield below the HUD and above the help line.
func FieldFor(dst *core.Screen, finish int) Field {
	return Field{
		Top:    3,
		Bottom: core.Max(3, dst.Height()-3),
		Width:  dst.Width(),
		Finish: finish,
	}
}

// Row maps a course position to a screen row.
func (f Field) Row(pos int) int {
	span := f.Bottom - f.Top
	return f.Bottom - core.Scale(core.Clamp(pos, 0, f.Finish), f.Finish, span)
}

// Column maps a lane offset in [-half, half] to a screen column.
func (f Field) Column(x, half int) int {
	if half <= 0 {
		return f.Width / 2
	}
	usable := core.Max(f.Width/2-6, 1)
	return f.Width/2 + core.Scale(core.Clamp(x, -half, half)+half, 2*half, 2*usable) - usable
}

// Glyphs shared by both games.
const (
	Chicken   = "<o)"
	Crocodile = "=<##>"
	FinishRow = '═'
	WaterRow  = '~'
)

// DrawChicken draws the chicken centred on column x of row y.
func DrawChicken(dst *core.Screen, x, y int, phase chicken.Phase) {
	color := core.ColorBrightYellow
	if phase == chicken.PhaseLost {
		color = core.ColorRed
	}
	dst.DrawTextColor(x-1, y, Chicken, color)
}

// DrawCrocodile draws a crocodile centred on column x of row y.
func DrawCrocodile(dst *core.Screen, x, y int) {
	dst.DrawTextColor(x-2, y, Crocodile, core.ColorGreen)
}

// DrawHUD draws the title, score and message rows plus the help line.
func (r *Runner) DrawHUD(dst *core.Screen, title string) {
	s := r.ctrl.Session()
	st := r.State()

	dst.DrawTextColor(2, 0, title, core.ColorCyan)
	status := fmt.Sprintf("Distance: %d/%d  Leaps: %d", st.Score, r.cfg.Course.Finish, s.Leaps)
	dst.DrawText(dst.Width()-core.TextWidth(status)-2, 0, status)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	msg := s.Message
	if msg == "" && s.Phase == chicken.PhaseActive {
		msg = r.cfg.Messages.Hint
	}
	msgColor := core.ColorWhite
	if s.Phase == chicken.PhaseLost {
		msgColor = core.ColorRed
	} else if s.Phase == chicken.PhaseWon {
		msgColor = core.ColorBrightGreen
	}
	dst.DrawTextColor((dst.Width()-core.TextWidth(msg))/2, 2, msg, msgColor)

	help := "Space: leap  R: restart  B: menu  Q: quit"
	dst.DrawTextColor((dst.Width()-core.TextWidth(help))/2, dst.Height()-1, help, core.ColorGray)

	switch s.Phase {
	case chicken.PhaseNotStarted:
		DrawBanner(dst, title, r.cfg.Messages.Intro)
	case chicken.PhaseLost:
		DrawBanner(dst, "GAME OVER", fmt.Sprintf("%s  |  Press R to restart", s.Message))
	case chicken.PhaseWon:
		DrawBanner(dst, "YOU WIN", fmt.Sprintf("%s  |  Press R to play again", s.Message))
	}
}

// DrawBanner draws a message box in the center of the screen.
func DrawBanner(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(core.TextWidth(title), core.TextWidth(subtitle))+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(boxW-core.TextWidth(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
