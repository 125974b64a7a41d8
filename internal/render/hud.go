package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine is the first HUD row for v.
func StatusLine(v View) string {
	me, _ := v.Me()
	hp := me.Player.Health
	s := fmt.Sprintf("HP: %d/%d  Gold: %d  Floor %d · %s  Turn %d",
		hp.Current, hp.Max, me.Player.Gold, v.Floor.Number+1, v.Floor.Theme, v.Floor.Turn)
	if v.Party {
		s += fmt.Sprintf("  Round %d", v.Round+1)
		if me.Moved {
			s += " (waiting)"
		}
	}
	if !hp.Alive() {
		s += "  ☠ You are dead. [n]ew crawl"
	} else if v.Floor.Exit != nil && v.Floor.IsExit(me.Player.Pos) {
		s += "  [>] descend"
	}
	return s
}

// PartyLine lists the other party members, or "" in a solo crawl.
func PartyLine(v View) string {
	if !v.Party {
		return ""
	}
	var parts []string
	for _, m := range v.Players {
		switch {
		case !m.Player.Alive():
			parts = append(parts, m.Name+" ☠")
		case m.Moved:
			parts = append(parts, fmt.Sprintf("%s %d✓", m.Name, m.Player.Health.Current))
		default:
			parts = append(parts, fmt.Sprintf("%s %d", m.Name, m.Player.Health.Current))
		}
	}
	return "Party: " + strings.Join(parts, "  ")
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(v View, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.DrawText(0, hudY+1, StatusLine(v), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	row := hudY + 2
	if line := PartyLine(v); line != "" {
		r.DrawText(0, row, line, tcell.StyleDefault.Foreground(tcell.ColorAqua))
		row++
	}

	// Message log fills the remaining rows.
	keep := screenH - row
	start := max(len(messages)-keep, 0)
	for i, msg := range messages[start:] {
		r.DrawText(0, row+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// DrawText writes text from (x, y), advancing by each rune's cell width and
// stopping at the right edge.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
}
