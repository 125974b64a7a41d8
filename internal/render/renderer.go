// Package render draws a crawl onto a tcell screen: the emoji grid of the
// current floor with a status bar and message log underneath.
package render

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 5

// Marker is one player shown on the grid.
type Marker struct {
	Name   string
	Player component.Player
	Self   bool
	// Moved is set for party members who already acted this round.
	Moved bool
}

// View is everything the renderer needs for one frame.
type View struct {
	Floor   *dungeon.Floor
	Players []Marker
	Party   bool
	Round   int
}

// SoloView builds the frame for a single-player crawl.
func SoloView(name string, d *dungeon.Dungeon) View {
	return View{
		Floor:   &d.Floor,
		Players: []Marker{{Name: name, Player: d.Player, Self: true}},
	}
}

// PartyView builds the frame for self's party crawl.
func PartyView(self string, p *dungeon.Party) View {
	v := View{Floor: &p.Floor, Party: true, Round: p.Round}
	for _, id := range p.IDs() {
		c := p.Players[id]
		v.Players = append(v.Players, Marker{
			Name:   id,
			Player: c.Player,
			Self:   id == self,
			Moved:  c.NextRound > p.Round,
		})
	}
	return v
}

// Me returns the marker of the viewing player.
func (v View) Me() (Marker, bool) {
	for _, m := range v.Players {
		if m.Self {
			return m, true
		}
	}
	return Marker{}, false
}

// Renderer draws crawl views onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// DrawFrame renders the floor, its entities and the HUD.
func (r *Renderer) DrawFrame(v View, messages []string) {
	r.screen.Clear()
	if me, ok := v.Me(); ok {
		r.camera.Frame(me.Player.Pos.X, me.Player.Pos.Y, v.Floor.Width, v.Floor.Height)
	}
	r.drawFloor(v.Floor)
	r.drawEntities(v)
	r.DrawHUD(v, messages)
}

func (r *Renderer) drawFloor(f *dungeon.Floor) {
	tiles := Tiles(f.Theme)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r.putWorld(x, y, tiles.Floor)
		}
	}
	for _, o := range f.Obstacles {
		r.putWorld(o.Pos.X, o.Pos.Y, tiles.obstacle(o.Kind))
	}
}

// drawEntities renders entities back to front: items, then monsters, then
// players, so the most important thing on a cell wins.
func (r *Renderer) drawEntities(v View) {
	f := v.Floor
	for _, t := range f.Treasures {
		r.putWorld(t.Pos.X, t.Pos.Y, treasureGlyph(t.Kind))
	}
	if f.ExitKey != nil {
		r.putWorld(f.ExitKey.X, f.ExitKey.Y, GlyphKey)
	}
	if f.Exit != nil {
		r.putWorld(f.Exit.X, f.Exit.Y, GlyphExit)
	}
	for _, m := range f.Monsters {
		if m.Alive() {
			r.putWorld(m.Pos.X, m.Pos.Y, m.Kind.Info().Glyph)
		}
	}
	// The viewer is drawn last so a dead teammate never hides them.
	for _, self := range []bool{false, true} {
		for _, m := range v.Players {
			if m.Self != self {
				continue
			}
			glyph := GlyphPlayer
			if !m.Player.Alive() {
				glyph = GlyphDeadPlayer
			}
			r.putWorld(m.Player.Pos.X, m.Player.Pos.Y, glyph)
		}
	}
}

func (r *Renderer) putWorld(x, y int, glyph string) {
	sx, sy, ok := r.camera.WorldToScreen(x, y)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Background(tcell.ColorBlack))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
