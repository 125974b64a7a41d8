package render

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"

	"github.com/gdamore/tcell/v2"
)

// FloorTiles holds the emoji glyphs used to draw one theme's terrain.
// Emoji carry their own colors, so obstacles of the two kinds get distinct
// glyphs instead of a tinted foreground.
type FloorTiles struct {
	Floor string
	WallA string
	WallB string
}

// TileThemes maps each dungeon theme to its tile set.
var TileThemes = map[dungeon.Theme]FloorTiles{
	dungeon.Castle:  {Floor: "⬛", WallA: "🧱", WallB: "🪨"},
	dungeon.Crypt:   {Floor: "⬛", WallA: "⚰️", WallB: "🪦"},
	dungeon.Pirate:  {Floor: "🟫", WallA: "🛢️", WallB: "⚓"},
	dungeon.Forest:  {Floor: "🟩", WallA: "🌲", WallB: "🌳"},
	dungeon.IceCave: {Floor: "⬜", WallA: "🧊", WallB: "🪨"},
	dungeon.Arctic:  {Floor: "⬜", WallA: "🌲", WallB: "🧊"},
}

// Tiles returns the tile set for t, falling back to the castle.
func Tiles(t dungeon.Theme) FloorTiles {
	if ft, ok := TileThemes[t]; ok {
		return ft
	}
	return TileThemes[dungeon.Castle]
}

func (ft FloorTiles) obstacle(k component.ObstacleKind) string {
	if k == component.WallB {
		return ft.WallB
	}
	return ft.WallA
}

// Entity glyphs.
const (
	GlyphPlayer     = "🧙"
	GlyphDeadPlayer = "👻"
	GlyphKey        = "🗝️"
	GlyphExit       = "🚪"
	GlyphGold       = "💰"
	GlyphHeal       = "🍖"
	GlyphHealthUp   = "💖"
)

func treasureGlyph(k component.TreasureKind) string {
	switch k {
	case component.TreasureHeal:
		return GlyphHeal
	case component.TreasureHealthUp:
		return GlyphHealthUp
	}
	return GlyphGold
}

// PlayerColors is the round-robin palette for party member names.
var PlayerColors = []tcell.Color{
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorOrange,
	tcell.ColorRed,
	tcell.ColorSilver,
	tcell.ColorWhite,
}
