package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
)

// Tile holds the kind of one map cell.
type Tile struct {
	Kind TileKind
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile { return Tile{Kind: TileWall} }

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile { return Tile{Kind: TileFloor} }

// Walkable reports whether actors may stand on the tile.
func (t Tile) Walkable() bool { return t.Kind != TileWall }
