package component

// TreasureKind selects what picking up a treasure does.
type TreasureKind uint8

const (
	TreasureGold     TreasureKind = iota // credit Value gold
	TreasureHeal                         // restore Value health up to max
	TreasureHealthUp                     // raise max health by one, then heal Value
)

func (k TreasureKind) String() string {
	switch k {
	case TreasureGold:
		return "gold"
	case TreasureHeal:
		return "heal"
	case TreasureHealthUp:
		return "health-up"
	}
	return "unknown"
}

type Treasure struct {
	Pos   Position
	Value int
	Kind  TreasureKind
}

// ObstacleKind is cosmetic; both kinds block movement identically.
type ObstacleKind uint8

const (
	WallA ObstacleKind = iota
	WallB
)

type Obstacle struct {
	Pos  Position
	Kind ObstacleKind
}
