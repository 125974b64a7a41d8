package component

// Player is one crawler. Gold only ever grows during a crawl.
type Player struct {
	Pos      Position
	Health   Health
	Strength int
	Gold     int
	Facing   Direction
}

// NewPlayer returns a player at pos with full health.
func NewPlayer(pos Position, hp, strength int) Player {
	return Player{
		Pos:      pos,
		Health:   Health{Current: hp, Max: hp},
		Strength: strength,
		Facing:   DirDown,
	}
}

func (p *Player) Alive() bool { return p.Health.Alive() }
