package dungeon

import "dungeon-crawl/internal/component"

// Board is a Floor seen together with the players standing on it. It is the
// only view movement rules and spawn routines consult for occupancy.
type Board struct {
	*Floor
	Players []*component.Player
}

// NewBoard pairs f with the given players. Only the listed players block cells.
func NewBoard(f *Floor, players ...*component.Player) *Board {
	return &Board{Floor: f, Players: players}
}

func (b *Board) IsPlayer(p component.Position) bool {
	for _, pl := range b.Players {
		if pl.Pos == p {
			return true
		}
	}
	return false
}

// IsPositionBlocked reports whether p cannot be entered: obstacle, living
// monster or player.
func (b *Board) IsPositionBlocked(p component.Position) bool {
	return b.IsObstacle(p) || b.IsMonster(p) || b.IsPlayer(p)
}

// IsPositionOccupied extends IsPositionBlocked with treasure, key and exit.
// Spawn placement uses it so no two entities share a cell.
func (b *Board) IsPositionOccupied(p component.Position) bool {
	return b.IsPositionBlocked(p) || b.IsTreasure(p) || b.IsExitKey(p) || b.IsExit(p)
}

// Free reports whether p is in bounds and unoccupied.
func (b *Board) Free(p component.Position) bool {
	return !b.IsOutOfBounds(p) && !b.IsPositionOccupied(p)
}
