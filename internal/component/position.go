package component

// Position is a grid cell. Valid cells satisfy 0 <= X < width and 0 <= Y < height.
type Position struct {
	X, Y int
}

// Step returns the cell one step away in direction d.
func (p Position) Step(d Direction) Position { return p.Move(d, 1) }

// Move returns the cell n steps away in direction d.
func (p Position) Move(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Manhattan returns the taxicab distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// DistSq returns the squared euclidean distance between p and q.
func (p Position) DistSq(q Position) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit offset for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// ParseDirection accepts "up", "down", "left", "right" and the wasd keys.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "u", "w", "north", "n":
		return DirUp, true
	case "down", "s", "south":
		return DirDown, true
	case "left", "l", "a", "west":
		return DirLeft, true
	case "right", "r", "d", "east", "e":
		return DirRight, true
	}
	return DirUp, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
