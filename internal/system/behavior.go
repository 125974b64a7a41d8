package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"math/rand"
)

// behavior is one monster kind's movement rule. acts gates the cadence; a nil
// acts means the kind considers moving every turn.
type behavior struct {
	acts func(clock int) bool
	move func(t *monsterTurn)
}

func every(n int) func(int) bool {
	return func(clock int) bool { return clock%n == 0 }
}

var behaviors = map[component.MonsterKind]behavior{
	component.YellowBlob:    {move: blobMove},
	component.BlueBlob:      {move: blobMove},
	component.RedBlob:       {move: blobMove},
	component.Spider:        {acts: every(3), move: spiderMove},
	component.Shade:         {acts: every(2), move: shadeMove},
	component.Ghost:         {move: ghostMove},
	component.SpectralGhost: {move: ghostMove},
	component.Zombie:        {move: zombieMove},
	component.IceYeti:       {acts: every(2), move: yetiMove},
	component.Snowman:       {acts: every(2), move: snowmanMove},
}

// chaser is the plain melee rule used by goblins and anything without an entry.
var chaser = behavior{move: chaseMove}

func behaviorFor(k component.MonsterKind) behavior {
	if b, ok := behaviors[k]; ok {
		return b
	}
	return chaser
}

// monsterTurn is the context one monster decides its move in.
type monsterTurn struct {
	b      *dungeon.Board
	m      *component.Monster
	kind   component.MonsterKind // the kind whose rule applies this turn
	target component.Position
	clock  int
	rng    *rand.Rand
}

func (t *monsterTurn) delta(to component.Position) (dx, dy int) {
	return to.X - t.m.Pos.X, to.Y - t.m.Pos.Y
}

// axes returns the direction along the dominant axis toward (dx, dy) and the
// one along the other axis. hasSecond is false when the other axis is aligned.
func axes(dx, dy int) (first, second component.Direction, hasSecond bool) {
	vert := component.DirUp
	if dy > 0 {
		vert = component.DirDown
	}
	horiz := component.DirLeft
	if dx > 0 {
		horiz = component.DirRight
	}
	if abs(dx) <= abs(dy) {
		return vert, horiz, dx != 0
	}
	return horiz, vert, dy != 0
}

// tryStep moves n cells in dir when the landing cell is in bounds and unoccupied.
func (t *monsterTurn) tryStep(dir component.Direction, n int) bool {
	dest := t.m.Pos.Move(dir, n)
	if t.b.IsOutOfBounds(dest) || t.b.IsPositionOccupied(dest) {
		return false
	}
	t.m.Pos = dest
	t.m.Facing = dir
	return true
}

// approach steps along the dominant axis toward to, then the other axis.
func (t *monsterTurn) approach(to component.Position) bool {
	dx, dy := t.delta(to)
	if dx == 0 && dy == 0 {
		return false
	}
	first, second, ok := axes(dx, dy)
	if t.tryStep(first, 1) {
		return true
	}
	return ok && t.tryStep(second, 1)
}

func (t *monsterTurn) wander() {
	t.tryStep(component.Directions[t.rng.Intn(len(component.Directions))], 1)
}

// ─── rules ───────────────────────────────────────────────────────────────────

func chaseMove(t *monsterTurn) { t.approach(t.target) }

func blobMove(t *monsterTurn) {
	dx, dy := t.delta(t.target)
	if abs(dx) > 2 || abs(dy) > 2 {
		t.wander()
		return
	}
	first, _, _ := axes(dx, dy)
	t.tryStep(first, 1)
}

// spiderMove dashes up to three cells along the dominant axis, shortening the
// dash until it lands on a free cell.
func spiderMove(t *monsterTurn) {
	dx, dy := t.delta(t.target)
	first, _, _ := axes(dx, dy)
	for n := min(3, max(abs(dx), abs(dy))); n >= 1; n-- {
		if t.tryStep(first, n) {
			return
		}
	}
}

// phase walks from the monster through any run of obstacles in dir and
// returns the first cell past them. Phasing monsters never stop inside a wall.
func (t *monsterTurn) phase(dir component.Direction) (component.Position, bool) {
	dest := t.m.Pos.Step(dir)
	for !t.b.IsOutOfBounds(dest) && t.b.IsObstacle(dest) {
		dest = dest.Step(dir)
	}
	return dest, !t.b.IsOutOfBounds(dest)
}

// shadeMove phases through obstacles and is only stopped by monsters and players.
func shadeMove(t *monsterTurn) {
	dx, dy := t.delta(t.target)
	first, _, _ := axes(dx, dy)
	dest, ok := t.phase(first)
	if !ok || t.b.IsMonster(dest) || t.b.IsPlayer(dest) {
		return
	}
	t.m.Pos = dest
	t.m.Facing = first
}

const (
	ghostScanRadius    = 3
	ghostRange         = 1
	spectralGhostRange = 4
)

// ghostMove seeks a nearby plain ghost to merge with. Without one it keeps its
// distance: plain ghosts back away from a close player, spectral ghosts close
// in once the player is within range. Ghosts pass through obstacles.
func ghostMove(t *monsterTurn) {
	if dir, ok := t.nearbyGhost(); ok {
		t.ghostStep(dir)
		return
	}
	if t.clock%4 == 0 {
		return
	}
	reach := ghostRange
	if t.kind == component.SpectralGhost {
		reach = spectralGhostRange
	}
	dx, dy := t.delta(t.target)
	if abs(dx) > reach && abs(dy) > reach {
		return
	}
	horizontal := abs(dx) > abs(dy)
	if abs(dx) == abs(dy) {
		horizontal = t.rng.Intn(2) == 0
	}
	var dir component.Direction
	switch {
	case horizontal && dx > 0:
		dir = component.DirRight
	case horizontal:
		dir = component.DirLeft
	case dy > 0:
		dir = component.DirDown
	default:
		dir = component.DirUp
	}
	if t.kind == component.Ghost {
		dir = dir.Opposite()
	}
	t.ghostStep(dir)
}

// nearbyGhost returns the first step toward a live plain ghost within the
// scan radius, scanning rows then columns.
func (t *monsterTurn) nearbyGhost() (component.Direction, bool) {
	for dy := -ghostScanRadius; dy <= ghostScanRadius; dy++ {
		for dx := -ghostScanRadius; dx <= ghostScanRadius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := component.Position{X: t.m.Pos.X + dx, Y: t.m.Pos.Y + dy}
			i := t.b.MonsterAt(p)
			if i < 0 || t.b.Monsters[i].Kind != component.Ghost {
				continue
			}
			switch {
			case dx > 0:
				return component.DirRight, true
			case dx < 0:
				return component.DirLeft, true
			case dy > 0:
				return component.DirDown, true
			default:
				return component.DirUp, true
			}
		}
	}
	return component.DirUp, false
}

func (t *monsterTurn) ghostStep(dir component.Direction) {
	dest, ok := t.phase(dir)
	if !ok || t.b.IsPlayer(dest) || t.b.IsExit(dest) {
		return
	}
	if i := t.b.MonsterAt(dest); i >= 0 && t.b.Monsters[i].Kind == component.Ghost {
		t.b.Monsters[i].Health.Current = 0
		t.merge()
	}
	if t.b.IsMonster(dest) {
		return
	}
	t.m.Pos = dest
	t.m.Facing = dir
}

// merge upgrades the mover after it absorbs a plain ghost.
func (t *monsterTurn) merge() {
	if t.m.Kind != component.EvilTurbi {
		t.m.Kind = component.SpectralGhost
	}
	t.m.Strength *= 2
	t.m.Health.Max *= 2
	t.m.Health.Current = t.m.Health.Max
}

const zombieSightRange = 4

func zombieMove(t *monsterTurn) {
	if t.m.Pos.Manhattan(t.target) > zombieSightRange {
		if t.clock%2 == 1 {
			t.wander()
		}
		return
	}
	t.approach(t.target)
}

// yetiMove bounds up to two cells toward the target, falling back to the
// other axis when the dominant one is blocked.
func yetiMove(t *monsterTurn) {
	dx, dy := t.delta(t.target)
	first, second, ok := axes(dx, dy)
	for n := min(2, max(abs(dx), abs(dy))); n >= 1; n-- {
		if t.tryStep(first, n) {
			return
		}
	}
	if ok {
		t.tryStep(second, 1)
	}
}

// snowmanMove heads for the exit, then the key, then the player, and takes
// the first goal it can make progress toward.
func snowmanMove(t *monsterTurn) {
	goals := []component.Position{t.target, t.target, t.target}
	if t.b.Exit != nil {
		goals[0] = *t.b.Exit
	}
	if t.b.ExitKey != nil {
		goals[1] = *t.b.ExitKey
	}
	for _, g := range goals {
		if t.approach(g) {
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
