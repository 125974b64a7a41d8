package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"math/rand"
)

// MoveResult describes the outcome of a MovePlayer call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveAttack                    // bumped a live monster and hit it
	MoveSwap                      // traded places with a stunned monster
	MoveDead                      // actor has no health left
	MoveBlocked                   // out of bounds, obstacle or another player
)

// Success reports whether the move consumed the actor's turn.
func (r MoveResult) Success() bool { return r <= MoveSwap }

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "moved"
	case MoveAttack:
		return "attacked"
	case MoveSwap:
		return "swapped"
	case MoveDead:
		return "dead"
	case MoveBlocked:
		return "blocked"
	}
	return "unknown"
}

// Stun durations applied to a monster the player hits.
const (
	StunSolo  = 2
	StunParty = 1
)

// MovePlayer moves actor one cell in dir on b, attacking a live monster in the
// way. Failed moves leave b untouched.
func MovePlayer(b *dungeon.Board, actor *component.Player, rec progress.Recorder, dir component.Direction, stun int, rng *rand.Rand, log Logger) MoveResult {
	if !actor.Alive() {
		log.Logf("You are dead.")
		return MoveDead
	}
	dest := actor.Pos.Step(dir)
	if b.IsOutOfBounds(dest) || b.IsObstacle(dest) {
		return MoveBlocked
	}
	if i := b.MonsterAt(dest); i >= 0 {
		m := &b.Monsters[i]
		actor.Facing = dir
		if m.Stunned() {
			m.Pos, actor.Pos = actor.Pos, m.Pos
			log.Logf("You swap places with the stunned %s.", m.Kind)
			return MoveSwap
		}
		attackMonster(b, actor, m, rec, stun, rng, log)
		return MoveAttack
	}
	if b.IsPlayer(dest) {
		return MoveBlocked
	}

	actor.Pos = dest
	actor.Facing = dir
	rec.Record(progress.StepsMoved, 1)

	if i := b.TreasureAt(dest); i >= 0 {
		pickUp(actor, b.Treasures[i], rec, log)
		b.RemoveTreasure(i)
	}
	if b.IsExitKey(dest) {
		b.ExitKey = nil
		exit := revealExit(b, dest, rng)
		b.Exit = &exit
		log.Logf("You found the key! The exit has appeared.")
	}
	return MoveOK
}

func attackMonster(b *dungeon.Board, actor *component.Player, m *component.Monster, rec progress.Recorder, stun int, rng *rand.Rand, log Logger) {
	s := ResolveStrike(m.Health, actor.Strength)
	s.Apply(&m.Health)
	m.Stun = stun
	rec.Record(progress.DamageDealt, s.Damage)
	log.Logf("You hit the %s for %d damage.", m.Kind, s.Damage)
	if !s.Killed {
		return
	}
	rec.Record(progress.Defeated(m.Kind), 1)
	log.Logf("You defeated the %s!", m.Kind)

	if !b.AllMonstersDefeated() {
		return
	}
	at := m.Pos
	if b.IsTreasure(at) || b.IsExitKey(at) || b.IsExit(at) {
		return
	}
	t := dropTreasure(at, rng)
	b.Treasures = append(b.Treasures, t)
	log.Logf("The last monster dropped some %s.", t.Kind)
}

// dropTreasure rolls the reward left behind by the last monster on a floor.
func dropTreasure(at component.Position, rng *rand.Rand) component.Treasure {
	switch rng.Intn(4) {
	case 0:
		return component.Treasure{Pos: at, Value: 1, Kind: component.TreasureHeal}
	case 1:
		return component.Treasure{Pos: at, Value: 50, Kind: component.TreasureGold}
	default:
		return component.Treasure{Pos: at, Value: 2, Kind: component.TreasureHealthUp}
	}
}

func pickUp(actor *component.Player, t component.Treasure, rec progress.Recorder, log Logger) {
	switch t.Kind {
	case component.TreasureGold:
		actor.Gold += t.Value
		rec.Record(progress.GoldCollected, t.Value)
		log.Logf("You picked up %d gold.", t.Value)
	case component.TreasureHeal:
		n := actor.Health.Heal(t.Value)
		rec.Record(progress.HealthRecovered, n)
		log.Logf("You recovered %d health.", n)
	case component.TreasureHealthUp:
		actor.Health.Max++
		n := actor.Health.Heal(t.Value)
		rec.Record(progress.HealthRecovered, n)
		log.Logf("Your max health rose to %d.", actor.Health.Max)
	}
}

// revealExit places the exit at least half the smaller dimension away from
// from. When no cell that far is free it takes any free cell, and as a last
// resort the finder's own cell.
func revealExit(b *dungeon.Board, from component.Position, rng *rand.Rand) component.Position {
	minDist := min(b.Width, b.Height) / 2
	p, err := b.RandomFreeCell(rng, func(p component.Position) bool {
		return p.Manhattan(from) >= minDist
	})
	if err == nil {
		return p
	}
	if p, err = b.RandomFreeCell(rng, nil); err == nil {
		return p
	}
	return from
}
