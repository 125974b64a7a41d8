package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"math/rand"
	"slices"
)

// Target is a player the monster pass may chase or attack.
type Target struct {
	Name   string // empty for the single-player "you"
	Player *component.Player
	Rec    progress.Recorder
}

// MonsterHit records one monster attack landed during a pass.
type MonsterHit struct {
	Kind   component.MonsterKind
	Victim string
	Damage int
	Killed bool
}

// MoveMonsters runs one monster turn over b. Decisions are taken against a
// snapshot of the monsters at the start of the pass, so a monster killed or
// merged earlier in the pass does not act. clock is the floor turn in a solo
// crawl and the shared round in a party.
func MoveMonsters(b *dungeon.Board, targets []Target, clock int, rng *rand.Rand, log Logger) []MonsterHit {
	var hits []MonsterHit
	snapshot := slices.Clone(b.Monsters)
	for i := range snapshot {
		if !snapshot[i].Alive() {
			continue
		}
		m := &b.Monsters[i]
		if !m.Alive() {
			continue
		}
		if m.Stunned() {
			m.Stun--
			continue
		}

		if t, ok := adjacentTarget(m.Pos, targets); ok {
			hits = append(hits, monsterAttack(m, t, rng, log))
			continue
		}

		t, ok := closestTarget(m.Pos, targets)
		if !ok {
			continue
		}
		kind := m.Kind
		if kind == component.EvilTurbi {
			kind = component.MonsterKinds[rng.Intn(len(component.MonsterKinds))]
		}
		beh := behaviorFor(kind)
		if beh.acts != nil && !beh.acts(clock) {
			continue
		}
		beh.move(&monsterTurn{
			b:      b,
			m:      m,
			kind:   kind,
			target: t.Player.Pos,
			clock:  clock,
			rng:    rng,
		})
	}
	return hits
}

func adjacentTarget(p component.Position, targets []Target) (Target, bool) {
	for _, t := range targets {
		if t.Player.Alive() && t.Player.Pos.Manhattan(p) == 1 {
			return t, true
		}
	}
	return Target{}, false
}

// closestTarget returns the living target nearest p by squared distance.
// Ties go to the earlier target.
func closestTarget(p component.Position, targets []Target) (Target, bool) {
	best, bestDist, found := Target{}, 0, false
	for _, t := range targets {
		if !t.Player.Alive() {
			continue
		}
		if d := t.Player.Pos.DistSq(p); !found || d < bestDist {
			best, bestDist, found = t, d, true
		}
	}
	return best, found
}

func monsterAttack(m *component.Monster, t Target, rng *rand.Rand, log Logger) MonsterHit {
	m.Facing = facing(m.Pos, t.Player.Pos)
	dmg := m.Strength
	crit := m.Kind == component.IceYeti && rng.Intn(2) == 0
	if crit {
		dmg *= 2
	}
	s := ResolveStrike(t.Player.Health, dmg)
	s.Apply(&t.Player.Health)
	t.Rec.Record(progress.DamageTaken, s.Damage)

	who := t.Name
	if who == "" {
		who = "you"
	}
	if crit {
		log.Logf("The %s lands a crushing blow on %s for %d damage!", m.Kind, who, s.Damage)
	} else {
		log.Logf("The %s hits %s for %d damage.", m.Kind, who, s.Damage)
	}
	if s.Killed {
		t.Rec.Record(progress.DefeatedBy(m.Kind), 1)
		log.Logf("The %s defeated %s.", m.Kind, who)
	}
	return MonsterHit{Kind: m.Kind, Victim: t.Name, Damage: s.Damage, Killed: s.Killed}
}
