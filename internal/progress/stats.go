// Package progress tracks per-crawl and lifetime statistics, achievement
// unlocks and the global leaderboards.
package progress

import "dungeon-crawl/internal/component"

// StatKey names one counter.
type StatKey string

const (
	CrawlsCompleted StatKey = "crawls_completed"
	FloorsCleared   StatKey = "floors_cleared"
	HealthRecovered StatKey = "health_recovered"
	GoldCollected   StatKey = "gold_collected"
	DamageDealt     StatKey = "damage_dealt"
	StepsMoved      StatKey = "steps_moved"
	DamageTaken     StatKey = "damage_taken"
)

// Defeated is the key counting kills of kind k.
func Defeated(k component.MonsterKind) StatKey {
	return StatKey("defeated:" + k.Info().Slug)
}

// DefeatedBy is the key counting deaths caused by kind k.
func DefeatedBy(k component.MonsterKind) StatKey {
	return StatKey("defeated_by:" + k.Info().Slug)
}

// Stats is a bag of accumulating counters. The zero value is ready to use.
type Stats struct {
	Counts map[StatKey]int
}

// Get returns the counter for key, or 0 when it was never incremented.
func (s *Stats) Get(key StatKey) int {
	if s == nil {
		return 0
	}
	return s.Counts[key]
}

// Increment adds amount to the counter for key.
func (s *Stats) Increment(key StatKey, amount int) {
	if s.Counts == nil {
		s.Counts = make(map[StatKey]int)
	}
	s.Counts[key] += amount
}

// Kills returns how many monsters of kind k were defeated.
func (s *Stats) Kills(k component.MonsterKind) int { return s.Get(Defeated(k)) }

// DeathsBy returns how many times kind k defeated the player.
func (s *Stats) DeathsBy(k component.MonsterKind) int { return s.Get(DefeatedBy(k)) }

// MonstersDefeated sums kills over every monster kind.
func (s *Stats) MonstersDefeated() int {
	total := 0
	for _, k := range component.MonsterKinds {
		total += s.Kills(k)
	}
	return total
}

// Clone returns a deep copy of s.
func (s *Stats) Clone() Stats {
	out := Stats{Counts: make(map[StatKey]int, len(s.Counts))}
	for k, v := range s.Counts {
		out.Counts[k] = v
	}
	return out
}

// Recorder receives stat increments from the simulation.
type Recorder interface {
	Record(key StatKey, amount int)
}

// Ledger records into a per-crawl and a lifetime Stats at once.
// Non-positive amounts are dropped.
type Ledger struct {
	Crawl *Stats
	Total *Stats
}

func (l Ledger) Record(key StatKey, amount int) {
	if amount <= 0 {
		return
	}
	l.Crawl.Increment(key, amount)
	l.Total.Increment(key, amount)
}

// Discard is a Recorder that drops everything.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(StatKey, int) {}
