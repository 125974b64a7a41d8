package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/progress"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CrawlRecord is one finished crawl as written to crawls.jsonl.
type CrawlRecord struct {
	Timestamp    time.Time      `json:"timestamp"`
	Player       string         `json:"player"`
	CrawlID      uint32         `json:"crawl_id"`
	Party        bool           `json:"party"`
	FloorReached int            `json:"floor_reached"`
	StepsMoved   int            `json:"steps_moved"`
	Kills        map[string]int `json:"kills"`
	DamageDealt  int            `json:"damage_dealt"`
	DamageTaken  int            `json:"damage_taken"`
	GoldEarned   int            `json:"gold_earned"`
	Achievements []string       `json:"achievements"`
	CauseOfDeath string         `json:"cause_of_death"`
}

func newCrawlRecord(e crawlEnd, now time.Time) CrawlRecord {
	rec := CrawlRecord{
		Timestamp:    now.UTC(),
		Player:       e.player,
		CrawlID:      e.crawlID,
		Party:        e.party,
		FloorReached: e.floor + 1,
		StepsMoved:   e.stats.Get(progress.StepsMoved),
		Kills:        map[string]int{},
		DamageDealt:  e.stats.Get(progress.DamageDealt),
		DamageTaken:  e.stats.Get(progress.DamageTaken),
		GoldEarned:   e.stats.Get(progress.GoldCollected),
		Achievements: e.unlocked.Names(),
	}
	for _, k := range component.MonsterKinds {
		if n := e.stats.Kills(k); n > 0 {
			rec.Kills[k.Info().Slug] = n
		}
		if e.stats.DeathsBy(k) > 0 {
			rec.CauseOfDeath = k.String()
		}
	}
	return rec
}

// History appends finished crawls as JSON lines to crawls.jsonl.
// Errors are logged but never fail a command.
type History struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger
}

// NewHistory writes below dir. An empty dir disables the history.
func NewHistory(dir string, logger *slog.Logger) *History {
	return &History{dir: dir, logger: logger}
}

// Path returns the history file, or "" when disabled.
func (h *History) Path() string {
	if h.dir == "" {
		return ""
	}
	return filepath.Join(h.dir, "crawls.jsonl")
}

func (h *History) Append(rec CrawlRecord) {
	if h.dir == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Warn("crawl history: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(h.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		h.logger.Warn("crawl history: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rec)
	if err != nil {
		h.logger.Warn("crawl history: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}
