package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/progress"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewCrawlRecord(t *testing.T) {
	var stats progress.Stats
	stats.Increment(progress.Defeated(component.Zombie), 2)
	stats.Increment(progress.DefeatedBy(component.Spider), 1)
	stats.Increment(progress.StepsMoved, 17)
	unlocked := progress.NewAchievementSet()

	rec := newCrawlRecord(crawlEnd{
		player:   "alice",
		crawlID:  5,
		floor:    2,
		stats:    &stats,
		unlocked: &unlocked,
	}, time.Unix(0, 0))

	if rec.FloorReached != 3 {
		t.Errorf("FloorReached = %d; want 3", rec.FloorReached)
	}
	if rec.Kills["zombie"] != 2 || len(rec.Kills) != 1 {
		t.Errorf("Kills = %v", rec.Kills)
	}
	if rec.CauseOfDeath != "Spider" {
		t.Errorf("CauseOfDeath = %q; want Spider", rec.CauseOfDeath)
	}
	if rec.StepsMoved != 17 {
		t.Errorf("StepsMoved = %d; want 17", rec.StepsMoved)
	}
}

func TestHistoryAppend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	h := NewHistory(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Append(CrawlRecord{Player: "alice", FloorReached: 3})
	h.Append(CrawlRecord{Player: "bob", FloorReached: 1})

	data, err := os.ReadFile(h.Path())
	if err != nil {
		t.Fatalf("crawls.jsonl not created: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	var rec CrawlRecord
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("line 2 is not JSON: %v", err)
	}
	if rec.Player != "bob" || rec.FloorReached != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestHistoryDisabled(t *testing.T) {
	h := NewHistory("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if h.Path() != "" {
		t.Errorf("Path = %q; want empty", h.Path())
	}
	h.Append(CrawlRecord{Player: "alice"})
}
