package session

import (
	"context"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/progress"
	"fmt"
	"strings"
)

var titles = map[game.Action]string{
	game.ActionStats:        "Stats",
	game.ActionAchievements: "Achievements",
	game.ActionLeaderboard:  "Leaderboard",
	game.ActionLobbies:      "Open lobbies",
}

// query renders the record behind a read-only action as text lines.
func (s *Session) query(ctx context.Context, a game.Action) ([]string, error) {
	switch a {
	case game.ActionStats, game.ActionAchievements:
		prof, err := s.handler.Profile(ctx, s.Name)
		if err != nil {
			return nil, err
		}
		if a == game.ActionStats {
			return statsLines(&prof.Stats), nil
		}
		return achievementLines(prof.Achievements), nil
	case game.ActionLeaderboard:
		board, err := s.handler.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		return leaderboardLines(&board), nil
	case game.ActionLobbies:
		list, err := s.handler.Lobbies(ctx)
		if err != nil {
			return nil, err
		}
		return lobbyLines(&list), nil
	}
	return nil, nil
}

var statRows = []struct {
	label string
	key   progress.StatKey
}{
	{"Crawls completed", progress.CrawlsCompleted},
	{"Floors cleared", progress.FloorsCleared},
	{"Steps moved", progress.StepsMoved},
	{"Gold collected", progress.GoldCollected},
	{"Damage dealt", progress.DamageDealt},
	{"Damage taken", progress.DamageTaken},
	{"Health recovered", progress.HealthRecovered},
}

func statsLines(st *progress.Stats) []string {
	var lines []string
	for _, r := range statRows {
		lines = append(lines, fmt.Sprintf("%-18s %6d", r.label, st.Get(r.key)))
	}
	lines = append(lines, fmt.Sprintf("%-18s %6d", "Monsters defeated", st.MonstersDefeated()))
	for _, k := range component.MonsterKinds {
		if n := st.Kills(k); n > 0 {
			lines = append(lines, fmt.Sprintf("  %s %-14s %4d", k.Info().Glyph, k.Info().Abbrev, n))
		}
	}
	return lines
}

func achievementLines(set progress.AchievementSet) []string {
	lines := []string{fmt.Sprintf("%d of %d unlocked", set.Len(), len(progress.Achievements))}
	for _, a := range progress.Achievements {
		mark := "  "
		if set.Has(a.ID) {
			mark = "✓ "
		}
		lines = append(lines, mark+a.Name+": "+a.Description)
	}
	return lines
}

func leaderboardLines(board *progress.Leaderboard) []string {
	var lines []string
	for _, k := range progress.LeaderboardKinds {
		lines = append(lines, strings.ToUpper(strings.ReplaceAll(k.String(), "_", " ")))
		top := board.Top(k)
		if len(top) == 0 {
			lines = append(lines, "  (empty)")
		}
		ranks := board.Rank(k)
		for i, e := range top {
			lines = append(lines, fmt.Sprintf("  %2d. %-16s %6d", ranks[i], e.Name, e.Score))
		}
	}
	return lines
}

func lobbyLines(list *dungeon.LobbyList) []string {
	owners := list.Owners()
	if len(owners) == 0 {
		return []string{"No open lobbies. Try :party create"}
	}
	var lines []string
	for _, o := range owners {
		l, _ := list.Get(o)
		lines = append(lines, fmt.Sprintf("%s: %s", o, strings.Join(l.Players, ", ")))
	}
	return lines
}
