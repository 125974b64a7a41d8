package progress

import "sort"

// LeaderboardSize is the number of entries kept per category.
const LeaderboardSize = 10

// LeaderboardKind is a ranking category.
type LeaderboardKind uint8

const (
	HighestFloor LeaderboardKind = iota
	MostGold
	MostKills
	LeastSteps
)

// LeaderboardKinds lists every category in display order.
var LeaderboardKinds = []LeaderboardKind{HighestFloor, MostGold, MostKills, LeastSteps}

func (k LeaderboardKind) String() string {
	switch k {
	case HighestFloor:
		return "highest_floor"
	case MostGold:
		return "most_gold"
	case MostKills:
		return "most_kills"
	case LeastSteps:
		return "least_steps"
	}
	return "unknown"
}

// IsMost reports whether higher scores rank first.
func (k LeaderboardKind) IsMost() bool { return k != LeastSteps }

// LeaderboardEntry is one ranked score.
type LeaderboardEntry struct {
	Name    string
	Score   int
	CrawlID uint32
}

// Leaderboard holds one bounded ranking per category.
type Leaderboard struct {
	Entries map[LeaderboardKind][]LeaderboardEntry
}

// Top returns the ranking for kind, best first.
func (l *Leaderboard) Top(kind LeaderboardKind) []LeaderboardEntry {
	return l.Entries[kind]
}

// Update inserts a score, re-sorts and truncates the category. It returns the
// entry for crawlID when that crawl still holds a place on the board.
func (l *Leaderboard) Update(crawlID uint32, kind LeaderboardKind, name string, score int) (LeaderboardEntry, bool) {
	if l.Entries == nil {
		l.Entries = make(map[LeaderboardKind][]LeaderboardEntry)
	}
	list := append(l.Entries[kind], LeaderboardEntry{Name: name, Score: score, CrawlID: crawlID})
	sort.SliceStable(list, func(i, j int) bool {
		if kind.IsMost() {
			return list[i].Score > list[j].Score
		}
		return list[i].Score < list[j].Score
	})
	if len(list) > LeaderboardSize {
		list = list[:LeaderboardSize]
	}
	l.Entries[kind] = list
	return l.Find(kind, func(e LeaderboardEntry) bool { return e.CrawlID == crawlID })
}

// Find returns the first entry in kind that matches.
func (l *Leaderboard) Find(kind LeaderboardKind, match func(LeaderboardEntry) bool) (LeaderboardEntry, bool) {
	for _, e := range l.Entries[kind] {
		if match(e) {
			return e, true
		}
	}
	return LeaderboardEntry{}, false
}

// Rank returns dense ranks for the category: equal scores share a rank.
func (l *Leaderboard) Rank(kind LeaderboardKind) []int {
	entries := l.Entries[kind]
	ranks := make([]int, len(entries))
	rank := 0
	for i, e := range entries {
		if i == 0 || e.Score != entries[i-1].Score {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}
