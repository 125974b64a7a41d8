package progress

import "slices"

// RankingsCap bounds the number of players kept in a Rankings record.
const RankingsCap = 100

// Rankings maps player ids to a single best score. When the record grows past
// RankingsCap the lexicographically smallest player id is evicted.
type Rankings struct {
	Scores map[string]int
}

// Raise keeps the larger of the stored and the given score.
func (r *Rankings) Raise(player string, score int) {
	if cur, ok := r.Scores[player]; ok && cur >= score {
		return
	}
	r.Set(player, score)
}

// Set overwrites the score for player.
func (r *Rankings) Set(player string, score int) {
	if r.Scores == nil {
		r.Scores = make(map[string]int)
	}
	r.Scores[player] = score
	for len(r.Scores) > RankingsCap {
		keys := make([]string, 0, len(r.Scores))
		for k := range r.Scores {
			keys = append(keys, k)
		}
		delete(r.Scores, slices.Min(keys))
	}
}
