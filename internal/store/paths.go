package store

import "fmt"

// Shared record paths.
const (
	LeaderboardPath   = "leaderboard"
	FloorRankingsPath = "floor_rankings"
	YetiRankingsPath  = "yeti_rankings"
	LobbyListPath     = "multiplayer_dungeon_list"
)

// PartyPath is the record of multiplayer crawl id.
func PartyPath(id uint32) string {
	return fmt.Sprintf("/multiplayer_dungeons/v1/%d", id)
}

func userPath(user, name string) string {
	return fmt.Sprintf("/users/%s/v1/%s", user, name)
}

// DungeonPath is the single-player world model of user.
func DungeonPath(user string) string { return userPath(user, "dungeon") }

// StatsPath holds the lifetime stats of user.
func StatsPath(user string) string { return userPath(user, "stats") }

// AchievementsPath holds the all-time achievement set of user.
func AchievementsPath(user string) string { return userPath(user, "achievements") }

// ManifestPath holds the multiplayer crawl id user currently belongs to.
func ManifestPath(user string) string { return userPath(user, "multiplayer_dungeon_manifest") }
