package session

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/game"

	"github.com/gdamore/tcell/v2"
)

// emoteKeys maps the number row to the party emotes.
var emoteKeys = map[rune]game.EmoteKind{
	'1': game.EmoteLove,
	'2': game.EmoteAnger,
	'3': game.EmoteSob,
	'4': game.EmoteThinking,
}

func move(d component.Direction) game.Input {
	return game.Input{Action: game.ActionMove, Direction: d}
}

// keyToInput maps a tcell key event to a game input. prompt is set for the
// key that opens the command line.
func keyToInput(ev *tcell.EventKey) (in game.Input, prompt bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return move(component.DirUp), false
	case tcell.KeyDown:
		return move(component.DirDown), false
	case tcell.KeyRight:
		return move(component.DirRight), false
	case tcell.KeyLeft:
		return move(component.DirLeft), false
	case tcell.KeyEnter:
		return game.Input{Action: game.ActionNext}, false
	case tcell.KeyEscape:
		return game.Input{Action: game.ActionQuit}, false
	}
	r := ev.Rune()
	if k, ok := emoteKeys[r]; ok {
		return game.Input{Action: game.ActionEmote, Emote: k}, false
	}
	switch r {
	case 'w', 'W', 'k', 'K':
		return move(component.DirUp), false
	case 's', 'S', 'j', 'J':
		return move(component.DirDown), false
	case 'd', 'D', 'l', 'L':
		return move(component.DirRight), false
	case 'a', 'A', 'h', 'H':
		return move(component.DirLeft), false
	case '.', ' ':
		return game.Input{Action: game.ActionWait}, false
	case '>':
		return game.Input{Action: game.ActionNext}, false
	case 'n', 'N':
		return game.Input{Action: game.ActionNew}, false
	case 't', 'T':
		return game.Input{Action: game.ActionStats}, false
	case 'v', 'V':
		return game.Input{Action: game.ActionAchievements}, false
	case 'b', 'B':
		return game.Input{Action: game.ActionLeaderboard}, false
	case 'o', 'O':
		return game.Input{Action: game.ActionLobbies}, false
	case '?':
		return game.Input{Action: game.ActionHelp}, false
	case 'q', 'Q':
		return game.Input{Action: game.ActionQuit}, false
	case ':', '/':
		return game.Input{}, true
	}
	return game.Input{}, false
}

var helpLines = []string{
	"── Movement ──────────────────────────",
	"  Arrows / wasd / hjkl   Move or attack",
	"  . / Space              Wait a turn",
	"  Enter / >              Descend at the exit",
	"  n                      New crawl",
	"",
	"── Records ───────────────────────────",
	"  t  stats      v  achievements",
	"  b  leaderboard  o  open lobbies",
	"",
	"── Party ─────────────────────────────",
	"  :                      Command line",
	"  :party create | join <owner> | start",
	"  :party leave <owner> | reset | delete",
	"  1 ❤️  2 💢  3 😭  4 🤔     Emotes",
	"",
	"── Game ──────────────────────────────",
	"  q / Esc                Disconnect",
	"  ?                      This help",
	"",
	"  [any key to close]",
}
