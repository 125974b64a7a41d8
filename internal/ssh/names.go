package ssh

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameBytes bounds a player name so it fits the HUD.
const MaxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and truncates
// it to MaxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > MaxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// allowedTerms are the TERM values passed to terminfo. Anything else falls
// back to xterm-256color so client input never names a terminfo file.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termFromEnv picks the session's TERM from its environment.
func termFromEnv(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}
