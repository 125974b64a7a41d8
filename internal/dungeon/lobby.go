package dungeon

import "slices"

// LobbyTTL is how long, in seconds, a lobby lives before it is purged.
const LobbyTTL = 10 * 60

// Lobby is a pre-crawl gathering owned by one player.
type Lobby struct {
	ID        uint32
	Owner     string
	CreatedAt int64 // unix seconds
	Players   []string
}

// Join adds id unless it is already present.
func (l *Lobby) Join(id string) {
	if !slices.Contains(l.Players, id) {
		l.Players = append(l.Players, id)
	}
}

// Leave removes id from the lobby.
func (l *Lobby) Leave(id string) {
	l.Players = slices.DeleteFunc(l.Players, func(p string) bool { return p == id })
}

// LobbyList is the shared record of open lobbies keyed by owner.
type LobbyList struct {
	Lobbies map[string]*Lobby
}

func (ll *LobbyList) Get(owner string) (*Lobby, bool) {
	l, ok := ll.Lobbies[owner]
	return l, ok
}

func (ll *LobbyList) Put(l *Lobby) {
	if ll.Lobbies == nil {
		ll.Lobbies = make(map[string]*Lobby)
	}
	ll.Lobbies[l.Owner] = l
}

func (ll *LobbyList) Remove(owner string) {
	delete(ll.Lobbies, owner)
}

// Purge drops lobbies at least ttl seconds old at now and returns how many went.
func (ll *LobbyList) Purge(now, ttl int64) int {
	n := 0
	for owner, l := range ll.Lobbies {
		if now-l.CreatedAt >= ttl {
			delete(ll.Lobbies, owner)
			n++
		}
	}
	return n
}

// Owners returns the lobby owners sorted.
func (ll *LobbyList) Owners() []string {
	out := make([]string, 0, len(ll.Lobbies))
	for o := range ll.Lobbies {
		out = append(out, o)
	}
	slices.Sort(out)
	return out
}
