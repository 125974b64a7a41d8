package game

import "sync"

// NoticeKind distinguishes what a Notice carries.
type NoticeKind uint8

const (
	NoticeAlert NoticeKind = iota // server-wide announcement
	NoticeEmote                   // party reaction
	NoticeParty                   // party state changed; receivers should redraw
)

// Notice is pushed to connected front ends after a command commits.
type Notice struct {
	Kind NoticeKind
	From string
	Text string
	// To limits delivery to the listed players. Nil means everyone.
	To []string
}

func (n Notice) deliversTo(player string) bool {
	if n.To == nil {
		return true
	}
	for _, p := range n.To {
		if p == player {
			return true
		}
	}
	return false
}

// noticeBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind misses notices rather than stalling the handler.
const noticeBuffer = 32

// Hub fans notices out to subscribers.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	player string
	ch     chan Notice
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscriber)}
}

// Subscribe registers player and returns its notice channel and a function
// that unsubscribes and closes the channel.
func (h *Hub) Subscribe(player string) (<-chan Notice, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Notice, noticeBuffer)
	h.subs[id] = subscriber{player: player, ch: ch}
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers n to every matching subscriber without blocking.
func (h *Hub) Publish(n Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		if !n.deliversTo(s.player) {
			continue
		}
		select {
		case s.ch <- n:
		default:
		}
	}
}
