package ws

import (
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/game"
)

// ProtocolVersion is stamped on every server message.
const ProtocolVersion = 1

type clientMessage struct {
	Type      string `json:"type"`
	Seq       uint64 `json:"seq,omitempty"`
	Command   string `json:"command,omitempty"`
	Direction string `json:"direction,omitempty"`
	Arg       string `json:"arg,omitempty"`
	Emote     string `json:"emote,omitempty"`
	// Line is a free-form command as typed at the terminal prompt.
	Line string `json:"line,omitempty"`
}

type helloMessage struct {
	Ver    int    `json:"ver"`
	Type   string `json:"type"`
	Player string `json:"player"`
}

type commandAckMessage struct {
	Ver      int      `json:"ver"`
	Type     string   `json:"type"`
	Seq      uint64   `json:"seq"`
	Messages []string `json:"messages,omitempty"`
}

type commandRejectMessage struct {
	Ver      int      `json:"ver"`
	Type     string   `json:"type"`
	Seq      uint64   `json:"seq"`
	Reason   string   `json:"reason"`
	Messages []string `json:"messages,omitempty"`
}

type noticeMessage struct {
	Ver  int    `json:"ver"`
	Type string `json:"type"`
	Kind string `json:"kind"`
	From string `json:"from,omitempty"`
	Text string `json:"text,omitempty"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type playerState struct {
	Name   string `json:"name"`
	Pos    point  `json:"pos"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"maxHp"`
	Gold   int    `json:"gold"`
	Moved  bool   `json:"moved,omitempty"`
	Facing string `json:"facing"`
}

type monsterState struct {
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
	Pos   point  `json:"pos"`
	HP    int    `json:"hp"`
	Stun  int    `json:"stun,omitempty"`
}

type treasureState struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
	Pos   point  `json:"pos"`
}

type stateMessage struct {
	Ver       int             `json:"ver"`
	Type      string          `json:"type"`
	Mode      string          `json:"mode"` // "none", "solo" or "party"
	CrawlID   uint32          `json:"crawlId,omitempty"`
	Floor     int             `json:"floor"`
	Theme     string          `json:"theme,omitempty"`
	Turn      int             `json:"turn"`
	Round     int             `json:"round,omitempty"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Players   []playerState   `json:"players,omitempty"`
	Monsters  []monsterState  `json:"monsters,omitempty"`
	Treasures []treasureState `json:"treasures,omitempty"`
	Obstacles []point         `json:"obstacles,omitempty"`
	Key       *point          `json:"key,omitempty"`
	Exit      *point          `json:"exit,omitempty"`
}

func noticeKind(k game.NoticeKind) string {
	switch k {
	case game.NoticeEmote:
		return "emote"
	case game.NoticeParty:
		return "party"
	}
	return "alert"
}

func floorState(f *dungeon.Floor) stateMessage {
	s := stateMessage{
		Ver:    ProtocolVersion,
		Type:   "state",
		Floor:  f.Number + 1,
		Theme:  f.Theme.String(),
		Turn:   f.Turn,
		Width:  f.Width,
		Height: f.Height,
	}
	for _, m := range f.Monsters {
		if !m.Alive() {
			continue
		}
		s.Monsters = append(s.Monsters, monsterState{
			Kind:  m.Kind.Info().Slug,
			Glyph: m.Kind.Info().Glyph,
			Pos:   point{m.Pos.X, m.Pos.Y},
			HP:    m.Health.Current,
			Stun:  m.Stun,
		})
	}
	for _, t := range f.Treasures {
		s.Treasures = append(s.Treasures, treasureState{Kind: t.Kind.String(), Value: t.Value, Pos: point{t.Pos.X, t.Pos.Y}})
	}
	for _, o := range f.Obstacles {
		s.Obstacles = append(s.Obstacles, point{o.Pos.X, o.Pos.Y})
	}
	if f.ExitKey != nil {
		s.Key = &point{f.ExitKey.X, f.ExitKey.Y}
	}
	if f.Exit != nil {
		s.Exit = &point{f.Exit.X, f.Exit.Y}
	}
	return s
}

func soloState(name string, d *dungeon.Dungeon) stateMessage {
	s := floorState(&d.Floor)
	s.Mode = "solo"
	s.CrawlID = d.CrawlID
	s.Players = []playerState{{
		Name:   name,
		Pos:    point{d.Player.Pos.X, d.Player.Pos.Y},
		HP:     d.Player.Health.Current,
		MaxHP:  d.Player.Health.Max,
		Gold:   d.Player.Gold,
		Facing: d.Player.Facing.String(),
	}}
	return s
}

func partyState(p *dungeon.Party) stateMessage {
	s := floorState(&p.Floor)
	s.Mode = "party"
	s.CrawlID = p.CrawlID
	s.Round = p.Round
	for _, id := range p.IDs() {
		c := p.Players[id]
		s.Players = append(s.Players, playerState{
			Name:   id,
			Pos:    point{c.Player.Pos.X, c.Player.Pos.Y},
			HP:     c.Player.Health.Current,
			MaxHP:  c.Player.Health.Max,
			Gold:   c.Player.Gold,
			Moved:  c.NextRound > p.Round,
			Facing: c.Player.Facing.String(),
		})
	}
	return s
}
