package component

// MonsterKind is the closed set of monster species.
type MonsterKind uint8

const (
	GreenGoblin MonsterKind = iota
	OrangeGoblin
	YellowBlob
	BlueBlob
	RedBlob
	Shade
	Spider
	Ghost
	SpectralGhost
	Zombie
	EvilTurbi
	IceYeti
	Snowman
)

// KindInfo is the static table entry for one monster kind.
type KindInfo struct {
	Name     string
	Abbrev   string
	Slug     string
	Glyph    string
	Health   int
	Strength int
}

var kindInfo = [...]KindInfo{
	GreenGoblin:   {"Green Goblin", "G. Goblin", "green_goblin", "👺", 2, 1},
	OrangeGoblin:  {"Orange Goblin", "O. Goblin", "orange_goblin", "👹", 5, 1},
	YellowBlob:    {"Yellow Blob", "Y. Blob", "yellow_blob", "🟡", 2, 1},
	BlueBlob:      {"Blue Blob", "B. Blob", "blue_blob", "🔵", 1, 1},
	RedBlob:       {"Red Blob", "R. Blob", "red_blob", "🔴", 3, 2},
	Shade:         {"Shade", "Shade", "shade", "🌑", 3, 2},
	Spider:        {"Spider", "Spider", "spider", "🕷️", 4, 2},
	Ghost:         {"Ghost", "Ghost", "ghost", "👻", 2, 2},
	SpectralGhost: {"Spectral Ghost", "S. Ghost", "spectral_ghost", "💀", 1, 1},
	Zombie:        {"Zombie", "Zombie", "zombie", "🧟", 3, 3},
	EvilTurbi:     {"Evil Turbi", "E. Turbi", "evil_turbi", "😈", 3, 3},
	IceYeti:       {"Ice Yeti", "Ice Yeti", "ice_yeti", "🦍", 6, 2},
	Snowman:       {"Snowman", "Snowman", "snowman", "⛄", 3, 3},
}

// MonsterKinds lists every kind in declaration order.
var MonsterKinds = []MonsterKind{
	GreenGoblin, OrangeGoblin, YellowBlob, BlueBlob, RedBlob, Shade, Spider,
	Ghost, SpectralGhost, Zombie, EvilTurbi, IceYeti, Snowman,
}

// Info returns the table entry for k. Unknown kinds get a 1/1 placeholder.
func (k MonsterKind) Info() KindInfo {
	if int(k) < len(kindInfo) {
		return kindInfo[k]
	}
	return KindInfo{Name: "Unknown", Abbrev: "???", Slug: "unknown", Glyph: "❓", Health: 1, Strength: 1}
}

func (k MonsterKind) String() string { return k.Info().Name }

// Monster is one hostile actor. Dead monsters stay in the floor's slice with
// zero health so indices remain stable for the rest of the floor.
type Monster struct {
	Pos      Position
	Health   Health
	Strength int
	Facing   Direction
	Kind     MonsterKind
	Stun     int
}

// NewMonster returns a fresh monster of kind k with its base stats.
func NewMonster(k MonsterKind, pos Position) Monster {
	info := k.Info()
	return Monster{
		Pos:      pos,
		Health:   Health{Current: info.Health, Max: info.Health},
		Strength: info.Strength,
		Facing:   DirDown,
		Kind:     k,
	}
}

func (m *Monster) Alive() bool   { return m.Health.Alive() }
func (m *Monster) Stunned() bool { return m.Stun > 0 }
