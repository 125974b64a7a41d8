package dungeon

// Theme is the cosmetic dressing of a floor. It also selects the monster table.
type Theme uint8

const (
	Castle Theme = iota
	Crypt
	Pirate
	Forest
	IceCave
	Arctic
)

// Themes lists every theme with equal weight.
var Themes = []Theme{Castle, Crypt, Pirate, Forest, IceCave, Arctic}

// WinterThemes is the seasonal theme table, heavily weighted to the cold themes.
var WinterThemes = []Theme{
	Castle, Crypt, Pirate, Forest,
	IceCave, IceCave, IceCave, IceCave,
	Arctic, Arctic, Arctic, Arctic,
	IceCave, IceCave, IceCave, IceCave,
	Arctic, Arctic, Arctic, Arctic,
}

func (t Theme) String() string {
	switch t {
	case Castle:
		return "Castle"
	case Crypt:
		return "Crypt"
	case Pirate:
		return "Pirate"
	case Forest:
		return "Forest"
	case IceCave:
		return "Ice Cave"
	case Arctic:
		return "Arctic"
	}
	return "Unknown"
}

// Cold reports whether the theme belongs to the winter set.
func (t Theme) Cold() bool { return t == IceCave || t == Arctic }
