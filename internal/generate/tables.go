package generate

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"math/rand"
)

// MonsterWeight is one entry of a weighted spawn table.
type MonsterWeight struct {
	Weight int
	Kind   component.MonsterKind
}

// EvilTurbiFloor is the first one-based floor on which Evil Turbi may spawn.
const EvilTurbiFloor = 20

var themeMonsters = map[dungeon.Theme][]MonsterWeight{
	dungeon.Castle: {
		{2, component.BlueBlob},
		{1, component.GreenGoblin},
		{1, component.OrangeGoblin},
	},
	dungeon.Crypt: {
		{3, component.Ghost},
		{2, component.Shade},
		{1, component.Zombie},
	},
	dungeon.Pirate: {
		{1, component.Shade},
		{2, component.OrangeGoblin},
		{1, component.Zombie},
	},
	dungeon.Forest: {
		{1, component.YellowBlob},
		{1, component.RedBlob},
		{2, component.Spider},
	},
	dungeon.IceCave: {
		{3, component.GreenGoblin},
		{2, component.Ghost},
		{1, component.BlueBlob},
	},
	dungeon.Arctic: {
		{3, component.GreenGoblin},
		{2, component.Shade},
		{1, component.Spider},
	},
}

// MonsterTable returns the spawn table for a floor. floor is zero-based.
func MonsterTable(theme dungeon.Theme, floor int, winter bool) []MonsterWeight {
	table := append([]MonsterWeight(nil), themeMonsters[theme]...)
	if winter {
		table = append(table, MonsterWeight{1, component.Snowman})
		if theme.Cold() {
			table = append(table, MonsterWeight{1, component.IceYeti})
		}
	}
	if floor+1 >= EvilTurbiFloor {
		table = append(table, MonsterWeight{3, component.EvilTurbi})
	}
	return table
}

// PickMonster draws a kind from table by weight.
func PickMonster(table []MonsterWeight, rng *rand.Rand) component.MonsterKind {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	if total <= 0 {
		return component.GreenGoblin
	}
	roll := rng.Intn(total)
	for _, e := range table {
		if roll < e.Weight {
			return e.Kind
		}
		roll -= e.Weight
	}
	return component.GreenGoblin
}

// PickTheme draws the theme of the next floor.
func PickTheme(rng *rand.Rand, winter bool) dungeon.Theme {
	table := dungeon.Themes
	if winter {
		table = dungeon.WinterThemes
	}
	return table[rng.Intn(len(table))]
}

// StartTheme is the theme of a fresh crawl's first floor.
func StartTheme(winter bool) dungeon.Theme {
	if winter {
		return dungeon.Arctic
	}
	return dungeon.Castle
}
