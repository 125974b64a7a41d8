package generate

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/gamemap"
	"fmt"
	"math/rand"
	"testing"
)

func mazeMap(w, h int, walls []component.Position) *gamemap.GameMap {
	m := gamemap.New(w, h)
	for _, p := range walls {
		m.Set(p.X, p.Y, gamemap.MakeWall())
	}
	return m
}

// TestMazeConnected verifies by flood fill that every open cell of a maze is
// reachable, both with all walls and with a random third of them skipped.
func TestMazeConnected(t *testing.T) {
	for w := 5; w <= 17; w++ {
		for h := 5; h <= 17; h += 3 {
			for seed := int64(0); seed < 8; seed++ {
				rng := rand.New(rand.NewSource(seed))
				walls := Maze(w, h, rng)
				if len(walls) == 0 {
					t.Fatalf("%dx%d seed=%d: no walls generated", w, h, seed)
				}
				if !mazeMap(w, h, walls).Connected() {
					t.Fatalf("%dx%d seed=%d: maze is not connected", w, h, seed)
				}
				var kept []component.Position
				for _, p := range walls {
					if rng.Intn(3) != 0 {
						kept = append(kept, p)
					}
				}
				if !mazeMap(w, h, kept).Connected() {
					t.Fatalf("%dx%d seed=%d: thinned maze is not connected", w, h, seed)
				}
			}
		}
	}
}

func TestMazeWallsInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, p := range Maze(9, 7, rng) {
		if p.X < 0 || p.Y < 0 || p.X >= 9 || p.Y >= 7 {
			t.Fatalf("wall %v out of bounds", p)
		}
	}
	if Maze(3, 3, rng) != nil {
		t.Fatal("a 3x3 region is too small to divide")
	}
}

func TestMonsterTable(t *testing.T) {
	has := func(table []MonsterWeight, k component.MonsterKind) bool {
		for _, e := range table {
			if e.Kind == k {
				return true
			}
		}
		return false
	}
	if got := MonsterTable(dungeon.Castle, 3, false); len(got) != 3 {
		t.Fatalf("castle table = %v", got)
	}
	if !has(MonsterTable(dungeon.Crypt, 0, true), component.Snowman) {
		t.Error("winter floors spawn snowmen")
	}
	if has(MonsterTable(dungeon.Crypt, 0, true), component.IceYeti) {
		t.Error("yetis only spawn on cold themes")
	}
	if !has(MonsterTable(dungeon.Arctic, 0, true), component.IceYeti) {
		t.Error("winter arctic floors spawn yetis")
	}
	if has(MonsterTable(dungeon.Forest, EvilTurbiFloor-2, false), component.EvilTurbi) {
		t.Error("evil turbi too early")
	}
	if !has(MonsterTable(dungeon.Forest, EvilTurbiFloor-1, false), component.EvilTurbi) {
		t.Error("evil turbi missing on its floor")
	}
}

func TestPickMonsterRespectsTable(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	table := MonsterTable(dungeon.Forest, 1, false)
	counts := map[component.MonsterKind]int{}
	for range 4000 {
		counts[PickMonster(table, rng)]++
	}
	if len(counts) != 3 {
		t.Fatalf("picked kinds = %v", counts)
	}
	// Spider has weight 2 of 4.
	if c := counts[component.Spider]; c < 1700 || c > 2300 {
		t.Fatalf("spider picked %d of 4000", c)
	}
}

func TestPopulateNoOverlap(t *testing.T) {
	for floor := 0; floor < 12; floor++ {
		for seed := int64(0); seed < 10; seed++ {
			t.Run(fmt.Sprintf("floor%d/seed%d", floor, seed), func(t *testing.T) {
				rng := rand.New(rand.NewSource(seed))
				size := dungeon.StartWidth + 2*(floor/3)
				f := &dungeon.Floor{Number: floor, Width: size, Height: size, Theme: PickTheme(rng, true)}
				p := component.NewPlayer(component.Position{X: rng.Intn(size), Y: rng.Intn(size)}, 8, 1)
				b := dungeon.NewBoard(f, &p)
				if err := Populate(b, &Config{Winter: true, Rand: rng}); err != nil {
					t.Fatal(err)
				}
				if f.ExitKey == nil || f.Exit != nil {
					t.Fatalf("key %v exit %v", f.ExitKey, f.Exit)
				}
				if floor == 0 && (len(f.Monsters) != 0 || len(f.Treasures) != 0) {
					t.Fatal("first floor spawns nothing but the key")
				}
				if floor > 0 && len(f.Monsters) != 2+f.Magic()/2 {
					t.Fatalf("monsters = %d", len(f.Monsters))
				}

				cells := map[component.Position]string{p.Pos: "player", *f.ExitKey: "key"}
				claim := func(pos component.Position, what string) {
					if f.IsOutOfBounds(pos) {
						t.Fatalf("%s out of bounds at %v", what, pos)
					}
					if prev, ok := cells[pos]; ok {
						t.Fatalf("%s overlaps %s at %v", what, prev, pos)
					}
					cells[pos] = what
				}
				for _, m := range f.Monsters {
					claim(m.Pos, m.Kind.String())
				}
				for _, tr := range f.Treasures {
					claim(tr.Pos, "treasure")
				}
				for _, o := range f.Obstacles {
					claim(o.Pos, "obstacle")
				}
				if n := len(f.Treasures); n > 0 && f.Treasures[n-1].Kind != component.TreasureHeal {
					t.Fatal("last treasure should heal")
				}
			})
		}
	}
}

func TestPopulateKeyReachable(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		f := &dungeon.Floor{Number: 4, Width: 9, Height: 9, Theme: dungeon.Castle}
		p := component.NewPlayer(component.Position{X: 0, Y: 0}, 8, 1)
		b := dungeon.NewBoard(f, &p)
		if err := Populate(b, &Config{Rand: rng}); err != nil {
			t.Fatal(err)
		}
		m := gamemap.New(f.Width, f.Height)
		for _, o := range f.Obstacles {
			m.Set(o.Pos.X, o.Pos.Y, gamemap.MakeWall())
		}
		if !m.Reachable(p.Pos).Has(*f.ExitKey) {
			t.Fatalf("seed %d: key %v unreachable from %v", seed, *f.ExitKey, p.Pos)
		}
	}
}
