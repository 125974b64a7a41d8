package progress

import (
	"dungeon-crawl/internal/component"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/zyedidia/generic/mapset"
)

// AchievementID is the stable numeric identifier of an achievement.
// Retired ids (38, 39, 42, 46, 47) are never reused.
type AchievementID uint32

const (
	WelcomeToTheDungeon AchievementID = 1
	GoldGatherer        AchievementID = 2
	SpaDay              AchievementID = 3
	MonsterMenace       AchievementID = 4
	DungeonDiver        AchievementID = 5
	DungeonHobbyist     AchievementID = 6
	DungeonExplorer     AchievementID = 7
	DungeonConqueror    AchievementID = 8
	Unbothered          AchievementID = 9
	Survivalist         AchievementID = 10
	GritAndGlory        AchievementID = 11
	Unbreakable         AchievementID = 12
	TreasureSeeker      AchievementID = 13
	WealthAccumulator   AchievementID = 14
	RichAdventurer      AchievementID = 15
	MonsterSlayer       AchievementID = 16
	MonsterVanquisher   AchievementID = 17
	MonsterExterminator AchievementID = 18
	Pedestrian          AchievementID = 19
	Wanderer            AchievementID = 20
	Traveler            AchievementID = 21
	GoblinSlayer        AchievementID = 22
	OrangeMenace        AchievementID = 23
	BlobBuster          AchievementID = 24
	ShadeHunter         AchievementID = 25
	SpiderSquasher      AchievementID = 26
	Ghostbuster         AchievementID = 27
	ZombieSlayer        AchievementID = 28
	GoblinFodder        AchievementID = 29
	Haunted             AchievementID = 30
	Arachnophobia       AchievementID = 31
	Blobbed             AchievementID = 32
	NoviceExplorer      AchievementID = 33
	SeasonedExplorer    AchievementID = 34
	VeteranExplorer     AchievementID = 35
	ReturningAdventurer AchievementID = 36
	DedicatedDelver     AchievementID = 37
	SelfCare            AchievementID = 40
	HealerSupreme       AchievementID = 41
	BlueBlobBuster      AchievementID = 43
	SpectralBanisher    AchievementID = 44
	ZombieHunter        AchievementID = 45
	MasterOfTheDeep     AchievementID = 48
	GoldHoarder         AchievementID = 49
	GoldCollector       AchievementID = 50
	DeadBroke           AchievementID = 51
)

// Predicate decides an achievement from the crawl stats, the lifetime stats
// and whether the crawl has just ended.
type Predicate func(crawl, total *Stats, crawlEnd bool) bool

// AchievementInfo is one row of the achievement table.
type AchievementInfo struct {
	ID          AchievementID
	Name        string
	Description string
	Test        Predicate
}

func totalAtLeast(key StatKey, n int) Predicate {
	return func(_, total *Stats, _ bool) bool { return total.Get(key) >= n }
}

func crawlAtLeast(key StatKey, n int) Predicate {
	return func(crawl, _ *Stats, _ bool) bool { return crawl.Get(key) >= n }
}

func floorsWithoutHealing(n int) Predicate {
	return func(crawl, _ *Stats, _ bool) bool {
		return crawl.Get(FloorsCleared) >= n && crawl.Get(HealthRecovered) == 0
	}
}

func monstersAtLeast(n int) Predicate {
	return func(_, total *Stats, _ bool) bool { return total.MonstersDefeated() >= n }
}

func killsAtLeast(k component.MonsterKind, n int) Predicate {
	return func(_, total *Stats, _ bool) bool { return total.Kills(k) >= n }
}

func deathsAtLeast(k component.MonsterKind, n int) Predicate {
	return func(_, total *Stats, _ bool) bool { return total.DeathsBy(k) >= n }
}

// Achievements lists every live achievement in display order.
var Achievements = []AchievementInfo{
	// crawls completed (all-time)
	{WelcomeToTheDungeon, "Welcome to the Dungeon", "Complete your first crawl!", totalAtLeast(CrawlsCompleted, 1)},
	{ReturningAdventurer, "Returning Adventurer", "Complete 2 crawls", totalAtLeast(CrawlsCompleted, 2)},
	{DedicatedDelver, "Dedicated Delver", "Complete 5 crawls", totalAtLeast(CrawlsCompleted, 5)},

	// floors cleared (all-time)
	{NoviceExplorer, "Novice Explorer", "Clear 100 floors total", totalAtLeast(FloorsCleared, 100)},
	{SeasonedExplorer, "Seasoned Explorer", "Clear 500 floors total", totalAtLeast(FloorsCleared, 500)},
	{VeteranExplorer, "Veteran Explorer", "Clear 1,000 floors total", totalAtLeast(FloorsCleared, 1000)},
	{MasterOfTheDeep, "Master of the Deep", "Clear 5,000 floors total", totalAtLeast(FloorsCleared, 5000)},

	// floors cleared (per crawl)
	{DungeonDiver, "Dungeon Diver", "Reach floor 5", crawlAtLeast(FloorsCleared, 5)},
	{DungeonHobbyist, "Dungeon Hobbyist", "Reach floor 10", crawlAtLeast(FloorsCleared, 10)},
	{DungeonExplorer, "Dungeon Explorer", "Reach floor 15", crawlAtLeast(FloorsCleared, 15)},
	{DungeonConqueror, "Dungeon Conqueror", "Reach floor 20", crawlAtLeast(FloorsCleared, 20)},

	// steps (all-time)
	{Pedestrian, "Pedestrian", "Take 1000 steps", totalAtLeast(StepsMoved, 1000)},
	{Wanderer, "Wanderer", "Take 5000 steps", totalAtLeast(StepsMoved, 5000)},
	{Traveler, "Traveler", "Take 10,000 steps", totalAtLeast(StepsMoved, 10000)},

	// gold (all-time)
	{GoldGatherer, "Gold Gatherer", "Collect 1,250 gold", totalAtLeast(GoldCollected, 1250)},
	{TreasureSeeker, "Treasure Seeker", "Collect 2,500 gold", totalAtLeast(GoldCollected, 2500)},
	{WealthAccumulator, "Wealth Accumulator", "Collect 3,750 gold", totalAtLeast(GoldCollected, 3750)},
	{RichAdventurer, "Rich Adventurer", "Collect 5,000 gold", totalAtLeast(GoldCollected, 5000)},

	// gold (per crawl)
	{GoldCollector, "Gold Collector", "Collect 100 gold in one crawl", crawlAtLeast(GoldCollected, 100)},
	{GoldHoarder, "Gold Hoarder", "Collect 500 gold in one crawl", crawlAtLeast(GoldCollected, 500)},
	{DeadBroke, "Dead Broke", "Collect 0 gold in one crawl", func(crawl, _ *Stats, crawlEnd bool) bool {
		return crawlEnd && crawl.Get(GoldCollected) == 0
	}},

	// healing (all-time)
	{SelfCare, "Self Care", "Recover 20 health", totalAtLeast(HealthRecovered, 20)},
	{SpaDay, "Spa Day", "Recover 100 health", totalAtLeast(HealthRecovered, 100)},
	{HealerSupreme, "Healer Supreme", "Recover 250 health", totalAtLeast(HealthRecovered, 250)},

	// no healing (per crawl)
	{Unbothered, "Unbothered", "Reach floor 5 without healing", floorsWithoutHealing(5)},
	{Survivalist, "Survivalist", "Reach floor 10 without healing", floorsWithoutHealing(10)},
	{GritAndGlory, "Grit & Glory", "Reach floor 15 without healing", floorsWithoutHealing(15)},
	{Unbreakable, "Unbreakable", "Reach floor 20 without healing", floorsWithoutHealing(20)},

	// monsters defeated (all-time)
	{MonsterMenace, "Monster Menace", "Defeat 10 monsters", monstersAtLeast(10)},
	{MonsterSlayer, "Monster Slayer", "Defeat 25 monsters", monstersAtLeast(25)},
	{MonsterVanquisher, "Monster Vanquisher", "Defeat 50 monsters", monstersAtLeast(50)},
	{MonsterExterminator, "Monster Exterminator", "Defeat 100 monsters", monstersAtLeast(100)},

	// specific kills (all-time)
	{GoblinSlayer, "Goblin Slayer", "Defeat 50 Green Goblins", killsAtLeast(component.GreenGoblin, 50)},
	{OrangeMenace, "Orange Menace", "Defeat 50 Orange Goblins", killsAtLeast(component.OrangeGoblin, 50)},
	{BlobBuster, "Blob Buster", "Defeat 50 Yellow Blobs", killsAtLeast(component.YellowBlob, 50)},
	{ShadeHunter, "Shade Hunter", "Defeat 50 Shades", killsAtLeast(component.Shade, 50)},
	{SpiderSquasher, "Spider Squasher", "Defeat 50 Spiders", killsAtLeast(component.Spider, 50)},
	{Ghostbuster, "Ghostbuster", "Defeat 50 Ghosts", killsAtLeast(component.Ghost, 50)},
	{ZombieSlayer, "Zombie Slayer", "Defeat 50 Zombies", killsAtLeast(component.Zombie, 50)},
	{BlueBlobBuster, "Blue Blob Buster", "Defeat 50 Blue Blobs", killsAtLeast(component.BlueBlob, 50)},
	{ZombieHunter, "Zombie Hunter", "Defeat 50 Zombies", killsAtLeast(component.Zombie, 50)},
	{SpectralBanisher, "Spectral Banisher", "Defeat 5 Spectral Ghosts", killsAtLeast(component.SpectralGhost, 5)},

	// deaths by kind (all-time)
	{GoblinFodder, "Goblin Fodder", "Defeated by Green Goblin 5 times", deathsAtLeast(component.GreenGoblin, 5)},
	{Haunted, "Haunted", "Defeated by Ghost 5 times", deathsAtLeast(component.Ghost, 5)},
	{Arachnophobia, "Arachnophobia", "Defeated by Spider 5 times", deathsAtLeast(component.Spider, 5)},
	{Blobbed, "Blobbed", "Defeated by Red Blob 5 times", deathsAtLeast(component.RedBlob, 5)},
}

// Lookup returns the table row for id.
func Lookup(id AchievementID) (AchievementInfo, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementInfo{}, false
}

// ─── sets ───────────────────────────────────────────────────────────────────

// AchievementSet is an immutable-by-convention set of achievement ids.
// Set operations return new sets.
type AchievementSet struct {
	ids mapset.Set[AchievementID]
}

// NewAchievementSet builds a set from ids.
func NewAchievementSet(ids ...AchievementID) AchievementSet {
	s := mapset.New[AchievementID]()
	for _, id := range ids {
		s.Put(id)
	}
	return AchievementSet{ids: s}
}

// Satisfied returns every achievement whose predicate currently holds.
func Satisfied(crawl, total *Stats, crawlEnd bool) AchievementSet {
	out := NewAchievementSet()
	for _, a := range Achievements {
		if a.Test(crawl, total, crawlEnd) {
			out.ids.Put(a.ID)
		}
	}
	return out
}

func (s AchievementSet) Has(id AchievementID) bool { return s.ids.Has(id) }
func (s AchievementSet) Len() int                  { return s.ids.Size() }
func (s AchievementSet) Empty() bool               { return s.Len() == 0 }

// IDs returns the members in ascending order.
func (s AchievementSet) IDs() []AchievementID {
	out := make([]AchievementID, 0, s.Len())
	s.ids.Each(func(id AchievementID) { out = append(out, id) })
	slices.Sort(out)
	return out
}

// Union returns s ∪ other.
func (s AchievementSet) Union(other AchievementSet) AchievementSet {
	out := NewAchievementSet(s.IDs()...)
	other.ids.Each(func(id AchievementID) { out.ids.Put(id) })
	return out
}

// Difference returns s \ other.
func (s AchievementSet) Difference(other AchievementSet) AchievementSet {
	out := NewAchievementSet()
	s.ids.Each(func(id AchievementID) {
		if !other.Has(id) {
			out.ids.Put(id)
		}
	})
	return out
}

// Apply returns s ∪ Satisfied(crawl, total, crawlEnd).
func (s AchievementSet) Apply(crawl, total *Stats, crawlEnd bool) AchievementSet {
	return s.Union(Satisfied(crawl, total, crawlEnd))
}

// Names renders the set as achievement names, for logs and alerts.
func (s AchievementSet) Names() []string {
	var out []string
	for _, id := range s.IDs() {
		if a, ok := Lookup(id); ok {
			out = append(out, a.Name)
		}
	}
	return out
}

func (s AchievementSet) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.IDs())
}

func (s *AchievementSet) UnmarshalCBOR(data []byte) error {
	var ids []AchievementID
	if err := cbor.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("decode achievement set: %w", err)
	}
	*s = NewAchievementSet(ids...)
	return nil
}

// Unlock runs one evaluation of the unlock flow.
//
// next is the crawl's unlocked set after evaluation and never intersects
// allTime. fresh holds the ids that were not known before this call, either
// for the crawl or all-time, and is what callers should announce.
func Unlock(unlocked, allTime AchievementSet, crawl, total *Stats, crawlEnd bool) (next, fresh AchievementSet) {
	applied := unlocked.Apply(crawl, total, crawlEnd)
	fresh = applied.Difference(unlocked.Union(allTime))
	next = applied.Difference(allTime)
	return next, fresh
}
