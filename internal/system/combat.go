package system

import "dungeon-crawl/internal/component"

// Strike is a computed attack outcome, worked out before anything is mutated.
type Strike struct {
	Damage    int  // health actually removed
	Remaining int  // defender health after the hit
	Killed    bool // the hit took the defender from alive to 0
}

// ResolveStrike computes the effect of dmg against h without modifying it.
// Health saturates at 0, so Damage may be less than dmg.
func ResolveStrike(h component.Health, dmg int) Strike {
	after := h
	lost := after.Damage(dmg)
	return Strike{
		Damage:    lost,
		Remaining: after.Current,
		Killed:    h.Alive() && !after.Alive(),
	}
}

// Apply writes the strike's result back onto h.
func (s Strike) Apply(h *component.Health) {
	h.Current = s.Remaining
}

// facing returns the direction from a toward an orthogonally adjacent b.
func facing(a, b component.Position) component.Direction {
	switch {
	case b.X > a.X:
		return component.DirRight
	case b.X < a.X:
		return component.DirLeft
	case b.Y < a.Y:
		return component.DirUp
	}
	return component.DirDown
}
