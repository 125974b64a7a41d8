package component

// Health tracks hit points. Current never exceeds Max and never drops below 0.
type Health struct {
	Current, Max int
}

// Alive reports whether any hit points remain.
func (h Health) Alive() bool { return h.Current > 0 }

// Damage removes up to n hit points and returns how many were actually lost.
func (h *Health) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	prev := h.Current
	h.Current = max(h.Current-n, 0)
	return prev - h.Current
}

// Heal restores up to n hit points, capped at Max, and returns the amount restored.
func (h *Health) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	prev := h.Current
	h.Current = min(h.Current+n, h.Max)
	return h.Current - prev
}
