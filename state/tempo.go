package state

const (
	MinTempo = 1
	MaxTempo = 999
)

// tempoPair holds the committed and staged tempo. Both locks are only ever
// taken together through withBoth, selected first.
type tempoPair struct {
	selected  cell[uint16]
	candidate cell[uint16]
}

func (p *tempoPair) withBoth(fn func(selected, candidate *uint16)) {
	p.selected.mu.Lock()
	defer p.selected.mu.Unlock()
	p.candidate.mu.Lock()
	defer p.candidate.mu.Unlock()
	fn(&p.selected.v, &p.candidate.v)
}

// clampTempo adds delta to current and saturates at [MinTempo, MaxTempo].
func clampTempo(current uint16, delta int) uint16 {
	switch {
	case delta >= MaxTempo:
		return MaxTempo
	case delta <= -MaxTempo:
		return MinTempo
	}

	next := int(current) + delta
	if next > MaxTempo {
		return MaxTempo
	}
	if next < MinTempo {
		return MinTempo
	}
	return uint16(next)
}

func validTempo(t uint16) bool {
	return t >= MinTempo && t <= MaxTempo
}

// AdjustCandidate moves the staged tempo by delta. The selected tempo is not
// touched until Commit.
func (s *Store) AdjustCandidate(delta int) {
	s.tempo.candidate.update(func(c uint16) uint16 {
		return clampTempo(c, delta)
	})
}

// Commit copies the candidate tempo into the selected tempo.
func (s *Store) Commit() {
	s.tempo.withBoth(func(selected, candidate *uint16) {
		*selected = *candidate
	})
}

// RevertCandidate discards any staged edit.
func (s *Store) RevertCandidate() {
	s.tempo.withBoth(func(selected, candidate *uint16) {
		*candidate = *selected
	})
}

// IsCommitted reports whether no staged edit is pending.
func (s *Store) IsCommitted() bool {
	var equal bool
	s.tempo.withBoth(func(selected, candidate *uint16) {
		equal = *selected == *candidate
	})
	return equal
}

func (s *Store) Selected() uint16 {
	return s.tempo.selected.load()
}

func (s *Store) Candidate() uint16 {
	return s.tempo.candidate.load()
}
