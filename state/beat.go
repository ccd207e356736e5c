package state

// AdvanceSignature selects the next signature mode, wrapping to 0 after the
// last configured one.
func (s *Store) AdvanceSignature() {
	n := len(s.beatsPerMeasure)
	s.signature.update(func(mode int) int {
		return (mode + 1) % n
	})
}

func (s *Store) SignatureMode() int {
	return s.signature.load()
}

// BeatsPerMeasure returns the beat count of the current signature mode.
func (s *Store) BeatsPerMeasure() int {
	return s.beatsPerMeasure[s.SignatureMode()]
}

// AdvanceBeat moves the beat counter forward, back to 1 once it reaches the
// measure length.
//
// The bound is read before the beat lock is taken, so a concurrent
// AdvanceSignature may leave it one change behind. A counter left above a
// shrunken bound is reset on the following call.
func (s *Store) AdvanceBeat() {
	bound := s.BeatsPerMeasure()
	s.beat.update(func(b int) int {
		if b >= bound {
			return 1
		}
		return b + 1
	})
}

func (s *Store) Beat() int {
	return s.beat.load()
}
