// Package state is the shared state of the metronome controller. Every task
// (timing, input, display) reads and writes it through a single *Store.
//
// Each value lives in its own lock. The only operations holding more than one
// lock are Commit, RevertCandidate and IsCommitted, and they always take the
// selected tempo lock before the candidate tempo lock. New operations touching
// more than one cell must keep that order.
package state

import (
	"github.com/pkg/errors"
)

// ErrInit is returned by New when the store cannot be built. It is fatal.
var ErrInit = errors.New("state: initialization failed")

// Config is the externally supplied configuration of the store.
type Config struct {
	// BeatsPerMeasure maps a signature mode index to its beat count.
	BeatsPerMeasure  []int
	DefaultTempo     uint16
	DefaultSignature int
}

type Store struct {
	beatsPerMeasure []int

	power     cell[Power]
	tempo     tempoPair
	signature cell[int]
	beat      cell[int]
}

// New validates cfg and returns a store powered on, at the default tempo and
// signature, on beat 1.
func New(cfg Config) (*Store, error) {
	if len(cfg.BeatsPerMeasure) == 0 {
		return nil, errors.Wrap(ErrInit, "no signature modes configured")
	}
	for i, n := range cfg.BeatsPerMeasure {
		if n < 1 {
			return nil, errors.Wrapf(ErrInit, "signature mode %d has %d beats per measure", i, n)
		}
	}
	if !validTempo(cfg.DefaultTempo) {
		return nil, errors.Wrapf(ErrInit, "default tempo %d outside [%d, %d]", cfg.DefaultTempo, MinTempo, MaxTempo)
	}
	if cfg.DefaultSignature < 0 || cfg.DefaultSignature >= len(cfg.BeatsPerMeasure) {
		return nil, errors.Wrapf(ErrInit, "default signature mode %d outside [0, %d)", cfg.DefaultSignature, len(cfg.BeatsPerMeasure))
	}

	s := &Store{
		beatsPerMeasure: append([]int(nil), cfg.BeatsPerMeasure...),
	}
	s.power.v = On
	s.tempo.selected.v = cfg.DefaultTempo
	s.tempo.candidate.v = cfg.DefaultTempo
	s.signature.v = cfg.DefaultSignature
	s.beat.v = 1
	return s, nil
}

// SignatureCount is the number of configured signature modes.
func (s *Store) SignatureCount() int {
	return len(s.beatsPerMeasure)
}

// Snapshot is a copy of every cell, for display.
type Snapshot struct {
	Power           Power
	Selected        uint16
	Candidate       uint16
	SignatureMode   int
	BeatsPerMeasure int
	Beat            int
}

// Snapshot reads each cell in turn. It is not atomic across cells: a tick or
// key press between two reads is visible in the result.
func (s *Store) Snapshot() Snapshot {
	mode := s.SignatureMode()
	return Snapshot{
		Power:           s.PowerState(),
		Selected:        s.Selected(),
		Candidate:       s.Candidate(),
		SignatureMode:   mode,
		BeatsPerMeasure: s.beatsPerMeasure[mode],
		Beat:            s.Beat(),
	}
}
