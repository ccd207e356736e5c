package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{
		BeatsPerMeasure:  []int{4, 3},
		DefaultTempo:     120,
		DefaultSignature: 0,
	})
	require.NoError(t, err)
	return s
}

func TestNewDefaults(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, On, s.PowerState())
	assert.Equal(t, uint16(120), s.Selected())
	assert.Equal(t, uint16(120), s.Candidate())
	assert.Equal(t, 0, s.SignatureMode())
	assert.Equal(t, 1, s.Beat())
	assert.True(t, s.IsCommitted())
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty table", Config{DefaultTempo: 120}},
		{"zero beats", Config{BeatsPerMeasure: []int{4, 0}, DefaultTempo: 120}},
		{"tempo too low", Config{BeatsPerMeasure: []int{4}, DefaultTempo: 0}},
		{"tempo too high", Config{BeatsPerMeasure: []int{4}, DefaultTempo: 1000}},
		{"signature out of range", Config{BeatsPerMeasure: []int{4}, DefaultTempo: 120, DefaultSignature: 1}},
		{"negative signature", Config{BeatsPerMeasure: []int{4}, DefaultTempo: 120, DefaultSignature: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			require.ErrorIs(t, err, ErrInit)
			assert.Nil(t, s)
		})
	}
}

func TestNewCopiesTable(t *testing.T) {
	table := []int{4, 3}
	s, err := New(Config{BeatsPerMeasure: table, DefaultTempo: 120})
	require.NoError(t, err)

	table[0] = 7
	assert.Equal(t, 4, s.BeatsPerMeasure())
}

func TestScenario(t *testing.T) {
	s := newTestStore(t)

	s.AdjustCandidate(10)
	require.Equal(t, uint16(130), s.Candidate())
	require.Equal(t, uint16(120), s.Selected())

	s.Commit()
	require.Equal(t, uint16(130), s.Selected())

	s.AdvanceSignature()
	require.Equal(t, 1, s.SignatureMode())
	require.Equal(t, 3, s.BeatsPerMeasure())

	var beats []int
	for i := 0; i < 3; i++ {
		s.AdvanceBeat()
		beats = append(beats, s.Beat())
	}
	assert.Equal(t, []int{2, 3, 1}, beats)
}

func TestPowerToggleLeavesOtherCells(t *testing.T) {
	s := newTestStore(t)
	s.AdjustCandidate(-20)
	s.AdvanceSignature()
	s.AdvanceBeat()
	before := s.Snapshot()

	s.PowerOff()
	assert.Equal(t, Off, s.PowerState())
	s.PowerOn()
	assert.Equal(t, On, s.PowerState())

	assert.Equal(t, before, s.Snapshot())
}

func TestTogglePower(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, Off, s.TogglePower())
	assert.Equal(t, Off, s.PowerState())
	assert.Equal(t, On, s.TogglePower())
	assert.Equal(t, "ON", s.PowerState().String())
	assert.Equal(t, "OFF", Off.String())
}

func TestSignatureWrapsAfterFullCycle(t *testing.T) {
	s, err := New(Config{
		BeatsPerMeasure:  []int{4, 3, 2, 6, 5},
		DefaultTempo:     120,
		DefaultSignature: 2,
	})
	require.NoError(t, err)

	for i := 0; i < s.SignatureCount(); i++ {
		s.AdvanceSignature()
	}
	assert.Equal(t, 2, s.SignatureMode())
}

func TestBeatWrapsOncePerMeasure(t *testing.T) {
	for mode, n := range []int{4, 3} {
		s, err := New(Config{BeatsPerMeasure: []int{4, 3}, DefaultTempo: 120, DefaultSignature: mode})
		require.NoError(t, err)

		wraps := 0
		for i := 0; i < n; i++ {
			s.AdvanceBeat()
			if s.Beat() == 1 {
				wraps++
			}
		}
		assert.Equal(t, 1, s.Beat())
		assert.Equal(t, 1, wraps)
	}
}

func TestBeatResetsAfterSignatureShrinks(t *testing.T) {
	s := newTestStore(t)
	s.AdvanceBeat()
	s.AdvanceBeat()
	s.AdvanceBeat()
	require.Equal(t, 4, s.Beat())

	// 4/4 -> 3/4 leaves the counter past the new bound until the next tick.
	s.AdvanceSignature()
	assert.Equal(t, 4, s.Beat())

	s.AdvanceBeat()
	assert.Equal(t, 1, s.Beat())
}

func TestSnapshot(t *testing.T) {
	s := newTestStore(t)
	s.AdjustCandidate(5)
	s.AdvanceSignature()

	assert.Equal(t, Snapshot{
		Power:           On,
		Selected:        120,
		Candidate:       125,
		SignatureMode:   1,
		BeatsPerMeasure: 3,
		Beat:            1,
	}, s.Snapshot())
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	const n = 200
	wg.Add(5)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			s.AdjustCandidate(1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			s.Commit()
			s.RevertCandidate()
			s.IsCommitted()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			s.AdvanceBeat()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			s.AdvanceSignature()
			s.TogglePower()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			snap := s.Snapshot()
			assert.GreaterOrEqual(t, snap.Selected, uint16(MinTempo))
			assert.LessOrEqual(t, snap.Selected, uint16(MaxTempo))
			assert.GreaterOrEqual(t, snap.Beat, 1)
		}
	}()
	wg.Wait()

	// signature count is even and n is even, so mode and power are back.
	assert.Equal(t, 0, s.SignatureMode())
	assert.Equal(t, On, s.PowerState())
}
