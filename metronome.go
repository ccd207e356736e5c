package main

import (
	"context"
	"time"

	"github.com/dimfu/clack-controller/state"
)

// Metronome is the timing task. It is the only caller of AdvanceBeat.
type Metronome struct {
	store   *state.Store
	clicker Clicker
}

func NewMetronome(store *state.Store, clicker Clicker) *Metronome {
	return &Metronome{store: store, clicker: clicker}
}

func beatInterval(tempo uint16) time.Duration {
	return time.Duration(60.0 / float64(tempo) * float64(time.Second))
}

// Tick plays the current beat and moves to the next one. Nothing happens while
// the controller is powered off.
func (m *Metronome) Tick() {
	if m.store.PowerState() == state.Off {
		return
	}

	audioIdx := CLICK_BEAT
	if m.store.Beat() == 1 {
		audioIdx = CLICK_ACCENT
	}
	m.clicker.PlayTick(audioIdx)
	m.store.AdvanceBeat()
}

const maxDrift = 10 * time.Millisecond

// nextDeadline returns when the beat after the one due at due should fire,
// given that it fired at now. Beats fire on a fixed grid while they stay
// within maxDrift of it; past that the grid restarts at now.
func nextDeadline(now, due time.Time, interval time.Duration) time.Time {
	drift := now.Sub(due)
	if drift > maxDrift || drift < -maxDrift {
		due = now
	}
	return due.Add(interval)
}

// Run ticks at the selected tempo until ctx is done. Only committed tempo
// changes reach the timer.
func (m *Metronome) Run(ctx context.Context) {
	tempo := m.store.Selected()
	interval := beatInterval(tempo)

	due := time.Now().Add(interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()

	m.Tick()

	for {
		select {
		case now := <-timer.C:
			if selected := m.store.Selected(); selected != tempo {
				tempo = selected
				interval = beatInterval(tempo)
				due = now
			}

			due = nextDeadline(now, due, interval)
			timer.Reset(time.Until(due))
			m.Tick()
		case <-ctx.Done():
			return
		}
	}
}
