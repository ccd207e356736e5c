package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dimfu/clack-controller/state"
	"github.com/gosuri/uilive"
)

const refreshInterval = 100 * time.Millisecond

func render(snap state.Snapshot, sigs []TimeSignature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d bpm", snap.Selected)
	if snap.Candidate != snap.Selected {
		fmt.Fprintf(&b, " (-> %d, enter to apply)", snap.Candidate)
	}
	fmt.Fprintf(&b, "  %s  ", sigs[snap.SignatureMode])

	for i := 1; i <= snap.BeatsPerMeasure; i++ {
		if i == snap.Beat {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	fmt.Fprintf(&b, "  [%s]\n", snap.Power)
	return b.String()
}

// newStatusWriter returns a live writer on out and points the standard
// logger above the status line, so log output never breaks a repaint.
func newStatusWriter(out io.Writer) *uilive.Writer {
	writer := uilive.New()
	writer.Out = out
	log.SetOutput(writer.Bypass())
	return writer
}

// runDisplay repaints the status line on writer until ctx is done.
func runDisplay(ctx context.Context, writer *uilive.Writer, store *state.Store, sigs []TimeSignature) {
	writer.Start()
	defer writer.Stop()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		fmt.Fprint(writer, render(store.Snapshot(), sigs))
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
