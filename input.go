package main

import (
	"context"
	"log"

	"github.com/dimfu/clack-controller/state"
	"github.com/eiannone/keyboard"
)

const (
	smallStep = 1
	largeStep = 10
)

// handleKey applies one key press to the store and reports whether the user
// asked to quit.
func handleKey(store *state.Store, ev keyboard.KeyEvent) bool {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		store.AdjustCandidate(smallStep)
	case keyboard.KeyArrowDown:
		store.AdjustCandidate(-smallStep)
	case keyboard.KeyPgup:
		store.AdjustCandidate(largeStep)
	case keyboard.KeyPgdn:
		store.AdjustCandidate(-largeStep)
	case keyboard.KeyEnter:
		store.Commit()
	case keyboard.KeyEsc:
		store.RevertCandidate()
	case keyboard.KeySpace:
		store.TogglePower()
	case keyboard.KeyCtrlC:
		return true
	}

	switch ev.Rune {
	case 's', 'S':
		store.AdvanceSignature()
	case 'q', 'Q':
		return true
	}
	return false
}

// runInput reads the keyboard until ctx is done or the user quits, then calls
// quit.
func runInput(ctx context.Context, store *state.Store, quit func()) error {
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return err
	}
	defer keyboard.Close()

	for {
		select {
		case ev := <-keys:
			if ev.Err != nil {
				log.Printf("keyboard: %v", ev.Err)
				continue
			}
			if handleKey(store, ev) {
				quit()
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}
