package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dimfu/clack-controller/state"
	"github.com/pkg/errors"
)

func ValidTempo(input int64) bool {
	return input >= state.MinTempo && input <= state.MaxTempo
}

// ValidTimeSig returns the signature mode index of input, e.g. "3/4".
func ValidTimeSig(input string) (int, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return 0, errors.New("invalid time signature format")
	}

	beats, err1 := strconv.Atoi(parts[0])
	noteValue, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, errors.New("invalid number in time signature")
	}

	for i, ts := range TIME_SIGNATURES {
		if ts.Beats == beats && ts.NoteValue == noteValue {
			return i, nil
		}
	}

	return 0, errors.New("time signature not found")
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Beats, ts.NoteValue)
}

func UserHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home + "\\"
	}
	return os.Getenv("HOME") + "/"
}
