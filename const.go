package main

type TimeSignature struct {
	Beats     int // number of beats per meassure
	NoteValue int // note that represent that one beat
}

const (
	DEFAULT_TEMPO   = 120
	DEFAULT_TIMESIG = "4/4"

	// sample indexes of the audio player
	CLICK_ACCENT = 0
	CLICK_BEAT   = 1
)

// The order of this table is the signature mode order.
var TIME_SIGNATURES = []TimeSignature{
	{4, 4},
	{3, 4},
	{2, 4},
	{2, 2},
	{3, 8},
	{6, 8},
	{9, 8},
	{12, 8},
	{5, 4},
	{6, 4},
}

func beatsPerMeasure(sigs []TimeSignature) []int {
	beats := make([]int, len(sigs))
	for i, ts := range sigs {
		beats[i] = ts.Beats
	}
	return beats
}
