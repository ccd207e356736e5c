package main

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Clicker plays the sample at index for one beat.
type Clicker interface {
	PlayTick(index int)
}

type AudioPlayer struct {
	buffers []*beep.Buffer
	ctrl    *beep.Ctrl
}

func Read(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "reading audio file failed")
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "error while decoding %s", path)
	}

	return streamer, format, nil
}

// loadSamples decodes every file in audios into memory, resampled to the rate
// of the first one.
func loadSamples(audios []string) ([]*beep.Buffer, beep.Format, error) {
	var (
		buffers []*beep.Buffer
		format  beep.Format
	)
	for i, path := range audios {
		streamer, audioFormat, err := Read(path)
		if err != nil {
			return nil, beep.Format{}, err
		}

		if i == 0 {
			format = audioFormat
		}
		buffer := beep.NewBuffer(format)
		if audioFormat.SampleRate != format.SampleRate {
			buffer.Append(beep.Resample(4, audioFormat.SampleRate, format.SampleRate, streamer))
		} else {
			buffer.Append(streamer)
		}
		buffers = append(buffers, buffer)
		streamer.Close()
	}
	return buffers, format, nil
}

// NewAudioPlayer loads every sample in audios and only then opens the speaker,
// so a missing sample never leaves the speaker running.
func NewAudioPlayer(audios []string) (*AudioPlayer, error) {
	buffers, format, err := loadSamples(audios)
	if err != nil {
		return nil, err
	}
	if len(buffers) == 0 {
		return nil, errors.New("no audio samples given")
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "error while initializing speaker")
	}

	return &AudioPlayer{
		buffers: buffers,
	}, nil
}

func (ap *AudioPlayer) PlayTick(index int) {
	if index < 0 || index >= len(ap.buffers) {
		return
	}

	speaker.Lock()
	if ap.ctrl != nil {
		ap.ctrl.Streamer = nil
	}
	ap.ctrl = &beep.Ctrl{
		Streamer: ap.buffers[index].Streamer(0, ap.buffers[index].Len()),
		Paused:   false,
	}
	speaker.Unlock()

	speaker.Play(ap.ctrl)
}

func (ap *AudioPlayer) Close() {
	speaker.Clear()
}

// silentPlayer stands in when no samples could be loaded.
type silentPlayer struct{}

func (silentPlayer) PlayTick(int) {}
