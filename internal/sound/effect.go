package sound

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// voice is one playing copy of the effect.
type voice interface {
	Play()
	SetVolume(float64)
	IsPlaying() bool
	Close() error
}

// output opens voices on an audio device.
type output interface {
	NewVoice(r io.Reader) voice
}

type otoOutput struct {
	ctx *oto.Context
}

func (o otoOutput) NewVoice(r io.Reader) voice {
	return o.ctx.NewPlayer(r)
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Effect is a short in-memory clip that can be fired repeatedly. Each Play
// starts a new voice so rapid triggers overlap instead of restarting.
type Effect struct {
	out    output
	pcm    *PCM
	title  string
	volume float64
	active []voice
	muted  bool
	closed bool
	mu     sync.Mutex
}

// Open decodes the file at path and prepares it for playback.
func Open(path string, volume float64) (*Effect, error) {
	pcm, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return NewEffect(pcm, ReadTitle(path), volume)
}

// NewEffect wraps already decoded audio. It opens the audio device on first
// use; the device is shared by every effect.
func NewEffect(pcm *PCM, title string, volume float64) (*Effect, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	return newEffect(otoOutput{ctx: ctx}, pcm, title, volume), nil
}

func newEffect(out output, pcm *PCM, title string, volume float64) *Effect {
	return &Effect{
		out:    out,
		pcm:    pcm.Convert(sampleRate, channelCount),
		title:  title,
		volume: clampVolume(volume),
	}
}

// Title returns the display name of the clip.
func (e *Effect) Title() string { return e.title }

// Duration returns the clip length.
func (e *Effect) Duration() time.Duration { return e.pcm.Duration() }

// Play starts the clip from the beginning. It is a no-op while muted or
// after Close.
func (e *Effect) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.muted {
		return
	}
	e.prune()
	v := e.out.NewVoice(bytes.NewReader(e.pcm.Data))
	v.SetVolume(e.volume)
	v.Play()
	e.active = append(e.active, v)
}

// prune drops finished voices. Caller holds mu.
func (e *Effect) prune() {
	kept := e.active[:0]
	for _, v := range e.active {
		if v.IsPlaying() {
			kept = append(kept, v)
			continue
		}
		v.Close()
	}
	clear(e.active[len(kept):])
	e.active = kept
}

// Playing returns the number of voices still sounding.
func (e *Effect) Playing() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prune()
	return len(e.active)
}

// Volume returns current volume (0.0 to 1.0).
func (e *Effect) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// SetVolume sets volume (clamped to 0.0 - 1.0) for later and playing voices.
func (e *Effect) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = clampVolume(v)
	for _, p := range e.active {
		p.SetVolume(e.volume)
	}
}

// ToggleMute flips the muted state and returns it.
func (e *Effect) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

// Muted reports whether Play is suppressed.
func (e *Effect) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close stops every voice. The shared device stays open.
func (e *Effect) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for _, v := range e.active {
		v.Close()
	}
	e.active = nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
