// Package sound plays the explosion effect.
package sound

import (
	"encoding/binary"
	"time"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
)

// PCM is decoded 16-bit little-endian interleaved audio.
type PCM struct {
	Data       []byte
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames.
func (p *PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Data) / (p.Channels * bitDepth)
}

// Duration returns the playback length.
func (p *PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(p.Frames()) / float64(p.SampleRate) * float64(time.Second))
}

func (p *PCM) sample(frame, ch int) int16 {
	off := (frame*p.Channels + ch) * bitDepth
	return int16(binary.LittleEndian.Uint16(p.Data[off:]))
}

// Convert resamples p to rate and remaps it to channels. Mono is duplicated
// into every output channel; extra source channels beyond the output count
// are averaged into the last one. Resampling is linear.
func (p *PCM) Convert(rate, channels int) *PCM {
	if p.SampleRate == rate && p.Channels == channels {
		return p
	}
	in := p.Frames()
	if in == 0 || rate <= 0 || channels <= 0 {
		return &PCM{SampleRate: rate, Channels: channels}
	}
	out := int(int64(in) * int64(rate) / int64(p.SampleRate))
	if out < 1 {
		out = 1
	}
	data := make([]byte, out*channels*bitDepth)
	step := float64(p.SampleRate) / float64(rate)
	for i := 0; i < out; i++ {
		pos := float64(i) * step
		f0 := int(pos)
		if f0 >= in {
			f0 = in - 1
		}
		f1 := f0 + 1
		if f1 >= in {
			f1 = in - 1
		}
		frac := pos - float64(f0)
		for ch := 0; ch < channels; ch++ {
			a := float64(p.mixed(f0, ch, channels))
			b := float64(p.mixed(f1, ch, channels))
			v := clamp16(int(a + (b-a)*frac))
			binary.LittleEndian.PutUint16(data[(i*channels+ch)*bitDepth:], uint16(int16(v)))
		}
	}
	return &PCM{Data: data, SampleRate: rate, Channels: channels}
}

// mixed returns the source value feeding output channel ch of outCh.
func (p *PCM) mixed(frame, ch, outCh int) int {
	if p.Channels == 1 {
		return int(p.sample(frame, 0))
	}
	if ch < outCh-1 || p.Channels <= outCh {
		if ch >= p.Channels {
			ch = p.Channels - 1
		}
		return int(p.sample(frame, ch))
	}
	sum := 0
	for c := ch; c < p.Channels; c++ {
		sum += int(p.sample(frame, c))
	}
	return sum / (p.Channels - ch)
}

func clamp16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
