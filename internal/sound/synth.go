package sound

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// SynthTitle names the built-in effect.
const SynthTitle = "synthesized burst"

// Synthesize renders the built-in explosion: a pitch-dropping sine thump
// under a decaying noise crackle. The noise is seeded, so output is
// identical on every call.
func Synthesize(length float64) *PCM {
	if length <= 0 {
		length = 0.9
	}
	frames := int(length * sampleRate)
	data := make([]byte, frames*channelCount*bitDepth)
	rng := rand.New(rand.NewPCG(0x9e3779b9, 0x7f4a7c15))

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		u := t / length

		freq := 40 + 110*math.Exp(-t*9)
		phase += 2 * math.Pi * freq / sampleRate
		thump := math.Sin(phase) * math.Exp(-t*5)

		noise := (rng.Float64()*2 - 1) * math.Exp(-t*14)

		attack := math.Min(1, t/0.004)
		tail := 1 - u*u
		v := (0.7*thump + 0.45*noise) * attack * tail

		s := uint16(int16(clamp16(int(v * 32767 * 0.9))))
		off := i * channelCount * bitDepth
		for ch := 0; ch < channelCount; ch++ {
			binary.LittleEndian.PutUint16(data[off+ch*bitDepth:], s)
		}
	}
	return &PCM{Data: data, SampleRate: sampleRate, Channels: channelCount}
}
