package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported sound format")

var effectExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsSupportedExt reports whether ext names a decodable effect format.
func IsSupportedExt(ext string) bool {
	return effectExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of effect formats.
func SupportedExtsList() string {
	return ".mp3, .wav, .flac, .ogg"
}

// Decode reads the whole file at path into memory. The format is chosen by
// extension.
func Decode(path string) (*PCM, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(ext) {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, SupportedExtsList())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pcm *PCM
	switch ext {
	case ".mp3":
		pcm, err = decodeMP3(f)
	case ".wav":
		pcm, err = decodeWAV(f)
	case ".flac":
		pcm, err = decodeFLAC(f)
	case ".ogg":
		pcm, err = decodeOGG(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if pcm.Frames() == 0 {
		return nil, fmt.Errorf("decoding %s: no audio data", filepath.Base(path))
	}
	return pcm, nil
}

// go-mp3 always produces 16-bit stereo.
func decodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	return &PCM{Data: data, SampleRate: dec.SampleRate(), Channels: 2}, nil
}

func decodeWAV(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	depth := int(dec.BitDepth)
	data := make([]byte, len(buf.Data)*bitDepth)
	for i, s := range buf.Data {
		var sample int
		switch depth {
		case 8:
			// 8-bit WAV is unsigned
			sample = (s - 128) << 8
		case 16:
			sample = s
		case 24:
			sample = s >> 8
		case 32:
			sample = s >> 16
		default:
			return nil, fmt.Errorf("unsupported WAV bit depth %d", depth)
		}
		binary.LittleEndian.PutUint16(data[i*bitDepth:], uint16(int16(clamp16(sample))))
	}
	return &PCM{Data: data, SampleRate: int(dec.SampleRate), Channels: int(dec.NumChans)}, nil
}

func decodeFLAC(r io.Reader) (*PCM, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	bps := int(stream.Info.BitsPerSample)
	var out bytes.Buffer
	raw := make([]byte, 0, 4096)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n := int(frame.Subframes[0].NSamples)
		raw = raw[:0]
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				sample := int(frame.Subframes[ch].Samples[i])
				switch {
				case bps > 16:
					sample >>= (bps - 16)
				case bps < 16:
					sample <<= (16 - bps)
				}
				raw = binary.LittleEndian.AppendUint16(raw, uint16(int16(clamp16(sample))))
			}
		}
		out.Write(raw)
	}
	return &PCM{Data: out.Bytes(), SampleRate: int(stream.Info.SampleRate), Channels: channels}, nil
}

func decodeOGG(r io.Reader) (*PCM, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(samples)*bitDepth)
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		binary.LittleEndian.PutUint16(data[i*bitDepth:], uint16(int16(s*32767)))
	}
	return &PCM{Data: data, SampleRate: format.SampleRate, Channels: format.Channels}, nil
}
