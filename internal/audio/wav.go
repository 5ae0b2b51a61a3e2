// Package audio decodes and encodes the WAV artifacts produced by
// the external synthesizer, for probing and for the comparison track.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/wav"
	goaudio "github.com/go-audio/audio"
)

// ErrFormatMismatch is returned when two clips cannot be joined
// because their formats differ.
var ErrFormatMismatch = errors.New("WAV format mismatch")

// Clip holds decoded PCM samples together with their format. The
// synthesizer's output format is not fixed (espeak emits 22050 Hz
// mono by default, but that is its business), so the format travels
// with the samples instead of being validated against constants.
type Clip struct {
	Samples    []float32
	SampleRate int
	Channels   int
	BitDepth   int
}

// Duration returns the clip length.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 || c.Channels <= 0 {
		return 0
	}
	frames := len(c.Samples) / c.Channels
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// sameFormat reports whether two clips share sample rate, channel
// count and bit depth.
func (c Clip) sameFormat(o Clip) bool {
	return c.SampleRate == o.SampleRate && c.Channels == o.Channels && c.BitDepth == o.BitDepth
}

// DecodeWAV decodes WAV bytes into a Clip.
func DecodeWAV(data []byte) (Clip, error) {
	if len(data) == 0 {
		return Clip{}, errors.New("empty WAV input")
	}

	r := bytes.NewReader(data)
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, errors.New("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("reading PCM data: %w", err)
	}

	return Clip{
		Samples:    buf.Data,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}, nil
}

// EncodeWAV encodes a Clip as PCM WAV bytes.
func EncodeWAV(c Clip) ([]byte, error) {
	if c.SampleRate <= 0 || c.Channels <= 0 || c.BitDepth <= 0 {
		return nil, fmt.Errorf("invalid clip format: %d Hz, %d ch, %d bit", c.SampleRate, c.Channels, c.BitDepth)
	}

	var buf bytes.Buffer

	// wav.NewEncoder requires an io.WriteSeeker; bytes.Buffer is not
	// one, so wrap it.
	sw := &seekBuffer{buf: &buf}

	enc := wav.NewEncoder(sw, c.SampleRate, c.BitDepth, c.Channels, 1) // 1 = PCM

	pcmBuf := &goaudio.Float32Buffer{
		Data:           c.Samples,
		Format:         &goaudio.Format{SampleRate: c.SampleRate, NumChannels: c.Channels},
		SourceBitDepth: c.BitDepth,
	}

	if err := enc.Write(pcmBuf); err != nil {
		return nil, fmt.Errorf("writing PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Concat joins clips in order with gap of silence between each pair.
// All clips must share the same format.
func Concat(gap time.Duration, clips ...Clip) (Clip, error) {
	if len(clips) == 0 {
		return Clip{}, errors.New("no clips to join")
	}

	out := Clip{
		SampleRate: clips[0].SampleRate,
		Channels:   clips[0].Channels,
		BitDepth:   clips[0].BitDepth,
	}
	gapSamples := int(gap.Seconds()*float64(out.SampleRate)) * out.Channels

	for i, c := range clips {
		if !c.sameFormat(out) {
			return Clip{}, fmt.Errorf("%w: clip %d is %d Hz/%d ch/%d bit, want %d Hz/%d ch/%d bit",
				ErrFormatMismatch, i+1, c.SampleRate, c.Channels, c.BitDepth,
				out.SampleRate, out.Channels, out.BitDepth)
		}
		if i > 0 && gapSamples > 0 {
			out.Samples = append(out.Samples, make([]float32, gapSamples)...)
		}
		out.Samples = append(out.Samples, c.Samples...)
	}
	return out, nil
}

// seekBuffer wraps a bytes.Buffer to satisfy io.WriteSeeker.
type seekBuffer struct {
	buf *bytes.Buffer
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	// If writing at the end, just append.
	if s.pos == s.buf.Len() {
		n, err := s.buf.Write(p)
		s.pos += n
		return n, err
	}
	// Writing in the middle: overwrite existing bytes.
	data := s.buf.Bytes()
	n := copy(data[s.pos:], p)
	if n < len(p) {
		// Extend the buffer for the remainder.
		data = append(data, p[n:]...)
		s.buf.Reset()
		s.buf.Write(data)
		n = len(p)
	}
	s.pos += n
	return n, nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case 0: // io.SeekStart
		newPos = int(offset)
	case 1: // io.SeekCurrent
		newPos = s.pos + int(offset)
	case 2: // io.SeekEnd
		newPos = s.buf.Len() + int(offset)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("seek before start")
	}
	s.pos = newPos
	return int64(newPos), nil
}
