package audio

import (
	"fmt"
	"os"
	"time"
)

// Info summarizes a WAV artifact on disk.
type Info struct {
	Path       string
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// ProbeFile decodes the WAV file at path and reports its format and
// duration.
func ProbeFile(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("read %s: %w", path, err)
	}
	clip, err := DecodeWAV(data)
	if err != nil {
		return Info{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Info{
		Path:       path,
		SampleRate: clip.SampleRate,
		Channels:   clip.Channels,
		BitDepth:   clip.BitDepth,
		Duration:   clip.Duration(),
	}, nil
}

// WriteComparison joins the WAV files at paths (in order) with gap of
// silence between takes and writes the result to outPath. The inputs
// must share a format; a mismatch is returned as ErrFormatMismatch.
func WriteComparison(outPath string, gap time.Duration, paths ...string) error {
	clips := make([]Clip, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		clip, err := DecodeWAV(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", p, err)
		}
		clips = append(clips, clip)
	}

	joined, err := Concat(gap, clips...)
	if err != nil {
		return err
	}
	data, err := EncodeWAV(joined)
	if err != nil {
		return fmt.Errorf("encode comparison: %w", err)
	}
	return os.WriteFile(outPath, data, 0o644)
}
