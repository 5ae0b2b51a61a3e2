package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/go-altenglish/internal/audio"
	"github.com/example/go-altenglish/internal/config"
	"github.com/example/go-altenglish/internal/espeak"
	"github.com/example/go-altenglish/internal/lexicon"
	"github.com/example/go-altenglish/internal/translit"
)

// comparisonGap is the silence inserted between the traditional and
// new takes in comparison.wav.
const comparisonGap = 400 * time.Millisecond

// loadDictionary returns the configured dictionary, falling back to
// the embedded seed when no path is set.
func loadDictionary(cfg config.Config) (*lexicon.Dictionary, error) {
	if cfg.Paths.DictionaryPath == "" {
		return lexicon.Seed(), nil
	}
	return lexicon.LoadFile(cfg.Paths.DictionaryPath)
}

// buildPipeline wires the dictionary and (unless disabled) the espeak
// synthesizer into a transliteration pipeline.
func buildPipeline(cfg config.Config, noAudio bool) (*translit.Pipeline, error) {
	dict, err := loadDictionary(cfg)
	if err != nil {
		return nil, err
	}

	opts := []translit.Option{
		translit.WithPauseBetweenWords(cfg.ESpeak.PauseBetweenWords),
	}
	if cfg.Output.Audio && !noAudio {
		synth := espeak.New()
		synth.BinaryPath = cfg.ESpeak.BinaryPath
		synth.Voice = cfg.ESpeak.Voice
		synth.Stderr = os.Stderr
		opts = append(opts, translit.WithSynthesizer(synth, cfg.Paths.OutputDir))
	}

	return translit.NewPipeline(dict, opts...), nil
}

// readInputText returns the joined command arguments, or reads stdin
// when no arguments were given.
func readInputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either pass text as arguments or pipe it on stdin")
	}
	return input, nil
}

// reportAudio prints the audio step outcome: artifact paths with
// probed format and duration, warnings, or the skip reason. When both
// takes succeeded and comparison output is enabled, it also writes
// the joined comparison track.
func reportAudio(w io.Writer, status translit.AudioStatus, cfg config.Config) {
	if status.Skipped != "" {
		fmt.Fprintf(w, "\nAudio skipped: %s\n", status.Skipped)
		return
	}
	if !status.Requested {
		return
	}

	fmt.Fprintln(w)
	var okPaths []string
	for _, a := range status.Artifacts {
		if a.Err != "" {
			fmt.Fprintf(w, "Audio (%s): failed: %s\n", a.Name, a.Err)
			continue
		}
		info, err := audio.ProbeFile(a.Path)
		if err != nil {
			fmt.Fprintf(w, "Audio (%s): %s (unreadable: %v)\n", a.Name, a.Path, err)
			continue
		}
		fmt.Fprintf(w, "Audio (%s): %s (%.2fs, %d Hz, %d ch)\n",
			a.Name, a.Path, info.Duration.Seconds(), info.SampleRate, info.Channels)
		okPaths = append(okPaths, a.Path)
	}
	for _, warn := range status.Warnings {
		fmt.Fprintf(w, "Audio warning: %s\n", warn)
	}

	if !cfg.Output.Comparison || len(okPaths) < 2 {
		return
	}
	cmpPath := filepath.Join(cfg.Paths.OutputDir, "comparison.wav")
	if err := audio.WriteComparison(cmpPath, comparisonGap, okPaths...); err != nil {
		fmt.Fprintf(w, "Audio warning: comparison track not written: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Audio (comparison): %s\n", cmpPath)
}
