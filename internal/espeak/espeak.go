// Package espeak drives the espeak-ng (or espeak) binary to render
// WAV files from text or from eSpeak phoneme strings.
package espeak

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Synthesizer invokes an external espeak binary. The zero value is
// not usable; construct with New.
type Synthesizer struct {
	// BinaryPath overrides PATH resolution when set.
	BinaryPath string
	// Voice is passed as -v; defaults to "en".
	Voice string
	// Stderr receives the subprocess stderr when set.
	Stderr io.Writer
}

// New returns a Synthesizer with the default English voice.
func New() *Synthesizer {
	return &Synthesizer{Voice: "en"}
}

// resolve returns the binary to run, preferring espeak-ng over
// espeak when no explicit path is configured.
func (s *Synthesizer) resolve() (string, error) {
	if s.BinaryPath != "" {
		return lookPath(s.BinaryPath)
	}
	if path, err := lookPath("espeak-ng"); err == nil {
		return path, nil
	}
	return lookPath("espeak")
}

// Available reports whether an espeak binary can be found. It is
// consulted before any synthesis attempt so a missing binary fails
// fast instead of surfacing per-invocation errors.
func (s *Synthesizer) Available() bool {
	_, err := s.resolve()
	return err == nil
}

// Version probes the binary for its version banner.
func (s *Synthesizer) Version(ctx context.Context) (string, error) {
	exe, err := s.resolve()
	if err != nil {
		return "", mapExecError(err)
	}
	out, err := exec.CommandContext(ctx, exe, "--version").Output()
	if err != nil {
		return "", mapExecError(err)
	}
	return string(out), nil
}

// SynthesizeText speaks text into a WAV file at path.
func (s *Synthesizer) SynthesizeText(ctx context.Context, path, text string) error {
	return s.run(ctx, path, text)
}

// SynthesizePhonemes speaks an eSpeak phoneme string (wrapped in
// [[...]]) into a WAV file at path.
func (s *Synthesizer) SynthesizePhonemes(ctx context.Context, path, phonemes string) error {
	return s.run(ctx, path, phonemes)
}

func (s *Synthesizer) run(ctx context.Context, path, input string) error {
	exe, err := s.resolve()
	if err != nil {
		return mapExecError(err)
	}

	voice := s.Voice
	if voice == "" {
		voice = "en"
	}

	cmd := exec.CommandContext(ctx, exe, "-v", voice, "-w", path, input)
	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}
	if err := cmd.Run(); err != nil {
		return mapExecError(err)
	}
	return nil
}

func mapExecError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("espeak binary not found on PATH; install espeak-ng: %w", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("espeak exited abnormally: %w", err)
	}

	return err
}
