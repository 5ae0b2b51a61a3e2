// Package translit orchestrates the phoneme-to-symbol transliteration
// pipeline: dictionary lookup, stress normalization, symbol mapping,
// sentence reconstruction and optional comparison audio.
package translit

import (
	"context"
	"errors"

	"github.com/example/go-altenglish/internal/phoneme"
)

// ErrNoInput is returned when the input text is empty or whitespace-only.
var ErrNoInput = errors.New("no input")

// ErrNoWords is returned when the input contains no extractable word tokens.
var ErrNoWords = errors.New("no words found in input")

// PronunciationLookup resolves a word (case-insensitively) to its
// phone sequence. When a word has several pronunciations the first
// must be returned deterministically.
type PronunciationLookup interface {
	Lookup(word string) ([]phoneme.Phone, bool)
}

// AudioSynthesizer renders audio artifacts via an external
// synthesizer. Available must be cheap and is consulted before any
// synthesis attempt; synthesis failures are reported, never fatal.
type AudioSynthesizer interface {
	Available() bool
	SynthesizeText(ctx context.Context, path, text string) error
	SynthesizePhonemes(ctx context.Context, path, phonemes string) error
}

// WordEntry is the transliteration outcome for one word.
type WordEntry struct {
	Word string
	// Phones is the dictionary pronunciation; nil when the word is
	// not in the dictionary, in which case both results are empty.
	Phones     []phoneme.Phone
	Engineered phoneme.Result
	Dialect    phoneme.Result
}

// Found reports whether the word was present in the dictionary.
func (e WordEntry) Found() bool { return e.Phones != nil }

// Artifact records one synthesized audio file.
type Artifact struct {
	Name string // "traditional" or "new"
	Path string
	Err  string // empty on success
}

// AudioStatus reports what happened to the audio step.
type AudioStatus struct {
	Requested bool
	Skipped   string // non-empty reason when no synthesis was attempted
	Artifacts []Artifact
	// Warnings lists non-fatal audio problems, e.g. phones missing
	// from the synthesizer dialect.
	Warnings []string
}

// WordReport is the result of single-word transliteration.
type WordReport struct {
	Entry WordEntry
	// Ignored lists extra words discarded in word mode; only the
	// first word is processed.
	Ignored []string
	Audio   AudioStatus
}

// SentenceReport is the result of sentence transliteration.
type SentenceReport struct {
	Input string
	// Words holds one entry per distinct word, in first-occurrence
	// order. Words absent from the dictionary are included with nil
	// phones.
	Words []WordEntry
	// Sentence is the reconstructed transliterated sentence.
	Sentence     string
	MissingWords []string
	// Unmapped aggregates phones missing from the engineered table
	// across all words; DialectUnmapped does the same for the
	// synthesizer dialect table. A phone can appear in one list
	// without appearing in the other.
	Unmapped        []phoneme.Phone
	DialectUnmapped []phoneme.Phone
	Audio           AudioStatus
}
