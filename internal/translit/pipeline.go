package translit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/go-altenglish/internal/phoneme"
	"github.com/example/go-altenglish/internal/token"
)

// Default artifact file names under the output directory.
const (
	TraditionalWAV = "traditional.wav"
	NewWAV         = "new.wav"
)

// Pipeline runs word and sentence transliteration against a
// pronunciation dictionary and, optionally, an external synthesizer.
// A Pipeline is safe for concurrent use: all transformation steps are
// pure and the collaborators are only read.
type Pipeline struct {
	lookup PronunciationLookup
	synth  AudioSynthesizer

	outputDir         string
	audioEnabled      bool
	pauseBetweenWords bool
	log               *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSynthesizer enables audio generation through synth, writing
// artifacts under outputDir.
func WithSynthesizer(synth AudioSynthesizer, outputDir string) Option {
	return func(p *Pipeline) {
		p.synth = synth
		p.outputDir = outputDir
		p.audioEnabled = true
	}
}

// WithPauseBetweenWords inserts a pause marker between word groups in
// the synthesizer phoneme string (sentence mode).
func WithPauseBetweenWords(on bool) Option {
	return func(p *Pipeline) { p.pauseBetweenWords = on }
}

// WithLogger sets the slog.Logger used for audio warnings.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// NewPipeline builds a Pipeline over the given dictionary lookup.
// Audio is disabled unless WithSynthesizer is supplied.
func NewPipeline(lookup PronunciationLookup, opts ...Option) *Pipeline {
	p := &Pipeline{
		lookup: lookup,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Word transliterates a single word. Extra words in the input are
// ignored and reported. A word absent from the dictionary yields an
// entry with Found() == false and no audio request.
func (p *Pipeline) Word(ctx context.Context, text string) (WordReport, error) {
	if strings.TrimSpace(text) == "" {
		return WordReport{}, ErrNoInput
	}
	words := token.Words(text)
	if len(words) == 0 {
		return WordReport{}, ErrNoWords
	}

	rep := WordReport{
		Entry:   p.entry(words[0]),
		Ignored: words[1:],
	}
	if !rep.Entry.Found() {
		rep.Audio = AudioStatus{Skipped: "word not found"}
		return rep, nil
	}

	rep.Audio = p.synthesize(ctx, words[0], [][]phoneme.Phone{rep.Entry.Phones}, false)
	return rep, nil
}

// Sentence transliterates a full sentence, preserving the original
// whitespace and (optionally) punctuation in the reconstructed
// output. Words absent from the dictionary are reported and rendered
// as placeholders; they never abort processing.
func (p *Pipeline) Sentence(ctx context.Context, text string, preservePunct bool) (SentenceReport, error) {
	if strings.TrimSpace(text) == "" {
		return SentenceReport{}, ErrNoInput
	}
	words := token.Words(text)
	if len(words) == 0 {
		return SentenceReport{}, ErrNoWords
	}

	rep := SentenceReport{Input: text}

	// One entry per distinct word, first occurrence wins.
	entries := make(map[string]WordEntry)
	for _, w := range words {
		if _, ok := entries[w]; ok {
			continue
		}
		e := p.entry(w)
		entries[w] = e
		rep.Words = append(rep.Words, e)

		if !e.Found() {
			rep.MissingWords = append(rep.MissingWords, w)
			continue
		}
		rep.Unmapped = append(rep.Unmapped, e.Engineered.Unmapped...)
		rep.DialectUnmapped = append(rep.DialectUnmapped, e.Dialect.Unmapped...)
	}

	symbolsByWord := make(map[string]string, len(entries))
	for w, e := range entries {
		if e.Found() {
			symbolsByWord[w] = e.Engineered.Symbols()
		}
	}
	rep.Sentence = renderSentence(token.Scan(text), symbolsByWord, preservePunct)

	// Phone groups in sentence order, repeats included, for the
	// single audio request.
	var groups [][]phoneme.Phone
	for _, w := range words {
		if e := entries[w]; e.Found() {
			groups = append(groups, e.Phones)
		}
	}
	rep.Audio = p.synthesize(ctx, text, groups, p.pauseBetweenWords)

	return rep, nil
}

// entry looks up one word and maps its phones through both tables.
// The two mapping passes share no state and are independent.
func (p *Pipeline) entry(word string) WordEntry {
	phones, ok := p.lookup.Lookup(word)
	if !ok {
		return WordEntry{Word: word}
	}
	return WordEntry{
		Word:       word,
		Phones:     phones,
		Engineered: phoneme.Map(phones, phoneme.Engineered()),
		Dialect:    phoneme.Map(phones, phoneme.ESpeak()),
	}
}

// synthesize requests the traditional and new renderings. Both
// requests are independent; each failure is recorded as a warning on
// its artifact and never aborts the pipeline.
func (p *Pipeline) synthesize(ctx context.Context, text string, groups [][]phoneme.Phone, pause bool) AudioStatus {
	if !p.audioEnabled || p.synth == nil {
		return AudioStatus{Skipped: "audio disabled"}
	}
	if !p.synth.Available() {
		return AudioStatus{Skipped: "synthesizer not found"}
	}

	status := AudioStatus{Requested: true}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		status.Skipped = fmt.Sprintf("create output dir: %v", err)
		status.Requested = false
		return status
	}

	traditional := Artifact{Name: "traditional", Path: filepath.Join(p.outputDir, TraditionalWAV)}
	if err := p.synth.SynthesizeText(ctx, traditional.Path, text); err != nil {
		traditional.Err = err.Error()
		p.log.Warn("traditional synthesis failed", "path", traditional.Path, "err", err)
	}
	status.Artifacts = append(status.Artifacts, traditional)

	phonStr, missing := dialectString(groups, pause)
	if len(missing) > 0 {
		status.Warnings = append(status.Warnings,
			fmt.Sprintf("phones missing from synthesizer dialect: %v (new rendering is approximate)", missing))
	}
	if phonStr == "" {
		status.Warnings = append(status.Warnings, "no phonemes available for new rendering")
		return status
	}

	newTake := Artifact{Name: "new", Path: filepath.Join(p.outputDir, NewWAV)}
	if err := p.synth.SynthesizePhonemes(ctx, newTake.Path, phonStr); err != nil {
		newTake.Err = err.Error()
		p.log.Warn("phoneme synthesis failed", "path", newTake.Path, "err", err)
	}
	status.Artifacts = append(status.Artifacts, newTake)

	return status
}
