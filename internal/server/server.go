// Package server exposes the transliteration pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-altenglish/internal/phoneme"
	"github.com/example/go-altenglish/internal/translit"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Transliterator runs word or sentence transliteration.
type Transliterator interface {
	Word(ctx context.Context, text string) (translit.WordReport, error)
	Sentence(ctx context.Context, text string, preservePunct bool) (translit.SentenceReport, error)
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes        int
	workers             int
	requestTimeout      time.Duration
	preservePunctuation bool
	logger              *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes:        4096,
		workers:             2,
		requestTimeout:      30 * time.Second,
		preservePunctuation: true,
		logger:              slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for
// POST /transliterate.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of concurrent transliteration calls.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithPreservePunctuation sets the default for requests that omit the
// preserve_punctuation field.
func WithPreservePunctuation(on bool) Option {
	return func(o *options) { o.preservePunctuation = on }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	pipeline Transliterator
	opts     options
	sem      chan struct{} // semaphore for worker pool
	log      *slog.Logger
}

// NewHandler returns an http.Handler serving /health and POST /transliterate.
func NewHandler(pipeline Transliterator, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		pipeline: pipeline,
		opts:     opts,
		log:      opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/transliterate", h.handleTransliterate)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type transliterateRequest struct {
	Text string `json:"text"`
	// Mode is "word" or "sentence"; empty defaults to sentence.
	Mode                string `json:"mode"`
	PreservePunctuation *bool  `json:"preserve_punctuation"`
}

type wordResult struct {
	Word            string   `json:"word"`
	Found           bool     `json:"found"`
	Phones          []string `json:"phones,omitempty"`
	Symbols         string   `json:"symbols,omitempty"`
	Unmapped        []string `json:"unmapped,omitempty"`
	DialectUnmapped []string `json:"dialect_unmapped,omitempty"`
}

type transliterateResponse struct {
	Mode            string       `json:"mode"`
	Words           []wordResult `json:"words"`
	Sentence        string       `json:"sentence,omitempty"`
	MissingWords    []string     `json:"missing_words,omitempty"`
	Unmapped        []string     `json:"unmapped,omitempty"`
	DialectUnmapped []string     `json:"dialect_unmapped,omitempty"`
	IgnoredWords    []string     `json:"ignored_words,omitempty"`
}

func (h *handler) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return
	}

	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = "sentence"
	}
	if mode != "word" && mode != "sentence" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q (want word|sentence)", req.Mode))
		return
	}

	preserve := h.opts.preservePunctuation
	if req.PreservePunctuation != nil {
		preserve = *req.PreservePunctuation
	}

	// Acquire a worker slot — honour context cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
			// slot acquired
		case <-r.Context().Done():
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return
		}
		defer func() { <-h.sem }()
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.transliterate(ctx, mode, req.Text, preserve)
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		if errors.Is(err, translit.ErrNoInput) || errors.Is(err, translit.ErrNoWords) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "transliteration failed",
			slog.String("mode", mode),
			slog.Int("text_len", len(req.Text)),
			slog.Int64("duration_ms", durationMS),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "transliteration complete",
		slog.String("mode", mode),
		slog.Int("text_len", len(req.Text)),
		slog.Int("words", len(resp.Words)),
		slog.Int64("duration_ms", durationMS),
	)

	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) transliterate(ctx context.Context, mode, text string, preserve bool) (transliterateResponse, error) {
	switch mode {
	case "word":
		rep, err := h.pipeline.Word(ctx, text)
		if err != nil {
			return transliterateResponse{}, err
		}
		resp := transliterateResponse{
			Mode:         "word",
			Words:        []wordResult{toWordResult(rep.Entry)},
			IgnoredWords: rep.Ignored,
		}
		if !rep.Entry.Found() {
			resp.MissingWords = []string{rep.Entry.Word}
		}
		return resp, nil
	default:
		rep, err := h.pipeline.Sentence(ctx, text, preserve)
		if err != nil {
			return transliterateResponse{}, err
		}
		resp := transliterateResponse{
			Mode:            "sentence",
			Sentence:        rep.Sentence,
			MissingWords:    rep.MissingWords,
			Unmapped:        phoneStrings(rep.Unmapped),
			DialectUnmapped: phoneStrings(rep.DialectUnmapped),
		}
		for _, e := range rep.Words {
			resp.Words = append(resp.Words, toWordResult(e))
		}
		return resp, nil
	}
}

func toWordResult(e translit.WordEntry) wordResult {
	res := wordResult{Word: e.Word, Found: e.Found()}
	if !e.Found() {
		return res
	}
	res.Phones = phoneStrings(e.Phones)
	res.Symbols = e.Engineered.Symbols()
	res.Unmapped = phoneStrings(e.Engineered.Unmapped)
	res.DialectUnmapped = phoneStrings(e.Dialect.Unmapped)
	return res
}

func phoneStrings(phones []phoneme.Phone) []string {
	if len(phones) == 0 {
		return nil
	}
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = string(p)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
}

// New builds a Server listening on addr with the given handler.
func New(addr string, h http.Handler) *Server {
	return &Server{
		addr:            addr,
		handler:         h,
		shutdownTimeout: 30 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}
