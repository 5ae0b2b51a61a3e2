// Package doctor provides environment preflight checks for altenglish.
package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// VersionFunc returns a version string or an error if the component is unavailable.
type VersionFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// ESpeakVersion returns the output of `espeak-ng --version`.
	ESpeakVersion VersionFunc
	// DictionaryPath is the dictionary file to verify; empty means
	// the embedded seed dictionary is in use and the check is skipped.
	DictionaryPath string
	// OutputDir is checked for writability.
	OutputDir string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- espeak binary ----------------------------------------------------
	ver, err := cfg.ESpeakVersion()
	if err != nil {
		res.fail(fmt.Sprintf("espeak binary: %v", err))
		fmt.Fprintf(w, "%s espeak binary: not found (%v)\n", FailMark, err)
	} else {
		fmt.Fprintf(w, "%s espeak binary: %s\n", PassMark, firstLine(ver))
	}

	// ---- dictionary -------------------------------------------------------
	if cfg.DictionaryPath == "" {
		fmt.Fprintf(w, "%s dictionary: embedded seed\n", PassMark)
	} else if _, err := os.Stat(cfg.DictionaryPath); err != nil {
		res.fail(fmt.Sprintf("dictionary %q: %v", cfg.DictionaryPath, err))
		fmt.Fprintf(w, "%s dictionary %s: not found\n", FailMark, cfg.DictionaryPath)
	} else {
		fmt.Fprintf(w, "%s dictionary: %s\n", PassMark, cfg.DictionaryPath)
	}

	// ---- output directory -------------------------------------------------
	if cfg.OutputDir != "" {
		if err := checkWritable(cfg.OutputDir); err != nil {
			res.fail(fmt.Sprintf("output dir %q: %v", cfg.OutputDir, err))
			fmt.Fprintf(w, "%s output dir %s: not writable (%v)\n", FailMark, cfg.OutputDir, err)
		} else {
			fmt.Fprintf(w, "%s output dir: %s\n", PassMark, cfg.OutputDir)
		}
	}

	return res
}

// checkWritable creates the directory if needed and probes it with a
// temp file.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
