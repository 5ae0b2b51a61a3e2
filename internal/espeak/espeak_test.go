package espeak

import (
	"errors"
	"os/exec"
	"testing"
)

// swapLookPath installs a fake PATH resolver for the test's duration.
func swapLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPath
	lookPath = fn
	t.Cleanup(func() { lookPath = orig })
}

func TestAvailable(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		swapLookPath(t, func(name string) (string, error) {
			if name == "espeak-ng" {
				return "/usr/bin/espeak-ng", nil
			}
			return "", exec.ErrNotFound
		})
		if !New().Available() {
			t.Error("Available() = false with espeak-ng on PATH")
		}
	})

	t.Run("missing", func(t *testing.T) {
		swapLookPath(t, func(string) (string, error) {
			return "", exec.ErrNotFound
		})
		if New().Available() {
			t.Error("Available() = true with nothing on PATH")
		}
	})
}

// espeak-ng is preferred; plain espeak is the fallback.
func TestResolvePrefersESpeakNG(t *testing.T) {
	var asked []string
	swapLookPath(t, func(name string) (string, error) {
		asked = append(asked, name)
		if name == "espeak" {
			return "/usr/bin/espeak", nil
		}
		return "", exec.ErrNotFound
	})

	path, err := New().resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/usr/bin/espeak" {
		t.Errorf("resolve() = %q; want /usr/bin/espeak", path)
	}
	if len(asked) != 2 || asked[0] != "espeak-ng" {
		t.Errorf("lookup order = %v; want espeak-ng first", asked)
	}
}

func TestResolveExplicitBinary(t *testing.T) {
	swapLookPath(t, func(name string) (string, error) {
		if name == "/opt/espeak/bin/espeak-ng" {
			return name, nil
		}
		t.Errorf("unexpected lookup of %q", name)
		return "", exec.ErrNotFound
	})

	s := New()
	s.BinaryPath = "/opt/espeak/bin/espeak-ng"
	path, err := s.resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != s.BinaryPath {
		t.Errorf("resolve() = %q; want %q", path, s.BinaryPath)
	}
}

func TestMapExecError(t *testing.T) {
	err := mapExecError(exec.ErrNotFound)
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("mapped error lost exec.ErrNotFound: %v", err)
	}

	plain := errors.New("weird failure")
	if got := mapExecError(plain); got != plain {
		t.Errorf("mapExecError(%v) = %v; want passthrough", plain, got)
	}
}
