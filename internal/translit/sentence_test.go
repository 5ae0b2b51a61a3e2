package translit

import (
	"testing"

	"github.com/example/go-altenglish/internal/token"
)

func TestRenderSentencePreservePunctuation(t *testing.T) {
	symbols := map[string]string{
		"Hi":    "○~ ▼▲",
		"there": "∆~· ▶| ⊣>>",
	}
	tokens := token.Scan("Hi, there!")

	got := renderSentence(tokens, symbols, true)
	want := "○~ ▼▲, ∆~· ▶| ⊣>>!"
	if got != want {
		t.Errorf("renderSentence(preserve) = %q; want %q", got, want)
	}
}

func TestRenderSentenceDropPunctuation(t *testing.T) {
	symbols := map[string]string{
		"Hi":    "○~ ▼▲",
		"there": "∆~· ▶| ⊣>>",
	}
	tokens := token.Scan("Hi, there!")

	got := renderSentence(tokens, symbols, false)
	// "," and "!" become single spaces; the result is trimmed.
	want := "○~ ▼▲  ∆~· ▶| ⊣>>"
	if got != want {
		t.Errorf("renderSentence(drop) = %q; want %q", got, want)
	}
}

// Unknown words become placeholders; they are never dropped or left
// as raw text without a marker.
func TestRenderSentenceUnknownWordPlaceholder(t *testing.T) {
	tokens := token.Scan("hello zzqqy")
	symbols := map[string]string{"hello": "○~ ▼| ⊣> ▶—"}

	got := renderSentence(tokens, symbols, true)
	want := "○~ ▼| ⊣> ▶— <?>(zzqqy)"
	if got != want {
		t.Errorf("renderSentence = %q; want %q", got, want)
	}
}

// Substitution is exact-text: a capitalized occurrence does not match
// a lowercase key.
func TestRenderSentenceExactTextMatch(t *testing.T) {
	tokens := token.Scan("Hello hello")
	symbols := map[string]string{"hello": "X"}

	got := renderSentence(tokens, symbols, true)
	want := "<?>(Hello) X"
	if got != want {
		t.Errorf("renderSentence = %q; want %q", got, want)
	}
}

// Whitespace passes through verbatim, including line breaks and runs.
func TestRenderSentenceKeepsWhitespace(t *testing.T) {
	tokens := token.Scan("a  b\nc")
	symbols := map[string]string{"a": "A", "b": "B", "c": "C"}

	got := renderSentence(tokens, symbols, true)
	want := "A  B\nC"
	if got != want {
		t.Errorf("renderSentence = %q; want %q", got, want)
	}
}
