package translit

import (
	"strings"

	"github.com/example/go-altenglish/internal/token"
)

// renderSentence rebuilds the transliterated sentence from the
// lossless token stream. Word tokens are replaced by their
// transliteration when known, else by a placeholder embedding the
// original word; whitespace passes through verbatim; punctuation
// passes through verbatim when preservePunct is set and becomes a
// single space otherwise. The result is trimmed.
func renderSentence(tokens []token.Token, symbolsByWord map[string]string, preservePunct bool) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case token.Word:
			if sym, ok := symbolsByWord[t.Text]; ok {
				b.WriteString(sym)
			} else {
				b.WriteString("<?>(" + t.Text + ")")
			}
		case token.Whitespace:
			b.WriteString(t.Text)
		case token.Punctuation:
			if preservePunct {
				b.WriteString(t.Text)
			} else {
				b.WriteString(" ")
			}
		}
	}
	return strings.TrimSpace(b.String())
}
