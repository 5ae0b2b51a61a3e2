// Package token splits raw text into words, whitespace and
// punctuation for transliteration.
package token

import (
	"strings"
	"unicode"
)

// Kind classifies a Token.
type Kind int

const (
	Word Kind = iota
	Whitespace
	Punctuation
)

// Token is one span of the input. Concatenating the Text of all
// tokens emitted by Scan, in order, reproduces the input exactly.
type Token struct {
	Kind Kind
	Text string
}

// Words extracts the word tokens from text, discarding everything
// else. A word is a maximal run of letters, optionally followed by a
// single apostrophe and more letters (possessives and contractions:
// "don't", "fox's"). The result may be empty.
func Words(text string) []string {
	var words []string
	for _, tok := range Scan(text) {
		if tok.Kind == Word {
			words = append(words, tok.Text)
		}
	}
	return words
}

// Scan tokenizes text into an ordered word/whitespace/punctuation
// stream covering every input character. Words follow the same
// apostrophe rule as Words; a maximal run of whitespace is one
// Whitespace token; any other single rune is a Punctuation token.
func Scan(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	for i := 0; i < len(runes); {
		switch {
		case unicode.IsLetter(runes[i]):
			j := scanWord(runes, i)
			tokens = append(tokens, Token{Kind: Word, Text: string(runes[i:j])})
			i = j
		case unicode.IsSpace(runes[i]):
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, Token{Kind: Whitespace, Text: string(runes[i:j])})
			i = j
		default:
			tokens = append(tokens, Token{Kind: Punctuation, Text: string(runes[i])})
			i++
		}
	}
	return tokens
}

// IsWord reports whether s is exactly one word token: letters with at
// most one internal apostrophe-joined suffix.
func IsWord(s string) bool {
	toks := Scan(s)
	return len(toks) == 1 && toks[0].Kind == Word
}

// Join reassembles token texts in order. Join(Scan(s)) == s for all s.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// scanWord returns the index one past the end of the word starting at
// start. runes[start] must be a letter. A single apostrophe is
// consumed only when immediately followed by another letter.
func scanWord(runes []rune, start int) int {
	i := start
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	if i < len(runes) && runes[i] == '\'' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
		i++
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			i++
		}
	}
	return i
}
