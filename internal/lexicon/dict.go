// Package lexicon provides word-to-pronunciation lookup backed by
// dictionaries in the cmudict text format.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-altenglish/internal/phoneme"
)

// Entry is a single pronunciation for a word.
type Entry struct {
	Word   string
	Phones []phoneme.Phone
}

// Dictionary holds word-to-pronunciation mappings. Words are stored
// lowercased; alternative pronunciations are kept in file order.
type Dictionary struct {
	entries map[string][]Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]Entry)}
}

// Add appends a pronunciation entry for word. Later additions for the
// same word become alternative pronunciations.
func (d *Dictionary) Add(word string, phones []phoneme.Phone) {
	key := strings.ToLower(word)
	d.entries[key] = append(d.entries[key], Entry{Word: key, Phones: phones})
}

// Lookup returns the first pronunciation for word, case-insensitively.
// The first pronunciation in file order wins when alternatives exist,
// so results are deterministic for a fixed dictionary.
func (d *Dictionary) Lookup(word string) ([]phoneme.Phone, bool) {
	alts, ok := d.entries[strings.ToLower(strings.TrimSpace(word))]
	if !ok || len(alts) == 0 {
		return nil, false
	}
	return alts[0].Phones, true
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Load reads a dictionary in cmudict format:
//
//	HELLO  HH AH0 L OW1
//	HELLO(1)  HH EH0 L OW1
//
// Lines starting with ";;;" and blank lines are skipped. A "(n)"
// suffix on the word marks an alternative pronunciation; the suffix
// is dropped and the entry is appended after the primary one.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and phones, got %q", lineNum, line)
		}

		word := fields[0]
		if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
			word = word[:i]
		}

		phones := make([]phoneme.Phone, len(fields)-1)
		for i, f := range fields[1:] {
			phones[i] = phoneme.Phone(f)
		}
		d.Add(word, phones)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile opens and loads a dictionary file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return d, nil
}
