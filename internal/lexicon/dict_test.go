package lexicon

import (
	"reflect"
	"strings"
	"testing"

	"github.com/example/go-altenglish/internal/phoneme"
)

func TestLoad(t *testing.T) {
	input := `;;; comment line
HELLO  HH AH0 L OW1
HELLO(1)  HH EH0 L OW1

FOX  F AA1 K S
`
	d, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Len() != 2 {
		t.Errorf("Len() = %d; want 2", d.Len())
	}

	phones, ok := d.Lookup("hello")
	if !ok {
		t.Fatal("hello not found")
	}
	// First pronunciation wins over the (1) alternative.
	want := []phoneme.Phone{"HH", "AH0", "L", "OW1"}
	if !reflect.DeepEqual(phones, want) {
		t.Errorf("Lookup(hello) = %v; want %v", phones, want)
	}
}

func TestLoadRejectsBareWord(t *testing.T) {
	_, err := Load(strings.NewReader("HELLO\n"))
	if err == nil {
		t.Fatal("expected error for line without phones")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	d := NewDictionary()
	d.Add("Hello", []phoneme.Phone{"HH", "AH0", "L", "OW1"})

	for _, w := range []string{"hello", "HELLO", "Hello", " hello "} {
		if _, ok := d.Lookup(w); !ok {
			t.Errorf("Lookup(%q) missed", w)
		}
	}
	if _, ok := d.Lookup("goodbye"); ok {
		t.Error("Lookup(goodbye) unexpectedly hit")
	}
}

func TestSeed(t *testing.T) {
	d := Seed()
	if d.Len() == 0 {
		t.Fatal("seed dictionary is empty")
	}

	phones, ok := d.Lookup("hello")
	if !ok {
		t.Fatal("seed is missing hello")
	}
	want := []phoneme.Phone{"HH", "AH0", "L", "OW1"}
	if !reflect.DeepEqual(phones, want) {
		t.Errorf("Lookup(hello) = %v; want %v", phones, want)
	}

	// Every phone in the seed should map in both symbol tables, so
	// seed-backed transliterations never hit placeholders.
	for word, alts := range d.entries {
		for _, e := range alts {
			for _, p := range e.Phones {
				base := phoneme.StripStress(p)
				if _, ok := phoneme.Engineered().Lookup(base); !ok {
					t.Errorf("seed word %q: phone %q not in engineered table", word, p)
				}
				if _, ok := phoneme.ESpeak().Lookup(base); !ok {
					t.Errorf("seed word %q: phone %q not in espeak table", word, p)
				}
			}
		}
	}
}
