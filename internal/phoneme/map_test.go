package phoneme

import (
	"reflect"
	"testing"
)

func TestMapHello(t *testing.T) {
	// "hello": HH AH0 L OW1
	res := Map([]Phone{"HH", "AH0", "L", "OW1"}, Engineered())

	if got, want := res.Symbols(), "○~ ▼| ⊣> ▶—"; got != want {
		t.Errorf("Symbols() = %q; want %q", got, want)
	}
	if !res.FullyMapped() {
		t.Errorf("unexpected unmapped phones: %v", res.Unmapped)
	}
}

func TestMapFox(t *testing.T) {
	// "fox": F AA1 K S
	res := Map([]Phone{"F", "AA1", "K", "S"}, Engineered())

	if got, want := res.Symbols(), "⌁~ ▼— ⌂ ⊣~"; got != want {
		t.Errorf("Symbols() = %q; want %q", got, want)
	}
}

func TestMapESpeakDialect(t *testing.T) {
	res := Map([]Phone{"HH", "AH0", "L", "OW1"}, ESpeak())

	if got, want := res.Symbols(), "h V l oU"; got != want {
		t.Errorf("Symbols() = %q; want %q", got, want)
	}
}

// The palatal glide in words like "yes" and "you" maps in both tables.
func TestMapPalatalGlide(t *testing.T) {
	// "yes": Y EH1 S
	res := Map([]Phone{"Y", "EH1", "S"}, Engineered())
	if got, want := res.Symbols(), "Ω> ▶| ⊣~"; got != want {
		t.Errorf("Symbols() = %q; want %q", got, want)
	}
	if !res.FullyMapped() {
		t.Errorf("unexpected unmapped phones: %v", res.Unmapped)
	}

	// "you": Y UW1
	esp := Map([]Phone{"Y", "UW1"}, ESpeak())
	if got, want := esp.Symbols(), "j u:"; got != want {
		t.Errorf("Symbols() = %q; want %q", got, want)
	}
}

func TestMapUnmappedPlaceholder(t *testing.T) {
	res := Map([]Phone{"HH", "DX", "OW1"}, Engineered())

	if len(res.Units) != 3 {
		t.Fatalf("got %d units, want 3", len(res.Units))
	}
	if got, want := res.Units[1].Display(), "<?>(DX)"; got != want {
		t.Errorf("Units[1].Display() = %q; want %q", got, want)
	}
	if !reflect.DeepEqual(res.Unmapped, []Phone{"DX"}) {
		t.Errorf("Unmapped = %v; want [DX]", res.Unmapped)
	}
}

// One output unit per input phone, and the unmapped list only holds
// input phones, for mixed and fully-unknown sequences alike.
func TestMapTotality(t *testing.T) {
	inputs := [][]Phone{
		nil,
		{},
		{"HH"},
		{"QQ", "XX"},
		{"HH", "QQ", "AH0", "XX", "OW1"},
	}

	for _, phones := range inputs {
		res := Map(phones, Engineered())
		if len(res.Units) != len(phones) {
			t.Errorf("Map(%v): got %d units, want %d", phones, len(res.Units), len(phones))
		}
		normalized := make(map[Phone]bool, len(phones))
		for _, p := range phones {
			normalized[StripStress(p)] = true
		}
		for _, u := range res.Unmapped {
			if !normalized[u] {
				t.Errorf("Map(%v): unmapped phone %q not in input", phones, u)
			}
		}
	}
}

func TestMapDeterministic(t *testing.T) {
	phones := []Phone{"DH", "EH1", "R", "QQ"}
	first := Map(phones, Engineered())
	second := Map(phones, Engineered())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Map not deterministic: %v vs %v", first, second)
	}
}

// A diphthong maps to one multi-glyph unit, keeping output length
// aligned with the input.
func TestMapDiphthong(t *testing.T) {
	res := Map([]Phone{"P", "R", "AY1", "S"}, Engineered())

	if len(res.Units) != 4 {
		t.Fatalf("got %d units, want 4", len(res.Units))
	}
	if got, want := res.Units[2].Symbol, "▼▲"; got != want {
		t.Errorf("AY symbol = %q; want %q", got, want)
	}
}

// A phone can be unmapped in one table while mapped in the other; the
// lists stay independent.
func TestMapUnmappedPerTable(t *testing.T) {
	phones := []Phone{"HH", "AX"}

	eng := Map(phones, Engineered())
	esp := Map(phones, ESpeak())
	if !eng.FullyMapped() || !esp.FullyMapped() {
		t.Fatalf("AX should map in both tables: eng=%v esp=%v", eng.Unmapped, esp.Unmapped)
	}

	// Shrunk copy of the espeak table missing AX.
	partial := &Table{
		name:       "partial",
		consonants: espeak.consonants,
		vowels:     map[Phone]string{"AH": "V"},
	}
	res := Map(phones, partial)
	if !reflect.DeepEqual(res.Unmapped, []Phone{"AX"}) {
		t.Errorf("partial table Unmapped = %v; want [AX]", res.Unmapped)
	}
	if eng2 := Map(phones, Engineered()); !eng2.FullyMapped() {
		t.Errorf("engineered table unaffected, got unmapped %v", eng2.Unmapped)
	}
}
