package phoneme

import "testing"

func TestStripStress(t *testing.T) {
	tests := []struct {
		in   Phone
		want Phone
	}{
		{"AH0", "AH"},
		{"OW1", "OW"},
		{"EH2", "EH"},
		{"HH", "HH"},
		{"NG", "NG"},
		{"", ""},
		// Only the stress digits 0-2 are stripped.
		{"AH3", "AH3"},
		{"X9", "X9"},
	}

	for _, tt := range tests {
		if got := StripStress(tt.in); got != tt.want {
			t.Errorf("StripStress(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripStressIdempotent(t *testing.T) {
	phones := []Phone{"AH0", "OW1", "HH", "NG", "ER0"}
	for _, p := range phones {
		once := StripStress(p)
		twice := StripStress(once)
		if once != twice {
			t.Errorf("StripStress not idempotent for %q: once=%q twice=%q", p, once, twice)
		}
	}
}

func TestTablePartitionsDisjoint(t *testing.T) {
	for _, table := range []*Table{Engineered(), ESpeak()} {
		for p := range table.consonants {
			if _, ok := table.vowels[p]; ok {
				t.Errorf("%s table: phone %q present in both partitions", table.name, p)
			}
		}
	}
}

func TestTablesCoverSamePhones(t *testing.T) {
	eng, esp := Engineered(), ESpeak()
	if eng.Len() != esp.Len() {
		t.Fatalf("table sizes differ: engineered=%d espeak=%d", eng.Len(), esp.Len())
	}
	for p := range eng.consonants {
		if _, ok := esp.Lookup(p); !ok {
			t.Errorf("espeak table missing consonant %q", p)
		}
	}
	for p := range eng.vowels {
		if _, ok := esp.Lookup(p); !ok {
			t.Errorf("espeak table missing vowel %q", p)
		}
	}
}
