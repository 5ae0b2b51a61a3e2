package phoneme

// Table is an immutable phone-to-symbol mapping, split into a
// consonant and a vowel partition. The partitions never share a key;
// Lookup queries their union. Both process-wide tables are built once
// at init and never mutated.
type Table struct {
	name       string
	consonants map[Phone]string
	vowels     map[Phone]string
}

// Name returns the table's display name.
func (t *Table) Name() string { return t.name }

// Lookup returns the symbol for a normalized phone, querying the
// consonant partition first, then the vowel partition.
func (t *Table) Lookup(p Phone) (string, bool) {
	if s, ok := t.consonants[p]; ok {
		return s, true
	}
	s, ok := t.vowels[p]
	return s, ok
}

// Len returns the number of phones covered by both partitions.
func (t *Table) Len() int { return len(t.consonants) + len(t.vowels) }

// Engineered returns the table mapping phones to the engineered
// notation. Base shapes encode place of articulation, modifiers
// encode manner, the dot encodes voicing. Diphthongs are rendered as
// two vowel glyphs in sequence; that is a property of the table
// value, not of the mapper.
func Engineered() *Table { return engineered }

// ESpeak returns the table mapping phones to eSpeak's phoneme
// notation (not IPA), used for the synthesizer's phoneme-input mode.
func ESpeak() *Table { return espeak }

var engineered = &Table{
	name: "engineered",
	consonants: map[Phone]string{
		// Bilabial (□)
		"P": "□",
		"B": "□·",
		"M": "□°",
		"W": "□>",

		// Alveolar (⊣)
		"T": "⊣",
		"D": "⊣·",
		"S": "⊣~",
		"Z": "⊣~·",
		"N": "⊣°",
		"L": "⊣>",
		"R": "⊣>>",

		// Velar (⌂)
		"K": "⌂",
		"G": "⌂·",
		"NG": "⌂°",

		// Dental (∆)
		"TH": "∆~",
		"DH": "∆~·",

		// Postalveolar (Ω)
		"SH": "Ω~",
		"ZH": "Ω~·",
		"CH": "Ω+",
		"JH": "Ω+·",
		"Y":  "Ω>",

		// Glottal (○)
		"HH": "○~",

		// Labiodental (⌁)
		"F": "⌁~",
		"V": "⌁~·",
	},
	vowels: map[Phone]string{
		"IY": "▲",      // see
		"IH": "▲|",     // sit
		"EY": "▶",      // say
		"EH": "▶|",     // bed
		"AE": "▼",      // cat
		"AH": "▼|",     // cup
		"AX": "▶||",    // schwa
		"OW": "▶—",     // go
		"UW": "▲—",     // food
		"AA": "▼—",     // father
		"AO": "▼—",     // law, folded onto the father vowel
		"UH": "▲—",     // book, nearest covered vowel
		"ER": "▶||⊣>>", // r-colored schwa: schwa + r-approximant
		// Diphthongs, two glyphs each.
		"AY": "▼▲",   // price
		"AW": "▼▲—",  // mouth
		"OY": "▶—▲|", // choice
	},
}

var espeak = &Table{
	name: "espeak",
	consonants: map[Phone]string{
		"P": "p", "B": "b", "M": "m", "W": "w",
		"T": "t", "D": "d", "S": "s", "Z": "z", "N": "n", "L": "l", "R": "r",
		"K": "k", "G": "g", "NG": "N",
		"TH": "T", "DH": "D",
		"SH": "S", "ZH": "Z",
		"CH": "tS", "JH": "dZ", "Y": "j",
		"HH": "h",
		"F": "f", "V": "v",
	},
	vowels: map[Phone]string{
		"IY": "i:",
		"IH": "I",
		"EY": "eI",
		"EH": "E",
		"AE": "a",
		"AH": "V",
		"AX": "@",
		"OW": "oU",
		"UW": "u:",
		"AA": "A:",
		"AO": "O:",
		"UH": "U",
		"ER": "3:",
		"AY": "aI",
		"AW": "aU",
		"OY": "OI",
	},
}
