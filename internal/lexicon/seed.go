package lexicon

import (
	"bytes"
	_ "embed"
)

//go:embed cmudict_seed.txt
var seedData []byte

// Seed returns the built-in starter dictionary, so the tool works
// without pointing --dictionary at a full cmudict file. The seed is
// parsed once per call; callers keep the returned dictionary around.
func Seed() *Dictionary {
	d, err := Load(bytes.NewReader(seedData))
	if err != nil {
		// The seed is compiled in and covered by tests; a parse
		// failure here is a build defect.
		panic("lexicon: invalid embedded seed dictionary: " + err.Error())
	}
	return d
}
