package translit

import (
	"strings"

	"github.com/example/go-altenglish/internal/phoneme"
)

// Delimiters for the synthesizer's phoneme-input mode. eSpeak reads
// its own phoneme notation between double brackets.
const (
	dialectOpen  = "[["
	dialectClose = "]]"
	// pauseToken is inserted between word groups as a short pause.
	pauseToken = ","
)

// dialectString converts per-word phone groups into a single
// synthesizer phoneme string like "[[h V l oU , D EH1 r]]". Phones
// missing from the dialect table are dropped from the string and
// returned in the second value. An empty string (no mappable phones
// at all) is returned as "".
func dialectString(groups [][]phoneme.Phone, pauseBetweenWords bool) (string, []phoneme.Phone) {
	var parts []string
	var missing []phoneme.Phone

	for _, group := range groups {
		res := phoneme.Map(group, phoneme.ESpeak())
		missing = append(missing, res.Unmapped...)

		var mapped []string
		for _, u := range res.Units {
			if u.Mapped {
				mapped = append(mapped, u.Symbol)
			}
		}
		if len(mapped) == 0 {
			continue
		}
		if pauseBetweenWords && len(parts) > 0 {
			parts = append(parts, pauseToken)
		}
		parts = append(parts, mapped...)
	}

	if len(parts) == 0 {
		return "", missing
	}
	return dialectOpen + strings.Join(parts, " ") + dialectClose, missing
}
