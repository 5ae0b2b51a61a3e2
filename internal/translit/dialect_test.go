package translit

import (
	"reflect"
	"testing"

	"github.com/example/go-altenglish/internal/phoneme"
)

func TestDialectStringSingleWord(t *testing.T) {
	got, missing := dialectString([][]phoneme.Phone{
		{"HH", "AH0", "L", "OW1"},
	}, false)

	if want := "[[h V l oU]]"; got != want {
		t.Errorf("dialectString = %q; want %q", got, want)
	}
	if len(missing) != 0 {
		t.Errorf("unexpected missing phones: %v", missing)
	}
}

func TestDialectStringPauseBetweenWords(t *testing.T) {
	groups := [][]phoneme.Phone{
		{"HH", "AY1"},
		{"DH", "EH1", "R"},
	}

	got, _ := dialectString(groups, true)
	if want := "[[h aI , D E r]]"; got != want {
		t.Errorf("dialectString(pause) = %q; want %q", got, want)
	}

	got, _ = dialectString(groups, false)
	if want := "[[h aI D E r]]"; got != want {
		t.Errorf("dialectString(no pause) = %q; want %q", got, want)
	}
}

// Unknown phones are dropped from the string and reported; a group
// with nothing mappable contributes neither phones nor a pause.
func TestDialectStringMissingPhones(t *testing.T) {
	got, missing := dialectString([][]phoneme.Phone{
		{"QQ"},
		{"HH", "AY1"},
	}, true)

	if want := "[[h aI]]"; got != want {
		t.Errorf("dialectString = %q; want %q", got, want)
	}
	if !reflect.DeepEqual(missing, []phoneme.Phone{"QQ"}) {
		t.Errorf("missing = %v; want [QQ]", missing)
	}
}

func TestDialectStringEmpty(t *testing.T) {
	got, _ := dialectString(nil, true)
	if got != "" {
		t.Errorf("dialectString(nil) = %q; want empty", got)
	}

	got, missing := dialectString([][]phoneme.Phone{{"QQ", "XX"}}, false)
	if got != "" {
		t.Errorf("dialectString(all unknown) = %q; want empty", got)
	}
	if len(missing) != 2 {
		t.Errorf("missing = %v; want 2 phones", missing)
	}
}
