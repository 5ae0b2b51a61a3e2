package phoneme

import "strings"

// Unit is one output slot of a mapping pass: either the table symbol
// for a phone, or an unmapped marker carrying the phone itself.
// There is exactly one Unit per input phone, so positions stay
// aligned with the input sequence.
type Unit struct {
	Phone  Phone  // normalized input phone
	Symbol string // table value; empty when Mapped is false
	Mapped bool
}

// Display renders the unit for output. Unmapped phones render as a
// visible marker embedding the phone, e.g. "<?>(DX)".
func (u Unit) Display() string {
	if u.Mapped {
		return u.Symbol
	}
	return "<?>(" + string(u.Phone) + ")"
}

// Result is the outcome of mapping one phone sequence through one
// table. Unmapped lists the phones with no table entry, in input
// order; it is empty for a fully mapped sequence.
type Result struct {
	Units    []Unit
	Unmapped []Phone
}

// Symbols returns the space-joined display string of all units.
func (r Result) Symbols() string {
	parts := make([]string, len(r.Units))
	for i, u := range r.Units {
		parts[i] = u.Display()
	}
	return strings.Join(parts, " ")
}

// FullyMapped reports whether every phone had a table entry.
func (r Result) FullyMapped() bool { return len(r.Unmapped) == 0 }

// Map runs a phone sequence through a table. Each phone is stress-
// normalized and looked up; misses produce an unmapped Unit instead
// of an error, so Map never fails and the output always has one unit
// per input phone. Map does not mutate the table and results share no
// state, so independent tables may be mapped concurrently.
func Map(phones []Phone, t *Table) Result {
	res := Result{Units: make([]Unit, 0, len(phones))}
	for _, p := range phones {
		base := StripStress(p)
		if sym, ok := t.Lookup(base); ok {
			res.Units = append(res.Units, Unit{Phone: base, Symbol: sym, Mapped: true})
			continue
		}
		res.Units = append(res.Units, Unit{Phone: base})
		res.Unmapped = append(res.Unmapped, base)
	}
	return res
}
