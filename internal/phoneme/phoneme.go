// Package phoneme maps ARPAbet phones to output symbol alphabets.
package phoneme

// Phone is a single ARPAbet phone, possibly carrying a trailing
// stress digit (0, 1 or 2), e.g. "AH0" or "HH".
type Phone string

// StripStress removes a trailing stress digit from a phone,
// e.g. AH0 -> AH. Phones without a stress digit pass through
// unchanged. Only the final character is considered, and only if it
// is 0, 1 or 2; other digits are left alone.
func StripStress(p Phone) Phone {
	if len(p) == 0 {
		return p
	}
	switch p[len(p)-1] {
	case '0', '1', '2':
		return p[:len(p)-1]
	}
	return p
}
