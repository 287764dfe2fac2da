package pitch

import "strings"

// The line of fifths is the infinite chain of pitch classes obtained by
// stacking perfect fifths (... F, C, G, D, A, E, B, F#, ...), indexed by a
// signed integer with C = 0. Sharps add 7, flats subtract 7 per accidental.
// All spelled values are coordinates on this line, optionally paired with an
// octave.

// floorDiv returns the quotient of a/b rounded towards negative infinity.
// Accidental and octave bookkeeping depends on floor semantics for negative
// fifths, which plain Go integer division does not provide.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b (always in [0,b) for b > 0).
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// DiatonicSteps returns the number of diatonic steps corresponding to a
// number of steps on the line of fifths (4 * fifths).
func DiatonicSteps(fifths int) int {
	return 4 * fifths
}

// GenericIntervalNumber returns the generic interval number (1..7)
// corresponding to the given number of fifths.
func GenericIntervalNumber(fifths int) int {
	return floorMod(DiatonicSteps(fifths), 7) + 1
}

// Base letters along the line of fifths, starting one step below C.
var fifthsLetters = [7]string{"F", "C", "G", "D", "A", "E", "B"}

// PitchClassName returns the spelled pitch class name for a position on the
// line of fifths, e.g. C, Bb, F##, Abbb.
func PitchClassName(fifths int) string {
	base := fifthsLetters[floorMod(fifths+1, 7)]
	accidentals := floorDiv(fifths+1, 7)
	if accidentals > 0 {
		return base + strings.Repeat("#", accidentals)
	}
	return base + strings.Repeat("b", -accidentals)
}

// IntervalQuality returns the interval quality letter(s) for a position on
// the line of fifths: m/P/M within the central band, otherwise repeated
// a (augmented) or d (diminished).
func IntervalQuality(fifths int) string {
	if -5 <= fifths && fifths <= 5 {
		return [11]string{"m", "m", "m", "m", "P", "P", "P", "M", "M", "M", "M"}[fifths+5]
	}
	if fifths > 5 {
		return strings.Repeat("a", (fifths+1)/7)
	}
	return strings.Repeat("d", (-fifths+1)/7)
}

// IntervalClassName returns the canonical interval class name (quality plus
// generic number) for a position on the line of fifths, e.g. P1, m3, aa6.
func IntervalClassName(fifths int) string {
	return IntervalQuality(fifths) + string(rune('0'+GenericIntervalNumber(fifths)))
}

// FifthsFromLetter returns the line-of-fifths position of a diatonic pitch
// letter (A-G).
func FifthsFromLetter(letter byte) (int, error) {
	switch letter {
	case 'F':
		return -1, nil
	case 'C':
		return 0, nil
	case 'G':
		return 1, nil
	case 'D':
		return 2, nil
	case 'A':
		return 3, nil
	case 'E':
		return 4, nil
	case 'B':
		return 5, nil
	default:
		return 0, domainErrorf("diatonic pitch letter must be one of A-G, got %q", string(letter))
	}
}

// FifthsFromGeneric returns the line-of-fifths position of a generic
// interval number (1..7): (2n-1) mod 7 - 1.
func FifthsFromGeneric(generic int) (int, error) {
	if generic < 1 || generic > 7 {
		return 0, domainErrorf("generic interval must be between 1 and 7 (incl.), got %d", generic)
	}
	return floorMod(2*generic-1, 7) - 1, nil
}
