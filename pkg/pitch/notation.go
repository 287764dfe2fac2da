package pitch

import (
	"regexp"
	"strconv"
	"strings"
)

// The two notation grammars. Both are anchored; a string either matches
// completely or is rejected.
//
//	pitch:    <letter A-G><accidentals, all # or all b><optional octave>
//	interval: <optional -><quality><generic 1-7><optional :octave>
//
// A missing octave marks the class variant. Unicode accidentals are accepted
// as aliases for # and b.
var (
	pitchRegex = regexp.MustCompile(
		`^(?P<class>[A-G])(?P<modifiers>#*|b*)(?P<octave>-?[0-9]+)?$`)
	intervalRegex = regexp.MustCompile(
		`^(?P<sign>[-+])?(?:` +
			`(?P<quality0>P)(?P<generic0>[145])|` + // perfect intervals
			`(?P<quality1>M|m)?(?P<generic1>[2367])|` + // imperfect intervals (no quality = M)
			`(?P<quality2>a+|d+)(?P<generic2>[1-7])` + // augmented/diminished intervals
			`)(?P<octave>:-?[0-9]+)?$`)
)

const (
	pitchGrammar    = `a pitch like "C#4" or pitch class like "Eb"`
	intervalGrammar = `an interval like "M3:0" or interval class like "-m7"`
)

// parsePitch parses pitch notation into a line-of-fifths position and an
// octave. hasOctave is false for pitch classes.
func parsePitch(s string) (fifths, octave int, hasOctave bool, err error) {
	// unicode flats and sharps are aliases for b and #
	t := strings.ReplaceAll(s, "♭", "b")
	t = strings.ReplaceAll(t, "♯", "#")
	m := pitchRegex.FindStringSubmatch(t)
	if m == nil {
		return 0, 0, false, &ParseError{Input: s, Expected: pitchGrammar}
	}
	letter := m[pitchRegex.SubexpIndex("class")]
	modifiers := m[pitchRegex.SubexpIndex("modifiers")]
	oct := m[pitchRegex.SubexpIndex("octave")]
	fifths, err = FifthsFromLetter(letter[0])
	if err != nil {
		return 0, 0, false, err
	}
	if strings.HasPrefix(modifiers, "#") {
		fifths += 7 * len(modifiers)
	} else {
		fifths -= 7 * len(modifiers)
	}
	if oct == "" {
		return fifths, 0, false, nil
	}
	octave, err = strconv.Atoi(oct)
	if err != nil {
		return 0, 0, false, &ParseError{Input: s, Expected: pitchGrammar}
	}
	return fifths, octave, true, nil
}

// parseInterval parses interval notation into a sign, a line-of-fifths
// position and an octave count. hasOctave is false for interval classes.
// The octave and fifths are returned as written; the caller applies the sign
// and converts the octave to the internal representation.
func parseInterval(s string) (sign, fifths, octave int, hasOctave bool, err error) {
	m := intervalRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false, &ParseError{Input: s, Expected: intervalGrammar}
	}
	var quality string
	var generic int
	for _, suffix := range []string{"0", "1", "2"} {
		g := m[intervalRegex.SubexpIndex("generic"+suffix)]
		if g == "" {
			continue
		}
		quality = m[intervalRegex.SubexpIndex("quality"+suffix)]
		generic = int(g[0] - '0')
		break
	}
	fifths, err = FifthsFromGeneric(generic)
	if err != nil {
		return 0, 0, 0, false, err
	}
	switch {
	case quality == "P" || quality == "M" || quality == "":
		// perfect and major need no adjustment (empty quality means major)
	case quality == "m":
		fifths -= 7
	case quality[0] == 'a':
		fifths += 7 * len(quality)
	case quality[0] == 'd':
		if generic == 1 || generic == 4 || generic == 5 {
			fifths -= 7 * len(quality)
		} else {
			// diminished imperfect intervals sit one extra fifths-step out
			fifths -= 7 * (len(quality) + 1)
		}
	}
	sign = 1
	if m[intervalRegex.SubexpIndex("sign")] == "-" {
		sign = -1
	}
	oct := m[intervalRegex.SubexpIndex("octave")]
	if oct == "" {
		return sign, fifths, 0, false, nil
	}
	octave, err = strconv.Atoi(oct[1:])
	if err != nil {
		return 0, 0, 0, false, &ParseError{Input: s, Expected: intervalGrammar}
	}
	return sign, fifths, octave, true, nil
}
