package pitch

import "strconv"

// The spelled types represent notated pitches and intervals exactly, i.e.
// C# and Db are distinct values. Internally they store a line-of-fifths
// position plus, for the non-class types, a dependent octave relative to a
// C-based reference realization. The externally visible octave is
// internal + floor(4*fifths/7).

// SpelledPitch is a notated pitch such as C#4 or Db-2.
type SpelledPitch struct {
	fifths  int
	octaves int // internal, C-based
}

// ParseSpelledPitch parses notation of the form <letter><accidentals><octave>,
// e.g. "C#4", "E5" or "Db-2". Accidentals may be ASCII (#/b) or unicode
// (♯/♭), but not mixed in direction within the same token.
func ParseSpelledPitch(s string) (SpelledPitch, error) {
	fifths, octave, hasOctave, err := parsePitch(s)
	if err != nil {
		return SpelledPitch{}, err
	}
	if !hasOctave {
		return SpelledPitch{}, &ParseError{Input: s, Expected: `a spelled pitch with an octave, like "C#4"`}
	}
	// correct for the octaves taken by the fifth steps
	return SpelledPitch{fifths: fifths, octaves: octave - floorDiv(DiatonicSteps(fifths), 7)}, nil
}

// SpelledPitchFromFifthsAndOctaves creates a pitch from its internal fifths
// and octaves. The pitch is reached from C0 by moving the given number of
// fifths and octaves upwards (downwards for negative values).
func SpelledPitchFromFifthsAndOctaves(fifths, octaves int) SpelledPitch {
	return SpelledPitch{fifths: fifths, octaves: octaves}
}

func (p SpelledPitch) Type() Type { return TypeSpelledPitch }

func (p SpelledPitch) String() string {
	return PitchClassName(p.fifths) + strconv.Itoa(p.Octaves())
}

// Fifths returns the position of the pitch on the line of fifths.
func (p SpelledPitch) Fifths() int { return p.fifths }

// Octaves returns the absolute octave of the pitch.
func (p SpelledPitch) Octaves() int {
	return p.octaves + floorDiv(DiatonicSteps(p.fifths), 7)
}

// InternalOctaves returns the fifths-dependent internal octave. Only use
// this if you know what you are doing.
func (p SpelledPitch) InternalOctaves() int { return p.octaves }

// Degree returns the diatonic degree of the pitch letter (C=0, D=1, ...).
func (p SpelledPitch) Degree() int { return floorMod(p.fifths*4, 7) }

// Alteration returns the accidentals of the pitch (positive = sharps,
// negative = flats, 0 = natural).
func (p SpelledPitch) Alteration() int { return floorDiv(p.fifths+1, 7) }

// Letter returns the letter of the pitch without accidentals.
func (p SpelledPitch) Letter() byte { return byte('A' + (p.Degree()+2)%7) }

// PC returns the pitch class of the pitch.
func (p SpelledPitch) PC() SpelledPitchClass { return SpelledPitchClass{fifths: p.fifths} }

// Embed returns the pitch itself (it is already embedded).
func (p SpelledPitch) Embed() SpelledPitch { return p }

// Add transposes the pitch up by an interval.
func (p SpelledPitch) Add(i SpelledInterval) SpelledPitch {
	return SpelledPitch{fifths: p.fifths + i.fifths, octaves: p.octaves + i.octaves}
}

// Sub transposes the pitch down by an interval.
func (p SpelledPitch) Sub(i SpelledInterval) SpelledPitch {
	return SpelledPitch{fifths: p.fifths - i.fifths, octaves: p.octaves - i.octaves}
}

// IntervalFrom returns the interval from o to p.
func (p SpelledPitch) IntervalFrom(o SpelledPitch) SpelledInterval {
	return SpelledInterval{fifths: p.fifths - o.fifths, octaves: p.octaves - o.octaves}
}

// Compare orders pitches diatonically: letter order dominates (C#4 < Db4)
// and accidentals break ties within the same letter (C4 < C#4).
// Returns -1, 0 or 1.
func (p SpelledPitch) Compare(o SpelledPitch) int {
	return compareSpelled(p.IntervalFrom(o))
}

// SpelledInterval is a notated interval such as M3:0 (major third) or
// -m2:1 (minor ninth down).
type SpelledInterval struct {
	fifths  int
	octaves int // internal, fifths-dependent
}

// ParseSpelledInterval parses notation of the form -?<quality><generic>:<octaves>,
// e.g. "M6:0", "-m3:0" or "aa2:1". Qualities are d (diminished), m (minor),
// M (major), P (perfect) and a (augmented), where d and a can be repeated.
// The octave count is non-negative; downward intervals carry a leading "-".
func ParseSpelledInterval(s string) (SpelledInterval, error) {
	sign, fifths, octave, hasOctave, err := parseInterval(s)
	if err != nil {
		return SpelledInterval{}, err
	}
	if !hasOctave {
		return SpelledInterval{}, &ParseError{Input: s, Expected: `a spelled interval with an octave, like "M3:0"`}
	}
	if octave < 0 {
		return SpelledInterval{}, &ParseError{Input: s, Expected: `a non-negative octave count (downward intervals are written with a leading "-")`}
	}
	octave -= floorDiv(DiatonicSteps(fifths), 7)
	if sign < 0 {
		fifths, octave = -fifths, -octave
	}
	return SpelledInterval{fifths: fifths, octaves: octave}, nil
}

// SpelledIntervalFromFifthsAndOctaves creates an interval from its internal
// fifths and octaves.
func SpelledIntervalFromFifthsAndOctaves(fifths, octaves int) SpelledInterval {
	return SpelledInterval{fifths: fifths, octaves: octaves}
}

// SpelledUnison returns a perfect unison (P1:0).
func SpelledUnison() SpelledInterval { return SpelledInterval{} }

// SpelledOctave returns a perfect octave (P1:1).
func SpelledOctave() SpelledInterval { return SpelledInterval{octaves: 1} }

// SpelledChromaticSemitone returns an augmented unison (a1:0).
func SpelledChromaticSemitone() SpelledInterval {
	return SpelledInterval{fifths: 7, octaves: -4}
}

func (i SpelledInterval) Type() Type { return TypeSpelledInterval }

func (i SpelledInterval) String() string {
	octave := i.Octaves()
	if octave < 0 {
		octave = -octave
	}
	if i.Direction() == -1 {
		// The internal octave -1 is the first downward octave, which prints
		// as octave 0 with a "-" sign, so the absolute value shrinks by one.
		// Unisons are the exception: they span zero diatonic steps.
		if floorMod(i.DiatonicSteps(), 7) != 0 {
			octave--
		}
		return "-" + IntervalClassName(-i.fifths) + ":" + strconv.Itoa(octave)
	}
	return IntervalClassName(i.fifths) + ":" + strconv.Itoa(octave)
}

// Fifths returns the position of the interval on the line of fifths.
func (i SpelledInterval) Fifths() int { return i.fifths }

// Octaves returns the number of octaves the interval spans. Downward
// intervals start at -1, decreasing.
func (i SpelledInterval) Octaves() int {
	return i.octaves + floorDiv(DiatonicSteps(i.fifths), 7)
}

// InternalOctaves returns the fifths-dependent internal octave.
func (i SpelledInterval) InternalOctaves() int { return i.octaves }

// Degree returns the relative scale degree (0-6) the interval points to
// (unison=0, 2nd=1, 2nd down=6, ...).
func (i SpelledInterval) Degree() int { return floorMod(i.fifths*4, 7) }

// Generic returns the generic interval (-6..6), respecting direction
// (unison=0, 2nd up=1, 2nd down=-1).
func (i SpelledInterval) Generic() int {
	if i.Direction() < 0 {
		return -i.Neg().Degree()
	}
	return i.Degree()
}

// DiatonicSteps returns the diatonic steps of the interval (unison=0,
// 2nd=1, ..., octave=7, ...), respecting both direction and octaves.
func (i SpelledInterval) DiatonicSteps() int {
	return DiatonicSteps(i.fifths) + 7*i.octaves
}

// Alteration returns the number of chromatic semitones by which the upward
// form of the interval deviates from its perfect or major variant.
func (i SpelledInterval) Alteration() int {
	return floorDiv(i.Abs().fifths+1, 7)
}

// Direction returns 1 for upward intervals, -1 for downward intervals and 0
// for neutral ones. All unisons are neutral, including augmented and
// diminished ones.
func (i SpelledInterval) Direction() int {
	return sign(i.DiatonicSteps())
}

// Neg returns the interval with its direction reversed.
func (i SpelledInterval) Neg() SpelledInterval {
	return SpelledInterval{fifths: -i.fifths, octaves: -i.octaves}
}

// Abs returns the upward counterpart of a downward interval, otherwise the
// interval itself.
func (i SpelledInterval) Abs() SpelledInterval {
	if i.Direction() < 0 {
		return i.Neg()
	}
	return i
}

// Multiply scales the interval by an integer factor.
func (i SpelledInterval) Multiply(n int) SpelledInterval {
	return SpelledInterval{fifths: i.fifths * n, octaves: i.octaves * n}
}

// Add returns the sum of two intervals.
func (i SpelledInterval) Add(o SpelledInterval) SpelledInterval {
	return SpelledInterval{fifths: i.fifths + o.fifths, octaves: i.octaves + o.octaves}
}

// Sub returns the difference of two intervals.
func (i SpelledInterval) Sub(o SpelledInterval) SpelledInterval {
	return SpelledInterval{fifths: i.fifths - o.fifths, octaves: i.octaves - o.octaves}
}

// IC returns the interval class of the interval.
func (i SpelledInterval) IC() SpelledIntervalClass { return SpelledIntervalClass{fifths: i.fifths} }

// Embed returns the interval itself (it is already embedded).
func (i SpelledInterval) Embed() SpelledInterval { return i }

// IsStep reports whether the interval spans at most one diatonic step.
func (i SpelledInterval) IsStep() bool {
	ds := i.DiatonicSteps()
	return -1 <= ds && ds <= 1
}

// Compare orders intervals diatonically, with fifths (sharpness) breaking
// ties between enharmonically different intervals of the same diatonic size.
// Returns -1, 0 or 1.
func (i SpelledInterval) Compare(o SpelledInterval) int {
	return compareSpelled(i.Sub(o))
}

func compareSpelled(diff SpelledInterval) int {
	if c := sign(diff.DiatonicSteps()); c != 0 {
		return c
	}
	return sign(diff.fifths)
}

// SpelledPitchClass is an octave-free notated pitch such as C# or Dbb.
type SpelledPitchClass struct {
	fifths int
}

// ParseSpelledPitchClass parses notation of the form <letter><accidentals>,
// e.g. "C#", "E" or "Dbb".
func ParseSpelledPitchClass(s string) (SpelledPitchClass, error) {
	fifths, _, hasOctave, err := parsePitch(s)
	if err != nil {
		return SpelledPitchClass{}, err
	}
	if hasOctave {
		return SpelledPitchClass{}, &ParseError{Input: s, Expected: `a spelled pitch class without an octave, like "C#"`}
	}
	return SpelledPitchClass{fifths: fifths}, nil
}

// SpelledPitchClassFromFifths creates a pitch class from its position on the
// line of fifths (C=0, G=1, D=2, ...).
func SpelledPitchClassFromFifths(fifths int) SpelledPitchClass {
	return SpelledPitchClass{fifths: fifths}
}

func (p SpelledPitchClass) Type() Type { return TypeSpelledPitchClass }

func (p SpelledPitchClass) String() string { return PitchClassName(p.fifths) }

// Fifths returns the position of the pitch class on the line of fifths.
func (p SpelledPitchClass) Fifths() int { return p.fifths }

// Degree returns the diatonic degree of the pitch letter (C=0, D=1, ...).
func (p SpelledPitchClass) Degree() int { return floorMod(p.fifths*4, 7) }

// Alteration returns the accidentals of the pitch class.
func (p SpelledPitchClass) Alteration() int { return floorDiv(p.fifths+1, 7) }

// Letter returns the letter of the pitch class without accidentals.
func (p SpelledPitchClass) Letter() byte { return byte('A' + (p.Degree()+2)%7) }

// PC returns the pitch class itself.
func (p SpelledPitchClass) PC() SpelledPitchClass { return p }

// Embed returns the pitch that realizes the class in octave 0.
func (p SpelledPitchClass) Embed() SpelledPitch {
	return SpelledPitch{fifths: p.fifths, octaves: -floorDiv(DiatonicSteps(p.fifths), 7)}
}

// Add transposes the pitch class up by an interval class.
func (p SpelledPitchClass) Add(i SpelledIntervalClass) SpelledPitchClass {
	return SpelledPitchClass{fifths: p.fifths + i.fifths}
}

// Sub transposes the pitch class down by an interval class.
func (p SpelledPitchClass) Sub(i SpelledIntervalClass) SpelledPitchClass {
	return SpelledPitchClass{fifths: p.fifths - i.fifths}
}

// IntervalFrom returns the interval class from o to p.
func (p SpelledPitchClass) IntervalFrom(o SpelledPitchClass) SpelledIntervalClass {
	return SpelledIntervalClass{fifths: p.fifths - o.fifths}
}

// Compare orders pitch classes by their position on the line of fifths
// ("sharper" is greater). The class space is cyclic, so this is a chosen
// convention rather than an order compatible with the class arithmetic.
// Returns -1, 0 or 1.
func (p SpelledPitchClass) Compare(o SpelledPitchClass) int {
	return sign(p.fifths - o.fifths)
}

// SpelledIntervalClass is an octave-free notated interval such as M3 or aa2.
type SpelledIntervalClass struct {
	fifths int
}

// ParseSpelledIntervalClass parses notation of the form -?<quality><generic>,
// e.g. "M6", "-m3" or "aa2". A minor third down is the same class as a major
// sixth up.
func ParseSpelledIntervalClass(s string) (SpelledIntervalClass, error) {
	sign, fifths, _, hasOctave, err := parseInterval(s)
	if err != nil {
		return SpelledIntervalClass{}, err
	}
	if hasOctave {
		return SpelledIntervalClass{}, &ParseError{Input: s, Expected: `a spelled interval class without an octave, like "M3"`}
	}
	return SpelledIntervalClass{fifths: sign * fifths}, nil
}

// SpelledIntervalClassFromFifths creates an interval class from its position
// on the line of fifths.
func SpelledIntervalClassFromFifths(fifths int) SpelledIntervalClass {
	return SpelledIntervalClass{fifths: fifths}
}

// SpelledUnisonClass returns a perfect unison (P1), which for interval
// classes coincides with the octave.
func SpelledUnisonClass() SpelledIntervalClass { return SpelledIntervalClass{} }

// SpelledChromaticSemitoneClass returns an augmented unison (a1).
func SpelledChromaticSemitoneClass() SpelledIntervalClass {
	return SpelledIntervalClass{fifths: 7}
}

func (i SpelledIntervalClass) Type() Type { return TypeSpelledIntervalClass }

func (i SpelledIntervalClass) String() string { return IntervalClassName(i.fifths) }

// Fifths returns the position of the interval class on the line of fifths.
func (i SpelledIntervalClass) Fifths() int { return i.fifths }

// Degree returns the relative scale degree (0-6) the class points to.
func (i SpelledIntervalClass) Degree() int { return floorMod(i.fifths*4, 7) }

// Generic returns the generic interval class (0-6).
func (i SpelledIntervalClass) Generic() int { return i.Degree() }

// DiatonicSteps returns the diatonic steps of the class (0-6).
func (i SpelledIntervalClass) DiatonicSteps() int { return i.Degree() }

// Alteration returns the chromatic deviation from the perfect or major
// variant.
func (i SpelledIntervalClass) Alteration() int { return floorDiv(i.fifths+1, 7) }

// Direction returns the shortest-path direction of the class: degrees 1-3
// count as up, 4-6 as down, unisons as neutral.
func (i SpelledIntervalClass) Direction() int {
	ds := i.DiatonicSteps()
	if ds == 0 {
		return 0
	}
	if ds > 3 {
		return -1
	}
	return 1
}

// Neg returns the inverse of the interval class.
func (i SpelledIntervalClass) Neg() SpelledIntervalClass {
	return SpelledIntervalClass{fifths: -i.fifths}
}

// Abs returns the upward counterpart of a downward class, otherwise the
// class itself.
func (i SpelledIntervalClass) Abs() SpelledIntervalClass {
	if i.Direction() < 0 {
		return i.Neg()
	}
	return i
}

// Multiply scales the interval class by an integer factor.
func (i SpelledIntervalClass) Multiply(n int) SpelledIntervalClass {
	return SpelledIntervalClass{fifths: i.fifths * n}
}

// Add returns the sum of two interval classes.
func (i SpelledIntervalClass) Add(o SpelledIntervalClass) SpelledIntervalClass {
	return SpelledIntervalClass{fifths: i.fifths + o.fifths}
}

// Sub returns the difference of two interval classes.
func (i SpelledIntervalClass) Sub(o SpelledIntervalClass) SpelledIntervalClass {
	return SpelledIntervalClass{fifths: i.fifths - o.fifths}
}

// IC returns the interval class itself.
func (i SpelledIntervalClass) IC() SpelledIntervalClass { return i }

// Embed returns the interval that realizes the class in octave 0.
func (i SpelledIntervalClass) Embed() SpelledInterval {
	return SpelledInterval{fifths: i.fifths, octaves: -floorDiv(DiatonicSteps(i.fifths), 7)}
}

// IsStep reports whether the class is a step in either direction.
func (i SpelledIntervalClass) IsStep() bool {
	d := i.Degree()
	return d == 0 || d == 1 || d == 6
}

// Compare orders interval classes by their position on the line of fifths.
// See SpelledPitchClass.Compare for the caveat on cyclic ordering.
// Returns -1, 0 or 1.
func (i SpelledIntervalClass) Compare(o SpelledIntervalClass) int {
	return sign(i.fifths - o.fifths)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
