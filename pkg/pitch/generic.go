package pitch

import "strconv"

// The generic types are the diatonic analogue of the enharmonic family:
// seven steps per octave instead of twelve, with accidentals and interval
// qualities erased. A generic pitch is 7*(octave+1) plus a step in 0..6
// (C=0 .. B=6), a generic interval is a signed diatonic step count, and the
// class variants are reduced mod 7.

const genericLetters = "CDEFGAB"

// GenericPitch is a pitch reduced to its diatonic letter and octave.
type GenericPitch struct {
	value int
}

// ParseGenericPitch parses pitch notation such as "C#4" and drops the
// accidentals, keeping letter and octave.
func ParseGenericPitch(s string) (GenericPitch, error) {
	fifths, octave, hasOctave, err := parsePitch(s)
	if err != nil {
		return GenericPitch{}, err
	}
	if !hasOctave {
		return GenericPitch{}, &ParseError{Input: s, Expected: pitchGrammar + " with an octave"}
	}
	return GenericPitch{value: 7*(octave+1) + floorMod(DiatonicSteps(fifths), 7)}, nil
}

// GenericPitchFromStepAndOctave creates a pitch from a diatonic step (0..6,
// C=0) and an absolute octave.
func GenericPitchFromStepAndOctave(step, octave int) (GenericPitch, error) {
	if step < 0 || step > 6 {
		return GenericPitch{}, domainErrorf("diatonic step must be between 0 and 6 (incl.), got %d", step)
	}
	return GenericPitch{value: 7*(octave+1) + step}, nil
}

func (p GenericPitch) Type() Type { return TypeGenericPitch }

func (p GenericPitch) String() string {
	return string(genericLetters[floorMod(p.value, 7)]) + strconv.Itoa(p.Octaves())
}

// Letter returns the diatonic letter of the pitch.
func (p GenericPitch) Letter() byte { return genericLetters[floorMod(p.value, 7)] }

// Step returns the diatonic step of the pitch in 0..6 (C=0).
func (p GenericPitch) Step() int { return floorMod(p.value, 7) }

// Octaves returns the absolute octave of the pitch.
func (p GenericPitch) Octaves() int { return floorDiv(p.value, 7) - 1 }

// PC returns the pitch class of the pitch.
func (p GenericPitch) PC() GenericPitchClass {
	return GenericPitchClass{value: floorMod(p.value, 7)}
}

// Embed returns the pitch itself.
func (p GenericPitch) Embed() GenericPitch { return p }

// Add transposes the pitch up by an interval.
func (p GenericPitch) Add(i GenericInterval) GenericPitch {
	return GenericPitch{value: p.value + i.value}
}

// Sub transposes the pitch down by an interval.
func (p GenericPitch) Sub(i GenericInterval) GenericPitch {
	return GenericPitch{value: p.value - i.value}
}

// IntervalFrom returns the interval from o to p.
func (p GenericPitch) IntervalFrom(o GenericPitch) GenericInterval {
	return GenericInterval{value: p.value - o.value}
}

// Compare orders pitches diatonically. Returns -1, 0 or 1.
func (p GenericPitch) Compare(o GenericPitch) int { return sign(p.value - o.value) }

// GenericInterval is an interval given as a signed diatonic step count.
type GenericInterval struct {
	value int
}

// ParseGenericInterval parses interval notation such as "M3:0" and drops the
// quality, keeping the diatonic step count.
func ParseGenericInterval(s string) (GenericInterval, error) {
	sgn, fifths, octave, hasOctave, err := parseInterval(s)
	if err != nil {
		return GenericInterval{}, err
	}
	if !hasOctave {
		return GenericInterval{}, &ParseError{Input: s, Expected: intervalGrammar + " with an octave"}
	}
	steps := floorMod(DiatonicSteps(fifths), 7) + 7*octave
	return GenericInterval{value: sgn * steps}, nil
}

// GenericIntervalFromSteps creates an interval from a signed diatonic step
// count.
func GenericIntervalFromSteps(steps int) GenericInterval {
	return GenericInterval{value: steps}
}

// GenericUnison returns the zero interval.
func GenericUnison() GenericInterval { return GenericInterval{} }

// GenericOctave returns the octave interval (7 diatonic steps).
func GenericOctave() GenericInterval { return GenericInterval{value: 7} }

func (i GenericInterval) Type() Type { return TypeGenericInterval }

// String prints the interval as generic number and octave, e.g. "3:0" for an
// upward third. Downward intervals print the inverted class with a leading
// minus, matching the spelled convention.
func (i GenericInterval) String() string {
	if i.value < 0 {
		octave := -i.Octaves()
		if floorMod(i.value, 7) != 0 {
			octave--
		}
		number := floorMod(-i.value, 7) + 1
		return "-" + strconv.Itoa(number) + ":" + strconv.Itoa(octave)
	}
	number := floorMod(i.value, 7) + 1
	return strconv.Itoa(number) + ":" + strconv.Itoa(i.Octaves())
}

// DiatonicSteps returns the signed diatonic step count of the interval.
func (i GenericInterval) DiatonicSteps() int { return i.value }

// Octaves returns the number of octaves the interval spans.
func (i GenericInterval) Octaves() int { return floorDiv(i.value, 7) }

// Direction returns the sign of the interval.
func (i GenericInterval) Direction() int { return sign(i.value) }

// Neg returns the interval with its direction reversed.
func (i GenericInterval) Neg() GenericInterval { return GenericInterval{value: -i.value} }

// Abs returns the upward counterpart of a downward interval.
func (i GenericInterval) Abs() GenericInterval {
	if i.value < 0 {
		return i.Neg()
	}
	return i
}

// Multiply scales the interval by an integer factor.
func (i GenericInterval) Multiply(n int) GenericInterval {
	return GenericInterval{value: i.value * n}
}

// Add returns the sum of two intervals.
func (i GenericInterval) Add(o GenericInterval) GenericInterval {
	return GenericInterval{value: i.value + o.value}
}

// Sub returns the difference of two intervals.
func (i GenericInterval) Sub(o GenericInterval) GenericInterval {
	return GenericInterval{value: i.value - o.value}
}

// IC returns the interval class of the interval.
func (i GenericInterval) IC() GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(i.value, 7)}
}

// Embed returns the interval itself.
func (i GenericInterval) Embed() GenericInterval { return i }

// IsStep reports whether the interval is at most one diatonic step in either
// direction.
func (i GenericInterval) IsStep() bool { return -1 <= i.value && i.value <= 1 }

// Compare orders intervals diatonically. Returns -1, 0 or 1.
func (i GenericInterval) Compare(o GenericInterval) int { return sign(i.value - o.value) }

// GenericPitchClass is an octave-free diatonic pitch, a step in [0,7).
type GenericPitchClass struct {
	value int
}

// ParseGenericPitchClass parses pitch class notation such as "C#" and drops
// the accidentals.
func ParseGenericPitchClass(s string) (GenericPitchClass, error) {
	fifths, _, hasOctave, err := parsePitch(s)
	if err != nil {
		return GenericPitchClass{}, err
	}
	if hasOctave {
		return GenericPitchClass{}, &ParseError{Input: s, Expected: pitchGrammar + " without an octave"}
	}
	return GenericPitchClass{value: floorMod(DiatonicSteps(fifths), 7)}, nil
}

// GenericPitchClassFromStep creates a pitch class from a diatonic step; the
// value is reduced mod 7.
func GenericPitchClassFromStep(step int) GenericPitchClass {
	return GenericPitchClass{value: floorMod(step, 7)}
}

func (p GenericPitchClass) Type() Type { return TypeGenericPitchClass }

func (p GenericPitchClass) String() string { return string(genericLetters[p.value]) }

// Letter returns the diatonic letter of the pitch class.
func (p GenericPitchClass) Letter() byte { return genericLetters[p.value] }

// Step returns the diatonic step of the pitch class in [0,7).
func (p GenericPitchClass) Step() int { return p.value }

// PC returns the pitch class itself.
func (p GenericPitchClass) PC() GenericPitchClass { return p }

// Embed returns the pitch realizing the class in the reference octave.
func (p GenericPitchClass) Embed() GenericPitch { return GenericPitch{value: p.value} }

// Add transposes the pitch class up by an interval class.
func (p GenericPitchClass) Add(i GenericIntervalClass) GenericPitchClass {
	return GenericPitchClass{value: floorMod(p.value+i.value, 7)}
}

// Sub transposes the pitch class down by an interval class.
func (p GenericPitchClass) Sub(i GenericIntervalClass) GenericPitchClass {
	return GenericPitchClass{value: floorMod(p.value-i.value, 7)}
}

// IntervalFrom returns the interval class from o to p.
func (p GenericPitchClass) IntervalFrom(o GenericPitchClass) GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(p.value-o.value, 7)}
}

// Compare orders pitch classes by step. Returns -1, 0 or 1.
func (p GenericPitchClass) Compare(o GenericPitchClass) int { return sign(p.value - o.value) }

// GenericIntervalClass is an octave-free diatonic interval, a step count in
// [0,7).
type GenericIntervalClass struct {
	value int
}

// ParseGenericIntervalClass parses interval class notation such as "M3" and
// drops the quality.
func ParseGenericIntervalClass(s string) (GenericIntervalClass, error) {
	sgn, fifths, _, hasOctave, err := parseInterval(s)
	if err != nil {
		return GenericIntervalClass{}, err
	}
	if hasOctave {
		return GenericIntervalClass{}, &ParseError{Input: s, Expected: intervalGrammar + " without an octave"}
	}
	return GenericIntervalClass{value: floorMod(sgn*floorMod(DiatonicSteps(fifths), 7), 7)}, nil
}

// GenericIntervalClassFromSteps creates an interval class from a step count;
// the value is reduced mod 7.
func GenericIntervalClassFromSteps(steps int) GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(steps, 7)}
}

// GenericUnisonClass returns the zero interval class.
func GenericUnisonClass() GenericIntervalClass { return GenericIntervalClass{} }

func (i GenericIntervalClass) Type() Type { return TypeGenericIntervalClass }

// String prints the generic number of the class, e.g. "3" for a third.
func (i GenericIntervalClass) String() string { return strconv.Itoa(i.value + 1) }

// DiatonicSteps returns the step count of the class in [0,7).
func (i GenericIntervalClass) DiatonicSteps() int { return i.value }

// Direction returns the shortest realization's sign: 0 for the unison class,
// -1 for classes closer to the downward side (more than 3 steps), 1
// otherwise.
func (i GenericIntervalClass) Direction() int {
	switch {
	case i.value == 0:
		return 0
	case i.value > 3:
		return -1
	default:
		return 1
	}
}

// Neg returns the inverse of the interval class.
func (i GenericIntervalClass) Neg() GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(-i.value, 7)}
}

// Abs returns the class itself; classes are already non-negative.
func (i GenericIntervalClass) Abs() GenericIntervalClass { return i }

// Multiply scales the interval class by an integer factor, mod 7.
func (i GenericIntervalClass) Multiply(n int) GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(i.value*n, 7)}
}

// Add returns the sum of two interval classes, mod 7.
func (i GenericIntervalClass) Add(o GenericIntervalClass) GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(i.value+o.value, 7)}
}

// Sub returns the difference of two interval classes, mod 7.
func (i GenericIntervalClass) Sub(o GenericIntervalClass) GenericIntervalClass {
	return GenericIntervalClass{value: floorMod(i.value-o.value, 7)}
}

// IC returns the interval class itself.
func (i GenericIntervalClass) IC() GenericIntervalClass { return i }

// Embed returns the interval realizing the class within the first octave.
func (i GenericIntervalClass) Embed() GenericInterval {
	return GenericInterval{value: i.value}
}

// Compare orders interval classes by step count. Returns -1, 0 or 1.
func (i GenericIntervalClass) Compare(o GenericIntervalClass) int {
	return sign(i.value - o.value)
}
