package pitch

import (
	"math"
	"strconv"
)

// The enharmonic types represent pitches and intervals as equal-tempered
// semitone counts in the MIDI convention (C4 = 60). Spelling is not part of
// the value: C#4 and Db4 both map to 61. Whether accidentals print as sharps
// or flats is a presentation choice, see NameStyle.

// NameStyle selects the accidental spelling used when printing enharmonic
// pitches and pitch classes.
type NameStyle int

const (
	Sharps NameStyle = iota
	Flats
)

var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

func enharmonicName(semitone int, style NameStyle) string {
	if style == Flats {
		return flatNames[floorMod(semitone, 12)]
	}
	return sharpNames[floorMod(semitone, 12)]
}

// EnharmonicPitch is a pitch given as a MIDI semitone number.
type EnharmonicPitch struct {
	value int
}

// ParseEnharmonicPitch parses spelled pitch notation such as "C#4" and
// reduces it to its enharmonic value.
func ParseEnharmonicPitch(s string) (EnharmonicPitch, error) {
	p, err := ParseSpelledPitch(s)
	if err != nil {
		return EnharmonicPitch{}, err
	}
	return enharmonicFromSpelledPitch(p), nil
}

// EnharmonicPitchFromMIDI creates a pitch from a MIDI note number.
func EnharmonicPitchFromMIDI(midi int) EnharmonicPitch {
	return EnharmonicPitch{value: midi}
}

func (p EnharmonicPitch) Type() Type { return TypeEnharmonicPitch }

func (p EnharmonicPitch) String() string { return p.Name(Sharps) }

// Name returns the pitch name in the given accidental style, e.g. "C#4" or
// "Db4" for MIDI note 61.
func (p EnharmonicPitch) Name(style NameStyle) string {
	return enharmonicName(p.value, style) + strconv.Itoa(p.Octaves())
}

// MIDI returns the MIDI note number of the pitch.
func (p EnharmonicPitch) MIDI() int { return p.value }

// Octaves returns the absolute octave of the pitch (MIDI 60 is octave 4).
func (p EnharmonicPitch) Octaves() int { return floorDiv(p.value, 12) - 1 }

// Freq returns the frequency of the pitch in Hz, tuned to A4 = 440 Hz.
func (p EnharmonicPitch) Freq() float64 {
	return math.Pow(2, float64(p.value-69)/12) * 440
}

// PC returns the pitch class of the pitch.
func (p EnharmonicPitch) PC() EnharmonicPitchClass {
	return EnharmonicPitchClass{value: floorMod(p.value, 12)}
}

// Embed returns the pitch itself.
func (p EnharmonicPitch) Embed() EnharmonicPitch { return p }

// Add transposes the pitch up by an interval.
func (p EnharmonicPitch) Add(i EnharmonicInterval) EnharmonicPitch {
	return EnharmonicPitch{value: p.value + i.value}
}

// Sub transposes the pitch down by an interval.
func (p EnharmonicPitch) Sub(i EnharmonicInterval) EnharmonicPitch {
	return EnharmonicPitch{value: p.value - i.value}
}

// IntervalFrom returns the interval from o to p.
func (p EnharmonicPitch) IntervalFrom(o EnharmonicPitch) EnharmonicInterval {
	return EnharmonicInterval{value: p.value - o.value}
}

// Compare orders pitches by semitone. Returns -1, 0 or 1.
func (p EnharmonicPitch) Compare(o EnharmonicPitch) int { return sign(p.value - o.value) }

// EnharmonicInterval is an interval given as a signed semitone count.
type EnharmonicInterval struct {
	value int
}

// ParseEnharmonicInterval parses spelled interval notation such as "M3:0"
// and reduces it to its enharmonic value.
func ParseEnharmonicInterval(s string) (EnharmonicInterval, error) {
	i, err := ParseSpelledInterval(s)
	if err != nil {
		return EnharmonicInterval{}, err
	}
	return enharmonicFromSpelledInterval(i), nil
}

// EnharmonicIntervalFromSemitones creates an interval from a signed semitone
// count.
func EnharmonicIntervalFromSemitones(semitones int) EnharmonicInterval {
	return EnharmonicInterval{value: semitones}
}

// EnharmonicUnison returns the zero interval.
func EnharmonicUnison() EnharmonicInterval { return EnharmonicInterval{} }

// EnharmonicOctave returns the octave interval (12 semitones).
func EnharmonicOctave() EnharmonicInterval { return EnharmonicInterval{value: 12} }

// EnharmonicChromaticSemitone returns a single semitone.
func EnharmonicChromaticSemitone() EnharmonicInterval { return EnharmonicInterval{value: 1} }

func (i EnharmonicInterval) Type() Type { return TypeEnharmonicInterval }

func (i EnharmonicInterval) String() string {
	if i.value < 0 {
		return "-" + strconv.Itoa(-i.value)
	}
	return strconv.Itoa(i.value)
}

// Semitones returns the signed semitone count of the interval.
func (i EnharmonicInterval) Semitones() int { return i.value }

// Octaves returns the number of octaves the interval spans.
func (i EnharmonicInterval) Octaves() int { return floorDiv(i.value, 12) }

// Direction returns the sign of the interval.
func (i EnharmonicInterval) Direction() int { return sign(i.value) }

// Neg returns the interval with its direction reversed.
func (i EnharmonicInterval) Neg() EnharmonicInterval { return EnharmonicInterval{value: -i.value} }

// Abs returns the upward counterpart of a downward interval.
func (i EnharmonicInterval) Abs() EnharmonicInterval {
	if i.value < 0 {
		return i.Neg()
	}
	return i
}

// Multiply scales the interval by an integer factor.
func (i EnharmonicInterval) Multiply(n int) EnharmonicInterval {
	return EnharmonicInterval{value: i.value * n}
}

// Add returns the sum of two intervals.
func (i EnharmonicInterval) Add(o EnharmonicInterval) EnharmonicInterval {
	return EnharmonicInterval{value: i.value + o.value}
}

// Sub returns the difference of two intervals.
func (i EnharmonicInterval) Sub(o EnharmonicInterval) EnharmonicInterval {
	return EnharmonicInterval{value: i.value - o.value}
}

// IC returns the interval class of the interval.
func (i EnharmonicInterval) IC() EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(i.value, 12)}
}

// Embed returns the interval itself.
func (i EnharmonicInterval) Embed() EnharmonicInterval { return i }

// IsStep reports whether the interval is at most a whole tone in either
// direction.
func (i EnharmonicInterval) IsStep() bool { return -2 <= i.value && i.value <= 2 }

// Compare orders intervals by semitone. Returns -1, 0 or 1.
func (i EnharmonicInterval) Compare(o EnharmonicInterval) int { return sign(i.value - o.value) }

// EnharmonicPitchClass is an octave-free pitch given as a semitone in [0,12).
type EnharmonicPitchClass struct {
	value int
}

// ParseEnharmonicPitchClass parses spelled pitch class notation such as "C#"
// and reduces it to its enharmonic value.
func ParseEnharmonicPitchClass(s string) (EnharmonicPitchClass, error) {
	p, err := ParseSpelledPitchClass(s)
	if err != nil {
		return EnharmonicPitchClass{}, err
	}
	return enharmonicFromSpelledPitchClass(p), nil
}

// EnharmonicPitchClassFromSemitone creates a pitch class from a semitone
// number; the value is reduced mod 12.
func EnharmonicPitchClassFromSemitone(semitone int) EnharmonicPitchClass {
	return EnharmonicPitchClass{value: floorMod(semitone, 12)}
}

func (p EnharmonicPitchClass) Type() Type { return TypeEnharmonicPitchClass }

func (p EnharmonicPitchClass) String() string { return p.Name(Sharps) }

// Name returns the pitch class name in the given accidental style.
func (p EnharmonicPitchClass) Name(style NameStyle) string {
	return enharmonicName(p.value, style)
}

// Semitone returns the semitone number of the pitch class in [0,12).
func (p EnharmonicPitchClass) Semitone() int { return p.value }

// PC returns the pitch class itself.
func (p EnharmonicPitchClass) PC() EnharmonicPitchClass { return p }

// Embed returns the pitch realizing the class in the reference octave
// (MIDI notes 0..11, octave -1).
func (p EnharmonicPitchClass) Embed() EnharmonicPitch {
	return EnharmonicPitch{value: p.value}
}

// Add transposes the pitch class up by an interval class.
func (p EnharmonicPitchClass) Add(i EnharmonicIntervalClass) EnharmonicPitchClass {
	return EnharmonicPitchClass{value: floorMod(p.value+i.value, 12)}
}

// Sub transposes the pitch class down by an interval class.
func (p EnharmonicPitchClass) Sub(i EnharmonicIntervalClass) EnharmonicPitchClass {
	return EnharmonicPitchClass{value: floorMod(p.value-i.value, 12)}
}

// IntervalFrom returns the interval class from o to p.
func (p EnharmonicPitchClass) IntervalFrom(o EnharmonicPitchClass) EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(p.value-o.value, 12)}
}

// Compare orders pitch classes by semitone. Returns -1, 0 or 1.
func (p EnharmonicPitchClass) Compare(o EnharmonicPitchClass) int { return sign(p.value - o.value) }

// EnharmonicIntervalClass is an octave-free interval stored as a semitone
// count in [0,12).
type EnharmonicIntervalClass struct {
	value int
}

// ParseEnharmonicIntervalClass parses spelled interval class notation such
// as "M3" and reduces it to its enharmonic value.
func ParseEnharmonicIntervalClass(s string) (EnharmonicIntervalClass, error) {
	i, err := ParseSpelledIntervalClass(s)
	if err != nil {
		return EnharmonicIntervalClass{}, err
	}
	return enharmonicFromSpelledIntervalClass(i), nil
}

// EnharmonicIntervalClassFromSemitones creates an interval class from a
// semitone count; the value is reduced mod 12.
func EnharmonicIntervalClassFromSemitones(semitones int) EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(semitones, 12)}
}

// EnharmonicUnisonClass returns the zero interval class.
func EnharmonicUnisonClass() EnharmonicIntervalClass { return EnharmonicIntervalClass{} }

// EnharmonicChromaticSemitoneClass returns a single semitone class.
func EnharmonicChromaticSemitoneClass() EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: 1}
}

func (i EnharmonicIntervalClass) Type() Type { return TypeEnharmonicIntervalClass }

func (i EnharmonicIntervalClass) String() string { return strconv.Itoa(i.value) }

// Semitones returns the semitone count of the class in [0,12).
func (i EnharmonicIntervalClass) Semitones() int { return i.value }

// Direction returns the sign of the stored value: 0 for the unison class,
// 1 otherwise (the value is kept in [0,12)).
func (i EnharmonicIntervalClass) Direction() int { return sign(i.value) }

// Neg returns the inverse of the interval class.
func (i EnharmonicIntervalClass) Neg() EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(-i.value, 12)}
}

// Abs returns the class itself; classes are already non-negative.
func (i EnharmonicIntervalClass) Abs() EnharmonicIntervalClass { return i }

// Multiply scales the interval class by an integer factor, mod 12.
func (i EnharmonicIntervalClass) Multiply(n int) EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(i.value*n, 12)}
}

// Add returns the sum of two interval classes, mod 12.
func (i EnharmonicIntervalClass) Add(o EnharmonicIntervalClass) EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(i.value+o.value, 12)}
}

// Sub returns the difference of two interval classes, mod 12.
func (i EnharmonicIntervalClass) Sub(o EnharmonicIntervalClass) EnharmonicIntervalClass {
	return EnharmonicIntervalClass{value: floorMod(i.value-o.value, 12)}
}

// IC returns the interval class itself.
func (i EnharmonicIntervalClass) IC() EnharmonicIntervalClass { return i }

// Embed returns the interval realizing the class within the first octave.
func (i EnharmonicIntervalClass) Embed() EnharmonicInterval {
	return EnharmonicInterval{value: i.value}
}

// Compare orders interval classes by stored value. Returns -1, 0 or 1.
func (i EnharmonicIntervalClass) Compare(o EnharmonicIntervalClass) int {
	return sign(i.value - o.value)
}
