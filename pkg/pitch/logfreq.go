package pitch

import (
	"math"
	"strconv"
	"strings"
)

// The log-frequency types live in continuous frequency space. Pitches carry
// the natural logarithm of a frequency in Hz, intervals the natural logarithm
// of a frequency ratio. The class variants are reduced modulo one octave,
// i.e. modulo ln 2.

// floorModF is floorMod for floats: the result has the sign of b.
func floorModF(a, b float64) float64 {
	return a - math.Floor(a/b)*b
}

var log2 = math.Log(2)

func parseFreq(s string) (float64, error) {
	t, ok := strings.CutSuffix(s, "Hz")
	if !ok {
		return 0, &ParseError{Input: s, Expected: `a frequency like "440.0Hz"`}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Expected: `a frequency like "440.0Hz"`}
	}
	return f, nil
}

func parseRatio(s string) (float64, error) {
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Expected: `a frequency ratio like "1.5"`}
	}
	return r, nil
}

func formatFreq(logFreq float64) string {
	return strconv.FormatFloat(math.Exp(logFreq), 'f', 2, 64) + "Hz"
}

func formatRatio(logRatio float64) string {
	return strconv.FormatFloat(math.Exp(logRatio), 'f', 2, 64)
}

// LogFreqPitch is a pitch given as a point in log-frequency space.
type LogFreqPitch struct {
	logFreq float64
}

// ParseLogFreqPitch parses a frequency string such as "440.0Hz".
func ParseLogFreqPitch(s string) (LogFreqPitch, error) {
	f, err := parseFreq(s)
	if err != nil {
		return LogFreqPitch{}, err
	}
	return LogFreqPitchFromFreq(f), nil
}

// LogFreqPitchFromFreq creates a pitch from a frequency in Hz.
func LogFreqPitchFromFreq(freq float64) LogFreqPitch {
	return LogFreqPitch{logFreq: math.Log(freq)}
}

// LogFreqPitchFromLog creates a pitch directly from a log-frequency value.
func LogFreqPitchFromLog(logFreq float64) LogFreqPitch {
	return LogFreqPitch{logFreq: logFreq}
}

func (p LogFreqPitch) Type() Type { return TypeLogFreqPitch }

func (p LogFreqPitch) String() string { return formatFreq(p.logFreq) }

// Freq returns the frequency of the pitch in Hz.
func (p LogFreqPitch) Freq() float64 { return math.Exp(p.logFreq) }

// LogFreq returns the natural logarithm of the frequency.
func (p LogFreqPitch) LogFreq() float64 { return p.logFreq }

// PC returns the pitch class of the pitch.
func (p LogFreqPitch) PC() LogFreqPitchClass {
	return LogFreqPitchClass{logFreq: floorModF(p.logFreq, log2)}
}

// Embed returns the pitch itself.
func (p LogFreqPitch) Embed() LogFreqPitch { return p }

// Add transposes the pitch up by an interval.
func (p LogFreqPitch) Add(i LogFreqInterval) LogFreqPitch {
	return LogFreqPitch{logFreq: p.logFreq + i.logRatio}
}

// Sub transposes the pitch down by an interval.
func (p LogFreqPitch) Sub(i LogFreqInterval) LogFreqPitch {
	return LogFreqPitch{logFreq: p.logFreq - i.logRatio}
}

// IntervalFrom returns the interval from o to p.
func (p LogFreqPitch) IntervalFrom(o LogFreqPitch) LogFreqInterval {
	return LogFreqInterval{logRatio: p.logFreq - o.logFreq}
}

// Compare orders pitches by frequency. Returns -1, 0 or 1.
func (p LogFreqPitch) Compare(o LogFreqPitch) int { return signF(p.logFreq - o.logFreq) }

// LogFreqInterval is an interval given as the log of a frequency ratio.
type LogFreqInterval struct {
	logRatio float64
}

// ParseLogFreqInterval parses a bare frequency ratio such as "1.5".
func ParseLogFreqInterval(s string) (LogFreqInterval, error) {
	r, err := parseRatio(s)
	if err != nil {
		return LogFreqInterval{}, err
	}
	return LogFreqIntervalFromRatio(r), nil
}

// LogFreqIntervalFromRatio creates an interval from a frequency ratio.
func LogFreqIntervalFromRatio(ratio float64) LogFreqInterval {
	return LogFreqInterval{logRatio: math.Log(ratio)}
}

// LogFreqIntervalFromLog creates an interval directly from a log-ratio value.
func LogFreqIntervalFromLog(logRatio float64) LogFreqInterval {
	return LogFreqInterval{logRatio: logRatio}
}

// LogFreqUnison returns the zero interval (ratio 1).
func LogFreqUnison() LogFreqInterval { return LogFreqInterval{} }

// LogFreqOctave returns the octave interval (ratio 2).
func LogFreqOctave() LogFreqInterval { return LogFreqInterval{logRatio: log2} }

func (i LogFreqInterval) Type() Type { return TypeLogFreqInterval }

func (i LogFreqInterval) String() string { return formatRatio(i.logRatio) }

// Ratio returns the frequency ratio of the interval.
func (i LogFreqInterval) Ratio() float64 { return math.Exp(i.logRatio) }

// LogRatio returns the natural logarithm of the frequency ratio.
func (i LogFreqInterval) LogRatio() float64 { return i.logRatio }

// Direction returns the sign of the interval (ratio 1 is neutral).
func (i LogFreqInterval) Direction() int { return signF(i.logRatio) }

// Neg returns the interval with its direction reversed (inverse ratio).
func (i LogFreqInterval) Neg() LogFreqInterval { return LogFreqInterval{logRatio: -i.logRatio} }

// Abs returns the upward counterpart of a downward interval.
func (i LogFreqInterval) Abs() LogFreqInterval {
	return LogFreqInterval{logRatio: math.Abs(i.logRatio)}
}

// Multiply scales the interval by a factor in log space.
func (i LogFreqInterval) Multiply(x float64) LogFreqInterval {
	return LogFreqInterval{logRatio: i.logRatio * x}
}

// Add returns the sum of two intervals (ratios multiply).
func (i LogFreqInterval) Add(o LogFreqInterval) LogFreqInterval {
	return LogFreqInterval{logRatio: i.logRatio + o.logRatio}
}

// Sub returns the difference of two intervals (ratios divide).
func (i LogFreqInterval) Sub(o LogFreqInterval) LogFreqInterval {
	return LogFreqInterval{logRatio: i.logRatio - o.logRatio}
}

// IC returns the interval class of the interval.
func (i LogFreqInterval) IC() LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(i.logRatio, log2)}
}

// Embed returns the interval itself.
func (i LogFreqInterval) Embed() LogFreqInterval { return i }

// IsStep reports whether the interval is at most a whole tone (equal
// tempered) in either direction.
func (i LogFreqInterval) IsStep() bool {
	return math.Abs(i.logRatio) <= log2/6
}

// Compare orders intervals by ratio. Returns -1, 0 or 1.
func (i LogFreqInterval) Compare(o LogFreqInterval) int { return signF(i.logRatio - o.logRatio) }

// LogFreqPitchClass is an octave-free pitch in log-frequency space; the
// stored value lies in [0, ln 2).
type LogFreqPitchClass struct {
	logFreq float64
}

// ParseLogFreqPitchClass parses a frequency string such as "440.0Hz" and
// reduces it to the first octave.
func ParseLogFreqPitchClass(s string) (LogFreqPitchClass, error) {
	f, err := parseFreq(s)
	if err != nil {
		return LogFreqPitchClass{}, err
	}
	return LogFreqPitchClassFromFreq(f), nil
}

// LogFreqPitchClassFromFreq creates a pitch class from a frequency in Hz.
func LogFreqPitchClassFromFreq(freq float64) LogFreqPitchClass {
	return LogFreqPitchClass{logFreq: floorModF(math.Log(freq), log2)}
}

// LogFreqPitchClassFromLog creates a pitch class from a log-frequency value.
func LogFreqPitchClassFromLog(logFreq float64) LogFreqPitchClass {
	return LogFreqPitchClass{logFreq: floorModF(logFreq, log2)}
}

func (p LogFreqPitchClass) Type() Type { return TypeLogFreqPitchClass }

func (p LogFreqPitchClass) String() string { return formatFreq(p.logFreq) }

// Freq returns the representative frequency of the class in [1, 2) Hz scaled
// to the reduced log value.
func (p LogFreqPitchClass) Freq() float64 { return math.Exp(p.logFreq) }

// LogFreq returns the reduced log-frequency value in [0, ln 2).
func (p LogFreqPitchClass) LogFreq() float64 { return p.logFreq }

// PC returns the pitch class itself.
func (p LogFreqPitchClass) PC() LogFreqPitchClass { return p }

// Embed returns the pitch with the reduced log-frequency value.
func (p LogFreqPitchClass) Embed() LogFreqPitch { return LogFreqPitch{logFreq: p.logFreq} }

// Add transposes the pitch class up by an interval class.
func (p LogFreqPitchClass) Add(i LogFreqIntervalClass) LogFreqPitchClass {
	return LogFreqPitchClass{logFreq: floorModF(p.logFreq+i.logRatio, log2)}
}

// Sub transposes the pitch class down by an interval class.
func (p LogFreqPitchClass) Sub(i LogFreqIntervalClass) LogFreqPitchClass {
	return LogFreqPitchClass{logFreq: floorModF(p.logFreq-i.logRatio, log2)}
}

// IntervalFrom returns the interval class from o to p.
func (p LogFreqPitchClass) IntervalFrom(o LogFreqPitchClass) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(p.logFreq-o.logFreq, log2)}
}

// Compare orders pitch classes by reduced value. Returns -1, 0 or 1.
func (p LogFreqPitchClass) Compare(o LogFreqPitchClass) int { return signF(p.logFreq - o.logFreq) }

// LogFreqIntervalClass is an octave-free interval in log-frequency space; the
// stored value lies in [0, ln 2).
type LogFreqIntervalClass struct {
	logRatio float64
}

// ParseLogFreqIntervalClass parses a bare frequency ratio and reduces it to
// the first octave.
func ParseLogFreqIntervalClass(s string) (LogFreqIntervalClass, error) {
	r, err := parseRatio(s)
	if err != nil {
		return LogFreqIntervalClass{}, err
	}
	return LogFreqIntervalClassFromRatio(r), nil
}

// LogFreqIntervalClassFromRatio creates an interval class from a frequency
// ratio.
func LogFreqIntervalClassFromRatio(ratio float64) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(math.Log(ratio), log2)}
}

// LogFreqIntervalClassFromLog creates an interval class from a log-ratio
// value.
func LogFreqIntervalClassFromLog(logRatio float64) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(logRatio, log2)}
}

// LogFreqUnisonClass returns the zero interval class.
func LogFreqUnisonClass() LogFreqIntervalClass { return LogFreqIntervalClass{} }

func (i LogFreqIntervalClass) Type() Type { return TypeLogFreqIntervalClass }

func (i LogFreqIntervalClass) String() string { return formatRatio(i.logRatio) }

// Ratio returns the frequency ratio of the class in [1, 2).
func (i LogFreqIntervalClass) Ratio() float64 { return math.Exp(i.logRatio) }

// LogRatio returns the reduced log-ratio value in [0, ln 2).
func (i LogFreqIntervalClass) LogRatio() float64 { return i.logRatio }

// Direction returns the sign of the stored value: 0 for the unison class,
// 1 otherwise.
func (i LogFreqIntervalClass) Direction() int { return signF(i.logRatio) }

// Neg returns the inverse of the interval class.
func (i LogFreqIntervalClass) Neg() LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(-i.logRatio, log2)}
}

// Abs returns the class itself; classes are already non-negative.
func (i LogFreqIntervalClass) Abs() LogFreqIntervalClass { return i }

// Multiply scales the interval class by a factor in log space, reduced to
// the first octave.
func (i LogFreqIntervalClass) Multiply(x float64) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(i.logRatio*x, log2)}
}

// Add returns the sum of two interval classes, reduced to the first octave.
func (i LogFreqIntervalClass) Add(o LogFreqIntervalClass) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(i.logRatio+o.logRatio, log2)}
}

// Sub returns the difference of two interval classes, reduced to the first
// octave.
func (i LogFreqIntervalClass) Sub(o LogFreqIntervalClass) LogFreqIntervalClass {
	return LogFreqIntervalClass{logRatio: floorModF(i.logRatio-o.logRatio, log2)}
}

// IC returns the interval class itself.
func (i LogFreqIntervalClass) IC() LogFreqIntervalClass { return i }

// Embed returns the interval realizing the class within the first octave.
func (i LogFreqIntervalClass) Embed() LogFreqInterval {
	return LogFreqInterval{logRatio: i.logRatio}
}

// Compare orders interval classes by stored value. Returns -1, 0 or 1.
func (i LogFreqIntervalClass) Compare(o LogFreqIntervalClass) int {
	return signF(i.logRatio - o.logRatio)
}

// signF returns the sign of a float as -1, 0 or 1.
func signF(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
