// Package pitch implements musical pitches and intervals in several related
// representations: spelled (line-of-fifths notation), enharmonic (integer
// semitones, MIDI convention), generic (diatonic steps) and log-frequency.
//
// Each representation family provides four value types: Pitch, Interval,
// PitchClass and IntervalClass. They are related by the same algebra in every
// family: pitch - pitch = interval, pitch +/- interval = pitch, to-class
// reduction drops the octave, and embedding maps a class back to a default
// octave. All values are immutable; arithmetic returns new values.
//
// Values cross representation families only through explicit conversion, see
// Convert and Registry.
package pitch

// Family identifies a representation family.
type Family int

const (
	FamilySpelled Family = iota
	FamilyEnharmonic
	FamilyGeneric
	FamilyLogFreq
)

func (f Family) String() string {
	switch f {
	case FamilySpelled:
		return "Spelled"
	case FamilyEnharmonic:
		return "Enharmonic"
	case FamilyGeneric:
		return "Generic"
	case FamilyLogFreq:
		return "LogFreq"
	default:
		return "Family(?)"
	}
}

// Kind distinguishes the four value types within a family.
type Kind int

const (
	KindPitch Kind = iota
	KindInterval
	KindPitchClass
	KindIntervalClass
)

func (k Kind) String() string {
	switch k {
	case KindPitch:
		return "Pitch"
	case KindInterval:
		return "Interval"
	case KindPitchClass:
		return "PitchClass"
	case KindIntervalClass:
		return "IntervalClass"
	default:
		return "Kind(?)"
	}
}

// IsPitch reports whether the kind represents a pitch (as opposed to an
// interval).
func (k Kind) IsPitch() bool {
	return k == KindPitch || k == KindPitchClass
}

// IsClass reports whether the kind is octave-free.
func (k Kind) IsClass() bool {
	return k == KindPitchClass || k == KindIntervalClass
}

// Type identifies one concrete value type, e.g. the spelled pitch class type.
// It is the key used by the conversion registry.
type Type struct {
	Family Family
	Kind   Kind
}

func (t Type) String() string {
	return t.Family.String() + t.Kind.String()
}

// The types of the built-in representation families.
var (
	TypeSpelledPitch            = Type{FamilySpelled, KindPitch}
	TypeSpelledInterval         = Type{FamilySpelled, KindInterval}
	TypeSpelledPitchClass       = Type{FamilySpelled, KindPitchClass}
	TypeSpelledIntervalClass    = Type{FamilySpelled, KindIntervalClass}
	TypeEnharmonicPitch         = Type{FamilyEnharmonic, KindPitch}
	TypeEnharmonicInterval      = Type{FamilyEnharmonic, KindInterval}
	TypeEnharmonicPitchClass    = Type{FamilyEnharmonic, KindPitchClass}
	TypeEnharmonicIntervalClass = Type{FamilyEnharmonic, KindIntervalClass}
	TypeGenericPitch            = Type{FamilyGeneric, KindPitch}
	TypeGenericInterval         = Type{FamilyGeneric, KindInterval}
	TypeGenericPitchClass       = Type{FamilyGeneric, KindPitchClass}
	TypeGenericIntervalClass    = Type{FamilyGeneric, KindIntervalClass}
	TypeLogFreqPitch            = Type{FamilyLogFreq, KindPitch}
	TypeLogFreqInterval         = Type{FamilyLogFreq, KindInterval}
	TypeLogFreqPitchClass       = Type{FamilyLogFreq, KindPitchClass}
	TypeLogFreqIntervalClass    = Type{FamilyLogFreq, KindIntervalClass}
)

// Value is the interface shared by all pitch and interval values. The
// concrete types behind it form a closed set: the four kinds of each
// representation family.
type Value interface {
	// Type returns the value's type tag (family and kind).
	Type() Type
	// String returns the value in its canonical string notation.
	String() string
}

// IsPitch reports whether v is a pitch or pitch class.
func IsPitch(v Value) bool { return v.Type().Kind.IsPitch() }

// IsClass reports whether v is octave-free.
func IsClass(v Value) bool { return v.Type().Kind.IsClass() }
