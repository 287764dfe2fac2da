package pitch

import "math"

// Conversions between the built-in families. Spelled values convert exactly
// to enharmonic and generic ones by erasing spelling information; enharmonic
// values convert to log-frequency space via twelve-tone equal temperament
// with A4 = 440 Hz. The interval conversions go through reference pitches
// (C4, or the pitch class C) so that the pitch and interval conversions
// cannot drift apart.

func enharmonicFromSpelledPitchClass(p SpelledPitchClass) EnharmonicPitchClass {
	f1 := p.Fifths() + 1
	base := floorMod((floorMod(f1, 7)-1)*7, 12)
	accidentals := floorDiv(f1, 7)
	return EnharmonicPitchClassFromSemitone(base + accidentals)
}

func enharmonicFromSpelledPitch(p SpelledPitch) EnharmonicPitch {
	f1 := p.Fifths() + 1
	base := floorMod((floorMod(f1, 7)-1)*7, 12)
	accidentals := floorDiv(f1, 7)
	return EnharmonicPitch{value: 12*(p.Octaves()+1) + base + accidentals}
}

func enharmonicFromSpelledInterval(i SpelledInterval) EnharmonicInterval {
	// C4 - i converted as a pitch, then measured back from enharmonic C4.
	ref := SpelledPitch{fifths: 0, octaves: 4}
	p := enharmonicFromSpelledPitch(ref.Sub(i))
	return EnharmonicInterval{value: 60 - p.value}
}

func enharmonicFromSpelledIntervalClass(i SpelledIntervalClass) EnharmonicIntervalClass {
	ref := SpelledPitchClass{fifths: 0}
	p := enharmonicFromSpelledPitchClass(ref.Sub(i))
	return EnharmonicIntervalClassFromSemitones(-p.value)
}

func genericFromSpelledPitchClass(p SpelledPitchClass) GenericPitchClass {
	return GenericPitchClass{value: p.Degree()}
}

func genericFromSpelledPitch(p SpelledPitch) GenericPitch {
	return GenericPitch{value: 7*(p.Octaves()+1) + p.Degree()}
}

func genericFromSpelledInterval(i SpelledInterval) GenericInterval {
	ref := SpelledPitch{fifths: 0, octaves: 4}
	p := genericFromSpelledPitch(ref.Sub(i))
	return GenericInterval{value: 35 - p.value}
}

func genericFromSpelledIntervalClass(i SpelledIntervalClass) GenericIntervalClass {
	ref := SpelledPitchClass{fifths: 0}
	p := genericFromSpelledPitchClass(ref.Sub(i))
	return GenericIntervalClass{value: floorMod(-p.value, 7)}
}

var logFreqA4 = math.Log(440)

func logFreqFromEnharmonicPitch(p EnharmonicPitch) LogFreqPitch {
	return LogFreqPitch{logFreq: logFreqA4 + float64(p.value-69)/12*log2}
}

func logFreqFromEnharmonicInterval(i EnharmonicInterval) LogFreqInterval {
	return LogFreqInterval{logRatio: float64(i.value) / 12 * log2}
}

func logFreqFromEnharmonicPitchClass(p EnharmonicPitchClass) LogFreqPitchClass {
	return LogFreqPitchClassFromLog(logFreqA4 + float64(p.value-69)/12*log2)
}

func logFreqFromEnharmonicIntervalClass(i EnharmonicIntervalClass) LogFreqIntervalClass {
	return LogFreqIntervalClassFromLog(float64(i.value) / 12 * log2)
}

// converter adapts a typed conversion function to a ConverterFunc.
func converter[F Value, T Value](fn func(F) T) ConverterFunc {
	return func(v Value) (Value, error) {
		f, ok := v.(F)
		if !ok {
			return nil, domainErrorf("converter expects a different value type, got %s", v.Type())
		}
		return fn(f), nil
	}
}

// defaultRegistry is wired once at package initialization and not mutated
// afterwards; the exported entry points only read from it.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	register := func(from, to Type, fn ConverterFunc) {
		if err := r.Register(from, to, fn, RegisterOptions{}); err != nil {
			panic(err)
		}
	}

	register(TypeSpelledPitch, TypeEnharmonicPitch, converter(enharmonicFromSpelledPitch))
	register(TypeSpelledInterval, TypeEnharmonicInterval, converter(enharmonicFromSpelledInterval))
	register(TypeSpelledPitchClass, TypeEnharmonicPitchClass, converter(enharmonicFromSpelledPitchClass))
	register(TypeSpelledIntervalClass, TypeEnharmonicIntervalClass, converter(enharmonicFromSpelledIntervalClass))

	register(TypeEnharmonicPitch, TypeLogFreqPitch, converter(logFreqFromEnharmonicPitch))
	register(TypeEnharmonicInterval, TypeLogFreqInterval, converter(logFreqFromEnharmonicInterval))
	register(TypeEnharmonicPitchClass, TypeLogFreqPitchClass, converter(logFreqFromEnharmonicPitchClass))
	register(TypeEnharmonicIntervalClass, TypeLogFreqIntervalClass, converter(logFreqFromEnharmonicIntervalClass))

	register(TypeSpelledPitch, TypeGenericPitch, converter(genericFromSpelledPitch))
	register(TypeSpelledInterval, TypeGenericInterval, converter(genericFromSpelledInterval))
	register(TypeSpelledPitchClass, TypeGenericPitchClass, converter(genericFromSpelledPitchClass))
	register(TypeSpelledIntervalClass, TypeGenericIntervalClass, converter(genericFromSpelledIntervalClass))

	register(TypeSpelledPitch, TypeSpelledPitchClass, converter(SpelledPitch.PC))
	register(TypeSpelledInterval, TypeSpelledIntervalClass, converter(SpelledInterval.IC))
	register(TypeEnharmonicPitch, TypeEnharmonicPitchClass, converter(EnharmonicPitch.PC))
	register(TypeEnharmonicInterval, TypeEnharmonicIntervalClass, converter(EnharmonicInterval.IC))
	register(TypeGenericPitch, TypeGenericPitchClass, converter(GenericPitch.PC))
	register(TypeGenericInterval, TypeGenericIntervalClass, converter(GenericInterval.IC))

	return r
}

// Convert converts a value to the given target type using the built-in
// conversions. See Registry.Convert.
func Convert(v Value, to Type) (Value, error) {
	return defaultRegistry.Convert(v, to)
}

// CanConvert reports whether the built-in conversions cover the given type
// pair.
func CanConvert(from, to Type) bool {
	return defaultRegistry.CanConvert(from, to)
}
