package pitch

import "math"

// Dynamic counterparts of the typed arithmetic methods. The concrete types
// know their operands statically; these functions dispatch on the Type tags
// instead, for callers that hold values behind the Value interface (the
// conversion registry, the CLI). Operand combinations follow the algebra
// shared by all families:
//
//	pitch + interval          = pitch
//	interval + interval       = interval
//	pitch - pitch             = interval
//	pitch - interval          = pitch
//	interval - interval       = interval
//
// and the same combinations for the class kinds. Anything else, including
// interval + pitch and any cross-family combination, is a *TypeMismatchError.

// Add adds b to a.
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case SpelledPitch:
		if y, ok := b.(SpelledInterval); ok {
			return x.Add(y), nil
		}
	case SpelledInterval:
		if y, ok := b.(SpelledInterval); ok {
			return x.Add(y), nil
		}
	case SpelledPitchClass:
		if y, ok := b.(SpelledIntervalClass); ok {
			return x.Add(y), nil
		}
	case SpelledIntervalClass:
		if y, ok := b.(SpelledIntervalClass); ok {
			return x.Add(y), nil
		}
	case EnharmonicPitch:
		if y, ok := b.(EnharmonicInterval); ok {
			return x.Add(y), nil
		}
	case EnharmonicInterval:
		if y, ok := b.(EnharmonicInterval); ok {
			return x.Add(y), nil
		}
	case EnharmonicPitchClass:
		if y, ok := b.(EnharmonicIntervalClass); ok {
			return x.Add(y), nil
		}
	case EnharmonicIntervalClass:
		if y, ok := b.(EnharmonicIntervalClass); ok {
			return x.Add(y), nil
		}
	case GenericPitch:
		if y, ok := b.(GenericInterval); ok {
			return x.Add(y), nil
		}
	case GenericInterval:
		if y, ok := b.(GenericInterval); ok {
			return x.Add(y), nil
		}
	case GenericPitchClass:
		if y, ok := b.(GenericIntervalClass); ok {
			return x.Add(y), nil
		}
	case GenericIntervalClass:
		if y, ok := b.(GenericIntervalClass); ok {
			return x.Add(y), nil
		}
	case LogFreqPitch:
		if y, ok := b.(LogFreqInterval); ok {
			return x.Add(y), nil
		}
	case LogFreqInterval:
		if y, ok := b.(LogFreqInterval); ok {
			return x.Add(y), nil
		}
	case LogFreqPitchClass:
		if y, ok := b.(LogFreqIntervalClass); ok {
			return x.Add(y), nil
		}
	case LogFreqIntervalClass:
		if y, ok := b.(LogFreqIntervalClass); ok {
			return x.Add(y), nil
		}
	}
	return nil, mismatch("+", a, b)
}

// Sub subtracts b from a. Subtracting two pitches yields the interval from b
// to a.
func Sub(a, b Value) (Value, error) {
	switch x := a.(type) {
	case SpelledPitch:
		switch y := b.(type) {
		case SpelledPitch:
			return x.IntervalFrom(y), nil
		case SpelledInterval:
			return x.Sub(y), nil
		}
	case SpelledInterval:
		if y, ok := b.(SpelledInterval); ok {
			return x.Sub(y), nil
		}
	case SpelledPitchClass:
		switch y := b.(type) {
		case SpelledPitchClass:
			return x.IntervalFrom(y), nil
		case SpelledIntervalClass:
			return x.Sub(y), nil
		}
	case SpelledIntervalClass:
		if y, ok := b.(SpelledIntervalClass); ok {
			return x.Sub(y), nil
		}
	case EnharmonicPitch:
		switch y := b.(type) {
		case EnharmonicPitch:
			return x.IntervalFrom(y), nil
		case EnharmonicInterval:
			return x.Sub(y), nil
		}
	case EnharmonicInterval:
		if y, ok := b.(EnharmonicInterval); ok {
			return x.Sub(y), nil
		}
	case EnharmonicPitchClass:
		switch y := b.(type) {
		case EnharmonicPitchClass:
			return x.IntervalFrom(y), nil
		case EnharmonicIntervalClass:
			return x.Sub(y), nil
		}
	case EnharmonicIntervalClass:
		if y, ok := b.(EnharmonicIntervalClass); ok {
			return x.Sub(y), nil
		}
	case GenericPitch:
		switch y := b.(type) {
		case GenericPitch:
			return x.IntervalFrom(y), nil
		case GenericInterval:
			return x.Sub(y), nil
		}
	case GenericInterval:
		if y, ok := b.(GenericInterval); ok {
			return x.Sub(y), nil
		}
	case GenericPitchClass:
		switch y := b.(type) {
		case GenericPitchClass:
			return x.IntervalFrom(y), nil
		case GenericIntervalClass:
			return x.Sub(y), nil
		}
	case GenericIntervalClass:
		if y, ok := b.(GenericIntervalClass); ok {
			return x.Sub(y), nil
		}
	case LogFreqPitch:
		switch y := b.(type) {
		case LogFreqPitch:
			return x.IntervalFrom(y), nil
		case LogFreqInterval:
			return x.Sub(y), nil
		}
	case LogFreqInterval:
		if y, ok := b.(LogFreqInterval); ok {
			return x.Sub(y), nil
		}
	case LogFreqPitchClass:
		switch y := b.(type) {
		case LogFreqPitchClass:
			return x.IntervalFrom(y), nil
		case LogFreqIntervalClass:
			return x.Sub(y), nil
		}
	case LogFreqIntervalClass:
		if y, ok := b.(LogFreqIntervalClass); ok {
			return x.Sub(y), nil
		}
	}
	return nil, mismatch("-", a, b)
}

// Neg reverses the direction of an interval or interval class. Pitches have
// no direction to reverse.
func Neg(v Value) (Value, error) {
	switch x := v.(type) {
	case SpelledInterval:
		return x.Neg(), nil
	case SpelledIntervalClass:
		return x.Neg(), nil
	case EnharmonicInterval:
		return x.Neg(), nil
	case EnharmonicIntervalClass:
		return x.Neg(), nil
	case GenericInterval:
		return x.Neg(), nil
	case GenericIntervalClass:
		return x.Neg(), nil
	case LogFreqInterval:
		return x.Neg(), nil
	case LogFreqIntervalClass:
		return x.Neg(), nil
	}
	return nil, mismatch("neg", v, v)
}

// Abs returns the upward counterpart of an interval or interval class.
func Abs(v Value) (Value, error) {
	switch x := v.(type) {
	case SpelledInterval:
		return x.Abs(), nil
	case SpelledIntervalClass:
		return x.Abs(), nil
	case EnharmonicInterval:
		return x.Abs(), nil
	case EnharmonicIntervalClass:
		return x.Abs(), nil
	case GenericInterval:
		return x.Abs(), nil
	case GenericIntervalClass:
		return x.Abs(), nil
	case LogFreqInterval:
		return x.Abs(), nil
	case LogFreqIntervalClass:
		return x.Abs(), nil
	}
	return nil, mismatch("abs", v, v)
}

// intFactor validates a scale factor for the integer-coordinate families.
func intFactor(x float64) (int, error) {
	n := math.Round(x)
	if math.Abs(x-n) > 1e-9 {
		return 0, domainErrorf("scale factor for this interval type must be an integer, got %v", x)
	}
	return int(n), nil
}

// Multiply scales an interval or interval class by a factor. The factor must
// be (numerically) an integer for all families except LogFreq, which scales
// in log space.
func Multiply(v Value, factor float64) (Value, error) {
	switch x := v.(type) {
	case LogFreqInterval:
		return x.Multiply(factor), nil
	case LogFreqIntervalClass:
		return x.Multiply(factor), nil
	}
	n, err := intFactor(factor)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case SpelledInterval:
		return x.Multiply(n), nil
	case SpelledIntervalClass:
		return x.Multiply(n), nil
	case EnharmonicInterval:
		return x.Multiply(n), nil
	case EnharmonicIntervalClass:
		return x.Multiply(n), nil
	case GenericInterval:
		return x.Multiply(n), nil
	case GenericIntervalClass:
		return x.Multiply(n), nil
	}
	return nil, mismatch("*", v, v)
}

// Divide scales an interval down by a factor; equivalent to multiplying by
// its reciprocal, with the same integrality requirement for the integer
// families.
func Divide(v Value, factor float64) (Value, error) {
	if factor == 0 {
		return nil, domainErrorf("cannot divide an interval by zero")
	}
	return Multiply(v, 1/factor)
}

// ToClass reduces a value to its octave-free class. Classes reduce to
// themselves.
func ToClass(v Value) Value {
	switch x := v.(type) {
	case SpelledPitch:
		return x.PC()
	case SpelledInterval:
		return x.IC()
	case EnharmonicPitch:
		return x.PC()
	case EnharmonicInterval:
		return x.IC()
	case GenericPitch:
		return x.PC()
	case GenericInterval:
		return x.IC()
	case LogFreqPitch:
		return x.PC()
	case LogFreqInterval:
		return x.IC()
	default:
		return v
	}
}

// Embed maps a class to its default-octave realization. Non-class values
// embed to themselves.
func Embed(v Value) Value {
	switch x := v.(type) {
	case SpelledPitchClass:
		return x.Embed()
	case SpelledIntervalClass:
		return x.Embed()
	case EnharmonicPitchClass:
		return x.Embed()
	case EnharmonicIntervalClass:
		return x.Embed()
	case GenericPitchClass:
		return x.Embed()
	case GenericIntervalClass:
		return x.Embed()
	case LogFreqPitchClass:
		return x.Embed()
	case LogFreqIntervalClass:
		return x.Embed()
	default:
		return v
	}
}

// Compare orders two values of the same concrete type. Returns -1, 0 or 1,
// or a *TypeMismatchError for values of different types.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case SpelledPitch:
		if y, ok := b.(SpelledPitch); ok {
			return x.Compare(y), nil
		}
	case SpelledInterval:
		if y, ok := b.(SpelledInterval); ok {
			return x.Compare(y), nil
		}
	case SpelledPitchClass:
		if y, ok := b.(SpelledPitchClass); ok {
			return x.Compare(y), nil
		}
	case SpelledIntervalClass:
		if y, ok := b.(SpelledIntervalClass); ok {
			return x.Compare(y), nil
		}
	case EnharmonicPitch:
		if y, ok := b.(EnharmonicPitch); ok {
			return x.Compare(y), nil
		}
	case EnharmonicInterval:
		if y, ok := b.(EnharmonicInterval); ok {
			return x.Compare(y), nil
		}
	case EnharmonicPitchClass:
		if y, ok := b.(EnharmonicPitchClass); ok {
			return x.Compare(y), nil
		}
	case EnharmonicIntervalClass:
		if y, ok := b.(EnharmonicIntervalClass); ok {
			return x.Compare(y), nil
		}
	case GenericPitch:
		if y, ok := b.(GenericPitch); ok {
			return x.Compare(y), nil
		}
	case GenericInterval:
		if y, ok := b.(GenericInterval); ok {
			return x.Compare(y), nil
		}
	case GenericPitchClass:
		if y, ok := b.(GenericPitchClass); ok {
			return x.Compare(y), nil
		}
	case GenericIntervalClass:
		if y, ok := b.(GenericIntervalClass); ok {
			return x.Compare(y), nil
		}
	case LogFreqPitch:
		if y, ok := b.(LogFreqPitch); ok {
			return x.Compare(y), nil
		}
	case LogFreqInterval:
		if y, ok := b.(LogFreqInterval); ok {
			return x.Compare(y), nil
		}
	case LogFreqPitchClass:
		if y, ok := b.(LogFreqPitchClass); ok {
			return x.Compare(y), nil
		}
	case LogFreqIntervalClass:
		if y, ok := b.(LogFreqIntervalClass); ok {
			return x.Compare(y), nil
		}
	}
	return 0, mismatch("compare", a, b)
}
