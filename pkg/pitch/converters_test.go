package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSpelledToEnharmonic(t *testing.T) {
	pitches := []struct {
		spelled string
		midi    int
	}{
		{"C4", 60},
		{"C#4", 61},
		{"Db4", 61},
		{"Bb3", 58},
		{"B#3", 60},
		{"Cb4", 59},
		{"Fbb4", 63},
		{"A4", 69},
		{"C-1", 0},
	}
	for _, tt := range pitches {
		t.Run(tt.spelled, func(t *testing.T) {
			p, err := ParseSpelledPitch(tt.spelled)
			require.NoError(t, err)
			got, err := Convert(p, TypeEnharmonicPitch)
			require.NoError(t, err)
			assert.Equal(t, tt.midi, got.(EnharmonicPitch).MIDI())
		})
	}

	intervals := []struct {
		spelled   string
		semitones int
	}{
		{"P1:0", 0},
		{"M3:0", 4},
		{"-m3:0", -3},
		{"a4:0", 6},
		{"d5:0", 6},
		{"P1:1", 12},
		{"-M2:1", -14},
	}
	for _, tt := range intervals {
		t.Run(tt.spelled, func(t *testing.T) {
			i, err := ParseSpelledInterval(tt.spelled)
			require.NoError(t, err)
			got, err := Convert(i, TypeEnharmonicInterval)
			require.NoError(t, err)
			assert.Equal(t, tt.semitones, got.(EnharmonicInterval).Semitones())
		})
	}

	// class conversions reduce mod 12
	pc, err := ParseSpelledPitchClass("C#")
	require.NoError(t, err)
	got, err := Convert(pc, TypeEnharmonicPitchClass)
	require.NoError(t, err)
	assert.Equal(t, 1, got.(EnharmonicPitchClass).Semitone())

	ic, err := ParseSpelledIntervalClass("aa4")
	require.NoError(t, err)
	got, err = Convert(ic, TypeEnharmonicIntervalClass)
	require.NoError(t, err)
	assert.Equal(t, 7, got.(EnharmonicIntervalClass).Semitones())
}

func TestConvertSpelledToGeneric(t *testing.T) {
	p, err := ParseSpelledPitch("C#4")
	require.NoError(t, err)
	got, err := Convert(p, TypeGenericPitch)
	require.NoError(t, err)
	assert.Equal(t, "C4", got.String())

	i, err := ParseSpelledInterval("m3:0")
	require.NoError(t, err)
	gi, err := Convert(i, TypeGenericInterval)
	require.NoError(t, err)
	assert.Equal(t, 2, gi.(GenericInterval).DiatonicSteps())

	down, err := ParseSpelledInterval("-M7:1")
	require.NoError(t, err)
	gd, err := Convert(down, TypeGenericInterval)
	require.NoError(t, err)
	assert.Equal(t, -13, gd.(GenericInterval).DiatonicSteps())

	pc, err := ParseSpelledPitchClass("Ebb")
	require.NoError(t, err)
	gpc, err := Convert(pc, TypeGenericPitchClass)
	require.NoError(t, err)
	assert.Equal(t, "E", gpc.String())

	ic, err := ParseSpelledIntervalClass("-m3")
	require.NoError(t, err)
	gic, err := Convert(ic, TypeGenericIntervalClass)
	require.NoError(t, err)
	assert.Equal(t, 5, gic.(GenericIntervalClass).DiatonicSteps())
}

func TestConvertEnharmonicToLogFreq(t *testing.T) {
	got, err := Convert(EnharmonicPitchFromMIDI(69), TypeLogFreqPitch)
	require.NoError(t, err)
	assert.InDelta(t, 440, got.(LogFreqPitch).Freq(), 1e-9)

	got, err = Convert(EnharmonicPitchFromMIDI(60), TypeLogFreqPitch)
	require.NoError(t, err)
	assert.InDelta(t, 261.6256, got.(LogFreqPitch).Freq(), 1e-3)

	gi, err := Convert(EnharmonicIntervalFromSemitones(12), TypeLogFreqInterval)
	require.NoError(t, err)
	assert.InDelta(t, 2, gi.(LogFreqInterval).Ratio(), 1e-9)

	gic, err := Convert(EnharmonicIntervalClassFromSemitones(7), TypeLogFreqIntervalClass)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2, 7.0/12), gic.(LogFreqIntervalClass).Ratio(), 1e-9)

	gpc, err := Convert(EnharmonicPitchClassFromSemitone(9), TypeLogFreqPitchClass)
	require.NoError(t, err)
	v := gpc.(LogFreqPitchClass).LogFreq()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, log2)
}

func TestConvertToClassEdges(t *testing.T) {
	p, err := ParseSpelledPitch("Gb2")
	require.NoError(t, err)
	got, err := Convert(p, TypeSpelledPitchClass)
	require.NoError(t, err)
	assert.Equal(t, "Gb", got.String())

	i, err := ParseSpelledInterval("M3:2")
	require.NoError(t, err)
	gic, err := Convert(i, TypeSpelledIntervalClass)
	require.NoError(t, err)
	assert.Equal(t, "M3", gic.String())

	ge, err := Convert(EnharmonicPitchFromMIDI(61), TypeEnharmonicPitchClass)
	require.NoError(t, err)
	assert.Equal(t, 1, ge.(EnharmonicPitchClass).Semitone())

	gp, err := ParseGenericPitch("D3")
	require.NoError(t, err)
	ggc, err := Convert(gp, TypeGenericPitchClass)
	require.NoError(t, err)
	assert.Equal(t, "D", ggc.String())
}

func TestConvertNoPath(t *testing.T) {
	// spelled values have no direct log-frequency edge; the hop through the
	// enharmonic family is explicit
	p, err := ParseSpelledPitch("C4")
	require.NoError(t, err)
	_, err = Convert(p, TypeLogFreqPitch)
	var noConv *NoConverterError
	require.ErrorAs(t, err, &noConv)

	e, err := Convert(p, TypeEnharmonicPitch)
	require.NoError(t, err)
	lf, err := Convert(e, TypeLogFreqPitch)
	require.NoError(t, err)
	assert.InDelta(t, 261.6256, lf.(LogFreqPitch).Freq(), 1e-3)
}

func TestConvertPreservesKind(t *testing.T) {
	values := []Value{
		mustValue(ParseSpelledPitch("C#4")),
		mustValue(ParseSpelledInterval("M3:0")),
		mustValue(ParseSpelledPitchClass("C#")),
		mustValue(ParseSpelledIntervalClass("M3")),
	}
	targets := []Family{FamilyEnharmonic, FamilyGeneric}
	for _, v := range values {
		for _, fam := range targets {
			to := Type{Family: fam, Kind: v.Type().Kind}
			got, err := Convert(v, to)
			require.NoError(t, err)
			assert.Equal(t, v.Type().Kind, got.Type().Kind)
			assert.Equal(t, IsClass(v), IsClass(got))
			assert.Equal(t, IsPitch(v), IsPitch(got))
		}
	}
}

func mustValue[V Value](v V, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}

func TestConvertArithmeticCommutes(t *testing.T) {
	// converting then adding equals adding then converting
	p, err := ParseSpelledPitch("Eb4")
	require.NoError(t, err)
	i, err := ParseSpelledInterval("M3:0")
	require.NoError(t, err)

	sumFirst, err := Convert(p.Add(i), TypeEnharmonicPitch)
	require.NoError(t, err)

	ep, err := Convert(p, TypeEnharmonicPitch)
	require.NoError(t, err)
	ei, err := Convert(i, TypeEnharmonicInterval)
	require.NoError(t, err)
	convFirst := ep.(EnharmonicPitch).Add(ei.(EnharmonicInterval))

	assert.Equal(t, sumFirst, Value(convFirst))
}
