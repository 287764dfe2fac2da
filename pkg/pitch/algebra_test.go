package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicAdd(t *testing.T) {
	c4, err := ParseSpelledPitch("C4")
	require.NoError(t, err)
	m3, err := ParseSpelledInterval("m3:0")
	require.NoError(t, err)

	got, err := Add(c4, m3)
	require.NoError(t, err)
	assert.Equal(t, "Eb4", got.String())

	got, err = Add(m3, m3)
	require.NoError(t, err)
	assert.Equal(t, "d5:0", got.String())

	// interval + pitch is not defined, matching the typed API
	_, err = Add(m3, c4)
	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, "+", mismatchErr.Op)
	assert.Equal(t, "SpelledInterval", mismatchErr.Left)
	assert.Equal(t, "SpelledPitch", mismatchErr.Right)

	// pitch + pitch is not defined either
	_, err = Add(c4, c4)
	assert.ErrorAs(t, err, &mismatchErr)

	// class and non-class kinds do not mix
	cs, err := ParseSpelledPitchClass("C#")
	require.NoError(t, err)
	_, err = Add(cs, m3)
	assert.ErrorAs(t, err, &mismatchErr)

	// no implicit cross-family arithmetic
	_, err = Add(c4, EnharmonicIntervalFromSemitones(3))
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestDynamicSub(t *testing.T) {
	g4, err := ParseSpelledPitch("G4")
	require.NoError(t, err)
	c4, err := ParseSpelledPitch("C4")
	require.NoError(t, err)

	got, err := Sub(g4, c4)
	require.NoError(t, err)
	assert.Equal(t, "P5:0", got.String())

	p5 := got
	got, err = Sub(g4, p5)
	require.NoError(t, err)
	assert.Equal(t, c4, got)

	got, err = Sub(EnharmonicPitchFromMIDI(67), EnharmonicPitchFromMIDI(60))
	require.NoError(t, err)
	assert.Equal(t, EnharmonicIntervalFromSemitones(7), got)

	var mismatchErr *TypeMismatchError
	_, err = Sub(p5, g4)
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestDynamicNegAbs(t *testing.T) {
	i, err := ParseSpelledInterval("-m3:0")
	require.NoError(t, err)

	neg, err := Neg(i)
	require.NoError(t, err)
	assert.Equal(t, "m3:0", neg.String())

	abs, err := Abs(i)
	require.NoError(t, err)
	assert.Equal(t, "m3:0", abs.String())

	p, err := ParseSpelledPitch("C4")
	require.NoError(t, err)
	_, err = Neg(p)
	assert.Error(t, err, "pitches have no direction to reverse")
	_, err = Abs(p)
	assert.Error(t, err)
}

func TestDynamicMultiply(t *testing.T) {
	m2, err := ParseSpelledInterval("M2:0")
	require.NoError(t, err)

	got, err := Multiply(m2, 2)
	require.NoError(t, err)
	assert.Equal(t, "M3:0", got.String())

	// integer-coordinate families reject fractional factors
	_, err = Multiply(m2, 0.5)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)

	// log-frequency intervals scale continuously
	half, err := Multiply(LogFreqOctave(), 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.4142135, half.(LogFreqInterval).Ratio(), 1e-6)

	got, err = Divide(m2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "M3:0", got.String())
	_, err = Divide(m2, 2)
	assert.ErrorAs(t, err, &domainErr)
	_, err = Divide(m2, 0)
	assert.ErrorAs(t, err, &domainErr)
}

func TestDynamicToClassEmbed(t *testing.T) {
	p, err := ParseSpelledPitch("Db4")
	require.NoError(t, err)

	pc := ToClass(p)
	assert.Equal(t, TypeSpelledPitchClass, pc.Type())
	assert.Equal(t, "Db", pc.String())
	assert.Equal(t, pc, ToClass(pc), "classes reduce to themselves")

	emb := Embed(pc)
	assert.Equal(t, TypeSpelledPitch, emb.Type())
	assert.Equal(t, "Db0", emb.String())
	assert.Equal(t, p, Embed(p), "non-classes embed to themselves")

	i := EnharmonicIntervalFromSemitones(15)
	ic := ToClass(i)
	assert.Equal(t, TypeEnharmonicIntervalClass, ic.Type())
	assert.Equal(t, "3", ic.String())
}

func TestDynamicCompare(t *testing.T) {
	a, err := ParseSpelledPitch("C4")
	require.NoError(t, err)
	b, err := ParseSpelledPitch("D4")
	require.NoError(t, err)

	c, err := Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = Compare(a, EnharmonicPitchFromMIDI(60))
	var mismatchErr *TypeMismatchError
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestValuePredicates(t *testing.T) {
	p, err := ParseSpelledPitch("C4")
	require.NoError(t, err)
	i, err := ParseSpelledIntervalClass("M3")
	require.NoError(t, err)

	assert.True(t, IsPitch(p))
	assert.False(t, IsClass(p))
	assert.False(t, IsPitch(i))
	assert.True(t, IsClass(i))
}
