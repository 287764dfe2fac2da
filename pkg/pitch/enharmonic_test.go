package pitch

import (
	"math"
	"testing"
)

func mustEnharmonicPitch(t *testing.T, s string) EnharmonicPitch {
	t.Helper()
	p, err := ParseEnharmonicPitch(s)
	if err != nil {
		t.Fatalf("ParseEnharmonicPitch(%q): %v", s, err)
	}
	return p
}

func TestEnharmonicPitchParsing(t *testing.T) {
	tests := []struct {
		input string
		midi  int
	}{
		{"C4", 60},
		{"C#4", 61},
		{"Db4", 61},
		{"B3", 59},
		{"Cb4", 59},
		{"B#3", 60},
		{"A4", 69},
		{"C-1", 0},
		{"G9", 127},
		{"F##2", 43},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := mustEnharmonicPitch(t, tt.input)
			if p.MIDI() != tt.midi {
				t.Errorf("ParseEnharmonicPitch(%q).MIDI() = %d, want %d", tt.input, p.MIDI(), tt.midi)
			}
		})
	}
	if _, err := ParseEnharmonicPitch("H4"); err == nil {
		t.Error("ParseEnharmonicPitch(\"H4\") should fail")
	}
}

func TestEnharmonicPitchNames(t *testing.T) {
	tests := []struct {
		midi   int
		sharps string
		flats  string
	}{
		{61, "C#4", "Db4"},
		{60, "C4", "C4"},
		{70, "A#4", "Bb4"},
		{0, "C-1", "C-1"},
		{66, "F#4", "Gb4"},
	}
	for _, tt := range tests {
		p := EnharmonicPitchFromMIDI(tt.midi)
		if got := p.Name(Sharps); got != tt.sharps {
			t.Errorf("Name(Sharps) of %d = %q, want %q", tt.midi, got, tt.sharps)
		}
		if got := p.Name(Flats); got != tt.flats {
			t.Errorf("Name(Flats) of %d = %q, want %q", tt.midi, got, tt.flats)
		}
		if p.String() != tt.sharps {
			t.Errorf("String() of %d = %q, want sharp spelling %q", tt.midi, p.String(), tt.sharps)
		}
	}
}

func TestEnharmonicFreq(t *testing.T) {
	if f := mustEnharmonicPitch(t, "A4").Freq(); math.Abs(f-440) > 1e-9 {
		t.Errorf("A4 frequency = %v, want 440", f)
	}
	want := math.Pow(2, float64(60-69)/12) * 440 // ~261.63
	if f := mustEnharmonicPitch(t, "C4").Freq(); math.Abs(f-want) > 1e-9 {
		t.Errorf("C4 frequency = %v, want %v", f, want)
	}
	if f := mustEnharmonicPitch(t, "A5").Freq(); math.Abs(f-880) > 1e-9 {
		t.Errorf("A5 frequency = %v, want 880", f)
	}
}

func TestEnharmonicIntervalParsing(t *testing.T) {
	tests := []struct {
		input     string
		semitones int
	}{
		{"M3:0", 4},
		{"m3:0", 3},
		{"-m3:0", -3},
		{"P1:1", 12},
		{"-P1:1", -12},
		{"a1:0", 1},
		{"d1:0", -1},
		{"P5:0", 7},
		{"aa4:0", 7},
		{"m7:1", 22},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			i, err := ParseEnharmonicInterval(tt.input)
			if err != nil {
				t.Fatalf("ParseEnharmonicInterval(%q): %v", tt.input, err)
			}
			if i.Semitones() != tt.semitones {
				t.Errorf("ParseEnharmonicInterval(%q) = %d, want %d", tt.input, i.Semitones(), tt.semitones)
			}
		})
	}
}

func TestEnharmonicIntervalString(t *testing.T) {
	tests := []struct {
		semitones int
		want      string
	}{
		{4, "4"},
		{-3, "-3"},
		{0, "0"},
		{12, "12"},
	}
	for _, tt := range tests {
		i := EnharmonicIntervalFromSemitones(tt.semitones)
		if i.String() != tt.want {
			t.Errorf("EnharmonicInterval(%d).String() = %q, want %q", tt.semitones, i.String(), tt.want)
		}
	}
}

func TestEnharmonicArithmetic(t *testing.T) {
	c4 := EnharmonicPitchFromMIDI(60)
	m3 := EnharmonicIntervalFromSemitones(3)
	if got := c4.Add(m3); got.MIDI() != 63 {
		t.Errorf("C4 + 3 = %d, want 63", got.MIDI())
	}
	if got := c4.Add(m3).Sub(m3); got != c4 {
		t.Errorf("(C4 + 3) - 3 = %v, want C4", got)
	}
	if got := c4.IntervalFrom(EnharmonicPitchFromMIDI(57)); got.Semitones() != 3 {
		t.Errorf("C4 - A3 = %d, want 3", got.Semitones())
	}
	sum := EnharmonicIntervalFromSemitones(5).Add(EnharmonicIntervalFromSemitones(7))
	if sum != EnharmonicOctave() {
		t.Errorf("5 + 7 = %v, want 12", sum)
	}
	if EnharmonicChromaticSemitone().Multiply(12) != EnharmonicOctave() {
		t.Error("12 chromatic semitones should equal an octave")
	}
}

func TestEnharmonicClasses(t *testing.T) {
	if pc := mustEnharmonicPitch(t, "C#4").PC(); pc.Semitone() != 1 {
		t.Errorf("C#4.PC() = %d, want 1", pc.Semitone())
	}
	if pc := EnharmonicPitchFromMIDI(59).PC(); pc.Semitone() != 11 {
		t.Errorf("B3.PC() = %d, want 11", pc.Semitone())
	}
	// class arithmetic wraps around the octave
	b := EnharmonicPitchClassFromSemitone(11)
	step := EnharmonicIntervalClassFromSemitones(2)
	if got := b.Add(step); got.Semitone() != 1 {
		t.Errorf("B + 2 = %d, want 1", got.Semitone())
	}
	if got := EnharmonicPitchClassFromSemitone(0).Sub(step); got.Semitone() != 10 {
		t.Errorf("C - 2 = %d, want 10", got.Semitone())
	}
	if ic := EnharmonicIntervalFromSemitones(-3).IC(); ic.Semitones() != 9 {
		t.Errorf("(-3).IC() = %d, want 9", ic.Semitones())
	}
	if neg := EnharmonicIntervalClassFromSemitones(3).Neg(); neg.Semitones() != 9 {
		t.Errorf("(3).Neg() = %d, want 9", neg.Semitones())
	}
	if emb := EnharmonicIntervalClassFromSemitones(9).Embed(); emb.Semitones() != 9 {
		t.Errorf("(9).Embed() = %d, want 9", emb.Semitones())
	}
	if name := EnharmonicPitchClassFromSemitone(10).Name(Flats); name != "Bb" {
		t.Errorf("class 10 flat name = %q, want Bb", name)
	}
}

func TestEnharmonicDirections(t *testing.T) {
	if d := EnharmonicIntervalFromSemitones(-5).Direction(); d != -1 {
		t.Errorf("interval -5 direction = %d, want -1", d)
	}
	if d := EnharmonicIntervalFromSemitones(0).Direction(); d != 0 {
		t.Errorf("interval 0 direction = %d, want 0", d)
	}
	// class direction follows the stored representative in [0,12)
	if d := EnharmonicIntervalClassFromSemitones(-3).Direction(); d != 1 {
		t.Errorf("class of -3 direction = %d, want 1", d)
	}
	if d := EnharmonicUnisonClass().Direction(); d != 0 {
		t.Errorf("unison class direction = %d, want 0", d)
	}
	steps := []int{-2, -1, 0, 1, 2}
	for _, s := range steps {
		if !EnharmonicIntervalFromSemitones(s).IsStep() {
			t.Errorf("%d should be a step", s)
		}
	}
	if EnharmonicIntervalFromSemitones(3).IsStep() {
		t.Error("3 semitones should not be a step")
	}
}
