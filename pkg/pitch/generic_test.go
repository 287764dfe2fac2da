package pitch

import "testing"

func TestGenericPitchParsing(t *testing.T) {
	tests := []struct {
		input  string
		step   int
		octave int
		name   string
	}{
		{"C4", 0, 4, "C4"},
		{"C#4", 0, 4, "C4"}, // accidentals are erased
		{"Bb2", 6, 2, "B2"},
		{"Gbb-1", 4, -1, "G-1"},
		{"E10", 2, 10, "E10"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseGenericPitch(tt.input)
			if err != nil {
				t.Fatalf("ParseGenericPitch(%q): %v", tt.input, err)
			}
			if p.Step() != tt.step || p.Octaves() != tt.octave {
				t.Errorf("ParseGenericPitch(%q) = (step %d, octave %d), want (%d, %d)",
					tt.input, p.Step(), p.Octaves(), tt.step, tt.octave)
			}
			if p.String() != tt.name {
				t.Errorf("ParseGenericPitch(%q).String() = %q, want %q", tt.input, p.String(), tt.name)
			}
		})
	}
	if _, err := ParseGenericPitch("H4"); err == nil {
		t.Error("ParseGenericPitch(\"H4\") should fail")
	}
	if _, err := ParseGenericPitch("C#"); err == nil {
		t.Error("ParseGenericPitch should require an octave")
	}
}

func TestGenericIntervalParsing(t *testing.T) {
	tests := []struct {
		input string
		steps int
		name  string
	}{
		{"P1:0", 0, "1:0"},
		{"M3:0", 2, "3:0"},
		{"m3:0", 2, "3:0"}, // quality is erased
		{"-M3:0", -2, "-3:0"},
		{"P1:1", 7, "1:1"},
		{"-P1:1", -7, "-1:1"},
		{"m7:1", 13, "7:1"},
		{"aa4:2", 17, "4:2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			i, err := ParseGenericInterval(tt.input)
			if err != nil {
				t.Fatalf("ParseGenericInterval(%q): %v", tt.input, err)
			}
			if i.DiatonicSteps() != tt.steps {
				t.Errorf("ParseGenericInterval(%q) = %d steps, want %d", tt.input, i.DiatonicSteps(), tt.steps)
			}
			if i.String() != tt.name {
				t.Errorf("ParseGenericInterval(%q).String() = %q, want %q", tt.input, i.String(), tt.name)
			}
		})
	}
}

func TestGenericArithmetic(t *testing.T) {
	c4, err := ParseGenericPitch("C4")
	if err != nil {
		t.Fatal(err)
	}
	third := GenericIntervalFromSteps(2)
	e4 := c4.Add(third)
	if e4.String() != "E4" {
		t.Errorf("C4 + 2 = %v, want E4", e4)
	}
	if back := e4.Sub(third); back != c4 {
		t.Errorf("(C4 + 2) - 2 = %v, want C4", back)
	}
	if i := e4.IntervalFrom(c4); i != third {
		t.Errorf("E4 - C4 = %v, want 2 steps", i)
	}
	// a fourth plus a fifth is an octave
	if sum := GenericIntervalFromSteps(3).Add(GenericIntervalFromSteps(4)); sum != GenericOctave() {
		t.Errorf("3 + 4 = %v, want 7", sum)
	}
	// crossing the octave boundary
	b3, _ := ParseGenericPitch("B3")
	if got := b3.Add(GenericIntervalFromSteps(1)); got != c4 {
		t.Errorf("B3 + 1 = %v, want C4", got)
	}
}

func TestGenericClasses(t *testing.T) {
	b2, err := ParseGenericPitch("B2")
	if err != nil {
		t.Fatal(err)
	}
	if pc := b2.PC(); pc.Step() != 6 || pc.String() != "B" {
		t.Errorf("B2.PC() = %v (step %d), want B", pc, pc.Step())
	}
	pc := GenericPitchClassFromStep(6)
	if got := pc.Add(GenericIntervalClassFromSteps(2)); got.Step() != 1 {
		t.Errorf("B + 2 = %d, want 1", got.Step())
	}
	if got := GenericPitchClassFromStep(0).Sub(GenericIntervalClassFromSteps(1)); got.Step() != 6 {
		t.Errorf("C - 1 = %d, want 6", got.Step())
	}
	if ic := GenericIntervalFromSteps(-2).IC(); ic.DiatonicSteps() != 5 {
		t.Errorf("(-2).IC() = %d, want 5", ic.DiatonicSteps())
	}
	if s := GenericIntervalClassFromSteps(2).String(); s != "3" {
		t.Errorf("class of 2 steps prints %q, want \"3\"", s)
	}
	if emb := GenericPitchClassFromStep(3).Embed(); emb.String() != "F-1" {
		t.Errorf("F.Embed() = %v, want F-1", emb)
	}
}

func TestGenericDirections(t *testing.T) {
	if d := GenericIntervalFromSteps(-3).Direction(); d != -1 {
		t.Errorf("interval -3 direction = %d, want -1", d)
	}
	if d := GenericUnison().Direction(); d != 0 {
		t.Errorf("unison direction = %d, want 0", d)
	}
	if d := GenericIntervalClassFromSteps(5).Direction(); d != -1 {
		t.Errorf("class 5 direction = %d, want -1 (closer downwards)", d)
	}
	if d := GenericIntervalClassFromSteps(2).Direction(); d != 1 {
		t.Errorf("class 2 direction = %d, want 1", d)
	}
	if !GenericIntervalFromSteps(-1).IsStep() || GenericIntervalFromSteps(2).IsStep() {
		t.Error("IsStep should accept single steps only")
	}
	if abs := GenericIntervalFromSteps(-4).Abs(); abs != GenericIntervalFromSteps(4) {
		t.Errorf("(-4).Abs() = %v, want 4", abs)
	}
	if m := GenericIntervalFromSteps(2).Multiply(-2); m != GenericIntervalFromSteps(-4) {
		t.Errorf("2 * -2 = %v, want -4", m)
	}
}
