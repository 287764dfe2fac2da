// Package midifile renders pitch sequences as Standard MIDI Files.
//
// A Sequence is a flat list of notes placed on a 16th-note grid. Notes carry
// enharmonic pitches; spelled pitches can be appended directly and are
// reduced to their MIDI value on the way in.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/james-see/pitchtypes/pkg/pitch"
)

// Options controls the rendered file.
type Options struct {
	Tempo           float64 // beats per minute, default 120
	Velocity        uint8   // note velocity, default 100
	TicksPerQuarter uint16  // SMF resolution, default 480
	Channel         uint8   // MIDI channel, default 0
}

func (o Options) withDefaults() Options {
	if o.Tempo <= 0 {
		o.Tempo = 120
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	if o.TicksPerQuarter == 0 {
		o.TicksPerQuarter = 480
	}
	return o
}

// Note is a single note event on the 16th-note grid.
type Note struct {
	Pitch pitch.EnharmonicPitch
	// Steps is the length in 16th notes, minimum 1.
	Steps int
}

// Sequence is an ordered list of notes, played back to back.
type Sequence struct {
	notes []Note
}

// Append adds an enharmonic pitch as a single 16th note.
func (s *Sequence) Append(p pitch.EnharmonicPitch) {
	s.notes = append(s.notes, Note{Pitch: p, Steps: 1})
}

// AppendSpelled adds a spelled pitch, reduced to its enharmonic value.
func (s *Sequence) AppendSpelled(p pitch.SpelledPitch) {
	v, err := pitch.Convert(p, pitch.TypeEnharmonicPitch)
	if err != nil {
		// the spelled -> enharmonic edge is part of the default registry
		panic(err)
	}
	s.Append(v.(pitch.EnharmonicPitch))
}

// AppendNote adds a note with an explicit length in 16th steps.
func (s *Sequence) AppendNote(n Note) {
	if n.Steps < 1 {
		n.Steps = 1
	}
	s.notes = append(s.notes, n)
}

// Notes returns the notes of the sequence.
func (s *Sequence) Notes() []Note { return s.notes }

// Len returns the number of notes in the sequence.
func (s *Sequence) Len() int { return len(s.notes) }

// Render produces the bytes of a single-track Standard MIDI File playing the
// sequence.
func Render(seq *Sequence, opts Options) ([]byte, error) {
	if seq == nil || len(seq.notes) == 0 {
		return nil, errors.New("empty sequence")
	}
	opts = opts.withDefaults()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	var track smf.Track

	// tempo meta event (FF 51 03), microseconds per quarter note
	microsPerBeat := uint32(60000000.0 / opts.Tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsPerBeat >> 16),
		byte(microsPerBeat >> 8),
		byte(microsPerBeat),
	}))
	// 4/4 time signature
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	ticksPerStep := uint32(opts.TicksPerQuarter) / 4

	for _, n := range seq.notes {
		m := n.Pitch.MIDI()
		if m < 0 || m > 127 {
			return nil, fmt.Errorf("pitch %s is outside the MIDI range", n.Pitch)
		}
		steps := n.Steps
		if steps < 1 {
			steps = 1
		}
		duration := ticksPerStep * uint32(steps)
		// leave a small gap so repeated notes articulate
		gate := duration - duration/8

		track.Add(0, midi.NoteOn(opts.Channel, uint8(m), opts.Velocity))
		track.Add(gate, midi.NoteOff(opts.Channel, uint8(m)))
		track.Add(duration-gate, smf.Message([]byte{0xFF, 0x06, 0x00}))
	}

	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the sequence and writes it to a file.
func WriteFile(seq *Sequence, filename string, opts Options) error {
	data, err := Render(seq, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
