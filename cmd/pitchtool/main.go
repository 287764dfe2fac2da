// Package main is the entry point for the pitchtool CLI
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/james-see/pitchtypes/internal/config"
	"github.com/james-see/pitchtypes/pkg/midifile"
	"github.com/james-see/pitchtypes/pkg/pitch"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	targetFamily string
	fifthsFrom   int
	fifthsTo     int
	outputFile   string
	midiTempo    float64
	midiVelocity int
	flatNames    bool
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0"))

	centerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FFF87")).
			Bold(true)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pitchtool",
	Short: "Work with musical pitches and intervals in several representations",
	Long: `pitchtool parses, converts and renders musical pitches and intervals.

Values are written in standard notation: pitches like "C#4" or "Eb",
intervals like "M3:0", "-m7:1" or interval classes like "aa2". Spelled
values convert to enharmonic (MIDI semitones), generic (diatonic steps)
and log-frequency representations.

Examples:
  pitchtool parse C#4
  pitchtool parse -- -m3:0
  pitchtool convert C#4 --to enharmonic
  pitchtool freq A4
  pitchtool fifths --from -7 --to 7
  pitchtool midi C4 E4 G4 C5 -o chord.mid`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var parseCmd = &cobra.Command{
	Use:   "parse <value>",
	Short: "Parse a pitch or interval and show its components",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value to another representation",
	Long: `Converts a spelled value to the enharmonic, generic or log-frequency
representation. Log-frequency conversion goes through the enharmonic
representation (equal temperament, A4 = 440 Hz).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var freqCmd = &cobra.Command{
	Use:   "freq <pitch>",
	Short: "Show the frequency of a pitch",
	Args:  cobra.ExactArgs(1),
	RunE:  runFreq,
}

var fifthsCmd = &cobra.Command{
	Use:   "fifths",
	Short: "Print a segment of the line of fifths",
	RunE:  runFifths,
}

var midiCmd = &cobra.Command{
	Use:   "midi <pitch>...",
	Short: "Render a pitch sequence as a Standard MIDI File",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMIDI,
}

func init() {
	convertCmd.Flags().StringVarP(&targetFamily, "to", "t", "enharmonic", "Target representation (enharmonic, generic, logfreq)")
	convertCmd.Flags().BoolVar(&flatNames, "flats", false, "Prefer flat spellings for enharmonic output")

	fifthsCmd.Flags().IntVar(&fifthsFrom, "from", -7, "First fifths coordinate")
	fifthsCmd.Flags().IntVar(&fifthsTo, "to", 7, "Last fifths coordinate")

	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (required)")
	midiCmd.Flags().Float64Var(&midiTempo, "tempo", 0, "Tempo in bpm (default from config)")
	midiCmd.Flags().IntVar(&midiVelocity, "velocity", 0, "Note velocity 1-127 (default from config)")
	_ = midiCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(fifthsCmd)
	rootCmd.AddCommand(midiCmd)
}

// parseAny parses any spelled value, trying the four kinds in order.
func parseAny(s string) (pitch.Value, error) {
	if p, err := pitch.ParseSpelledPitch(s); err == nil {
		return p, nil
	}
	if p, err := pitch.ParseSpelledPitchClass(s); err == nil {
		return p, nil
	}
	if i, err := pitch.ParseSpelledInterval(s); err == nil {
		return i, nil
	}
	if i, err := pitch.ParseSpelledIntervalClass(s); err == nil {
		return i, nil
	}
	return nil, fmt.Errorf("cannot parse %q as a pitch, pitch class, interval or interval class", s)
}

func printField(label, value string) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
}

func runParse(cmd *cobra.Command, args []string) error {
	v, err := parseAny(args[0])
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(v.Type().String()))
	printField("Notation", v.String())

	switch x := v.(type) {
	case pitch.SpelledPitch:
		printField("Fifths", fmt.Sprintf("%d", x.Fifths()))
		printField("Octave", fmt.Sprintf("%d", x.Octaves()))
		printField("Letter", string(x.Letter()))
		printField("Alteration", fmt.Sprintf("%+d", x.Alteration()))
	case pitch.SpelledPitchClass:
		printField("Fifths", fmt.Sprintf("%d", x.Fifths()))
		printField("Letter", string(x.Letter()))
		printField("Alteration", fmt.Sprintf("%+d", x.Alteration()))
	case pitch.SpelledInterval:
		printField("Fifths", fmt.Sprintf("%d", x.Fifths()))
		printField("Steps", fmt.Sprintf("%d", x.DiatonicSteps()))
		printField("Direction", directionName(x.Direction()))
		printField("Is step", fmt.Sprintf("%v", x.IsStep()))
	case pitch.SpelledIntervalClass:
		printField("Fifths", fmt.Sprintf("%d", x.Fifths()))
		printField("Generic", fmt.Sprintf("%d", x.Generic()))
		printField("Direction", directionName(x.Direction()))
	}
	return nil
}

func directionName(d int) string {
	switch d {
	case -1:
		return "down"
	case 1:
		return "up"
	default:
		return "neutral"
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	style, err := cfg.NameStyle()
	if err != nil {
		return err
	}
	if flatNames {
		style = pitch.Flats
	}

	v, err := parseAny(args[0])
	if err != nil {
		return err
	}

	var family pitch.Family
	switch strings.ToLower(targetFamily) {
	case "enharmonic":
		family = pitch.FamilyEnharmonic
	case "generic":
		family = pitch.FamilyGeneric
	case "logfreq":
		family = pitch.FamilyLogFreq
	case "spelled":
		family = pitch.FamilySpelled
	default:
		return fmt.Errorf("unknown representation %q (use enharmonic, generic or logfreq)", targetFamily)
	}

	got, err := convertTo(v, family)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(got.Type().String()))
	switch x := got.(type) {
	case pitch.EnharmonicPitch:
		printField("Notation", x.Name(style))
		printField("MIDI", fmt.Sprintf("%d", x.MIDI()))
	case pitch.EnharmonicPitchClass:
		printField("Notation", x.Name(style))
		printField("Semitone", fmt.Sprintf("%d", x.Semitone()))
	case pitch.EnharmonicInterval:
		printField("Semitones", fmt.Sprintf("%d", x.Semitones()))
	case pitch.EnharmonicIntervalClass:
		printField("Semitones", fmt.Sprintf("%d", x.Semitones()))
	default:
		printField("Notation", got.String())
	}
	return nil
}

// convertTo converts through the enharmonic family where no direct edge
// exists (spelled values have no direct log-frequency conversion).
func convertTo(v pitch.Value, family pitch.Family) (pitch.Value, error) {
	to := pitch.Type{Family: family, Kind: v.Type().Kind}
	if pitch.CanConvert(v.Type(), to) {
		return pitch.Convert(v, to)
	}
	hop := pitch.Type{Family: pitch.FamilyEnharmonic, Kind: v.Type().Kind}
	mid, err := pitch.Convert(v, hop)
	if err != nil {
		return nil, err
	}
	return pitch.Convert(mid, to)
}

func runFreq(cmd *cobra.Command, args []string) error {
	v, err := parseAny(args[0])
	if err != nil {
		return err
	}
	got, err := convertTo(v, pitch.FamilyLogFreq)
	if err != nil {
		return err
	}
	fmt.Println(got.String())
	return nil
}

func runFifths(cmd *cobra.Command, args []string) error {
	if fifthsFrom > fifthsTo {
		return fmt.Errorf("--from must not exceed --to")
	}

	fmt.Println(headerStyle.Render("Line of fifths"))
	fmt.Println(rowStyle.Render(fmt.Sprintf("%7s  %-6s %-5s %s", "fifths", "pitch", "ic", "semitones")))
	for f := fifthsFrom; f <= fifthsTo; f++ {
		pc := pitch.SpelledPitchClassFromFifths(f)
		ic := pitch.SpelledIntervalClassFromFifths(f)
		semis, err := pitch.Convert(ic, pitch.TypeEnharmonicIntervalClass)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%7d  %-6s %-5s %s", f, pc, ic, semis)
		if f == 0 {
			fmt.Println(centerStyle.Render(line))
		} else {
			fmt.Println(rowStyle.Render(line))
		}
	}
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tempo := cfg.MIDI.Tempo
	if midiTempo > 0 {
		tempo = midiTempo
	}
	velocity := cfg.MIDI.Velocity
	if midiVelocity > 0 {
		velocity = midiVelocity
	}
	if velocity < 1 || velocity > 127 {
		return fmt.Errorf("velocity must be between 1 and 127, got %d", velocity)
	}

	var seq midifile.Sequence
	for _, arg := range args {
		p, err := pitch.ParseEnharmonicPitch(arg)
		if err != nil {
			return err
		}
		seq.Append(p)
	}

	opts := midifile.Options{
		Tempo:           tempo,
		Velocity:        uint8(velocity),
		TicksPerQuarter: uint16(cfg.MIDI.TicksPerQuarter),
	}
	if err := midifile.WriteFile(&seq, outputFile, opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %d notes to %s\n", seq.Len(), outputFile)
	return nil
}
