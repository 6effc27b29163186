package volpiano

import (
	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
)

// DefaultTonic returns the MIDI pitch of the tonic on the clef's own line.
// The c3 and c4 clefs sit an octave higher than the others.
func DefaultTonic(clef string) int {
	if tonic, ok := clefTonics[clef]; ok {
		return tonic
	}
	return LowTonic
}

// ResolveMIDI returns the MIDI pitch of a staff position under a clef, using
// the clef's default tonic.
func ResolveMIDI(position, clef string) (int, error) {
	return ResolveMIDIWithTonic(position, clef, DefaultTonic(clef))
}

// ResolveMIDIWithTonic returns the MIDI pitch of a staff position under a
// clef, taking tonic as the pitch of the clef line.
//
// The staff is a ladder of seven steps per octave anchored at the clef line:
// the offset from the clef picks an octave (floor division by 7) and a scale
// degree (non-negative remainder). Flat clefs use a scale with a lowered
// seventh degree.
func ResolveMIDIWithTonic(position, clef string, tonic int) (int, error) {
	pos, ok := positionOffsets[position]
	if !ok {
		return 0, errors.NewContract("position", position, "unknown staff position")
	}
	clefPos, ok := clefOffsets[clef]
	if !ok {
		return 0, errors.NewContract("clef", clef, "unsupported clef")
	}

	relative := pos - clefPos
	octave := floorDiv(relative, 7)
	degree := relative - octave*7

	scale := diatonicScale
	if flatClefs[clef] {
		scale = flatScale
	}

	return tonic + octave*12 + scale[degree], nil
}

// PitchToVolpiano returns the Volpiano character for a MIDI pitch in the
// table of the given flavor.
func PitchToVolpiano(pitch int, flavor Flavor) (string, error) {
	table, ok := flavorTables[flavor]
	if !ok {
		return "", errors.NewContract("flavor", string(flavor), "unknown volpiano table")
	}
	char, ok := table[pitch]
	if !ok {
		return "", &errors.PitchError{Pitch: pitch, Flavor: string(flavor)}
	}
	return char, nil
}

// PositionToVolpiano resolves a staff position under a clef and looks the
// pitch up in the table of the given flavor.
func PositionToVolpiano(position, clef string, tonic int, flavor Flavor) (string, error) {
	pitch, err := ResolveMIDIWithTonic(position, clef, tonic)
	if err != nil {
		return "", err
	}
	char, err := PitchToVolpiano(pitch, flavor)
	if err != nil {
		var pe *errors.PitchError
		if errors.As(err, &pe) {
			pe.Clef = clef
			pe.Position = position
		}
		return "", err
	}
	return char, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
