package volpiano

import (
	"strings"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
)

// Encode turns music events into a Volpiano string using each clef's
// default tonic.
func Encode(events []MusicEvent) (string, error) {
	return encode(events, 0)
}

// EncodeWithTonic is like Encode but resolves every pitched event against
// the given tonic instead of the clef default.
func EncodeWithTonic(events []MusicEvent, tonic int) (string, error) {
	return encode(events, tonic)
}

// encode makes a single forward pass. The only state is the clef in force,
// which applies from a clef event up to the next one. A tonic of 0 selects
// the clef default.
func encode(events []MusicEvent, tonic int) (string, error) {
	var b strings.Builder
	clef := ""

	for _, event := range events {
		switch event.Kind {
		case KindClef:
			clef = event.Clef
			b.WriteString(ClefMarker)

		case KindBarline, KindBoundary, KindSpacer:
			b.WriteString(event.Value)

		case KindNote, KindLiquescent, KindAlteration:
			if clef == "" {
				return "", &errors.MissingClefError{Kind: string(event.Kind), Position: event.Position}
			}
			char, err := encodePitched(event, clef, tonic)
			if err != nil {
				return "", err
			}
			b.WriteString(char)

		default:
			return "", errors.NewContract("event", string(event.Kind), "unknown event kind")
		}
	}

	return b.String(), nil
}

func encodePitched(event MusicEvent, clef string, tonic int) (string, error) {
	if tonic == 0 {
		tonic = DefaultTonic(clef)
	}

	var flavor Flavor
	switch event.Kind {
	case KindNote:
		flavor = FlavorPlain
	case KindLiquescent:
		flavor = FlavorLiquescent
	case KindAlteration:
		if event.Flavor != FlavorFlat && event.Flavor != FlavorNatural {
			return "", errors.NewContract("alteration", string(event.Flavor), "unknown alteration flavor")
		}
		flavor = event.Flavor
	}

	return PositionToVolpiano(event.Position, clef, tonic, flavor)
}
