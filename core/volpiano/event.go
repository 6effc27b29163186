package volpiano

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
)

// EventKind identifies the variant of a MusicEvent.
type EventKind string

// Music event kinds.
const (
	KindClef       EventKind = "clef"
	KindNote       EventKind = "note"
	KindLiquescent EventKind = "liquescent"
	KindAlteration EventKind = "alteration"
	KindBarline    EventKind = "barline"
	KindSpacer     EventKind = "spacer"
	KindBoundary   EventKind = "boundary"
)

// IsPitched reports whether events of this kind need a clef to be encoded.
func (k EventKind) IsPitched() bool {
	switch k {
	case KindNote, KindLiquescent, KindAlteration:
		return true
	default:
		return false
	}
}

// Flavor selects one of the four Volpiano character tables.
type Flavor string

// Volpiano table flavors.
const (
	FlavorPlain      Flavor = "plain"
	FlavorLiquescent Flavor = "liquescent"
	FlavorFlat       Flavor = "flat"
	FlavorNatural    Flavor = "natural"
)

func (f Flavor) String() string {
	return string(f)
}

// ParseFlavor returns the flavor with the given name.
func ParseFlavor(name string) (Flavor, error) {
	switch f := Flavor(strings.ToLower(name)); f {
	case FlavorPlain, FlavorLiquescent, FlavorFlat, FlavorNatural:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown flavor %q", errors.ErrInvalidInput, name)
}

// MusicEvent is one element of the flattened music stream.
//
// Which fields are meaningful depends on Kind:
//   - KindClef: Clef
//   - KindNote, KindLiquescent: Position
//   - KindAlteration: Position and Flavor (flat or natural)
//   - KindBarline, KindSpacer, KindBoundary: Value, the literal Volpiano output
type MusicEvent struct {
	Kind     EventKind `json:"kind"`
	Clef     string    `json:"clef,omitempty"`
	Position string    `json:"position,omitempty"`
	Flavor   Flavor    `json:"flavor,omitempty"`
	Value    string    `json:"value,omitempty"`
}

// String renders the event for diagnostics, e.g. "note f" or "barline 4".
func (e MusicEvent) String() string {
	switch e.Kind {
	case KindClef:
		return fmt.Sprintf("%s %s", e.Kind, e.Clef)
	case KindNote, KindLiquescent:
		return fmt.Sprintf("%s %s", e.Kind, e.Position)
	case KindAlteration:
		return fmt.Sprintf("%s %s %s", e.Kind, e.Flavor, e.Position)
	default:
		return fmt.Sprintf("%s %q", e.Kind, e.Value)
	}
}

// ClefEvent returns a clef change to the given clef identifier.
func ClefEvent(clef string) MusicEvent {
	return MusicEvent{Kind: KindClef, Clef: clef}
}

// NoteEvent returns a plain note at a staff position.
func NoteEvent(position string) MusicEvent {
	return MusicEvent{Kind: KindNote, Position: position}
}

// LiquescentEvent returns a liquescent note at a staff position.
func LiquescentEvent(position string) MusicEvent {
	return MusicEvent{Kind: KindLiquescent, Position: position}
}

// AlterationEvent returns a flat or natural sign at a staff position.
func AlterationEvent(position string, flavor Flavor) MusicEvent {
	return MusicEvent{Kind: KindAlteration, Position: position, Flavor: flavor}
}

// BarlineEvent returns a barline with its Volpiano severity character.
func BarlineEvent(value string) MusicEvent {
	return MusicEvent{Kind: KindBarline, Value: value}
}

// SpacerEvent returns a spacer with its Volpiano literal (possibly empty).
func SpacerEvent(value string) MusicEvent {
	return MusicEvent{Kind: KindSpacer, Value: value}
}

// BoundaryEvent returns a syllable or word boundary literal.
func BoundaryEvent(value string) MusicEvent {
	return MusicEvent{Kind: KindBoundary, Value: value}
}

// TokenKind identifies the variant of a LyricToken.
type TokenKind string

// Lyric token kinds.
const (
	TokenSyllable         TokenKind = "syllable"
	TokenSyllableBoundary TokenKind = "syllable_boundary"
	TokenWordBoundary     TokenKind = "word_boundary"
)

// LyricToken is either syllable text or a boundary separator.
type LyricToken struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
}

// JoinLyrics concatenates lyric tokens into the lyric text.
func JoinLyrics(tokens []LyricToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}
