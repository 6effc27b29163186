package volpiano

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/core/gabc"
)

// Extraction is the flattened form of a parse tree: header attributes, lyric
// tokens and music events, each in document order.
type Extraction struct {
	Header *Header      `json:"header,omitempty"`
	Lyrics []LyricToken `json:"lyrics"`
	Events []MusicEvent `json:"events"`
}

// Text returns the lyric text of the extraction.
func (x *Extraction) Text() string {
	return JoinLyrics(x.Lyrics)
}

// ExtractFile flattens a complete GABC document.
func ExtractFile(file *gabc.File) (*Extraction, error) {
	if file == nil || file.Body == nil {
		return nil, errors.NewContract("gabc_file", "", "missing body")
	}
	x, err := ExtractBody(file.Body)
	if err != nil {
		return nil, err
	}
	x.Header = ExtractHeader(file.Header)
	return x, nil
}

// ExtractHeader collects header attributes into an ordered Header.
// Keys and values are trimmed of surrounding whitespace.
func ExtractHeader(attrs []*gabc.Attribute) *Header {
	h := NewHeader()
	for _, attr := range attrs {
		h.Set(strings.TrimSpace(attr.Key), strings.TrimSpace(attr.Value))
	}
	return h
}

// ExtractBody flattens a GABC body. Word boundaries are inserted strictly
// between consecutive words.
func ExtractBody(body *gabc.Body) (*Extraction, error) {
	x := &Extraction{}
	if body == nil {
		return x, nil
	}
	for i, word := range body.Words {
		if i > 0 {
			x.Lyrics = append(x.Lyrics, LyricToken{Kind: TokenWordBoundary, Text: TextWordBoundary})
			x.Events = append(x.Events, BoundaryEvent(MusicWordBoundary))
		}
		lyrics, events, err := extractWord(word)
		if err != nil {
			return nil, err
		}
		x.Lyrics = append(x.Lyrics, lyrics...)
		x.Events = append(x.Events, events...)
	}
	return x, nil
}

// extractWord inserts syllable boundaries strictly between syllables.
func extractWord(word *gabc.Word) ([]LyricToken, []MusicEvent, error) {
	var lyrics []LyricToken
	var events []MusicEvent
	for i, syl := range word.Syllables {
		if i > 0 {
			lyrics = append(lyrics, LyricToken{Kind: TokenSyllableBoundary, Text: TextSyllableBoundary})
			events = append(events, BoundaryEvent(MusicSyllableBoundary))
		}
		text, music, err := extractSyllable(syl)
		if err != nil {
			return nil, nil, err
		}
		lyrics = append(lyrics, LyricToken{Kind: TokenSyllable, Text: text})
		events = append(events, music...)
	}
	return lyrics, events, nil
}

func extractSyllable(syl *gabc.Syllable) (string, []MusicEvent, error) {
	if syl.Music == nil {
		return "", nil, contractAt(syl.Pos, "syllable", syl.Text, "missing music group")
	}
	text := syl.Text
	if text == "" {
		text = NoText
	}
	events, err := extractMusic(syl.Music)
	if err != nil {
		return "", nil, err
	}
	return text, events, nil
}

// extractMusic returns the events of a music group. Whitespace, rhythmic
// signs and other ignored items contribute nothing.
func extractMusic(music *gabc.Music) ([]MusicEvent, error) {
	events := make([]MusicEvent, 0, len(music.Items))
	for _, item := range music.Items {
		event, ok, err := extractItem(item)
		if err != nil {
			return nil, err
		}
		if ok {
			events = append(events, event)
		}
	}
	return events, nil
}

func extractItem(item *gabc.Item) (MusicEvent, bool, error) {
	switch {
	case item.Clef != "":
		if !IsClef(item.Clef) {
			return MusicEvent{}, false, contractAt(item.Pos, "clef", item.Clef, "unsupported clef")
		}
		return ClefEvent(item.Clef), true, nil

	case item.Barline != "":
		value, ok := barlines[item.Barline]
		if !ok {
			return MusicEvent{}, false, contractAt(item.Pos, "barline", item.Barline, "unmapped token")
		}
		return BarlineEvent(value), true, nil

	case item.Spacer != "":
		if strings.TrimSpace(item.Spacer) == "" {
			return MusicEvent{}, false, nil
		}
		value, ok := spacers[item.Spacer]
		if !ok {
			return MusicEvent{}, false, contractAt(item.Pos, "spacer", item.Spacer, "unmapped token")
		}
		return SpacerEvent(value), true, nil

	case item.Note != nil:
		event, ok := extractNote(item.Note)
		return event, ok, nil

	default:
		return MusicEvent{}, false, nil
	}
}

// extractNote decomposes a note into exactly one event: an alteration if
// flat or natural (flat wins), else a liquescent if marked by prefix or
// shape, else a plain note. A custos yields no event.
func extractNote(note *gabc.Note) (MusicEvent, bool) {
	if note.IsCustos() {
		return MusicEvent{}, false
	}

	position := strings.ToLower(note.Position)
	liquescent := liquescentPrefixes[note.Prefix]
	var flat, natural bool

	for _, mark := range note.Marks {
		switch {
		case mark.Alteration != "":
			switch alterations[mark.Alteration] {
			case FlavorFlat:
				flat = true
			case FlavorNatural:
				natural = true
			}
		case mark.Shape != "":
			if liquescentShapes[mark.Shape] {
				liquescent = true
			}
		}
	}

	switch {
	case flat:
		return AlterationEvent(position, FlavorFlat), true
	case natural:
		return AlterationEvent(position, FlavorNatural), true
	case liquescent:
		return LiquescentEvent(position), true
	default:
		return NoteEvent(position), true
	}
}

func contractAt(pos lexer.Position, node, value, message string) *errors.ContractError {
	return &errors.ContractError{
		Node:    node,
		Value:   value,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: message,
	}
}
