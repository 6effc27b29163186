package volpiano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		events []MusicEvent
		want   string
	}{
		{
			name:   "empty",
			events: nil,
			want:   "",
		},
		{
			name: "every kind",
			events: []MusicEvent{
				ClefEvent("c4"),
				NoteEvent("j"),
				BoundaryEvent(MusicSyllableBoundary),
				LiquescentEvent("h"),
				AlterationEvent("i", FlavorFlat),
				AlterationEvent("i", FlavorNatural),
				SpacerEvent("-"),
				BarlineEvent(BarlineSingle),
			},
			want: "1k-HiI-3",
		},
		{
			name: "empty spacer contributes nothing",
			events: []MusicEvent{
				ClefEvent("c4"),
				NoteEvent("j"),
				SpacerEvent(""),
				NoteEvent("j"),
			},
			want: "1kk",
		},
		{
			name: "clef change applies to following notes only",
			events: []MusicEvent{
				ClefEvent("c4"),
				NoteEvent("j"),
				BoundaryEvent(MusicWordBoundary),
				ClefEvent("f3"),
				NoteEvent("j"),
			},
			want: "1k---1h",
		},
		{
			name: "barlines and boundaries need no clef",
			events: []MusicEvent{
				BarlineEvent(BarlineDouble),
				BoundaryEvent(MusicWordBoundary),
			},
			want: "4---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.events)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeMissingClef(t *testing.T) {
	tests := []struct {
		name   string
		events []MusicEvent
	}{
		{name: "note first", events: []MusicEvent{NoteEvent("f"), ClefEvent("c4")}},
		{name: "liquescent after barline", events: []MusicEvent{BarlineEvent(BarlineComma), LiquescentEvent("g")}},
		{name: "alteration", events: []MusicEvent{AlterationEvent("i", FlavorFlat)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.events)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, errors.ErrMissingClef))
			assert.False(t, errors.Is(err, errors.ErrUnrepresentablePitch))
		})
	}
}

func TestEncodeUnrepresentablePitch(t *testing.T) {
	got, err := Encode([]MusicEvent{ClefEvent("cb4"), NoteEvent("j"), NoteEvent("i")})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, errors.ErrUnrepresentablePitch))
	assert.False(t, errors.Is(err, errors.ErrMissingClef))

	// no flat sign exists for a c
	_, err = Encode([]MusicEvent{ClefEvent("c4"), AlterationEvent("j", FlavorFlat)})
	assert.True(t, errors.Is(err, errors.ErrUnrepresentablePitch))
}

func TestEncodeWithTonic(t *testing.T) {
	events := []MusicEvent{ClefEvent("c4"), NoteEvent("j"), NoteEvent("k")}

	got, err := EncodeWithTonic(events, 60)
	require.NoError(t, err)
	assert.Equal(t, "1cd", got)

	_, err = EncodeWithTonic(events, 90)
	assert.True(t, errors.Is(err, errors.ErrUnrepresentablePitch))
}

func TestEncodeInvalidEvents(t *testing.T) {
	_, err := Encode([]MusicEvent{{Kind: EventKind("tempo")}})
	assert.True(t, errors.Is(err, errors.ErrContract))

	_, err = Encode([]MusicEvent{ClefEvent("c4"), AlterationEvent("i", FlavorPlain)})
	assert.True(t, errors.Is(err, errors.ErrContract))
}

func TestEventKindIsPitched(t *testing.T) {
	pitched := map[EventKind]bool{
		KindClef:       false,
		KindNote:       true,
		KindLiquescent: true,
		KindAlteration: true,
		KindBarline:    false,
		KindSpacer:     false,
		KindBoundary:   false,
	}
	for kind, want := range pitched {
		assert.Equal(t, want, kind.IsPitched(), string(kind))
	}
}
