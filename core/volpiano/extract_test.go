package volpiano

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/core/gabc"
)

func extractString(t *testing.T, src string) (*Extraction, error) {
	t.Helper()
	body, err := gabc.ParseBody(src)
	require.NoError(t, err)
	return ExtractBody(body)
}

func TestExtractBodyBoundaries(t *testing.T) {
	x, err := extractString(t, "syl1(c4j)syl2(k)")
	require.NoError(t, err)

	assert.Equal(t, "syl1-syl2", x.Text())
	assert.Equal(t, []LyricToken{
		{Kind: TokenSyllable, Text: "syl1"},
		{Kind: TokenSyllableBoundary, Text: "-"},
		{Kind: TokenSyllable, Text: "syl2"},
	}, x.Lyrics)
	assert.Equal(t, []MusicEvent{
		ClefEvent("c4"),
		NoteEvent("j"),
		BoundaryEvent(MusicSyllableBoundary),
		NoteEvent("k"),
	}, x.Events)

	x, err = extractString(t, "word1(c4j) word2(k)")
	require.NoError(t, err)
	assert.Equal(t, "word1 word2", x.Text())
	assert.Equal(t, []MusicEvent{
		ClefEvent("c4"),
		NoteEvent("j"),
		BoundaryEvent(MusicWordBoundary),
		NoteEvent("k"),
	}, x.Events)
}

func TestExtractBodyNoTrailingBoundaries(t *testing.T) {
	x, err := extractString(t, "  a(c4j)b(k)  c(l)\n")
	require.NoError(t, err)

	require.NotEmpty(t, x.Lyrics)
	assert.Equal(t, TokenSyllable, x.Lyrics[0].Kind)
	assert.Equal(t, TokenSyllable, x.Lyrics[len(x.Lyrics)-1].Kind)
	assert.Equal(t, "a-b c", x.Text())

	last := x.Events[len(x.Events)-1]
	assert.Equal(t, KindNote, last.Kind)
}

func TestExtractSyllableWithoutText(t *testing.T) {
	x, err := extractString(t, "(c4) A(j)")
	require.NoError(t, err)
	assert.Equal(t, " A", x.Text())
	assert.Equal(t, NoText, x.Lyrics[0].Text)
}

func TestExtractEmptyBody(t *testing.T) {
	x, err := extractString(t, "")
	require.NoError(t, err)
	assert.Empty(t, x.Lyrics)
	assert.Empty(t, x.Events)

	x, err = ExtractBody(nil)
	require.NoError(t, err)
	assert.Empty(t, x.Events)
}

func TestExtractNoteDecomposition(t *testing.T) {
	tests := []struct {
		name  string
		music string
		want  MusicEvent
	}{
		{name: "plain", music: "j", want: NoteEvent("j")},
		{name: "upper case", music: "J", want: NoteEvent("j")},
		{name: "liquescent prefix", music: "-j", want: LiquescentEvent("j")},
		{name: "liquescent shape", music: "jw", want: LiquescentEvent("j")},
		{name: "other shapes", music: "jv", want: NoteEvent("j")},
		{name: "flat", music: "ix", want: AlterationEvent("i", FlavorFlat)},
		{name: "natural", music: "iy", want: AlterationEvent("i", FlavorNatural)},
		{name: "flat wins over natural", music: "iyx", want: AlterationEvent("i", FlavorFlat)},
		{name: "alteration wins over liquescent", music: "-ixw", want: AlterationEvent("i", FlavorFlat)},
		{name: "sharp is dropped", music: "j#", want: NoteEvent("j")},
		{name: "rhythmic signs are dropped", music: "j._'", want: NoteEvent("j")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := extractString(t, "(c4"+tt.music+")")
			require.NoError(t, err)
			require.Len(t, x.Events, 2)
			assert.Equal(t, tt.want, x.Events[1])
		})
	}
}

func TestExtractFilteredItems(t *testing.T) {
	x, err := extractString(t, "(c4 j.. k_ z0 l+ [ll:1] r1)")
	require.NoError(t, err)
	assert.Equal(t, []MusicEvent{
		ClefEvent("c4"),
		NoteEvent("j"),
		NoteEvent("k"),
	}, x.Events)
}

func TestExtractSpacers(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"!", ""},
		{"@", ""},
		{"/", "-"},
		{"//", "-"},
		{"/[-2]", "-"},
		{"/[0]", "-"},
		{"/[4]", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			x, err := extractString(t, "(j"+tt.token+"k)")
			require.NoError(t, err)
			require.Len(t, x.Events, 3)
			assert.Equal(t, SpacerEvent(tt.want), x.Events[1])
		})
	}
}

func TestBarlineTable(t *testing.T) {
	severities := map[string]bool{
		BarlineComma:  true,
		BarlineMiddle: true,
		BarlineDouble: true,
		BarlineSingle: true,
	}

	documented := []string{",", ",_", ",0", "'", "`", ";", ";1", ";2", ";3", ";4", ";5", ";6", "::", ":", ":?"}
	assert.Len(t, barlines, len(documented))

	for _, token := range documented {
		t.Run(token, func(t *testing.T) {
			x, err := extractString(t, "("+token+")")
			require.NoError(t, err)
			require.Len(t, x.Events, 1)

			event := x.Events[0]
			assert.Equal(t, KindBarline, event.Kind)
			assert.True(t, severities[event.Value], "%q maps to %q", token, event.Value)
			assert.Equal(t, barlines[token], event.Value)

			out, err := Encode(x.Events)
			require.NoError(t, err)
			assert.Equal(t, event.Value, out)
		})
	}

	// severity characters are reserved for barlines
	for _, value := range spacers {
		assert.False(t, severities[value], "spacer literal %q collides with a barline", value)
	}
	for _, literal := range []string{ClefMarker, MusicSyllableBoundary, MusicWordBoundary} {
		assert.False(t, severities[literal])
	}
	for _, table := range flavorTables {
		for _, char := range table {
			assert.False(t, severities[char], "note character %q collides with a barline", char)
		}
	}
}

func TestExtractContractViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		node string
	}{
		{name: "syllable without music", src: "a(c4j) bc", node: "syllable"},
		{name: "unsupported clef", src: "(c5) a(j)", node: "clef"},
		{name: "unsupported f clef", src: "(f1)", node: "clef"},
		{name: "unmapped spacer offset", src: "(c4j/[5]k)", node: "spacer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := extractString(t, tt.src)
			require.Error(t, err)
			assert.Nil(t, x)
			assert.True(t, errors.Is(err, errors.ErrContract))

			var ce *errors.ContractError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.node, ce.Node)
			assert.Positive(t, ce.Line)
		})
	}
}

func TestExtractFile(t *testing.T) {
	file, err := gabc.ParseFile("name:  Kyrie ;\nmode: 1;\nname: Kyrie IV;\n%%\na(c4j)")
	require.NoError(t, err)

	x, err := ExtractFile(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "mode"}, x.Header.Keys())
	assert.Equal(t, "Kyrie IV", x.Header.Value("name"))
	assert.Equal(t, "1", x.Header.Value("mode"))
	assert.Equal(t, "a", x.Text())

	_, err = ExtractFile(&gabc.File{})
	assert.True(t, errors.Is(err, errors.ErrContract))
}

func TestExtractPreservesDocumentOrder(t *testing.T) {
	x, err := extractString(t, "a(c4jk)b(lk) c(jf3h)")
	require.NoError(t, err)

	var kinds []string
	for _, e := range x.Events {
		kinds = append(kinds, string(e.Kind)+":"+e.Clef+e.Position+e.Value)
	}
	assert.Equal(t, strings.Join([]string{
		"clef:c4", "note:j", "note:k", "boundary:-", "note:l", "note:k",
		"boundary:---", "note:j", "clef:f3", "note:h",
	}, " "), strings.Join(kinds, " "))
}
