package gabc

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a complete GABC document: header attributes, "%%", body.
//
//nolint:govet // participle grammar tags are not standard struct tags
type File struct {
	Pos    lexer.Position
	Header []*Attribute `@@*`
	Body   *Body        `Separator @@`
}

// Attribute is one "key: value;" header line.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Attribute struct {
	Pos   lexer.Position
	Key   string `@AttrKey Colon`
	Value string `@AttrValue? ValueEnd`
}

// Body is a sequence of words separated by whitespace.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Body struct {
	Pos   lexer.Position
	Words []*Word `( @@ | Whitespace )*`
}

// Word is a run of syllables with no whitespace between them.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Word struct {
	Pos       lexer.Position
	Syllables []*Syllable `@@+`
}

// Syllable is optional lyric text followed by an optional music group.
// At least one of the two is present.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Syllable struct {
	Pos   lexer.Position
	Text  string `(  @Text`
	Music *Music `   @@? | @@ )`
}

// Music is the parenthesised group of musical items attached to a syllable.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Music struct {
	Pos   lexer.Position
	Items []*Item `Open @@* Close`
}

// Item is a single element of a music group. Exactly one field is set.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Item struct {
	Pos     lexer.Position
	Clef    string `  @Clef`
	Barline string `| @Barline`
	Spacer  string `| @( Spacer | Space )`
	Note    *Note  `| @@`
	Ignored string `| @( Rhythm | EmptyNote | LineBreak | Ornament | Custos )`
}

// Note is a staff position with its optional liquescent prefix and the
// alterations, shapes and signs written after it.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Note struct {
	Pos      lexer.Position
	Prefix   string  `@Prefix?`
	Position string  `@Position`
	Marks    []*Mark `@@*`
}

// Mark is one annotation following a note's position letter.
//
//nolint:govet // participle grammar tags are not standard struct tags
type Mark struct {
	Alteration string `  @Alteration`
	Shape      string `| @Shape`
	Rhythm     string `| @( Rhythm | "'" )`
	Accent     string `| @( EmptyNote | Ornament )`
	Custos     bool   `| @Custos`
}

// IsCustos reports whether the note is a custos, the guide printed at the
// end of a staff line rather than a sung note.
func (n *Note) IsCustos() bool {
	for _, m := range n.Marks {
		if m.Custos {
			return true
		}
	}
	return false
}
