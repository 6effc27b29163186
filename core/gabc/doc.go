// Package gabc parses GABC, the plain-text notation for Gregorian chant,
// into a typed parse tree.
//
// A GABC file is a header of "key: value;" attributes, a "%%" separator and
// a body. The body interleaves lyric text with parenthesised music groups:
//
//	name: Populus Sion;
//	mode: 7;
//	%%
//	(c3) Po(e)pu(f)lus(g') Si(h)on(hih)
//
// The parser only produces the tree. Pitch, boundaries and Volpiano output
// are computed by package volpiano.
package gabc
