// Package volpiano converts GABC chant notation into Volpiano.
//
// A conversion produces two strings: the lyric text, with syllables joined by
// "-" and words by " ", and the Volpiano melody, with one character per
// musical event.
//
// # Pipeline
//
// Conversion runs in two passes over a parse tree from package gabc:
//
//   - Extraction flattens the tree into lyric tokens and a parallel list of
//     MusicEvent values (clef, note, liquescent, alteration, barline, spacer,
//     boundary). Notes keep their staff position; no pitch is computed here.
//   - Encoding walks the events once, left to right, tracking the clef in
//     force. Each note is resolved against that clef into a MIDI pitch and
//     then into a Volpiano character.
//
// Pitches are resolved late because a clef change applies to every note
// after it, up to the next clef.
//
// # Failures
//
// A note before the first clef fails with errors.ErrMissingClef. A pitch
// outside the Volpiano tables fails with errors.ErrUnrepresentablePitch.
// Malformed trees and unmapped tokens fail with errors.ErrContract. No
// partial output is returned in any of these cases.
//
// # Example
//
//	text, melody, err := volpiano.ConvertBody("Ky(c4f)ri(gh)e(h) e(h)")
//	// text   == "Ky-ri-e e"
//	// melody == "1f-gh-h---h"
package volpiano
