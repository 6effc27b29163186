package volpiano

// Volpiano and lyric literals.
const (
	// NoText is the lyric text of a syllable written without text.
	NoText = ""
	// ClefMarker is emitted for every clef, whatever its identifier.
	ClefMarker = "1"

	TextSyllableBoundary  = "-"
	MusicSyllableBoundary = "-"
	TextWordBoundary      = " "
	MusicWordBoundary     = "---"
)

// Barline severities.
const (
	BarlineComma  = "7" // divisio minima
	BarlineMiddle = "6" // divisio minor
	BarlineDouble = "4" // divisio finalis
	BarlineSingle = "3" // divisio maior
)

// barlines maps every GABC barline spelling to its severity character.
var barlines = map[string]string{
	",":  BarlineComma,
	",_": BarlineComma,
	",0": BarlineComma,
	"'":  BarlineComma,
	"`":  BarlineComma,

	";":  BarlineMiddle,
	";1": BarlineMiddle,
	";2": BarlineMiddle,
	";3": BarlineMiddle,
	";4": BarlineMiddle,
	";5": BarlineMiddle,
	";6": BarlineMiddle,

	"::": BarlineDouble,

	":":  BarlineSingle,
	":?": BarlineSingle,
}

// spacers maps spacer spellings to their Volpiano literal. A bare space is
// not listed: it produces no event at all.
var spacers = map[string]string{
	"!": "",
	"@": "",

	// neumatic cuts
	"/":     "-",
	"//":    "-",
	"/[-2]": "-",
	"/[-1]": "-",
	"/[0]":  "-",
	"/[1]":  "-",
	"/[2]":  "-",
	"/[3]":  "-",
	"/[4]":  "-",
}

// alterations maps alteration marks to table flavors. Sharps are not listed.
var alterations = map[string]Flavor{
	"x": FlavorFlat,
	"y": FlavorNatural,
}

var liquescentShapes = map[string]bool{
	"w": true,
}

var liquescentPrefixes = map[string]bool{
	"-": true,
}

// positionOffsets is the staff step of each position letter; "d" is the
// lowest staff line.
var positionOffsets = map[string]int{
	"a": -3, "b": -2, "c": -1, "d": 0, "e": 1, "f": 2, "g": 3,
	"h": 4, "i": 5, "j": 6, "k": 7, "l": 8, "m": 9,
}

// clefOffsets is the staff step of the line each clef sits on.
var clefOffsets = map[string]int{
	"c1":  0,
	"c2":  2,
	"c3":  4,
	"cb3": 4,
	"c4":  6,
	"cb4": 6,
	"f3":  1,
	"f4":  3,
}

// Reference tonics, in MIDI numbers.
const (
	HighTonic = 72
	LowTonic  = 60
)

var clefTonics = map[string]int{
	"c3": HighTonic,
	"c4": HighTonic,
}

var (
	diatonicScale = [7]int{0, 2, 4, 5, 7, 9, 11}
	flatScale     = [7]int{0, 2, 4, 5, 7, 9, 10}
)

var flatClefs = map[string]bool{
	"cb3": true,
	"cb4": true,
}

// Volpiano character tables, keyed by MIDI pitch. The flat and natural
// tables are keyed by the natural pitch the sign applies to.
var (
	noteChars = map[int]string{
		53: "8", // F
		55: "9", // G
		57: "a",
		59: "b",
		60: "c",
		62: "d",
		64: "e",
		65: "f",
		67: "g",
		69: "h",
		71: "j",
		72: "k", // C
		74: "l",
		76: "m",
		77: "n",
		79: "o",
		81: "p",
		83: "q",
		84: "r", // C
		86: "s",
	}

	liquescentChars = map[int]string{
		53: "(", // F
		55: ")", // G
		57: "A",
		59: "B",
		60: "C",
		62: "D",
		64: "E",
		65: "F",
		67: "G",
		69: "H",
		71: "J",
		72: "K", // C
		74: "L",
		76: "M",
		77: "N",
		79: "O",
		81: "P",
		83: "Q",
		84: "R", // C
		86: "S",
	}

	flatChars = map[int]string{
		59: "y", // B flat
		64: "w", // E flat
		71: "i", // B flat
		76: "x", // E flat
		83: "z", // B flat
	}

	naturalChars = map[int]string{
		59: "Y",
		64: "W",
		71: "I",
		76: "X",
		83: "Z",
	}
)

var flavorTables = map[Flavor]map[int]string{
	FlavorPlain:      noteChars,
	FlavorLiquescent: liquescentChars,
	FlavorFlat:       flatChars,
	FlavorNatural:    naturalChars,
}

// Clefs returns the supported clef identifiers in staff order.
func Clefs() []string {
	return []string{"c1", "f3", "c2", "f4", "c3", "cb3", "c4", "cb4"}
}

// Positions returns the staff position letters from lowest to highest.
func Positions() []string {
	return []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}
}

// IsClef reports whether id is a supported clef identifier.
func IsClef(id string) bool {
	_, ok := clefOffsets[id]
	return ok
}
