package volpiano

import (
	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/core/gabc"
	"github.com/FocuswithJustin/gabc2volpiano/internal/source"
)

// Chant is the result of converting a GABC document.
type Chant struct {
	Header   *Header `json:"header,omitempty"`
	Text     string  `json:"text"`
	Volpiano string  `json:"volpiano"`
}

// Converter converts GABC to Volpiano. The zero value is ready to use and
// resolves pitches with each clef's default tonic. A Converter holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	tonic int
}

// Option configures a Converter.
type Option func(*Converter)

// WithTonic makes the converter resolve every clef line to the given MIDI
// pitch. A tonic of 0 restores the per-clef default.
func WithTonic(tonic int) Option {
	return func(c *Converter) {
		c.tonic = tonic
	}
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tonic returns the configured tonic override, 0 when clef defaults are used.
func (c *Converter) Tonic() int {
	return c.tonic
}

// ConvertBody converts a header-less GABC fragment into lyric text and
// Volpiano.
func (c *Converter) ConvertBody(src string) (string, string, error) {
	body, err := gabc.ParseBody(src)
	if err != nil {
		return "", "", errors.NewParse("gabc body", "", err)
	}
	x, err := ExtractBody(body)
	if err != nil {
		return "", "", err
	}
	melody, err := encode(x.Events, c.tonic)
	if err != nil {
		return "", "", err
	}
	return x.Text(), melody, nil
}

// ConvertFile converts a complete GABC document, header included.
func (c *Converter) ConvertFile(src string) (*Chant, error) {
	return c.convertFile(src, "")
}

// ConvertPath reads a GABC file and converts it. Files compressed with gzip
// or xz are decompressed first.
func (c *Converter) ConvertPath(path string) (*Chant, error) {
	src, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	chant, err := c.convertFile(src, path)
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", path)
	}
	return chant, nil
}

// ExtractFile parses a complete GABC document and returns its flattened
// events without encoding them.
func (c *Converter) ExtractFile(src string) (*Extraction, error) {
	file, err := gabc.ParseFile(src)
	if err != nil {
		return nil, errors.NewParse("gabc", "", err)
	}
	return ExtractFile(file)
}

// ExtractPath reads a GABC file and returns its flattened events.
func (c *Converter) ExtractPath(path string) (*Extraction, error) {
	src, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := gabc.ParseFile(src)
	if err != nil {
		return nil, errors.NewParse("gabc", path, err)
	}
	x, err := ExtractFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "extract %s", path)
	}
	return x, nil
}

func (c *Converter) convertFile(src, path string) (*Chant, error) {
	file, err := gabc.ParseFile(src)
	if err != nil {
		return nil, errors.NewParse("gabc", path, err)
	}
	x, err := ExtractFile(file)
	if err != nil {
		return nil, err
	}
	melody, err := encode(x.Events, c.tonic)
	if err != nil {
		return nil, err
	}
	return &Chant{
		Header:   x.Header,
		Text:     x.Text(),
		Volpiano: melody,
	}, nil
}

var defaultConverter = NewConverter()

// ConvertBody converts a header-less GABC fragment with default settings.
func ConvertBody(src string) (string, string, error) {
	return defaultConverter.ConvertBody(src)
}

// ConvertFile converts a complete GABC document with default settings.
func ConvertFile(src string) (*Chant, error) {
	return defaultConverter.ConvertFile(src)
}

// ConvertPath reads and converts a GABC file with default settings.
func ConvertPath(path string) (*Chant, error) {
	return defaultConverter.ConvertPath(path)
}
