// Command gabc2volpiano converts Gregorian chant from GABC notation to
// Volpiano. It converts single files or body fragments, shows the
// intermediate event stream, resolves single pitches, and exports whole
// directories into an SQLite corpus.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/gabc2volpiano/core/sqlite"
	"github.com/FocuswithJustin/gabc2volpiano/core/volpiano"
	"github.com/FocuswithJustin/gabc2volpiano/internal/corpus"
	"github.com/FocuswithJustin/gabc2volpiano/internal/logging"
)

const version = "0.1.0"

var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error" env:"GABC2VOLPIANO_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json" env:"GABC2VOLPIANO_LOG_FORMAT"`
	Tonic     int    `help:"MIDI pitch of the clef line, 0 for the clef default" default:"0" env:"GABC2VOLPIANO_TONIC"`
}

// CLI defines the command-line interface for gabc2volpiano.
type CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" help:"Convert a GABC file (.gabc, .gabc.gz, .gabc.xz)"`
	Body    BodyCmd    `cmd:"" help:"Convert a header-less GABC fragment"`
	Events  EventsCmd  `cmd:"" help:"Show the lyric tokens and music events of a GABC file"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a staff position under a clef to MIDI and Volpiano"`
	Export  ExportCmd  `cmd:"" help:"Convert a directory of GABC files into an SQLite corpus"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func (g *Globals) initLogging() error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return err
	}
	logging.SetOutput(os.Stderr)
	logging.InitLogger(level, format)
	return nil
}

func (g *Globals) converter() (*volpiano.Converter, error) {
	if g.Tonic < 0 || g.Tonic > 127 {
		return nil, fmt.Errorf("tonic %d out of MIDI range", g.Tonic)
	}
	return volpiano.NewConverter(volpiano.WithTonic(g.Tonic)), nil
}

// ConvertCmd converts a complete GABC file.
type ConvertCmd struct {
	Path   string `arg:"" help:"Path to GABC file" type:"existingfile"`
	Format string `help:"Output format (text, json)" default:"text" enum:"text,json" short:"f"`
}

func (c *ConvertCmd) Run(g *Globals) error {
	conv, err := g.converter()
	if err != nil {
		return err
	}
	start := time.Now()
	chant, err := conv.ConvertPath(c.Path)
	if err != nil {
		logging.ConversionFailed(context.Background(), c.Path, err)
		return err
	}
	logging.ConversionDone(context.Background(), c.Path, len(chant.Volpiano), time.Since(start))

	if c.Format == "json" {
		return writeJSON(chant)
	}
	for _, key := range chant.Header.Keys() {
		fmt.Fprintf(stdout, "%s: %s\n", key, chant.Header.Value(key))
	}
	if chant.Header.Len() > 0 {
		fmt.Fprintln(stdout)
	}
	fmt.Fprintf(stdout, "text:     %s\n", chant.Text)
	fmt.Fprintf(stdout, "volpiano: %s\n", chant.Volpiano)
	return nil
}

// BodyCmd converts a body fragment given on the command line or stdin.
type BodyCmd struct {
	GABC   string `arg:"" help:"GABC body, or - to read from stdin"`
	Format string `help:"Output format (text, json)" default:"text" enum:"text,json" short:"f"`
}

func (c *BodyCmd) Run(g *Globals) error {
	conv, err := g.converter()
	if err != nil {
		return err
	}

	src := c.GABC
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		src = strings.TrimRight(string(data), "\r\n")
	}

	text, melody, err := conv.ConvertBody(src)
	if err != nil {
		return err
	}
	if c.Format == "json" {
		return writeJSON(volpiano.Chant{Text: text, Volpiano: melody})
	}
	fmt.Fprintln(stdout, text)
	fmt.Fprintln(stdout, melody)
	return nil
}

// EventsCmd dumps the intermediate representation of a GABC file.
type EventsCmd struct {
	Path   string `arg:"" help:"Path to GABC file" type:"existingfile"`
	Format string `help:"Output format (text, json)" default:"text" enum:"text,json" short:"f"`
}

func (c *EventsCmd) Run(g *Globals) error {
	conv, err := g.converter()
	if err != nil {
		return err
	}
	x, err := conv.ExtractPath(c.Path)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		return writeJSON(x)
	}
	fmt.Fprintf(stdout, "Lyrics (%d tokens):\n", len(x.Lyrics))
	for _, tok := range x.Lyrics {
		fmt.Fprintf(stdout, "  %-18s %q\n", tok.Kind, tok.Text)
	}
	fmt.Fprintf(stdout, "Events (%d):\n", len(x.Events))
	for _, ev := range x.Events {
		fmt.Fprintf(stdout, "  %s\n", ev)
	}
	return nil
}

// ResolveCmd resolves one staff position.
type ResolveCmd struct {
	Position string `arg:"" help:"Staff position (a-m)"`
	Clef     string `arg:"" help:"Clef (c1, c2, c3, c4, cb3, cb4, f3, f4)"`
	Flavor   string `help:"Volpiano flavor (plain, liquescent, flat, natural)" default:"plain" enum:"plain,liquescent,flat,natural"`
}

func (c *ResolveCmd) Run(g *Globals) error {
	conv, err := g.converter()
	if err != nil {
		return err
	}
	tonic := conv.Tonic()
	if tonic == 0 {
		tonic = volpiano.DefaultTonic(c.Clef)
	}

	pitch, err := volpiano.ResolveMIDIWithTonic(c.Position, c.Clef, tonic)
	if err != nil {
		return err
	}
	flavor, err := volpiano.ParseFlavor(c.Flavor)
	if err != nil {
		return err
	}
	char, err := volpiano.PitchToVolpiano(pitch, flavor)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "position: %s\nclef:     %s\nmidi:     %d\nvolpiano: %s\n", c.Position, c.Clef, pitch, char)
	return nil
}

// ExportCmd converts a directory tree into an SQLite corpus.
type ExportCmd struct {
	Dir string `arg:"" help:"Directory containing GABC files" type:"existingdir"`
	DB  string `name:"db" required:"" help:"Output SQLite database path" type:"path"`
}

func (c *ExportCmd) Run(g *Globals) error {
	conv, err := g.converter()
	if err != nil {
		return err
	}
	store, err := corpus.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := corpus.Export(ctx, c.Dir, store, conv)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Run %s: %d files, %d converted, %d failed, %d duplicates\n",
		summary.RunID, summary.Files, summary.Converted, summary.Failed, summary.Cached)
	fmt.Fprintf(stdout, "Corpus written to %s (%s driver)\n", store.Path(), sqlite.DriverType())
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "gabc2volpiano version %s (sqlite: %s)\n", version, info.Package)
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gabc2volpiano"),
		kong.Description("Convert Gregorian chant from GABC to Volpiano"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(cli.Globals.initLogging())
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
