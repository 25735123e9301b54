// Command suffixes prints the suffixes of its input, one scalar value or one
// field shorter per line, or counts them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"golang.org/x/text/unicode/norm"

	"github.com/scalecode-solutions/suffix"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// CLI defines the command-line interface for suffixes.
type CLI struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})"`

	List  ListCmd  `cmd:"" default:"withargs" help:"Print every suffix of the input"`
	Count CountCmd `cmd:"" help:"Print the number of suffixes of the input"`
	Hint  HintCmd  `cmd:"" help:"Print bounds on the number of suffixes without scanning"`
}

// Input selects and prepares the text a command works on.
type Input struct {
	Text   []string `arg:"" optional:"" help:"Text to enumerate, joined by spaces; read from stdin if omitted"`
	NFC    bool     `name:"nfc" help:"Normalize the input to NFC first"`
	Fields bool     `name:"fields" short:"f" help:"Enumerate whitespace-separated fields instead of scalar values"`
}

// env carries the I/O a command runs against.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

// read returns the input text.
func (in *Input) read(e *env) (string, error) {
	var text string
	if len(in.Text) > 0 {
		text = strings.Join(in.Text, " ")
	} else {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}

	// The library trusts its input; a command line does not.
	if !utf8.ValidString(text) {
		return "", errInvalidUTF8
	}
	if in.NFC {
		normalized := norm.NFC.String(text)
		e.log.Debug("normalized input", "before_bytes", len(text), "after_bytes", len(normalized))
		text = normalized
	}
	e.log.Debug("read input", "bytes", len(text), "fields", in.Fields)
	return text, nil
}

// ListCmd prints every suffix.
type ListCmd struct {
	Input   `embed:""`
	Offsets bool `name:"offsets" short:"o" help:"Prefix each suffix with its offset into the input"`
}

// Run prints the suffixes of the input.
func (c *ListCmd) Run(e *env) error {
	text, err := c.read(e)
	if err != nil {
		return err
	}

	if c.Fields {
		fields := strings.Fields(text)
		it := suffix.Slice(fields)
		for i, s := range it.All2() {
			if c.Offsets {
				fmt.Fprintf(e.stdout, "%d\t", i)
			}
			fmt.Fprintln(e.stdout, strings.Join(s, " "))
		}
		e.log.Info("listed suffixes", "count", len(fields), "fields", true)
		return nil
	}

	n := 0
	for s := range suffix.InString(text) {
		if c.Offsets {
			fmt.Fprintf(e.stdout, "%d\t", len(text)-len(s))
		}
		fmt.Fprintln(e.stdout, s)
		n++
	}
	e.log.Info("listed suffixes", "count", n, "fields", false)
	return nil
}

// CountCmd prints the number of suffixes.
type CountCmd struct {
	Input `embed:""`
}

// Run prints the suffix count of the input.
func (c *CountCmd) Run(e *env) error {
	text, err := c.read(e)
	if err != nil {
		return err
	}

	var n int
	if c.Fields {
		it := suffix.Slice(strings.Fields(text))
		n = it.Count()
	} else {
		it := suffix.String(text)
		n = it.Count()
	}
	fmt.Fprintln(e.stdout, n)
	return nil
}

// HintCmd prints the size hint for the input.
type HintCmd struct {
	Input `embed:""`
}

// Run prints the lower and upper bound on the suffix count.
func (c *HintCmd) Run(e *env) error {
	text, err := c.read(e)
	if err != nil {
		return err
	}

	var lower, upper int
	if c.Fields {
		it := suffix.Slice(strings.Fields(text))
		lower, upper = it.SizeHint()
	} else {
		it := suffix.String(text)
		lower, upper = it.SizeHint()
	}
	fmt.Fprintln(e.stdout, lower, upper)
	return nil
}

// newLogger returns a logger writing to w at the given level and format.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// run parses args and executes the selected command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("suffixes"),
		kong.Description("Enumerate the suffixes of UTF-8 text"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	e := &env{
		stdin:  stdin,
		stdout: stdout,
		log:    newLogger(cli.LogLevel, cli.LogFormat, stderr),
	}
	return ctx.Run(e)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "suffixes: %v\n", err)
		os.Exit(1)
	}
}
