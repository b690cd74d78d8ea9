package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"github.com/OpenPecha/durchen-content-annotation/internal/durchen"
	"github.com/OpenPecha/durchen-content-annotation/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for durchen-annotate.
type params struct {
	version bool
	help    Help

	Text         string
	Notes        string
	Segmentation string
	Segments     []segmentFlag

	Whole  bool
	Output string
	Debug  flagvalue.FileSwitch
}

// cliParser parses the command line arguments for durchen-annotate.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("durchen-annotate", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Inputs:
	fset.StringVar(&p.Text, "text", "", "")
	fset.StringVar(&p.Notes, "notes", "", "")
	fset.StringVar(&p.Segmentation, "segments", "", "")
	fset.Var(flagvalue.ListOf(&p.Segments), "segment", "")

	// Output:
	fset.BoolVar(&p.Whole, "whole", false, "")
	fset.StringVar(&p.Output, "o", "", "")

	// Program-level:
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")
	fset.Var(&p.help, "help", "")
	fset.Var(&p.help, "h", "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("DURCHEN")); err != nil {
		return nil, err
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "durchen-annotate", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && fset.NArg() > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(fset.Arg(0)); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if fset.NArg() > 0 {
		fmt.Fprintf(cmd.Stderr, "unexpected argument %q\n", fset.Arg(0))
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Text == "" || p.Notes == "" {
		fmt.Fprintln(cmd.Stderr, "Please provide both -text and -notes.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// segmentFlag is a single "-segment id=start:end" argument.
type segmentFlag struct {
	ID    string
	Start int
	End   int
}

var _ flag.Getter = (*segmentFlag)(nil)

func (sf *segmentFlag) Get() any { return sf }

func (sf *segmentFlag) String() string {
	return fmt.Sprintf("%s=%d:%d", sf.ID, sf.Start, sf.End)
}

// Set receives a command line value of the form "id=start:end".
func (sf *segmentFlag) Set(s string) error {
	eq := strings.IndexRune(s, '=')
	if eq < 0 {
		return fmt.Errorf("expected form 'id=start:end'")
	}
	id, span := s[:eq], s[eq+1:]

	colon := strings.IndexRune(span, ':')
	if colon < 0 {
		return fmt.Errorf("expected form 'id=start:end'")
	}

	start, err := strconv.Atoi(span[:colon])
	if err != nil {
		return fmt.Errorf("bad start offset %q: %w", span[:colon], err)
	}
	end, err := strconv.Atoi(span[colon+1:])
	if err != nil {
		return fmt.Errorf("bad end offset %q: %w", span[colon+1:], err)
	}

	sf.ID = id
	sf.Start = start
	sf.End = end
	return nil
}

func (sf segmentFlag) segment() durchen.Segment {
	return durchen.Segment{
		ID:   sf.ID,
		Span: durchen.Span{Start: sf.Start, End: sf.End},
	}
}
