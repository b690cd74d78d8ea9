// durchen-annotate renders durchen footnote annotations into a base text.
//
// It reads the text, an annotation feed, and optionally segment
// boundaries, and writes either the fully annotated text or a JSON
// array of annotated segments.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"

	"github.com/OpenPecha/durchen-content-annotation/internal/durchen"
	"github.com/OpenPecha/durchen-content-annotation/internal/errdefer"
	"github.com/OpenPecha/durchen-content-annotation/internal/feed"
	"github.com/OpenPecha/durchen-content-annotation/internal/slices"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("durchen-annotate: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	out := io.Writer(cmd.Stdout)
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	runner := Runner{
		Debug: log.New(debugw, "", 0),
		Texts: feed.TextFile(opts.Text),
		Notes: feed.DurchenFile(opts.Notes),
		Out:   out,
	}
	if !opts.Whole {
		runner.Segments = segmentSources(opts)
	}

	return errtrace.Wrap(runner.Run())
}

// segmentSources selects the segment source for the run,
// or nil if neither a segmentation file nor inline segments were given.
func segmentSources(opts *params) SegmentSource {
	if opts.Segmentation == "" && len(opts.Segments) == 0 {
		return nil
	}
	return &segmentList{
		File:   feed.SegmentationFile(opts.Segmentation),
		Inline: slices.Transform(opts.Segments, segmentFlag.segment),
	}
}

// segmentList is a SegmentSource
// merging file-fed segments with inline -segment flags.
// Inline segments always follow the file's.
type segmentList struct {
	File   feed.SegmentationFile // empty if no file was given
	Inline []durchen.Segment
}

var _ SegmentSource = (*segmentList)(nil)

func (l *segmentList) Segments() ([]durchen.Segment, error) {
	var segs []durchen.Segment
	if l.File != "" {
		var err error
		segs, err = l.File.Segments()
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return append(segs, l.Inline...), nil
}
