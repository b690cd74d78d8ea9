package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"braces.dev/errtrace"

	"github.com/OpenPecha/durchen-content-annotation/internal/durchen"
	"github.com/OpenPecha/durchen-content-annotation/internal/feed"
)

// TextSource provides the base text.
type TextSource interface {
	Text() (string, error)
}

var _ TextSource = feed.TextFile("")

// AnnotationSource provides the durchen annotations.
type AnnotationSource interface {
	Annotations() ([]durchen.Annotation, error)
}

var _ AnnotationSource = feed.DurchenFile("")

// SegmentSource provides the segment boundaries.
type SegmentSource interface {
	Segments() ([]durchen.Segment, error)
}

var _ SegmentSource = feed.SegmentationFile("")

// Runner drives one annotation pass:
// load the feeds, render, write the result.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Debug *log.Logger

	Texts TextSource
	Notes AnnotationSource

	// Segments is optional.
	// If nil, the whole annotated text is rendered
	// instead of per-segment output.
	Segments SegmentSource

	Out io.Writer
}

// Run executes the pass.
func (r *Runner) Run() error {
	debug := r.Debug
	if debug == nil {
		debug = log.New(io.Discard, "", 0)
	}

	text, err := r.Texts.Text()
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("load text: %w", err))
	}

	anns, err := r.Notes.Annotations()
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("load annotations: %w", err))
	}
	debug.Printf("loaded %d annotations over %d bytes of text", len(anns), len(text))

	if r.Segments == nil {
		return errtrace.Wrap(r.renderWhole(text, anns))
	}
	return errtrace.Wrap(r.renderSegments(debug, text, anns))
}

func (r *Runner) renderWhole(text string, anns []durchen.Annotation) error {
	annotated, err := durchen.Annotate(text, anns)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if _, err := io.WriteString(r.Out, annotated); err != nil {
		return errtrace.Wrap(err)
	}
	_, err = io.WriteString(r.Out, "\n")
	return errtrace.Wrap(err)
}

func (r *Runner) renderSegments(debug *log.Logger, text string, anns []durchen.Annotation) error {
	segs, err := r.Segments.Segments()
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("load segments: %w", err))
	}
	debug.Printf("rendering %d segments", len(segs))

	rendered, err := durchen.ExtractAll(text, segs, anns)
	if err != nil {
		return errtrace.Wrap(err)
	}

	// Markers are raw HTML.
	// Escaping would mangle them for downstream consumers.
	enc := json.NewEncoder(r.Out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(rendered))
}
