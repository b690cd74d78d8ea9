// Package feed loads annotation corpus data from disk.
//
// The text feed is a plain UTF-8 file.
// The durchen and segmentation feeds are JSON files
// carrying their records under a top-level "data" key:
//
//	{"data": [{"span": {"start": 0, "end": 10}, "note": "..."}]}
//	{"data": [{"id": "seg1", "span": {"start": 0, "end": 20}}]}
//
// A record missing a required field aborts the load;
// bad records are never silently skipped.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"braces.dev/errtrace"
	"github.com/OpenPecha/durchen-content-annotation/internal/durchen"
)

// TextFile reads the base text from a file.
type TextFile string

// Text returns the file's contents as the base text.
func (f TextFile) Text() (string, error) {
	bs, err := os.ReadFile(string(f))
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(bs), nil
}

// DurchenFile reads durchen annotations from a JSON feed.
type DurchenFile string

// Annotations decodes and validates the annotation records.
func (f DurchenFile) Annotations() ([]durchen.Annotation, error) {
	var raws []rawAnnotation
	if err := readData(string(f), &raws); err != nil {
		return nil, errtrace.Wrap(err)
	}

	anns := make([]durchen.Annotation, len(raws))
	for i, raw := range raws {
		span, err := raw.Span.toSpan()
		if err == nil && raw.Note == nil {
			err = errors.New("missing note")
		}
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%s: annotation %d: %w", f, i, err))
		}
		anns[i] = durchen.Annotation{Span: span, Note: *raw.Note}
	}
	return anns, nil
}

// SegmentationFile reads segment boundaries from a JSON feed.
type SegmentationFile string

// Segments decodes and validates the segment records.
func (f SegmentationFile) Segments() ([]durchen.Segment, error) {
	var raws []rawSegment
	if err := readData(string(f), &raws); err != nil {
		return nil, errtrace.Wrap(err)
	}

	segs := make([]durchen.Segment, len(raws))
	for i, raw := range raws {
		span, err := raw.Span.toSpan()
		if err == nil && raw.ID == nil {
			err = errors.New("missing id")
		}
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%s: segment %d: %w", f, i, err))
		}
		segs[i] = durchen.Segment{ID: *raw.ID, Span: span}
	}
	return segs, nil
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func readData(path string, records any) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var env envelope
	if err := json.Unmarshal(bs, &env); err != nil {
		return errtrace.Wrap(fmt.Errorf("%s: %w", path, err))
	}
	if env.Data == nil {
		return errtrace.Errorf(`%s: missing "data" key`, path)
	}

	return errtrace.Wrap(json.Unmarshal(env.Data, records))
}

// Raw records use pointer fields
// so that absent and zero-valued fields are distinguishable.

type rawSpan struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

func (s *rawSpan) toSpan() (durchen.Span, error) {
	switch {
	case s == nil:
		return durchen.Span{}, errors.New("missing span")
	case s.Start == nil:
		return durchen.Span{}, errors.New("missing span.start")
	case s.End == nil:
		return durchen.Span{}, errors.New("missing span.end")
	}
	return durchen.Span{Start: *s.Start, End: *s.End}, nil
}

type rawAnnotation struct {
	Span *rawSpan `json:"span"`
	Note *string  `json:"note"`
}

type rawSegment struct {
	ID   *string  `json:"id"`
	Span *rawSpan `json:"span"`
}
