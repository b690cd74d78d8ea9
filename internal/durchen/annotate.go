package durchen

import (
	"fmt"

	"braces.dev/errtrace"
)

// Annotate renders the whole text with every marker inserted,
// each immediately before the character originally at its anchor offset.
//
// Markers are spliced in descending anchor order:
// an insertion lengthens the string
// but leaves every lower offset untouched,
// so each remaining offset stays valid against the partially built result.
// Ascending insertion into a live buffer would shift them.
func Annotate(text string, anns []Annotation) (string, error) {
	table := BuildMarkerTable(anns)
	for _, m := range table.markers {
		if m.offset < 0 || m.offset > len(text) {
			return "", errtrace.Errorf(
				"marker offset %d: outside text of length %d", m.offset, len(text))
		}
	}

	annotated := text
	for i := len(table.markers) - 1; i >= 0; i-- {
		m := table.markers[i]
		annotated = annotated[:m.offset] + m.text + annotated[m.offset:]
	}
	return annotated, nil
}

// ExtractAll renders every segment against a single marker table
// built once from the annotations.
//
// Output order matches segment order, one rendered segment per input.
// The first out-of-range segment fails the whole batch;
// no partial output is returned.
func ExtractAll(text string, segs []Segment, anns []Annotation) ([]RenderedSegment, error) {
	table := BuildMarkerTable(anns)
	rendered := make([]RenderedSegment, len(segs))
	for i, seg := range segs {
		content, err := table.Extract(text, seg.Span.Start, seg.Span.End)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("segment %q: %w", seg.ID, err))
		}
		rendered[i] = RenderedSegment{
			ID:      seg.ID,
			Span:    seg.Span,
			Content: content,
		}
	}
	return rendered, nil
}
