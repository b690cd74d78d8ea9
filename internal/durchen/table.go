package durchen

import (
	"fmt"
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// _markerFormat is the rendered shape of a single marker:
// an empty superscript element followed by the note body in italics.
// The note is inserted verbatim.
// Callers that need HTML-safe output must sanitize notes upstream.
const _markerFormat = `<sup class="footnote-marker"></sup><i class="footnote">%s</i>`

func markerText(note string) string {
	return fmt.Sprintf(_markerFormat, note)
}

// marker is one rendered note pinned to an offset in the original text.
type marker struct {
	text   string
	offset int
}

// MarkerTable maps each annotation to the offset in the original text
// where its marker renders, ordered ascending by offset.
//
// A table never changes after construction.
// It is safe for concurrent use by any number of extractions.
type MarkerTable struct {
	markers []marker
}

// BuildMarkerTable derives a marker table from the given annotations.
//
// Each annotation anchors at its Span.End.
// Annotations sharing an anchor keep their input order,
// so two notes ending at the same offset
// always render in a fixed, reproducible sequence.
func BuildMarkerTable(anns []Annotation) MarkerTable {
	markers := make([]marker, len(anns))
	for i, ann := range anns {
		markers[i] = marker{
			text:   markerText(ann.Note),
			offset: ann.Span.End,
		}
	}
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].offset < markers[j].offset
	})
	return MarkerTable{markers: markers}
}

// Len reports the number of markers in the table,
// which always equals the number of annotations it was built from.
func (t MarkerTable) Len() int { return len(t.markers) }

// Extract renders the segment text[start:end]
// with the markers anchored strictly inside it spliced in
// at their positions relative to start.
//
// A marker anchored exactly at start is excluded:
// it belongs to whatever segment ends there.
// A marker anchored exactly at end is included:
// it closes content that ends at that boundary.
func (t MarkerTable) Extract(text string, start, end int) (string, error) {
	if start < 0 || start > end || end > len(text) {
		return "", errtrace.Errorf(
			"segment [%d:%d]: outside text of length %d", start, end, len(text))
	}

	segment := text[start:end]

	// First marker past the start boundary.
	lo := sort.Search(len(t.markers), func(i int) bool {
		return t.markers[i].offset > start
	})
	if lo == len(t.markers) || t.markers[lo].offset > end {
		return segment, nil
	}

	// Markers are zero-width relative to the segment:
	// emitting one never consumes original characters,
	// so same-offset markers stack in table order.
	var sb strings.Builder
	pos := 0
	for _, m := range t.markers[lo:] {
		if m.offset > end {
			break
		}
		rel := m.offset - start
		if rel > pos {
			sb.WriteString(segment[pos:rel])
			pos = rel
		}
		sb.WriteString(m.text)
	}
	sb.WriteString(segment[pos:])
	return sb.String(), nil
}
