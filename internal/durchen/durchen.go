// Package durchen annotates text with positional footnote markers
// and re-extracts sub-segments of that text
// with the markers that belong to them.
//
// All offsets are byte offsets into the original, unannotated text.
// Inputs produced by tools that count code points
// must be converted before they reach this package.
package durchen

// Span is a half-open region of the original text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Annotation is a single durchen note attached to a span of the text.
//
// Only Span.End is used to place the note's marker;
// Span.Start is carried through as part of the record
// but does not affect rendering.
type Annotation struct {
	Span Span   `json:"span"`
	Note string `json:"note"`
}

// Segment identifies a region of the text to extract.
//
// Segments may overlap, nest, or leave gaps between each other.
type Segment struct {
	ID   string `json:"id"`
	Span Span   `json:"span"`
}

// RenderedSegment is a segment's content
// with the markers anchored inside it spliced in.
type RenderedSegment struct {
	ID      string `json:"id"`
	Span    Span   `json:"span"`
	Content string `json:"content"`
}
