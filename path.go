package kova

import (
	"fmt"
	"strings"
)

// SegmentKind identifies the structural role of a single Path segment.
type SegmentKind int

const (
	// PropertySegment addresses a named property of an object.
	PropertySegment SegmentKind = iota
	// IndexSegment addresses one element of an ordered collection.
	IndexSegment
	// MapKeySegment addresses a key of a map entry.
	MapKeySegment
	// MapValueSegment addresses the value of a map entry.
	MapValueSegment
	// NamedSegment addresses an arbitrary labelled accessor.
	NamedSegment
)

// Segment is one step in the structural location of a value within the
// object graph being validated.
type Segment struct {
	Kind SegmentKind
	// Name holds the property name, the named label, or the rendered map key
	// depending on Kind.
	Name string
	// Index holds the element position for IndexSegment.
	Index int
}

// String renders the segment the way it appears inside Path.FullName.
func (s Segment) String() string {
	switch s.Kind {
	case PropertySegment, NamedSegment:
		return s.Name
	case IndexSegment:
		return fmt.Sprintf("[%d]<iterable element>", s.Index)
	case MapKeySegment:
		return fmt.Sprintf("[%s]<map key>", s.Name)
	case MapValueSegment:
		return fmt.Sprintf("[%s]<map value>", s.Name)
	default:
		return ""
	}
}

// PropertySeg returns a property segment for the given name.
func PropertySeg(name string) Segment { return Segment{Kind: PropertySegment, Name: name} }

// Index returns an index segment for the given element position.
func Index(i int) Segment { return Segment{Kind: IndexSegment, Index: i} }

// MapKey returns a map-key segment for the rendered key.
func MapKey(key string) Segment { return Segment{Kind: MapKeySegment, Name: key} }

// MapValue returns a map-value segment for the rendered key.
func MapValue(key string) Segment { return Segment{Kind: MapValueSegment, Name: key} }

// Named returns a segment for an arbitrary labelled accessor.
func Named(label string) Segment { return Segment{Kind: NamedSegment, Name: label} }

// Path is an immutable location descriptor: the ordered list of segments
// leading from the validation root to the value a Message refers to.
//
// The validation context mutates its own segment stack while descending into
// the object graph; a Path captured in a Message is always a snapshot taken
// at the moment the constraint failed.
type Path struct {
	segments []Segment
}

// NewPath builds a Path from the given segments.
func NewPath(segments ...Segment) Path {
	if len(segments) == 0 {
		return Path{}
	}
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return Path{segments: cp}
}

// IsRoot reports whether the path has no segments, i.e. it refers to the
// value passed to the top-level validation call itself.
func (p Path) IsRoot() bool { return len(p.segments) == 0 }

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	if len(p.segments) == 0 {
		return nil
	}
	cp := make([]Segment, len(p.segments))
	copy(cp, p.segments)
	return cp
}

// Child returns a new Path with the segment appended. The receiver is left
// untouched.
func (p Path) Child(s Segment) Path {
	cp := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(cp, p.segments)
	return Path{segments: append(cp, s)}
}

// FullName renders the dotted/bracketed display form of the path, e.g.
// "address.street.name", "list[1]<iterable element>" or "[b]<map value>".
func (p Path) FullName() string {
	var b strings.Builder
	for i, s := range p.segments {
		switch s.Kind {
		case PropertySegment, NamedSegment:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.Name)
		default:
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p Path) String() string { return p.FullName() }
