package chart

import (
	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/style"
)

// Kind is the type of a scene element
type Kind int

const (
	KindGroup Kind = iota
	KindLine
	KindText
)

// String returns the element name used in logs
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "g"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Anchor is the horizontal alignment of a text element around its X
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Element is one node of the scene tree. Coordinates are local to the
// parent group; groups translate their children by Translate.
type Element struct {
	Kind    Kind
	Classes []string

	// KindGroup
	Translate model.Point
	Children  []*Element

	// KindLine
	X1, Y1, X2, Y2 float64

	// KindText: X, Y is the anchor point, DY a baseline shift in em
	X, Y   float64
	DY     float64
	Text   string
	Anchor Anchor

	// Inline attributes override stylesheet rules
	Inline style.Style
}

// HasClass reports whether the element carries class
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Append adds children to a group and returns it
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Segment returns the endpoints of a line element in its local space
func (e *Element) Segment() model.Segment {
	return model.Segment{From: model.Pt(e.X1, e.Y1), To: model.Pt(e.X2, e.Y2)}
}

// Scene is a fully built chart
type Scene struct {
	Width  float64
	Height float64
	Margin model.Margin
	Scales Scales
	Root   *Element
}

// Walk visits every element in document order with the absolute offset of
// its parent group in surface coordinates
func (s *Scene) Walk(fn func(e *Element, offset model.Point)) {
	s.Cascade(func(e *Element, offset model.Point, _ []string) {
		fn(e, offset)
	})
}

// Cascade is Walk that also passes the classes a stylesheet sees for e: the
// classes of every enclosing group, outermost first, then e's own. A rule for
// a group class therefore styles the lines and labels inside that group.
// The slice is fresh for every call.
func (s *Scene) Cascade(fn func(e *Element, offset model.Point, classes []string)) {
	cascade(s.Root, model.Point{}, nil, fn)
}

func cascade(e *Element, offset model.Point, inherited []string, fn func(*Element, model.Point, []string)) {
	classes := make([]string, 0, len(inherited)+len(e.Classes))
	classes = append(append(classes, inherited...), e.Classes...)
	fn(e, offset, classes)
	if e.Kind != KindGroup {
		return
	}
	inner := offset.Add(e.Translate)
	for _, child := range e.Children {
		cascade(child, inner, classes, fn)
	}
}

// SelectAll returns every element carrying class, in document order
func (s *Scene) SelectAll(class string) []*Element {
	var out []*Element
	s.Walk(func(e *Element, _ model.Point) {
		if e.HasClass(class) {
			out = append(out, e)
		}
	})
	return out
}

// Absolute returns the surface-space offset of the group containing e
func (s *Scene) Absolute(target *Element) (model.Point, bool) {
	var (
		found  bool
		result model.Point
	)
	s.Walk(func(e *Element, offset model.Point) {
		if !found && e == target {
			found = true
			result = offset
		}
	})
	return result, found
}
