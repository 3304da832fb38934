package chart

import (
	"fmt"
	"math"

	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/scale"
)

// TooltipFormat renders the rounded data coordinates under the pointer
const TooltipFormat = "X: %d, Y: %d"

// Tooltip is the state of the floating overlay
type Tooltip struct {
	Opacity float64
	Text    string
	// Position is the overlay's top-left corner in host coordinates
	Position model.Point
}

// Visible reports whether the overlay should be drawn
func (t Tooltip) Visible() bool {
	return t.Opacity > 0
}

type target struct {
	element *Element
	segment model.Segment // surface coordinates
	reach   float64
}

// Tracker binds the tooltip to the scene's line segments. It receives raw
// pointer positions and turns them into enter, move and leave transitions.
// Events arrive serially from the UI event loop so no locking is done.
type Tracker struct {
	scene    *Scene
	targets  []target
	active   *Element
	tooltip  Tooltip
	onChange func(Tooltip)
}

// NewTracker binds every element with class "line" in scene
func NewTracker(scene *Scene) *Tracker {
	t := &Tracker{scene: scene}
	for _, e := range scene.SelectAll(ClassLine) {
		if e.Kind != KindLine {
			continue
		}
		offset, _ := scene.Absolute(e)
		seg := e.Segment()
		t.targets = append(t.targets, target{
			element: e,
			segment: model.Segment{From: seg.From.Add(offset), To: seg.To.Add(offset)},
			reach:   math.Max(HitTolerance, e.Inline.StrokeWidth/2),
		})
	}
	return t
}

// OnChange registers fn to be called after every tooltip state change
func (t *Tracker) OnChange(fn func(Tooltip)) {
	t.onChange = fn
}

// Tooltip returns the current overlay state
func (t *Tracker) Tooltip() Tooltip {
	return t.tooltip
}

// Targets returns how many line segments are bound
func (t *Tracker) Targets() int {
	return len(t.targets)
}

// Move handles a pointer position. local is relative to the drawing surface,
// page is relative to the host and only positions the overlay.
func (t *Tracker) Move(local, page model.Point) {
	hit := t.hitTest(local)
	if hit != t.active {
		if t.active != nil {
			t.leave()
		}
		if hit != nil {
			t.enter(hit)
		}
	}
	if hit != nil {
		t.move(local, page)
	}
}

// Exit handles the pointer leaving the drawing surface
func (t *Tracker) Exit() {
	if t.active != nil {
		t.leave()
	}
}

// DataAt converts a surface position to rounded data coordinates by removing
// the margin offset and inverting both scales. The Y scale's flipped range
// takes care of pixel Y growing downward.
func (t *Tracker) DataAt(local model.Point) (x, y int) {
	sc := t.scene.Scales
	m := t.scene.Margin
	x = int(scale.Round(sc.X.Invert(local.X - m.Left)))
	y = int(scale.Round(sc.Y.Invert(local.Y - m.Top)))
	return x, y
}

func (t *Tracker) enter(e *Element) {
	t.active = e
	t.tooltip.Opacity = 1
	t.notify()
}

func (t *Tracker) move(local, page model.Point) {
	x, y := t.DataAt(local)
	t.tooltip.Text = fmt.Sprintf(TooltipFormat, x, y)
	t.tooltip.Position = page.Add(model.Pt(TooltipOffsetX, TooltipOffsetY))
	t.notify()
}

func (t *Tracker) leave() {
	t.active = nil
	t.tooltip.Opacity = 0
	t.notify()
}

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange(t.tooltip)
	}
}

// hitTest returns the closest line within reach of p
func (t *Tracker) hitTest(p model.Point) *Element {
	var (
		best     *Element
		bestDist = math.Inf(1)
	)
	for _, tg := range t.targets {
		d := tg.segment.DistanceTo(p)
		if d <= tg.reach && d < bestDist {
			best = tg.element
			bestDist = d
		}
	}
	return best
}
