package chart

import (
	"fmt"
	"math"

	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/scale"
	"github.com/ytget/graphdemo/internal/style"
)

// Class names shared with the stylesheet
const (
	ClassGrid          = "grid"
	ClassXMinorGrid    = "x-minor-grid"
	ClassYMinorGrid    = "y-minor-grid"
	ClassAxis          = "axis"
	ClassAxisBottom    = "axis-bottom"
	ClassAxisSecondary = "axis-secondary"
	ClassAxisLeft      = "axis-left"
	ClassDomain        = "domain"
	ClassTick          = "tick"
	ClassLine          = "line"
	ClassGuide         = "guide"
	ClassTooltip       = "tooltip"
	ClassBackground    = "background"
)

// baseline shifts applied to tick labels, in em
const (
	bottomLabelDY = 0.71
	leftLabelDY   = 0.32
)

var (
	minorGridStyle = style.Style{
		Stroke:        style.MustParseColor("gray"),
		StrokeOpacity: 0.5,
	}
	segmentStyle = style.Style{
		Stroke:      style.MustParseColor("red"),
		StrokeWidth: 3,
	}
)

type orientation int

const (
	orientBottom orientation = iota
	orientLeft
)

// Build constructs the complete static chart from cfg
func Build(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := cfg.Scales()
	w, h := cfg.OuterSize()
	root := group(nil, cfg.Margin.Origin())

	// Major grid: axes with full-length ticks and no labels. They keep their
	// domain line like any other axis; it lies under the real axes' domains.
	root.Append(
		axis([]string{ClassGrid}, orientBottom, sc.X, cfg.MajorX, -cfg.Height, nil).
			at(model.Pt(0, cfg.Height)),
		axis([]string{ClassGrid}, orientLeft, sc.Y, cfg.MajorY, -cfg.Width, nil),
	)

	// Minor grid
	for _, v := range cfg.MinorX.Values() {
		x := sc.X.Map(v)
		root.Append(line([]string{ClassXMinorGrid}, x, 0, x, cfg.Height, minorGridStyle))
	}
	for _, v := range cfg.MinorY.Values() {
		y := sc.Y.Map(v)
		root.Append(line([]string{ClassYMinorGrid}, 0, y, cfg.Width, y, minorGridStyle))
	}

	// Axes
	root.Append(
		axis([]string{ClassAxis, ClassAxisBottom}, orientBottom, sc.X, cfg.MajorX, TickSizeInner, scale.FormatInteger).
			at(model.Pt(0, cfg.Height)),
		axis([]string{ClassAxis, ClassAxisSecondary}, orientBottom, sc.X2, cfg.SecondaryX, TickSizeInner, scale.FormatInteger).
			at(model.Pt(0, cfg.Height+cfg.SecondaryAxisGap)),
		axis([]string{ClassAxis, ClassAxisLeft}, orientLeft, sc.Y, cfg.MajorY, TickSizeInner, scale.FormatInteger),
	)

	// Segments: the dataset goes through the scales, the guide is literal
	start, end := cfg.Dataset.Start(), cfg.Dataset.End()
	root.Append(
		line([]string{ClassLine}, sc.X.Map(start.X), sc.Y.Map(start.Y), sc.X.Map(end.X), sc.Y.Map(end.Y), segmentStyle),
		line([]string{ClassLine, ClassGuide}, cfg.Guide.From.X, cfg.Guide.From.Y, cfg.Guide.To.X, cfg.Guide.To.Y, segmentStyle),
	)

	return &Scene{
		Width:  w,
		Height: h,
		Margin: cfg.Margin,
		Scales: sc,
		Root:   root,
	}, nil
}

// MustBuild is like Build but panics on an invalid config
func MustBuild(cfg Config) *Scene {
	s, err := Build(cfg)
	if err != nil {
		panic(fmt.Sprintf("chart: %v", err))
	}
	return s
}

func group(classes []string, translate model.Point) *Element {
	return &Element{Kind: KindGroup, Classes: classes, Translate: translate}
}

func (e *Element) at(p model.Point) *Element {
	e.Translate = p
	return e
}

func line(classes []string, x1, y1, x2, y2 float64, inline style.Style) *Element {
	return &Element{
		Kind:    KindLine,
		Classes: classes,
		X1:      x1,
		Y1:      y1,
		X2:      x2,
		Y2:      y2,
		Inline:  inline,
	}
}

// axis builds a group with a domain line and one tick group per value.
// Negative tickSize draws ticks into the plot, which is how the grid
// is made. label == nil leaves ticks unlabeled.
func axis(classes []string, o orientation, s scale.Linear, ticks model.TickSet, tickSize float64, label func(float64) string) *Element {
	g := group(classes, model.Point{})

	if o == orientBottom {
		g.Append(line([]string{ClassDomain}, s.RangeMin, 0, s.RangeMax, 0, style.Style{}))
	} else {
		g.Append(line([]string{ClassDomain}, 0, s.RangeMin, 0, s.RangeMax, style.Style{}))
	}

	spacing := math.Max(tickSize, 0) + TickPadding
	for _, v := range ticks.Values() {
		pos := s.Map(v)
		var tick *Element
		if o == orientBottom {
			tick = group([]string{ClassTick}, model.Pt(pos, 0))
			tick.Append(line(nil, 0, 0, 0, tickSize, style.Style{}))
			if label != nil {
				tick.Append(&Element{Kind: KindText, Y: spacing, DY: bottomLabelDY, Text: label(v), Anchor: AnchorMiddle})
			}
		} else {
			tick = group([]string{ClassTick}, model.Pt(0, pos))
			tick.Append(line(nil, 0, 0, -tickSize, 0, style.Style{}))
			if label != nil {
				tick.Append(&Element{Kind: KindText, X: -spacing, DY: leftLabelDY, Text: label(v), Anchor: AnchorEnd})
			}
		}
		g.Append(tick)
	}
	return g
}
