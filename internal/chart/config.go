package chart

import (
	"errors"
	"fmt"

	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/scale"
)

// Outer chart size before margins are taken off
const (
	OuterWidth  = 500
	OuterHeight = 300
)

// Axis rendering constants
const (
	TickSizeInner    = 6
	TickPadding      = 3
	SecondaryAxisGap = 40
)

// Tooltip placement relative to the pointer
const (
	TooltipOffsetX = 5
	TooltipOffsetY = -28
)

// HitTolerance is how far, in pixels, the pointer may be from a line's
// centre before it stops counting as over the line
const HitTolerance = 4

// Interval is a closed numeric interval
type Interval struct {
	Min float64
	Max float64
}

// Config holds every constant the chart is built from
type Config struct {
	Width            float64
	Height           float64
	Margin           model.Margin
	SecondaryAxisGap float64

	XDomain  Interval
	YDomain  Interval
	X2Domain Interval

	MajorX     model.TickSet
	MajorY     model.TickSet
	MinorX     model.TickSet
	MinorY     model.TickSet
	SecondaryX model.TickSet

	// Dataset is in data space and drawn through the X/Y scales
	Dataset model.Dataset
	// Guide has literal pixel endpoints in plot space
	Guide model.Segment
}

// DefaultConfig returns the fixed demonstration chart
func DefaultConfig() Config {
	margin := model.Margin{Top: 20, Right: 30, Bottom: 30, Left: 50}
	return Config{
		Width:            OuterWidth - margin.Horizontal(),
		Height:           OuterHeight - margin.Vertical(),
		Margin:           margin,
		SecondaryAxisGap: SecondaryAxisGap,

		XDomain:  Interval{Min: 0, Max: 500},
		YDomain:  Interval{Min: 0, Max: 300},
		X2Domain: Interval{Min: 0, Max: 50},

		MajorX: model.NewTickSet(0, 100, 200, 300, 400, 500),
		MajorY: model.NewTickSet(0, 100, 200, 300),
		MinorX: model.NewTickSet(20, 40, 60, 80, 120, 140, 160, 180, 220, 240, 260, 280,
			320, 340, 360, 380, 420, 440, 460, 480),
		MinorY:     model.NewTickSet(20, 40, 60, 80, 120, 140, 160, 180, 220, 240, 260, 280),
		SecondaryX: model.NewTickSet(0, 10, 20, 30, 40, 50),

		Dataset: model.NewDataset(model.Pt(50, 50), model.Pt(400, 200)),
		Guide:   model.Segment{From: model.Pt(50, 30), To: model.Pt(400, 180)},
	}
}

// Scales bundles the three independent linear scales of the chart
type Scales struct {
	X  scale.Linear
	Y  scale.Linear
	X2 scale.Linear
}

// Validate checks sizes, domains and that minor ticks avoid major ones
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("plot size %gx%g: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		return fmt.Errorf("negative margin %+v: %w", c.Margin, ErrInvalidConfig)
	}
	if c.SecondaryAxisGap < 0 {
		return fmt.Errorf("negative secondary axis gap: %w", ErrInvalidConfig)
	}
	if _, err := c.scales(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	// Minor lines fill the gaps between major lines
	if err := disjoint("x", c.MinorX, c.MajorX); err != nil {
		return err
	}
	return disjoint("y", c.MinorY, c.MajorY)
}

func disjoint(axis string, minor, major model.TickSet) error {
	for _, v := range minor.Values() {
		if major.Contains(v) {
			return fmt.Errorf("minor %s tick %g is also a major tick: %w", axis, v, ErrInvalidConfig)
		}
	}
	return nil
}

// OuterSize returns the drawing surface size: plot plus margins plus the
// extra row taken by the secondary axis
func (c Config) OuterSize() (width, height float64) {
	return c.Width + c.Margin.Horizontal(), c.Height + c.Margin.Vertical() + c.SecondaryAxisGap
}

// Scales returns the chart scales. The Y range is flipped because pixel Y
// grows downward. Config must be valid.
func (c Config) Scales() Scales {
	s, err := c.scales()
	if err != nil {
		panic(err)
	}
	return s
}

func (c Config) scales() (Scales, error) {
	x, err := scale.NewLinear(c.XDomain.Min, c.XDomain.Max, 0, c.Width)
	if err != nil {
		return Scales{}, fmt.Errorf("x scale: %w", err)
	}
	y, err := scale.NewLinear(c.YDomain.Min, c.YDomain.Max, c.Height, 0)
	if err != nil {
		return Scales{}, fmt.Errorf("y scale: %w", err)
	}
	x2, err := scale.NewLinear(c.X2Domain.Min, c.X2Domain.Max, 0, c.Width)
	if err != nil {
		return Scales{}, fmt.Errorf("secondary x scale: %w", err)
	}
	return Scales{X: x, Y: y, X2: x2}, nil
}
