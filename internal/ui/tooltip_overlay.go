package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/style"
)

// TooltipOverlay is the floating box that shows the data coordinates under
// the pointer. It is hidden while its opacity is zero.
type TooltipOverlay struct {
	widget.BaseWidget

	background *canvas.Rectangle
	label      *canvas.Text
	state      chart.Tooltip
}

// NewTooltipOverlay creates a hidden overlay styled by the "tooltip" rule
func NewTooltipOverlay(sheet *style.Sheet) *TooltipOverlay {
	st := sheet.Resolve([]string{chart.ClassTooltip}, style.Style{})

	bg := canvas.NewRectangle(st.FillNRGBA())
	bg.StrokeColor = st.StrokeNRGBA()
	bg.StrokeWidth = TooltipStrokeSize
	bg.CornerRadius = TooltipCorner

	label := canvas.NewText("", st.TextNRGBA())
	label.TextSize = float32(st.FontSize)

	t := &TooltipOverlay{background: bg, label: label}
	t.ExtendBaseWidget(t)
	t.Hide()
	return t
}

// CreateRenderer implements fyne.Widget
func (t *TooltipOverlay) CreateRenderer() fyne.WidgetRenderer {
	pad := layout.NewCustomPaddedLayout(TooltipPadding, TooltipPadding, TooltipPadding, TooltipPadding)
	return widget.NewSimpleRenderer(container.NewStack(t.background, container.New(pad, t.label)))
}

// Apply shows tip. It is the tracker's change callback.
func (t *TooltipOverlay) Apply(tip chart.Tooltip) {
	t.state = tip
	t.label.Text = tip.Text

	if !tip.Visible() {
		t.Hide()
		return
	}
	t.Move(toPosition(tip.Position))
	t.Resize(t.MinSize())
	t.Show()
	t.Refresh()
}

// Opacity returns the current opacity, 0 or 1
func (t *TooltipOverlay) Opacity() float64 {
	return t.state.Opacity
}

// Text returns the current readout
func (t *TooltipOverlay) Text() string {
	return t.state.Text
}
