package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/style"
)

// Surface is the drawing surface of the chart. It mirrors a scene as Fyne
// canvas objects and forwards pointer events to a tracker.
type Surface struct {
	widget.BaseWidget

	scene   *chart.Scene
	sheet   *style.Sheet
	tracker *chart.Tracker

	root    *fyne.Container
	objects map[*chart.Element]fyne.CanvasObject
}

var _ desktop.Hoverable = (*Surface)(nil)

// NewSurface mirrors scene using sheet for presentation
func NewSurface(scene *chart.Scene, sheet *style.Sheet, tracker *chart.Tracker) *Surface {
	s := &Surface{
		scene:   scene,
		sheet:   sheet,
		tracker: tracker,
		objects: make(map[*chart.Element]fyne.CanvasObject),
	}
	s.root = s.mirror(scene.Root, nil).(*fyne.Container)
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	// Background fills the whole surface; the root group keeps its margin offset.
	bg := canvas.NewRectangle(s.sheet.Resolve([]string{chart.ClassBackground}, style.Style{}).FillNRGBA())
	bg.Resize(s.MinSize())
	return widget.NewSimpleRenderer(container.NewWithoutLayout(bg, s.root))
}

// MinSize is the fixed outer size of the scene
func (s *Surface) MinSize() fyne.Size {
	return fyne.NewSize(float32(s.scene.Width), float32(s.scene.Height))
}

// Root returns the container mirroring the scene's root group
func (s *Surface) Root() *fyne.Container {
	return s.root
}

// Object returns the canvas object created for e
func (s *Surface) Object(e *chart.Element) fyne.CanvasObject {
	return s.objects[e]
}

// MouseIn implements desktop.Hoverable
func (s *Surface) MouseIn(ev *desktop.MouseEvent) {
	s.pointer(ev.Position)
}

// MouseMoved implements desktop.Hoverable
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	s.pointer(ev.Position)
}

// MouseOut implements desktop.Hoverable
func (s *Surface) MouseOut() {
	s.tracker.Exit()
}

func (s *Surface) pointer(pos fyne.Position) {
	page := s.Position().Add(pos)
	s.tracker.Move(model.Pt(float64(pos.X), float64(pos.Y)), model.Pt(float64(page.X), float64(page.Y)))
}

// mirror creates the canvas object for e. inherited holds the classes of the
// enclosing groups, which style e before its own classes do.
func (s *Surface) mirror(e *chart.Element, inherited []string) fyne.CanvasObject {
	classes := make([]string, 0, len(inherited)+len(e.Classes))
	classes = append(append(classes, inherited...), e.Classes...)
	st := s.sheet.Resolve(classes, e.Inline)

	var obj fyne.CanvasObject
	switch e.Kind {
	case chart.KindGroup:
		c := container.NewWithoutLayout()
		for _, child := range e.Children {
			c.Add(s.mirror(child, classes))
		}
		c.Move(toPosition(e.Translate))
		c.Resize(s.MinSize())
		obj = c
	case chart.KindLine:
		l := canvas.NewLine(st.StrokeNRGBA())
		l.StrokeWidth = float32(st.StrokeWidth)
		l.Position1 = fyne.NewPos(float32(e.X1), float32(e.Y1))
		l.Position2 = fyne.NewPos(float32(e.X2), float32(e.Y2))
		obj = l
	case chart.KindText:
		obj = mirrorLabel(e, st)
	}
	s.objects[e] = obj
	return obj
}

// mirrorLabel places a text so that its anchor point and dy baseline shift match
// the scene, given that canvas.Text is positioned by its top-left corner.
func mirrorLabel(e *chart.Element, st style.Style) *canvas.Text {
	t := canvas.NewText(e.Text, st.TextNRGBA())
	t.TextSize = float32(st.FontSize)
	size := t.MinSize()

	x := float32(e.X)
	switch e.Anchor {
	case chart.AnchorMiddle:
		x -= size.Width / 2
	case chart.AnchorEnd:
		x -= size.Width
	}
	baseline := e.Y + e.DY*st.FontSize
	y := float32(baseline - TextAscent*st.FontSize)

	t.Move(fyne.NewPos(x, y))
	t.Resize(size)
	return t
}

func toPosition(p model.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}
