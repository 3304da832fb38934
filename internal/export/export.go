// Package export draws a chart scene to SVG or PNG through go-chart's
// renderers.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/model"
	"github.com/ytget/graphdemo/internal/platform"
	"github.com/ytget/graphdemo/internal/style"
)

// Format is an output file format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// RenderDPI makes one font point one pixel
const RenderDPI = 72

// ErrUnknownFormat is returned for unsupported formats
var ErrUnknownFormat = errors.New("unknown export format")

// Formats returns the supported formats
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG}
}

// ParseFormat parses a format name, case-insensitively, with or without a dot
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(filepath.Ext(path))
	return f, err == nil
}

// Ext returns the file extension including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) provider() (gochart.RendererProvider, error) {
	switch f {
	case FormatSVG:
		return gochart.SVG, nil
	case FormatPNG:
		return gochart.PNG, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

// Render draws scene styled by sheet and writes it to w
func Render(w io.Writer, scene *chart.Scene, sheet *style.Sheet, f Format) error {
	provider, err := f.provider()
	if err != nil {
		return err
	}

	r, err := provider(px(scene.Width), px(scene.Height))
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", f, err)
	}
	r.SetDPI(RenderDPI)

	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load default font: %w", err)
	}

	d := &drawer{r: r, font: font, sheet: sheet}
	d.background(scene)
	scene.Cascade(d.element)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

// WriteFile renders scene into path, creating the parent directory
func WriteFile(path string, scene *chart.Scene, sheet *style.Sheet, f Format) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Render(file, scene, sheet, f); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	log.Printf("Exported chart as %s to %s", f, path)
	return nil
}

// drawer walks the scene and issues renderer calls
type drawer struct {
	r     gochart.Renderer
	font  *truetype.Font
	sheet *style.Sheet
}

func (d *drawer) background(scene *chart.Scene) {
	st := d.sheet.Resolve([]string{chart.ClassBackground}, style.Style{})
	if st.Fill.IsZero() {
		return
	}

	w, h := px(scene.Width), px(scene.Height)
	d.r.ResetStyle()
	d.r.SetFillColor(st.Fill)
	d.r.MoveTo(0, 0)
	d.r.LineTo(w, 0)
	d.r.LineTo(w, h)
	d.r.LineTo(0, h)
	d.r.Close()
	d.r.Fill()
}

func (d *drawer) element(e *chart.Element, offset model.Point, classes []string) {
	switch e.Kind {
	case chart.KindLine:
		d.line(e, offset, d.sheet.Resolve(classes, e.Inline))
	case chart.KindText:
		d.text(e, offset, d.sheet.Resolve(classes, e.Inline))
	}
}

func (d *drawer) line(e *chart.Element, offset model.Point, st style.Style) {
	if st.StrokeWidth <= 0 || st.Stroke.IsZero() {
		return
	}

	d.r.ResetStyle()
	d.r.SetStrokeColor(st.EffectiveStroke())
	d.r.SetStrokeWidth(st.StrokeWidth)
	if len(st.Dash) > 0 {
		d.r.SetStrokeDashArray(st.Dash)
	}
	d.r.MoveTo(px(offset.X+e.X1), px(offset.Y+e.Y1))
	d.r.LineTo(px(offset.X+e.X2), px(offset.Y+e.Y2))
	d.r.Stroke()
}

func (d *drawer) text(e *chart.Element, offset model.Point, st style.Style) {
	if e.Text == "" {
		return
	}

	d.r.ResetStyle()
	d.r.SetFont(d.font)
	d.r.SetFontSize(st.FontSize)
	d.r.SetFontColor(st.TextColor)

	x := offset.X + e.X
	switch e.Anchor {
	case chart.AnchorMiddle:
		x -= float64(d.r.MeasureText(e.Text).Width()) / 2
	case chart.AnchorEnd:
		x -= float64(d.r.MeasureText(e.Text).Width())
	}
	y := offset.Y + e.Y + e.DY*st.FontSize
	d.r.Text(e.Text, px(x), px(y))
}

func px(v float64) int {
	return int(math.Round(v))
}
