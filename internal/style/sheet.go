package style

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Sheet maps class names to style rules
type Sheet struct {
	rules map[string]Style
}

// NewSheet creates a sheet from rules; the map is copied
func NewSheet(rules map[string]Style) *Sheet {
	s := &Sheet{rules: make(map[string]Style, len(rules))}
	for class, st := range rules {
		s.rules[class] = st
	}
	return s
}

// Default returns the built-in stylesheet
func Default() *Sheet {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("style: built-in stylesheet: %v", err))
	}
	return s
}

// Extend returns a new sheet where rules of other are merged over rules of s
func (s *Sheet) Extend(other *Sheet) *Sheet {
	out := NewSheet(s.rules)
	for class, st := range other.rules {
		out.rules[class] = out.rules[class].Merge(st)
	}
	return out
}

// Resolve computes the style of an element: universal rule, then each class
// rule in order, then inline attributes
func (s *Sheet) Resolve(classes []string, inline Style) Style {
	var out Style
	if st, ok := s.rules[Universal]; ok {
		out = out.Merge(st)
	}
	for _, class := range classes {
		if st, ok := s.rules[class]; ok {
			out = out.Merge(st)
		}
	}
	return out.Merge(inline)
}

// yamlSheet is the on-disk stylesheet format
type yamlSheet struct {
	Rules map[string]yamlStyle `yaml:"rules"`
}

type yamlStyle struct {
	Stroke        string    `yaml:"stroke"`
	StrokeWidth   float64   `yaml:"stroke_width"`
	StrokeOpacity float64   `yaml:"stroke_opacity"`
	Dash          []float64 `yaml:"dash"`
	Fill          string    `yaml:"fill"`
	FontSize      float64   `yaml:"font_size"`
	TextColor     string    `yaml:"text_color"`
}

// Parse decodes a YAML stylesheet
func Parse(data []byte) (*Sheet, error) {
	var dto yamlSheet
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &LoadError{Op: "style.parse", Err: err}
	}

	rules := make(map[string]Style, len(dto.Rules))
	for class, ys := range dto.Rules {
		st, err := ys.toStyle()
		if err != nil {
			return nil, &LoadError{Op: "style.parse", Class: class, Err: err}
		}
		rules[class] = st
	}
	return NewSheet(rules), nil
}

// Load reads a YAML stylesheet from path and layers it over the built-in one,
// so partial stylesheets only override what they name
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Op: "style.load", Path: path, Err: err}
	}

	sheet, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Op = "style.load"
			le.Path = path
		}
		return nil, err
	}
	return Default().Extend(sheet), nil
}

func (ys yamlStyle) toStyle() (Style, error) {
	st := Style{
		StrokeWidth: ys.StrokeWidth,
		FontSize:    ys.FontSize,
		Dash:        ys.Dash,
	}
	if ys.StrokeWidth < 0 || ys.FontSize < 0 {
		return Style{}, fmt.Errorf("negative size")
	}
	if ys.StrokeOpacity < 0 || ys.StrokeOpacity > 1 {
		return Style{}, fmt.Errorf("stroke_opacity %g out of [0,1]", ys.StrokeOpacity)
	}
	st.StrokeOpacity = ys.StrokeOpacity

	var err error
	if ys.Stroke != "" {
		if st.Stroke, err = ParseColor(ys.Stroke); err != nil {
			return Style{}, fmt.Errorf("stroke: %w", err)
		}
	}
	if ys.Fill != "" {
		if st.Fill, err = ParseColor(ys.Fill); err != nil {
			return Style{}, fmt.Errorf("fill: %w", err)
		}
	}
	if ys.TextColor != "" {
		if st.TextColor, err = ParseColor(ys.TextColor); err != nil {
			return Style{}, fmt.Errorf("text_color: %w", err)
		}
	}
	return st, nil
}
