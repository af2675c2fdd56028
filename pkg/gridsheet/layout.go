package gridsheet

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout is the static, hand-authored presentation of a report template:
// column widths, row heights, merge regions, styled regions and page
// settings. Layouts carry no cell values; those are written by the report
// assemblers. Keeping the declarations as data makes each paper-form
// template diffable and testable on its own.
type Layout struct {
	Columns []ColumnSpec `yaml:"columns"`
	Rows    []RowSpec    `yaml:"rows"`
	Merges  []string     `yaml:"merges"`
	Styles  []StyleSpec  `yaml:"styles"`
	Page    *PageSpec    `yaml:"page"`
}

// ColumnSpec sets a width for columns From..To (inclusive, 1-based).
// To defaults to From.
type ColumnSpec struct {
	From  int     `yaml:"from"`
	To    int     `yaml:"to"`
	Width float64 `yaml:"width"`
}

// RowSpec sets a height for rows From..To (inclusive, 1-based).
// To defaults to From.
type RowSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Height float64 `yaml:"height"`
}

// StyleSpec names a style and lists the regions it covers.
type StyleSpec struct {
	Name    string     `yaml:"name"`
	Font    *FontSpec  `yaml:"font"`
	Fill    string     `yaml:"fill"`
	Border  string     `yaml:"border"`
	Align   *AlignSpec `yaml:"align"`
	NumFmt  string     `yaml:"numfmt"`
	Regions []string   `yaml:"regions"`
}

type FontSpec struct {
	Bold bool    `yaml:"bold"`
	Size float64 `yaml:"size"`
	Name string  `yaml:"name"`
}

type AlignSpec struct {
	Horizontal string `yaml:"horizontal"`
	Vertical   string `yaml:"vertical"`
	Wrap       bool   `yaml:"wrap"`
}

// PageSpec mirrors PageSetup in declaration form.
type PageSpec struct {
	Orientation string       `yaml:"orientation"`
	FitToWidth  int          `yaml:"fit_to_width"`
	FitToHeight int          `yaml:"fit_to_height"`
	Margins     *MarginsSpec `yaml:"margins"`
}

type MarginsSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// ParseLayout decodes and validates a YAML layout declaration. Every
// region reference must parse; a layout that fails here is a template
// authoring bug.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	for _, m := range l.Merges {
		if _, err := ParseRegion(m); err != nil {
			return nil, fmt.Errorf("layout merge: %w", err)
		}
	}
	for _, st := range l.Styles {
		for _, r := range st.Regions {
			if _, err := ParseRegion(r); err != nil {
				return nil, fmt.Errorf("layout style %q: %w", st.Name, err)
			}
		}
	}
	return &l, nil
}

// MustParseLayout is ParseLayout for embedded template assets.
func MustParseLayout(data string) *Layout {
	l, err := ParseLayout([]byte(data))
	if err != nil {
		panic(err)
	}
	return l
}

// Apply writes the layout's presentation state onto a sheet.
func (l *Layout) Apply(s *Sheet) {
	for _, c := range l.Columns {
		to := c.To
		if to < c.From {
			to = c.From
		}
		for col := c.From; col <= to; col++ {
			s.SetColWidth(col, c.Width)
		}
	}
	for _, r := range l.Rows {
		to := r.To
		if to < r.From {
			to = r.From
		}
		for row := r.From; row <= to; row++ {
			s.SetRowHeight(row, r.Height)
		}
	}
	for _, m := range l.Merges {
		reg, _ := ParseRegion(m)
		s.Merge(reg.R1, reg.C1, reg.R2, reg.C2)
	}
	for _, spec := range l.Styles {
		style := spec.toStyle()
		for _, r := range spec.Regions {
			reg, _ := ParseRegion(r)
			s.SetRegionStyle(reg, style)
		}
	}
	if l.Page != nil {
		p := PageSetup{
			Orientation: l.Page.Orientation,
			FitToWidth:  l.Page.FitToWidth,
			FitToHeight: l.Page.FitToHeight,
		}
		if m := l.Page.Margins; m != nil {
			p.MarginLeft, p.MarginRight = m.Left, m.Right
			p.MarginTop, p.MarginBottom = m.Top, m.Bottom
		}
		s.SetPageSetup(p)
	}
}

func (spec StyleSpec) toStyle() Style {
	st := Style{
		FillColor: spec.Fill,
		Border:    spec.Border,
		NumFmt:    spec.NumFmt,
	}
	if spec.Font != nil {
		st.FontBold = spec.Font.Bold
		st.FontSize = spec.Font.Size
		st.FontName = spec.Font.Name
	}
	if spec.Align != nil {
		st.HAlign = spec.Align.Horizontal
		st.VAlign = spec.Align.Vertical
		st.WrapText = spec.Align.Wrap
	}
	return st
}
