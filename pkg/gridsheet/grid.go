// Package gridsheet models a spreadsheet as an addressable 2-D grid with
// styles, merged regions and page settings, independent of any particular
// file format. A populated Document is turned into an OpenXML workbook by
// Serialize.
package gridsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// cellKey addresses one cell, 1-based.
type cellKey struct {
	Row int
	Col int
}

// Region is a rectangular cell range, 1-based and inclusive.
type Region struct {
	R1, C1, R2, C2 int
}

// ParseRegion converts an "A1:L4" (or single-cell "B2") reference into a
// Region.
func ParseRegion(ref string) (Region, error) {
	var first, last string
	for i := 0; i < len(ref); i++ {
		if ref[i] == ':' {
			first, last = ref[:i], ref[i+1:]
			break
		}
	}
	if first == "" {
		first, last = ref, ref
	}
	c1, r1, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return Region{}, fmt.Errorf("parse region %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return Region{}, fmt.Errorf("parse region %q: %w", ref, err)
	}
	return Region{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// PageSetup holds the print constraints for a sheet.
type PageSetup struct {
	Orientation  string // "portrait" or "landscape"
	FitToWidth   int    // pages wide; 0 leaves the workbook default
	FitToHeight  int    // pages tall; 0 leaves the workbook default
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

type styledRegion struct {
	Region Region
	Style  Style
}

// Sheet is one named grid inside a Document. All mutators are pure
// presentational state changes and never fail for in-template coordinates.
type Sheet struct {
	Name string

	cells      map[cellKey]interface{}
	styles     []styledRegion
	merges     []Region
	rowHeights map[int]float64
	colWidths  map[int]float64
	page       *PageSetup
}

// Document is an ordered collection of sheets.
type Document struct {
	sheets []*Sheet
}

func NewDocument() *Document {
	return &Document{}
}

// AddSheet appends a sheet and returns it. Sheet order is workbook order.
func (d *Document) AddSheet(name string) *Sheet {
	s := &Sheet{
		Name:       name,
		cells:      make(map[cellKey]interface{}),
		rowHeights: make(map[int]float64),
		colWidths:  make(map[int]float64),
	}
	d.sheets = append(d.sheets, s)
	return s
}

// Sheets returns the sheets in workbook order.
func (d *Document) Sheets() []*Sheet {
	return d.sheets
}

// SetCell writes a value at (row, col), 1-based.
func (s *Sheet) SetCell(row, col int, value interface{}) {
	s.cells[cellKey{Row: row, Col: col}] = value
}

// Value returns the value at (row, col) and whether one was set.
func (s *Sheet) Value(row, col int) (interface{}, bool) {
	v, ok := s.cells[cellKey{Row: row, Col: col}]
	return v, ok
}

// SetStyle applies a style to a single cell.
func (s *Sheet) SetStyle(row, col int, style Style) {
	s.SetRegionStyle(Region{R1: row, C1: col, R2: row, C2: col}, style)
}

// SetRegionStyle applies a style to every cell in the region. Later
// declarations win over earlier ones on overlap.
func (s *Sheet) SetRegionStyle(r Region, style Style) {
	s.styles = append(s.styles, styledRegion{Region: r, Style: style})
}

// StyleAt returns the effective style for a cell, if any declaration
// covers it.
func (s *Sheet) StyleAt(row, col int) (Style, bool) {
	var found Style
	var ok bool
	for _, sr := range s.styles {
		if row >= sr.Region.R1 && row <= sr.Region.R2 && col >= sr.Region.C1 && col <= sr.Region.C2 {
			found, ok = sr.Style, true
		}
	}
	return found, ok
}

// Merge declares a merged region. Callers must keep merge regions
// disjoint; overlapping merges are undefined behaviour in the output
// format. The report templates guarantee this by construction.
func (s *Sheet) Merge(r1, c1, r2, c2 int) {
	s.merges = append(s.merges, Region{R1: r1, C1: c1, R2: r2, C2: c2})
}

// Merges returns the declared merge regions in declaration order.
func (s *Sheet) Merges() []Region {
	return s.merges
}

// SetRowHeight sets the height of a row in points.
func (s *Sheet) SetRowHeight(row int, h float64) {
	s.rowHeights[row] = h
}

// SetColWidth sets the width of a column in character units.
func (s *Sheet) SetColWidth(col int, w float64) {
	s.colWidths[col] = w
}

// SetPageSetup declares print constraints for the sheet.
func (s *Sheet) SetPageSetup(p PageSetup) {
	s.page = &p
}

// PageSetupValue returns the declared page setup, if any.
func (s *Sheet) PageSetupValue() (PageSetup, bool) {
	if s.page == nil {
		return PageSetup{}, false
	}
	return *s.page, true
}
