package gridsheet

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
)

// MIMETypeXLSX is the content type of the serialized artifact.
const MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Fixed document properties so that serializing the same grid twice
// yields byte-identical output.
const (
	docCreator   = "opsdash"
	docTimestamp = "2006-01-02T15:04:05Z"
)

// Serialize renders a Document into an OpenXML workbook held fully in
// memory. It either returns a complete workbook or an error; no partial
// output is ever produced.
func Serialize(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        docCreator,
		Created:        docTimestamp,
		Modified:       docTimestamp,
		LastModifiedBy: docCreator,
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	seen := make(map[string]bool)
	for i, sheet := range doc.Sheets() {
		if seen[sheet.Name] {
			return nil, fmt.Errorf("duplicate sheet name %q", sheet.Name)
		}
		seen[sheet.Name] = true
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("add sheet %q: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return canonicalZip(buf.Bytes())
}

// canonicalZip rewrites the workbook archive with its parts sorted by
// name and fixed entry headers. excelize holds the parts in a map, so
// the raw WriteTo output lists them in a different order on every run
// even when the contents are identical.
func canonicalZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reopen workbook archive: %w", err)
	}
	parts := make([]*zip.File, len(r.File))
	copy(parts, r.File)
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, part := range parts {
		rc, err := part.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", part.Name, err)
		}
		out, err := w.CreateHeader(&zip.FileHeader{Name: part.Name, Method: zip.Deflate})
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("rewrite part %s: %w", part.Name, err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("copy part %s: %w", part.Name, err)
		}
		rc.Close()
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close workbook archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s *Sheet) error {
	// Column widths, in column order.
	cols := make([]int, 0, len(s.colWidths))
	for c := range s.colWidths {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	for _, c := range cols {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
		if err := f.SetColWidth(s.Name, name, name, s.colWidths[c]); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}

	// Row heights, in row order.
	rows := make([]int, 0, len(s.rowHeights))
	for r := range s.rowHeights {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	for _, r := range rows {
		if err := f.SetRowHeight(s.Name, r, s.rowHeights[r]); err != nil {
			return fmt.Errorf("set row height: %w", err)
		}
	}

	// Cell values in (row, col) order so output is deterministic.
	keys := make([]cellKey, 0, len(s.cells))
	for k := range s.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})
	for _, k := range keys {
		cell, err := excelize.CoordinatesToCellName(k.Col, k.Row)
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", k.Row, k.Col, err)
		}
		if err := f.SetCellValue(s.Name, cell, s.cells[k]); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	// Styles, in declaration order; identical styles share one style ID.
	styleIDs := make(map[Style]int)
	for _, sr := range s.styles {
		id, ok := styleIDs[sr.Style]
		if !ok {
			var err error
			id, err = f.NewStyle(toExcelizeStyle(sr.Style))
			if err != nil {
				return fmt.Errorf("new style: %w", err)
			}
			styleIDs[sr.Style] = id
		}
		first, err := excelize.CoordinatesToCellName(sr.Region.C1, sr.Region.R1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(sr.Region.C2, sr.Region.R2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, first, last, id); err != nil {
			return fmt.Errorf("set style: %w", err)
		}
	}

	for _, m := range s.merges {
		first, err := excelize.CoordinatesToCellName(m.C1, m.R1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(m.C2, m.R2)
		if err != nil {
			return err
		}
		if err := f.MergeCell(s.Name, first, last); err != nil {
			return fmt.Errorf("merge %s:%s: %w", first, last, err)
		}
	}

	if p, ok := s.PageSetupValue(); ok {
		layout := excelize.PageLayoutOptions{}
		if p.Orientation != "" {
			layout.Orientation = &p.Orientation
		}
		if p.FitToWidth > 0 {
			layout.FitToWidth = &p.FitToWidth
		}
		if p.FitToHeight > 0 {
			layout.FitToHeight = &p.FitToHeight
		}
		if err := f.SetPageLayout(s.Name, &layout); err != nil {
			return fmt.Errorf("page layout: %w", err)
		}
		margins := excelize.PageLayoutMarginsOptions{
			Left:   &p.MarginLeft,
			Right:  &p.MarginRight,
			Top:    &p.MarginTop,
			Bottom: &p.MarginBottom,
		}
		if err := f.SetPageMargins(s.Name, &margins); err != nil {
			return fmt.Errorf("page margins: %w", err)
		}
	}

	return nil
}

func toExcelizeStyle(st Style) *excelize.Style {
	out := &excelize.Style{}
	if st.FontBold || st.FontSize > 0 || st.FontName != "" {
		out.Font = &excelize.Font{
			Bold:   st.FontBold,
			Size:   st.FontSize,
			Family: st.FontName,
		}
	}
	if st.FillColor != "" {
		out.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{st.FillColor},
			Pattern: 1,
		}
	}
	if st.Border != "" {
		weight := 1 // thin
		if st.Border == "medium" {
			weight = 2
		}
		for _, edge := range []string{"left", "right", "top", "bottom"} {
			out.Border = append(out.Border, excelize.Border{
				Type:  edge,
				Color: "000000",
				Style: weight,
			})
		}
	}
	if st.HAlign != "" || st.VAlign != "" || st.WrapText {
		out.Alignment = &excelize.Alignment{
			Horizontal: st.HAlign,
			Vertical:   st.VAlign,
			WrapText:   st.WrapText,
		}
	}
	if st.NumFmt != "" {
		fmtCode := st.NumFmt
		out.CustomNumFmt = &fmtCode
	}
	return out
}
