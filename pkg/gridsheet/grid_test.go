package gridsheet

import "testing"

func TestParseRegion(t *testing.T) {
	tests := []struct {
		ref  string
		want Region
	}{
		{"A1:L1", Region{R1: 1, C1: 1, R2: 1, C2: 12}},
		{"C6:G6", Region{R1: 6, C1: 3, R2: 6, C2: 7}},
		{"B2", Region{R1: 2, C1: 2, R2: 2, C2: 2}},
		{"AA10:AB12", Region{R1: 10, C1: 27, R2: 12, C2: 28}},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.ref)
		if err != nil {
			t.Fatalf("ParseRegion(%q): %v", tt.ref, err)
		}
		if got != tt.want {
			t.Errorf("ParseRegion(%q) = %+v, want %+v", tt.ref, got, tt.want)
		}
	}

	if _, err := ParseRegion("not-a-ref"); err == nil {
		t.Error("expected error for invalid region")
	}
}

func TestSheetStateBookkeeping(t *testing.T) {
	doc := NewDocument()
	sheet := doc.AddSheet("Test")

	sheet.SetCell(1, 1, "title")
	sheet.SetCell(5, 3, 42)

	if v, ok := sheet.Value(1, 1); !ok || v != "title" {
		t.Errorf("Value(1,1) = %v, %v", v, ok)
	}
	if v, ok := sheet.Value(5, 3); !ok || v != 42 {
		t.Errorf("Value(5,3) = %v, %v", v, ok)
	}
	if _, ok := sheet.Value(9, 9); ok {
		t.Error("unset cell reported as set")
	}

	sheet.Merge(1, 1, 1, 12)
	if len(sheet.Merges()) != 1 {
		t.Fatalf("expected 1 merge, got %d", len(sheet.Merges()))
	}

	sheet.SetRowHeight(1, 28)
	sheet.SetColWidth(2, 14)
	sheet.SetPageSetup(PageSetup{Orientation: "portrait", FitToWidth: 1})
	if p, ok := sheet.PageSetupValue(); !ok || p.Orientation != "portrait" {
		t.Errorf("PageSetupValue() = %+v, %v", p, ok)
	}
}

func TestStyleAtLastDeclarationWins(t *testing.T) {
	doc := NewDocument()
	sheet := doc.AddSheet("Test")

	sheet.SetRegionStyle(Region{R1: 1, C1: 1, R2: 10, C2: 10}, Style{Border: "thin"})
	sheet.SetRegionStyle(Region{R1: 5, C1: 5, R2: 5, C2: 5}, Style{FontBold: true})

	st, ok := sheet.StyleAt(5, 5)
	if !ok || !st.FontBold || st.Border != "" {
		t.Errorf("StyleAt(5,5) = %+v, %v", st, ok)
	}
	st, ok = sheet.StyleAt(1, 1)
	if !ok || st.Border != "thin" {
		t.Errorf("StyleAt(1,1) = %+v, %v", st, ok)
	}
	if _, ok := sheet.StyleAt(20, 20); ok {
		t.Error("unstyled cell reported styled")
	}
}
