package gridsheet

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleDocument() *Document {
	doc := NewDocument()
	sheet := doc.AddSheet("Report")
	sheet.SetCell(1, 1, "Title")
	sheet.SetCell(3, 2, 42)
	sheet.SetCell(3, 3, 1.25)
	sheet.Merge(1, 1, 1, 4)
	sheet.SetRegionStyle(Region{R1: 1, C1: 1, R2: 1, C2: 4}, Style{FontBold: true, FontSize: 16, HAlign: "center"})
	sheet.SetRowHeight(1, 28)
	sheet.SetColWidth(1, 16)
	sheet.SetPageSetup(PageSetup{Orientation: "portrait", FitToWidth: 1, MarginLeft: 0.4, MarginRight: 0.4, MarginTop: 0.6, MarginBottom: 0.6})
	return doc
}

func TestSerializeRoundTrip(t *testing.T) {
	data, err := Serialize(sampleDocument())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "Report" {
		t.Errorf("sheet name = %q", got)
	}
	v, err := f.GetCellValue("Report", "A1")
	if err != nil || v != "Title" {
		t.Errorf("A1 = %q, %v", v, err)
	}
	v, _ = f.GetCellValue("Report", "B3")
	if v != "42" {
		t.Errorf("B3 = %q", v)
	}

	merges, err := f.GetMergeCells("Report")
	if err != nil || len(merges) != 1 {
		t.Fatalf("merges = %v, %v", merges, err)
	}
	if merges[0].GetStartAxis() != "A1" || merges[0].GetEndAxis() != "D1" {
		t.Errorf("merge range = %s:%s", merges[0].GetStartAxis(), merges[0].GetEndAxis())
	}
}

func TestSerializeIdempotent(t *testing.T) {
	first, err := Serialize(sampleDocument())
	if err != nil {
		t.Fatalf("first serialize: %v", err)
	}
	// The archive part order must not depend on map iteration, so a
	// single repeat is not enough to trust.
	for i := 0; i < 10; i++ {
		again, err := Serialize(sampleDocument())
		if err != nil {
			t.Fatalf("serialize %d: %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d produced different bytes for the same grid", i)
		}
	}
}

func TestSerializeSortsArchiveParts(t *testing.T) {
	data, err := Serialize(sampleDocument())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reopen archive: %v", err)
	}
	if len(r.File) == 0 {
		t.Fatal("no archive parts")
	}
	for i := 1; i < len(r.File); i++ {
		if r.File[i-1].Name >= r.File[i].Name {
			t.Fatalf("parts out of order: %q before %q", r.File[i-1].Name, r.File[i].Name)
		}
	}
}

func TestSerializeDuplicateSheetNames(t *testing.T) {
	doc := NewDocument()
	doc.AddSheet("Report").SetCell(1, 1, "a")
	doc.AddSheet("Report").SetCell(1, 1, "b")

	if _, err := Serialize(doc); err == nil {
		t.Fatal("duplicate sheet names must fail serialization, not overwrite")
	}
}

func TestSerializeMultiSheet(t *testing.T) {
	doc := NewDocument()
	doc.AddSheet("MHL101").SetCell(1, 1, "a")
	doc.AddSheet("SLAT20").SetCell(1, 1, "b")

	data, err := Serialize(doc)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if f.SheetCount != 2 {
		t.Fatalf("sheet count = %d", f.SheetCount)
	}
	if f.GetSheetName(0) != "MHL101" || f.GetSheetName(1) != "SLAT20" {
		t.Errorf("sheet names = %q, %q", f.GetSheetName(0), f.GetSheetName(1))
	}
}

func TestSerializeEmptyDocument(t *testing.T) {
	data, err := Serialize(NewDocument())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty document should still be a valid workbook")
	}
}
