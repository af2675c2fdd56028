package report

import (
	"context"
	"fmt"

	"github.com/palletops/opsdash/internal/domain"
	"github.com/palletops/opsdash/pkg/gridsheet"
)

// GRN template geometry. Weight columns A-B, five pallet-type slots C-G,
// four package-type slots H-K, 30 data rows, totals block fixed at rows
// 38-39 like the paper form.
const (
	grnFallbackSheetName = "GRN Report"
	maxSheetNameLen      = 31 // xlsx limit

	grnDataRows  = 30
	grnDataStart = 8
	grnTotalsRow = 38
	grnDiffRow   = 39

	grnColGross       = 1
	grnColNet         = 2
	grnPalletColBase  = 3 // White Dry; the PalletColumn order matches C..G
	grnPackageColBase = 8 // Stillage; the PackageColumn order matches H..K
)

// BuildGrnReport fills the single-sheet GRN template from one page of
// receiving data.
func BuildGrnReport(ctx context.Context, page domain.GrnReportPageData, sink DiagnosticSink) *gridsheet.Document {
	doc := gridsheet.NewDocument()
	buildGrnSheet(ctx, doc, grnSheetName(page.MaterialCode), page, sink)
	return doc
}

// BuildGrnBatchReport repeats the single-sheet procedure once per
// material code, all inside one workbook. An empty batch still yields a
// structurally valid document carrying the GRN reference.
func BuildGrnBatchReport(ctx context.Context, grnRef string, pages []domain.GrnReportPageData, sink DiagnosticSink) *gridsheet.Document {
	doc := gridsheet.NewDocument()
	if len(pages) == 0 {
		buildGrnSheet(ctx, doc, grnFallbackSheetName, domain.GrnReportPageData{GrnRef: grnRef}, sink)
		return doc
	}
	used := make(map[string]bool)
	for _, page := range pages {
		name := uniqueSheetName(grnSheetName(page.MaterialCode), used)
		used[name] = true
		buildGrnSheet(ctx, doc, name, page, sink)
	}
	return doc
}

func grnSheetName(materialCode string) string {
	if materialCode == "" {
		return grnFallbackSheetName
	}
	return truncateRunes(materialCode, maxSheetNameLen)
}

// uniqueSheetName disambiguates material codes that truncate to the same
// sheet name; without a suffix the later sheet would silently replace
// the earlier one in the workbook.
func uniqueSheetName(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate := truncateRunes(name, maxSheetNameLen-len(suffix)) + suffix
		if !used[candidate] {
			return candidate
		}
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func buildGrnSheet(ctx context.Context, doc *gridsheet.Document, name string, page domain.GrnReportPageData, sink DiagnosticSink) {
	sheet := doc.AddSheet(name)
	grnLayout.Apply(sheet)

	sheet.SetCell(1, 1, "G.R.N. Record")

	sheet.SetCell(2, 2, "GRN Ref:")
	sheet.SetCell(2, 3, page.GrnRef)
	sheet.SetCell(2, 6, "Report Date:")
	sheet.SetCell(2, 7, page.ReportDate)
	sheet.SetCell(2, 10, "User:")
	sheet.SetCell(2, 11, page.UserID)

	sheet.SetCell(3, 2, "Material Code:")
	sheet.SetCell(3, 3, page.MaterialCode)
	sheet.SetCell(3, 6, "Description:")
	sheet.SetCell(3, 7, page.MaterialDescription)

	sheet.SetCell(4, 2, "Supplier:")
	sheet.SetCell(4, 3, page.SupplierName)

	sheet.SetCell(6, grnColGross, "Gross Weight (kg)")
	sheet.SetCell(6, grnColNet, "Net Weight (kg)")
	sheet.SetCell(6, grnPalletColBase, "Pallet Type")
	sheet.SetCell(6, grnPackageColBase, "Package Type")
	for i, label := range []string{"White Dry", "White Wet", "Chep Dry", "Chep Wet", "Euro"} {
		sheet.SetCell(7, grnPalletColBase+i, label)
	}
	for i, label := range []string{"Stillage", "Bag", "Tote Bag", "Octobin"} {
		sheet.SetCell(7, grnPackageColBase+i, label)
	}

	records := page.Records
	if len(records) > grnDataRows {
		sink.Report(ctx, Diagnostic{
			Kind:    DiagCapacityOverflow,
			Detail:  fmt.Sprintf("GRN %s material %s has %d records; the form holds %d rows", page.GrnRef, page.MaterialCode, len(records), grnDataRows),
			Dropped: len(records) - grnDataRows,
		})
		records = records[:grnDataRows]
	}

	for i, rec := range records {
		row := grnDataStart + i
		sheet.SetCell(row, grnColGross, rec.GrossWeight)
		sheet.SetCell(row, grnColNet, rec.NetWeight)

		if rec.Pallet != nil {
			if col, ok := ClassifyPalletType(rec.Pallet); ok {
				if rec.PalletCount != nil {
					sheet.SetCell(row, grnPalletColBase+int(col), *rec.PalletCount)
				}
			} else {
				sink.Report(ctx, Diagnostic{
					Kind:   DiagUnmappedPalletType,
					Label:  *rec.Pallet,
					Detail: fmt.Sprintf("GRN %s row %d", page.GrnRef, i+1),
				})
			}
		}

		if rec.PackageType != nil {
			if col, ok := ClassifyPackageType(rec.PackageType); ok {
				if rec.PackageCount != nil {
					sheet.SetCell(row, grnPackageColBase+int(col), *rec.PackageCount)
				}
			} else {
				sink.Report(ctx, Diagnostic{
					Kind:   DiagUnmappedPackageType,
					Label:  *rec.PackageType,
					Detail: fmt.Sprintf("GRN %s row %d", page.GrnRef, i+1),
				})
			}
		}
	}

	sheet.SetCell(grnTotalsRow, grnColGross, page.TotalGrossWeight)
	sheet.SetCell(grnTotalsRow, grnColNet, page.TotalNetWeight)
	sheet.SetCell(grnTotalsRow, 3, "Total Weight (kg)")
	sheet.SetCell(grnDiffRow, grnColGross, page.WeightDifference)
	sheet.SetCell(grnDiffRow, 3, "Weight Difference (kg)")
}
