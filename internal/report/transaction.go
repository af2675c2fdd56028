package report

import (
	"context"
	"fmt"

	"github.com/palletops/opsdash/internal/domain"
	"github.com/palletops/opsdash/pkg/gridsheet"
)

// Transfer template geometry: 23 data rows, checkmark columns D-F (from)
// and G-K (to), totals row fixed at 28. No second sheet is ever created;
// overflow is truncated.
const (
	transferSheetName = "Transfer Report"

	transferDataRows  = 23
	transferDataStart = 5
	transferTotalsRow = 28

	transferColProduct  = 1
	transferColQty      = 2
	transferColPallets  = 3
	transferColOperator = 12

	checkmark = "✓"
)

// The two location-to-column tables are independent: not every location
// that pallets leave from can receive them, and vice versa.
var transferFromColumns = map[string]int{
	"Production":     4,
	"Fold Mill":      5,
	"Pipe Extrusion": 6,
}

var transferToColumns = map[string]int{
	"Production":     7,
	"Fold Mill":      8,
	"Pipe Extrusion": 9,
	"Bulk Room":      10,
	"Back Car Park":  11,
}

// BuildTransactionReport aggregates the raw transfers and fills the
// checkmark matrix, one row per distinct route.
func BuildTransactionReport(ctx context.Context, data *domain.TransactionReportData, sink DiagnosticSink) *gridsheet.Document {
	doc := gridsheet.NewDocument()
	sheet := doc.AddSheet(transferSheetName)
	transactionLayout.Apply(sheet)

	sheet.SetCell(1, 1, "Stock Transfer Record")
	sheet.SetCell(2, 1, fmt.Sprintf("Date Range: %s to %s", data.DateRange.StartDate, data.DateRange.EndDate))

	sheet.SetCell(3, transferColProduct, "Product Code")
	sheet.SetCell(3, transferColQty, "Total Qty")
	sheet.SetCell(3, transferColPallets, "Total Pallets")
	sheet.SetCell(3, 4, "From")
	sheet.SetCell(3, 7, "To")
	sheet.SetCell(3, transferColOperator, "Operator")
	for name, col := range transferFromColumns {
		sheet.SetCell(4, col, name)
	}
	for name, col := range transferToColumns {
		sheet.SetCell(4, col, name)
	}

	rows := SummarizeTransfers(data.Transfers)
	if len(rows) > transferDataRows {
		sink.Report(ctx, Diagnostic{
			Kind:    DiagCapacityOverflow,
			Detail:  fmt.Sprintf("transfer report %s to %s has %d routes; the sheet holds %d rows", data.DateRange.StartDate, data.DateRange.EndDate, len(rows), transferDataRows),
			Dropped: len(rows) - transferDataRows,
		})
		rows = rows[:transferDataRows]
	}

	for i, r := range rows {
		row := transferDataStart + i
		sheet.SetCell(row, transferColProduct, r.ProductCode)
		sheet.SetCell(row, transferColQty, r.OperatorQty)
		sheet.SetCell(row, transferColPallets, r.RoutePallets)
		sheet.SetCell(row, transferColOperator, fmt.Sprintf("%s (%d)", r.OperatorName, r.OperatorID))

		if col, ok := transferFromColumns[r.FromLocation]; ok {
			sheet.SetCell(row, col, checkmark)
		} else {
			sink.Report(ctx, Diagnostic{
				Kind:   DiagUnmappedLocation,
				Label:  r.FromLocation,
				Detail: "no from-location column",
			})
		}
		if col, ok := transferToColumns[r.ToLocation]; ok {
			sheet.SetCell(row, col, checkmark)
		} else {
			sink.Report(ctx, Diagnostic{
				Kind:   DiagUnmappedLocation,
				Label:  r.ToLocation,
				Detail: "no to-location column",
			})
		}
	}

	sheet.SetCell(transferTotalsRow, 1, "Total Transfers:")
	sheet.SetCell(transferTotalsRow, 3, data.TotalTransfers)
	sheet.SetCell(transferTotalsRow, 4, "Total Pallets:")
	sheet.SetCell(transferTotalsRow, 6, data.TotalPallets)

	return doc
}
