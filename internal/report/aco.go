package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/palletops/opsdash/internal/domain"
	"github.com/palletops/opsdash/pkg/gridsheet"
)

// ACO template geometry. Four product blocks of three columns sit side by
// side; each block holds up to 34 pallet rows. The form has no second
// page: anything beyond these capacities is dropped with a diagnostic.
const (
	acoSheetName = "ACO Report"

	acoMaxBlocks  = 4
	acoBlockRows  = 34
	acoBlockWidth = 3

	acoTitleRow    = 1
	acoOrderRefRow = 2
	acoProductRow  = 3
	acoRequiredRow = 4
	acoHeaderRow   = 5
	acoDataStart   = 6
)

// BuildAcoReport populates the ACO order template. An empty product list
// yields a valid sheet with headers only.
func BuildAcoReport(ctx context.Context, orderRef string, products []domain.AcoProductData, sink DiagnosticSink) *gridsheet.Document {
	doc := gridsheet.NewDocument()
	sheet := doc.AddSheet(acoSheetName)
	acoLayout.Apply(sheet)

	sheet.SetCell(acoTitleRow, 1, "ACO Record")
	sheet.SetCell(acoOrderRefRow, 1, fmt.Sprintf("ACO Order Ref: %s", orderRef))

	// Column headers for all four blocks are part of the fixed form,
	// populated or not.
	for b := 0; b < acoMaxBlocks; b++ {
		base := 1 + b*acoBlockWidth
		sheet.SetCell(acoHeaderRow, base, "Pallet No.")
		sheet.SetCell(acoHeaderRow, base+1, "Qty")
		sheet.SetCell(acoHeaderRow, base+2, "Date")
	}

	if len(products) > acoMaxBlocks {
		sink.Report(ctx, Diagnostic{
			Kind:    DiagCapacityOverflow,
			Detail:  fmt.Sprintf("ACO order %s has %d products; the form holds %d blocks", orderRef, len(products), acoMaxBlocks),
			Dropped: len(products) - acoMaxBlocks,
		})
		products = products[:acoMaxBlocks]
	}

	for b, product := range products {
		base := 1 + b*acoBlockWidth
		sheet.SetCell(acoProductRow, base, fmt.Sprintf("Product: %s", product.ProductCode))
		if product.RequiredQty != nil {
			sheet.SetCell(acoRequiredRow, base, fmt.Sprintf("Required Qty: %d", *product.RequiredQty))
		} else {
			sheet.SetCell(acoRequiredRow, base, "Required Qty: N/A")
		}

		pallets := sortPallets(product.Pallets)
		if len(pallets) > acoBlockRows {
			sink.Report(ctx, Diagnostic{
				Kind:    DiagCapacityOverflow,
				Detail:  fmt.Sprintf("product %s has %d pallets; the block holds %d rows", product.ProductCode, len(pallets), acoBlockRows),
				Dropped: len(pallets) - acoBlockRows,
			})
			pallets = pallets[:acoBlockRows]
		}

		for i, p := range pallets {
			row := acoDataStart + i
			if p.PltNum != nil {
				sheet.SetCell(row, base, *p.PltNum)
			}
			if p.ProductQty != nil {
				sheet.SetCell(row, base+1, *p.ProductQty)
			}
			if p.GenerateTime != nil {
				sheet.SetCell(row, base+2, *p.GenerateTime)
			}
		}
	}

	return doc
}

// sortPallets orders a copy of the pallets ascending by pallet number,
// lexicographic, with unknown numbers last. The provider already orders
// its rows, but the form contract is the engine's to keep.
func sortPallets(pallets []domain.PalletInfo) []domain.PalletInfo {
	out := make([]domain.PalletInfo, len(pallets))
	copy(out, pallets)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PltNum, out[j].PltNum
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out
}
