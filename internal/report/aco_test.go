package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palletops/opsdash/internal/domain"
)

func intPtr(i int) *int { return &i }

func acoProduct(code string, required *int, pallets ...domain.PalletInfo) domain.AcoProductData {
	return domain.AcoProductData{ProductCode: code, RequiredQty: required, Pallets: pallets}
}

func TestBuildAcoReportBasics(t *testing.T) {
	products := []domain.AcoProductData{
		acoProduct("MHL101", intPtr(120),
			domain.PalletInfo{PltNum: strPtr("140225/02"), ProductQty: intPtr(24), GenerateTime: strPtr("14-Feb-25")},
			domain.PalletInfo{PltNum: strPtr("140225/01"), ProductQty: intPtr(20), GenerateTime: strPtr("14-Feb-25")},
		),
		acoProduct("SLAT20", nil),
	}

	doc := BuildAcoReport(context.Background(), "280481", products, &CaptureSink{})
	sheets := doc.Sheets()
	require.Len(t, sheets, 1)
	sheet := sheets[0]

	v, _ := sheet.Value(2, 1)
	assert.Equal(t, "ACO Order Ref: 280481", v)

	// Block 1 header cells.
	v, _ = sheet.Value(3, 1)
	assert.Equal(t, "Product: MHL101", v)
	v, _ = sheet.Value(4, 1)
	assert.Equal(t, "Required Qty: 120", v)

	// Null required qty renders the N/A placeholder.
	v, _ = sheet.Value(4, 4)
	assert.Equal(t, "Required Qty: N/A", v)

	// Pallets render sorted ascending by pallet number.
	v, _ = sheet.Value(6, 1)
	assert.Equal(t, "140225/01", v)
	v, _ = sheet.Value(7, 1)
	assert.Equal(t, "140225/02", v)
	v, _ = sheet.Value(6, 2)
	assert.Equal(t, 20, v)
}

func TestBuildAcoReportFifthProductDropped(t *testing.T) {
	var products []domain.AcoProductData
	for i := 1; i <= 5; i++ {
		products = append(products, acoProduct(fmt.Sprintf("P%d", i), intPtr(10)))
	}

	sink := &CaptureSink{}
	doc := BuildAcoReport(context.Background(), "280500", products, sink)
	sheet := doc.Sheets()[0]

	// Blocks 1-4 populated, nothing of P5 anywhere on row 3.
	v, _ := sheet.Value(3, 10)
	assert.Equal(t, "Product: P4", v)
	for col := 1; col <= 12; col++ {
		if v, ok := sheet.Value(3, col); ok {
			assert.NotEqual(t, "Product: P5", v)
		}
	}

	overflow := sink.ByKind(DiagCapacityOverflow)
	require.Len(t, overflow, 1)
	assert.Equal(t, 1, overflow[0].Dropped)
}

func TestBuildAcoReportPalletRowCapacity(t *testing.T) {
	var pallets []domain.PalletInfo
	for i := 0; i < 40; i++ {
		pallets = append(pallets, domain.PalletInfo{
			PltNum:     strPtr(fmt.Sprintf("140225/%02d", i)),
			ProductQty: intPtr(1),
		})
	}

	sink := &CaptureSink{}
	doc := BuildAcoReport(context.Background(), "280501",
		[]domain.AcoProductData{acoProduct("MHL101", intPtr(40), pallets...)}, sink)
	sheet := doc.Sheets()[0]

	// Row 39 is the 34th and last data row; row 40 must stay empty.
	_, ok := sheet.Value(39, 1)
	assert.True(t, ok)
	_, ok = sheet.Value(40, 1)
	assert.False(t, ok)

	overflow := sink.ByKind(DiagCapacityOverflow)
	require.Len(t, overflow, 1)
	assert.Equal(t, 6, overflow[0].Dropped)
}

func TestBuildAcoReportNilPalletNumbersSortLast(t *testing.T) {
	products := []domain.AcoProductData{
		acoProduct("MHL101", intPtr(10),
			domain.PalletInfo{PltNum: nil, ProductQty: intPtr(1)},
			domain.PalletInfo{PltNum: strPtr("B"), ProductQty: intPtr(2)},
			domain.PalletInfo{PltNum: strPtr("A"), ProductQty: intPtr(3)},
		),
	}

	doc := BuildAcoReport(context.Background(), "280502", products, &CaptureSink{})
	sheet := doc.Sheets()[0]

	v, _ := sheet.Value(6, 1)
	assert.Equal(t, "A", v)
	v, _ = sheet.Value(7, 1)
	assert.Equal(t, "B", v)

	// The nil-numbered pallet keeps its row but leaves the cell empty.
	_, ok := sheet.Value(8, 1)
	assert.False(t, ok)
	v, _ = sheet.Value(8, 2)
	assert.Equal(t, 1, v)
}

func TestBuildAcoReportEmptyOrder(t *testing.T) {
	sink := &CaptureSink{}
	doc := BuildAcoReport(context.Background(), "280503", nil, sink)
	sheet := doc.Sheets()[0]

	// Headers are part of the fixed form even with no products.
	v, _ := sheet.Value(5, 1)
	assert.Equal(t, "Pallet No.", v)
	assert.Empty(t, sink.Events)
}
