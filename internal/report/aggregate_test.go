package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palletops/opsdash/internal/domain"
)

func TestSummarizeTransfersQuantitySpansRoutes(t *testing.T) {
	transfers := []domain.TransferRecord{
		{ProductCode: "P1", OperatorName: "Alex", OperatorID: 5997, FromLocation: "await", ToLocation: "Bulk Room", Quantity: 10},
		{ProductCode: "P1", OperatorName: "Alex", OperatorID: 5997, FromLocation: "Fold Mill", ToLocation: "Bulk Room", Quantity: 5},
	}

	rows := SummarizeTransfers(transfers)
	require.Len(t, rows, 2)

	// "await" aliases to Production before grouping.
	assert.Equal(t, "Production", rows[0].FromLocation)
	assert.Equal(t, "Fold Mill", rows[1].FromLocation)

	// The quantity total sums all of Alex's P1 movements regardless of
	// route; the pallet count stays per-route.
	for _, row := range rows {
		assert.Equal(t, 15, row.OperatorQty)
		assert.Equal(t, 1, row.RoutePallets)
	}
}

func TestSummarizeTransfersDeduplicatesRoutes(t *testing.T) {
	transfers := []domain.TransferRecord{
		{ProductCode: "P2", OperatorName: "Sam", FromLocation: "pipeline", ToLocation: "Bulk Room", Quantity: 4},
		{ProductCode: "P9", OperatorName: "Sam", FromLocation: "pipeline", ToLocation: "Bulk Room", Quantity: 1},
		{ProductCode: "P2", OperatorName: "Sam", FromLocation: "pipeline", ToLocation: "Bulk Room", Quantity: 6},
	}

	rows := SummarizeTransfers(transfers)
	require.Len(t, rows, 2)

	// First-occurrence order, not re-sorted.
	assert.Equal(t, "P2", rows[0].ProductCode)
	assert.Equal(t, "P9", rows[1].ProductCode)

	assert.Equal(t, 2, rows[0].RoutePallets)
	assert.Equal(t, 10, rows[0].OperatorQty)
	assert.Equal(t, 1, rows[1].RoutePallets)
	assert.Equal(t, 1, rows[1].OperatorQty)
}

func TestSummarizeTransfersNoAliasKeyReachesGrouping(t *testing.T) {
	transfers := []domain.TransferRecord{
		{ProductCode: "P1", OperatorName: "A", FromLocation: "await", ToLocation: "await_grn"},
		{ProductCode: "P1", OperatorName: "A", FromLocation: "PIPELINE", ToLocation: "Await"},
	}

	for _, row := range SummarizeTransfers(transfers) {
		assert.NotContains(t, []string{"await", "await_grn", "pipeline"}, row.FromLocation)
		assert.NotContains(t, []string{"await", "await_grn", "pipeline"}, row.ToLocation)
	}
}

func TestSummarizeTransfersEmpty(t *testing.T) {
	assert.Empty(t, SummarizeTransfers(nil))
}
