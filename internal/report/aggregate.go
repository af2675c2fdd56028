package report

import "github.com/palletops/opsdash/internal/domain"

// routeKey identifies one class of stock movement after aliasing.
type routeKey struct {
	Product  string
	Operator string
	From     string
	To       string
}

type operatorProductKey struct {
	Operator string
	Product  string
}

// TransferRow is one rendered line of the transaction report: the first
// record seen for a route, locations already aliased, annotated with the
// two derived totals.
type TransferRow struct {
	domain.TransferRecord

	// RoutePallets counts all transfers sharing this row's route.
	RoutePallets int

	// OperatorQty sums the quantity of every transfer this operator made
	// for this product, across all routes, not just this row's. The
	// per-route pallet count next to a cross-route quantity sum is the
	// report's established meaning; confirm with the business owner
	// before changing either side.
	OperatorQty int
}

// SummarizeTransfers aliases locations, then collapses the records to one
// representative row per distinct route, in order of each route's first
// appearance. Both grouping passes run over the aliased records.
func SummarizeTransfers(transfers []domain.TransferRecord) []TransferRow {
	aliased := make([]domain.TransferRecord, len(transfers))
	for i, t := range transfers {
		t.FromLocation = ResolveLocationAlias(t.FromLocation)
		t.ToLocation = ResolveLocationAlias(t.ToLocation)
		aliased[i] = t
	}

	routeCounts := make(map[routeKey]int)
	operatorQtys := make(map[operatorProductKey]int)
	for _, t := range aliased {
		routeCounts[routeKey{t.ProductCode, t.OperatorName, t.FromLocation, t.ToLocation}]++
		operatorQtys[operatorProductKey{t.OperatorName, t.ProductCode}] += t.Quantity
	}

	rows := make([]TransferRow, 0, len(routeCounts))
	seen := make(map[routeKey]bool)
	for _, t := range aliased {
		key := routeKey{t.ProductCode, t.OperatorName, t.FromLocation, t.ToLocation}
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, TransferRow{
			TransferRecord: t,
			RoutePallets:   routeCounts[key],
			OperatorQty:    operatorQtys[operatorProductKey{t.OperatorName, t.ProductCode}],
		})
	}
	return rows
}
