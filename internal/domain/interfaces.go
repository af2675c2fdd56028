package domain

import "context"

// ReportDataProvider supplies already-validated, typed records for the
// report engine. Implementations own all persistence concerns; the engine
// itself never touches a database.
type ReportDataProvider interface {
	// AcoOrderReport returns one entry per product on the order, pallets
	// sorted ascending by pallet number with unknown numbers last.
	AcoOrderReport(ctx context.Context, orderRef string) ([]AcoProductData, error)

	// GrnReportPages returns one page per distinct material code under the
	// GRN reference, in material-code order, with weight totals computed.
	GrnReportPages(ctx context.Context, grnRef, userID string) ([]GrnReportPageData, error)

	// TransfersBetween returns all stock transfers in the inclusive date
	// range. Location aliasing is left to the engine.
	TransfersBetween(ctx context.Context, start, end string) (*TransactionReportData, error)
}
