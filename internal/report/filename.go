package report

import "fmt"

// Filenames are deterministic per report kind: repeated exports of the
// same report overwrite each other at the delivery layer.

func AcoReportFilename(orderRef string) string {
	return fmt.Sprintf("ACO_%s_Report.xlsx", orderRef)
}

func GrnReportFilename(grnRef string) string {
	return fmt.Sprintf("GRN_Report_%s.xlsx", grnRef)
}

func TransactionReportFilename(start, end string) string {
	return fmt.Sprintf("Transaction_Report_%s_to_%s.xlsx", start, end)
}
