package report

import (
	_ "embed"

	"github.com/palletops/opsdash/pkg/gridsheet"
)

// The merge, width and style declarations for each paper-form template
// live as data next to the code that fills them in. The assemblers write
// values only; presentation comes entirely from these layouts.

//go:embed layouts/aco.yaml
var acoLayoutYAML string

//go:embed layouts/grn.yaml
var grnLayoutYAML string

//go:embed layouts/transaction.yaml
var transactionLayoutYAML string

var (
	acoLayout         = gridsheet.MustParseLayout(acoLayoutYAML)
	grnLayout         = gridsheet.MustParseLayout(grnLayoutYAML)
	transactionLayout = gridsheet.MustParseLayout(transactionLayoutYAML)
)
