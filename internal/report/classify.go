package report

import "strings"

// PalletColumn is a slot in the GRN form's pallet-type column group. The
// set is closed; labels outside it map to no column at all.
type PalletColumn int

const (
	PalletWhiteDry PalletColumn = iota
	PalletWhiteWet
	PalletChepDry
	PalletChepWet
	PalletEuro
)

// PackageColumn is a slot in the GRN form's package-type column group.
type PackageColumn int

const (
	PackageStillage PackageColumn = iota
	PackageBag
	PackageToteBag
	PackageOctobin
)

// normalizeLabel folds case and collapses all whitespace so that
// "  EURO   Pallet " and "euro pallet" compare equal.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

var palletColumns = map[string]PalletColumn{
	"white dry":   PalletWhiteDry,
	"white wet":   PalletWhiteWet,
	"chep dry":    PalletChepDry,
	"chep wet":    PalletChepWet,
	"euro":        PalletEuro,
	"euro pallet": PalletEuro,
}

// ClassifyPalletType resolves a pallet-type label onto its fixed GRN
// column. The comma-ok result is the whole contract: false means the
// label is outside the known set (or nil) and no column receives a value.
// Never panics, never errors; the caller emits the diagnostic.
func ClassifyPalletType(label *string) (PalletColumn, bool) {
	if label == nil {
		return 0, false
	}
	col, ok := palletColumns[normalizeLabel(*label)]
	return col, ok
}

// packageMatches are tested in order; "octobin" and "stillage" before the
// generic substrings, and "tote" before "bag" so "Tote Bag" lands in the
// Tote Bag column rather than Bag.
var packageMatches = []struct {
	substr string
	col    PackageColumn
}{
	{"octo", PackageOctobin},
	{"still", PackageStillage},
	{"tote", PackageToteBag},
	{"bag", PackageBag},
}

// ClassifyPackageType resolves a package-type label onto its fixed GRN
// column by substring match, same contract as ClassifyPalletType.
func ClassifyPackageType(label *string) (PackageColumn, bool) {
	if label == nil {
		return 0, false
	}
	n := normalizeLabel(*label)
	if n == "" {
		return 0, false
	}
	for _, m := range packageMatches {
		if strings.Contains(n, m.substr) {
			return m.col, true
		}
	}
	return 0, false
}

// locationAliases maps internal holding-location codes to the display
// names used on the transfer report. Keys are matched case-insensitively.
var locationAliases = map[string]string{
	"await":     "Production",
	"await_grn": "Fold Mill",
	"pipeline":  "Pipe Extrusion",
}

// ResolveLocationAlias maps a stored location name to its report name.
// Total: unknown names pass through unchanged.
func ResolveLocationAlias(name string) string {
	if alias, ok := locationAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alias
	}
	return name
}
