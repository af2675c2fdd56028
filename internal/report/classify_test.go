package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClassifyPalletType(t *testing.T) {
	tests := []struct {
		name  string
		label *string
		want  PalletColumn
		ok    bool
	}{
		{"white dry exact", strPtr("White Dry"), PalletWhiteDry, true},
		{"white wet lower", strPtr("white wet"), PalletWhiteWet, true},
		{"chep dry upper", strPtr("CHEP DRY"), PalletChepDry, true},
		{"chep wet padded", strPtr("  Chep Wet "), PalletChepWet, true},
		{"euro bare", strPtr("Euro"), PalletEuro, true},
		{"euro pallet", strPtr("Euro Pallet"), PalletEuro, true},
		{"euro pallet shouting", strPtr("EURO   PALLET"), PalletEuro, true},
		{"plastic crate", strPtr("Plastic Crate"), 0, false},
		{"empty", strPtr(""), 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyPalletType(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifyPackageType(t *testing.T) {
	tests := []struct {
		name  string
		label *string
		want  PackageColumn
		ok    bool
	}{
		{"still", strPtr("Still"), PackageStillage, true},
		{"stillage full", strPtr("Stillage"), PackageStillage, true},
		{"bag", strPtr("Bag"), PackageBag, true},
		{"tote", strPtr("Tote"), PackageToteBag, true},
		// "Tote Bag" contains both substrings; tote must win.
		{"tote bag", strPtr("Tote Bag"), PackageToteBag, true},
		{"octo", strPtr("Octo"), PackageOctobin, true},
		{"octobin upper", strPtr("OCTOBIN"), PackageOctobin, true},
		{"sack", strPtr("Sack"), 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyPackageType(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveLocationAlias(t *testing.T) {
	assert.Equal(t, "Production", ResolveLocationAlias("await"))
	assert.Equal(t, "Production", ResolveLocationAlias("Await"))
	assert.Equal(t, "Fold Mill", ResolveLocationAlias("await_grn"))
	assert.Equal(t, "Pipe Extrusion", ResolveLocationAlias("PIPELINE"))

	// Identity fallback for everything outside the alias set.
	assert.Equal(t, "Bulk Room", ResolveLocationAlias("Bulk Room"))
	assert.Equal(t, "Production", ResolveLocationAlias("Production"))
}
