package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/palletops/opsdash/internal/domain"
	"github.com/palletops/opsdash/internal/report"
	"github.com/palletops/opsdash/pkg/gridsheet"
)

// acoFixture is the JSON shape for `reportctl aco`.
type acoFixture struct {
	OrderRef string                  `json:"order_ref"`
	Products []domain.AcoProductData `json:"products"`
}

// grnFixture is the JSON shape for `reportctl grn`.
type grnFixture struct {
	GrnRef string                     `json:"grn_ref"`
	Pages  []domain.GrnReportPageData `json:"pages"`
}

var acoCmd = &cobra.Command{
	Use:   "aco <fixture.json>",
	Short: "Generate an ACO order report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fixture acoFixture
		if err := loadFixture(args[0], &fixture); err != nil {
			return err
		}
		doc := report.BuildAcoReport(context.Background(), fixture.OrderRef, fixture.Products, report.LogSink{})
		return writeWorkbook(args[0], report.AcoReportFilename(fixture.OrderRef), doc)
	},
}

var grnCmd = &cobra.Command{
	Use:   "grn <fixture.json>",
	Short: "Generate a GRN receiving report, one sheet per material code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fixture grnFixture
		if err := loadFixture(args[0], &fixture); err != nil {
			return err
		}
		doc := report.BuildGrnBatchReport(context.Background(), fixture.GrnRef, fixture.Pages, report.LogSink{})
		return writeWorkbook(args[0], report.GrnReportFilename(fixture.GrnRef), doc)
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <fixture.json>",
	Short: "Generate a stock-transfer report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fixture domain.TransactionReportData
		if err := loadFixture(args[0], &fixture); err != nil {
			return err
		}
		doc := report.BuildTransactionReport(context.Background(), &fixture, report.LogSink{})
		filename := report.TransactionReportFilename(fixture.DateRange.StartDate, fixture.DateRange.EndDate)
		return writeWorkbook(args[0], filename, doc)
	},
}

func loadFixture(path string, into interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return nil
}

// writeWorkbook serializes the document and writes it next to the
// fixture under the report's deterministic filename, unless --output
// overrides the destination.
func writeWorkbook(fixturePath, filename string, doc *gridsheet.Document) error {
	data, err := gridsheet.Serialize(doc)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	dest := outputPath
	if dest == "" {
		dest = filepath.Join(filepath.Dir(fixturePath), filename)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	fmt.Println("wrote", dest)
	return nil
}
