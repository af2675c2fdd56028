package service

import (
	"context"
	"fmt"

	"github.com/palletops/opsdash/internal/domain"
	"github.com/palletops/opsdash/internal/report"
	"github.com/palletops/opsdash/pkg/gridsheet"
)

// ReportService runs the whole synthesis sequence for one request:
// provider → assembler → serializer → finished file. It holds no state
// between invocations; concurrent requests each build their own grid.
type ReportService struct {
	provider domain.ReportDataProvider
	sink     report.DiagnosticSink
}

// NewReportService creates a ReportService. The sink receives every
// data-quality diagnostic the assemblers emit; pass report.LogSink{} in
// production.
func NewReportService(provider domain.ReportDataProvider, sink report.DiagnosticSink) *ReportService {
	return &ReportService{provider: provider, sink: sink}
}

// BuildAcoReport builds the ACO order report for one order reference.
// An order with no products still yields a valid, empty-bodied document.
func (s *ReportService) BuildAcoReport(ctx context.Context, orderRef string) (*domain.ReportFile, error) {
	products, err := s.provider.AcoOrderReport(ctx, orderRef)
	if err != nil {
		return nil, fmt.Errorf("load aco order %s: %w", orderRef, err)
	}

	doc := report.BuildAcoReport(ctx, orderRef, products, s.sink)
	data, err := gridsheet.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize aco report %s: %w", orderRef, err)
	}
	return &domain.ReportFile{
		Filename: report.AcoReportFilename(orderRef),
		MIME:     gridsheet.MIMETypeXLSX,
		Data:     data,
	}, nil
}

// BuildGrnReport builds the GRN batch document for one GRN reference,
// one sheet per material code.
func (s *ReportService) BuildGrnReport(ctx context.Context, grnRef, userID string) (*domain.ReportFile, error) {
	pages, err := s.provider.GrnReportPages(ctx, grnRef, userID)
	if err != nil {
		return nil, fmt.Errorf("load grn %s: %w", grnRef, err)
	}

	doc := report.BuildGrnBatchReport(ctx, grnRef, pages, s.sink)
	data, err := gridsheet.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize grn report %s: %w", grnRef, err)
	}
	return &domain.ReportFile{
		Filename: report.GrnReportFilename(grnRef),
		MIME:     gridsheet.MIMETypeXLSX,
		Data:     data,
	}, nil
}

// BuildTransactionReport builds the stock-transfer report for an
// inclusive date range.
func (s *ReportService) BuildTransactionReport(ctx context.Context, start, end string) (*domain.ReportFile, error) {
	data, err := s.provider.TransfersBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load transfers %s..%s: %w", start, end, err)
	}

	doc := report.BuildTransactionReport(ctx, data, s.sink)
	bytes, err := gridsheet.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize transaction report: %w", err)
	}
	return &domain.ReportFile{
		Filename: report.TransactionReportFilename(start, end),
		MIME:     gridsheet.MIMETypeXLSX,
		Data:     bytes,
	}, nil
}
