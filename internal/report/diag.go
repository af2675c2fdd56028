// Package report turns warehouse domain records into populated grid
// documents: ACO order reports, GRN receiving sheets and stock-transfer
// summaries, each matching a fixed paper-form template.
package report

import (
	"context"

	"github.com/palletops/opsdash/internal/logger"
)

// DiagnosticKind identifies a non-fatal data-quality event. The engine
// never fails a report for these; it skips the offending value and keeps
// going.
type DiagnosticKind string

const (
	DiagUnmappedPalletType  DiagnosticKind = "unmapped_pallet_type"
	DiagUnmappedPackageType DiagnosticKind = "unmapped_package_type"
	DiagUnmappedLocation    DiagnosticKind = "unmapped_location"
	DiagCapacityOverflow    DiagnosticKind = "capacity_overflow"
)

// Diagnostic is one skip-and-log event emitted while assembling a report.
type Diagnostic struct {
	Kind    DiagnosticKind
	Label   string // the original unmapped label, when applicable
	Detail  string
	Dropped int // rows or blocks truncated, for overflow events
}

// DiagnosticSink receives data-quality events. Injecting the sink keeps
// assemblers free of ambient logging and lets tests assert on what was
// emitted.
type DiagnosticSink interface {
	Report(ctx context.Context, d Diagnostic)
}

// LogSink routes diagnostics to the application log at warn level.
type LogSink struct{}

func (LogSink) Report(ctx context.Context, d Diagnostic) {
	if d.Kind == DiagCapacityOverflow {
		logger.WarnLog(ctx, "report diagnostic %s: %s (%d dropped)", d.Kind, d.Detail, d.Dropped)
		return
	}
	logger.WarnLog(ctx, "report diagnostic %s: %q %s", d.Kind, d.Label, d.Detail)
}

// CaptureSink records diagnostics in order. Request-scoped; not safe for
// concurrent use.
type CaptureSink struct {
	Events []Diagnostic
}

func (c *CaptureSink) Report(_ context.Context, d Diagnostic) {
	c.Events = append(c.Events, d)
}

// ByKind returns the captured events of one kind, in emission order.
func (c *CaptureSink) ByKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Events {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
