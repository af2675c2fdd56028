package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/palletops/opsdash/internal/domain"
)

// reportRepository is the persistent-store side of the report engine's
// data-provider contract. All validation and shaping happens here; the
// engine receives fully typed records and never sees SQL.
type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates the postgres-backed report data provider.
func NewReportRepository(db *sql.DB) domain.ReportDataProvider {
	return &reportRepository{db: db}
}

// AcoOrderReport loads one entry per product on the order, with each
// product's pallets ordered ascending by pallet number.
func (r *reportRepository) AcoOrderReport(ctx context.Context, orderRef string) ([]domain.AcoProductData, error) {
	const lineQuery = `
		SELECT code, required_qty
		FROM record_aco
		WHERE order_ref = $1
		ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, lineQuery, orderRef)
	if err != nil {
		return nil, fmt.Errorf("query aco order %s: %w", orderRef, err)
	}
	defer rows.Close()

	var products []domain.AcoProductData
	for rows.Next() {
		var p domain.AcoProductData
		var required sql.NullInt64
		if err := rows.Scan(&p.ProductCode, &required); err != nil {
			return nil, fmt.Errorf("scan aco line: %w", err)
		}
		if required.Valid {
			v := int(required.Int64)
			p.RequiredQty = &v
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aco lines: %w", err)
	}

	for i := range products {
		pallets, err := r.acoPallets(ctx, orderRef, products[i].ProductCode)
		if err != nil {
			return nil, err
		}
		products[i].Pallets = pallets
	}
	return products, nil
}

func (r *reportRepository) acoPallets(ctx context.Context, orderRef, productCode string) ([]domain.PalletInfo, error) {
	const query = `
		SELECT plt_num, product_qty, to_char(generate_time, 'DD-Mon-YY')
		FROM record_palletinfo
		WHERE order_ref = $1 AND product_code = $2
		ORDER BY plt_num
	`
	rows, err := r.db.QueryContext(ctx, query, orderRef, productCode)
	if err != nil {
		return nil, fmt.Errorf("query pallets for %s/%s: %w", orderRef, productCode, err)
	}
	defer rows.Close()

	var pallets []domain.PalletInfo
	for rows.Next() {
		var pltNum, generated sql.NullString
		var qty sql.NullInt64
		if err := rows.Scan(&pltNum, &qty, &generated); err != nil {
			return nil, fmt.Errorf("scan pallet: %w", err)
		}
		var p domain.PalletInfo
		if pltNum.Valid {
			p.PltNum = &pltNum.String
		}
		if qty.Valid {
			v := int(qty.Int64)
			p.ProductQty = &v
		}
		if generated.Valid {
			p.GenerateTime = &generated.String
		}
		pallets = append(pallets, p)
	}
	return pallets, rows.Err()
}

// GrnReportPages returns one page per distinct material code under the
// GRN reference, in material-code order, with totals computed under the
// Round2 convention.
func (r *reportRepository) GrnReportPages(ctx context.Context, grnRef, userID string) ([]domain.GrnReportPageData, error) {
	const materialQuery = `
		SELECT DISTINCT material_code
		FROM record_grn
		WHERE grn_ref = $1
		ORDER BY material_code
	`
	rows, err := r.db.QueryContext(ctx, materialQuery, grnRef)
	if err != nil {
		return nil, fmt.Errorf("query grn materials %s: %w", grnRef, err)
	}
	defer rows.Close()

	var materials []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan material code: %w", err)
		}
		materials = append(materials, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	reportDate := time.Now().Format("02-Jan-2006")
	pages := make([]domain.GrnReportPageData, 0, len(materials))
	for _, material := range materials {
		page, err := r.grnPage(ctx, grnRef, userID, material, reportDate)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, nil
}

func (r *reportRepository) grnPage(ctx context.Context, grnRef, userID, material, reportDate string) (*domain.GrnReportPageData, error) {
	const query = `
		SELECT g.gross_weight, g.net_weight, g.pallet, g.package,
		       g.pallet_count, g.package_count,
		       COALESCE(s.supplier_name, ''), COALESCE(c.description, '')
		FROM record_grn g
		LEFT JOIN data_supplier s ON s.supplier_code = g.supplier_code
		LEFT JOIN data_code c ON c.code = g.material_code
		WHERE g.grn_ref = $1 AND g.material_code = $2
		ORDER BY g.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, grnRef, material)
	if err != nil {
		return nil, fmt.Errorf("query grn %s material %s: %w", grnRef, material, err)
	}
	defer rows.Close()

	page := &domain.GrnReportPageData{
		GrnRef:       grnRef,
		UserID:       userID,
		MaterialCode: material,
		ReportDate:   reportDate,
	}
	var grossSum, netSum float64
	for rows.Next() {
		var rec domain.GrnRecordDetail
		var pallet, pkg sql.NullString
		var palletCount, packageCount sql.NullInt64
		if err := rows.Scan(&rec.GrossWeight, &rec.NetWeight, &pallet, &pkg,
			&palletCount, &packageCount, &page.SupplierName, &page.MaterialDescription); err != nil {
			return nil, fmt.Errorf("scan grn record: %w", err)
		}
		if pallet.Valid {
			rec.Pallet = &pallet.String
		}
		if pkg.Valid {
			rec.PackageType = &pkg.String
		}
		if palletCount.Valid {
			v := int(palletCount.Int64)
			rec.PalletCount = &v
		}
		if packageCount.Valid {
			v := int(packageCount.Int64)
			rec.PackageCount = &v
		}
		grossSum += rec.GrossWeight
		netSum += rec.NetWeight
		page.Records = append(page.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grn records: %w", err)
	}

	page.TotalGrossWeight = domain.Round2(grossSum)
	page.TotalNetWeight = domain.Round2(netSum)
	page.WeightDifference = domain.WeightDifference(grossSum, netSum)
	return page, nil
}

// TransfersBetween loads raw transfer rows for the inclusive date range.
// Location aliasing is deliberately not done in SQL; the report engine
// owns that rule.
func (r *reportRepository) TransfersBetween(ctx context.Context, start, end string) (*domain.TransactionReportData, error) {
	const query = `
		SELECT to_char(t.tran_date, 'YYYY-MM-DD'), t.plt_num, t.product_code,
		       t.quantity, t.from_location, t.to_location,
		       COALESCE(o.name, ''), t.operator_id
		FROM record_transfer t
		LEFT JOIN data_operator o ON o.id = t.operator_id
		WHERE t.tran_date::date BETWEEN $1::date AND $2::date
		ORDER BY t.tran_date, t.plt_num
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query transfers %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	data := &domain.TransactionReportData{
		DateRange: domain.DateRange{StartDate: start, EndDate: end},
		Summary: domain.LocationSummary{
			Inbound:  make(map[string]int),
			Outbound: make(map[string]int),
		},
	}
	pallets := make(map[string]bool)
	for rows.Next() {
		var t domain.TransferRecord
		if err := rows.Scan(&t.TransferDate, &t.PalletNumber, &t.ProductCode,
			&t.Quantity, &t.FromLocation, &t.ToLocation, &t.OperatorName, &t.OperatorID); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		data.Transfers = append(data.Transfers, t)
		data.Summary.Outbound[t.FromLocation]++
		data.Summary.Inbound[t.ToLocation]++
		pallets[t.PalletNumber] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}

	data.TotalTransfers = len(data.Transfers)
	data.TotalPallets = len(pallets)
	return data, nil
}
