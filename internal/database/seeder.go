package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"
)

// DataSeeder creates the warehouse schema and fills it with development
// data so the report endpoints have something to render.
type DataSeeder struct {
	db *sql.DB
}

func NewDataSeeder(db *sql.DB) *DataSeeder {
	return &DataSeeder{db: db}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS data_code (
		code TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS data_supplier (
		supplier_code TEXT PRIMARY KEY,
		supplier_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS data_operator (
		id INT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS record_aco (
		order_ref TEXT NOT NULL,
		code TEXT NOT NULL,
		required_qty INT,
		PRIMARY KEY (order_ref, code)
	)`,
	`CREATE TABLE IF NOT EXISTS record_palletinfo (
		plt_num TEXT PRIMARY KEY,
		order_ref TEXT,
		product_code TEXT NOT NULL,
		product_qty INT,
		generate_time TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS record_grn (
		grn_ref TEXT NOT NULL,
		material_code TEXT NOT NULL,
		supplier_code TEXT,
		gross_weight NUMERIC(10,2) NOT NULL,
		net_weight NUMERIC(10,2) NOT NULL,
		pallet TEXT,
		package TEXT,
		pallet_count INT,
		package_count INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS record_transfer (
		tran_date TIMESTAMPTZ NOT NULL,
		plt_num TEXT NOT NULL,
		product_code TEXT NOT NULL,
		quantity INT NOT NULL,
		from_location TEXT NOT NULL,
		to_location TEXT NOT NULL,
		operator_id INT NOT NULL
	)`,
}

// CreateSchema applies the warehouse tables, idempotently.
func (ds *DataSeeder) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := ds.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

var (
	seedProducts = []string{"MHL101", "MHL102", "SLAT20", "SLAT25", "TAV1", "TAV7"}
	seedPallets  = []string{"White Dry", "White Wet", "Chep Dry", "Chep Wet", "Euro"}
	seedPackages = []string{"Still", "Bag", "Tote", "Octo"}
	seedFrom     = []string{"await", "await_grn", "pipeline"}
	seedTo       = []string{"Production", "Fold Mill", "Pipe Extrusion", "Bulk Room", "Back Car Park"}
	seedNames    = []string{"Alex", "Jordan", "Sam", "Priya", "Marta"}
)

// Seed inserts development data: product master rows, suppliers and
// operators, one ACO order with pallets, one GRN with two materials and a
// week of transfers ending today.
func (ds *DataSeeder) Seed(ctx context.Context) error {
	start := time.Now()
	rng := rand.New(rand.NewSource(start.UnixNano()))

	for i, code := range seedProducts {
		if _, err := ds.db.ExecContext(ctx,
			`INSERT INTO data_code (code, description) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			code, fmt.Sprintf("Sample material %d", i+1)); err != nil {
			return fmt.Errorf("seed data_code: %w", err)
		}
	}
	if _, err := ds.db.ExecContext(ctx,
		`INSERT INTO data_supplier (supplier_code, supplier_name) VALUES ('SUP01', 'Acme Polymers Ltd') ON CONFLICT (supplier_code) DO NOTHING`); err != nil {
		return fmt.Errorf("seed data_supplier: %w", err)
	}
	for i, name := range seedNames {
		if _, err := ds.db.ExecContext(ctx,
			`INSERT INTO data_operator (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			5990+i, name); err != nil {
			return fmt.Errorf("seed data_operator: %w", err)
		}
	}

	orderRef := "280481"
	for i := 0; i < 3; i++ {
		code := seedProducts[i]
		if _, err := ds.db.ExecContext(ctx,
			`INSERT INTO record_aco (order_ref, code, required_qty) VALUES ($1, $2, $3)
			 ON CONFLICT (order_ref, code) DO NOTHING`,
			orderRef, code, 100+50*i); err != nil {
			return fmt.Errorf("seed record_aco: %w", err)
		}
		for p := 0; p < 10; p++ {
			plt := fmt.Sprintf("%s/%02d%02d", start.Format("020106"), i, p)
			if _, err := ds.db.ExecContext(ctx,
				`INSERT INTO record_palletinfo (plt_num, order_ref, product_code, product_qty, generate_time)
				 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (plt_num) DO NOTHING`,
				plt, orderRef, code, 20+rng.Intn(10), start.AddDate(0, 0, -p)); err != nil {
				return fmt.Errorf("seed record_palletinfo: %w", err)
			}
		}
	}

	grnRef := "GRN-77102"
	for _, material := range seedProducts[:2] {
		for i := 0; i < 8; i++ {
			gross := 300 + rng.Float64()*50
			if _, err := ds.db.ExecContext(ctx,
				`INSERT INTO record_grn (grn_ref, material_code, supplier_code, gross_weight, net_weight,
				                         pallet, package, pallet_count, package_count, created_at)
				 VALUES ($1, $2, 'SUP01', $3, $4, $5, $6, 1, 1, $7)`,
				grnRef, material, gross, gross-22.5,
				seedPallets[rng.Intn(len(seedPallets))],
				seedPackages[rng.Intn(len(seedPackages))],
				start.Add(time.Duration(i)*time.Minute)); err != nil {
				return fmt.Errorf("seed record_grn: %w", err)
			}
		}
	}

	for day := 0; day < 7; day++ {
		for i := 0; i < 5; i++ {
			if _, err := ds.db.ExecContext(ctx,
				`INSERT INTO record_transfer (tran_date, plt_num, product_code, quantity,
				                              from_location, to_location, operator_id)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				start.AddDate(0, 0, -day),
				fmt.Sprintf("%s/%d%d", start.Format("020106"), day, i),
				seedProducts[rng.Intn(len(seedProducts))],
				10+rng.Intn(20),
				seedFrom[rng.Intn(len(seedFrom))],
				seedTo[rng.Intn(len(seedTo))],
				5990+rng.Intn(len(seedNames))); err != nil {
				return fmt.Errorf("seed record_transfer: %w", err)
			}
		}
	}

	fmt.Printf("Seeded warehouse data in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// Clear truncates every seeded table.
func (ds *DataSeeder) Clear(ctx context.Context) error {
	for _, table := range []string{
		"record_transfer", "record_grn", "record_palletinfo",
		"record_aco", "data_operator", "data_supplier", "data_code",
	} {
		if _, err := ds.db.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
