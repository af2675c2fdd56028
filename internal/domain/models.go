package domain

// ==================== ACO ORDER REPORT ====================

// AcoProductData is one product block within an ACO order report.
type AcoProductData struct {
	ProductCode string       `json:"product_code"`
	RequiredQty *int         `json:"required_qty"`
	Pallets     []PalletInfo `json:"pallets"`
}

// PalletInfo is a single pallet row under an ACO product block.
// GenerateTime is already formatted by the data provider.
type PalletInfo struct {
	PltNum       *string `json:"plt_num"`
	ProductQty   *int    `json:"product_qty"`
	GenerateTime *string `json:"generate_time"`
}

// ==================== GRN RECEIVING REPORT ====================

// GrnReportPageData holds everything needed to fill one GRN sheet, i.e.
// one (GRN reference, material code) pair. A batch is an ordered list of
// these, one per material code sharing the GRN reference.
type GrnReportPageData struct {
	GrnRef              string            `json:"grn_ref"`
	UserID              string            `json:"user_id"`
	MaterialCode        string            `json:"material_code"`
	MaterialDescription string            `json:"material_description"`
	SupplierName        string            `json:"supplier_name"`
	ReportDate          string            `json:"report_date"`
	Records             []GrnRecordDetail `json:"records"`
	TotalGrossWeight    float64           `json:"total_gross_weight"`
	TotalNetWeight      float64           `json:"total_net_weight"`
	WeightDifference    float64           `json:"weight_difference"`
}

// GrnRecordDetail is one received pallet line on a GRN sheet. Pallet and
// PackageType are free-form labels classified by the report engine.
type GrnRecordDetail struct {
	GrossWeight  float64 `json:"gross_weight"`
	NetWeight    float64 `json:"net_weight"`
	Pallet       *string `json:"pallet"`
	PackageType  *string `json:"package_type"`
	PalletCount  *int    `json:"pallet_count"`
	PackageCount *int    `json:"package_count"`
}

// ==================== STOCK TRANSFER REPORT ====================

// DateRange bounds a transaction report. Dates arrive pre-formatted.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TransferRecord is one stock movement between two warehouse locations.
type TransferRecord struct {
	TransferDate string `json:"transfer_date"`
	PalletNumber string `json:"pallet_number"`
	ProductCode  string `json:"product_code"`
	Quantity     int    `json:"quantity"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	OperatorName string `json:"operator_name"`
	OperatorID   int    `json:"operator_id"`
}

// LocationSummary counts transfers into and out of each location over the
// report's date range, keyed by location name as stored (pre-aliasing).
type LocationSummary struct {
	Inbound  map[string]int `json:"inbound"`
	Outbound map[string]int `json:"outbound"`
}

// TransactionReportData is the full input for one stock-transfer report.
type TransactionReportData struct {
	DateRange      DateRange        `json:"date_range"`
	Transfers      []TransferRecord `json:"transfers"`
	Summary        LocationSummary  `json:"summary"`
	TotalTransfers int              `json:"total_transfers"`
	TotalPallets   int              `json:"total_pallets"`
}

// ==================== DELIVERY ====================

// ReportFile is the finished artifact handed to the delivery collaborator.
type ReportFile struct {
	Filename string
	MIME     string
	Data     []byte
}
