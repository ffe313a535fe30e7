package finance

// =============================================================================
// ONE-TIME ACQUISITION COSTS
// =============================================================================

// Default one-time fee amounts (CAD).
const (
	DefaultNotaryFee     = 2000.0
	DefaultInspectionFee = 800.0
	DefaultAppraisalFee  = 500.0
	DefaultAccountingFee = 500.0
)

// Cost item display labels.
const (
	CostLabelDownPayment   = "Mise de fonds"
	CostLabelTransferTax   = "Droits de mutation"
	CostLabelNotary        = "Frais de notaire"
	CostLabelInspection    = "Inspection"
	CostLabelAppraisal     = "Évaluation bancaire"
	CostLabelAccounting    = "Honoraires comptables"
	CostLabelInitialWork   = "Travaux initiaux"
	CostLabelFinancingFees = "Frais de financement"
)

// CostInput bundles the inputs of the initial-cost aggregation.
type CostInput struct {
	Price          float64 `json:"price"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	NotaryFee      float64 `json:"notary_fee"`
	InspectionFee  float64 `json:"inspection_fee"`
	AppraisalFee   float64 `json:"appraisal_fee"`
	AccountingFee  float64 `json:"accounting_fee"`
	InitialWork    float64 `json:"initial_work"`
	FinancingFees  float64 `json:"financing_fees"`
	Jurisdiction   string  `json:"jurisdiction"`
}

// CostItem is one labeled line of the acquisition-cost breakdown.
type CostItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CostBreakdown lists every one-time acquisition cost in display order plus
// the computed total. Built once per analysis run and never mutated.
type CostBreakdown struct {
	Items []CostItem `json:"items"`
	Total float64    `json:"total"`
}

// Amount returns the amount for a cost label, 0 when absent.
func (b CostBreakdown) Amount(label string) float64 {
	for _, item := range b.Items {
		if item.Label == label {
			return item.Amount
		}
	}
	return 0
}

// InitialCosts aggregates the one-time acquisition costs: down payment,
// transfer tax for the jurisdiction, and the fixed fee amounts.
func InitialCosts(in CostInput) CostBreakdown {
	downPayment := in.Price * (in.DownPaymentPct / 100)
	transferTax := TransferTax(in.Price, in.Jurisdiction)

	items := []CostItem{
		{CostLabelDownPayment, downPayment},
		{CostLabelTransferTax, transferTax},
		{CostLabelNotary, in.NotaryFee},
		{CostLabelInspection, in.InspectionFee},
		{CostLabelAppraisal, in.AppraisalFee},
		{CostLabelAccounting, in.AccountingFee},
		{CostLabelInitialWork, in.InitialWork},
		{CostLabelFinancingFees, in.FinancingFees},
	}

	total := 0.0
	for _, item := range items {
		total += item.Amount
	}

	return CostBreakdown{Items: items, Total: total}
}
