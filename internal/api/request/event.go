package request

type CreateEventRequest struct {
	CompanyID          string   `json:"companyId"`
	Date               string   `json:"date"`
	Type               string   `json:"type"`
	CashFlowAmount     *float64 `json:"cashFlowAmount,omitempty"`
	Currency           string   `json:"currency"`
	PercentHoldingSold *float64 `json:"percentHoldingSold,omitempty"`
	HoldingValuation   *float64 `json:"holdingValuation,omitempty"`
	Notes              string   `json:"notes"`
}

// UpdateEventRequest represents a partial event update.
// When Type is set the three amount fields replace the stored ones, so omitted amounts
// are cleared; otherwise only the amounts that are present are changed.
type UpdateEventRequest struct {
	CompanyID          *string  `json:"companyId,omitempty"`
	Date               *string  `json:"date,omitempty"`
	Type               *string  `json:"type,omitempty"`
	CashFlowAmount     *float64 `json:"cashFlowAmount,omitempty"`
	Currency           *string  `json:"currency,omitempty"`
	PercentHoldingSold *float64 `json:"percentHoldingSold,omitempty"`
	HoldingValuation   *float64 `json:"holdingValuation,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
}
