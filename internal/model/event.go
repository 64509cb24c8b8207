package model

import "time"

// Event represents a financial event for a portfolio company: an exit, a dividend
// or a valuation update of the fund's holding.
type Event struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"companyId"`
	CompanyName        string    `json:"companyName,omitempty"`
	Date               time.Time `json:"date"`
	Type               EventKind `json:"type"`
	CashFlowAmount     *float64  `json:"cashFlowAmount"`
	Currency           string    `json:"currency"`
	PercentHoldingSold *float64  `json:"percentHoldingSold"`
	HoldingValuation   *float64  `json:"holdingValuation"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
}

// EventFilter for querying events
type EventFilter struct {
	CompanyID string
}
