package model

import "time"

// EventKind identifies the type of a company event.
// Only the three kinds below are valid; each has different rules for which amounts are present.
type EventKind string

const (
	EventExit            EventKind = "Exit"
	EventDividend        EventKind = "Dividend"
	EventValuationUpdate EventKind = "Valuation Update"
)

// EventKinds lists every valid event kind in display order.
var EventKinds = []EventKind{EventExit, EventDividend, EventValuationUpdate}

// Valid reports whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventExit, EventDividend, EventValuationUpdate:
		return true
	}
	return false
}

// Realized reports whether events of this kind return cash to the fund.
func (k EventKind) Realized() bool {
	return k == EventExit || k == EventDividend
}

// InvestmentRecord is the minimal view of an investment needed to compute fund returns.
// Amount is the fund's cash outflow and is always positive.
type InvestmentRecord struct {
	Fund      string
	CompanyID string
	Date      time.Time
	Amount    float64
}

// EventRecord is the minimal view of a company event needed to compute fund returns.
// CashFlowAmount is set for Exit and Dividend events. HoldingValuation is the fund's
// remaining stake value after the event, when known.
type EventRecord struct {
	CompanyID        string
	Date             time.Time
	Kind             EventKind
	CashFlowAmount   *float64
	HoldingValuation *float64
}

// CashFlow is one dated entry of a fund's return timeline.
// Negative amounts are money invested, positive amounts are money returned or held.
type CashFlow struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// FundReturn holds the aggregated return metrics of a single fund.
// IRR is the periodic rate over the ordered cash-flow sequence, XIRR the annualised rate
// weighted by actual dates. Both are nil when the timeline cannot produce a rate.
type FundReturn struct {
	Fund            string     `json:"fund"`
	TotalInvested   float64    `json:"totalInvested"`
	TotalRealized   float64    `json:"totalRealized"`
	TotalUnrealized float64    `json:"totalUnrealized"`
	TotalValue      float64    `json:"totalValue"`
	MOIC            float64    `json:"moic"`
	IRR             *float64   `json:"irr"`
	XIRR            *float64   `json:"xirr"`
	CompanyCount    int        `json:"companyCount"`
	CashFlows       []CashFlow `json:"cashFlows"`
}
