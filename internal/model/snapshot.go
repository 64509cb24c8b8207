package model

import "time"

// FundReturnSnapshot is a stored copy of a fund's return metrics as of a date.
type FundReturnSnapshot struct {
	ID              string    `json:"id"`
	Fund            string    `json:"fund"`
	Date            time.Time `json:"date"`
	TotalInvested   float64   `json:"totalInvested"`
	TotalRealized   float64   `json:"totalRealized"`
	TotalUnrealized float64   `json:"totalUnrealized"`
	TotalValue      float64   `json:"totalValue"`
	MOIC            float64   `json:"moic"`
	IRR             *float64  `json:"irr"`
	XIRR            *float64  `json:"xirr"`
	CalculatedAt    time.Time `json:"calculatedAt"`
}

// FundReturnHistory groups the snapshots stored for one date.
type FundReturnHistory struct {
	Date  time.Time            `json:"date"`
	Funds []FundReturnSnapshot `json:"funds"`
}
