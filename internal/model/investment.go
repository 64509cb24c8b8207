package model

import "time"

// Investment represents a single financing round participation by a fund.
type Investment struct {
	ID                 string    `json:"id"`
	Fund               string    `json:"fund"`
	CompanyID          string    `json:"companyId"`
	CompanyName        string    `json:"companyName,omitempty"`
	Type               string    `json:"type"`
	RoundNumber        int       `json:"roundNumber"`
	RoundStage         string    `json:"roundStage"`
	Date               time.Time `json:"date"`
	Amount             float64   `json:"amount"`
	TotalRoundSize     *float64  `json:"totalRoundSize"`
	PostMoneyValuation *float64  `json:"postMoneyValuation"`
	CreatedAt          time.Time `json:"createdAt"`
}

// InvestmentFilter for querying investments. Empty fields are not filtered on.
type InvestmentFilter struct {
	Fund      string
	CompanyID string
}
