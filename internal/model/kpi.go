package model

import "time"

// KPI is a single dated measurement of a company metric (revenue, headcount, ...).
type KPI struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Date      time.Time `json:"date"`
	Units     string    `json:"units"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// KPIFilter for querying KPIs
type KPIFilter struct {
	CompanyID string
	Name      string
}

// KPISummary describes the series of one KPI for one company.
// Change is the relative change from the first to the latest value, nil when the
// first value is zero.
type KPISummary struct {
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Units       string    `json:"units"`
	Count       int       `json:"count"`
	FirstDate   time.Time `json:"firstDate"`
	FirstValue  float64   `json:"firstValue"`
	LatestDate  time.Time `json:"latestDate"`
	LatestValue float64   `json:"latestValue"`
	Mean        float64   `json:"mean"`
	Median      float64   `json:"median"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	StdDev      float64   `json:"stdDev"`
	Change      *float64  `json:"change"`
}
