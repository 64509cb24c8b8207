package model

import "time"

// Company statuses.
const (
	CompanyStatusActive   = "Active"
	CompanyStatusInactive = "Inactive"
)

// CompanyStatuses lists the valid company statuses.
var CompanyStatuses = []string{CompanyStatusActive, CompanyStatusInactive}

// Company represents a portfolio company from the database.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	YearFounded int       `json:"yearFounded"`
	Industries  []string  `json:"industries"`
	Country     string    `json:"country"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CompanyFilter for querying companies
type CompanyFilter struct {
	Status string
}

// CompanyDetail bundles a company with everything recorded against it.
type CompanyDetail struct {
	Company
	Investments   []Investment `json:"investments"`
	Events        []Event      `json:"events"`
	KPIs          []KPI        `json:"kpis"`
	TotalInvested float64      `json:"totalInvested"`
}
