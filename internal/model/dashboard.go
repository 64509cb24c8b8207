package model

// DashboardSummary holds the headline numbers shown on the home page.
// CurrentValue sums the latest known holding valuation of every active company.
type DashboardSummary struct {
	TotalCompanies  int     `json:"totalCompanies"`
	ActiveCompanies int     `json:"activeCompanies"`
	TotalInvested   float64 `json:"totalInvested"`
	CurrentValue    float64 `json:"currentValue"`
}

// RecentActivity lists the newest investments and events, newest first.
type RecentActivity struct {
	Investments []Investment `json:"investments"`
	Events      []Event      `json:"events"`
}

// ImportResult reports the outcome of a CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	IDs      []string `json:"ids"`
}
