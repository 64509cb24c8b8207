package request

// CreateCompanyRequest represents the request body for creating a portfolio company
type CreateCompanyRequest struct {
	Name        string   `json:"name"`
	YearFounded int      `json:"yearFounded"`
	Industries  []string `json:"industries"`
	Country     string   `json:"country"`
	Status      string   `json:"status"`
}

// UpdateCompanyRequest represents a partial company update; nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name        *string  `json:"name,omitempty"`
	YearFounded *int     `json:"yearFounded,omitempty"`
	Industries  []string `json:"industries,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Status      *string  `json:"status,omitempty"`
}
