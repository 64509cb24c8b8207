package request

type CreateKPIRequest struct {
	CompanyID string  `json:"companyId"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Date      string  `json:"date"`
	Units     string  `json:"units"`
	Notes     string  `json:"notes"`
}

type UpdateKPIRequest struct {
	CompanyID *string  `json:"companyId,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Date      *string  `json:"date,omitempty"`
	Units     *string  `json:"units,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}
