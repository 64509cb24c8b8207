package request

type CreateInvestmentRequest struct {
	Fund               string   `json:"fund"`
	CompanyID          string   `json:"companyId"`
	Type               string   `json:"type"`
	RoundNumber        int      `json:"roundNumber"`
	RoundStage         string   `json:"roundStage"`
	Date               string   `json:"date"`
	Amount             float64  `json:"amount"`
	TotalRoundSize     *float64 `json:"totalRoundSize,omitempty"`
	PostMoneyValuation *float64 `json:"postMoneyValuation,omitempty"`
}

type UpdateInvestmentRequest struct {
	Fund               *string  `json:"fund,omitempty"`
	CompanyID          *string  `json:"companyId,omitempty"`
	Type               *string  `json:"type,omitempty"`
	RoundNumber        *int     `json:"roundNumber,omitempty"`
	RoundStage         *string  `json:"roundStage,omitempty"`
	Date               *string  `json:"date,omitempty"`
	Amount             *float64 `json:"amount,omitempty"`
	TotalRoundSize     *float64 `json:"totalRoundSize,omitempty"`
	PostMoneyValuation *float64 `json:"postMoneyValuation,omitempty"`
}
