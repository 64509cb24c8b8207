package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

var testCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// CompanyBuilder provides a fluent interface for creating test companies.
//
// Example usage:
//
//	// Simple creation with defaults
//	company := testutil.NewCompany().Build(t, db)
//
//	// Customized company
//	company := testutil.NewCompany().
//	    WithName("Acme Robotics").
//	    WithIndustries("Industrials").
//	    Inactive().
//	    Build(t, db)
type CompanyBuilder struct {
	ID          string
	Name        string
	YearFounded int
	Industries  []string
	Country     string
	Status      string
}

// NewCompany creates a CompanyBuilder with sensible defaults.
func NewCompany() *CompanyBuilder {
	return &CompanyBuilder{
		ID:          MakeID(),
		Name:        MakeCompanyName("Test Company"),
		YearFounded: 2018,
		Industries:  []string{"Information Technology"},
		Country:     "Singapore",
		Status:      model.CompanyStatusActive,
	}
}

// WithID sets a custom ID.
func (b *CompanyBuilder) WithID(id string) *CompanyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *CompanyBuilder) WithName(name string) *CompanyBuilder {
	b.Name = name
	return b
}

// WithIndustries sets the industry list.
func (b *CompanyBuilder) WithIndustries(industries ...string) *CompanyBuilder {
	b.Industries = industries
	return b
}

// WithCountry sets the country of establishment.
func (b *CompanyBuilder) WithCountry(country string) *CompanyBuilder {
	b.Country = country
	return b
}

// Inactive marks the company as inactive.
func (b *CompanyBuilder) Inactive() *CompanyBuilder {
	b.Status = model.CompanyStatusInactive
	return b
}

// Build creates the company in the database and returns it.
func (b *CompanyBuilder) Build(t *testing.T, db *sql.DB) model.Company {
	t.Helper()

	query := `
		INSERT INTO company (id, name, year_founded, industry_classification, establishment_country, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.YearFounded, strings.Join(b.Industries, ", "),
		b.Country, b.Status, testCreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test company: %v", err)
	}

	return model.Company{
		ID:          b.ID,
		Name:        b.Name,
		YearFounded: b.YearFounded,
		Industries:  b.Industries,
		Country:     b.Country,
		Status:      b.Status,
		CreatedAt:   testCreatedAt,
	}
}

// CreateCompany creates an active company with the given name and default values.
//
// Example usage:
//
//	company := testutil.CreateCompany(t, db, "Acme Robotics")
func CreateCompany(t *testing.T, db *sql.DB, name string) model.Company {
	t.Helper()
	return NewCompany().WithName(name).Build(t, db)
}

// InvestmentBuilder provides a fluent interface for creating test investments.
type InvestmentBuilder struct {
	ID                 string
	Fund               string
	CompanyID          string
	Type               string
	RoundNumber        int
	RoundStage         string
	Date               time.Time
	Amount             float64
	TotalRoundSize     *float64
	PostMoneyValuation *float64
}

// NewInvestment creates an InvestmentBuilder for a 100,000 seed round of Yang Fund 1.
func NewInvestment(companyID string) *InvestmentBuilder {
	return &InvestmentBuilder{
		ID:          MakeID(),
		Fund:        "Yang Fund 1",
		CompanyID:   companyID,
		Type:        "Equity",
		RoundNumber: 1,
		RoundStage:  "Seed",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:      100000,
	}
}

// WithFund sets the investing fund.
func (b *InvestmentBuilder) WithFund(fund string) *InvestmentBuilder {
	b.Fund = fund
	return b
}

// WithDate sets the investment date.
func (b *InvestmentBuilder) WithDate(date time.Time) *InvestmentBuilder {
	b.Date = date
	return b
}

// WithAmount sets the invested amount.
func (b *InvestmentBuilder) WithAmount(amount float64) *InvestmentBuilder {
	b.Amount = amount
	return b
}

// WithRound sets the round number and stage.
func (b *InvestmentBuilder) WithRound(number int, stage string) *InvestmentBuilder {
	b.RoundNumber = number
	b.RoundStage = stage
	return b
}

// WithPostMoneyValuation sets the post-money valuation of the round.
func (b *InvestmentBuilder) WithPostMoneyValuation(v float64) *InvestmentBuilder {
	b.PostMoneyValuation = &v
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	query := `
		INSERT INTO investment (id, fund_name, company_id, investment_type, round_number, round_stage,
		                        date, amount, total_round_size, post_money_valuation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Fund, b.CompanyID, b.Type, b.RoundNumber, b.RoundStage,
		b.Date.Format("2006-01-02"), b.Amount, b.TotalRoundSize, b.PostMoneyValuation,
		testCreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:                 b.ID,
		Fund:               b.Fund,
		CompanyID:          b.CompanyID,
		Type:               b.Type,
		RoundNumber:        b.RoundNumber,
		RoundStage:         b.RoundStage,
		Date:               b.Date,
		Amount:             b.Amount,
		TotalRoundSize:     b.TotalRoundSize,
		PostMoneyValuation: b.PostMoneyValuation,
		CreatedAt:          testCreatedAt,
	}
}

// EventBuilder provides a fluent interface for creating test events.
//
// Example usage:
//
//	testutil.NewEvent(company.ID).
//	    Exit(150000, 0.5, 100000).
//	    WithDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type EventBuilder struct {
	ID                 string
	CompanyID          string
	Date               time.Time
	Type               model.EventKind
	CashFlowAmount     *float64
	Currency           string
	PercentHoldingSold *float64
	HoldingValuation   *float64
	Notes              string
}

// NewEvent creates an EventBuilder for a valuation update of 100,000.
func NewEvent(companyID string) *EventBuilder {
	v := 100000.0
	return &EventBuilder{
		ID:               MakeID(),
		CompanyID:        companyID,
		Date:             time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Type:             model.EventValuationUpdate,
		Currency:         "USD",
		HoldingValuation: &v,
	}
}

// WithDate sets the event date.
func (b *EventBuilder) WithDate(date time.Time) *EventBuilder {
	b.Date = date
	return b
}

// ValuationUpdate makes the event a valuation update of the given holding value.
func (b *EventBuilder) ValuationUpdate(valuation float64) *EventBuilder {
	b.Type = model.EventValuationUpdate
	b.CashFlowAmount = nil
	b.PercentHoldingSold = nil
	b.HoldingValuation = &valuation
	return b
}

// Dividend makes the event a dividend paying cash.
func (b *EventBuilder) Dividend(cash float64) *EventBuilder {
	b.Type = model.EventDividend
	b.CashFlowAmount = &cash
	b.PercentHoldingSold = nil
	b.HoldingValuation = nil
	return b
}

// Exit makes the event an exit with the given proceeds, fraction sold and remaining valuation.
func (b *EventBuilder) Exit(cash, percentSold, remaining float64) *EventBuilder {
	b.Type = model.EventExit
	b.CashFlowAmount = &cash
	b.PercentHoldingSold = &percentSold
	b.HoldingValuation = &remaining
	return b
}

// Build creates the event in the database and returns it.
func (b *EventBuilder) Build(t *testing.T, db *sql.DB) model.Event {
	t.Helper()

	query := `
		INSERT INTO event (id, company_id, date, type, cash_flow_amount, currency,
		                   percent_holding_sold, holding_valuation, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.CompanyID, b.Date.Format("2006-01-02"), string(b.Type),
		b.CashFlowAmount, b.Currency, b.PercentHoldingSold, b.HoldingValuation, b.Notes,
		testCreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return model.Event{
		ID:                 b.ID,
		CompanyID:          b.CompanyID,
		Date:               b.Date,
		Type:               b.Type,
		CashFlowAmount:     b.CashFlowAmount,
		Currency:           b.Currency,
		PercentHoldingSold: b.PercentHoldingSold,
		HoldingValuation:   b.HoldingValuation,
		Notes:              b.Notes,
		CreatedAt:          testCreatedAt,
	}
}

// KPIBuilder provides a fluent interface for creating test KPI values.
type KPIBuilder struct {
	ID        string
	CompanyID string
	Name      string
	Value     float64
	Date      time.Time
	Units     string
}

// NewKPI creates a KPIBuilder for an ARR value.
func NewKPI(companyID string) *KPIBuilder {
	return &KPIBuilder{
		ID:        MakeID(),
		CompanyID: companyID,
		Name:      "ARR",
		Value:     1000,
		Date:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Units:     "USD",
	}
}

// WithName sets the KPI name.
func (b *KPIBuilder) WithName(name string) *KPIBuilder {
	b.Name = name
	return b
}

// WithValue sets the value and date of the measurement.
func (b *KPIBuilder) WithValue(value float64, date time.Time) *KPIBuilder {
	b.Value = value
	b.Date = date
	return b
}

// Build creates the KPI in the database and returns it.
func (b *KPIBuilder) Build(t *testing.T, db *sql.DB) model.KPI {
	t.Helper()

	query := `
		INSERT INTO kpi (id, company_id, name, value, date, units, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, '', ?)
	`

	_, err := db.Exec(query, b.ID, b.CompanyID, b.Name, b.Value, b.Date.Format("2006-01-02"),
		b.Units, testCreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test kpi: %v", err)
	}

	return model.KPI{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Value:     b.Value,
		Date:      b.Date,
		Units:     b.Units,
		CreatedAt: testCreatedAt,
	}
}
