package returns

import (
	"sort"
	"time"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// Aggregator computes fund returns. The zero value is not usable; use NewAggregator.
type Aggregator struct {
	now func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock sets the clock used to date the unrealized terminal cash flow.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// NewAggregator creates an Aggregator using the wall clock unless overridden.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAggregator = NewAggregator()

// ComputeFundReturns computes the returns of fundID using the wall clock.
// See Aggregator.ComputeFundReturns.
func ComputeFundReturns(fundID string, investments []model.InvestmentRecord, events []model.EventRecord) model.FundReturn {
	return defaultAggregator.ComputeFundReturns(fundID, investments, events)
}

// latestValuation tracks the most recent event seen for a company.
type latestValuation struct {
	date  time.Time
	value float64
}

// ComputeFundReturns aggregates the returns of a single fund.
//
// investments and events are the complete record sets for all funds and companies;
// filtering happens here. Events count for the fund when their company received at least
// one investment from it.
//
// The result never reports an error: a fund without investments yields zero totals,
// a MOIC of 0 and no IRR. IRR and XIRR are nil when the timeline has fewer than two
// entries, lacks a positive or a negative amount, or the solver does not converge.
func (a *Aggregator) ComputeFundReturns(fundID string, investments []model.InvestmentRecord, events []model.EventRecord) model.FundReturn {
	result := model.FundReturn{
		Fund:      fundID,
		CashFlows: []model.CashFlow{},
	}

	var flows []model.CashFlow
	companies := make([]string, 0)
	invested := make(map[string]bool)

	for _, inv := range investments {
		if inv.Fund != fundID {
			continue
		}
		result.TotalInvested += inv.Amount
		flows = append(flows, model.CashFlow{Date: inv.Date, Amount: -inv.Amount})
		if !invested[inv.CompanyID] {
			invested[inv.CompanyID] = true
			companies = append(companies, inv.CompanyID)
		}
	}

	if len(flows) == 0 {
		return result
	}
	result.CompanyCount = len(companies)

	latest := make(map[string]latestValuation, len(companies))
	for _, ev := range events {
		if !invested[ev.CompanyID] {
			continue
		}

		if ev.Kind.Realized() && ev.CashFlowAmount != nil {
			result.TotalRealized += *ev.CashFlowAmount
			flows = append(flows, model.CashFlow{Date: ev.Date, Amount: *ev.CashFlowAmount})
		}

		// Equal dates replace the current entry so the later record wins.
		current, seen := latest[ev.CompanyID]
		if !seen || !ev.Date.Before(current.date) {
			value := 0.0
			if ev.HoldingValuation != nil {
				value = *ev.HoldingValuation
			}
			latest[ev.CompanyID] = latestValuation{date: ev.Date, value: value}
		}
	}

	for _, companyID := range companies {
		result.TotalUnrealized += latest[companyID].value
	}

	result.TotalValue = result.TotalRealized + result.TotalUnrealized
	if result.TotalInvested > 0 {
		result.MOIC = result.TotalValue / result.TotalInvested
	}

	if result.TotalUnrealized > 0 {
		flows = append(flows, model.CashFlow{
			Date:   a.terminalDate(flows),
			Amount: result.TotalUnrealized,
		})
	}

	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].Date.Before(flows[j].Date)
	})
	result.CashFlows = flows

	if computable(flows) {
		if rate, ok := PeriodicIRR(amounts(flows)); ok {
			result.IRR = &rate
		}
		if rate, ok := XIRR(flows); ok {
			result.XIRR = &rate
		}
	}

	return result
}

// terminalDate returns today's date, or the day after the latest flow when today is
// not strictly later than every existing flow.
func (a *Aggregator) terminalDate(flows []model.CashFlow) time.Time {
	now := a.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	latest := flows[0].Date
	for _, f := range flows[1:] {
		if f.Date.After(latest) {
			latest = f.Date
		}
	}

	if today.After(latest) {
		return today
	}
	return latest.AddDate(0, 0, 1)
}

// computable reports whether a rate of return can exist for flows: at least two entries
// with at least one strictly positive and one strictly negative amount.
func computable(flows []model.CashFlow) bool {
	if len(flows) < 2 {
		return false
	}
	hasNeg, hasPos := false, false
	for _, f := range flows {
		if f.Amount < 0 {
			hasNeg = true
		}
		if f.Amount > 0 {
			hasPos = true
		}
	}
	return hasNeg && hasPos
}

func amounts(flows []model.CashFlow) []float64 {
	out := make([]float64, len(flows))
	for i, f := range flows {
		out[i] = f.Amount
	}
	return out
}
