// Package format renders return metrics as display strings.
//
// Currency amounts go through go-money so grouping and symbols follow the currency.
// Multiples and rates are rounded with decimal arithmetic to avoid binary float
// artefacts such as "2.3499999x".
package format

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// Missing is rendered for undefined or non-finite values.
const Missing = "-"

// DefaultCurrency is used when a currency code is empty or unknown to go-money.
const DefaultCurrency = money.USD

// Currency renders v as a currency amount, e.g. "$1,234.56".
func Currency(v float64, code string) string {
	if !finite(v) {
		return Missing
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		code = DefaultCurrency
		cur = money.GetCurrency(code)
	}

	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// CurrencyPtr renders a nullable amount, returning Missing for nil.
func CurrencyPtr(v *float64, code string) string {
	if v == nil {
		return Missing
	}
	return Currency(*v, code)
}

// Multiple renders a ratio with two decimals and an "x" suffix, e.g. "2.35x".
func Multiple(v float64) string {
	if !finite(v) {
		return Missing
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "x"
}

// Percentage renders a fractional rate as a percentage with one decimal,
// e.g. 0.123 becomes "12.3%". nil renders as Missing.
func Percentage(v *float64) string {
	if v == nil || !finite(*v) {
		return Missing
	}
	return decimal.NewFromFloat(*v).Shift(2).StringFixed(1) + "%"
}

// FundReturn holds the display strings of a model.FundReturn.
type FundReturn struct {
	TotalInvested   string `json:"totalInvested"`
	TotalRealized   string `json:"totalRealized"`
	TotalUnrealized string `json:"totalUnrealized"`
	TotalValue      string `json:"totalValue"`
	MOIC            string `json:"moic"`
	IRR             string `json:"irr"`
	XIRR            string `json:"xirr"`
}

// FundReturnDisplay formats every metric of r in the given currency.
func FundReturnDisplay(r model.FundReturn, code string) FundReturn {
	return FundReturn{
		TotalInvested:   Currency(r.TotalInvested, code),
		TotalRealized:   Currency(r.TotalRealized, code),
		TotalUnrealized: Currency(r.TotalUnrealized, code),
		TotalValue:      Currency(r.TotalValue, code),
		MOIC:            Multiple(r.MOIC),
		IRR:             Percentage(r.IRR),
		XIRR:            Percentage(r.XIRR),
	}
}

// Round rounds v to places decimals using decimal arithmetic.
func Round(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundPtr rounds a nullable value.
func RoundPtr(v *float64, places int32) *float64 {
	if v == nil {
		return nil
	}
	r := Round(*v, places)
	return &r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
