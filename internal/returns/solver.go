package returns

import (
	"math"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

const (
	newtonMaxIter = 100
	bisectMaxIter = 400
	// tolerance bounds the NPV residual of a Newton root, relative to the sum of
	// absolute cash flows.
	tolerance = 1e-10
	// stepTolerance stops iteration once a step is this small relative to max(1, |rate|).
	stepTolerance = 1e-12
	initialRate   = 0.1
	maxRate       = 1e300
	daysPerYear   = 365.0
)

// minRate is the smallest rate above -100%, where the discount factor is still defined.
var minRate = math.Nextafter(-1, 0)

// PeriodicIRR solves Σ amounts[i] / (1+r)^i = 0 for r, treating each entry as one period
// regardless of the time between them. ok is false when no finite rate is found.
func PeriodicIRR(amounts []float64) (rate float64, ok bool) {
	periods := make([]float64, len(amounts))
	for i := range periods {
		periods[i] = float64(i)
	}
	return solveRate(amounts, periods)
}

// XIRR solves for the annualised rate that zeroes the net present value of flows, with
// each flow discounted by the days elapsed since the first one over a 365-day year.
// flows must be sorted by date. ok is false when no finite rate is found.
func XIRR(flows []model.CashFlow) (rate float64, ok bool) {
	if len(flows) == 0 {
		return 0, false
	}
	base := flows[0].Date
	amounts := make([]float64, len(flows))
	periods := make([]float64, len(flows))
	for i, f := range flows {
		amounts[i] = f.Amount
		periods[i] = f.Date.Sub(base).Hours() / 24 / daysPerYear
	}
	return solveRate(amounts, periods)
}

// solveRate finds r such that Σ amounts[i] / (1+r)^periods[i] = 0.
// Newton-Raphson from 10% runs first; bisection over an expanding bracket is the fallback.
func solveRate(amounts, periods []float64) (float64, bool) {
	if len(amounts) < 2 || len(amounts) != len(periods) {
		return 0, false
	}

	scale := 0.0
	for _, a := range amounts {
		scale += math.Abs(a)
	}
	if scale == 0 {
		return 0, false
	}
	tol := tolerance * scale

	if rate, ok := newton(amounts, periods, tol); ok {
		return rate, true
	}
	return bisect(amounts, periods)
}

func npv(amounts, periods []float64, rate float64) float64 {
	sum := 0.0
	for i, a := range amounts {
		sum += a / math.Pow(1+rate, periods[i])
	}
	return sum
}

func newton(amounts, periods []float64, tol float64) (float64, bool) {
	rate := initialRate

	for iter := 0; iter < newtonMaxIter; iter++ {
		base := 1 + rate
		value, slope := 0.0, 0.0
		for i, a := range amounts {
			discount := math.Pow(base, periods[i])
			value += a / discount
			if periods[i] != 0 {
				slope -= periods[i] * a / (discount * base)
			}
		}

		if !finite(value) || !finite(slope) {
			return 0, false
		}
		if value == 0 {
			return rate, true
		}
		if slope == 0 {
			return 0, false
		}

		next := rate - value/slope
		if next <= -1 {
			// Halve the distance to -100% instead of stepping past it.
			next = (rate - 1) / 2
		}
		if !finite(next) {
			return 0, false
		}
		if math.Abs(next-rate) <= stepTolerance*math.Max(1, math.Abs(next)) {
			if residual := npv(amounts, periods, next); finite(residual) && math.Abs(residual) <= tol {
				return next, true
			}
			return 0, false
		}
		rate = next
	}

	return 0, false
}

// bisect brackets a sign change of the NPV between a rate just above -100% and an
// upper bound doubled up to maxRate, then halves the bracket until it is negligibly narrow.
func bisect(amounts, periods []float64) (float64, bool) {
	lo := math.NaN()
	var npvLo float64
	for _, candidate := range []float64{minRate, -0.999999, -0.9999, -0.99, -0.9, -0.5, 0} {
		v := npv(amounts, periods, candidate)
		if finite(v) {
			lo, npvLo = candidate, v
			break
		}
	}
	if math.IsNaN(lo) {
		return 0, false
	}
	if npvLo == 0 {
		return lo, true
	}

	hi := math.Max(lo+1, 1)
	npvHi := npv(amounts, periods, hi)
	for finite(npvHi) && sameSign(npvLo, npvHi) && hi < maxRate {
		hi *= 2
		npvHi = npv(amounts, periods, hi)
	}
	if !finite(npvHi) || sameSign(npvLo, npvHi) {
		return 0, false
	}
	if npvHi == 0 {
		return hi, true
	}

	for iter := 0; iter < bisectMaxIter; iter++ {
		mid := lo + (hi-lo)/2
		npvMid := npv(amounts, periods, mid)
		if !finite(npvMid) {
			return 0, false
		}
		if npvMid == 0 || hi-lo <= stepTolerance*math.Max(1, math.Abs(mid)) {
			return mid, true
		}
		if sameSign(npvLo, npvMid) {
			lo, npvLo = mid, npvMid
		} else {
			hi = mid
		}
	}

	rate := lo + (hi-lo)/2
	return rate, finite(rate)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
