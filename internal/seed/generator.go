// Package seed generates a synthetic but plausible venture portfolio: companies per fund,
// financing rounds with growing valuations, quarterly KPIs and an event timeline of
// valuation updates, dividends and exits.
//
// Output depends only on the seed and the reference date, so the same options always
// produce the same records.
package seed

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// Options controls the generated data set.
type Options struct {
	Seed             uint64
	CompaniesPerFund int
	Funds            []string
	// Now is the reference date; nothing is dated on or after it.
	Now time.Time
}

// Dataset is the generated portfolio, ready to be inserted in order.
type Dataset struct {
	Companies   []model.Company
	Investments []model.Investment
	KPIs        []model.KPI
	Events      []model.Event
}

var (
	industries = []string{
		"Information Technology", "Health Care", "Financials", "Communication Services",
		"Consumer Discretionary", "Industrials", "Real Estate", "Energy", "Materials",
		"Consumer Staples", "Utilities",
	}
	countries       = []string{"Singapore", "United States", "China", "Germany", "United Kingdom", "India"}
	statuses        = []string{model.CompanyStatusActive, model.CompanyStatusActive, model.CompanyStatusActive, model.CompanyStatusInactive}
	currencies      = []string{"USD", "SGD", "EUR"}
	roundStages     = []string{"Pre-Seed", "Seed", "Series A", "Series B", "Series C", "Series D+", "Growth Equity"}
	earlyTypes      = []string{"Equity", "SAFE Note", "Convertible Note"}
	eventKindWeight = []model.EventKind{
		model.EventValuationUpdate, model.EventValuationUpdate, model.EventValuationUpdate,
		model.EventDividend, model.EventExit,
	}

	namePrefixes = []string{
		"Apex", "Blue", "Bright", "Cedar", "Cobalt", "Crimson", "Delta", "Ember", "Falcon", "Granite",
		"Harbor", "Iris", "Juniper", "Kestrel", "Lumen", "Maple", "Nimbus", "Onyx", "Pioneer", "Quartz",
		"Raven", "Summit", "Tidal", "Umbra", "Vertex", "Willow", "Zenith",
	}
	nameSuffixes = []string{
		"Analytics", "Bio", "Dynamics", "Energy", "Health", "Labs", "Logistics", "Networks",
		"Robotics", "Systems", "Technologies", "Ventures", "Works",
	}
)

type kpiSpec struct {
	name  string
	units string
}

var kpiSpecs = []kpiSpec{
	{"Monthly Recurring Revenue (MRR)", "USD"},
	{"Annual Recurring Revenue (ARR)", "USD"},
	{"Customer Acquisition Cost (CAC)", "USD"},
	{"Customer Lifetime Value (LTV)", "USD"},
	{"Active Users", "Users"},
	{"Churn Rate", "%"},
}

type generator struct {
	rng     *rand.Rand
	idBytes *rand.ChaCha8
	today   time.Time
}

// Generate builds a Dataset from opts.
func Generate(opts Options) (*Dataset, error) {
	if opts.CompaniesPerFund < 1 {
		return nil, fmt.Errorf("companies per fund must be at least 1, got %d", opts.CompaniesPerFund)
	}
	if len(opts.Funds) == 0 {
		return nil, fmt.Errorf("at least one fund is required")
	}

	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], opts.Seed)
	g := &generator{
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		idBytes: rand.NewChaCha8(seed),
		today:   truncateDay(opts.Now),
	}

	ds := &Dataset{}
	names := make(map[string]bool)
	funds := slices.Clone(opts.Funds)
	slices.Sort(funds)

	for _, fund := range funds {
		for range opts.CompaniesPerFund {
			company := g.company(names)
			ds.Companies = append(ds.Companies, company)

			rounds := g.investments(fund, company)
			ds.Investments = append(ds.Investments, rounds...)
			if len(rounds) == 0 || company.Status != model.CompanyStatusActive {
				continue
			}
			ds.KPIs = append(ds.KPIs, g.kpis(company, rounds[0].Date)...)
			ds.Events = append(ds.Events, g.events(company, rounds)...)
		}
	}

	return ds, nil
}

func (g *generator) id() string {
	id, err := uuid.NewRandomFromReader(g.idBytes)
	if err != nil {
		// ChaCha8 reads never fail.
		panic(err)
	}
	return id.String()
}

func (g *generator) company(used map[string]bool) model.Company {
	var name string
	for {
		name = pick(g.rng, namePrefixes) + " " + pick(g.rng, nameSuffixes)
		if used[strings.ToLower(name)] {
			name = fmt.Sprintf("%s %d", name, g.rng.IntN(99)+1)
		}
		if !used[strings.ToLower(name)] {
			break
		}
	}
	used[strings.ToLower(name)] = true

	inds := slices.Clone(industries)
	g.rng.Shuffle(len(inds), func(i, j int) { inds[i], inds[j] = inds[j], inds[i] })
	inds = inds[:g.rng.IntN(3)+1]
	slices.Sort(inds)

	return model.Company{
		ID:          g.id(),
		Name:        name,
		YearFounded: 2010 + g.rng.IntN(12),
		Industries:  inds,
		Country:     pick(g.rng, countries),
		Status:      pick(g.rng, statuses),
		CreatedAt:   g.today,
	}
}

// investments generates up to five rounds, each six months to two years after the last,
// with growing round sizes and post-money valuations.
func (g *generator) investments(fund string, c model.Company) []model.Investment {
	var out []model.Investment

	last := time.Date(c.YearFounded, time.Month(6+g.rng.IntN(7)), 1+g.rng.IntN(28), 0, 0, 0, 0, time.UTC)
	lastValuation := uniform(g.rng, 500_000, 3_000_000)
	rounds := g.rng.IntN(5) + 1

	for round := 1; round <= rounds; round++ {
		date := last.AddDate(0, 0, 180+g.rng.IntN(551))
		if !date.Before(g.today) {
			break
		}

		size := uniform(g.rng, 0.5, 5.0) * lastValuation * 0.1 * (1 + float64(round)*0.5)
		size = math.Max(10_000, math.Round(size/10_000)*10_000)
		roundSize := math.Round(size * uniform(g.rng, 1.5, 4.0))
		postMoney := math.Round(lastValuation * uniform(g.rng, 1.5, 3.5))

		invType := "Equity"
		if round <= 2 {
			invType = pick(g.rng, earlyTypes)
		}

		out = append(out, model.Investment{
			ID:                 g.id(),
			Fund:               fund,
			CompanyID:          c.ID,
			CompanyName:        c.Name,
			Type:               invType,
			RoundNumber:        round,
			RoundStage:         roundStages[min(round, len(roundStages)-1)],
			Date:               date,
			Amount:             size,
			TotalRoundSize:     &roundSize,
			PostMoneyValuation: &postMoney,
			CreatedAt:          g.today,
		})

		last = date
		lastValuation = postMoney
	}

	return out
}

// kpis generates a quarterly series for two to four metrics, starting a few months after
// the first investment.
func (g *generator) kpis(c model.Company, firstInvestment time.Time) []model.KPI {
	specs := slices.Clone(kpiSpecs)
	g.rng.Shuffle(len(specs), func(i, j int) { specs[i], specs[j] = specs[j], specs[i] })
	specs = specs[:g.rng.IntN(3)+2]

	last := make(map[string]float64, len(specs))
	for _, s := range specs {
		switch s.units {
		case "USD":
			last[s.name] = uniform(g.rng, 1000, 100_000)
		case "Users":
			last[s.name] = uniform(g.rng, 50, 5000)
		default:
			last[s.name] = uniform(g.rng, 0.5, 5.0)
		}
	}

	var out []model.KPI
	for date := firstInvestment.AddDate(0, 0, 60+g.rng.IntN(61)); date.Before(g.today); date = date.AddDate(0, 0, 85+g.rng.IntN(11)) {
		for _, s := range specs {
			v := last[s.name] * uniform(g.rng, 0.85, 1.25)
			switch s.units {
			case "%":
				v = math.Min(math.Max(v, 0.1), 15.0)
			case "USD":
				v = math.Max(v, 100)
			default:
				v = math.Max(v, 10)
			}
			last[s.name] = v

			out = append(out, model.KPI{
				ID:        g.id(),
				CompanyID: c.ID,
				Name:      s.name,
				Value:     math.Round(v*100) / 100,
				Date:      date,
				Units:     s.units,
				CreatedAt: g.today,
			})
		}
	}

	return out
}

// events walks forward from six to twelve months after the last round, drifting the
// holding valuation and occasionally paying a dividend or exiting. A full exit ends the
// timeline.
func (g *generator) events(c model.Company, rounds []model.Investment) []model.Event {
	lastRound := rounds[len(rounds)-1]
	valuation := *lastRound.PostMoneyValuation
	holding := 1.0

	var out []model.Event
	for date := lastRound.Date.AddDate(0, 0, 180+g.rng.IntN(186)); date.Before(g.today); date = date.AddDate(0, 0, 90+g.rng.IntN(276)) {
		kind := pick(g.rng, eventKindWeight)
		valuation = math.Max(0, valuation*uniform(g.rng, 0.9, 1.6))

		ev := model.Event{
			ID:          g.id(),
			CompanyID:   c.ID,
			CompanyName: c.Name,
			Date:        date,
			Type:        kind,
			Currency:    pick(g.rng, currencies),
			CreatedAt:   g.today,
		}

		exited := false
		switch kind {
		case model.EventDividend:
			ev.CashFlowAmount = round2(valuation * uniform(g.rng, 0.01, 0.05))
			ev.HoldingValuation = round2(valuation)
			ev.Notes = "Dividend distribution"
		case model.EventExit:
			proceedsBase := valuation * uniform(g.rng, 0.8, 3.0)
			if g.rng.Float64() < 0.6 {
				sold := uniform(g.rng, 0.1, 0.6)
				ev.PercentHoldingSold = round4(sold)
				ev.CashFlowAmount = round2(proceedsBase * sold)
				valuation *= 1 - sold
				holding *= 1 - sold
				ev.HoldingValuation = round2(valuation)
				ev.Notes = fmt.Sprintf("Partial Exit (%.1f%%)", sold*100)
			} else {
				ev.PercentHoldingSold = round4(holding)
				ev.CashFlowAmount = round2(proceedsBase * holding)
				ev.HoldingValuation = round2(0)
				ev.Notes = "Full Exit"
				exited = true
			}
		default:
			ev.HoldingValuation = round2(valuation)
			ev.Notes = "Periodic valuation update"
		}

		out = append(out, ev)
		if exited {
			break
		}
	}

	return out
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}

func round4(v float64) *float64 {
	r := math.Round(v*10000) / 10000
	return &r
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
