package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

var today = time.Date(2025, 6, 30, 9, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestReturnsService_GetAllFundReturns verifies the service feeds stored records to the
// return calculation and reports every configured fund.
//
// WHY: The returns page lists all funds, including those without investments, in the
// configured order. Records stored in SQLite must reach the calculation unchanged.
func TestReturnsService_GetAllFundReturns(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestReturnsService(t, db, today)

	company := testutil.CreateCompany(t, db, "Acme Robotics")
	testutil.NewInvestment(company.ID).WithDate(day(2024, 1, 1)).WithAmount(100000).Build(t, db)
	testutil.NewEvent(company.ID).ValuationUpdate(150000).WithDate(day(2024, 12, 31)).Build(t, db)

	results, err := svc.GetAllFundReturns(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)

	fund1 := results[0]
	assert.Equal(t, "Yang Fund 1", fund1.Fund)
	assert.Equal(t, 100000.0, fund1.TotalInvested)
	assert.Equal(t, 0.0, fund1.TotalRealized)
	assert.Equal(t, 150000.0, fund1.TotalUnrealized)
	assert.Equal(t, 150000.0, fund1.TotalValue)
	assert.InDelta(t, 1.5, fund1.MOIC, 1e-9)
	require.NotNil(t, fund1.IRR)
	assert.InDelta(t, 0.5, *fund1.IRR, 1e-6)
	require.Len(t, fund1.CashFlows, 2)
	assert.Equal(t, day(2025, 6, 30), fund1.CashFlows[1].Date)

	for _, r := range results[1:] {
		assert.Equal(t, 0.0, r.TotalInvested, r.Fund)
		assert.Equal(t, 0.0, r.MOIC, r.Fund)
		assert.Nil(t, r.IRR, r.Fund)
		assert.Empty(t, r.CashFlows, r.Fund)
	}
}

func TestReturnsService_GetFundReturn(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestReturnsService(t, db, today)

	company := testutil.CreateCompany(t, db, "Beta Labs")
	testutil.NewInvestment(company.ID).WithFund("Yang Fund 2").WithAmount(50000).Build(t, db)
	testutil.NewEvent(company.ID).Dividend(5000).WithDate(day(2024, 6, 1)).Build(t, db)

	t.Run("configured fund", func(t *testing.T) {
		r, err := svc.GetFundReturn(ctx, "Yang Fund 2")
		require.NoError(t, err)
		assert.Equal(t, 50000.0, r.TotalInvested)
		assert.Equal(t, 5000.0, r.TotalRealized)
		assert.Equal(t, 1, r.CompanyCount)
	})

	t.Run("unknown fund", func(t *testing.T) {
		_, err := svc.GetFundReturn(ctx, "Yang Fund 9")
		assert.ErrorIs(t, err, apperrors.ErrFundNotFound)
	})
}

// TestReturnsService_ReturnsAsOf checks that records after the cut-off are ignored.
//
// WHY: Backfilled snapshots must show what the fund looked like on that date, not leak
// later valuations into earlier history.
func TestReturnsService_ReturnsAsOf(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestReturnsService(t, db, today)

	company := testutil.CreateCompany(t, db, "Gamma Energy")
	testutil.NewInvestment(company.ID).WithDate(day(2024, 1, 1)).WithAmount(100000).Build(t, db)
	testutil.NewInvestment(company.ID).WithDate(day(2024, 9, 1)).WithAmount(40000).WithRound(2, "Series A").Build(t, db)
	testutil.NewEvent(company.ID).ValuationUpdate(300000).WithDate(day(2024, 12, 31)).Build(t, db)

	results, err := svc.ReturnsAsOf(ctx, day(2024, 6, 30))
	require.NoError(t, err)

	fund1 := results[0]
	assert.Equal(t, 100000.0, fund1.TotalInvested)
	assert.Equal(t, 0.0, fund1.TotalUnrealized)
	assert.Nil(t, fund1.IRR)

	results, err = svc.ReturnsAsOf(ctx, day(2025, 1, 1))
	require.NoError(t, err)

	fund1 = results[0]
	assert.Equal(t, 140000.0, fund1.TotalInvested)
	assert.Equal(t, 300000.0, fund1.TotalUnrealized)
	// the terminal flow is dated on the cut-off day
	require.NotEmpty(t, fund1.CashFlows)
	assert.Equal(t, day(2025, 1, 1), fund1.CashFlows[len(fund1.CashFlows)-1].Date)
}
