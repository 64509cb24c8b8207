package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

// TestDashboardService_Summary verifies the headline numbers.
//
// WHY: Current value must use only the latest valuation of each active company;
// inactive companies and superseded valuations must not inflate it.
func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	active := testutil.CreateCompany(t, db, "Willow Energy")
	inactive := testutil.NewCompany().WithName("Xenon Retail").Inactive().Build(t, db)

	testutil.NewInvestment(active.ID).WithAmount(100000).Build(t, db)
	testutil.NewInvestment(inactive.ID).WithAmount(50000).Build(t, db)

	testutil.NewEvent(active.ID).ValuationUpdate(100000).WithDate(day(2024, 6, 30)).Build(t, db)
	testutil.NewEvent(active.ID).ValuationUpdate(200000).WithDate(day(2024, 12, 31)).Build(t, db)
	testutil.NewEvent(inactive.ID).ValuationUpdate(999).WithDate(day(2024, 12, 31)).Build(t, db)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCompanies)
	assert.Equal(t, 1, summary.ActiveCompanies)
	assert.Equal(t, 150000.0, summary.TotalInvested)
	assert.Equal(t, 200000.0, summary.CurrentValue)
}

func TestDashboardService_Summary_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalCompanies)
	assert.Zero(t, summary.TotalInvested)
	assert.Zero(t, summary.CurrentValue)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	company := testutil.CreateCompany(t, db, "Yarrow Labs")
	testutil.NewInvestment(company.ID).WithDate(day(2023, 1, 1)).Build(t, db)
	newest := testutil.NewInvestment(company.ID).WithDate(day(2024, 5, 1)).WithRound(2, "Series A").Build(t, db)
	testutil.NewEvent(company.ID).WithDate(day(2024, 1, 1)).Build(t, db)
	latestEvent := testutil.NewEvent(company.ID).WithDate(day(2024, 8, 1)).Build(t, db)

	activity, err := svc.RecentActivity(ctx, 1)
	require.NoError(t, err)

	require.Len(t, activity.Investments, 1)
	assert.Equal(t, newest.ID, activity.Investments[0].ID)
	require.Len(t, activity.Events, 1)
	assert.Equal(t, latestEvent.ID, activity.Events[0].ID)
}
