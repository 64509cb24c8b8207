package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/seed"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSeedService(t, db)

	opts := seed.Options{
		Seed:             7,
		CompaniesPerFund: 3,
		Funds:            testutil.TestFunds,
		Now:              today,
	}

	result, err := svc.Seed(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Companies)
	testutil.AssertRowCount(t, db, "company", result.Companies)
	testutil.AssertRowCount(t, db, "investment", result.Investments)
	testutil.AssertRowCount(t, db, "kpi", result.KPIs)
	testutil.AssertRowCount(t, db, "event", result.Events)

	// The seeded portfolio is usable by the returns calculation.
	returns, err := testutil.NewTestReturnsService(t, db, today).GetAllFundReturns(ctx)
	require.NoError(t, err)
	require.Len(t, returns, 3)
	var invested float64
	for _, r := range returns {
		invested += r.TotalInvested
	}
	assert.Positive(t, invested)

	t.Run("same seed again conflicts without changes", func(t *testing.T) {
		_, err := svc.Seed(ctx, opts)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
		testutil.AssertRowCount(t, db, "company", result.Companies)
	})
}
