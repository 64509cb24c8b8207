package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func TestSnapshotService_Materialize(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSnapshotService(t, db, today)

	company := testutil.CreateCompany(t, db, "Delta Health")
	testutil.NewInvestment(company.ID).WithDate(day(2024, 1, 1)).WithAmount(100000).Build(t, db)
	testutil.NewEvent(company.ID).ValuationUpdate(150000).WithDate(day(2024, 12, 31)).Build(t, db)

	t.Run("stores one snapshot per fund", func(t *testing.T) {
		snapshots, err := svc.Materialize(ctx, day(2025, 6, 30))
		require.NoError(t, err)
		require.Len(t, snapshots, 3)
		testutil.AssertRowCount(t, db, "fund_return_snapshot", 3)

		assert.Equal(t, "Yang Fund 1", snapshots[0].Fund)
		assert.Equal(t, 150000.0, snapshots[0].TotalValue)
		require.NotNil(t, snapshots[0].IRR)
		assert.InDelta(t, 0.5, *snapshots[0].IRR, 1e-6)
		assert.Nil(t, snapshots[1].IRR)
	})

	t.Run("re-running the same date replaces rows", func(t *testing.T) {
		testutil.NewEvent(company.ID).ValuationUpdate(200000).WithDate(day(2025, 3, 31)).Build(t, db)

		snapshots, err := svc.Materialize(ctx, day(2025, 6, 30))
		require.NoError(t, err)
		testutil.AssertRowCount(t, db, "fund_return_snapshot", 3)
		assert.Equal(t, 200000.0, snapshots[0].TotalValue)

		history, err := svc.History(ctx, "Yang Fund 1", day(2025, 6, 30), day(2025, 6, 30))
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Len(t, history[0].Funds, 1)
		assert.Equal(t, 200000.0, history[0].Funds[0].TotalValue)
	})
}

// TestSnapshotService_History verifies grouping by date and range validation.
//
// WHY: The history chart draws one point per date with a series per fund; rows must
// come back grouped and in date order.
func TestSnapshotService_History(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSnapshotService(t, db, today)

	company := testutil.CreateCompany(t, db, "Echo Systems")
	testutil.NewInvestment(company.ID).WithDate(day(2024, 1, 1)).Build(t, db)

	_, err := svc.Materialize(ctx, day(2024, 12, 31))
	require.NoError(t, err)
	_, err = svc.Materialize(ctx, day(2024, 6, 30))
	require.NoError(t, err)

	t.Run("all funds grouped by date", func(t *testing.T) {
		history, err := svc.History(ctx, "", day(2024, 1, 1), day(2024, 12, 31))
		require.NoError(t, err)
		require.Len(t, history, 2)

		assert.Equal(t, day(2024, 6, 30), history[0].Date)
		assert.Equal(t, day(2024, 12, 31), history[1].Date)
		assert.Len(t, history[0].Funds, 3)
		assert.Equal(t, "Yang Fund 1", history[0].Funds[0].Fund)
	})

	t.Run("range excludes other dates", func(t *testing.T) {
		history, err := svc.History(ctx, "", day(2024, 7, 1), day(2024, 12, 30))
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.History(ctx, "", day(2024, 12, 31), day(2024, 1, 1))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	})

	t.Run("unknown fund", func(t *testing.T) {
		_, err := svc.History(ctx, "Nope", day(2024, 1, 1), day(2024, 12, 31))
		assert.ErrorIs(t, err, apperrors.ErrFundNotFound)
	})
}
