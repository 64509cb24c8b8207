package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestEventService(t, db)

	company := testutil.CreateCompany(t, db, "Sable Security")

	t.Run("exit defaults currency", func(t *testing.T) {
		ev, err := svc.CreateEvent(ctx, request.CreateEventRequest{
			CompanyID:          company.ID,
			Date:               "2024-11-01",
			Type:               string(model.EventExit),
			CashFlowAmount:     testutil.Ptr(80000.0),
			PercentHoldingSold: testutil.Ptr(0.4),
			HoldingValuation:   testutil.Ptr(120000.0),
		})
		require.NoError(t, err)
		assert.Equal(t, "USD", ev.Currency)

		stored, err := svc.GetEvent(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, model.EventExit, stored.Type)
		assert.Equal(t, "Sable Security", stored.CompanyName)
		require.NotNil(t, stored.PercentHoldingSold)
		assert.Equal(t, 0.4, *stored.PercentHoldingSold)
	})

	t.Run("dividend with percent sold", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, request.CreateEventRequest{
			CompanyID:          company.ID,
			Date:               "2024-11-01",
			Type:               string(model.EventDividend),
			CashFlowAmount:     testutil.Ptr(1000.0),
			PercentHoldingSold: testutil.Ptr(0.1),
		})

		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "percentHoldingSold")
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, request.CreateEventRequest{
			CompanyID:        testutil.MakeID(),
			Date:             "2024-11-01",
			Type:             string(model.EventValuationUpdate),
			HoldingValuation: testutil.Ptr(1.0),
		})
		assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
	})
}

// TestEventService_UpdateEvent covers how amounts are merged on update.
//
// WHY: Changing an event's type must not leave amounts from the old type behind, while
// a plain edit of one field must keep the stored amounts.
func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestEventService(t, db)

	company := testutil.CreateCompany(t, db, "Tidal Works")

	t.Run("type change replaces amounts", func(t *testing.T) {
		ev := testutil.NewEvent(company.ID).Exit(50000, 0.5, 50000).Build(t, db)

		updated, err := svc.UpdateEvent(ctx, ev.ID, request.UpdateEventRequest{
			Type:           testutil.Ptr(string(model.EventDividend)),
			CashFlowAmount: testutil.Ptr(2000.0),
		})
		require.NoError(t, err)

		assert.Equal(t, model.EventDividend, updated.Type)
		require.NotNil(t, updated.CashFlowAmount)
		assert.Equal(t, 2000.0, *updated.CashFlowAmount)
		assert.Nil(t, updated.PercentHoldingSold)
		assert.Nil(t, updated.HoldingValuation)
	})

	t.Run("notes only keeps amounts", func(t *testing.T) {
		ev := testutil.NewEvent(company.ID).ValuationUpdate(300000).Build(t, db)

		updated, err := svc.UpdateEvent(ctx, ev.ID, request.UpdateEventRequest{
			Notes: testutil.Ptr("  board approved  "),
		})
		require.NoError(t, err)

		assert.Equal(t, "board approved", updated.Notes)
		require.NotNil(t, updated.HoldingValuation)
		assert.Equal(t, 300000.0, *updated.HoldingValuation)
	})

	t.Run("amount not allowed for stored type", func(t *testing.T) {
		ev := testutil.NewEvent(company.ID).ValuationUpdate(300000).Build(t, db)

		_, err := svc.UpdateEvent(ctx, ev.ID, request.UpdateEventRequest{
			CashFlowAmount: testutil.Ptr(10.0),
		})

		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "cashFlowAmount")
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := svc.UpdateEvent(ctx, testutil.MakeID(), request.UpdateEventRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
