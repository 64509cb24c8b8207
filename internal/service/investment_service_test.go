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

func validInvestmentRequest(companyID string) request.CreateInvestmentRequest {
	return request.CreateInvestmentRequest{
		Fund:        "Yang Fund 1",
		CompanyID:   companyID,
		Type:        "Equity",
		RoundNumber: 1,
		RoundStage:  "Seed",
		Date:        "2024-02-15",
		Amount:      250000,
	}
}

func TestInvestmentService_CreateInvestment(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestInvestmentService(t, db)

	company := testutil.CreateCompany(t, db, "Nimbus Data")

	t.Run("stores investment", func(t *testing.T) {
		req := validInvestmentRequest(company.ID)
		req.PostMoneyValuation = testutil.Ptr(5000000.0)

		inv, err := svc.CreateInvestment(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "Nimbus Data", inv.CompanyName)
		assert.Equal(t, day(2024, 2, 15), inv.Date)

		stored, err := svc.GetInvestment(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 250000.0, stored.Amount)
		require.NotNil(t, stored.PostMoneyValuation)
		assert.Equal(t, 5000000.0, *stored.PostMoneyValuation)
		assert.Nil(t, stored.TotalRoundSize)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.CreateInvestment(ctx, validInvestmentRequest(testutil.MakeID()))
		assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
	})

	t.Run("unknown fund and non-positive amount", func(t *testing.T) {
		req := validInvestmentRequest(company.ID)
		req.Fund = "Yang Fund 7"
		req.Amount = 0

		_, err := svc.CreateInvestment(ctx, req)

		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "unknown fund: Yang Fund 7", vErr.Fields["fund"])
		assert.Contains(t, vErr.Fields, "amount")
	})
}

func TestInvestmentService_UpdateAndFilter(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestInvestmentService(t, db)

	company := testutil.CreateCompany(t, db, "Quarry Tools")
	inv := testutil.NewInvestment(company.ID).Build(t, db)
	testutil.NewInvestment(company.ID).WithFund("Yang Fund 2").Build(t, db)

	updated, err := svc.UpdateInvestment(ctx, inv.ID, request.UpdateInvestmentRequest{
		Amount:     testutil.Ptr(175000.0),
		RoundStage: testutil.Ptr("Series A"),
	})
	require.NoError(t, err)
	assert.Equal(t, 175000.0, updated.Amount)
	assert.Equal(t, "Series A", updated.RoundStage)
	assert.Equal(t, inv.Fund, updated.Fund)

	fund1, err := svc.GetInvestments(ctx, model.InvestmentFilter{Fund: "Yang Fund 1"})
	require.NoError(t, err)
	require.Len(t, fund1, 1)
	assert.Equal(t, inv.ID, fund1[0].ID)

	require.NoError(t, svc.DeleteInvestment(ctx, inv.ID))
	_, err = svc.GetInvestment(ctx, inv.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvestmentNotFound)
}
