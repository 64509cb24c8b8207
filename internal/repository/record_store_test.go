package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

// TestRecordStore_SkipsMalformedRows verifies that unreadable rows are logged and skipped.
//
// WHY: One hand-edited row with a broken date must not take down the returns page for
// every fund.
func TestRecordStore_SkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	core, logs := observer.New(zapcore.WarnLevel)
	store := repository.NewRecordStore(db, zap.New(core).Sugar())

	company := testutil.CreateCompany(t, db, "Basalt Mining")
	good := testutil.NewInvestment(company.ID).WithAmount(1000).Build(t, db)
	testutil.NewEvent(company.ID).Dividend(250).Build(t, db)

	_, err := db.Exec(`
		INSERT INTO investment (id, fund_name, company_id, date, amount, created_at)
		VALUES (?, 'Yang Fund 1', ?, 'someday', 10, '2025-01-01T00:00:00Z')`,
		testutil.MakeID(), company.ID)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO event (id, company_id, date, type, holding_valuation, created_at)
		VALUES (?, ?, 'last spring', 'Valuation Update', 5, '2025-01-01T00:00:00Z')`,
		testutil.MakeID(), company.ID)
	require.NoError(t, err)

	investments, err := store.InvestmentRecords(ctx)
	require.NoError(t, err)
	require.Len(t, investments, 1)
	assert.Equal(t, model.InvestmentRecord{
		Fund:      good.Fund,
		CompanyID: company.ID,
		Date:      good.Date,
		Amount:    1000,
	}, investments[0])

	events, err := store.EventRecords(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventDividend, events[0].Kind)
	require.NotNil(t, events[0].CashFlowAmount)
	assert.Equal(t, 250.0, *events[0].CashFlowAmount)
	assert.Nil(t, events[0].HoldingValuation)

	assert.Equal(t, 1, logs.FilterMessage("skipping malformed investment row").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping malformed event row").Len())
}

func TestRecordStore_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := repository.NewRecordStore(db, zap.NewNop().Sugar())

	investments, err := store.InvestmentRecords(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, investments)
	assert.Empty(t, investments)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date", input: "2024-03-31", want: want},
		{name: "rfc3339", input: "2024-03-31T00:00:00Z", want: want},
		{name: "rfc3339 with offset", input: "2024-03-31T08:00:00+08:00", want: want},
		{name: "sqlite timestamp", input: "2024-03-31 00:00:00", want: want},
		{name: "garbage", input: "31/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repository.ParseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
