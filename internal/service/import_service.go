package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// InvestmentCSVRow is one line of an investment import file.
// Amounts are kept as text so that empty optional columns stay distinguishable from zero.
type InvestmentCSVRow struct {
	Fund               string `csv:"fund"`
	Company            string `csv:"company"`
	Type               string `csv:"type"`
	Round              string `csv:"round"`
	Stage              string `csv:"stage"`
	Date               string `csv:"date"`
	Amount             string `csv:"amount"`
	TotalRoundSize     string `csv:"total_round_size"`
	PostMoneyValuation string `csv:"post_money_valuation"`
}

// EventCSVRow is one line of an event import file.
type EventCSVRow struct {
	Company          string `csv:"company"`
	Date             string `csv:"date"`
	Type             string `csv:"type"`
	CashFlow         string `csv:"cash_flow"`
	Currency         string `csv:"currency"`
	PercentSold      string `csv:"percent_sold"`
	HoldingValuation string `csv:"holding_valuation"`
	Notes            string `csv:"notes"`
}

var (
	investmentRequiredHeaders = []string{"fund", "company", "type", "round", "stage", "date", "amount"}
	eventRequiredHeaders      = []string{"company", "date", "type"}
)

// ImportService bulk-loads investments and events from CSV files.
//
// Every row is validated with the same rules as the single-record endpoints and companies
// are resolved by name, ignoring case. A file is imported completely or not at all.
type ImportService struct {
	db             *sql.DB
	companyRepo    *repository.CompanyRepository
	investmentRepo *repository.InvestmentRepository
	eventRepo      *repository.EventRepository
	catalog        *validation.Catalog
	log            *zap.SugaredLogger
}

// NewImportService creates a new ImportService.
func NewImportService(
	db *sql.DB,
	companyRepo *repository.CompanyRepository,
	investmentRepo *repository.InvestmentRepository,
	eventRepo *repository.EventRepository,
	catalog *validation.Catalog,
	log *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		db:             db,
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		eventRepo:      eventRepo,
		catalog:        catalog,
		log:            log,
	}
}

// ImportInvestments reads investment rows from r and stores them in one transaction.
//
// Returns apperrors.ErrInvalidCSVHeaders when a required column is missing,
// apperrors.ErrEmptyImport when there are no rows and a *validation.Error keyed by
// "row N field" when any row is invalid or names an unknown company.
func (s *ImportService) ImportInvestments(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	var rows []InvestmentCSVRow
	if err := decodeCSV(r, investmentRequiredHeaders, &rows); err != nil {
		return nil, err
	}

	result := &model.ImportResult{IDs: []string{}}
	err := s.inTx(ctx, func(companies *repository.CompanyRepository, investments *repository.InvestmentRepository, _ *repository.EventRepository) error {
		fieldErrors := make(map[string]string)
		pending := make([]*model.Investment, 0, len(rows))

		for i, row := range rows {
			line := i + 2 // header is line 1
			req, parseErrs := row.toRequest()
			company, err := companies.GetCompanyByName(ctx, row.Company)
			if errors.Is(err, apperrors.ErrCompanyNotFound) {
				parseErrs["company"] = fmt.Sprintf("unknown company: %s", row.Company)
			} else if err != nil {
				return err
			} else {
				req.CompanyID = company.ID
			}

			if len(parseErrs) == 0 {
				if err := s.catalog.ValidateCreateInvestment(req); err != nil {
					var vErr *validation.Error
					if !errors.As(err, &vErr) {
						return err
					}
					parseErrs = vErr.Fields
				}
			}
			if len(parseErrs) > 0 {
				mergeRowErrors(fieldErrors, line, parseErrs)
				continue
			}

			date, _ := validation.ParseDate(req.Date)
			pending = append(pending, &model.Investment{
				ID:                 uuid.New().String(),
				Fund:               req.Fund,
				CompanyID:          company.ID,
				Type:               req.Type,
				RoundNumber:        req.RoundNumber,
				RoundStage:         req.RoundStage,
				Date:               date,
				Amount:             req.Amount,
				TotalRoundSize:     req.TotalRoundSize,
				PostMoneyValuation: req.PostMoneyValuation,
				CreatedAt:          time.Now().UTC(),
			})
		}

		if len(fieldErrors) > 0 {
			return &validation.Error{Fields: fieldErrors}
		}

		for _, inv := range pending {
			if err := investments.InsertInvestment(ctx, inv); err != nil {
				return err
			}
			result.IDs = append(result.IDs, inv.ID)
		}
		return nil
	})
	if err != nil {
		return nil, wrapImportError(apperrors.ErrFailedToImportInvestments, err)
	}

	result.Imported = len(result.IDs)
	s.log.Infow("imported investments", "count", result.Imported)
	return result, nil
}

// ImportEvents reads event rows from r and stores them in one transaction.
// Errors are reported as for ImportInvestments.
func (s *ImportService) ImportEvents(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	var rows []EventCSVRow
	if err := decodeCSV(r, eventRequiredHeaders, &rows); err != nil {
		return nil, err
	}

	result := &model.ImportResult{IDs: []string{}}
	err := s.inTx(ctx, func(companies *repository.CompanyRepository, _ *repository.InvestmentRepository, events *repository.EventRepository) error {
		fieldErrors := make(map[string]string)
		pending := make([]*model.Event, 0, len(rows))

		for i, row := range rows {
			line := i + 2
			req, parseErrs := row.toRequest()
			company, err := companies.GetCompanyByName(ctx, row.Company)
			if errors.Is(err, apperrors.ErrCompanyNotFound) {
				parseErrs["company"] = fmt.Sprintf("unknown company: %s", row.Company)
			} else if err != nil {
				return err
			} else {
				req.CompanyID = company.ID
			}

			if len(parseErrs) == 0 {
				if err := s.catalog.ValidateCreateEvent(req); err != nil {
					var vErr *validation.Error
					if !errors.As(err, &vErr) {
						return err
					}
					parseErrs = vErr.Fields
				}
			}
			if len(parseErrs) > 0 {
				mergeRowErrors(fieldErrors, line, parseErrs)
				continue
			}

			date, _ := validation.ParseDate(req.Date)
			ev := &model.Event{
				ID:                 uuid.New().String(),
				CompanyID:          company.ID,
				Date:               date,
				Type:               model.EventKind(req.Type),
				CashFlowAmount:     req.CashFlowAmount,
				Currency:           req.Currency,
				PercentHoldingSold: req.PercentHoldingSold,
				HoldingValuation:   req.HoldingValuation,
				Notes:              req.Notes,
				CreatedAt:          time.Now().UTC(),
			}
			validation.ApplyEventDefaults(ev)
			pending = append(pending, ev)
		}

		if len(fieldErrors) > 0 {
			return &validation.Error{Fields: fieldErrors}
		}

		for _, ev := range pending {
			if err := events.InsertEvent(ctx, ev); err != nil {
				return err
			}
			result.IDs = append(result.IDs, ev.ID)
		}
		return nil
	})
	if err != nil {
		return nil, wrapImportError(apperrors.ErrFailedToImportEvents, err)
	}

	result.Imported = len(result.IDs)
	s.log.Infow("imported events", "count", result.Imported)
	return result, nil
}

// inTx runs fn with repositories bound to a single transaction, committing when fn
// succeeds. Only the transaction-scoped repositories may be used inside fn.
func (s *ImportService) inTx(
	ctx context.Context,
	fn func(*repository.CompanyRepository, *repository.InvestmentRepository, *repository.EventRepository) error,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(s.companyRepo.WithTx(tx), s.investmentRepo.WithTx(tx), s.eventRepo.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// decodeCSV checks that every required header is present and unmarshals the rows into out.
func decodeCSV(r io.Reader, required []string, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return apperrors.ErrEmptyImport
	}
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidCSVHeaders, err)
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, h := range required {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", apperrors.ErrInvalidCSVHeaders, strings.Join(missing, ", "))
	}

	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return apperrors.ErrEmptyImport
		}
		return fmt.Errorf("failed to parse CSV: %w", err)
	}

	if rowCount(out) == 0 {
		return apperrors.ErrEmptyImport
	}
	return nil
}

func rowCount(out any) int {
	switch rows := out.(type) {
	case *[]InvestmentCSVRow:
		return len(*rows)
	case *[]EventCSVRow:
		return len(*rows)
	}
	return 0
}

func (row InvestmentCSVRow) toRequest() (request.CreateInvestmentRequest, map[string]string) {
	errs := make(map[string]string)
	req := request.CreateInvestmentRequest{
		Fund:       strings.TrimSpace(row.Fund),
		Type:       strings.TrimSpace(row.Type),
		RoundStage: strings.TrimSpace(row.Stage),
		Date:       strings.TrimSpace(row.Date),
	}

	if round, err := strconv.Atoi(strings.TrimSpace(row.Round)); err != nil {
		errs["round"] = "round must be a whole number"
	} else {
		req.RoundNumber = round
	}
	if amount, err := parseAmount(row.Amount); err != nil || amount == nil {
		errs["amount"] = "amount must be a number"
	} else {
		req.Amount = *amount
	}
	var err error
	if req.TotalRoundSize, err = parseAmount(row.TotalRoundSize); err != nil {
		errs["total_round_size"] = "total_round_size must be a number"
	}
	if req.PostMoneyValuation, err = parseAmount(row.PostMoneyValuation); err != nil {
		errs["post_money_valuation"] = "post_money_valuation must be a number"
	}

	return req, errs
}

func (row EventCSVRow) toRequest() (request.CreateEventRequest, map[string]string) {
	errs := make(map[string]string)
	req := request.CreateEventRequest{
		Date:     strings.TrimSpace(row.Date),
		Type:     strings.TrimSpace(row.Type),
		Currency: strings.TrimSpace(row.Currency),
		Notes:    strings.TrimSpace(row.Notes),
	}

	var err error
	if req.CashFlowAmount, err = parseAmount(row.CashFlow); err != nil {
		errs["cash_flow"] = "cash_flow must be a number"
	}
	if req.PercentHoldingSold, err = parseAmount(row.PercentSold); err != nil {
		errs["percent_sold"] = "percent_sold must be a number"
	}
	if req.HoldingValuation, err = parseAmount(row.HoldingValuation); err != nil {
		errs["holding_valuation"] = "holding_valuation must be a number"
	}

	return req, errs
}

// parseAmount parses an optional number, accepting thousands separators. Empty input is nil.
func parseAmount(s string) (*float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mergeRowErrors(dst map[string]string, line int, fields map[string]string) {
	for field, msg := range fields {
		dst[fmt.Sprintf("row %d %s", line, field)] = msg
	}
}

// wrapImportError keeps validation errors and sentinel errors visible to callers.
func wrapImportError(op error, err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return err
	}
	return fmt.Errorf("%w: %w", op, err)
}
