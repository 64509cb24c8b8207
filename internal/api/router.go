package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/api/handlers"
	custommiddleware "github.com/yang-ventures/portfolio-backend/internal/api/middleware"
	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(svc *service.Services, cfg *config.Config, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		referenceHandler := handlers.NewReferenceHandler(cfg.Funds, cfg.Reference)
		r.Get("/reference", referenceHandler.Reference)

		r.Route("/company", func(r chi.Router) {
			companyHandler := handlers.NewCompanyHandler(svc.Company)
			r.Get("/", companyHandler.Companies)
			r.Post("/", companyHandler.CreateCompany)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", companyHandler.GetCompany)
				r.Put("/", companyHandler.UpdateCompany)
				r.Delete("/", companyHandler.DeleteCompany)
			})
		})

		r.Route("/investment", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(svc.Investment)
			r.Get("/", investmentHandler.Investments)
			r.Post("/", investmentHandler.CreateInvestment)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/event", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(svc.Event)
			r.Get("/", eventHandler.Events)
			r.Post("/", eventHandler.CreateEvent)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", eventHandler.GetEvent)
				r.Put("/", eventHandler.UpdateEvent)
				r.Delete("/", eventHandler.DeleteEvent)
			})
		})

		r.Route("/kpi", func(r chi.Router) {
			kpiHandler := handlers.NewKPIHandler(svc.KPI)
			r.Get("/", kpiHandler.KPIs)
			r.Post("/", kpiHandler.CreateKPI)
			r.Get("/summary", kpiHandler.Summary)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", kpiHandler.GetKPI)
				r.Put("/", kpiHandler.UpdateKPI)
				r.Delete("/", kpiHandler.DeleteKPI)
			})
		})

		r.Route("/returns", func(r chi.Router) {
			returnsHandler := handlers.NewReturnsHandler(svc.Returns, svc.Snapshot, cfg.App.BaseCurrency)
			r.Get("/", returnsHandler.Returns)
			r.Get("/fund/{fund}", returnsHandler.FundReturn)
			r.Get("/history", returnsHandler.History)
			r.Post("/snapshot", returnsHandler.Snapshot)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, cfg.App.BaseCurrency)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/recent", dashboardHandler.Recent)
		})

		r.Route("/import", func(r chi.Router) {
			importHandler := handlers.NewImportHandler(svc.Import)
			r.Post("/investments", importHandler.Investments)
			r.Post("/events", importHandler.Events)
		})
	})

	return r
}
