package report

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/financial-summary", handler.GetFinancialSummary)

	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/daily", handler.GetDailyReport)
		routerGroup.Get("/monthly", handler.GetMonthlyReport)
		routerGroup.Get("/comparison", handler.GetComparisonReport)
	})
}

// GetFinancialSummary aggregates revenue and expenses within a date window.
// @Summary Get financial summary
// @Description Aggregate revenue and expenses; defaults to the current calendar month.
// @Tags Report
// @Accept json
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.FinancialSummaryResponse] "Financial summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/financial-summary [get]
func (handler *Handler) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinancialSummary")
	defer scope.End()

	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	summary, err := handler.service.Summary(ctx, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get financial summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Financial summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetDailyReport aggregates per day within a date window.
// @Summary Get daily report
// @Description Per-day revenue and expense aggregation; defaults to the current calendar month.
// @Tags Report
// @Accept json
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DailyReportResponse] "Daily report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/daily [get]
func (handler *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyReport")
	defer scope.End()

	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	report, err := handler.service.Daily(ctx, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetMonthlyReport aggregates per calendar month of a year.
// @Summary Get monthly report
// @Description Per-month aggregation plus completed booking counts; defaults to the current year.
// @Tags Report
// @Accept json
// @Produce json
// @Param year query string false "Report year"
// @Success 200 {object} response.Data[dto.MonthlyReportResponse] "Monthly report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/monthly [get]
func (handler *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyReport")
	defer scope.End()

	year := r.URL.Query().Get(constant.RequestParamYear)

	report, err := handler.service.Monthly(ctx, year)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monthly report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetComparisonReport compares the previous and current month.
// @Summary Get comparison report
// @Description Compare the previous and current calendar month totals.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ComparisonResponse] "Comparison report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/comparison [get]
func (handler *Handler) GetComparisonReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComparisonReport")
	defer scope.End()

	report, err := handler.service.Comparison(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get comparison report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comparison report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
