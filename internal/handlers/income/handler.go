package income

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/income/model"
	"frontdesk/internal/domains/income/model/dto"
	"frontdesk/internal/domains/income/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Income
	otel    otel.Otel
}

func New(service service.Income, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/incomes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateIncome)
		routerGroup.Get("/", handler.GetIncomes)
		routerGroup.Delete("/{id}", handler.DeleteIncome)
	})
}

// CreateIncome records a new income entry.
// @Summary Create a new income
// @Description Record an income; entry date defaults to today.
// @Tags Income
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} response.Message "Income created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/incomes [post]
func (handler *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateIncome")
	defer scope.End()

	var req dto.CreateIncomeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create income")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Income created successfully")

	response.WithMessage(w, http.StatusCreated, "Income created successfully")
}

// GetIncomes retrieves all incomes based on query parameters.
// @Summary Get all incomes
// @Description Retrieve all incomes with optional filtering and pagination.
// @Tags Income
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetIncomesResponse] "List of incomes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/incomes [get]
func (handler *Handler) GetIncomes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIncomes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	incomes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get incomes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Incomes retrieved successfully")

	response.WithJSON(w, http.StatusOK, incomes)
}

// DeleteIncome deletes an income by its ID.
// @Summary Delete an income by ID
// @Description Delete an income using its unique identifier.
// @Tags Income
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} response.Message "Income deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/incomes/{id} [delete]
func (handler *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteIncome")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete income")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Income deleted successfully")

	response.WithMessage(w, http.StatusOK, "Income deleted successfully")
}
