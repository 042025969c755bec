package stay

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/customers/checked-in", handler.GetCheckedInCustomers)
	router.Post("/checkin", handler.CheckIn)
	router.Post("/checkout", handler.Checkout)
}

// GetCheckedInCustomers lists all in-house customers.
// @Summary Get checked-in customers
// @Description Retrieve all customers currently staying in the hotel.
// @Tags Stay
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "Checked-in customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers/checked-in [get]
func (handler *Handler) GetCheckedInCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckedInCustomers")
	defer scope.End()

	customers, err := handler.service.GetCheckedIn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checked-in customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checked-in customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}

// CheckIn checks a booked guest into their room.
// @Summary Check in a guest
// @Description Check in from an existing booking; the room must still be Available.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in details"
// @Success 201 {object} response.Message "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkin [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	var req dto.CheckInRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckIn(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in successfully")

	response.WithMessage(w, http.StatusCreated, "Guest checked in successfully")
}

// Checkout settles the bill and checks a customer out.
// @Summary Check out a customer
// @Description Settle the bill, record the daily sale, and free the room.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout details"
// @Success 200 {object} response.Data[dto.CheckoutResponse] "Checkout receipt"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout [post]
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	var req dto.CheckoutRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	receipt, err := handler.service.Checkout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer checked out successfully")

	response.WithJSON(w, http.StatusOK, receipt)
}
