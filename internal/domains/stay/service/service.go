package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	saleModel "frontdesk/internal/domains/sale/model"
	saleRepository "frontdesk/internal/domains/sale/repository"
	"frontdesk/internal/domains/stay/model"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheCheckedInCustomers = "customer:checkedin"

	// Check-in and checkout also flip room and booking rows, so their cached
	// listings are cleared here rather than waiting out the TTL.
	cacheRoomPrefix    = "room:"
	cacheBookingPrefix = "booking:"

	defaultPaymentMethod = "Cash"
)

type Stay interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) error
	Checkout(ctx context.Context, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	GetCheckedIn(ctx context.Context) (dto.GetCustomersResponse, error)
}

type serviceImpl struct {
	repo        repository.Customer
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	saleRepo    saleRepository.DailySale
	kafkaClient kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Customer,
	bookingRepo bookingRepository.Booking,
	roomRepo roomRepository.Room,
	saleRepo saleRepository.DailySale,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stay {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		saleRepo:    saleRepo,
		kafkaClient: kafkaClient,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// CheckIn turns an Upcoming booking into an in-house customer. The room is
// claimed with a conditional update keyed on status=Available, so two
// concurrent check-ins for the same room cannot both succeed. The room charge
// is the amount quoted on the booking; it is copied as-is and never
// recalculated here.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Str("bookingID", req.BookingID).Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, filterByRoomNumber(booking.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		log.Error().Str("roomNumber", booking.RoomNumber).Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	occupyFields := map[string]any{
		roomModel.FieldStatus:       roomModel.StatusOccupied,
		roomModel.FieldCurrentGuest: booking.GuestName,
		roomModel.FieldCheckInDate:  booking.CheckInDate,
		roomModel.FieldCheckOutDate: booking.CheckOutDate,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	availableFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomNumber,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    roomModel.StatusAvailable,
				Table:    roomModel.TableName,
			},
		},
	}

	matched, err := s.roomRepo.UpdateMatched(ctx, occupyFields, availableFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to occupy room")

		return fmt.Errorf("failed to occupy room: %w", err)
	}

	if matched == 0 {
		log.Error().Str("roomNumber", booking.RoomNumber).Msg("room is not available for check-in")

		return failure.Conflict("room is not available for check-in") // nolint:wrapcheck
	}

	roomCharges := booking.BookingAmount

	customer := model.Customer{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Name:          booking.GuestName,
		Email:         booking.GuestEmail,
		Phone:         booking.GuestPhone,
		CurrentRoom:   booking.RoomNumber,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		AdvanceAmount: req.AdvanceAmount,
		Notes:         req.Notes,
		RoomCharges:   roomCharges,
		TotalAmount:   roomCharges - req.AdvanceAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to insert customer")

		return fmt.Errorf("failed to insert customer: %w", err)
	}

	checkedInFields := map[string]any{
		bookingModel.FieldStatus: bookingModel.StatusCheckedIn,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.bookingRepo.Update(ctx, checkedInFields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking as checked-in")

		return fmt.Errorf("failed to mark booking as checked-in: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Checkout settles the bill for an in-house customer. The total is
// room_charges + additional − advance − discount, in that order. A Daily Sale
// snapshot dated today is recorded before the customer row is removed; the
// room release, booking completion, and Kafka publish that follow are best
// effort.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	paymentMethod := req.PaymentMethod
	if paymentMethod == constant.Empty {
		paymentMethod = defaultPaymentMethod
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(req.CustomerID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		log.Error().Str("customerID", req.CustomerID).Msg("customer not found")

		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	totalAmount := customer.RoomCharges + req.AdditionalAmount - customer.AdvanceAmount - req.DiscountAmount
	saleDate := timezone.Midnight(timezone.Now())

	sale := saleModel.DailySale{
		ID:                uuid.NewString(),
		SaleDate:          saleDate,
		CustomerName:      customer.Name,
		RoomNumber:        customer.CurrentRoom,
		RoomCharges:       customer.RoomCharges,
		AdditionalCharges: req.AdditionalAmount,
		DiscountAmount:    req.DiscountAmount,
		AdvanceAmount:     customer.AdvanceAmount,
		TotalAmount:       totalAmount,
		PaymentMethod:     paymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.saleRepo.Insert(ctx, sale); err != nil {
		log.Error().Err(err).Msg("failed to record daily sale")

		return res, fmt.Errorf("failed to record daily sale: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(customer.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete customer")

		return res, fmt.Errorf("failed to delete customer: %w", err)
	}

	s.releaseRoom(ctx, customer.CurrentRoom, user)
	s.completeBooking(ctx, customer.BookingID, user)
	s.publishSale(ctx, sale)

	s.invalidate(ctx)

	res = dto.CheckoutResponse{
		CustomerName:  customer.Name,
		RoomNumber:    customer.CurrentRoom,
		PaymentMethod: paymentMethod,
		CheckoutDate:  timezone.Format(saleDate, constant.DateOnlyFormat),
		BillingDetails: dto.BillingDetails{
			RoomCharges:       customer.RoomCharges,
			AdvanceAmount:     customer.AdvanceAmount,
			AdditionalCharges: req.AdditionalAmount,
			DiscountAmount:    req.DiscountAmount,
			TotalAmount:       totalAmount,
		},
	}

	return res, nil
}

func (s *serviceImpl) GetCheckedIn(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCheckedIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheCheckedInCustomers, &res)
	if err == nil {
		log.Info().Msg("cache hit for checked-in customers")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldCheckInDate,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get checked-in customers")

		return res, fmt.Errorf("failed to get checked-in customers: %w", err)
	}

	res.FromModels(models, len(models), len(models))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCheckedInCustomers, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save checked-in customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) releaseRoom(ctx context.Context, roomNumber, user string) {
	releasedFields := map[string]any{
		roomModel.FieldStatus:       roomModel.StatusAvailable,
		roomModel.FieldCurrentGuest: nil,
		roomModel.FieldCheckInDate:  nil,
		roomModel.FieldCheckOutDate: nil,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if err := s.roomRepo.Update(ctx, releasedFields, filterByRoomNumber(roomNumber)); err != nil {
		log.Error().Err(err).Str("roomNumber", roomNumber).Msg("failed to release room after checkout")
	}
}

func (s *serviceImpl) completeBooking(ctx context.Context, bookingID, user string) {
	if bookingID == constant.Empty {
		return
	}

	completedFields := map[string]any{
		bookingModel.FieldStatus: bookingModel.StatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.bookingRepo.Update(ctx, completedFields, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to complete booking after checkout")
	}
}

func (s *serviceImpl) publishSale(ctx context.Context, sale saleModel.DailySale) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   sale.ID,
			Value: sale,
		}

		if err := s.kafkaClient.SendMessages(c, s.cfg.Kafka.Topics.DailySales, message); err != nil {
			log.Error().Err(err).Str("saleID", sale.ID).Msg("failed to publish daily sale event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCheckedInCustomers)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
	}()
}

func filterByRoomNumber(roomNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    roomModel.TableName,
			},
		},
	}
}
