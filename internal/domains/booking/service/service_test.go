package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockCache
}

func upcomingBooking(id, roomNumber string) model.Booking {
	return model.Booking{
		ID:            id,
		GuestName:     "John Doe",
		GuestEmail:    "john@example.com",
		RoomNumber:    roomNumber,
		CheckInDate:   timezone.Midnight(timezone.Now()),
		CheckOutDate:  timezone.Midnight(timezone.Now().AddDate(0, 0, 2)),
		StayType:      model.StayTypeNight,
		BookingAmount: 8500,
		Status:        model.StatusUpcoming,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, _, mockCache := newBookingService(t)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, booking model.Booking)
	}{
		{
			name: "night stay keeps checkout date",
			req: dto.CreateBookingRequest{
				GuestName:     "John Doe",
				GuestEmail:    "john@example.com",
				RoomNumber:    "101",
				CheckInDate:   "2026-09-01",
				CheckOutDate:  "2026-09-03",
				StayType:      model.StayTypeNight,
				BookingAmount: 8500,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, booking model.Booking) {
				t.Helper()
				assert.Equal(t, model.StatusUpcoming, booking.Status)
				assert.Equal(t, 8500.0, booking.BookingAmount)
				assert.True(t, booking.CheckOutDate.After(booking.CheckInDate))
			},
		},
		{
			name: "short time forces checkout to checkin",
			req: dto.CreateBookingRequest{
				GuestName:    "Jane Doe",
				GuestEmail:   "jane@example.com",
				RoomNumber:   "102",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-03",
				StayType:     model.StayTypeShort,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, booking model.Booking) {
				t.Helper()
				assert.Equal(t, booking.CheckInDate, booking.CheckOutDate)
			},
		},
		{
			name: "missing checkout collapses to checkin",
			req: dto.CreateBookingRequest{
				GuestName:   "Jane Doe",
				GuestEmail:  "jane@example.com",
				RoomNumber:  "102",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, booking model.Booking) {
				t.Helper()
				assert.Equal(t, booking.CheckInDate, booking.CheckOutDate)
				assert.Equal(t, model.StayTypeNight, booking.StayType)
			},
		},
		{
			name: "invalid checkin date",
			req: dto.CreateBookingRequest{
				GuestName:   "Jane Doe",
				GuestEmail:  "jane@example.com",
				RoomNumber:  "102",
				CheckInDate: "not-a-date",
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			var inserted model.Booking

			if !tt.wantErr {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						inserted = booking

						return nil
					})
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, inserted)
			}
		})
	}
}

func TestBookingService_GetUpcoming(t *testing.T) {
	svc, mockRepo, _, mockCache := newBookingService(t)

	t.Run("caps at ten ascending by check-in", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, 10, params.Limit)
				assert.Equal(t, model.FieldCheckInDate, params.SortBy)
				assert.Equal(t, "ASC", params.SortDir)

				return []model.Booking{upcomingBooking("b-1", "101")}, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetUpcoming(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_Update(t *testing.T) {
	svc, mockRepo, _, mockCache := newBookingService(t)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateBookingRequest{
				GuestName:    "Renamed Guest",
				CheckOutDate: "2026-09-10",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Renamed Guest", fields[model.FieldGuestName])
						assert.Contains(t, fields, model.FieldCheckOutDate)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "empty update rejected",
			req:  dto.UpdateBookingRequest{},
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				GuestName: "Renamed Guest",
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockCache := newBookingService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancel upcoming releases reserved room",
			id:   "b-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking("b-1", "101"), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})

				mockRoomRepo.EXPECT().
					UpdateMatched(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

						return 1, nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cancel checked-in skips room release",
			id:   "b-2",
			setupMock: func() {
				booking := upcomingBooking("b-2", "102")
				booking.Status = model.StatusCheckedIn

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "no reserved room is a silent no-op",
			id:   "b-3",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingBooking("b-3", "103"), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateMatched(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Guests(t *testing.T) {
	svc, mockRepo, _, mockCache := newBookingService(t)

	t.Run("groups bookings by guest email", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		first := upcomingBooking("b-1", "101")
		second := upcomingBooking("b-2", "102")
		second.BookingAmount = 1500
		third := upcomingBooking("b-3", "103")
		third.GuestName = "Jane Doe"
		third.GuestEmail = "jane@example.com"

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{first, second, third}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Guests(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalGuest)
		assert.Equal(t, 2, res.Guests[0].TotalBookings)
		assert.Equal(t, 10000.0, res.Guests[0].TotalSpent)
		assert.Equal(t, "jane@example.com", res.Guests[1].GuestEmail)
	})
}
