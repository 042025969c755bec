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
	bookingModel "frontdesk/internal/domains/booking/model"
	expenseMocks "frontdesk/internal/domains/expense/mocks"
	expenseModel "frontdesk/internal/domains/expense/model"
	incomeMocks "frontdesk/internal/domains/income/mocks"
	incomeModel "frontdesk/internal/domains/income/model"
	"frontdesk/internal/domains/report/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	saleMocks "frontdesk/internal/domains/sale/mocks"
	saleModel "frontdesk/internal/domains/sale/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type reportMockSet struct {
	sale    *saleMocks.MockDailySale
	income  *incomeMocks.MockIncome
	expense *expenseMocks.MockExpense
	room    *roomMocks.MockRoom
	booking *bookingMocks.MockBooking
	cache   *cacheMocks.MockRedisCache
}

func newReportService(t *testing.T) (service.Report, reportMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := reportMockSet{
		sale:    saleMocks.NewMockDailySale(ctrl),
		income:  incomeMocks.NewMockIncome(ctrl),
		expense: expenseMocks.NewMockExpense(ctrl),
		room:    roomMocks.NewMockRoom(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.sale, set.income, set.expense, set.room, set.booking, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.Parse("2006-01-02", value)
	assert.NoError(t, err)

	return timezone.Midnight(parsed)
}

func TestReportService_Summary(t *testing.T) {
	svc, set := newReportService(t)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	sales := []saleModel.DailySale{
		{SaleDate: mustDate(t, "2026-08-10"), RoomNumber: "101", TotalAmount: 7600, PaymentMethod: "Cash"},
		{SaleDate: mustDate(t, "2026-08-12"), RoomNumber: "102", TotalAmount: 2400, PaymentMethod: "Card"},
		{SaleDate: mustDate(t, "2026-08-20"), RoomNumber: "999", TotalAmount: 500, PaymentMethod: "Cash"},
	}

	set.sale.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sales, nil)

	set.income.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]incomeModel.Income{
			{EntryDate: mustDate(t, "2026-08-15"), Amount: 300, Category: "Restaurant"},
		}, nil)

	set.expense.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]expenseModel.Expense{
			{EntryDate: mustDate(t, "2026-08-16"), Amount: 1000, Category: "Housekeeping"},
		}, nil)

	// Room 101 has been retyped to Suite since the sale; the breakdown must
	// follow the current type. Room 999 no longer exists.
	set.room.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{RoomNumber: "101", RoomType: roomModel.TypeSuite},
			{RoomNumber: "102", RoomType: roomModel.TypeDouble},
		}, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Summary(context.Background(), "2026-08-01", "2026-08-31")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 10500.0, res.RoomRevenue)
	assert.Equal(t, 300.0, res.AdditionalIncome)
	assert.Equal(t, 10800.0, res.TotalRevenue)
	assert.Equal(t, 1000.0, res.TotalExpenses)
	assert.Equal(t, 9800.0, res.NetProfit)
	assert.Equal(t, 7600.0, res.RevenueBreakdown[roomModel.TypeSuite])
	assert.Equal(t, 2400.0, res.RevenueBreakdown[roomModel.TypeDouble])
	assert.Equal(t, 500.0, res.RevenueBreakdown["Unknown"])
	assert.Equal(t, 8100.0, res.PaymentMethodBreakdown["Cash"])
	assert.Equal(t, 2400.0, res.PaymentMethodBreakdown["Card"])
	assert.Equal(t, 300.0, res.IncomeBreakdown["Restaurant"])
	assert.Equal(t, 1000.0, res.ExpenseBreakdown["Housekeeping"])
}

func TestReportService_Summary_InvalidWindow(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.Summary(context.Background(), "01-08-2026", "")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestReportService_Daily(t *testing.T) {
	svc, set := newReportService(t)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	set.sale.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]saleModel.DailySale{
			{SaleDate: mustDate(t, "2026-08-10"), TotalAmount: 7600},
		}, nil)

	set.income.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]incomeModel.Income{
			{EntryDate: mustDate(t, "2026-08-11"), Amount: 300},
		}, nil)

	set.expense.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]expenseModel.Expense{
			{EntryDate: mustDate(t, "2026-08-10"), Amount: 1000},
		}, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Daily(context.Background(), "2026-08-10", "2026-08-12")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Days, 3)

	assert.Equal(t, "2026-08-10", res.Days[0].Date)
	assert.Equal(t, 7600.0, res.Days[0].RoomRevenue)
	assert.Equal(t, 1000.0, res.Days[0].TotalExpenses)
	assert.Equal(t, 6600.0, res.Days[0].NetProfit)

	assert.Equal(t, 300.0, res.Days[1].AdditionalIncome)
	assert.Equal(t, 300.0, res.Days[1].NetProfit)

	assert.Equal(t, 0.0, res.Days[2].TotalRevenue)
}

func TestReportService_Monthly(t *testing.T) {
	svc, set := newReportService(t)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	set.sale.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]saleModel.DailySale{
			{SaleDate: mustDate(t, "2026-03-10"), TotalAmount: 5000},
			{SaleDate: mustDate(t, "2026-08-10"), TotalAmount: 7600},
		}, nil)

	set.income.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	set.expense.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]expenseModel.Expense{
			{EntryDate: mustDate(t, "2026-03-20"), Amount: 1500},
		}, nil)

	set.booking.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{Status: bookingModel.StatusCompleted, CheckOutDate: mustDate(t, "2026-03-11")},
			{Status: bookingModel.StatusCompleted, CheckOutDate: mustDate(t, "2026-03-25")},
			{Status: bookingModel.StatusCompleted, CheckOutDate: mustDate(t, "2026-08-11")},
		}, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Monthly(context.Background(), "2026")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2026, res.Year)
	assert.Len(t, res.Months, 12)

	march := res.Months[2]
	assert.Equal(t, 5000.0, march.RoomRevenue)
	assert.Equal(t, 1500.0, march.TotalExpenses)
	assert.Equal(t, 3500.0, march.NetProfit)
	assert.Equal(t, 2, march.CompletedBookings)

	august := res.Months[7]
	assert.Equal(t, 7600.0, august.RoomRevenue)
	assert.Equal(t, 1, august.CompletedBookings)

	assert.Equal(t, 0.0, res.Months[0].TotalRevenue)
	assert.Equal(t, 0, res.Months[0].CompletedBookings)
}

func TestReportService_Monthly_InvalidYear(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.Monthly(context.Background(), "twenty-six")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestReportService_Comparison(t *testing.T) {
	svc, set := newReportService(t)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	now := timezone.Now()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())

	// Sales exist only in the current month; the previous month is empty, so
	// the revenue change reports a flat 100%.
	set.sale.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]saleModel.DailySale, error) {
			first, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)

			if start, ok := first.Value.(time.Time); ok && start.Equal(currentMonthStart) {
				return []saleModel.DailySale{{SaleDate: currentMonthStart, TotalAmount: 7600}}, nil
			}

			return nil, nil
		}).
		Times(2)

	set.income.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	set.expense.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Comparison(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 7600.0, res.Current.TotalRevenue)
	assert.Equal(t, 0.0, res.Previous.TotalRevenue)
	assert.Equal(t, 100.0, res.RevenueChange)
	assert.Equal(t, 0.0, res.ExpenseChange)
	assert.Equal(t, 100.0, res.ProfitChange)
}
