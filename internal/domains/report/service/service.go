package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	expenseModel "frontdesk/internal/domains/expense/model"
	expenseRepository "frontdesk/internal/domains/expense/repository"
	incomeModel "frontdesk/internal/domains/income/model"
	incomeRepository "frontdesk/internal/domains/income/repository"
	"frontdesk/internal/domains/report/model/dto"
	roomRepository "frontdesk/internal/domains/room/repository"
	saleModel "frontdesk/internal/domains/sale/model"
	saleRepository "frontdesk/internal/domains/sale/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSummaryReport    = "report:summary"
	cacheDailyReport      = "report:daily"
	cacheMonthlyReport    = "report:monthly"
	cacheComparisonReport = "report:comparison"

	unknownRoomType = "Unknown"
)

type Report interface {
	Summary(ctx context.Context, startDate, endDate string) (dto.FinancialSummaryResponse, error)
	Daily(ctx context.Context, startDate, endDate string) (dto.DailyReportResponse, error)
	Monthly(ctx context.Context, year string) (dto.MonthlyReportResponse, error)
	Comparison(ctx context.Context) (dto.ComparisonResponse, error)
}

type serviceImpl struct {
	saleRepo    saleRepository.DailySale
	incomeRepo  incomeRepository.Income
	expenseRepo expenseRepository.Expense
	roomRepo    roomRepository.Room
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	saleRepo saleRepository.DailySale,
	incomeRepo incomeRepository.Income,
	expenseRepo expenseRepository.Expense,
	roomRepo roomRepository.Room,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		saleRepo:    saleRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Summary aggregates revenue and expenses within the inclusive date window.
// The revenue breakdown groups sale totals by the room's current type; rooms
// retyped or deleted since the sale end up under "Unknown".
func (s *serviceImpl) Summary(ctx context.Context, startDate, endDate string) (res dto.FinancialSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := resolveWindow(startDate, endDate)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheSummaryReport, start.Unix(), end.Unix())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for financial summary")

		return res, nil
	}

	sales, incomes, expenses, err := s.fetchLedgers(ctx, start, end)
	if err != nil {
		return res, err
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for revenue breakdown")

		return res, fmt.Errorf("failed to get rooms for revenue breakdown: %w", err)
	}

	roomTypes := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomTypes[room.RoomNumber] = room.RoomType
	}

	res = dto.FinancialSummaryResponse{
		StartDate:              timezone.Format(start, constant.DateOnlyFormat),
		EndDate:                timezone.Format(end, constant.DateOnlyFormat),
		ReportTotals:           totals(sales, incomes, expenses),
		RevenueBreakdown:       map[string]float64{},
		PaymentMethodBreakdown: map[string]float64{},
		IncomeBreakdown:        map[string]float64{},
		ExpenseBreakdown:       map[string]float64{},
	}

	for _, sale := range sales {
		roomType, ok := roomTypes[sale.RoomNumber]
		if !ok {
			roomType = unknownRoomType
		}

		res.RevenueBreakdown[roomType] += sale.TotalAmount
		res.PaymentMethodBreakdown[sale.PaymentMethod] += sale.TotalAmount
	}

	for _, income := range incomes {
		res.IncomeBreakdown[income.Category] += income.Amount
	}

	for _, expense := range expenses {
		res.ExpenseBreakdown[expense.Category] += expense.Amount
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save financial summary to cache")
		}
	}()

	return res, nil
}

// Daily runs the same aggregation per calendar day of the window. Every day
// gets an entry, including days with no activity.
func (s *serviceImpl) Daily(ctx context.Context, startDate, endDate string) (res dto.DailyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Daily")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := resolveWindow(startDate, endDate)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheDailyReport, start.Unix(), end.Unix())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for daily report")

		return res, nil
	}

	sales, incomes, expenses, err := s.fetchLedgers(ctx, start, end)
	if err != nil {
		return res, err
	}

	res = dto.DailyReportResponse{
		StartDate: timezone.Format(start, constant.DateOnlyFormat),
		EndDate:   timezone.Format(end, constant.DateOnlyFormat),
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := timezone.Format(day, constant.DateOnlyFormat)
		entry := dto.DailyReportEntry{Date: key}

		for _, sale := range sales {
			if timezone.Format(sale.SaleDate, constant.DateOnlyFormat) == key {
				entry.RoomRevenue += sale.TotalAmount
			}
		}

		for _, income := range incomes {
			if timezone.Format(income.EntryDate, constant.DateOnlyFormat) == key {
				entry.AdditionalIncome += income.Amount
			}
		}

		for _, expense := range expenses {
			if timezone.Format(expense.EntryDate, constant.DateOnlyFormat) == key {
				entry.TotalExpenses += expense.Amount
			}
		}

		entry.TotalRevenue = entry.RoomRevenue + entry.AdditionalIncome
		entry.NetProfit = entry.TotalRevenue - entry.TotalExpenses

		res.Days = append(res.Days, entry)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save daily report to cache")
		}
	}()

	return res, nil
}

// Monthly aggregates per calendar month of the given year and counts the
// bookings completed in each month, bucketed by checkout date.
func (s *serviceImpl) Monthly(ctx context.Context, year string) (res dto.MonthlyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Monthly")
	defer scope.End()
	defer scope.TraceIfError(err)

	reportYear := timezone.Now().Year()

	if year != constant.Empty {
		reportYear, err = shared.ConvertStringToInt(year)
		if err != nil {
			return res, failure.BadRequestFromString("invalid year parameter") // nolint:wrapcheck
		}
	}

	cacheKey := shared.BuildCacheKey(cacheMonthlyReport, reportYear)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for monthly report")

		return res, nil
	}

	start := time.Date(reportYear, time.January, 1, 0, 0, 0, 0, timezone.GetLocation())
	end := time.Date(reportYear, time.December, 31, 0, 0, 0, 0, timezone.GetLocation())

	sales, incomes, expenses, err := s.fetchLedgers(ctx, start, end)
	if err != nil {
		return res, err
	}

	completedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusCompleted,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "check_out_date_start",
				Field:    bookingModel.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "check_out_date_end",
				Field:    bookingModel.FieldCheckOutDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end,
				Table:    bookingModel.TableName,
			},
		},
	}

	completed, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed bookings")

		return res, fmt.Errorf("failed to get completed bookings: %w", err)
	}

	res = dto.MonthlyReportResponse{Year: reportYear}

	for month := time.January; month <= time.December; month++ {
		entry := dto.MonthlyReportEntry{
			Month:     int(month),
			MonthName: month.String(),
		}

		for _, sale := range sales {
			if timezone.ToAppTime(sale.SaleDate).Month() == month {
				entry.RoomRevenue += sale.TotalAmount
			}
		}

		for _, income := range incomes {
			if timezone.ToAppTime(income.EntryDate).Month() == month {
				entry.AdditionalIncome += income.Amount
			}
		}

		for _, expense := range expenses {
			if timezone.ToAppTime(expense.EntryDate).Month() == month {
				entry.TotalExpenses += expense.Amount
			}
		}

		for _, booking := range completed {
			if timezone.ToAppTime(booking.CheckOutDate).Month() == month {
				entry.CompletedBookings++
			}
		}

		entry.TotalRevenue = entry.RoomRevenue + entry.AdditionalIncome
		entry.NetProfit = entry.TotalRevenue - entry.TotalExpenses

		res.Months = append(res.Months, entry)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save monthly report to cache")
		}
	}()

	return res, nil
}

// Comparison puts the previous and current calendar month side by side. A
// change from zero counts as 100% when anything was earned, otherwise 0%.
func (s *serviceImpl) Comparison(ctx context.Context) (res dto.ComparisonResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Comparison")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheComparisonReport, &res)
	if err == nil {
		log.Info().Msg("cache hit for comparison report")

		return res, nil
	}

	now := timezone.Now()
	currentStart, currentEnd := monthWindow(now)
	previousStart, previousEnd := monthWindow(currentStart.AddDate(0, 0, -1))

	currentTotals, err := s.windowTotals(ctx, currentStart, currentEnd)
	if err != nil {
		return res, err
	}

	previousTotals, err := s.windowTotals(ctx, previousStart, previousEnd)
	if err != nil {
		return res, err
	}

	res = dto.ComparisonResponse{
		Previous: dto.ComparisonPeriod{
			Month:        previousStart.Format("January 2006"),
			ReportTotals: previousTotals,
		},
		Current: dto.ComparisonPeriod{
			Month:        currentStart.Format("January 2006"),
			ReportTotals: currentTotals,
		},
		RevenueChange: percentChange(previousTotals.TotalRevenue, currentTotals.TotalRevenue),
		ExpenseChange: percentChange(previousTotals.TotalExpenses, currentTotals.TotalExpenses),
		ProfitChange:  percentChange(previousTotals.NetProfit, currentTotals.NetProfit),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheComparisonReport, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save comparison report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) windowTotals(ctx context.Context, start, end time.Time) (dto.ReportTotals, error) {
	sales, incomes, expenses, err := s.fetchLedgers(ctx, start, end)
	if err != nil {
		return dto.ReportTotals{}, err
	}

	return totals(sales, incomes, expenses), nil
}

func (s *serviceImpl) fetchLedgers(ctx context.Context, start, end time.Time) ([]saleModel.DailySale, []incomeModel.Income, []expenseModel.Expense, error) {
	sales, err := s.saleRepo.GetAll(ctx, gDto.QueryParams{}, dateWindowFilter(saleModel.TableName, saleModel.FieldSaleDate, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily sales")

		return nil, nil, nil, fmt.Errorf("failed to get daily sales: %w", err)
	}

	incomes, err := s.incomeRepo.GetAll(ctx, gDto.QueryParams{}, dateWindowFilter(incomeModel.TableName, incomeModel.FieldEntryDate, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get incomes")

		return nil, nil, nil, fmt.Errorf("failed to get incomes: %w", err)
	}

	expenses, err := s.expenseRepo.GetAll(ctx, gDto.QueryParams{}, dateWindowFilter(expenseModel.TableName, expenseModel.FieldEntryDate, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses")

		return nil, nil, nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	return sales, incomes, expenses, nil
}

func totals(sales []saleModel.DailySale, incomes []incomeModel.Income, expenses []expenseModel.Expense) dto.ReportTotals {
	res := dto.ReportTotals{}

	for _, sale := range sales {
		res.RoomRevenue += sale.TotalAmount
	}

	for _, income := range incomes {
		res.AdditionalIncome += income.Amount
	}

	for _, expense := range expenses {
		res.TotalExpenses += expense.Amount
	}

	res.TotalRevenue = res.RoomRevenue + res.AdditionalIncome
	res.NetProfit = res.TotalRevenue - res.TotalExpenses

	return res
}

// resolveWindow parses the inclusive report window, defaulting each missing
// bound to the current calendar month.
func resolveWindow(startDate, endDate string) (time.Time, time.Time, error) {
	defaultStart, defaultEnd := monthWindow(timezone.Now())

	start := defaultStart
	end := defaultEnd

	if startDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid start_date parameter") // nolint:wrapcheck
		}

		start = timezone.Midnight(parsed)
	}

	if endDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid end_date parameter") // nolint:wrapcheck
		}

		end = timezone.Midnight(parsed)
	}

	return start, end, nil
}

// monthWindow returns the first and last day of t's calendar month.
func monthWindow(t time.Time) (time.Time, time.Time) {
	t = timezone.ToAppTime(t)

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())
	end := start.AddDate(0, 1, -1)

	return start, end
}

func dateWindowFilter(table, field string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  field + "_start",
				Field:    field,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    table,
			},
			gDto.Filter{
				ArgName:  field + "_end",
				Field:    field,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end,
				Table:    table,
			},
		},
	}
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}

		return 0
	}

	return (current - previous) / previous * 100
}
