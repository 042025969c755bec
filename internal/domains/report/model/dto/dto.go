package dto

// ReportTotals is the aggregation block shared by every report flavor.
// Room revenue comes exclusively from daily sales; additional income from the
// income ledger.
type ReportTotals struct {
	RoomRevenue      float64 `json:"room_revenue"`
	AdditionalIncome float64 `json:"additional_income"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetProfit        float64 `json:"net_profit"`
}

type FinancialSummaryResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	ReportTotals
	RevenueBreakdown       map[string]float64 `json:"revenue_breakdown"`
	PaymentMethodBreakdown map[string]float64 `json:"payment_method_breakdown"`
	IncomeBreakdown        map[string]float64 `json:"income_breakdown"`
	ExpenseBreakdown       map[string]float64 `json:"expense_breakdown"`
}

type DailyReportEntry struct {
	Date string `json:"date"`
	ReportTotals
}

type DailyReportResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Days      []DailyReportEntry `json:"days"`
}

type MonthlyReportEntry struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	ReportTotals
	CompletedBookings int `json:"completed_bookings"`
}

type MonthlyReportResponse struct {
	Year   int                  `json:"year"`
	Months []MonthlyReportEntry `json:"months"`
}

type ComparisonPeriod struct {
	Month string `json:"month"`
	ReportTotals
}

type ComparisonResponse struct {
	Previous      ComparisonPeriod `json:"previous"`
	Current       ComparisonPeriod `json:"current"`
	RevenueChange float64          `json:"revenue_change"`
	ExpenseChange float64          `json:"expense_change"`
	ProfitChange  float64          `json:"profit_change"`
}
