package dto

// CreateExpenseRequest is the payload of POST /expenses.
type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest edits a ledger row.
type UpdateExpenseRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Category    string   `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
}

// CreateIncomeRequest is the payload of POST /income.
type CreateIncomeRequest struct {
	Source      string  `json:"source" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date" binding:"required"`
}

// DashboardStatsResponse aggregates the figures shown on the role dashboards.
type DashboardStatsResponse struct {
	TotalRooms     int     `json:"totalRooms"`
	AvailableRooms int     `json:"availableRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	TodayCheckIns  int     `json:"todayCheckIns"`
	TodayCheckOuts int     `json:"todayCheckOuts"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	TotalExpenses  float64 `json:"totalExpenses"`
	NetProfit      float64 `json:"netProfit"`
	OccupancyRate  float64 `json:"occupancyRate"`
}
