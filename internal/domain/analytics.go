package domain

import "context"

// MonthNames are the fixed analytics buckets, January first.
var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AnalyticsTotals are the headline numbers of the admin dashboard.
type AnalyticsTotals struct {
	Events        int     `json:"events"`
	Registrations int     `json:"registrations"`
	Revenue       float64 `json:"revenue"`
	AvgAttendance int     `json:"avgAttendance"`
}

// MonthlyStat aggregates the registrations made in one calendar month.
type MonthlyStat struct {
	Name          string  `json:"name"`
	Events        int     `json:"events"`
	Revenue       float64 `json:"revenue"`
	Registrations int     `json:"registrations"`
}

// CategoryStat counts events in one category.
type CategoryStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Analytics is the dashboard report.
// swagger:model Analytics
type Analytics struct {
	Totals       AnalyticsTotals `json:"totals"`
	MonthlyData  []MonthlyStat   `json:"monthlyData"`
	CategoryData []CategoryStat  `json:"categoryData"`
}

// AnalyticsService computes the dashboard report on demand.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*Analytics, error)
}
