package report

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiffy-backoffice-api-server/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestIncomeOverview_SumsWithinMonth(t *testing.T) {
	now := date(2024, time.March, 10)
	records := []models.IncomeRecord{
		{TotalAmount: 100, Date: date(2024, time.January, 15)},
		{TotalAmount: 50, Date: date(2024, time.January, 20)},
	}

	got := IncomeOverview(now, records)
	require.Len(t, got, OverviewMonths)

	byMonth := map[string]float64{}
	for _, b := range got {
		byMonth[b.Date] = b.Income
	}
	assert.Equal(t, 150.0, byMonth["2024-1"])
	assert.Equal(t, 0.0, byMonth["2024-2"])
	assert.Equal(t, 0.0, byMonth["2024-3"])
}

func TestIncomeOverview_OrderAndWindow(t *testing.T) {
	now := date(2024, time.March, 31)
	got := IncomeOverview(now, nil)

	require.Len(t, got, OverviewMonths)
	assert.Equal(t, "2024-3", got[0].Date)
	assert.Equal(t, "2024-2", got[1].Date)
	assert.Equal(t, "2023-12", got[3].Date)
	assert.Equal(t, "2022-4", got[OverviewMonths-1].Date)
	for _, b := range got {
		assert.Zero(t, b.Income)
	}
	assert.Equal(t, time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC), OverviewWindowStart(now))
}

func TestIncomeOverview_IgnoresRecordsOutsideWindow(t *testing.T) {
	now := date(2024, time.March, 1)
	records := []models.IncomeRecord{
		{TotalAmount: 999, Date: date(2022, time.March, 31)},
		{TotalAmount: 10, Date: date(2022, time.April, 1)},
		{TotalAmount: 5, Date: date(2024, time.April, 1)},
	}

	var total float64
	for _, b := range IncomeOverview(now, records) {
		total += b.Income
	}
	assert.Equal(t, 10.0, total)
}

func TestIncomeOverview_TotalsMatchInput(t *testing.T) {
	gofakeit.Seed(42)
	now := date(2025, time.June, 15)
	start := OverviewWindowStart(now)

	var want float64
	records := make([]models.IncomeRecord, 0, 200)
	for i := 0; i < 200; i++ {
		amount := float64(gofakeit.Number(1, 500))
		want += amount
		records = append(records, models.IncomeRecord{
			OrderID:     gofakeit.UUID(),
			TotalAmount: amount,
			Date:        gofakeit.DateRange(start, now),
		})
	}

	var got float64
	for _, b := range IncomeOverview(now, records) {
		got += b.Income
	}
	assert.InDelta(t, want, got, 1e-6)
}

func TestMonthLabels(t *testing.T) {
	jan := date(2024, time.January, 9)
	assert.Equal(t, "2024-1", IncomeLabel(jan))
	assert.Equal(t, "2024-01", MonthKey(jan))
	assert.Equal(t, "2024-11", IncomeLabel(date(2024, time.November, 30)))
}

// countLogins buckets last-login timestamps the way the repository aggregation does.
func countLogins(logins []time.Time) map[string]int {
	counts := make(map[string]int)
	for _, t := range logins {
		counts[MonthKey(t)]++
	}
	return counts
}

func TestAccountUsage(t *testing.T) {
	now := date(2024, time.August, 5)
	counts := countLogins([]time.Time{
		date(2023, time.January, 2),
		date(2024, time.August, 1),
		date(2024, time.August, 3),
	})

	got := AccountUsage(now, counts)
	require.Len(t, got, OverviewMonths)

	assert.Equal(t, models.MonthlyUsage{Month: "2023-01", Users: 1}, got[0])
	assert.Equal(t, models.MonthlyUsage{Month: "2024-01", Users: 0}, got[1])
	assert.Equal(t, models.MonthlyUsage{Month: "2023-02", Users: 0}, got[2])
	assert.Equal(t, models.MonthlyUsage{Month: "2024-08", Users: 2}, got[15])
	assert.Equal(t, models.MonthlyUsage{Month: "2023-12", Users: 0}, got[22])
	assert.Equal(t, models.MonthlyUsage{Month: "2024-12", Users: 0}, got[23])
}

func TestAccountUsage_PairsMonthsAcrossYears(t *testing.T) {
	got := AccountUsage(date(2024, time.June, 10), map[string]int{})
	require.Len(t, got, OverviewMonths)

	for i, b := range got {
		month := time.Month(i/2 + 1)
		year := 2023 + i%2
		assert.Equal(t, MonthKey(date(year, month, 1)), b.Month, "bucket %d", i)
		assert.Zero(t, b.Users)
	}
}

func TestUsageWindow(t *testing.T) {
	from, to := UsageWindow(date(2024, time.February, 29))
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestInactiveUsers(t *testing.T) {
	now := date(2024, time.May, 1)
	old := date(2022, time.December, 31)
	recent := date(2023, time.January, 1)

	users := []models.User{
		{Name: "old", Email: "old@x.com", LastLogin: &old},
		{Name: "recent", Email: "recent@x.com", LastLogin: &recent},
		{Name: "never"},
	}

	got := InactiveUsers(now, users)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].Name)
	assert.Equal(t, "old@x.com", got[0].Email)
}
