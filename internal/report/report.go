// Package report computes the dashboard aggregates: the 24-month income
// overview, the account-usage histogram and the inactive-user list.
package report

import (
	"fmt"
	"time"

	"jiffy-backoffice-api-server/internal/models"
)

const (
	// OverviewMonths is the number of monthly buckets in each report.
	OverviewMonths = 24
	// InactiveAfterYears is how many calendar years without a login mark an account inactive.
	InactiveAfterYears = 2
)

// MonthKey is the zero-padded "YYYY-MM" label of the usage report and the cache keys.
func MonthKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// IncomeLabel is the unpadded "YYYY-M" label the income dashboard matches on.
func IncomeLabel(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// OverviewWindowStart is the first instant counted by IncomeOverview.
func OverviewWindowStart(now time.Time) time.Time {
	return monthStart(now).AddDate(0, -(OverviewMonths - 1), 0)
}

// IncomeOverview sums total_Amount per calendar month for the current month
// and the 23 before it. Buckets are ordered current month first.
func IncomeOverview(now time.Time, records []models.IncomeRecord) []models.MonthlyIncome {
	sums := make(map[string]float64, OverviewMonths)
	for _, r := range records {
		sums[IncomeLabel(r.Date)] += r.TotalAmount
	}

	out := make([]models.MonthlyIncome, 0, OverviewMonths)
	cur := monthStart(now)
	for i := 0; i < OverviewMonths; i++ {
		key := IncomeLabel(cur)
		out = append(out, models.MonthlyIncome{Date: key, Income: sums[key]})
		cur = cur.AddDate(0, -1, 0)
	}
	return out
}

// UsageWindow returns [Jan 1 of last year, Jan 1 of next year) in UTC.
func UsageWindow(now time.Time) (from, to time.Time) {
	year := now.UTC().Year()
	from = time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

// AccountUsage expands per-month login counts into 24 buckets. Months are
// paired across the two years: Jan of last year, Jan of this year, Feb of
// last year, and so on to Dec of this year. Missing months report zero.
func AccountUsage(now time.Time, counts map[string]int) []models.MonthlyUsage {
	year := now.UTC().Year()

	out := make([]models.MonthlyUsage, 0, OverviewMonths)
	for month := time.January; month <= time.December; month++ {
		for _, y := range []int{year - 1, year} {
			key := MonthKey(time.Date(y, month, 1, 0, 0, 0, 0, time.UTC))
			out = append(out, models.MonthlyUsage{Month: key, Users: counts[key]})
		}
	}
	return out
}

// InactiveUsers returns the contact details of users whose last login falls
// in a calendar year at least two years before now. Users that never logged
// in are not reported.
func InactiveUsers(now time.Time, users []models.User) []models.ContactInfo {
	cutoff := now.UTC().Year() - InactiveAfterYears

	out := make([]models.ContactInfo, 0)
	for _, u := range users {
		if u.LastLogin == nil {
			continue
		}
		if u.LastLogin.UTC().Year() <= cutoff {
			out = append(out, u.Contact())
		}
	}
	return out
}
