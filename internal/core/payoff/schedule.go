// Package payoff computes debt amortization schedules.
//
// The scheduler is a pure computation: given a balance, a loosely formatted
// due-day hint and a target payoff date, it produces the set of equal monthly
// installments covering every month from today through the payoff date.
// Persisting the result (and clearing any previous plan) is the caller's job.
package payoff

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Installment is a single scheduled payment.
type Installment struct {
	Date   time.Time
	Amount decimal.Decimal
}

// ParseDueDay extracts a day-of-month from a free-text due-day hint such as
// "15th" or "due on the 31st". It takes the first run of digit characters in
// the string; if the hint contains no digits, or the digits do not parse,
// the day defaults to 1. The value is not range-checked here: out-of-range
// days are clamped per month by InstallmentDates.
func ParseDueDay(hint string) int {
	start := -1
	for i, r := range hint {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 1
	}
	end := start
	for end < len(hint) && hint[end] >= '0' && hint[end] <= '9' {
		end++
	}
	day, err := strconv.Atoi(hint[start:end])
	if err != nil || day < 1 {
		return 1
	}
	return day
}

// InstallmentDates enumerates the payment dates for a plan running from
// today through payoffDate. One date is produced per calendar month from
// today's month through payoffDate's month inclusive, on dueDay clamped to
// the month's last day. Dates before today are dropped, which can only
// affect the first month. A payoffDate on or before today yields no dates.
func InstallmentDates(today, payoffDate time.Time, dueDay int) []time.Time {
	today = truncateToDay(today)
	payoffDate = truncateToDay(payoffDate)
	if !payoffDate.After(today) {
		return nil
	}

	var dates []time.Time
	year, month := today.Year(), today.Month()
	endYear, endMonth := payoffDate.Year(), payoffDate.Month()
	for year < endYear || (year == endYear && month <= endMonth) {
		day := dueDay
		if last := lastDayOfMonth(year, month); day > last {
			day = last
		}
		candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !candidate.Before(today) {
			dates = append(dates, candidate)
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return dates
}

// BuildSchedule spreads balance evenly across the given dates. Every
// installment gets the same amount, rounded half-up to 2 decimal places;
// the rounding residual (at most half a cent per installment) is not
// redistributed, so the schedule total may differ from balance by a few
// cents. An empty date list yields an empty schedule.
func BuildSchedule(balance decimal.Decimal, dates []time.Time) []Installment {
	if len(dates) == 0 {
		return nil
	}
	monthly := balance.Div(decimal.NewFromInt(int64(len(dates)))).Round(2)
	schedule := make([]Installment, len(dates))
	for i, d := range dates {
		schedule[i] = Installment{Date: d, Amount: monthly}
	}
	return schedule
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
