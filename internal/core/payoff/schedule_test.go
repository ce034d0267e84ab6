package payoff_test

import (
	"testing"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/payoff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDueDay(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want int
	}{
		{"plain number", "15", 15},
		{"ordinal suffix", "31st", 31},
		{"embedded in sentence", "due on the 5th of each month", 5},
		{"first digit run wins", "between 3 and 20", 3},
		{"empty string", "", 1},
		{"no digits", "end of month", 1},
		{"zero falls back", "0th", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payoff.ParseDueDay(tt.hint))
		})
	}
}

func TestInstallmentDates_PastPayoffDateYieldsNothing(t *testing.T) {
	today := date(2024, time.March, 10)

	assert.Empty(t, payoff.InstallmentDates(today, date(2024, time.February, 1), 15))
	assert.Empty(t, payoff.InstallmentDates(today, today, 15))
}

func TestInstallmentDates_EnumeratesEveryMonthThroughPayoff(t *testing.T) {
	today := date(2024, time.January, 15)
	dates := payoff.InstallmentDates(today, date(2024, time.March, 31), 31)

	require.Len(t, dates, 3)
	assert.Equal(t, date(2024, time.January, 31), dates[0])
	assert.Equal(t, date(2024, time.February, 29), dates[1]) // leap year
	assert.Equal(t, date(2024, time.March, 31), dates[2])
}

func TestInstallmentDates_ClampsToShortMonths(t *testing.T) {
	today := date(2023, time.January, 1)
	dates := payoff.InstallmentDates(today, date(2023, time.April, 30), 31)

	require.Len(t, dates, 4)
	assert.Equal(t, date(2023, time.January, 31), dates[0])
	assert.Equal(t, date(2023, time.February, 28), dates[1])
	assert.Equal(t, date(2023, time.March, 31), dates[2])
	assert.Equal(t, date(2023, time.April, 30), dates[3])
}

func TestInstallmentDates_DropsFirstMonthWhenDueDayAlreadyPassed(t *testing.T) {
	// Due day 5 has passed by June 10, so June gets no installment.
	today := date(2024, time.June, 10)
	dates := payoff.InstallmentDates(today, date(2024, time.August, 20), 5)

	require.Len(t, dates, 2)
	assert.Equal(t, date(2024, time.July, 5), dates[0])
	assert.Equal(t, date(2024, time.August, 5), dates[1])
}

func TestInstallmentDates_SingleMonthAllCandidatesPassed(t *testing.T) {
	// Payoff date is in the future but the only candidate date has passed.
	today := date(2024, time.June, 10)
	dates := payoff.InstallmentDates(today, date(2024, time.June, 20), 5)

	assert.Empty(t, dates)
}

func TestInstallmentDates_DueDayEqualToTodayIsKept(t *testing.T) {
	today := date(2024, time.June, 10)
	dates := payoff.InstallmentDates(today, date(2024, time.July, 1), 10)

	require.Len(t, dates, 2)
	assert.Equal(t, today, dates[0])
}

func TestInstallmentDates_CrossesYearBoundary(t *testing.T) {
	today := date(2024, time.November, 1)
	dates := payoff.InstallmentDates(today, date(2025, time.February, 28), 15)

	require.Len(t, dates, 4)
	assert.Equal(t, date(2024, time.November, 15), dates[0])
	assert.Equal(t, date(2024, time.December, 15), dates[1])
	assert.Equal(t, date(2025, time.January, 15), dates[2])
	assert.Equal(t, date(2025, time.February, 15), dates[3])
}

func TestBuildSchedule_EqualRoundedAmounts(t *testing.T) {
	// 1000.00 across 3 months rounds to 333.33 each; the missing cent is an
	// accepted rounding artifact, not redistributed to the last installment.
	today := date(2024, time.January, 15)
	dates := payoff.InstallmentDates(today, date(2024, time.March, 31), payoff.ParseDueDay("31st"))
	require.Len(t, dates, 3)

	schedule := payoff.BuildSchedule(decimal.RequireFromString("1000.00"), dates)
	require.Len(t, schedule, 3)

	total := decimal.Zero
	for _, inst := range schedule {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("333.33")), "got %s", inst.Amount)
		total = total.Add(inst.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("999.99")), "got %s", total)
}

func TestBuildSchedule_RoundsHalfUp(t *testing.T) {
	dates := payoff.InstallmentDates(date(2024, time.January, 1), date(2024, time.February, 28), 1)
	require.Len(t, dates, 2)

	// 100.01 / 2 = 50.005 -> 50.01
	schedule := payoff.BuildSchedule(decimal.RequireFromString("100.01"), dates)
	require.Len(t, schedule, 2)
	assert.True(t, schedule[0].Amount.Equal(decimal.RequireFromString("50.01")), "got %s", schedule[0].Amount)
}

func TestBuildSchedule_ZeroBalance(t *testing.T) {
	// A zero balance is not an error; it produces zero-amount installments.
	dates := payoff.InstallmentDates(date(2024, time.May, 1), date(2024, time.June, 30), 15)
	require.Len(t, dates, 2)

	schedule := payoff.BuildSchedule(decimal.Zero, dates)
	require.Len(t, schedule, 2)
	for _, inst := range schedule {
		assert.True(t, inst.Amount.IsZero())
	}
}

func TestBuildSchedule_NoDates(t *testing.T) {
	assert.Empty(t, payoff.BuildSchedule(decimal.RequireFromString("500.00"), nil))
}

func TestScheduleInstallmentCountProperty(t *testing.T) {
	// Installment count equals the number of enumerated months, minus one
	// when the clamped due day in the starting month falls before today.
	tests := []struct {
		name   string
		today  time.Time
		payoff time.Time
		dueDay int
		want   int
	}{
		{"full first month", date(2024, time.January, 15), date(2024, time.June, 30), 20, 6},
		{"first month dropped", date(2024, time.January, 25), date(2024, time.June, 30), 20, 5},
		{"first month dropped by one day", date(2024, time.March, 30), date(2024, time.May, 31), 29, 2},
		{"clamped candidate equal to today kept", date(2024, time.February, 29), date(2024, time.April, 30), 31, 3},
		{"single month kept", date(2024, time.June, 1), date(2024, time.June, 20), 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, payoff.InstallmentDates(tt.today, tt.payoff, tt.dueDay), tt.want)
		})
	}
}
