package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportService(suite.mockRepo)
}

func (suite *ReportServiceTestSuite) TestMonthlySummary() {
	ctx := context.Background()
	totals := []domain.CategoryTotal{
		{Kind: domain.Income, Category: "Salary", Total: decimal.RequireFromString("3000.00")},
		{Kind: domain.Expense, Category: "Rent", Total: decimal.RequireFromString("1200.00")},
		{Kind: domain.Expense, Category: "Debt Payment", Total: decimal.RequireFromString("333.33")},
	}

	suite.mockRepo.On("CategoryTotals", ctx, day(2024, time.February, 1), day(2024, time.February, 29)).
		Return(totals, nil).Once()

	resp, err := suite.service.MonthlySummary(ctx, 2024, time.February)

	suite.Require().NoError(err)
	suite.Equal(2024, resp.Year)
	suite.Equal(2, resp.Month)
	suite.True(resp.TotalIncome.Equal(decimal.RequireFromString("3000.00")))
	suite.True(resp.TotalExpense.Equal(decimal.RequireFromString("1533.33")))
	suite.True(resp.Net.Equal(decimal.RequireFromString("1466.67")))
	suite.Len(resp.Categories, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestMonthlySummary_NoActivity() {
	ctx := context.Background()

	suite.mockRepo.On("CategoryTotals", ctx, day(2024, time.June, 1), day(2024, time.June, 30)).
		Return([]domain.CategoryTotal{}, nil).Once()

	resp, err := suite.service.MonthlySummary(ctx, 2024, time.June)

	suite.Require().NoError(err)
	suite.True(resp.TotalIncome.IsZero())
	suite.True(resp.TotalExpense.IsZero())
	suite.True(resp.Net.IsZero())
	suite.Empty(resp.Categories)
}

func (suite *ReportServiceTestSuite) TestProjection_RunningBalanceIncludesEmptyMonths() {
	ctx := context.Background()
	rows := []domain.MonthTotal{
		{Year: 2024, Month: time.January, Income: decimal.RequireFromString("3000"), Expense: decimal.RequireFromString("2000")},
		// February has no activity at all.
		{Year: 2024, Month: time.March, Income: decimal.RequireFromString("3000"), Expense: decimal.RequireFromString("3500")},
	}

	suite.mockRepo.On("MonthlyNetTotals", ctx, day(2024, time.January, 1), day(2024, time.March, 31)).
		Return(rows, nil).Once()

	resp, err := suite.service.Projection(ctx, day(2024, time.January, 15), 3)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Months, 3)

	jan, feb, mar := resp.Months[0], resp.Months[1], resp.Months[2]
	suite.Equal(1, jan.Month)
	suite.True(jan.Net.Equal(decimal.RequireFromString("1000")))
	suite.True(jan.RunningBalance.Equal(decimal.RequireFromString("1000")))

	suite.Equal(2, feb.Month)
	suite.True(feb.Income.IsZero())
	suite.True(feb.Expense.IsZero())
	suite.True(feb.RunningBalance.Equal(decimal.RequireFromString("1000")))

	suite.Equal(3, mar.Month)
	suite.True(mar.Net.Equal(decimal.RequireFromString("-500")))
	suite.True(mar.RunningBalance.Equal(decimal.RequireFromString("500")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestProjection_CrossesYearBoundary() {
	ctx := context.Background()

	suite.mockRepo.On("MonthlyNetTotals", ctx, day(2024, time.November, 1), day(2025, time.January, 31)).
		Return([]domain.MonthTotal{}, nil).Once()

	resp, err := suite.service.Projection(ctx, day(2024, time.November, 20), 3)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Months, 3)
	suite.Equal(2024, resp.Months[0].Year)
	suite.Equal(11, resp.Months[0].Month)
	suite.Equal(2025, resp.Months[2].Year)
	suite.Equal(1, resp.Months[2].Month)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
