package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/core/services"
	"github.com/mpalomar/budgeteer/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	service      portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:           "Card A",
		CurrentBalance: decimal.RequireFromString("1200.505"),
		DueDayHint:     "15th",
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.NotEmpty(debt.DebtID)
	suite.Equal("Card A", debt.Name)
	suite.True(debt.CurrentBalance.Equal(decimal.RequireFromString("1200.51")), "got %s", debt.CurrentBalance)
	suite.Nil(debt.PayoffPlanDate)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NegativeBalance() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:           "Card A",
		CurrentBalance: decimal.RequireFromString("-1"),
	}

	debt, err := suite.service.CreateDebt(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Name:           "Card A",
		CurrentBalance: decimal.RequireFromString("100"),
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateDebt(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_BalanceEditKeepsPlanDate() {
	ctx := context.Background()
	planDate := day(2024, time.April, 30)
	existing := &domain.Debt{
		DebtID:         "debt-1",
		Name:           "Card A",
		CurrentBalance: decimal.RequireFromString("900.00"),
		DueDayHint:     "15th",
		PayoffPlanDate: &planDate,
	}
	newBalance := decimal.RequireFromString("700.00")

	suite.mockDebtRepo.On("FindDebtByID", ctx, "debt-1").Return(existing, nil).Once()
	suite.mockDebtRepo.On("UpdateDebt", ctx, mock.AnythingOfType("domain.Debt")).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, "debt-1", dto.UpdateDebtRequest{CurrentBalance: &newBalance})

	suite.Require().NoError(err)
	suite.True(updated.CurrentBalance.Equal(newBalance))
	suite.Require().NotNil(updated.PayoffPlanDate)
	suite.Equal(planDate, *updated.PayoffPlanDate)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestDeleteDebt_SingleTransactionalCall() {
	ctx := context.Background()

	// The repository owns the whole removal, debt row and generated
	// installments together; the service must not issue a second call that
	// could fail independently.
	suite.mockDebtRepo.On("DeleteDebt", ctx, "debt-1").Return(nil).Once()

	err := suite.service.DeleteDebt(ctx, "debt-1")

	suite.Require().NoError(err)
	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockDebtRepo.AssertNumberOfCalls(suite.T(), "DeleteDebt", 1)
}

func (suite *DebtServiceTestSuite) TestDeleteDebt_NotFound() {
	ctx := context.Background()

	suite.mockDebtRepo.On("DeleteDebt", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteDebt(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
