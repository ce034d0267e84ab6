package services_test

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) DeletePlanEntries(ctx context.Context, debtName string) (int64, error) {
	args := m.Called(ctx, debtName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) ReplacePlanEntries(ctx context.Context, debtName string, entries []domain.Entry) error {
	args := m.Called(ctx, debtName, entries)
	return args.Error(0)
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

// MockDebtRepository is a mock type for the DebtRepositoryFacade interface.
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdatePlanDate(ctx context.Context, debtID string, planDate *time.Time, now time.Time) error {
	args := m.Called(ctx, debtID, planDate, now)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	args := m.Called(ctx, debtID)
	return args.Error(0)
}

var _ portsrepo.DebtRepositoryFacade = (*MockDebtRepository)(nil)

// MockReportingRepository is a mock type for the ReportingRepository interface.
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CategoryTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingRepository) MonthlyNetTotals(ctx context.Context, from, to time.Time) ([]domain.MonthTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthTotal), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)
