package mocks

import (
	"context"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockConfessionStore struct {
	mock.Mock
}

func (m *MockConfessionStore) CreateConfession(ctx context.Context, confession *models.Confession) (*models.Confession, error) {
	args := m.Called(ctx, confession)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Confession), args.Error(1)
}

func (m *MockConfessionStore) CountConfessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBucketListStore struct {
	mock.Mock
}

func (m *MockBucketListStore) AddBucketListItem(ctx context.Context, item *models.BucketListItem) (*models.BucketListItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BucketListItem), args.Error(1)
}

func (m *MockBucketListStore) FindOneBucketListItem(ctx context.Context, title string) (*models.BucketListItem, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BucketListItem), args.Error(1)
}

func (m *MockBucketListStore) CountBucketListItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpenseStore struct {
	mock.Mock
}

func (m *MockExpenseStore) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseStore) GetExpenseByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseStore) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseStore) FilterExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseStore) AddTag(ctx context.Context, id primitive.ObjectID, tag string) error {
	args := m.Called(ctx, id, tag)
	return args.Error(0)
}

func (m *MockExpenseStore) CountExpenses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repository.ConfessionStore = (*MockConfessionStore)(nil)
	_ repository.BucketListStore = (*MockBucketListStore)(nil)
	_ repository.ExpenseStore    = (*MockExpenseStore)(nil)
)
