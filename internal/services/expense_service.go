package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseService encapsulates the business logic for expenses.
type ExpenseService struct {
	repo repository.ExpenseStore
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(repo repository.ExpenseStore) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// FilterParams carries the raw query-string values; empty means absent.
type FilterParams struct {
	MinAmount   string
	MaxAmount   string
	IsRecurring string
}

// CreateExpense stores the expense as received. The store assigns the ID, and a
// missing tags list is stored as an empty array so later tag pushes have an array to append to.
func (s *ExpenseService) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	expense.ID = primitive.NilObjectID
	if expense.Tags == nil {
		expense.Tags = []string{}
	}

	created, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

// GetExpenseByID retrieves an expense by its hex ID.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	objID, err := parseID(id)
	if err != nil {
		logger.Log.WithField("expense_id", id).Warn("Invalid expense ID")
		return nil, err
	}

	expense, err := s.repo.GetExpenseByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetAllExpenses returns every stored expense.
func (s *ExpenseService) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.repo.GetAllExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// FilterExpenses returns the expenses matching every supplied parameter.
func (s *ExpenseService) FilterExpenses(ctx context.Context, params FilterParams) ([]models.Expense, error) {
	filter, err := ParseExpenseFilter(params)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"minAmount":   params.MinAmount,
			"maxAmount":   params.MaxAmount,
			"isRecurring": params.IsRecurring,
		}).Warn("Rejected expense filter")
		return nil, err
	}

	expenses, err := s.repo.FilterExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter expenses: %w", err)
	}
	return expenses, nil
}

// AddTag appends tag to the expense's tags.
func (s *ExpenseService) AddTag(ctx context.Context, id, tag string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.AddTag(ctx, objID, tag); err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}
	return nil
}

// CountExpenses counts stored expenses.
func (s *ExpenseService) CountExpenses(ctx context.Context) (int64, error) {
	return s.repo.CountExpenses(ctx)
}

// ParseExpenseFilter builds the filter from raw query values. Only non-empty
// values constrain; isRecurring is true exactly when the value is "true".
func ParseExpenseFilter(params FilterParams) (repository.ExpenseFilter, error) {
	var filter repository.ExpenseFilter

	if params.MinAmount != "" {
		v, err := strconv.ParseFloat(params.MinAmount, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: minAmount %q is not a number", ErrInvalidFilter, params.MinAmount)
		}
		filter.MinAmount = &v
	}
	if params.MaxAmount != "" {
		v, err := strconv.ParseFloat(params.MaxAmount, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: maxAmount %q is not a number", ErrInvalidFilter, params.MaxAmount)
		}
		filter.MaxAmount = &v
	}
	if params.IsRecurring != "" {
		recurring := params.IsRecurring == "true"
		filter.IsRecurring = &recurring
	}

	return filter, nil
}
