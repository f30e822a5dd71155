package bolt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type expenseRepository struct {
	store *bolthold.Store
}

func NewExpenseRepository(store *bolthold.Store) repository.ExpenseStore {
	return &expenseRepository{store: store}
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expense.ID = primitive.NewObjectID()
	if err := r.store.Insert(expense.ID.Hex(), expense); err != nil {
		return nil, fmt.Errorf("inserting expense: %w", err)
	}

	logger.Log.WithField("expense_id", expense.ID.Hex()).Info("Expense created successfully")
	return expense, nil
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var expense models.Expense
	err := r.store.Get(id.Hex(), &expense)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting expense: %w", err)
	}
	normalizeTags(&expense)
	return &expense, nil
}

func (r *expenseRepository) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	return r.find(ctx, nil)
}

func (r *expenseRepository) FilterExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error) {
	expenses, err := r.find(ctx, buildQuery(filter))
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"empty_filter": filter.IsEmpty(),
		"count":        len(expenses),
	}).Info("Filtered expenses fetched successfully")
	return expenses, nil
}

// AddTag reads and rewrites the record inside one write transaction so
// concurrent appends are serialized by bolt's single writer.
func (r *expenseRepository) AddTag(ctx context.Context, id primitive.ObjectID, tag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := id.Hex()
	err := r.store.Bolt().Update(func(tx *bbolt.Tx) error {
		var expense models.Expense
		if err := r.store.TxGet(tx, key, &expense); err != nil {
			return err
		}
		expense.Tags = append(expense.Tags, tag)
		return r.store.TxUpdate(tx, key, &expense)
	})
	if errors.Is(err, bolthold.ErrNotFound) {
		logger.Log.WithField("expense_id", key).Warn("Tag push matched no expense")
		return nil
	}
	if err != nil {
		return fmt.Errorf("adding tag: %w", err)
	}
	return nil
}

func (r *expenseRepository) CountExpenses(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := r.store.Count(&models.Expense{}, nil)
	if err != nil {
		return 0, fmt.Errorf("counting expenses: %w", err)
	}
	return int64(n), nil
}

func (r *expenseRepository) find(ctx context.Context, query *bolthold.Query) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := r.store.Find(&expenses, query); err != nil {
		return nil, fmt.Errorf("finding expenses: %w", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	for i := range expenses {
		normalizeTags(&expenses[i])
	}
	return expenses, nil
}

// buildQuery mirrors repository.BuildExpenseQuery for bolthold; nil means all records.
func buildQuery(filter repository.ExpenseFilter) *bolthold.Query {
	var query *bolthold.Query
	where := func(field string) *bolthold.Criterion {
		if query == nil {
			return bolthold.Where(field)
		}
		return query.And(field)
	}

	if filter.MinAmount != nil {
		query = where("Amount").Ge(*filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = where("Amount").Le(*filter.MaxAmount)
	}
	if filter.IsRecurring != nil {
		query = where("IsRecurring").Eq(*filter.IsRecurring)
	}
	return query
}

// gob drops empty slices, so an expense with no tags decodes with nil Tags.
func normalizeTags(expense *models.Expense) {
	if expense.Tags == nil {
		expense.Tags = []string{}
	}
}
