package repository

import (
	"context"
	"errors"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Collection names shared by every store implementation.
const (
	ConfessionsCollection     = "confessions"
	BucketListItemsCollection = "bucketListItems"
	ExpensesCollection        = "expenses"
)

// ConfessionStore persists confessions.
type ConfessionStore interface {
	CreateConfession(ctx context.Context, confession *models.Confession) (*models.Confession, error)
	CountConfessions(ctx context.Context) (int64, error)
}

// BucketListStore persists bucket-list items keyed by title.
type BucketListStore interface {
	AddBucketListItem(ctx context.Context, item *models.BucketListItem) (*models.BucketListItem, error)
	// FindOneBucketListItem returns ErrNotFound when no item has the title.
	FindOneBucketListItem(ctx context.Context, title string) (*models.BucketListItem, error)
	CountBucketListItems(ctx context.Context) (int64, error)
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	// GetExpenseByID returns ErrNotFound when the id matches nothing.
	GetExpenseByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error)
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)
	FilterExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	AddTag(ctx context.Context, id primitive.ObjectID, tag string) error
	CountExpenses(ctx context.Context) (int64, error)
}

// ExpenseFilter is a conjunction of optional constraints; nil fields impose nothing.
type ExpenseFilter struct {
	MinAmount   *float64
	MaxAmount   *float64
	IsRecurring *bool
}

// IsEmpty reports whether the filter matches every expense.
func (f ExpenseFilter) IsEmpty() bool {
	return f.MinAmount == nil && f.MaxAmount == nil && f.IsRecurring == nil
}

var (
	_ ConfessionStore = (*ConfessionRepository)(nil)
	_ BucketListStore = (*BucketListRepository)(nil)
	_ ExpenseStore    = (*ExpenseRepository)(nil)
)
