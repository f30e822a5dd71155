package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExpenseRepository struct handles database operations related to expenses
type ExpenseRepository struct {
	collection *mongo.Collection
}

// NewExpenseRepository creates a new instance of ExpenseRepository
func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{
		collection: db.Collection(ExpensesCollection),
	}
}

// CreateExpense inserts a new expense
func (r *ExpenseRepository) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	result, err := r.collection.InsertOne(ctx, expense)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		expense.ID = id
	}

	logger.Log.WithField("expense_id", expense.ID.Hex()).Info("Expense created successfully")
	return expense, nil
}

// GetExpenseByID fetches an expense by its ID
func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	var expense models.Expense

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Log.WithField("expense_id", id.Hex()).Warn("Expense not found")
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("expense_id", id.Hex()).Error("Failed to find expense by ID")
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	logger.Log.WithField("expense_id", id.Hex()).Info("Expense fetched successfully")
	return &expense, nil
}

// GetAllExpenses fetches every expense in store order
func (r *ExpenseRepository) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := r.find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch all expenses")
		return nil, err
	}

	logger.Log.WithField("count", len(expenses)).Info("All expenses fetched successfully")
	return expenses, nil
}

// FilterExpenses fetches the expenses matching every supplied constraint
func (r *ExpenseRepository) FilterExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := BuildExpenseQuery(filter)

	expenses, err := r.find(ctx, query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch filtered expenses")
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"query": query,
		"count": len(expenses),
	}).Info("Filtered expenses fetched successfully")
	return expenses, nil
}

// AddTag appends the tag to the expense's tags array; duplicates are kept.
func (r *ExpenseRepository) AddTag(ctx context.Context, id primitive.ObjectID, tag string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$push": bson.M{"tags": tag}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Log.WithError(err).WithField("expense_id", id.Hex()).Error("Failed to add tag to expense")
		return fmt.Errorf("failed to add tag: %w", err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"expense_id": id.Hex(),
		"tag":        tag,
	})
	if result.MatchedCount == 0 {
		log.Warn("Tag push matched no expense")
		return nil
	}
	log.Info("Tag added to expense")
	return nil
}

// CountExpenses counts every stored expense
func (r *ExpenseRepository) CountExpenses(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return n, nil
}

func (r *ExpenseRepository) find(ctx context.Context, query bson.M) ([]models.Expense, error) {
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// BuildExpenseQuery translates the filter into a MongoDB query document.
// Only supplied constraints appear; an empty filter yields an empty document.
func BuildExpenseQuery(filter ExpenseFilter) bson.M {
	query := bson.M{}

	amount := bson.M{}
	if filter.MinAmount != nil {
		amount["$gte"] = *filter.MinAmount
	}
	if filter.MaxAmount != nil {
		amount["$lte"] = *filter.MaxAmount
	}
	if len(amount) > 0 {
		query["amount"] = amount
	}

	if filter.IsRecurring != nil {
		query["isRecurring"] = *filter.IsRecurring
	}

	return query
}
