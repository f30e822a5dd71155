package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseExpenseFilter(t *testing.T) {
	tests := []struct {
		name    string
		params  FilterParams
		wantMin *float64
		wantMax *float64
		wantRec *bool
		wantErr bool
	}{
		{name: "nothing supplied"},
		{
			name:    "min and max",
			params:  FilterParams{MinAmount: "10", MaxAmount: "20.5"},
			wantMin: ptr(10.0),
			wantMax: ptr(20.5),
		},
		{
			name:    "recurring true",
			params:  FilterParams{IsRecurring: "true"},
			wantRec: ptr(true),
		},
		{
			name:    "recurring false",
			params:  FilterParams{IsRecurring: "false"},
			wantRec: ptr(false),
		},
		{
			name:    "recurring anything else is false",
			params:  FilterParams{IsRecurring: "yes"},
			wantRec: ptr(false),
		},
		{
			name:    "non numeric min",
			params:  FilterParams{MinAmount: "ten"},
			wantErr: true,
		},
		{
			name:    "non numeric max",
			params:  FilterParams{MaxAmount: "1,5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ParseExpenseFilter(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, filter.MinAmount)
			assert.Equal(t, tt.wantMax, filter.MaxAmount)
			assert.Equal(t, tt.wantRec, filter.IsRecurring)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestExpenseService_CreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("nil tags stored as empty", func(t *testing.T) {
		repo := new(mocks.MockExpenseStore)
		svc := NewExpenseService(repo)

		repo.On("CreateExpense", ctx, mock.MatchedBy(func(e *models.Expense) bool {
			return e.Tags != nil && len(e.Tags) == 0
		})).Return(&models.Expense{ID: primitive.NewObjectID(), Title: "Lunch", Tags: []string{}}, nil)

		created, err := svc.CreateExpense(ctx, &models.Expense{Title: "Lunch"})
		require.NoError(t, err)
		assert.Equal(t, "Lunch", created.Title)
		repo.AssertExpectations(t)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		repo := new(mocks.MockExpenseStore)
		svc := NewExpenseService(repo)
		storeErr := errors.New("connection reset")
		repo.On("CreateExpense", ctx, mock.Anything).Return(nil, storeErr)

		_, err := svc.CreateExpense(ctx, &models.Expense{Title: "Lunch"})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestExpenseService_GetExpenseByID(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockExpenseStore)
		svc := NewExpenseService(repo)
		repo.On("GetExpenseByID", ctx, id).Return(&models.Expense{ID: id, Title: "Lunch"}, nil)

		got, err := svc.GetExpenseByID(ctx, id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockExpenseStore)
		svc := NewExpenseService(repo)
		repo.On("GetExpenseByID", ctx, id).Return(nil, repository.ErrNotFound)

		_, err := svc.GetExpenseByID(ctx, id.Hex())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("invalid id never reaches the store", func(t *testing.T) {
		repo := new(mocks.MockExpenseStore)
		svc := NewExpenseService(repo)

		_, err := svc.GetExpenseByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
		repo.AssertNotCalled(t, "GetExpenseByID", mock.Anything, mock.Anything)
	})
}

func TestExpenseService_FilterExpenses(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockExpenseStore)
	svc := NewExpenseService(repo)

	want := repository.ExpenseFilter{MinAmount: ptr(10.0), MaxAmount: ptr(20.0), IsRecurring: ptr(false)}
	repo.On("FilterExpenses", ctx, want).Return([]models.Expense{{Title: "Lunch at Joe's", Amount: 15}}, nil)

	got, err := svc.FilterExpenses(ctx, FilterParams{MinAmount: "10", MaxAmount: "20", IsRecurring: "false"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lunch at Joe's", got[0].Title)

	_, err = svc.FilterExpenses(ctx, FilterParams{MinAmount: "abc"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
	repo.AssertNumberOfCalls(t, "FilterExpenses", 1)
}

func TestExpenseService_AddTag(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	repo := new(mocks.MockExpenseStore)
	svc := NewExpenseService(repo)

	repo.On("AddTag", ctx, id, "food").Return(nil).Once()
	assert.NoError(t, svc.AddTag(ctx, id.Hex(), "food"))

	repo.On("AddTag", ctx, id, "food").Return(errors.New("boom")).Once()
	assert.ErrorContains(t, svc.AddTag(ctx, id.Hex(), "food"), "failed to add tag")

	assert.ErrorIs(t, svc.AddTag(ctx, "xyz", "food"), ErrInvalidID)
	repo.AssertExpectations(t)
}

func TestBucketListService_GetItemByTitle(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockBucketListStore)
	svc := NewBucketListService(repo)

	repo.On("FindOneBucketListItem", ctx, "Visit the Great Wall").
		Return(&models.BucketListItem{Title: "Visit the Great Wall"}, nil)
	repo.On("FindOneBucketListItem", ctx, "missing").Return(nil, repository.ErrNotFound)

	item, err := svc.GetItemByTitle(ctx, "Visit the Great Wall")
	require.NoError(t, err)
	assert.Equal(t, "Visit the Great Wall", item.Title)

	_, err = svc.GetItemByTitle(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConfessionService_CreateConfession(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockConfessionStore)
	svc := NewConfessionService(repo)

	in := &models.Confession{Title: "Test Confession", Body: "This is a test confession", Author: "John Doe"}
	repo.On("CreateConfession", ctx, in).Return(in, nil)

	created, err := svc.CreateConfession(ctx, in)
	require.NoError(t, err)
	assert.Same(t, in, created)
	repo.AssertExpectations(t)
}

func TestCreateIgnoresClientSuppliedID(t *testing.T) {
	ctx := context.Background()
	supplied := primitive.NewObjectID()
	idCleared := func(id primitive.ObjectID) bool { return id.IsZero() }

	confessions := new(mocks.MockConfessionStore)
	confessions.On("CreateConfession", ctx, mock.MatchedBy(func(c *models.Confession) bool {
		return idCleared(c.ID)
	})).Return(&models.Confession{ID: primitive.NewObjectID()}, nil)
	_, err := NewConfessionService(confessions).CreateConfession(ctx, &models.Confession{ID: supplied, Title: "t"})
	require.NoError(t, err)

	bucketList := new(mocks.MockBucketListStore)
	bucketList.On("AddBucketListItem", ctx, mock.MatchedBy(func(i *models.BucketListItem) bool {
		return idCleared(i.ID)
	})).Return(&models.BucketListItem{ID: primitive.NewObjectID()}, nil)
	_, err = NewBucketListService(bucketList).AddItem(ctx, &models.BucketListItem{ID: supplied, Title: "t"})
	require.NoError(t, err)

	expenses := new(mocks.MockExpenseStore)
	expenses.On("CreateExpense", ctx, mock.MatchedBy(func(e *models.Expense) bool {
		return idCleared(e.ID)
	})).Return(&models.Expense{ID: primitive.NewObjectID()}, nil)
	_, err = NewExpenseService(expenses).CreateExpense(ctx, &models.Expense{ID: supplied, Title: "t"})
	require.NoError(t, err)

	confessions.AssertExpectations(t)
	bucketList.AssertExpectations(t)
	expenses.AssertExpectations(t)
}
