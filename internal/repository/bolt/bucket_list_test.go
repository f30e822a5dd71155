package bolt

import (
	"context"
	"testing"
	"time"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketListRepository(t *testing.T) {
	repo := NewBucketListRepository(setupTestStore(t))
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	target := now.AddDate(1, 0, 0)

	in := &models.BucketListItem{
		Title:       "Visit the Great Wall",
		Description: "I've always wanted to see it!",
		DateAdded:   &now,
		TargetDate:  &target,
		IsCompleted: false,
	}
	created, err := repo.AddBucketListItem(ctx, in)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	_, err = repo.AddBucketListItem(ctx, &models.BucketListItem{Title: "Learn Go", IsCompleted: true})
	require.NoError(t, err)

	got, err := repo.FindOneBucketListItem(ctx, "Visit the Great Wall")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.Description, got.Description)
	require.NotNil(t, got.DateAdded)
	require.NotNil(t, got.TargetDate)
	assert.True(t, now.Equal(*got.DateAdded))
	assert.True(t, target.Equal(*got.TargetDate))
	assert.False(t, got.IsCompleted)

	_, err = repo.FindOneBucketListItem(ctx, "Climb Everest")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := repo.CountBucketListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestConfessionRepository(t *testing.T) {
	repo := NewConfessionRepository(setupTestStore(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		created, err := repo.CreateConfession(ctx, &models.Confession{
			Title:  "Test Confession",
			Body:   "This is a test confession",
			Author: "John Doe",
		})
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
	}

	n, err := repo.CountConfessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestBucketListRepository_OmittedDatesStayUnset(t *testing.T) {
	repo := NewBucketListRepository(setupTestStore(t))
	ctx := context.Background()

	_, err := repo.AddBucketListItem(ctx, &models.BucketListItem{Title: "Learn to juggle"})
	require.NoError(t, err)

	got, err := repo.FindOneBucketListItem(ctx, "Learn to juggle")
	require.NoError(t, err)
	assert.Nil(t, got.DateAdded)
	assert.Nil(t, got.TargetDate)
}
