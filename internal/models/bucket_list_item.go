package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BucketListItem is looked up by Title, not by ID.
type BucketListItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DateAdded   *time.Time         `bson:"dateAdded,omitempty" json:"dateAdded,omitempty"`
	TargetDate  *time.Time         `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
}
