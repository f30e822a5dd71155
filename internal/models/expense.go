package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Amount      float64            `bson:"amount" json:"amount"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	IsRecurring bool               `bson:"isRecurring" json:"isRecurring"`
	Tags        []string           `bson:"tags" json:"tags"` // append-only
}

// TagRequest is the body of POST /api/expenses/{id}/tags.
type TagRequest struct {
	Tag string `json:"tag"`
}
