package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Confession is an anonymous-style post stored verbatim.
type Confession struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title  string             `bson:"title" json:"title"`
	Body   string             `bson:"body" json:"body"`
	Author string             `bson:"author" json:"author"`
}
