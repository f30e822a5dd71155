package services

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidID means a path identifier is not a store identifier.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidFilter means a filter query parameter could not be parsed.
	ErrInvalidFilter = errors.New("invalid filter")
)

// parseID turns the opaque token from the URL into the store's identifier.
func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return objID, nil
}
