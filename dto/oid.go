package dto

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/internal/apperr"
)

// ParseID converts the external hex form of an id back to an ObjectID.
// Anything that is not a well-formed 24-char hex string is reported as a
// malformed identifier, before any store call happens.
func ParseID(hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", apperr.ErrMalformedID, hex)
	}
	return oid, nil
}
