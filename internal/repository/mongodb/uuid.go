package mongodb

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uuidBinary encodes a UUID as BSON binary subtype 4, the fixed-width
// representation used for every id and reference field in the store.
func uuidBinary(id uuid.UUID) primitive.Binary {
	return primitive.Binary{Subtype: 0x04, Data: id[:]}
}

func uuidFromBinary(b primitive.Binary) (uuid.UUID, error) {
	id, err := uuid.FromBytes(b.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decoding uuid field: %w", err)
	}
	return id, nil
}
