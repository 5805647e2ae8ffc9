package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"Devlife/internal/core/identity"
)

type mongoUserDirectory struct {
	collection *mongo.Collection
}

// NewUserDirectory creates an identity resolver backed by the users
// collection. Read-only: this service never writes identity records.
func NewUserDirectory(db *mongo.Database) identity.Resolver {
	return &mongoUserDirectory{collection: db.Collection("users")}
}

type userDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	Role string `bson:"role"`
}

// Resolve looks up display profiles for the given ids.
// Ids with no matching user record are omitted from the result; an unknown
// commenter must degrade the projection, not fail the read.
func (d *mongoUserDirectory) Resolve(ctx context.Context, ids []string) (map[string]*identity.Profile, error) {
	result := make(map[string]*identity.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := d.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		result[doc.ID] = &identity.Profile{
			ID:   doc.ID,
			Name: doc.Name,
			Role: doc.Role,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return result, nil
}
