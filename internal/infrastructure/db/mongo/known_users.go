package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultKnownUsersCollection = "known_users"

// KnownUsers answers membership by looking up the user id as a document _id.
type KnownUsers struct {
	coll *mongo.Collection
}

func NewKnownUsers(db *mongo.Database, collection string) *KnownUsers {
	if collection == "" {
		collection = DefaultKnownUsersCollection
	}
	return &KnownUsers{coll: db.Collection(collection)}
}

// Seed upserts one document per id. Existing documents are left as they are.
func (k *KnownUsers) Seed(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$setOnInsert": bson.M{"source": "seed"}}).
			SetUpsert(true))
	}

	if _, err := k.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("seed known users: %w", err)
	}
	return nil
}

func (k *KnownUsers) Exists(ctx context.Context, userID int) (bool, error) {
	n, err := k.coll.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("known users lookup: %w", err)
	}
	return n > 0, nil
}

// Ping reports whether the backing MongoDB is reachable.
func (k *KnownUsers) Ping(ctx context.Context) error {
	return k.coll.Database().Client().Ping(ctx, nil)
}
