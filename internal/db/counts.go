package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func Count(ctx context.Context, m *mongo.Database, col string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return m.Collection(col).CountDocuments(ctx, filter)
}

func CountActive(ctx context.Context, m *mongo.Database, col string) (int64, error) {
	return Count(ctx, m, col, bson.M{"isActive": true})
}

func CountInactive(ctx context.Context, m *mongo.Database, col string) (int64, error) {
	return Count(ctx, m, col, bson.M{"isActive": false})
}
