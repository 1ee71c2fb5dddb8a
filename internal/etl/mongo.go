package etl

import (
	"context"
	"fmt"

	"github.com/BartekS5/seedgen/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoExtractor reads list documents, one per List, from a collection.
type MongoExtractor struct {
	Collection *mongo.Collection
}

func NewMongoExtractor(client *mongo.Client, database, collection string) *MongoExtractor {
	return &MongoExtractor{Collection: client.Database(database).Collection(collection)}
}

func (m *MongoExtractor) Extract(ctx context.Context) ([]models.List, error) {
	// Sort by list id so the traversal order is stable between runs.
	findOpts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := m.Collection.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection '%s': %w", m.Collection.Name(), err)
	}
	return decodeLists(ctx, cursor)
}

func decodeLists(ctx context.Context, cursor *mongo.Cursor) ([]models.List, error) {
	defer cursor.Close(ctx)

	var lists []models.List
	for cursor.Next(ctx) {
		var l models.List
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode list document %d: %w", len(lists), err)
		}
		lists = append(lists, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return lists, nil
}
