package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo documents keep their identifier in _id as the hex form of a generated
// ObjectID, so every schema maps its ID field with `bson:"_id"`.
type mongoCollection[T any, PT docPtr[T]] struct {
	coll *mongo.Collection
	name string
}

func (c *mongoCollection[T, PT]) Name() string {
	return c.name
}

func (c *mongoCollection[T, PT]) Find(ctx context.Context) ([]T, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.name, err)
	}
	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return docs, nil
}

func (c *mongoCollection[T, PT]) FindOne(ctx context.Context, id string) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

func (c *mongoCollection[T, PT]) FindBy(ctx context.Context, field string, value any) (*T, error) {
	return c.findOne(ctx, bson.M{field: value})
}

func (c *mongoCollection[T, PT]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", c.name, err)
	}
	return &doc, nil
}

func (c *mongoCollection[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	PT(doc).SetDocumentID(primitive.NewObjectID().Hex())

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}
	return doc, nil
}

func (c *mongoCollection[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return c.FindOne(ctx, id)
	}
	var doc T
	err := c.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update %s/%s: %w", c.name, id, err)
	}
	return &doc, nil
}

func (c *mongoCollection[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s/%s: %w", c.name, id, err)
	}
	return &doc, nil
}

func ensureMongoUnique(ctx context.Context, db *mongo.Database, collection, field string) error {
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index %s.%s: %w", collection, field, err)
	}
	return nil
}
