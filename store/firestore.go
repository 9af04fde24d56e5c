package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hallApi/utils"
)

type firestoreCollection[T any, PT docPtr[T]] struct {
	db   *firestore.Client
	name string
}

func (c *firestoreCollection[T, PT]) Name() string {
	return c.name
}

func (c *firestoreCollection[T, PT]) Find(ctx context.Context) ([]T, error) {
	docs, err := c.db.Collection(c.name).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.name, err)
	}
	return utils.GetAllToStructs[T](docs)
}

func (c *firestoreCollection[T, PT]) FindOne(ctx context.Context, id string) (*T, error) {
	snap, err := c.db.Collection(c.name).Doc(id).Get(ctx)
	if err != nil {
		return nil, c.wrap(err, id)
	}
	var doc T
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, id, err)
	}
	return &doc, nil
}

func (c *firestoreCollection[T, PT]) FindBy(ctx context.Context, field string, value any) (*T, error) {
	iter := c.db.Collection(c.name).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s by %s: %w", c.name, field, err)
		}
		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, snap.Ref.ID, err)
		}
		return &doc, nil
	}
	return nil, ErrNotFound
}

func (c *firestoreCollection[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	ref := c.db.Collection(c.name).NewDoc()
	PT(doc).SetDocumentID(ref.ID)

	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create %s: %w", c.name, err)
	}
	return doc, nil
}

func (c *firestoreCollection[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if len(updates) > 0 {
		if _, err := c.db.Collection(c.name).Doc(id).Update(ctx, updates); err != nil {
			return nil, c.wrap(err, id)
		}
	}
	return c.FindOne(ctx, id)
}

func (c *firestoreCollection[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	doc, err := c.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.Collection(c.name).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return nil, c.wrap(err, id)
	}
	return doc, nil
}

func (c *firestoreCollection[T, PT]) wrap(err error, id string) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("firestore %s/%s: %w", c.name, id, err)
}
