// Package store is the persistence adapter: a typed, collection-scoped view over a
// document database. Every schema maps one-to-one onto a named collection and is
// reached only through Collection.
package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

// Document is implemented by the pointer type of every stored schema so that the
// adapter can assign generated identifiers on create.
type Document interface {
	DocumentID() string
	SetDocumentID(id string)
}

type docPtr[T any] interface {
	*T
	Document
}

// Collection performs single document operations against one named collection.
type Collection[T any] interface {
	// Name returns the collection name the documents are stored under.
	Name() string
	// Find returns every document in the collection. It never returns a nil slice.
	Find(ctx context.Context) ([]T, error)
	// FindOne returns the document with the given id or ErrNotFound.
	FindOne(ctx context.Context, id string) (*T, error)
	// FindBy returns the first document whose field equals value or ErrNotFound.
	FindBy(ctx context.Context, field string, value any) (*T, error)
	// Create stores doc under a newly generated id, which is written back into doc.
	Create(ctx context.Context, doc *T) (*T, error)
	// Update sets the given top level fields and returns the updated document.
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	// Delete removes the document and returns what was removed.
	Delete(ctx context.Context, id string) (*T, error)
}

type Kind string

const (
	KindFirestore Kind = "firestore"
	KindMongo     Kind = "mongo"
	KindMemory    Kind = "memory"
)

// Backend is a connected document database that collections are opened against.
type Backend struct {
	kind   Kind
	fs     *firestore.Client
	mongo  *mongo.Database
	memory *memoryDB
}

func NewFirestoreBackend(client *firestore.Client) *Backend {
	return &Backend{kind: KindFirestore, fs: client}
}

func NewMongoBackend(db *mongo.Database) *Backend {
	return &Backend{kind: KindMongo, mongo: db}
}

func NewMemoryBackend() *Backend {
	return &Backend{kind: KindMemory, memory: newMemoryDB()}
}

func (b *Backend) Kind() Kind {
	return b.kind
}

// EnsureUnique asks the backend to reject a second document in collection with the
// same value for field. Firestore has no secondary unique indexes, so there the
// services' lookup-before-create check is the only guard.
func (b *Backend) EnsureUnique(ctx context.Context, collection, field string) error {
	switch b.kind {
	case KindMongo:
		return ensureMongoUnique(ctx, b.mongo, collection, field)
	case KindMemory:
		b.memory.addUnique(collection, field)
		return nil
	case KindFirestore:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", b.kind)
	}
}

// Open returns the collection called name on the backend, typed to T.
func Open[T any, PT docPtr[T]](b *Backend, name string) Collection[T] {
	switch b.kind {
	case KindFirestore:
		return &firestoreCollection[T, PT]{db: b.fs, name: name}
	case KindMongo:
		return &mongoCollection[T, PT]{coll: b.mongo.Collection(name), name: name}
	default:
		return &memoryCollection[T, PT]{db: b.memory, name: name}
	}
}
