package utils

import (
	"cloud.google.com/go/firestore"
	"fmt"
)

func ToPointer[T any](value T) *T {
	return &value
}

// FromPointer returns the value p points at, or the zero value when p is nil.
func FromPointer[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonNil returns items, or an empty slice when items is nil, so it encodes as [].
func NonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}

func GetAllToStructs[T any](docs []*firestore.DocumentSnapshot) ([]T, error) {
	result := make([]T, len(docs))
	for i, doc := range docs {
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
		}
		result[i] = item
	}
	return result, nil
}
