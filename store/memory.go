package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// memoryDB keeps every document JSON encoded, keyed by collection and id, so that
// field lookups and partial updates address documents by their JSON names exactly
// like the document databases address them by their stored names.
type memoryDB struct {
	mu     sync.RWMutex
	tables map[string]*memoryTable
	unique map[string][]string
}

type memoryTable struct {
	ids  []string
	docs map[string][]byte
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		tables: make(map[string]*memoryTable),
		unique: make(map[string][]string),
	}
}

func (db *memoryDB) addUnique(collection, field string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, f := range db.unique[collection] {
		if f == field {
			return
		}
	}
	db.unique[collection] = append(db.unique[collection], field)
}

// table must be called with mu held.
func (db *memoryDB) table(name string) *memoryTable {
	t, ok := db.tables[name]
	if !ok {
		t = &memoryTable{docs: make(map[string][]byte)}
		db.tables[name] = t
	}
	return t
}

// conflicts reports whether raw collides with another document on a unique field.
// Must be called with mu held.
func (db *memoryDB) conflicts(name, id string, raw []byte) (bool, error) {
	fields := db.unique[name]
	if len(fields) == 0 {
		return false, nil
	}
	candidate, err := decodeFields(raw)
	if err != nil {
		return false, err
	}
	t := db.table(name)
	for _, other := range t.ids {
		if other == id {
			continue
		}
		existing, err := decodeFields(t.docs[other])
		if err != nil {
			return false, err
		}
		for _, f := range fields {
			if sameValue(candidate[f], existing[f]) {
				return true, nil
			}
		}
	}
	return false, nil
}

type memoryCollection[T any, PT docPtr[T]] struct {
	db   *memoryDB
	name string
}

func (c *memoryCollection[T, PT]) Name() string {
	return c.name
}

func (c *memoryCollection[T, PT]) Find(_ context.Context) ([]T, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()

	t := c.db.table(c.name)
	docs := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		var doc T
		if err := json.Unmarshal(t.docs[id], &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, id, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (c *memoryCollection[T, PT]) FindOne(_ context.Context, id string) (*T, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	return c.get(id)
}

// get must be called with mu held.
func (c *memoryCollection[T, PT]) get(id string) (*T, error) {
	raw, ok := c.db.table(c.name).docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, id, err)
	}
	return &doc, nil
}

func (c *memoryCollection[T, PT]) FindBy(_ context.Context, field string, value any) (*T, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()

	t := c.db.table(c.name)
	for _, id := range t.ids {
		fields, err := decodeFields(t.docs[id])
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, id, err)
		}
		if sameValue(fields[field], value) {
			return c.get(id)
		}
	}
	return nil, ErrNotFound
}

func (c *memoryCollection[T, PT]) Create(_ context.Context, doc *T) (*T, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	id := uuid.NewString()
	PT(doc).SetDocumentID(id)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	dup, err := c.db.conflicts(c.name, id, raw)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicate
	}

	t := c.db.table(c.name)
	t.ids = append(t.ids, id)
	t.docs[id] = raw
	return c.get(id)
}

func (c *memoryCollection[T, PT]) Update(_ context.Context, id string, fields map[string]any) (*T, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	t := c.db.table(c.name)
	raw, ok := t.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	current, err := decodeFields(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, id, err)
	}
	for k, v := range fields {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", k, err)
		}
		current[k] = encoded
	}

	// Round-trip through T so the stored document keeps its schema.
	merged, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s/%s: %w", c.name, id, err)
	}
	var doc T
	if err := json.Unmarshal(merged, &doc); err != nil {
		return nil, fmt.Errorf("failed to apply update to %s/%s: %w", c.name, id, err)
	}
	PT(&doc).SetDocumentID(id)
	updated, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s/%s: %w", c.name, id, err)
	}
	dup, err := c.db.conflicts(c.name, id, updated)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicate
	}
	t.docs[id] = updated
	return &doc, nil
}

func (c *memoryCollection[T, PT]) Delete(_ context.Context, id string) (*T, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	doc, err := c.get(id)
	if err != nil {
		return nil, err
	}
	t := c.db.table(c.name)
	delete(t.docs, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return doc, nil
}

func decodeFields(raw []byte) (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// sameValue compares a stored field with a value by their JSON encodings.
func sameValue(stored json.RawMessage, value any) bool {
	if stored == nil || value == nil {
		return false
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(stored), encoded)
}
