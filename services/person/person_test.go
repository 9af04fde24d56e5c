package person

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallApi/services"
	"hallApi/store"
)

func TestPersonLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewService(store.Open[Person](store.NewMemoryBackend(), Collection))

	input := Person{
		FirstName:  "Keith",
		LastName:   "Hall",
		BirthDate:  "1990-01-01",
		Roles:      []Role{{Text: "student"}, {Text: "developer"}},
		Dependents: []Dependent{{FirstName: "Sam", LastName: "Hall"}},
	}
	created, err := s.Create(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	input.ID = created.ID
	assert.Equal(t, input, *created)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, input, *got)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	s := NewService(store.Open[Person](store.NewMemoryBackend(), Collection))

	tests := []struct {
		name  string
		input Person
	}{
		{"missing first name", Person{LastName: "Hall"}},
		{"missing last name", Person{FirstName: "Keith"}},
		{"unnamed dependent", Person{FirstName: "Keith", LastName: "Hall", Dependents: []Dependent{{LastName: "Hall"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestCreateDefaultsEmptyLists(t *testing.T) {
	s := NewService(store.Open[Person](store.NewMemoryBackend(), Collection))
	created, err := s.Create(context.Background(), Person{FirstName: "Solo", LastName: "Person"})
	require.NoError(t, err)
	assert.NotNil(t, created.Roles)
	assert.NotNil(t, created.Dependents)
}
