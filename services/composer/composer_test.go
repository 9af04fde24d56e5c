package composer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallApi/services"
	"hallApi/store"
)

func newTestService() *service {
	return &service{
		composers: store.Open[Composer](store.NewMemoryBackend(), Collection),
		now: func() time.Time {
			return time.Date(2021, 11, 12, 9, 30, 0, 0, time.UTC)
		},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   Composer
		wantErr error
		want    Composer
	}{
		{
			name:  "stamps the creation date",
			input: Composer{ComposerID: 1, FirstName: "Johann", LastName: "Bach"},
			want:  Composer{ComposerID: 1, FirstName: "Johann", LastName: "Bach", DateCreated: "2021-11-12T09:30:00Z"},
		},
		{
			name:  "keeps a supplied date",
			input: Composer{FirstName: "Clara", LastName: "Schumann", DateCreated: "1819-09-13"},
			want:  Composer{FirstName: "Clara", LastName: "Schumann", DateCreated: "1819-09-13"},
		},
		{
			name:    "requires a last name",
			input:   Composer{FirstName: "Ludwig", LastName: "  "},
			wantErr: services.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService()
			got, err := s.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, got.ID)
			tt.want.ID = got.ID
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCreateIgnoresClientID(t *testing.T) {
	s := newTestService()
	got, err := s.Create(context.Background(), Composer{ID: "chosen", FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	assert.NotEqual(t, "chosen", got.ID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created, err := s.Create(ctx, Composer{ComposerID: 7, FirstName: "Franz", LastName: "Liszt"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, Patch{FirstName: "Ferenc"})
	require.NoError(t, err)
	assert.Equal(t, "Ferenc", updated.FirstName)
	assert.Equal(t, "Liszt", updated.LastName)
	assert.Equal(t, int64(7), updated.ComposerID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	_, err = s.Update(ctx, "missing", Patch{FirstName: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created, err := s.Create(ctx, Composer{FirstName: "Hildegard", LastName: "von Bingen"})
	require.NoError(t, err)

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
