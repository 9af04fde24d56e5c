package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string   `json:"id" firestore:"id" bson:"_id"`
	Name  string   `json:"name" firestore:"name" bson:"name"`
	Count int      `json:"count" firestore:"count" bson:"count"`
	Tags  []string `json:"tags" firestore:"tags" bson:"tags"`
}

func (w *widget) DocumentID() string      { return w.ID }
func (w *widget) SetDocumentID(id string) { w.ID = id }

// runCollectionSuite exercises one backend through the Collection contract.
func runCollectionSuite(t *testing.T, backend *Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns an id and round trips", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())

		created, err := widgets.Create(ctx, &widget{Name: "gear", Count: 3, Tags: []string{"a", "b"}})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := widgets.FindOne(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *got)
	})

	t.Run("find returns every document", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())

		empty, err := widgets.Find(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Len(t, empty, 0)

		for _, name := range []string{"a", "b", "c"} {
			_, err := widgets.Create(ctx, &widget{Name: name})
			require.NoError(t, err)
		}
		all, err := widgets.Find(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("missing documents are not found", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())

		_, err := widgets.FindOne(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = widgets.FindBy(ctx, "name", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = widgets.Update(ctx, "missing", map[string]any{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = widgets.Delete(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find by field", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())
		_, err := widgets.Create(ctx, &widget{Name: "first", Count: 1})
		require.NoError(t, err)
		second, err := widgets.Create(ctx, &widget{Name: "second", Count: 2})
		require.NoError(t, err)

		got, err := widgets.FindBy(ctx, "name", "second")
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)

		got, err = widgets.FindBy(ctx, "count", 2)
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)
	})

	t.Run("update sets only the given fields", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())
		created, err := widgets.Create(ctx, &widget{Name: "old", Count: 7, Tags: []string{"keep"}})
		require.NoError(t, err)

		updated, err := widgets.Update(ctx, created.ID, map[string]any{
			"name": "new",
			"tags": []string{"keep", "more"},
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "new", updated.Name)
		assert.Equal(t, 7, updated.Count)
		assert.Equal(t, []string{"keep", "more"}, updated.Tags)

		unchanged, err := widgets.Update(ctx, created.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, *updated, *unchanged)
	})

	t.Run("delete returns the removed document", func(t *testing.T) {
		widgets := Open[widget](backend, "widgets_"+uuid.NewString())
		created, err := widgets.Create(ctx, &widget{Name: "doomed"})
		require.NoError(t, err)

		removed, err := widgets.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "doomed", removed.Name)

		_, err = widgets.FindOne(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	if backend.Kind() == KindFirestore {
		return
	}
	t.Run("unique fields reject duplicates", func(t *testing.T) {
		name := "widgets_" + uuid.NewString()
		require.NoError(t, backend.EnsureUnique(ctx, name, "name"))
		widgets := Open[widget](backend, name)

		_, err := widgets.Create(ctx, &widget{Name: "only"})
		require.NoError(t, err)
		_, err = widgets.Create(ctx, &widget{Name: "only"})
		assert.ErrorIs(t, err, ErrDuplicate)

		all, err := widgets.Find(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
