package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallApi/services/composer"
	"hallApi/services/customer"
	"hallApi/services/person"
	"hallApi/services/team"
	"hallApi/store"
)

const fixture = `{
  "composers": [
    {"composerId": 1, "firstName": "Johann", "lastName": "Bach"},
    {"composerId": 2, "firstName": "", "lastName": "Nobody"}
  ],
  "customers": [
    {"firstName": "Ada", "lastName": "Lovelace", "userName": "ada"},
    {"firstName": "Ada", "lastName": "Again", "userName": "ada"}
  ],
  "persons": [
    {"firstName": "Grace", "lastName": "Hopper", "roles": [{"text": "admiral"}]}
  ],
  "teams": [
    {"name": "Owls", "players": [{"playerId": "p1", "firstName": "Sam", "lastName": "Lee"}]}
  ]
}`

func newLoader() Loader {
	backend := store.NewMemoryBackend()
	return Loader{
		Composers: composer.NewService(store.Open[composer.Composer](backend, composer.Collection)),
		Customers: customer.NewService(store.Open[customer.Customer](backend, customer.Collection)),
		Persons:   person.NewService(store.Open[person.Person](backend, person.Collection)),
		Teams:     team.NewService(store.Open[team.Team](backend, team.Collection)),
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	l := newLoader()

	result, err := l.Load(ctx, strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 4, Skipped: 2}, result)

	composers, err := l.Composers.List(ctx)
	require.NoError(t, err)
	require.Len(t, composers, 1)
	assert.Equal(t, "Bach", composers[0].LastName)

	customers, err := l.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Lovelace", customers[0].LastName)

	teams, err := l.Teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Len(t, teams[0].Players, 1)
}

func TestLoadRejectsMalformedFixture(t *testing.T) {
	_, err := newLoader().Load(context.Background(), strings.NewReader(`{"composers": [`))
	assert.Error(t, err)
}
