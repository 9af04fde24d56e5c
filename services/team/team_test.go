package team

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
		teams: store.Open[Team](store.NewMemoryBackend(), Collection),
		now: func() time.Time {
			return time.Date(2021, 12, 15, 0, 0, 0, 0, time.UTC)
		},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   Team
		wantErr error
	}{
		{
			name: "team with roster",
			input: Team{
				Name:   "Hawks",
				Mascot: "Hawk",
				Players: []Player{
					{PlayerID: "p1", FirstName: "Ann", LastName: "Lee", Position: "guard", AnnualSalary: 100},
					{PlayerID: "p2", FirstName: "Bo", LastName: "Kim", Position: "center"},
				},
			},
		},
		{name: "empty roster", input: Team{Name: "Owls"}},
		{name: "missing name", input: Team{Mascot: "Nothing"}, wantErr: services.ErrValidation},
		{
			name: "repeated player id",
			input: Team{Name: "Twins", Players: []Player{
				{PlayerID: "p1", FirstName: "A", LastName: "A"},
				{PlayerID: "p1", FirstName: "B", LastName: "B"},
			}},
			wantErr: services.ErrValidation,
		},
		{
			name:    "player without id",
			input:   Team{Name: "Ghosts", Players: []Player{{FirstName: "No", LastName: "Id"}}},
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
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "2021-12-15T00:00:00Z", got.AdmissionDate)
			assert.Len(t, got.Players, len(tt.input.Players))
			for _, p := range got.Players {
				assert.Equal(t, "2021-12-15T00:00:00Z", p.HireDate)
			}
		})
	}
}

func TestRoster(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created, err := s.Create(ctx, Team{Name: "Bears"})
	require.NoError(t, err)

	added, err := s.AddPlayer(ctx, created.ID, Player{PlayerID: "7", FirstName: "Cy", LastName: "Young", HireDate: "2020-04-01"})
	require.NoError(t, err)
	assert.Equal(t, "2020-04-01", added.HireDate)

	_, err = s.AddPlayer(ctx, created.ID, Player{PlayerID: "7", FirstName: "Other", LastName: "Player"})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	players, err := s.ListPlayers(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, *added, players[0])

	_, err = s.AddPlayer(ctx, "missing", Player{PlayerID: "8", FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.ListPlayers(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestService()
	created, err := s.Create(ctx, Team{Name: "Foxes"})
	require.NoError(t, err)

	_, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
