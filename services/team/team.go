package team

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hallApi/services"
	"hallApi/store"
)

const Collection = "teams"

var ErrDuplicatePlayer = fmt.Errorf("%w: playerId is already on the team", services.ErrConflict)

type Service interface {
	List(ctx context.Context) ([]Team, error)
	Get(ctx context.Context, id string) (*Team, error)
	// Create stores a team and its roster. Player ids must be unique within the roster.
	Create(ctx context.Context, team Team) (*Team, error)
	Delete(ctx context.Context, id string) (*Team, error)
	// AddPlayer appends a player to the roster, rejecting a playerId that is already on it.
	AddPlayer(ctx context.Context, teamID string, player Player) (*Player, error)
	ListPlayers(ctx context.Context, teamID string) ([]Player, error)
}

type service struct {
	teams store.Collection[Team]
	now   func() time.Time
}

var _ Service = (*service)(nil)

func NewService(teams store.Collection[Team]) Service {
	return &service{
		teams: teams,
		now:   time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Team, error) {
	teams, err := s.teams.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *service) Get(ctx context.Context, id string) (*Team, error) {
	t, err := s.teams.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", id, err)
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, team Team) (*Team, error) {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return nil, services.Invalid("name is required")
	}
	if team.AdmissionDate == "" {
		team.AdmissionDate = services.Timestamp(s.now)
	}
	if team.Players == nil {
		team.Players = make([]Player, 0)
	}

	seen := make(map[string]struct{}, len(team.Players))
	for i := range team.Players {
		if err := s.preparePlayer(&team.Players[i]); err != nil {
			return nil, err
		}
		id := team.Players[i].PlayerID
		if _, ok := seen[id]; ok {
			return nil, services.Invalid("playerId %s appears more than once", id)
		}
		seen[id] = struct{}{}
	}
	team.ID = ""

	created, err := s.teams.Create(ctx, &team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	log.Debug().Str("id", created.ID).Int("players", len(created.Players)).Msg("team created")
	return created, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Team, error) {
	removed, err := s.teams.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", id, err)
	}
	return removed, nil
}

func (s *service) AddPlayer(ctx context.Context, teamID string, player Player) (*Player, error) {
	if err := s.preparePlayer(&player); err != nil {
		return nil, err
	}
	t, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	for _, p := range t.Players {
		if p.PlayerID == player.PlayerID {
			return nil, ErrDuplicatePlayer
		}
	}

	players := append(t.Players, player)
	if _, err := s.teams.Update(ctx, teamID, map[string]any{"players": players}); err != nil {
		return nil, fmt.Errorf("failed to add player to team %s: %w", teamID, err)
	}
	return &player, nil
}

func (s *service) ListPlayers(ctx context.Context, teamID string) ([]Player, error) {
	t, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if t.Players == nil {
		return make([]Player, 0), nil
	}
	return t.Players, nil
}

func (s *service) preparePlayer(player *Player) error {
	player.PlayerID = strings.TrimSpace(player.PlayerID)
	if player.PlayerID == "" {
		return services.Invalid("playerId is required")
	}
	if strings.TrimSpace(player.FirstName) == "" || strings.TrimSpace(player.LastName) == "" {
		return services.Invalid("player firstName and lastName are required")
	}
	if player.AnnualSalary < 0 {
		return services.Invalid("annualSalary must not be negative")
	}
	if player.HireDate == "" {
		player.HireDate = services.Timestamp(s.now)
	}
	return nil
}
