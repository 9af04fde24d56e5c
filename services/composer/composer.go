package composer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"

	"hallApi/services"
	"hallApi/store"
)

const Collection = "composers"

type Service interface {
	List(ctx context.Context) ([]Composer, error)
	// Get returns the composer or an error wrapping store.ErrNotFound.
	Get(ctx context.Context, id string) (*Composer, error)
	// Create validates and stores a new composer. DateCreated defaults to now.
	Create(ctx context.Context, composer Composer) (*Composer, error)
	// Update applies the non-zero fields of patch and returns the stored result.
	Update(ctx context.Context, id string, patch Patch) (*Composer, error)
	Delete(ctx context.Context, id string) (*Composer, error)
}

type service struct {
	composers store.Collection[Composer]
	now       func() time.Time
}

var _ Service = (*service)(nil)

func NewService(composers store.Collection[Composer]) Service {
	return &service{
		composers: composers,
		now:       time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Composer, error) {
	composers, err := s.composers.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list composers: %w", err)
	}
	return composers, nil
}

func (s *service) Get(ctx context.Context, id string) (*Composer, error) {
	c, err := s.composers.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("composer %s: %w", id, err)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, composer Composer) (*Composer, error) {
	composer.FirstName = strings.TrimSpace(composer.FirstName)
	composer.LastName = strings.TrimSpace(composer.LastName)
	if composer.FirstName == "" || composer.LastName == "" {
		return nil, services.Invalid("firstName and lastName are required")
	}
	if composer.DateCreated == "" {
		composer.DateCreated = services.Timestamp(s.now)
	}
	composer.ID = ""

	created, err := s.composers.Create(ctx, &composer)
	if err != nil {
		return nil, fmt.Errorf("failed to create composer: %w", err)
	}
	log.Debug().Str("id", created.ID).Msg("composer created")
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, patch Patch) (*Composer, error) {
	patch.FirstName = strings.TrimSpace(patch.FirstName)
	patch.LastName = strings.TrimSpace(patch.LastName)

	updated, err := s.composers.Update(ctx, id, structs.Map(patch))
	if err != nil {
		return nil, fmt.Errorf("composer %s: %w", id, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Composer, error) {
	removed, err := s.composers.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("composer %s: %w", id, err)
	}
	log.Debug().Str("id", id).Msg("composer deleted")
	return removed, nil
}
