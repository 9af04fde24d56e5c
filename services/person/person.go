package person

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"hallApi/services"
	"hallApi/store"
)

const Collection = "persons"

type Service interface {
	List(ctx context.Context) ([]Person, error)
	Get(ctx context.Context, id string) (*Person, error)
	Create(ctx context.Context, person Person) (*Person, error)
	Delete(ctx context.Context, id string) (*Person, error)
}

type service struct {
	persons store.Collection[Person]
}

var _ Service = (*service)(nil)

func NewService(persons store.Collection[Person]) Service {
	return &service{persons: persons}
}

func (s *service) List(ctx context.Context) ([]Person, error) {
	persons, err := s.persons.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

func (s *service) Get(ctx context.Context, id string) (*Person, error) {
	p, err := s.persons.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("person %s: %w", id, err)
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, person Person) (*Person, error) {
	person.FirstName = strings.TrimSpace(person.FirstName)
	person.LastName = strings.TrimSpace(person.LastName)
	if person.FirstName == "" || person.LastName == "" {
		return nil, services.Invalid("firstName and lastName are required")
	}
	for _, d := range person.Dependents {
		if strings.TrimSpace(d.FirstName) == "" {
			return nil, services.Invalid("dependent firstName is required")
		}
	}
	if person.Roles == nil {
		person.Roles = make([]Role, 0)
	}
	if person.Dependents == nil {
		person.Dependents = make([]Dependent, 0)
	}
	person.ID = ""

	created, err := s.persons.Create(ctx, &person)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	log.Debug().Str("id", created.ID).Msg("person created")
	return created, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Person, error) {
	removed, err := s.persons.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("person %s: %w", id, err)
	}
	return removed, nil
}
