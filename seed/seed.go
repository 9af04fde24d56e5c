// Package seed loads a JSON fixture of documents through the resource services.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"hallApi/services"
	"hallApi/services/composer"
	"hallApi/services/customer"
	"hallApi/services/person"
	"hallApi/services/team"
)

// Fixture is the seed file layout. Document ids in the file are ignored; each
// document gets a fresh id when it is created.
type Fixture struct {
	Composers []composer.Composer `json:"composers"`
	Customers []customer.Customer `json:"customers"`
	Persons   []person.Person     `json:"persons"`
	Teams     []team.Team         `json:"teams"`
}

type Result struct {
	Created int
	Skipped int
}

type Loader struct {
	Composers composer.Service
	Customers customer.Service
	Persons   person.Service
	Teams     team.Service
}

// Load decodes a fixture from r and creates every document in it. Documents rejected
// as duplicates or invalid are skipped with a warning; any other failure stops the
// load.
func (l Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return Result{}, fmt.Errorf("failed to decode seed fixture: %w", err)
	}

	var result Result
	for _, c := range fixture.Composers {
		_, err := l.Composers.Create(ctx, c)
		if err := result.record(err, "composer", c.LastName); err != nil {
			return result, err
		}
	}
	for _, c := range fixture.Customers {
		_, err := l.Customers.Create(ctx, c)
		if err := result.record(err, "customer", c.UserName); err != nil {
			return result, err
		}
	}
	for _, p := range fixture.Persons {
		_, err := l.Persons.Create(ctx, p)
		if err := result.record(err, "person", p.LastName); err != nil {
			return result, err
		}
	}
	for _, t := range fixture.Teams {
		_, err := l.Teams.Create(ctx, t)
		if err := result.record(err, "team", t.Name); err != nil {
			return result, err
		}
	}

	log.Info().Int("created", result.Created).Int("skipped", result.Skipped).Msg("seed fixture loaded")
	return result, nil
}

func (r *Result) record(err error, kind, name string) error {
	switch {
	case err == nil:
		r.Created++
		return nil
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrValidation):
		log.Warn().Err(err).Str("kind", kind).Str("name", name).Msg("skipping seed document")
		r.Skipped++
		return nil
	default:
		return fmt.Errorf("failed to seed %s %s: %w", kind, name, err)
	}
}
