package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hallApi/services"
	"hallApi/store"
)

const (
	Collection    = "customers"
	UserNameField = "userName"
)

var ErrUserNameTaken = fmt.Errorf("%w: userName is already in use", services.ErrConflict)

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	// Get looks a customer up by userName.
	Get(ctx context.Context, userName string) (*Customer, error)
	// Create stores a new customer. A userName that is already taken is rejected with
	// ErrUserNameTaken and nothing is written.
	Create(ctx context.Context, customer Customer) (*Customer, error)
	Delete(ctx context.Context, userName string) (*Customer, error)
	// AddInvoice appends an invoice to the customer's embedded invoice list.
	AddInvoice(ctx context.Context, userName string, invoice Invoice) (*Invoice, error)
	ListInvoices(ctx context.Context, userName string) ([]Invoice, error)
}

type service struct {
	customers store.Collection[Customer]
	now       func() time.Time
}

var _ Service = (*service)(nil)

func NewService(customers store.Collection[Customer]) Service {
	return &service{
		customers: customers,
		now:       time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Customer, error) {
	customers, err := s.customers.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *service) Get(ctx context.Context, userName string) (*Customer, error) {
	c, err := s.customers.FindBy(ctx, UserNameField, userName)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", userName, err)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, customer Customer) (*Customer, error) {
	customer.UserName = strings.TrimSpace(customer.UserName)
	if customer.UserName == "" {
		return nil, services.Invalid("userName is required")
	}
	if customer.Invoices == nil {
		customer.Invoices = make([]Invoice, 0)
	}
	for i := range customer.Invoices {
		if err := s.prepareInvoice(&customer.Invoices[i]); err != nil {
			return nil, err
		}
	}

	_, err := s.customers.FindBy(ctx, UserNameField, customer.UserName)
	switch {
	case err == nil:
		return nil, ErrUserNameTaken
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("failed to look up customer %s: %w", customer.UserName, err)
	}

	customer.ID = ""
	created, err := s.customers.Create(ctx, &customer)
	if errors.Is(err, store.ErrDuplicate) {
		return nil, ErrUserNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	log.Debug().Str("userName", created.UserName).Msg("customer created")
	return created, nil
}

func (s *service) Delete(ctx context.Context, userName string) (*Customer, error) {
	c, err := s.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	removed, err := s.customers.Delete(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", userName, err)
	}
	return removed, nil
}

func (s *service) AddInvoice(ctx context.Context, userName string, invoice Invoice) (*Invoice, error) {
	if err := s.prepareInvoice(&invoice); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, userName)
	if err != nil {
		return nil, err
	}

	invoices := append(c.Invoices, invoice)
	if _, err := s.customers.Update(ctx, c.ID, map[string]any{"invoices": invoices}); err != nil {
		return nil, fmt.Errorf("failed to add invoice for %s: %w", userName, err)
	}
	log.Debug().Str("userName", userName).Int("invoices", len(invoices)).Msg("invoice added")
	return &invoice, nil
}

func (s *service) ListInvoices(ctx context.Context, userName string) ([]Invoice, error) {
	c, err := s.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	if c.Invoices == nil {
		return make([]Invoice, 0), nil
	}
	return c.Invoices, nil
}

func (s *service) prepareInvoice(invoice *Invoice) error {
	if invoice.Subtotal < 0 || invoice.Tax < 0 {
		return services.Invalid("subtotal and tax must not be negative")
	}
	for _, item := range invoice.LineItems {
		if strings.TrimSpace(item.Name) == "" {
			return services.Invalid("line item name is required")
		}
		if item.Price < 0 || item.Quantity < 0 {
			return services.Invalid("line item %q has a negative price or quantity", item.Name)
		}
	}
	if invoice.DateCreated == "" {
		invoice.DateCreated = services.Timestamp(s.now)
	}
	if invoice.LineItems == nil {
		invoice.LineItems = make([]LineItem, 0)
	}
	return nil
}
