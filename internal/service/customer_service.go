package service

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"
)

// CustomerService manages customers.
type CustomerService struct {
	repo CustomerRepository
}

// CustomerRepository is the storage the customer service needs.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
	VisitsByCustomer(ctx context.Context, customerID int) ([]models.VisitSchedule, error)
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*models.Customer, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	c, err := s.repo.CreateCustomer(ctx, in.Customer(0))
	if err != nil {
		return models.Customer{}, fmt.Errorf("service: failed to create customer: %w", err)
	}
	return c, nil
}

// Update replaces every column of the customer with id.
func (s *CustomerService) Update(ctx context.Context, id int, in models.CustomerInput) (models.Customer, error) {
	c, err := s.repo.UpdateCustomer(ctx, in.Customer(id))
	if err != nil {
		return models.Customer{}, fmt.Errorf("service: failed to update customer: %w", err)
	}
	return c, nil
}

// Delete removes the customer. Its visits stay, unlinked.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete customer: %w", err)
	}
	return nil
}

// Detail returns the customer with its visits ordered by start time.
func (s *CustomerService) Detail(ctx context.Context, id int) (models.CustomerDetail, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return models.CustomerDetail{}, fmt.Errorf("service: failed to get customer: %w", err)
	}

	visits, err := s.repo.VisitsByCustomer(ctx, id)
	if err != nil {
		return models.CustomerDetail{}, fmt.Errorf("service: failed to list visits: %w", err)
	}

	return models.CustomerDetail{Customer: *c, Visits: visits}, nil
}
