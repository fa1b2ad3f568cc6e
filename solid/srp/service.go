package srp

import (
	"fmt"
	"io"
)

// CustomerService is the entry point callers use to manage customers.
// Storage is delegated to a Store.
type CustomerService struct {
	store Store
}

// NewCustomerService wires a service to store.
func NewCustomerService(store Store) (*CustomerService, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	return &CustomerService{store: store}, nil
}

// AddCustomer registers c through the store.
func (s *CustomerService) AddCustomer(c Customer) error {
	if err := s.store.Add(c); err != nil {
		return fmt.Errorf("srp: add customer %q: %w", c.Name, err)
	}

	return nil
}

// Customers lists every registered customer.
func (s *CustomerService) Customers() []Customer {
	return s.store.List()
}

// Demo registers two customers through the service and prints the roster.
func Demo(w io.Writer) error {
	svc, err := NewCustomerService(NewCustomerRepository())
	if err != nil {
		return err
	}
	for _, c := range []Customer{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	} {
		if err = svc.AddCustomer(c); err != nil {
			return err
		}
	}
	for _, c := range svc.Customers() {
		if _, err = fmt.Fprintln(w, c); err != nil {
			return err
		}
	}

	return nil
}
