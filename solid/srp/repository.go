package srp

import (
	"slices"
	"strings"
	"sync"
)

// CustomerRepository keeps customers in memory, in insertion order.
// It is safe for concurrent use.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []Customer
}

// NewCustomerRepository returns an empty repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Add stores c. Returns ErrEmptyName when c.Name is blank.
func (r *CustomerRepository) Add(c Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, c)

	return nil
}

// List returns a copy of the stored customers.
func (r *CustomerRepository) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.customers)
	if out == nil {
		out = []Customer{}
	}

	return out
}
