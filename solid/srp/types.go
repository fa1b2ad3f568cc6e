package srp

import (
	"errors"
	"fmt"
)

// Sentinel errors for customer operations.
var (
	// ErrEmptyName indicates a customer without a name.
	ErrEmptyName = errors.New("srp: customer name is empty")

	// ErrNilStore indicates a service constructed without a store.
	ErrNilStore = errors.New("srp: store is nil")
)

// Customer is a named customer with a contact email.
type Customer struct {
	Name  string
	Email string
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer{name='%s', email='%s'}", c.Name, c.Email)
}

// Store persists customers.
type Store interface {
	Add(c Customer) error
	List() []Customer
}
