// Package srp shows a single-responsibility split: CustomerRepository owns
// storage of customers, CustomerService owns the operations callers use.
//
// Either side can change without touching the other. The service depends
// on the small Store interface, so any storage satisfying it can replace
// the in-memory repository.
//
// Errors:
//
//   - ErrEmptyName: a customer must have a non-blank name.
//   - ErrNilStore: NewCustomerService was given no store.
package srp
