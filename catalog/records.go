package catalog

import "fmt"

// Employee is a named record with a salary.
type Employee struct {
	Name   string
	Salary float64
}

// Person is a named record with an age.
type Person struct {
	Name string
	Age  int
}

// IsAdult reports whether the person is at least 18.
func (p Person) IsAdult() bool {
	return p.Age >= 18
}

func (p Person) String() string {
	return fmt.Sprintf("Person{name='%s', age=%d}", p.Name, p.Age)
}

// Product is a named record with a category. Two products are the same
// product when their names match; Category does not take part in equality.
type Product struct {
	Name     string
	Category string
}

// Key is the identity used for de-duplication.
func (p Product) Key() string {
	return p.Name
}

// Equal reports whether p and other denote the same product.
func (p Product) Equal(other Product) bool {
	return p.Key() == other.Key()
}

func (p Product) String() string {
	return fmt.Sprintf("Product{name='%s', category='%s'}", p.Name, p.Category)
}
