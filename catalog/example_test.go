package catalog_test

import (
	"os"

	"github.com/katalvlaran/solidstream/catalog"
)

// ExampleAverageDemo prints the mean age of the sample people.
func ExampleAverageDemo() {
	_ = catalog.AverageDemo(os.Stdout)
	// Output: 23.5
}

// ExampleReduceDemo folds numbers and words.
func ExampleReduceDemo() {
	_ = catalog.ReduceDemo(os.Stdout)
	// Output:
	// 15
	// 5
	// HelloWorld!
	// Hello World !
}
