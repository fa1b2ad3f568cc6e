// Package solidstream is a small playground of sequence-processing operations
// and design-principle demonstrations written in plain Go.
//
// What is inside?
//
//	A generic, dependency-light toolkit and a runnable catalog:
//		• seq:        filter, map, distinct, min/max, reduce, group, statistics
//		• catalog:    printed demonstrations over fixed literal inputs
//		• solid/srp:  single-responsibility split (repository vs service)
//		• solid/lsp:  Liskov substitution, a violating square and its fix
//
// Every demonstration is deterministic: given the same literal inputs it
// writes the same lines, so each one doubles as a test fixture.
//
// Under the hood:
//
//	seq/          — generic slice operations, sentinel errors, parallel helpers
//	catalog/      — demo registry and the sequence demonstrations
//	solid/srp/    — CustomerRepository and CustomerService
//	solid/lsp/    — RectangleBad/SquareBad and Shape/Rectangle/Square
//	cmd/showcase/ — cobra CLI to list and run demonstrations
//
// Quick start:
//
//	go run ./cmd/showcase list
//	go run ./cmd/showcase run distinct groupby
//	go run ./cmd/showcase all
package solidstream
