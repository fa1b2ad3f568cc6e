// Package catalog is a registry of small, printed demonstrations built on
// the seq, solid/srp and solid/lsp packages.
//
// What:
//
//   - Every Demo writes deterministic lines to an io.Writer for fixed literal inputs.
//   - Demos() lists them in a stable order; Lookup finds one by name.
//   - Employee, Person and Product are the transient records the demos use.
//
// Output conventions:
//
//   - Integers print in decimal; floating values keep at least one
//     fractional digit ("23.5", "15.0").
//   - Lists print as "[a, b, c]" and keyed groups as "{k=v, k2=v2}" with
//     keys in ascending order. This intentionally differs from the arbitrary
//     hash order a hash-map printout would show, so output stays stable.
//
// Errors:
//
//   - ErrUnknownDemo: Lookup was asked for a name that is not registered.
//
// Write failures from the destination writer are returned as-is.
package catalog
