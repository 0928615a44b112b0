// Package kernel provides small domain primitives shared by the menu and order
// models.
//
// The package includes:
//   - Clock: the source of "now" for order timestamps, injected rather than read
//     from ambient global state so that order creation is deterministic under test
//   - IsBlank and ValidateID: input checks reused by every constructor
package kernel
