// Package table provides the dining table of the restaurant floor.
//
// Key business rules:
//   - Identifiers are non-negative
//   - Capacity is strictly positive
//   - A table is occupied exactly when it carries the id of the order seated
//     at it
//
// Tables are immutable values obtained through NewTable; Seat and Release
// return modified copies.
package table
