// Package order provides the Order aggregate of the DineSmart point of sale:
// the lines a table ordered, the derived total and the order status machine.
//
// The package includes:
//   - Order: the aggregate root, an immutable snapshot of an order
//   - Line: a menu item together with the ordered quantity
//   - ItemRequest: the input used to create an order or add items to it
//   - Status: the state machine that restricts status transitions
//   - Event: the change notification emitted after an order is stored
//
// Key business rules:
//   - An order always has at least one line and every quantity is positive
//   - Lines are unique per menu item id; ordering more of an item grows its quantity
//   - The total always equals the sum of price*quantity over the lines
//   - Status follows Pending -> Preparing -> ReadyForServe -> Served -> Paid,
//     and Cancelled is reachable from Pending, Preparing and ReadyForServe
//   - Items can only be added while Pending or Preparing
//
// Mutations never change an Order in place: AddItems and TransitionStatus
// return a new snapshot with the version incremented, which repositories use
// for optimistic concurrency control.
package order
