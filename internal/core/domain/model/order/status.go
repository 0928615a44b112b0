package order

import (
	"fmt"

	"dinesmart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> ReadyForServe ──> Served ──> Paid
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Paid and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new order.
	Pending

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForServe means the order waits to be taken to the table.
	ReadyForServe

	// Served means the order reached the table and waits for payment.
	Served

	// Paid is terminal.
	Paid

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		Preparing:     "Preparing",
		ReadyForServe: "ReadyForServe",
		Served:        "Served",
		Paid:          "Paid",
		Cancelled:     "Cancelled",
	}
}

// getTransitions returns the status graph. Terminal statuses have no entry.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Pending:       {Preparing, Cancelled},
		Preparing:     {ReadyForServe, Cancelled},
		ReadyForServe: {Served, Cancelled},
		Served:        {Paid},
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, ReadyForServe, Served, Paid, Cancelled}
}

// ParseStatus converts the string form produced by String back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the lifecycle statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status. It is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// IsActive reports whether an order in this status is still being handled.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// CanAddItems reports whether items may still be added in this status.
func (s Status) CanAddItems() bool {
	return s == Pending || s == Preparing
}

// CanTransitionTo reports whether (s, next) is an edge of the status graph.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range getTransitions()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the transition is allowed.
//
// Example:
//
//	next, err := order.Preparing.TransitionTo(order.Paid)
//	// err is *errs.InvalidTransitionError: Preparing -> Paid
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s, next)
	}
	return next, nil
}
