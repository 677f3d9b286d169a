package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusOnTheWay  Status = "on_the_way"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Successor returns the next status on the delivery pipeline. Every status is
// listed so that adding one fails loudly here instead of slipping past the
// state machine.
func (s Status) Successor() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusOnTheWay, true
	case StatusOnTheWay:
		return StatusDelivered, true
	case StatusDelivered, StatusCancelled:
		return "", false
	default:
		panic(fmt.Sprintf("domain: unhandled order status %q", string(s)))
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the order still needs the restaurant's attention.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// DefaultCancellable lists the statuses a customer may cancel from: before the
// kitchen commits to the order.
var DefaultCancellable = []Status{StatusPending, StatusConfirmed}

// StateMachine validates order status transitions.
type StateMachine struct {
	cancellable map[Status]bool
}

// NewStateMachine builds a state machine where CANCELLED is reachable from the
// given statuses. Terminal statuses are ignored; nil means DefaultCancellable.
func NewStateMachine(cancellableFrom []Status) StateMachine {
	if cancellableFrom == nil {
		cancellableFrom = DefaultCancellable
	}
	m := StateMachine{cancellable: make(map[Status]bool, len(cancellableFrom))}
	for _, s := range cancellableFrom {
		if s.Valid() && !s.IsTerminal() {
			m.cancellable[s] = true
		}
	}
	return m
}

func (m StateMachine) CanCancel(from Status) bool {
	if m.cancellable == nil {
		for _, s := range DefaultCancellable {
			if s == from {
				return true
			}
		}
		return false
	}
	return m.cancellable[from]
}

// Check returns nil when from -> to is a legal transition.
func (m StateMachine) Check(from, to Status) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, from)
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %q -> %q", ErrIllegalTransition, string(from), string(to))
	}
	if to == StatusCancelled {
		if !m.CanCancel(from) {
			return fmt.Errorf("%w: cannot cancel from %s", ErrIllegalTransition, from)
		}
		return nil
	}
	next, ok := from.Successor()
	if !ok || next != to {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
