package domain

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// List of possible order statuses
const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var allowedStatuses = [...]OrderStatus{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// validTransitions is the authoritative lifecycle table. Terminal states
// (DELIVERED, CANCELLED) have no outgoing transitions, which is what makes
// cancellation refunds single-shot.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Valid checks if the OrderStatus is one of the known states.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, v := range validTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether a driver-initiated cancel (with refund) is
// still permitted. Only PENDING orders qualify; moving a PROCESSING order to
// CANCELLED is a sponsor/admin status transition, not a driver cancel.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}
