package vehicle

// Outcome is the result of one delivery attempt: either Delivered with a
// detail message or Rejected with a reason.
type Outcome struct {
	orderID   string
	delivered bool
	message   string
}

// NewDeliveredOutcome records a successful delivery of orderID.
func NewDeliveredOutcome(orderID, detail string) Outcome {
	return Outcome{
		orderID:   orderID,
		delivered: true,
		message:   detail,
	}
}

// NewRejectedOutcome records a refused delivery of orderID.
func NewRejectedOutcome(orderID, reason string) Outcome {
	return Outcome{
		orderID: orderID,
		message: reason,
	}
}

// OrderID returns the id of the order the attempt was made for.
func (o Outcome) OrderID() string {
	return o.orderID
}

// IsDelivered reports whether the order was delivered.
func (o Outcome) IsDelivered() bool {
	return o.delivered
}

// Message returns the detail (delivered) or the reason (rejected).
func (o Outcome) Message() string {
	return o.message
}

// String returns Message.
func (o Outcome) String() string {
	return o.message
}
