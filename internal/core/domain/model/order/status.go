package order

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Delivered ─┐
//	               ^       │
//	               └───────┘
//	      (re-delivery is a no-op)
//
// There is no way back from Delivered.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending is the initial status. The order waits in the depot, possibly
	// queued on a courier.
	Pending

	// Delivered is terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate checks that s is Pending or Delivered.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for
// values outside the enum.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPending reports whether the order still awaits delivery.
func (s Status) IsPending() bool {
	return s == Pending
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//   - Delivered -> Delivered (idempotent)
//
// Returns an error for Unknown or out-of-range values.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
