package commands

import (
	"depot/internal/pkg/errs"
)

var (
	// ErrCourierIsNotSelected is returned when no courier position is given.
	ErrCourierIsNotSelected = errs.NewValueIsRequiredError("courier")
	// ErrVehicleIsNotSelected is returned when no vehicle position is given.
	ErrVehicleIsNotSelected = errs.NewValueIsRequiredError("vehicle")
	// ErrOrderIsNotSelected is returned when no order position is given.
	ErrOrderIsNotSelected = errs.NewValueIsRequiredError("order")
)

// selectPosition turns an optional list position into an index. A nil
// position yields notSelected; a negative one is out of range.
func selectPosition(paramName string, position *int, notSelected error) (int, error) {
	if position == nil {
		return 0, notSelected
	}
	if *position < 0 {
		return 0, errs.NewValueIsOutOfRangeError(paramName, *position, 0, "+inf")
	}
	return *position, nil
}
