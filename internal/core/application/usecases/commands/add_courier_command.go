package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/courier"
	"depot/internal/pkg/guard"
)

var ErrAddCourierCommandIsNotConstructed = errors.New(
	"AddCourierCommand must be created via NewAddCourierCommand constructor",
)

// AddCourierCommand registers a new courier, without a vehicle.
//
// Example:
//
//	cmd, err := NewAddCourierCommand("Jean Dupont")
//	if errors.Is(err, courier.ErrNameIsInvalid) {
//	    // digits or punctuation in the name
//	}
type AddCourierCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewAddCourierCommand trims name and checks it with courier.IsValidName.
func NewAddCourierCommand(name string) (AddCourierCommand, error) {
	cmd := AddCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return AddCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCourierCommand) Validate() error {
	return c.guard.Validate(ErrAddCourierCommandIsNotConstructed)
}

// Name returns the courier name.
func (c AddCourierCommand) Name() string {
	return c.name
}

func (c *AddCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return courier.ErrNameIsRequired
	}
	if !courier.IsValidName(name) {
		return courier.ErrNameIsInvalid
	}

	c.name = name
	return nil
}
