package commands

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

const minPasswordLength = 8

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a member of the delivery staff with login
// credentials.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	name     string
	phone    kernel.Phone

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates credentials and contact details. phone may be empty.
func NewCreateCourierCommand(username, password, name, phone string) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		username: strings.TrimSpace(username),
		password: password,
		name:     strings.TrimSpace(name),
		guard:    guard.NewConstructorGuard(),
	}

	var usernameErr, passwordErr, nameErr, phoneErr error
	if cmd.username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if len(password) < minPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	if cmd.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if phone != "" {
		cmd.phone, phoneErr = kernel.NewPhone(phone)
	}

	if err := errors.Join(usernameErr, passwordErr, nameErr, phoneErr); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Username() string    { return c.username }
func (c CreateCourierCommand) Password() string    { return c.password }
func (c CreateCourierCommand) Name() string        { return c.name }
func (c CreateCourierCommand) Phone() kernel.Phone { return c.phone }
