package queries

import (
	"errors"
	"strings"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrAuthenticateCourierQueryIsNotConstructed = errors.New(
	"AuthenticateCourierQuery must be created via NewAuthenticateCourierQuery constructor",
)

// AuthenticateCourierQuery checks courier login credentials. Usernames are
// matched case-insensitively.
type AuthenticateCourierQuery struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

func NewAuthenticateCourierQuery(username, password string) (AuthenticateCourierQuery, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return AuthenticateCourierQuery{}, err
	}

	return AuthenticateCourierQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateCourierQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateCourierQueryIsNotConstructed)
}

func (q AuthenticateCourierQuery) Username() string { return q.username }
func (q AuthenticateCourierQuery) Password() string { return q.password }
