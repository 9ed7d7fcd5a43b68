package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(name, description string) (CreateCategoryCommand, error) {
	// Reuse the aggregate's rules so the command rejects what NewCategory would.
	if _, err := catalog.NewCategory(name, description); err != nil {
		return CreateCategoryCommand{}, err
	}
	return CreateCategoryCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Name() string        { return c.name }
func (c CreateCategoryCommand) Description() string { return c.description }
