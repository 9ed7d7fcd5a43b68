package catalog

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrCategoryNameIsRequired   = errs.NewValueIsRequiredError("category name")
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

// Category groups medicines for browsing, e.g. "Pain relief".
type Category struct {
	id          kernel.ID
	name        string
	description string
	guard       guard.ConstructorGuard
}

// NewCategory creates a category that has not been persisted yet.
func NewCategory(name, description string) (*Category, error) {
	c := &Category{guard: guard.NewConstructorGuard()}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	c.description = strings.TrimSpace(description)
	return c, nil
}

// RestoreCategory rehydrates a category loaded from the store.
func RestoreCategory(id kernel.ID, name, description string) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() kernel.ID       { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

// SetID records the identifier assigned by the store on insert.
func (c *Category) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryNameIsRequired
	}
	c.name = name
	return nil
}
