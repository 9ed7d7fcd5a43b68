package courier

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	ErrUsernameIsRequired      = errs.NewValueIsRequiredError("username")
	ErrPasswordIsRequired      = errs.NewValueIsRequiredError("password hash")
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is an aggregate root for a member of the delivery staff.
//
// Business rules:
//   - username, password hash and name are required
//   - a courier holds zero or one order; Assign fails while one is held
//   - Release only clears the assignment for the order actually held, so a
//     stale release for another order leaves the courier untouched
type Courier struct {
	id             kernel.ID
	username       string
	passwordHash   string
	name           string
	phone          kernel.Phone
	currentOrderID *kernel.ID
	guard          guard.ConstructorGuard
}

// NewCourier creates a free courier. passwordHash must already be hashed;
// the domain never sees plain passwords.
func NewCourier(username, passwordHash, name string, phone kernel.Phone) (*Courier, error) {
	c := &Courier{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setUsername(username),
		c.setPasswordHash(passwordHash),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier rehydrates a courier from persistent storage.
func RestoreCourier(
	id kernel.ID,
	username, passwordHash, name string,
	phone kernel.Phone,
	currentOrderID *kernel.ID,
) *Courier {
	return &Courier{
		id:             id,
		username:       username,
		passwordHash:   passwordHash,
		name:           name,
		phone:          phone,
		currentOrderID: currentOrderID,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the courier was built through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.ID              { return c.id }
func (c *Courier) Username() string           { return c.username }
func (c *Courier) PasswordHash() string       { return c.passwordHash }
func (c *Courier) Name() string               { return c.name }
func (c *Courier) Phone() kernel.Phone        { return c.phone }
func (c *Courier) CurrentOrderID() *kernel.ID { return c.currentOrderID }

// IsFree reports whether the courier can take an order.
func (c *Courier) IsFree() bool {
	return c.currentOrderID == nil
}

// SetID records the identifier assigned by the store on insert.
func (c *Courier) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// Assign gives the courier an order to deliver.
func (c *Courier) Assign(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.IsFree() {
		return errs.NewInvalidStateError("courier", "busy with order "+c.currentOrderID.String(), "assign order to")
	}
	c.currentOrderID = &orderID
	return nil
}

// Release frees the courier if it currently holds orderID and reports
// whether anything changed.
func (c *Courier) Release(orderID kernel.ID) bool {
	if c.currentOrderID == nil || *c.currentOrderID != orderID {
		return false
	}
	c.currentOrderID = nil
	return true
}

func (c *Courier) setUsername(username string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *Courier) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordIsRequired
	}
	c.passwordHash = hash
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
